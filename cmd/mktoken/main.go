// mktoken mints an HS256 JWT for local development. The dashboard itself
// never signs tokens; it only forwards the configured ones. Use this to
// populate JWT_ADMIN and JWT_USER against a local backend, and sign
// JWT_INVALID with a different secret to exercise the rejected-role path.
//
//	mktoken -secret dev-secret -role admin -username admin > token.txt
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func main() {
	secret := flag.String("secret", "", "HS256 signing secret (required)")
	role := flag.String("role", "admin", "role claim")
	username := flag.String("username", "", "username claim (defaults to the role)")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *secret == "" {
		fmt.Fprintln(os.Stderr, "mktoken: -secret is required")
		os.Exit(2)
	}
	user := *username
	if user == "" {
		user = *role
	}

	claims := jwt.MapClaims{
		"username": user,
		"role":     *role,
		"exp":      time.Now().Add(*ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(*secret))
	if err != nil {
		fmt.Fprintf(os.Stderr, "mktoken: sign: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(signed)
}
