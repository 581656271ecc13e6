package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"

	"github.com/cf-northwind/admin-dashboard/internal/core/domain"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	API   APIConfig
	Queue QueueConfig
	Auth  AuthConfig
}

// APIConfig locates the Northwind order/product backend. The default points
// at the local dev worker; production deployments set API_BASE_URL to the
// hosted API.
type APIConfig struct {
	BaseURL string `env:"API_BASE_URL, default=http://127.0.0.1:8789"`
}

// QueueConfig locates the inventory queue worker and sizes the dispatcher.
type QueueConfig struct {
	BaseURL string `env:"QUEUE_BASE_URL, default=http://127.0.0.1:8787"`
	Workers int    `env:"QUEUE_WORKERS,  default=4"`
}

// AuthConfig carries the three pre-issued role JWTs. Any of them may be
// empty; an empty secret makes its role unresolvable, which the orders
// loader reports as a soft unauthorized error.
type AuthConfig struct {
	AdminToken   string `env:"JWT_ADMIN"`
	UserToken    string `env:"JWT_USER"`
	InvalidToken string `env:"JWT_INVALID"`
}

// RoleTokens returns the injected role→secret mapping over the fixed key set
// {admin, user, invalid}.
func (a AuthConfig) RoleTokens() map[domain.Role]string {
	return map[domain.Role]string{
		domain.RoleAdmin:   a.AdminToken,
		domain.RoleUser:    a.UserToken,
		domain.RoleInvalid: a.InvalidToken,
	}
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
