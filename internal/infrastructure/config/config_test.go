package config

import (
	"testing"

	"github.com/cf-northwind/admin-dashboard/internal/core/domain"
)

func TestRoleTokens_FixedKeySet(t *testing.T) {
	auth := AuthConfig{
		AdminToken:   "a",
		UserToken:    "u",
		InvalidToken: "i",
	}

	tokens := auth.RoleTokens()

	if len(tokens) != 3 {
		t.Fatalf("expected exactly 3 roles, got %d", len(tokens))
	}
	if tokens[domain.RoleAdmin] != "a" || tokens[domain.RoleUser] != "u" || tokens[domain.RoleInvalid] != "i" {
		t.Fatalf("unexpected mapping: %v", tokens)
	}
}

func TestRoleTokens_EmptySecretsStayEmpty(t *testing.T) {
	tokens := AuthConfig{}.RoleTokens()

	for _, role := range domain.Roles {
		if tokens[role] != "" {
			t.Fatalf("expected empty secret for %s", role)
		}
	}
}
