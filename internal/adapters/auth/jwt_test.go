package auth

import (
	"testing"
	"time"

	"github.com/JCH97/Catalog-APIs/internal/adapters/config"
	"github.com/JCH97/Catalog-APIs/internal/core/domain"
)

func newManager(ttl time.Duration) *JWTManager {
	return NewJWTManager(config.AuthConfig{
		JWTSecret: "test-secret",
		TokenTTL:  ttl,
	}).(*JWTManager)
}

func TestJWTManager_SignAndVerify(t *testing.T) {
	mgr := newManager(time.Hour)

	t.Run("round trips the role", func(t *testing.T) {
		for _, role := range []domain.Role{domain.RoleEditor, domain.RoleProvider} {
			token, err := mgr.Sign(role)
			if err != nil {
				t.Fatalf("sign failed for %s: %v", role, err)
			}

			got, err := mgr.Verify(token)
			if err != nil {
				t.Fatalf("verify failed for %s: %v", role, err)
			}
			if got != role {
				t.Fatalf("expected role %s, got %s", role, got)
			}
		}
	})

	t.Run("rejects garbage tokens", func(t *testing.T) {
		if _, err := mgr.Verify("not-a-token"); err == nil {
			t.Fatal("expected error for malformed token")
		}
	})

	t.Run("rejects tokens signed with another secret", func(t *testing.T) {
		other := NewJWTManager(config.AuthConfig{JWTSecret: "other-secret", TokenTTL: time.Hour})
		token, err := other.Sign(domain.RoleEditor)
		if err != nil {
			t.Fatalf("sign failed: %v", err)
		}

		if _, err := mgr.Verify(token); err == nil {
			t.Fatal("expected error for wrong secret")
		}
	})

	t.Run("rejects expired tokens", func(t *testing.T) {
		expired := newManager(-time.Minute)
		token, err := expired.Sign(domain.RoleProvider)
		if err != nil {
			t.Fatalf("sign failed: %v", err)
		}

		if _, err := expired.Verify(token); err == nil {
			t.Fatal("expected error for expired token")
		}
	})

	t.Run("rejects non actor roles", func(t *testing.T) {
		token, err := mgr.Sign(domain.RoleSystem)
		if err != nil {
			t.Fatalf("sign failed: %v", err)
		}

		if _, err := mgr.Verify(token); err == nil {
			t.Fatal("expected error for non actor role")
		}
	})
}
