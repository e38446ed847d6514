package service

import (
	"context"
	"errors"
	"testing"

	"github.com/JCH97/Catalog-APIs/internal/core/domain"
	"github.com/JCH97/Catalog-APIs/internal/core/port/mock"
	"github.com/JCH97/Catalog-APIs/internal/core/serviceerrors"
	"go.uber.org/mock/gomock"
)

func setupAuthService(t *testing.T) (*AuthService, *mock.MockTokenPort) {
	ctrl := gomock.NewController(t)
	tokens := mock.NewMockTokenPort(ctrl)
	return NewAuthService(tokens), tokens
}

func TestAuthService_SignIn(t *testing.T) {
	t.Run("issues token for actor roles", func(t *testing.T) {
		svc, tokens := setupAuthService(t)

		tokens.EXPECT().Sign(domain.RoleEditor).Return("signed-token", nil)

		r := svc.SignIn(context.Background(), domain.RoleEditor)

		if token := r.Unwrap(); token != "signed-token" {
			t.Fatalf("expected signed token, got %q", token)
		}
	})

	t.Run("rejects non actor roles", func(t *testing.T) {
		svc, _ := setupAuthService(t)

		for _, role := range []domain.Role{domain.RoleSystem, domain.Role("ADMIN"), domain.Role("")} {
			r := svc.SignIn(context.Background(), role)
			if err := r.UnwrapError(); err.Kind != serviceerrors.KindValidation {
				t.Fatalf("role %q: expected VALIDATION, got %s", role, err.Kind)
			}
		}
	})

	t.Run("signing failure maps to internal error", func(t *testing.T) {
		svc, tokens := setupAuthService(t)

		tokens.EXPECT().Sign(domain.RoleProvider).Return("", errors.New("key unreadable"))

		r := svc.SignIn(context.Background(), domain.RoleProvider)

		if err := r.UnwrapError(); err.Kind != serviceerrors.KindInternal {
			t.Fatalf("expected INTERNAL, got %s", err.Kind)
		}
	})
}
