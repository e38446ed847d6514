package service

import (
	"context"

	"github.com/JCH97/Catalog-APIs/internal/core/domain"
	"github.com/JCH97/Catalog-APIs/internal/core/logger"
	"github.com/JCH97/Catalog-APIs/internal/core/port"
	"github.com/JCH97/Catalog-APIs/internal/core/result"
	"github.com/JCH97/Catalog-APIs/internal/core/serviceerrors"
)

type AuthService struct {
	tokens port.TokenPort
}

func NewAuthService(tokens port.TokenPort) *AuthService {
	return &AuthService{tokens: tokens}
}

// SignIn issues a role-bearing token for one of the actor roles.
func (s *AuthService) SignIn(ctx context.Context, role domain.Role) result.Result[string] {
	if !role.IsActor() {
		return result.Fail[string](serviceerrors.NewValidationError("role must be EDITOR or PROVIDER"))
	}

	token, err := s.tokens.Sign(role)
	if err != nil {
		logger.Error(ctx, "auth: token signing failed", err, map[string]any{
			"role": string(role),
		})
		return result.Fail[string](serviceerrors.NewInternalError("failed to sign token"))
	}

	return result.Ok(token)
}
