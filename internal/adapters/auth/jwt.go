package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/JCH97/Catalog-APIs/internal/adapters/config"
	"github.com/JCH97/Catalog-APIs/internal/core/domain"
	"github.com/JCH97/Catalog-APIs/internal/core/port"
)

type roleClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTManager signs and verifies the role-bearing tokens used by the HTTP
// layer. The secret is owned by whoever constructs it; there is no
// process-wide state.
type JWTManager struct {
	secret   []byte
	tokenTTL time.Duration
}

func NewJWTManager(cfg config.AuthConfig) port.TokenPort {
	return &JWTManager{
		secret:   []byte(cfg.JWTSecret),
		tokenTTL: cfg.TokenTTL,
	}
}

func (m *JWTManager) Sign(role domain.Role) (string, error) {
	now := time.Now()
	claims := roleClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (m *JWTManager) Verify(tokenString string) (domain.Role, error) {
	var claims roleClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to verify token: %w", err)
	}
	if !token.Valid {
		return "", fmt.Errorf("token is not valid")
	}

	role := domain.Role(claims.Role)
	if !role.IsActor() {
		return "", fmt.Errorf("token carries unknown role %q", claims.Role)
	}
	return role, nil
}
