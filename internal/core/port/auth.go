package port

import "github.com/JCH97/Catalog-APIs/internal/core/domain"

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type TokenPort interface {
	Sign(role domain.Role) (string, error)
	Verify(token string) (domain.Role, error)
}
