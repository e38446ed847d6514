package port

import (
	"context"

	"github.com/JCH97/Catalog-APIs/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type ProductPort interface {
	FindAll(ctx context.Context) ([]*domain.Product, error)
	// FindByID returns (nil, nil) when no product exists for the id.
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Save(ctx context.Context, product *domain.Product) error
	// Update overwrites the stored product by id unconditionally; no
	// version check is performed.
	Update(ctx context.Context, product *domain.Product) error
}
