package port

import (
	"context"

	"github.com/JCH97/Catalog-APIs/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type AuditPort interface {
	Add(ctx context.Context, entry *domain.AuditEntry) error
	FindByProductID(ctx context.Context, productID string) ([]*domain.AuditEntry, error)
}
