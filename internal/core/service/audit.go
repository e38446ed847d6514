package service

import (
	"context"

	"github.com/JCH97/Catalog-APIs/internal/core/domain"
	"github.com/JCH97/Catalog-APIs/internal/core/port"
	"github.com/JCH97/Catalog-APIs/internal/core/result"
)

type AuditService struct {
	audits port.AuditPort
}

func NewAuditService(audits port.AuditPort) *AuditService {
	return &AuditService{audits: audits}
}

// GetProductAudit returns the audit trail of a product ordered by change
// time. An unknown product yields an empty trail, not a failure.
func (s *AuditService) GetProductAudit(ctx context.Context, productID string) result.Result[[]*domain.AuditEntry] {
	entries, err := s.audits.FindByProductID(ctx, productID)
	if err != nil {
		return result.Fail[[]*domain.AuditEntry](asFailure(err))
	}
	return result.Ok(entries)
}
