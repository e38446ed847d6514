package service

import (
	"context"
	"errors"
	"testing"

	"github.com/JCH97/Catalog-APIs/internal/core/domain"
	"github.com/JCH97/Catalog-APIs/internal/core/port/mock"
	"go.uber.org/mock/gomock"
)

func setupAuditService(t *testing.T) (*AuditService, *mock.MockAuditPort) {
	ctrl := gomock.NewController(t)
	audits := mock.NewMockAuditPort(ctrl)
	return NewAuditService(audits), audits
}

func TestAuditService_GetProductAudit(t *testing.T) {
	t.Run("returns entries for a product", func(t *testing.T) {
		svc, audits := setupAuditService(t)
		entry := domain.NewAuditEntry(domain.AuditProps{
			ProductID:     "7891000315507",
			Action:        domain.AuditActionUpdated,
			ChangedByRole: domain.RoleProvider,
			Version:       2,
		}).Unwrap()

		audits.EXPECT().
			FindByProductID(gomock.Any(), "7891000315507").
			Return([]*domain.AuditEntry{entry}, nil)

		r := svc.GetProductAudit(context.Background(), "7891000315507")

		entries := r.Unwrap()
		if len(entries) != 1 || entries[0].Action() != domain.AuditActionUpdated {
			t.Fatalf("unexpected entries: %d", len(entries))
		}
	})

	t.Run("unknown product yields an empty trail", func(t *testing.T) {
		svc, audits := setupAuditService(t)

		audits.EXPECT().FindByProductID(gomock.Any(), "00000000").Return(nil, nil)

		r := svc.GetProductAudit(context.Background(), "00000000")

		if entries := r.Unwrap(); len(entries) != 0 {
			t.Fatalf("expected empty trail, got %d entries", len(entries))
		}
	})

	t.Run("store error fails", func(t *testing.T) {
		svc, audits := setupAuditService(t)

		audits.EXPECT().FindByProductID(gomock.Any(), gomock.Any()).Return(nil, errors.New("query failed"))

		if r := svc.GetProductAudit(context.Background(), "7891000315507"); !r.IsFailure() {
			t.Fatal("expected failure")
		}
	})
}
