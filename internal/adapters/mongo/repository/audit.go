package repository

import (
	"context"

	"github.com/JCH97/Catalog-APIs/internal/adapters/mongo/document"
	"github.com/JCH97/Catalog-APIs/internal/core/domain"
	"github.com/JCH97/Catalog-APIs/internal/core/port"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AuditRepository struct {
	*BaseRepository[document.AuditDocument]
}

func NewAuditRepository(db *mongo.Database) port.AuditPort {
	return &AuditRepository{
		BaseRepository: NewBaseRepository[document.AuditDocument](db, "audits"),
	}
}

func (r *AuditRepository) Add(ctx context.Context, entry *domain.AuditEntry) error {
	doc := document.FromAuditProps(entry.Snapshot())
	return r.Insert(ctx, doc)
}

func (r *AuditRepository) FindByProductID(ctx context.Context, productID string) ([]*domain.AuditEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "changed_at", Value: 1}})

	docs, err := r.Find(ctx, bson.M{"product_id": productID}, opts)
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.AuditEntry, len(docs))
	for i, doc := range docs {
		hydrated := domain.HydrateAuditEntry(doc.ToProps())
		if hydrated.IsFailure() {
			return nil, hydrated.UnwrapError()
		}
		entries[i] = hydrated.Unwrap()
	}

	return entries, nil
}
