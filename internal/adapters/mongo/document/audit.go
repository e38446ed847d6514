package document

import (
	"time"

	"github.com/JCH97/Catalog-APIs/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ChangeItemDocument struct {
	Field  string `bson:"field"`
	Before any    `bson:"before"`
	After  any    `bson:"after"`
}

type AuditDocument struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty"`
	ProductID     string               `bson:"product_id"`
	Action        string               `bson:"action"`
	ChangedAt     time.Time            `bson:"changed_at"`
	ChangedByRole string               `bson:"changed_by_role"`
	Changes       []ChangeItemDocument `bson:"changes"`
	Version       int                  `bson:"version"`
	ProductBefore *ProductDocument     `bson:"product_before,omitempty"`
	ProductAfter  *ProductDocument     `bson:"product_after,omitempty"`
}

func (doc AuditDocument) GetID() string {
	return doc.ID.Hex()
}

func (doc *AuditDocument) ToProps() domain.AuditProps {
	changes := make([]domain.ChangeItem, len(doc.Changes))
	for i, c := range doc.Changes {
		changes[i] = domain.ChangeItem{Field: c.Field, Before: c.Before, After: c.After}
	}

	props := domain.AuditProps{
		ProductID:     doc.ProductID,
		Action:        domain.AuditAction(doc.Action),
		ChangedAt:     doc.ChangedAt,
		ChangedByRole: domain.Role(doc.ChangedByRole),
		Changes:       changes,
		Version:       doc.Version,
	}
	if doc.ProductBefore != nil {
		before := doc.ProductBefore.ToSnapshot()
		props.ProductBefore = &before
	}
	if doc.ProductAfter != nil {
		after := doc.ProductAfter.ToSnapshot()
		props.ProductAfter = &after
	}
	return props
}

func FromAuditProps(props domain.AuditProps) *AuditDocument {
	changes := make([]ChangeItemDocument, len(props.Changes))
	for i, c := range props.Changes {
		changes[i] = ChangeItemDocument{Field: c.Field, Before: c.Before, After: c.After}
	}

	doc := &AuditDocument{
		ProductID:     props.ProductID,
		Action:        string(props.Action),
		ChangedAt:     props.ChangedAt,
		ChangedByRole: string(props.ChangedByRole),
		Changes:       changes,
		Version:       props.Version,
	}
	if props.ProductBefore != nil {
		doc.ProductBefore = FromProductSnapshot(*props.ProductBefore)
	}
	if props.ProductAfter != nil {
		doc.ProductAfter = FromProductSnapshot(*props.ProductAfter)
	}
	return doc
}
