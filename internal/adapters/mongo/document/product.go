package document

import (
	"time"

	"github.com/JCH97/Catalog-APIs/internal/core/domain"
)

type NetWeightDocument struct {
	Value float64 `bson:"value"`
	Unit  string  `bson:"unit"`
}

type ProductDocument struct {
	ID            string             `bson:"_id"`
	GTIN          string             `bson:"gtin"`
	Name          string             `bson:"name"`
	Description   *string            `bson:"description,omitempty"`
	Brand         *string            `bson:"brand,omitempty"`
	Manufacturer  *string            `bson:"manufacturer,omitempty"`
	NetWeight     *NetWeightDocument `bson:"net_weight,omitempty"`
	Status        string             `bson:"status"`
	CreatedByRole string             `bson:"created_by_role"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
	Version       int                `bson:"version"`
}

func (doc ProductDocument) GetID() string {
	return doc.ID
}

func (doc *ProductDocument) ToSnapshot() domain.ProductSnapshot {
	var weight *domain.NetWeight
	if doc.NetWeight != nil {
		weight = &domain.NetWeight{Value: doc.NetWeight.Value, Unit: domain.WeightUnit(doc.NetWeight.Unit)}
	}
	return domain.ProductSnapshot{
		ID:            doc.ID,
		GTIN:          doc.GTIN,
		Name:          doc.Name,
		Description:   doc.Description,
		Brand:         doc.Brand,
		Manufacturer:  doc.Manufacturer,
		NetWeight:     weight,
		Status:        domain.ProductStatus(doc.Status),
		CreatedByRole: domain.Role(doc.CreatedByRole),
		CreatedAt:     doc.CreatedAt,
		UpdatedAt:     doc.UpdatedAt,
		Version:       doc.Version,
	}
}

func FromProductSnapshot(s domain.ProductSnapshot) *ProductDocument {
	var weight *NetWeightDocument
	if s.NetWeight != nil {
		weight = &NetWeightDocument{Value: s.NetWeight.Value, Unit: string(s.NetWeight.Unit)}
	}
	return &ProductDocument{
		ID:            s.ID,
		GTIN:          s.GTIN,
		Name:          s.Name,
		Description:   s.Description,
		Brand:         s.Brand,
		Manufacturer:  s.Manufacturer,
		NetWeight:     weight,
		Status:        string(s.Status),
		CreatedByRole: string(s.CreatedByRole),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
		Version:       s.Version,
	}
}
