package dto

import "github.com/JCH97/Catalog-APIs/internal/core/domain"

type NetWeightDTO struct {
	Value float64 `json:"value" binding:"required"`
	Unit  string  `json:"unit" binding:"required,oneof=GRAM KILOGRAM OUNCE POUND"`
}

func (w *NetWeightDTO) ToDomain() *domain.NetWeight {
	if w == nil {
		return nil
	}
	return &domain.NetWeight{Value: w.Value, Unit: domain.WeightUnit(w.Unit)}
}

type CreateProductRequest struct {
	GTIN         string        `json:"gtin" binding:"required"`
	Name         string        `json:"name" binding:"required"`
	Description  *string       `json:"description"`
	Brand        *string       `json:"brand"`
	Manufacturer *string       `json:"manufacturer"`
	NetWeight    *NetWeightDTO `json:"netWeight"`
}

func (r *CreateProductRequest) ToDomain() domain.CreateProductInput {
	return domain.CreateProductInput{
		GTIN:         r.GTIN,
		Name:         r.Name,
		Description:  r.Description,
		Brand:        r.Brand,
		Manufacturer: r.Manufacturer,
		NetWeight:    r.NetWeight.ToDomain(),
	}
}

type UpdateProductRequest struct {
	Name         *string       `json:"name"`
	Description  *string       `json:"description"`
	Brand        *string       `json:"brand"`
	Manufacturer *string       `json:"manufacturer"`
	NetWeight    *NetWeightDTO `json:"netWeight"`
}

func (r *UpdateProductRequest) ToDomain() domain.ProductPatch {
	return domain.ProductPatch{
		Name:         r.Name,
		Description:  r.Description,
		Brand:        r.Brand,
		Manufacturer: r.Manufacturer,
		NetWeight:    r.NetWeight.ToDomain(),
	}
}
