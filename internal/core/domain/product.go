package domain

import (
	"strings"
	"time"

	"github.com/JCH97/Catalog-APIs/internal/core/result"
	"github.com/JCH97/Catalog-APIs/internal/core/serviceerrors"
)

// Product owns the catalog entry lifecycle. Fields are unexported so every
// mutation goes through the methods that enforce the rules; version and
// updatedAt only ever move together.
type Product struct {
	id            string
	gtin          string
	name          string
	description   *string
	brand         *string
	manufacturer  *string
	netWeight     *NetWeight
	status        ProductStatus
	createdByRole Role
	createdAt     time.Time
	updatedAt     time.Time
	version       int
}

// ProductSnapshot is the serialized form of a Product, used for
// persistence, event payloads and audit before/after captures.
type ProductSnapshot struct {
	ID            string        `json:"id"`
	GTIN          string        `json:"gtin"`
	Name          string        `json:"name"`
	Description   *string       `json:"description"`
	Brand         *string       `json:"brand"`
	Manufacturer  *string       `json:"manufacturer"`
	NetWeight     *NetWeight    `json:"netWeight"`
	Status        ProductStatus `json:"status"`
	CreatedByRole Role          `json:"createdByRole"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
	Version       int           `json:"version"`
}

type CreateProductInput struct {
	GTIN         string
	Name         string
	Description  *string
	Brand        *string
	Manufacturer *string
	NetWeight    *NetWeight
}

// ProductPatch carries the updatable fields; a nil field is absent from
// the patch.
type ProductPatch struct {
	Name         *string
	Description  *string
	Brand        *string
	Manufacturer *string
	NetWeight    *NetWeight
}

// NewProduct validates the input and builds a product at version 1. The
// GTIN doubles as the identity. Editors publish immediately, any other
// actor starts in review.
func NewProduct(input CreateProductInput, actor Role) result.Result[*Product] {
	if !ValidateGTIN(input.GTIN) {
		return result.Fail[*Product](serviceerrors.NewValidationError("GTIN invalid (8 - 14 digits required)"))
	}

	name := strings.TrimSpace(input.Name)
	if len(name) < 2 {
		return result.Fail[*Product](serviceerrors.NewValidationError("at least 2 characters required for name"))
	}

	if input.NetWeight != nil && input.NetWeight.Value <= 0 {
		return result.Fail[*Product](serviceerrors.NewValidationError("net weight must be positive"))
	}

	status := StatusPendingReview
	if actor == RoleEditor {
		status = StatusPublished
	}

	now := time.Now()
	return result.Ok(&Product{
		id:            input.GTIN,
		gtin:          input.GTIN,
		name:          name,
		description:   input.Description,
		brand:         input.Brand,
		manufacturer:  input.Manufacturer,
		netWeight:     input.NetWeight,
		status:        status,
		createdByRole: actor,
		createdAt:     now,
		updatedAt:     now,
		version:       1,
	})
}

// HydrateProduct rebuilds a product from stored state without re-running
// business validation; the store is trusted.
func HydrateProduct(s ProductSnapshot) result.Result[*Product] {
	return result.Ok(&Product{
		id:            s.ID,
		gtin:          s.GTIN,
		name:          s.Name,
		description:   s.Description,
		brand:         s.Brand,
		manufacturer:  s.Manufacturer,
		netWeight:     s.NetWeight,
		status:        s.Status,
		createdByRole: s.CreatedByRole,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
		version:       s.Version,
	})
}

// Update applies the patch fields that differ from current state. Providers
// may only edit while the product is pending review. The returned bool
// reports whether anything actually changed; a no-op leaves version and
// updatedAt untouched.
func (p *Product) Update(patch ProductPatch, actor Role) result.Result[bool] {
	if actor == RoleProvider && p.status != StatusPendingReview {
		return result.Fail[bool](serviceerrors.NewValidationError("product can only be edited by PROVIDER when in PENDING_REVIEW status"))
	}

	changed := false

	if patch.Name != nil {
		if name := strings.TrimSpace(*patch.Name); name != "" && name != p.name {
			p.name = name
			changed = true
		}
	}
	if patch.Description != nil && !equalStringPtr(patch.Description, p.description) {
		p.description = patch.Description
		changed = true
	}
	if patch.Brand != nil && !equalStringPtr(patch.Brand, p.brand) {
		p.brand = patch.Brand
		changed = true
	}
	if patch.Manufacturer != nil && !equalStringPtr(patch.Manufacturer, p.manufacturer) {
		p.manufacturer = patch.Manufacturer
		changed = true
	}
	if patch.NetWeight != nil {
		if patch.NetWeight.Value <= 0 {
			return result.Fail[bool](serviceerrors.NewValidationError("net weight must be positive"))
		}
		if p.netWeight == nil || *patch.NetWeight != *p.netWeight {
			p.netWeight = patch.NetWeight
			changed = true
		}
	}

	if changed {
		p.version++
		p.updatedAt = time.Now()
	}

	return result.Ok(changed)
}

// Approve publishes the product. Only editors may approve; re-approving an
// already published product is a no-op success.
func (p *Product) Approve(actor Role) result.Result[struct{}] {
	if actor != RoleEditor {
		return result.Fail[struct{}](serviceerrors.NewValidationError("you should be an EDITOR to approve a product"))
	}

	if p.status == StatusPublished {
		return result.Ok(struct{}{})
	}

	p.status = StatusPublished
	p.version++
	p.updatedAt = time.Now()

	return result.Ok(struct{}{})
}

// Snapshot serializes the current state. It is pure and safe to call at
// any point of an orchestration.
func (p *Product) Snapshot() ProductSnapshot {
	return ProductSnapshot{
		ID:            p.id,
		GTIN:          p.gtin,
		Name:          p.name,
		Description:   p.description,
		Brand:         p.brand,
		Manufacturer:  p.manufacturer,
		NetWeight:     p.netWeight,
		Status:        p.status,
		CreatedByRole: p.createdByRole,
		CreatedAt:     p.createdAt,
		UpdatedAt:     p.updatedAt,
		Version:       p.version,
	}
}

func (p *Product) ID() string            { return p.id }
func (p *Product) GTIN() string          { return p.gtin }
func (p *Product) Name() string          { return p.name }
func (p *Product) Status() ProductStatus { return p.status }
func (p *Product) Version() int          { return p.version }
func (p *Product) UpdatedAt() time.Time  { return p.updatedAt }

// Diff lists the updatable fields that differ between two snapshots, in a
// fixed order so audit entries stay deterministic.
func (s ProductSnapshot) Diff(after ProductSnapshot) []ChangeItem {
	var changes []ChangeItem

	if s.Name != after.Name {
		changes = append(changes, ChangeItem{Field: "name", Before: s.Name, After: after.Name})
	}
	if !equalStringPtr(s.Description, after.Description) {
		changes = append(changes, ChangeItem{Field: "description", Before: deref(s.Description), After: deref(after.Description)})
	}
	if !equalStringPtr(s.Brand, after.Brand) {
		changes = append(changes, ChangeItem{Field: "brand", Before: deref(s.Brand), After: deref(after.Brand)})
	}
	if !equalStringPtr(s.Manufacturer, after.Manufacturer) {
		changes = append(changes, ChangeItem{Field: "manufacturer", Before: deref(s.Manufacturer), After: deref(after.Manufacturer)})
	}
	if !equalNetWeight(s.NetWeight, after.NetWeight) {
		changes = append(changes, ChangeItem{Field: "netWeight", Before: derefWeight(s.NetWeight), After: derefWeight(after.NetWeight)})
	}

	return changes
}

func equalStringPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalNetWeight(a, b *NetWeight) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func deref(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func derefWeight(w *NetWeight) any {
	if w == nil {
		return nil
	}
	return *w
}
