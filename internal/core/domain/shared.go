package domain

import "regexp"

type Role string

const (
	RoleEditor   Role = "EDITOR"
	RoleProvider Role = "PROVIDER"

	// RoleSystem marks system-initiated audit entries. It is never an
	// authenticated actor.
	RoleSystem Role = "SYSTEM"
)

func (r Role) IsActor() bool {
	return r == RoleEditor || r == RoleProvider
}

type ProductStatus string

const (
	StatusPendingReview ProductStatus = "PENDING_REVIEW"
	StatusPublished     ProductStatus = "PUBLISHED"
)

func (s ProductStatus) IsValid() bool {
	return s == StatusPendingReview || s == StatusPublished
}

type AuditAction string

const (
	AuditActionCreated  AuditAction = "CREATED"
	AuditActionUpdated  AuditAction = "UPDATED"
	AuditActionApproved AuditAction = "APPROVED"
)

func (a AuditAction) IsValid() bool {
	return a == AuditActionCreated || a == AuditActionUpdated || a == AuditActionApproved
}

type WeightUnit string

const (
	UnitGram     WeightUnit = "GRAM"
	UnitKilogram WeightUnit = "KILOGRAM"
	UnitOunce    WeightUnit = "OUNCE"
	UnitPound    WeightUnit = "POUND"
)

func (u WeightUnit) IsValid() bool {
	return u == UnitGram || u == UnitKilogram || u == UnitOunce || u == UnitPound
}

type NetWeight struct {
	Value float64    `json:"value"`
	Unit  WeightUnit `json:"unit"`
}

var gtinPattern = regexp.MustCompile(`^[0-9]{8,14}$`)

func ValidateGTIN(gtin string) bool {
	return gtinPattern.MatchString(gtin)
}

// ChangeItem records one field-level difference inside an audit entry.
type ChangeItem struct {
	Field  string `json:"field"`
	Before any    `json:"before"`
	After  any    `json:"after"`
}

const EventTopic = "domain-events"

const (
	EventProductCreated  = "product.created"
	EventProductUpdated  = "product.updated"
	EventProductApproved = "product.approved"
)

// ProductEvent is the wire shape published for downstream consumers such as
// the search indexer.
type ProductEvent struct {
	Type    string          `json:"type"`
	Payload ProductSnapshot `json:"payload"`
}
