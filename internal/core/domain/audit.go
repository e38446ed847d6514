package domain

import (
	"time"

	"github.com/JCH97/Catalog-APIs/internal/core/result"
	"github.com/JCH97/Catalog-APIs/internal/core/serviceerrors"
)

// AuditEntry is the immutable record of one accepted product mutation. It
// is constructed once, persisted once, and never changed.
type AuditEntry struct {
	props AuditProps
}

type AuditProps struct {
	ProductID     string           `json:"productId"`
	Action        AuditAction      `json:"action"`
	ChangedAt     time.Time        `json:"changedAt"`
	ChangedByRole Role             `json:"changedByRole"`
	Changes       []ChangeItem     `json:"changes"`
	Version       int              `json:"version"`
	ProductBefore *ProductSnapshot `json:"productBeforeSnapshot,omitempty"`
	ProductAfter  *ProductSnapshot `json:"productAfterSnapshot,omitempty"`
}

// NewAuditEntry validates and freezes an entry, stamping ChangedAt with the
// construction time regardless of what the caller supplied.
func NewAuditEntry(props AuditProps) result.Result[*AuditEntry] {
	if props.ProductID == "" {
		return result.Fail[*AuditEntry](serviceerrors.NewValidationError("audit entry requires a product id"))
	}

	props.ChangedAt = time.Now()
	return result.Ok(&AuditEntry{props: props})
}

// HydrateAuditEntry rebuilds an entry from storage, preserving the
// originally stamped ChangedAt.
func HydrateAuditEntry(props AuditProps) result.Result[*AuditEntry] {
	return result.Ok(&AuditEntry{props: props})
}

func (a *AuditEntry) Snapshot() AuditProps {
	return a.props
}

func (a *AuditEntry) ProductID() string     { return a.props.ProductID }
func (a *AuditEntry) Action() AuditAction   { return a.props.Action }
func (a *AuditEntry) Version() int          { return a.props.Version }
func (a *AuditEntry) ChangedAt() time.Time  { return a.props.ChangedAt }
func (a *AuditEntry) Changes() []ChangeItem { return a.props.Changes }
