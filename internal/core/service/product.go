package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/JCH97/Catalog-APIs/internal/core/domain"
	"github.com/JCH97/Catalog-APIs/internal/core/logger"
	"github.com/JCH97/Catalog-APIs/internal/core/port"
	"github.com/JCH97/Catalog-APIs/internal/core/result"
	"github.com/JCH97/Catalog-APIs/internal/core/serviceerrors"
)

const productCacheTTL = 15 * time.Minute

// ProductService orchestrates the catalog operations: it drives one entity
// mutation at a time and coordinates persistence, audit and event
// publication sequentially. There is no transaction spanning those steps;
// a publish failure after a successful store write is reported as failure
// without compensation.
type ProductService struct {
	products  port.ProductPort
	audits    port.AuditPort
	publisher port.PublisherPort
	cache     port.CachePort[domain.ProductSnapshot]
}

func NewProductService(
	products port.ProductPort,
	audits port.AuditPort,
	publisher port.PublisherPort,
	cache port.CachePort[domain.ProductSnapshot],
) *ProductService {
	return &ProductService{
		products:  products,
		audits:    audits,
		publisher: publisher,
		cache:     cache,
	}
}

func (s *ProductService) cacheKey(id string) string {
	return fmt.Sprintf("product:%s", id)
}

// asFailure maps a collaborator error onto the result error channel.
// Errors already classified by an adapter keep their kind; anything else
// comes back as a validation failure carrying the underlying message.
func asFailure(err error) *serviceerrors.ServiceError {
	var svcErr *serviceerrors.ServiceError
	if errors.As(err, &svcErr) {
		return svcErr
	}
	return serviceerrors.NewValidationError(err.Error())
}

func (s *ProductService) publishEvent(ctx context.Context, eventType string, snapshot domain.ProductSnapshot) error {
	body, err := json.Marshal(domain.ProductEvent{Type: eventType, Payload: snapshot})
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", eventType, err)
	}
	return s.publisher.Publish(ctx, domain.EventTopic, body)
}

func (s *ProductService) cacheSnapshot(ctx context.Context, snapshot domain.ProductSnapshot) {
	if err := s.cache.Set(ctx, s.cacheKey(snapshot.ID), &snapshot, productCacheTTL); err != nil {
		logger.Error(ctx, "cache: set product failed", err, map[string]any{
			"product_id": snapshot.ID,
		})
	}
}

// CreateProduct builds and persists a new product and publishes the
// creation event. Creation writes no audit entry.
func (s *ProductService) CreateProduct(ctx context.Context, input domain.CreateProductInput, actor domain.Role) result.Result[*domain.Product] {
	created := domain.NewProduct(input, actor)
	if created.IsFailure() {
		return created
	}
	product := created.Unwrap()

	if err := s.products.Save(ctx, product); err != nil {
		logger.Error(ctx, "product: save failed", err, map[string]any{
			"gtin": input.GTIN,
		})
		return result.Fail[*domain.Product](asFailure(err))
	}

	snapshot := product.Snapshot()
	if err := s.publishEvent(ctx, domain.EventProductCreated, snapshot); err != nil {
		logger.Error(ctx, "product: publish created event failed", err, map[string]any{
			"product_id": product.ID(),
		})
		return result.Fail[*domain.Product](asFailure(err))
	}

	s.cacheSnapshot(ctx, snapshot)

	logger.Info(ctx, "Product created", map[string]any{
		"product_id": product.ID(),
		"status":     string(product.Status()),
	})
	return result.Ok(product)
}

// UpdateProduct loads, mutates and persists a product, records the
// field-level diff as an audit entry and publishes the update event. A
// patch that changes nothing returns the unchanged product and performs no
// persistence, audit or publish work.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, patch domain.ProductPatch, actor domain.Role) result.Result[*domain.Product] {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return result.Fail[*domain.Product](asFailure(err))
	}
	if product == nil {
		return result.Fail[*domain.Product](serviceerrors.NewNotFoundError("product not found"))
	}

	before := product.Snapshot()

	updated := product.Update(patch, actor)
	if updated.IsFailure() {
		return result.Fail[*domain.Product](updated.UnwrapError())
	}
	if !updated.Unwrap() {
		return result.Ok(product)
	}

	if err := s.products.Update(ctx, product); err != nil {
		logger.Error(ctx, "product: update failed", err, map[string]any{
			"product_id": id,
		})
		return result.Fail[*domain.Product](asFailure(err))
	}

	after := product.Snapshot()
	entry := domain.NewAuditEntry(domain.AuditProps{
		ProductID:     product.ID(),
		Action:        domain.AuditActionUpdated,
		ChangedByRole: actor,
		Changes:       before.Diff(after),
		Version:       product.Version(),
		ProductBefore: &before,
		ProductAfter:  &after,
	}).Unwrap()

	if err := s.audits.Add(ctx, entry); err != nil {
		logger.Error(ctx, "product: audit write failed", err, map[string]any{
			"product_id": id,
		})
		return result.Fail[*domain.Product](asFailure(err))
	}

	if err := s.publishEvent(ctx, domain.EventProductUpdated, after); err != nil {
		logger.Error(ctx, "product: publish updated event failed", err, map[string]any{
			"product_id": id,
		})
		return result.Fail[*domain.Product](asFailure(err))
	}

	s.cacheSnapshot(ctx, after)

	logger.Info(ctx, "Product updated", map[string]any{
		"product_id": id,
		"version":    product.Version(),
		"changes":    len(entry.Changes()),
	})
	return result.Ok(product)
}

// ApproveProduct transitions a product to published, records the approval
// audit entry and publishes the approval event. The audit entry always
// states the pending-to-published change, matching the historical shape
// even when approval was an idempotent no-op.
func (s *ProductService) ApproveProduct(ctx context.Context, id string, actor domain.Role) result.Result[*domain.Product] {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return result.Fail[*domain.Product](asFailure(err))
	}
	if product == nil {
		return result.Fail[*domain.Product](serviceerrors.NewNotFoundError("product not found"))
	}

	before := product.Snapshot()

	approved := product.Approve(actor)
	if approved.IsFailure() {
		return result.Fail[*domain.Product](approved.UnwrapError())
	}

	if err := s.products.Update(ctx, product); err != nil {
		logger.Error(ctx, "product: approve persist failed", err, map[string]any{
			"product_id": id,
		})
		return result.Fail[*domain.Product](asFailure(err))
	}

	after := product.Snapshot()
	entry := domain.NewAuditEntry(domain.AuditProps{
		ProductID:     product.ID(),
		Action:        domain.AuditActionApproved,
		ChangedByRole: domain.RoleEditor,
		Changes: []domain.ChangeItem{
			{Field: "status", Before: string(domain.StatusPendingReview), After: string(domain.StatusPublished)},
		},
		Version:       product.Version(),
		ProductBefore: &before,
		ProductAfter:  &after,
	}).Unwrap()

	if err := s.audits.Add(ctx, entry); err != nil {
		logger.Error(ctx, "product: audit write failed", err, map[string]any{
			"product_id": id,
		})
		return result.Fail[*domain.Product](asFailure(err))
	}

	if err := s.publishEvent(ctx, domain.EventProductApproved, after); err != nil {
		logger.Error(ctx, "product: publish approved event failed", err, map[string]any{
			"product_id": id,
		})
		return result.Fail[*domain.Product](asFailure(err))
	}

	s.cacheSnapshot(ctx, after)

	logger.Info(ctx, "Product approved", map[string]any{
		"product_id": id,
		"version":    product.Version(),
	})
	return result.Ok(product)
}

// GetProduct is a pure read; the cache in front of the store is best
// effort and never fails the call.
func (s *ProductService) GetProduct(ctx context.Context, id string) result.Result[*domain.Product] {
	cached, err := s.cache.Get(ctx, s.cacheKey(id))
	if err != nil {
		logger.Error(ctx, "cache: get product failed", err, map[string]any{
			"product_id": id,
		})
	}
	if cached != nil {
		return domain.HydrateProduct(*cached)
	}

	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return result.Fail[*domain.Product](asFailure(err))
	}
	if product == nil {
		return result.Fail[*domain.Product](serviceerrors.NewNotFoundError("product not found"))
	}

	s.cacheSnapshot(ctx, product.Snapshot())
	return result.Ok(product)
}

func (s *ProductService) GetAllProducts(ctx context.Context) result.Result[[]*domain.Product] {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return result.Fail[[]*domain.Product](asFailure(err))
	}
	return result.Ok(products)
}
