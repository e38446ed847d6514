package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/JCH97/Catalog-APIs/internal/core/domain"
	"github.com/JCH97/Catalog-APIs/internal/core/port/mock"
	"github.com/JCH97/Catalog-APIs/internal/core/serviceerrors"
	"go.uber.org/mock/gomock"
)

type productServiceMocks struct {
	products  *mock.MockProductPort
	audits    *mock.MockAuditPort
	publisher *mock.MockPublisherPort
	cache     *mock.MockCachePort[domain.ProductSnapshot]
}

func setupProductService(t *testing.T) (*ProductService, productServiceMocks) {
	ctrl := gomock.NewController(t)
	m := productServiceMocks{
		products:  mock.NewMockProductPort(ctrl),
		audits:    mock.NewMockAuditPort(ctrl),
		publisher: mock.NewMockPublisherPort(ctrl),
		cache:     mock.NewMockCachePort[domain.ProductSnapshot](ctrl),
	}
	svc := NewProductService(m.products, m.audits, m.publisher, m.cache)
	return svc, m
}

func strPtr(s string) *string { return &s }

func storedProduct(t *testing.T, actor domain.Role) *domain.Product {
	t.Helper()
	r := domain.NewProduct(domain.CreateProductInput{
		GTIN:  "7891000315507",
		Name:  "Whole Milk 1L",
		Brand: strPtr("Rancho Fresco"),
	}, actor)
	if r.IsFailure() {
		t.Fatalf("fixture product failed: %v", r.UnwrapError())
	}
	return r.Unwrap()
}

func decodeEvent(t *testing.T, payload []byte) domain.ProductEvent {
	t.Helper()
	var event domain.ProductEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		t.Fatalf("failed to decode event payload: %v", err)
	}
	return event
}

func TestProductService_CreateProduct(t *testing.T) {
	input := domain.CreateProductInput{
		GTIN: "7891000315507",
		Name: "Whole Milk 1L",
	}

	t.Run("success publishes created event and caches snapshot", func(t *testing.T) {
		svc, m := setupProductService(t)

		m.products.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		m.publisher.EXPECT().
			Publish(gomock.Any(), domain.EventTopic, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, payload []byte) error {
				event := decodeEvent(t, payload)
				if event.Type != domain.EventProductCreated {
					t.Fatalf("expected %s, got %s", domain.EventProductCreated, event.Type)
				}
				if event.Payload.ID != input.GTIN {
					t.Fatalf("expected payload id %s, got %s", input.GTIN, event.Payload.ID)
				}
				return nil
			})
		m.cache.EXPECT().Set(gomock.Any(), "product:7891000315507", gomock.Any(), productCacheTTL).Return(nil)

		r := svc.CreateProduct(context.Background(), input, domain.RoleProvider)

		product := r.Unwrap()
		if product.Status() != domain.StatusPendingReview {
			t.Fatalf("expected PENDING_REVIEW, got %s", product.Status())
		}
		if product.Version() != 1 {
			t.Fatalf("expected version 1, got %d", product.Version())
		}
	})

	t.Run("invalid input fails before any collaborator runs", func(t *testing.T) {
		svc, _ := setupProductService(t)

		r := svc.CreateProduct(context.Background(), domain.CreateProductInput{GTIN: "bad", Name: "Milk"}, domain.RoleProvider)

		err := r.UnwrapError()
		if err.Kind != serviceerrors.KindValidation {
			t.Fatalf("expected VALIDATION, got %s", err.Kind)
		}
	})

	t.Run("duplicate gtin keeps the conflict kind", func(t *testing.T) {
		svc, m := setupProductService(t)

		m.products.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			Return(serviceerrors.NewConflictError("product already exists"))

		r := svc.CreateProduct(context.Background(), input, domain.RoleProvider)

		err := r.UnwrapError()
		if err.Kind != serviceerrors.KindConflict {
			t.Fatalf("expected CONFLICT, got %s", err.Kind)
		}
	})

	t.Run("unclassified store error surfaces as validation failure", func(t *testing.T) {
		svc, m := setupProductService(t)

		m.products.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

		r := svc.CreateProduct(context.Background(), input, domain.RoleProvider)

		err := r.UnwrapError()
		if err.Kind != serviceerrors.KindValidation {
			t.Fatalf("expected VALIDATION, got %s", err.Kind)
		}
		if err.Message != "connection reset" {
			t.Fatalf("expected underlying message, got %q", err.Message)
		}
	})

	t.Run("publish failure after save is reported as failure", func(t *testing.T) {
		svc, m := setupProductService(t)

		m.products.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		m.publisher.EXPECT().
			Publish(gomock.Any(), domain.EventTopic, gomock.Any()).
			Return(errors.New("broker unavailable"))

		r := svc.CreateProduct(context.Background(), input, domain.RoleProvider)

		if !r.IsFailure() {
			t.Fatal("expected failure when publish fails")
		}
	})

	t.Run("cache failure does not fail creation", func(t *testing.T) {
		svc, m := setupProductService(t)

		m.products.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		m.publisher.EXPECT().Publish(gomock.Any(), domain.EventTopic, gomock.Any()).Return(nil)
		m.cache.EXPECT().
			Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("redis down"))

		r := svc.CreateProduct(context.Background(), input, domain.RoleProvider)

		if !r.IsSuccess() {
			t.Fatalf("expected success despite cache error, got %v", r.UnwrapError())
		}
	})
}

func TestProductService_UpdateProduct(t *testing.T) {
	t.Run("persists, audits the diff and publishes", func(t *testing.T) {
		svc, m := setupProductService(t)
		product := storedProduct(t, domain.RoleProvider)

		m.products.EXPECT().FindByID(gomock.Any(), product.ID()).Return(product, nil)
		m.products.EXPECT().Update(gomock.Any(), product).Return(nil)
		m.audits.EXPECT().
			Add(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry *domain.AuditEntry) error {
				if entry.Action() != domain.AuditActionUpdated {
					t.Fatalf("expected UPDATED, got %s", entry.Action())
				}
				if len(entry.Changes()) != 2 {
					t.Fatalf("expected 2 change items, got %d", len(entry.Changes()))
				}
				if entry.Version() != 2 {
					t.Fatalf("expected audited version 2, got %d", entry.Version())
				}
				return nil
			})
		m.publisher.EXPECT().
			Publish(gomock.Any(), domain.EventTopic, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, payload []byte) error {
				if event := decodeEvent(t, payload); event.Type != domain.EventProductUpdated {
					t.Fatalf("expected %s, got %s", domain.EventProductUpdated, event.Type)
				}
				return nil
			})
		m.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		r := svc.UpdateProduct(context.Background(), product.ID(), domain.ProductPatch{
			Name:  strPtr("Skim Milk 1L"),
			Brand: strPtr("Granja Azul"),
		}, domain.RoleProvider)

		if r.Unwrap().Version() != 2 {
			t.Fatalf("expected version 2, got %d", r.Unwrap().Version())
		}
	})

	t.Run("no-op patch skips persistence, audit and publish", func(t *testing.T) {
		svc, m := setupProductService(t)
		product := storedProduct(t, domain.RoleProvider)

		m.products.EXPECT().FindByID(gomock.Any(), product.ID()).Return(product, nil)

		r := svc.UpdateProduct(context.Background(), product.ID(), domain.ProductPatch{
			Name: strPtr("Whole Milk 1L"),
		}, domain.RoleProvider)

		if r.Unwrap().Version() != 1 {
			t.Fatalf("no-op must keep version 1, got %d", r.Unwrap().Version())
		}
	})

	t.Run("unknown product fails not found", func(t *testing.T) {
		svc, m := setupProductService(t)

		m.products.EXPECT().FindByID(gomock.Any(), "00000000").Return(nil, nil)

		r := svc.UpdateProduct(context.Background(), "00000000", domain.ProductPatch{Name: strPtr("x")}, domain.RoleProvider)

		if err := r.UnwrapError(); err.Kind != serviceerrors.KindNotFound {
			t.Fatalf("expected NOT_FOUND, got %s", err.Kind)
		}
	})

	t.Run("provider editing published product fails without writes", func(t *testing.T) {
		svc, m := setupProductService(t)
		product := storedProduct(t, domain.RoleEditor)

		m.products.EXPECT().FindByID(gomock.Any(), product.ID()).Return(product, nil)

		r := svc.UpdateProduct(context.Background(), product.ID(), domain.ProductPatch{
			Name: strPtr("Skim Milk 1L"),
		}, domain.RoleProvider)

		if err := r.UnwrapError(); err.Kind != serviceerrors.KindValidation {
			t.Fatalf("expected VALIDATION, got %s", err.Kind)
		}
	})

	t.Run("audit write failure fails the operation", func(t *testing.T) {
		svc, m := setupProductService(t)
		product := storedProduct(t, domain.RoleProvider)

		m.products.EXPECT().FindByID(gomock.Any(), product.ID()).Return(product, nil)
		m.products.EXPECT().Update(gomock.Any(), product).Return(nil)
		m.audits.EXPECT().Add(gomock.Any(), gomock.Any()).Return(errors.New("write failed"))

		r := svc.UpdateProduct(context.Background(), product.ID(), domain.ProductPatch{
			Name: strPtr("Skim Milk 1L"),
		}, domain.RoleProvider)

		if !r.IsFailure() {
			t.Fatal("expected failure when audit write fails")
		}
	})
}

func TestProductService_ApproveProduct(t *testing.T) {
	t.Run("publishes product and records fixed status change", func(t *testing.T) {
		svc, m := setupProductService(t)
		product := storedProduct(t, domain.RoleProvider)

		m.products.EXPECT().FindByID(gomock.Any(), product.ID()).Return(product, nil)
		m.products.EXPECT().Update(gomock.Any(), product).Return(nil)
		m.audits.EXPECT().
			Add(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry *domain.AuditEntry) error {
				if entry.Action() != domain.AuditActionApproved {
					t.Fatalf("expected APPROVED, got %s", entry.Action())
				}
				changes := entry.Changes()
				if len(changes) != 1 || changes[0].Field != "status" {
					t.Fatalf("expected single status change, got %+v", changes)
				}
				if changes[0].Before != string(domain.StatusPendingReview) || changes[0].After != string(domain.StatusPublished) {
					t.Fatalf("unexpected status change values: %+v", changes[0])
				}
				if entry.Snapshot().ChangedByRole != domain.RoleEditor {
					t.Fatalf("expected EDITOR role on approval audit, got %s", entry.Snapshot().ChangedByRole)
				}
				return nil
			})
		m.publisher.EXPECT().
			Publish(gomock.Any(), domain.EventTopic, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, payload []byte) error {
				event := decodeEvent(t, payload)
				if event.Type != domain.EventProductApproved {
					t.Fatalf("expected %s, got %s", domain.EventProductApproved, event.Type)
				}
				if event.Payload.Status != domain.StatusPublished {
					t.Fatalf("expected PUBLISHED payload, got %s", event.Payload.Status)
				}
				return nil
			})
		m.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		r := svc.ApproveProduct(context.Background(), product.ID(), domain.RoleEditor)

		approved := r.Unwrap()
		if approved.Status() != domain.StatusPublished {
			t.Fatalf("expected PUBLISHED, got %s", approved.Status())
		}
		if approved.Version() != 2 {
			t.Fatalf("expected version 2, got %d", approved.Version())
		}
	})

	t.Run("non editor cannot approve", func(t *testing.T) {
		svc, m := setupProductService(t)
		product := storedProduct(t, domain.RoleProvider)

		m.products.EXPECT().FindByID(gomock.Any(), product.ID()).Return(product, nil)

		r := svc.ApproveProduct(context.Background(), product.ID(), domain.RoleProvider)

		if err := r.UnwrapError(); err.Kind != serviceerrors.KindValidation {
			t.Fatalf("expected VALIDATION, got %s", err.Kind)
		}
	})

	t.Run("unknown product fails not found", func(t *testing.T) {
		svc, m := setupProductService(t)

		m.products.EXPECT().FindByID(gomock.Any(), "99999999").Return(nil, nil)

		r := svc.ApproveProduct(context.Background(), "99999999", domain.RoleEditor)

		if err := r.UnwrapError(); err.Kind != serviceerrors.KindNotFound {
			t.Fatalf("expected NOT_FOUND, got %s", err.Kind)
		}
	})
}

func TestProductService_GetProduct(t *testing.T) {
	t.Run("cache hit skips the store", func(t *testing.T) {
		svc, m := setupProductService(t)
		snapshot := storedProduct(t, domain.RoleProvider).Snapshot()

		m.cache.EXPECT().Get(gomock.Any(), "product:7891000315507").Return(&snapshot, nil)

		r := svc.GetProduct(context.Background(), snapshot.ID)

		if got := r.Unwrap(); got.ID() != snapshot.ID || got.Name() != snapshot.Name {
			t.Fatalf("unexpected product from cache: %+v", got.Snapshot())
		}
	})

	t.Run("cache miss reads store and backfills cache", func(t *testing.T) {
		svc, m := setupProductService(t)
		product := storedProduct(t, domain.RoleProvider)

		m.cache.EXPECT().Get(gomock.Any(), "product:7891000315507").Return(nil, nil)
		m.products.EXPECT().FindByID(gomock.Any(), product.ID()).Return(product, nil)
		m.cache.EXPECT().Set(gomock.Any(), "product:7891000315507", gomock.Any(), productCacheTTL).Return(nil)

		r := svc.GetProduct(context.Background(), product.ID())

		if r.Unwrap().ID() != product.ID() {
			t.Fatal("unexpected product returned")
		}
	})

	t.Run("cache error falls through to the store", func(t *testing.T) {
		svc, m := setupProductService(t)
		product := storedProduct(t, domain.RoleProvider)

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down"))
		m.products.EXPECT().FindByID(gomock.Any(), product.ID()).Return(product, nil)
		m.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		r := svc.GetProduct(context.Background(), product.ID())

		if !r.IsSuccess() {
			t.Fatalf("expected success, got %v", r.UnwrapError())
		}
	})

	t.Run("unknown product fails not found", func(t *testing.T) {
		svc, m := setupProductService(t)

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)
		m.products.EXPECT().FindByID(gomock.Any(), "00000000").Return(nil, nil)

		r := svc.GetProduct(context.Background(), "00000000")

		if err := r.UnwrapError(); err.Kind != serviceerrors.KindNotFound {
			t.Fatalf("expected NOT_FOUND, got %s", err.Kind)
		}
	})
}

func TestProductService_GetAllProducts(t *testing.T) {
	t.Run("returns all stored products", func(t *testing.T) {
		svc, m := setupProductService(t)
		product := storedProduct(t, domain.RoleProvider)

		m.products.EXPECT().FindAll(gomock.Any()).Return([]*domain.Product{product}, nil)

		r := svc.GetAllProducts(context.Background())

		products := r.Unwrap()
		if len(products) != 1 || products[0].ID() != product.ID() {
			t.Fatalf("unexpected products: %d", len(products))
		}
	})

	t.Run("empty catalog is a success", func(t *testing.T) {
		svc, m := setupProductService(t)

		m.products.EXPECT().FindAll(gomock.Any()).Return(nil, nil)

		r := svc.GetAllProducts(context.Background())

		if products := r.Unwrap(); len(products) != 0 {
			t.Fatalf("expected empty list, got %d", len(products))
		}
	})

	t.Run("store error fails", func(t *testing.T) {
		svc, m := setupProductService(t)

		m.products.EXPECT().FindAll(gomock.Any()).Return(nil, errors.New("query failed"))

		if r := svc.GetAllProducts(context.Background()); !r.IsFailure() {
			t.Fatal("expected failure")
		}
	})
}

