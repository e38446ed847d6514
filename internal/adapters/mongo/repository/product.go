package repository

import (
	"context"

	"github.com/JCH97/Catalog-APIs/internal/adapters/mongo/document"
	"github.com/JCH97/Catalog-APIs/internal/core/domain"
	"github.com/JCH97/Catalog-APIs/internal/core/port"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProductRepository struct {
	*BaseRepository[document.ProductDocument]
}

func NewProductRepository(db *mongo.Database) port.ProductPort {
	return &ProductRepository{
		BaseRepository: NewBaseRepository[document.ProductDocument](db, "products"),
	}
}

func (r *ProductRepository) Save(ctx context.Context, product *domain.Product) error {
	doc := document.FromProductSnapshot(product.Snapshot())
	return r.Insert(ctx, doc)
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	doc, err := r.BaseRepository.FindByID(ctx, id)
	if err != nil || doc == nil {
		return nil, err
	}

	hydrated := domain.HydrateProduct(doc.ToSnapshot())
	if hydrated.IsFailure() {
		return nil, hydrated.UnwrapError()
	}
	return hydrated.Unwrap(), nil
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]*domain.Product, error) {
	docs, err := r.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	products := make([]*domain.Product, len(docs))
	for i, doc := range docs {
		hydrated := domain.HydrateProduct(doc.ToSnapshot())
		if hydrated.IsFailure() {
			return nil, hydrated.UnwrapError()
		}
		products[i] = hydrated.Unwrap()
	}

	return products, nil
}

func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	doc := document.FromProductSnapshot(product.Snapshot())
	return r.Replace(ctx, doc.ID, doc)
}
