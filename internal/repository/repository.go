package repository

import (
	"context"

	"shapelab/internal/domain"
)

// CatalogRepository defines the interface for catalog data access
type CatalogRepository interface {
	// ImportCatalog replaces the stored products, categories and links
	ImportCatalog(ctx context.Context, catalog *domain.Catalog) error

	// ProductsWithCategories joins products to categories through links,
	// keeping products that have no category
	ProductsWithCategories(ctx context.Context) ([]domain.ProductCategory, error)

	// Close releases resources
	Close() error
}
