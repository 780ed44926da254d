package service

import (
	"context"
	"fmt"

	"shapelab/internal/domain"
	"shapelab/internal/repository"

	"go.uber.org/zap"
)

// CatalogService imports catalogs and runs the product/category join
type CatalogService struct {
	repo   repository.CatalogRepository
	logger *zap.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(repo repository.CatalogRepository, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{
		repo:   repo,
		logger: logger,
	}
}

// Import validates and stores a catalog, replacing the previous one
func (s *CatalogService) Import(ctx context.Context, catalog *domain.Catalog) error {
	if catalog == nil {
		return fmt.Errorf("catalog is nil")
	}
	if err := catalog.Validate(); err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}

	if err := s.repo.ImportCatalog(ctx, catalog); err != nil {
		return err
	}

	s.logger.Info("catalog imported",
		zap.Int("products", len(catalog.Products)),
		zap.Int("categories", len(catalog.Categories)),
		zap.Int("links", len(catalog.Links)))

	return nil
}

// Join returns the products paired with their categories
func (s *CatalogService) Join(ctx context.Context) ([]domain.ProductCategory, error) {
	rows, err := s.repo.ProductsWithCategories(ctx)
	if err != nil {
		return nil, err
	}

	uncategorized := 0
	for _, row := range rows {
		if row.CategoryName == nil {
			uncategorized++
		}
	}
	s.logger.Debug("catalog joined",
		zap.Int("rows", len(rows)),
		zap.Int("uncategorized", uncategorized))

	return rows, nil
}

// ImportAndJoin stores a catalog and immediately joins it
func (s *CatalogService) ImportAndJoin(ctx context.Context, catalog *domain.Catalog) ([]domain.ProductCategory, error) {
	if err := s.Import(ctx, catalog); err != nil {
		return nil, err
	}
	return s.Join(ctx)
}
