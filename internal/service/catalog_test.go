package service

import (
	"context"
	"errors"
	"testing"

	"shapelab/internal/domain"
	"shapelab/internal/repository/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// failingRepo returns err from every call
type failingRepo struct {
	err      error
	imported int
}

func (r *failingRepo) ImportCatalog(ctx context.Context, catalog *domain.Catalog) error {
	r.imported++
	return r.err
}

func (r *failingRepo) ProductsWithCategories(ctx context.Context) ([]domain.ProductCategory, error) {
	return nil, r.err
}

func (r *failingRepo) Close() error { return nil }

func newSQLiteCatalogService(t *testing.T, logger *zap.Logger) *CatalogService {
	t.Helper()
	repo, err := sqlite.New(sqlite.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return NewCatalogService(repo, logger)
}

func TestCatalogServiceImportAndJoin(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	svc := newSQLiteCatalogService(t, zap.New(core))

	catalog := &domain.Catalog{
		Products:   []domain.Product{{ID: 1, Name: "Apple"}, {ID: 2, Name: "Stone"}},
		Categories: []domain.Category{{ID: 1, Name: "Fruit"}, {ID: 2, Name: "Red"}},
		Links:      []domain.Link{{ProductID: 1, CategoryID: 1}, {ProductID: 1, CategoryID: 2}},
	}

	rows, err := svc.ImportAndJoin(context.Background(), catalog)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Apple", rows[0].ProductName)
	assert.Equal(t, "Fruit", rows[0].Category())
	assert.Equal(t, "Red", rows[1].Category())
	assert.Equal(t, "Stone", rows[2].ProductName)
	assert.Nil(t, rows[2].CategoryName)

	entries := logs.FilterMessage("catalog imported").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(2), entries[0].ContextMap()["products"])
}

func TestCatalogServiceImportValidation(t *testing.T) {
	repo := &failingRepo{}
	svc := NewCatalogService(repo, nil)

	err := svc.Import(context.Background(), nil)
	assert.Error(t, err)

	err = svc.Import(context.Background(), &domain.Catalog{
		Products: []domain.Product{{ID: 1, Name: "a"}, {ID: 1, Name: "b"}},
	})
	assert.ErrorContains(t, err, "duplicate product id 1")
	assert.Zero(t, repo.imported, "invalid catalog must not reach the repository")
}

func TestCatalogServiceRepositoryErrors(t *testing.T) {
	boom := errors.New("disk on fire")
	svc := NewCatalogService(&failingRepo{err: boom}, nil)

	err := svc.Import(context.Background(), domain.NewCatalog())
	assert.ErrorIs(t, err, boom)

	_, err = svc.Join(context.Background())
	assert.ErrorIs(t, err, boom)

	_, err = svc.ImportAndJoin(context.Background(), domain.NewCatalog())
	assert.ErrorIs(t, err, boom)
}
