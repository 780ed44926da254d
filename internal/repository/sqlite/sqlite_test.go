package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"shapelab/internal/domain"

	"github.com/google/go-cmp/cmp"
)

// ============================================================================
// Test Helpers
// ============================================================================

// newTestRepo creates an in-memory SQLite repository for testing
func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := New(MemoryPath)
	if err != nil {
		t.Fatalf("failed to create test repository: %v", err)
	}
	t.Cleanup(func() {
		repo.Close()
	})
	return repo
}

// assertNoError fails the test if err is not nil
func assertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func strPtr(s string) *string {
	return &s
}

// sampleCatalog mirrors the classic products/categories exercise:
// one product in two categories, one in a single category, one in none.
func sampleCatalog() *domain.Catalog {
	return &domain.Catalog{
		Products: []domain.Product{
			{ID: 1, Name: "Apple"},
			{ID: 2, Name: "Banana"},
			{ID: 3, Name: "Hammer"},
		},
		Categories: []domain.Category{
			{ID: 10, Name: "Fruit"},
			{ID: 20, Name: "Yellow"},
		},
		Links: []domain.Link{
			{ProductID: 1, CategoryID: 10},
			{ProductID: 2, CategoryID: 10},
			{ProductID: 2, CategoryID: 20},
		},
	}
}

// ============================================================================
// Helper Function Tests
// ============================================================================

func TestNullToStringPtr(t *testing.T) {
	if got := nullToStringPtr(sql.NullString{}); got != nil {
		t.Errorf("expected nil, got %q", *got)
	}
	got := nullToStringPtr(sql.NullString{String: "x", Valid: true})
	if got == nil || *got != "x" {
		t.Errorf("expected \"x\", got %v", got)
	}
	got = nullToStringPtr(sql.NullString{String: "", Valid: true})
	if got == nil || *got != "" {
		t.Errorf("expected empty non-nil string, got %v", got)
	}
}

// ============================================================================
// Join Tests
// ============================================================================

func TestProductsWithCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("keeps products without categories", func(t *testing.T) {
		repo := newTestRepo(t)
		assertNoError(t, repo.ImportCatalog(ctx, sampleCatalog()))

		rows, err := repo.ProductsWithCategories(ctx)
		assertNoError(t, err)

		want := []domain.ProductCategory{
			{ProductName: "Apple", CategoryName: strPtr("Fruit")},
			{ProductName: "Banana", CategoryName: strPtr("Fruit")},
			{ProductName: "Banana", CategoryName: strPtr("Yellow")},
			{ProductName: "Hammer", CategoryName: nil},
		}
		if diff := cmp.Diff(want, rows); diff != "" {
			t.Errorf("rows mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty catalog yields no rows", func(t *testing.T) {
		repo := newTestRepo(t)
		assertNoError(t, repo.ImportCatalog(ctx, domain.NewCatalog()))

		rows, err := repo.ProductsWithCategories(ctx)
		assertNoError(t, err)
		if len(rows) != 0 {
			t.Errorf("expected no rows, got %d", len(rows))
		}
	})

	t.Run("dangling category link yields NULL", func(t *testing.T) {
		repo := newTestRepo(t)
		catalog := &domain.Catalog{
			Products: []domain.Product{{ID: 1, Name: "Widget"}},
			Links:    []domain.Link{{ProductID: 1, CategoryID: 99}},
		}
		assertNoError(t, repo.ImportCatalog(ctx, catalog))

		rows, err := repo.ProductsWithCategories(ctx)
		assertNoError(t, err)
		want := []domain.ProductCategory{{ProductName: "Widget"}}
		if diff := cmp.Diff(want, rows); diff != "" {
			t.Errorf("rows mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("links to unknown products are dropped", func(t *testing.T) {
		repo := newTestRepo(t)
		catalog := &domain.Catalog{
			Products:   []domain.Product{{ID: 1, Name: "Widget"}},
			Categories: []domain.Category{{ID: 5, Name: "Tools"}},
			Links:      []domain.Link{{ProductID: 42, CategoryID: 5}},
		}
		assertNoError(t, repo.ImportCatalog(ctx, catalog))

		rows, err := repo.ProductsWithCategories(ctx)
		assertNoError(t, err)
		want := []domain.ProductCategory{{ProductName: "Widget"}}
		if diff := cmp.Diff(want, rows); diff != "" {
			t.Errorf("rows mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("duplicate links are not deduplicated", func(t *testing.T) {
		repo := newTestRepo(t)
		catalog := &domain.Catalog{
			Products:   []domain.Product{{ID: 1, Name: "Widget"}},
			Categories: []domain.Category{{ID: 5, Name: "Tools"}},
			Links:      []domain.Link{{ProductID: 1, CategoryID: 5}, {ProductID: 1, CategoryID: 5}},
		}
		assertNoError(t, repo.ImportCatalog(ctx, catalog))

		rows, err := repo.ProductsWithCategories(ctx)
		assertNoError(t, err)
		if len(rows) != 2 {
			t.Errorf("expected 2 rows, got %d", len(rows))
		}
	})

	t.Run("rows follow product insertion order", func(t *testing.T) {
		repo := newTestRepo(t)
		catalog := &domain.Catalog{
			Products: []domain.Product{{ID: 9, Name: "Zeta"}, {ID: 1, Name: "Alpha"}},
		}
		assertNoError(t, repo.ImportCatalog(ctx, catalog))

		rows, err := repo.ProductsWithCategories(ctx)
		assertNoError(t, err)
		if len(rows) != 2 || rows[0].ProductName != "Zeta" || rows[1].ProductName != "Alpha" {
			t.Errorf("unexpected order: %+v", rows)
		}
	})
}

func TestImportCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces previous catalog", func(t *testing.T) {
		repo := newTestRepo(t)
		assertNoError(t, repo.ImportCatalog(ctx, sampleCatalog()))
		assertNoError(t, repo.ImportCatalog(ctx, &domain.Catalog{
			Products: []domain.Product{{ID: 7, Name: "Spanner"}},
		}))

		rows, err := repo.ProductsWithCategories(ctx)
		assertNoError(t, err)
		want := []domain.ProductCategory{{ProductName: "Spanner"}}
		if diff := cmp.Diff(want, rows); diff != "" {
			t.Errorf("rows mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("duplicate product rolls back", func(t *testing.T) {
		repo := newTestRepo(t)
		assertNoError(t, repo.ImportCatalog(ctx, sampleCatalog()))

		err := repo.ImportCatalog(ctx, &domain.Catalog{
			Products: []domain.Product{{ID: 1, Name: "a"}, {ID: 1, Name: "b"}},
		})
		if err == nil {
			t.Fatal("expected unique constraint error")
		}

		rows, err := repo.ProductsWithCategories(ctx)
		assertNoError(t, err)
		if len(rows) != 4 {
			t.Errorf("expected original 4 rows after rollback, got %d", len(rows))
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		repo := newTestRepo(t)
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		if err := repo.ImportCatalog(cctx, sampleCatalog()); err == nil {
			t.Error("expected error for cancelled context")
		}
	})
}

func TestNewFileDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")
	repo, err := New(path)
	assertNoError(t, err)
	assertNoError(t, repo.ImportCatalog(context.Background(), sampleCatalog()))
	assertNoError(t, repo.Close())

	reopened, err := New(path)
	assertNoError(t, err)
	defer reopened.Close()

	rows, err := reopened.ProductsWithCategories(context.Background())
	assertNoError(t, err)
	if len(rows) != 4 {
		t.Errorf("expected 4 rows, got %d", len(rows))
	}
}
