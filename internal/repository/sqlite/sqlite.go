package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"shapelab/internal/domain"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database
const MemoryPath = ":memory:"

// Repository implements repository.CatalogRepository using SQLite
type Repository struct {
	db *sql.DB
}

// New creates a new SQLite repository
func New(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every connection to :memory: is a separate database, so keep one.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	repo := &Repository{db: db}
	if err := repo.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return repo, nil
}

func (r *Repository) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS products (
		product_id INTEGER NOT NULL UNIQUE,
		product_name TEXT NOT NULL,
		position INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS categories (
		category_id INTEGER NOT NULL UNIQUE,
		category_name TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS product_category_links (
		product_id INTEGER NOT NULL,
		category_id INTEGER NOT NULL,
		position INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_links_product ON product_category_links(product_id);
	CREATE INDEX IF NOT EXISTS idx_links_category ON product_category_links(category_id);
	`

	_, err := r.db.Exec(schema)
	return err
}

// ImportCatalog replaces all catalog tables in a single transaction
func (r *Repository) ImportCatalog(ctx context.Context, catalog *domain.Catalog) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"product_category_links", "categories", "products"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	productStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO products (product_id, product_name, position) VALUES (?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare product insert: %w", err)
	}
	defer productStmt.Close()

	for i, p := range catalog.Products {
		if _, err := productStmt.ExecContext(ctx, p.ID, p.Name, i); err != nil {
			return fmt.Errorf("failed to insert product %d: %w", p.ID, err)
		}
	}

	categoryStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO categories (category_id, category_name) VALUES (?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare category insert: %w", err)
	}
	defer categoryStmt.Close()

	for _, c := range catalog.Categories {
		if _, err := categoryStmt.ExecContext(ctx, c.ID, c.Name); err != nil {
			return fmt.Errorf("failed to insert category %d: %w", c.ID, err)
		}
	}

	linkStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO product_category_links (product_id, category_id, position) VALUES (?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare link insert: %w", err)
	}
	defer linkStmt.Close()

	for i, l := range catalog.Links {
		if _, err := linkStmt.ExecContext(ctx, l.ProductID, l.CategoryID, i); err != nil {
			return fmt.Errorf("failed to insert link %d->%d: %w", l.ProductID, l.CategoryID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ProductsWithCategories returns every product/category pair reachable
// through a link, plus one row with a NULL category for each product
// without one. Rows follow product order, then link order.
func (r *Repository) ProductsWithCategories(ctx context.Context) ([]domain.ProductCategory, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.product_name, c.category_name
		FROM products p
		LEFT JOIN product_category_links l ON p.product_id = l.product_id
		LEFT JOIN categories c ON l.category_id = c.category_id
		ORDER BY p.position, l.position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query products with categories: %w", err)
	}
	defer rows.Close()

	result := make([]domain.ProductCategory, 0)
	for rows.Next() {
		var row joinRow
		if err := rows.Scan(row.scanArgs()...); err != nil {
			return nil, fmt.Errorf("failed to scan product category: %w", err)
		}
		result = append(result, row.toDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product categories: %w", err)
	}

	return result, nil
}

// Close closes the database connection
func (r *Repository) Close() error {
	return r.db.Close()
}
