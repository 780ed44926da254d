// Package repository defines the data access interfaces for shapelab.
//
// The CatalogRepository interface stores the three catalog tables
// (products, categories, product/category links) and runs the join that
// pairs each product with its categories. The implementation lives in the
// sqlite subpackage.
//
// # SQLite Implementation
//
// The sqlite implementation uses the pure-Go modernc.org/sqlite driver.
// It defaults to a private in-memory database, where SQLite only serves as
// the relational join engine. ImportCatalog replaces all tables in one
// transaction, so a failed import leaves the previous catalog intact.
//
// # Testing
//
// The sqlite repository is tested with in-memory databases.
package repository
