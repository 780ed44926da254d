package sqlite

import (
	"database/sql"

	"shapelab/internal/domain"
)

// nullToStringPtr converts sql.NullString to *string, nil when NULL
func nullToStringPtr(ns sql.NullString) *string {
	if ns.Valid {
		s := ns.String
		return &s
	}
	return nil
}

// joinRow holds the scan targets for one row of the product/category join
type joinRow struct {
	productName  string
	categoryName sql.NullString
}

func (r *joinRow) scanArgs() []interface{} {
	return []interface{}{&r.productName, &r.categoryName}
}

func (r *joinRow) toDomain() domain.ProductCategory {
	return domain.ProductCategory{
		ProductName:  r.productName,
		CategoryName: nullToStringPtr(r.categoryName),
	}
}
