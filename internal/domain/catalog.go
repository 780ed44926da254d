package domain

import "fmt"

// Product is an item that may belong to any number of categories
type Product struct {
	ID   int64  `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Category groups products
type Category struct {
	ID   int64  `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Link associates a product with a category
type Link struct {
	ProductID  int64 `json:"product_id" yaml:"product_id"`
	CategoryID int64 `json:"category_id" yaml:"category_id"`
}

// Catalog holds the three tables that feed the product/category join
type Catalog struct {
	Products   []Product  `json:"products" yaml:"products"`
	Categories []Category `json:"categories" yaml:"categories"`
	Links      []Link     `json:"links" yaml:"links"`
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{
		Products:   make([]Product, 0),
		Categories: make([]Category, 0),
		Links:      make([]Link, 0),
	}
}

// Validate checks that product and category IDs are unique
func (c *Catalog) Validate() error {
	products := make(map[int64]bool, len(c.Products))
	for _, p := range c.Products {
		if products[p.ID] {
			return fmt.Errorf("duplicate product id %d", p.ID)
		}
		products[p.ID] = true
	}

	categories := make(map[int64]bool, len(c.Categories))
	for _, cat := range c.Categories {
		if categories[cat.ID] {
			return fmt.Errorf("duplicate category id %d", cat.ID)
		}
		categories[cat.ID] = true
	}

	return nil
}

// ProductCategory is one row of the join. CategoryName is nil for products
// with no matching category.
type ProductCategory struct {
	ProductName  string  `json:"product_name" yaml:"product_name"`
	CategoryName *string `json:"category_name" yaml:"category_name"`
}

// Category returns the category name, or "" when there is none
func (pc ProductCategory) Category() string {
	if pc.CategoryName == nil {
		return ""
	}
	return *pc.CategoryName
}
