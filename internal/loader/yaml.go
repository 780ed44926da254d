package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"shapelab/internal/domain"

	"gopkg.in/yaml.v3"
)

// CatalogYAML represents the catalog file structure
type CatalogYAML struct {
	Products   []ProductYAML  `yaml:"products"`
	Categories []CategoryYAML `yaml:"categories"`
	Links      []LinkYAML     `yaml:"links"`
}

// ProductYAML represents a product row
type ProductYAML struct {
	ID   int64  `yaml:"id"`
	Name string `yaml:"name"`
}

// CategoryYAML represents a category row
type CategoryYAML struct {
	ID   int64  `yaml:"id"`
	Name string `yaml:"name"`
}

// LinkYAML represents a product/category link row
type LinkYAML struct {
	ProductID  int64 `yaml:"product_id"`
	CategoryID int64 `yaml:"category_id"`
}

// LoadCatalog loads a catalog from a YAML file
func LoadCatalog(path string) (*domain.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return ParseCatalog(data)
}

// ParseCatalog parses a catalog from YAML bytes. Unknown keys are errors.
func ParseCatalog(data []byte) (*domain.Catalog, error) {
	var y CatalogYAML
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&y); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	catalog := convertYAMLToCatalog(&y)
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	return catalog, nil
}

func convertYAMLToCatalog(y *CatalogYAML) *domain.Catalog {
	catalog := domain.NewCatalog()

	for _, p := range y.Products {
		catalog.Products = append(catalog.Products, domain.Product{ID: p.ID, Name: p.Name})
	}

	for _, c := range y.Categories {
		catalog.Categories = append(catalog.Categories, domain.Category{ID: c.ID, Name: c.Name})
	}

	for _, l := range y.Links {
		catalog.Links = append(catalog.Links, domain.Link{ProductID: l.ProductID, CategoryID: l.CategoryID})
	}

	return catalog
}
