// Package service implements business logic for shapelab.
//
// ShapeService builds shapes through a domain.Factory, evaluates whole
// documents of shape specs and renders reports through the codec package.
// One bad spec never aborts a document; its error is recorded in the report.
//
// CatalogService validates and imports catalogs into a
// repository.CatalogRepository and runs the product/category join.
//
// Both services log through zap and accept a nil logger.
package service
