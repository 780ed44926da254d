// Package domain defines the core types for shapelab.
//
// This package contains the geometric shape library and the catalog entities
// used by the product/category join.
//
// # Shapes
//
// Shape is the capability set {Area, IsRightAngled} implemented by every
// variant. Circle and Triangle validate their inputs at construction and are
// immutable afterwards; a failed construction never yields a usable value.
// Area and IsRightAngled cannot fail once a shape exists.
//
// Factory maps a case-insensitive kind name to a Constructor. New kinds are
// added with Register; dispatch logic never changes. CreateShape uses a
// default factory holding "circle" and "triangle".
//
// # Errors
//
// All validation failures wrap ErrInvalidArgument and carry a readable
// reason. Test for them with errors.Is.
//
// # Documents
//
// ShapeSpec and ShapeDocument describe batches of factory requests read from
// files; Report and Evaluation carry the results.
//
// # Catalog
//
// Product, Category and Link are the three input tables of the join.
// ProductCategory is one output row; a nil CategoryName marks a product
// with no category.
//
// # Design Principles
//
// - Immutable value objects
// - No database or external dependencies
// - Pure domain logic without infrastructure concerns
package domain
