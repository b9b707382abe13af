// Package export encodes a [model.BookContent] as JSON or YAML and validates
// encoded books against an embedded JSON Schema.
//
// Field names are snake_case and bounding boxes are four element arrays.
// Footer blocks never appear in a valid document.
package export
