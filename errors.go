package bookflow

import "errors"

var (
	// ErrNoContent is returned when no page of a document yields any text.
	// It separates "extraction could not run" from an empty book.
	ErrNoContent = errors.New("bookflow: no extractable content")

	// ErrNoSource is returned by terminal operations on an Extractor that
	// has neither a file nor a document to read from
	ErrNoSource = errors.New("bookflow: no source file or document")
)
