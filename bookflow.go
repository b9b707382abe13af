// Package bookflow recovers the logical structure of a book from the
// positioned text of a PDF and renders it as HTML.
//
// Basic usage:
//
//	res, err := bookflow.Open("book.pdf").Convert()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(res.Book.Title, len(res.Book.Chapters))
//	os.WriteFile("book.html", []byte(res.HTML), 0o644)
//
// With options:
//
//	html, err := bookflow.Open("book.pdf").
//	    PageRange(3, 40).
//	    Lang("en").
//	    HTML()
//
// Documents produced by another extractor can be fed in directly:
//
//	book, err := bookflow.FromDocument(doc).Book()
//
// For finer control the stages are available as separate packages:
// layout, structure, render and export.
package bookflow

import (
	"github.com/pfraquete/BookFlow/model"
)

// Open returns an Extractor that reads the PDF file at filename.
// The file is read by terminal operations such as Convert, not by Open.
//
// Example:
//
//	res, err := bookflow.Open("book.pdf").Convert()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromDocument returns an Extractor over an already extracted document.
// The document is not modified.
//
// Example:
//
//	book, err := bookflow.FromDocument(doc).Book()
func FromDocument(doc *model.Document) *Extractor {
	return &Extractor{
		doc:     doc,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	book := bookflow.Must(bookflow.Open("book.pdf").Book())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
