package bookflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pfraquete/BookFlow/model"
	"github.com/pfraquete/BookFlow/pdfsource"
)

// Extractor provides a fluent interface for converting a PDF into a book.
// Each configuration method returns a new Extractor instance, making it
// safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source, one of the two
	filename string
	doc      *model.Document

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		doc:      e.doc,
		options:  e.options.clone(),
		err:      e.err,
	}
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Pages specifies which pages to convert (1-indexed).
// Multiple calls are cumulative.
//
// Example:
//
//	book, err := bookflow.Open("book.pdf").Pages(1, 3, 5).Book()
func (e *Extractor) Pages(pages ...int) *Extractor {
	newExt := e.clone()
	newExt.options.pages = append(newExt.options.pages, pages...)
	return newExt
}

// PageRange specifies a range of pages to convert (1-indexed, inclusive).
//
// Example:
//
//	book, err := bookflow.Open("book.pdf").PageRange(5, 10).Book()
func (e *Extractor) PageRange(start, end int) *Extractor {
	newExt := e.clone()
	if start > end && newExt.err == nil {
		newExt.err = fmt.Errorf("invalid page range %d-%d", start, end)
		return newExt
	}
	for i := start; i <= end; i++ {
		newExt.options.pages = append(newExt.options.pages, i)
	}
	return newExt
}

// Lang sets the language attribute of the generated HTML document.
//
// Example:
//
//	html, err := bookflow.Open("book.pdf").Lang("en").HTML()
func (e *Extractor) Lang(lang string) *Extractor {
	newExt := e.clone()
	newExt.options.lang = lang
	return newExt
}

// Logger sets the logger that receives per-stage debug records and
// extraction warnings. The default is slog.Default().
func (e *Extractor) Logger(logger *slog.Logger) *Extractor {
	newExt := e.clone()
	newExt.options.logger = logger
	return newExt
}

// Context sets the context checked while pages are read from a file.
func (e *Extractor) Context(ctx context.Context) *Extractor {
	newExt := e.clone()
	newExt.options.ctx = ctx
	return newExt
}

// ============================================================================
// Terminal Operations (execute extraction and return results)
// ============================================================================

// Document returns the extracted document for the configured pages.
//
// Example:
//
//	doc, err := bookflow.Open("book.pdf").Pages(1).Document()
func (e *Extractor) Document() (*model.Document, error) {
	if e.err != nil {
		return nil, e.err
	}

	switch {
	case e.doc != nil:
		return e.selectFromDocument()
	case e.filename != "":
		pages, err := zeroIndexed(e.options.pages)
		if err != nil {
			return nil, err
		}
		doc, err := pdfsource.Load(e.options.context(), e.filename, pdfsource.Options{
			Pages:  pages,
			Logger: e.options.log(),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to read PDF: %w", err)
		}
		return doc, nil
	default:
		return nil, ErrNoSource
	}
}

// Book runs the structure recovery pipeline and returns the book.
//
// Example:
//
//	book, err := bookflow.Open("book.pdf").Book()
//	if errors.Is(err, bookflow.ErrNoContent) {
//	    // scanned or empty PDF
//	}
func (e *Extractor) Book() (*model.BookContent, error) {
	doc, err := e.Document()
	if err != nil {
		return nil, err
	}
	return Build(doc, e.options.log())
}

// HTML converts the document and returns the rendered HTML.
//
// Example:
//
//	html, err := bookflow.Open("book.pdf").HTML()
func (e *Extractor) HTML() (string, error) {
	res, err := e.Convert()
	if err != nil {
		return "", err
	}
	return res.HTML, nil
}

// Convert returns both the book and its HTML rendering.
//
// Example:
//
//	res, err := bookflow.Open("book.pdf").Convert()
func (e *Extractor) Convert() (*Result, error) {
	book, err := e.Book()
	if err != nil {
		return nil, err
	}

	html, err := Render(book, e.options.renderOptions())
	if err != nil {
		return nil, err
	}
	return &Result{Book: book, HTML: html}, nil
}

// PageCount returns the number of pages of the source.
func (e *Extractor) PageCount() (int, error) {
	if e.err != nil {
		return 0, e.err
	}

	switch {
	case e.doc != nil:
		return e.doc.TotalPages(), nil
	case e.filename != "":
		info, err := pdfsource.ReadInfo(e.filename)
		if err != nil {
			return 0, fmt.Errorf("failed to get page count: %w", err)
		}
		return info.PageCount, nil
	default:
		return 0, ErrNoSource
	}
}

// ============================================================================
// Internal helpers
// ============================================================================

// zeroIndexed converts 1-indexed page numbers to 0-indexed. Range checks
// against the page count happen where the count is known.
func zeroIndexed(pages []int) ([]int, error) {
	if len(pages) == 0 {
		return nil, nil
	}
	out := make([]int, 0, len(pages))
	for _, p := range pages {
		if p < 1 {
			return nil, fmt.Errorf("page %d out of range", p)
		}
		out = append(out, p-1)
	}
	return out, nil
}

// selectFromDocument returns a copy of the in-memory document restricted to
// the configured pages
func (e *Extractor) selectFromDocument() (*model.Document, error) {
	if len(e.options.pages) == 0 {
		return e.doc, nil
	}

	pageCount := e.doc.TotalPages()
	wanted := make(map[int]bool)
	for _, p := range e.options.pages {
		if p < 1 || p > pageCount {
			return nil, fmt.Errorf("page %d out of range (1-%d)", p, pageCount)
		}
		wanted[p-1] = true
	}

	out := &model.Document{
		Metadata:  e.doc.Metadata,
		PageCount: pageCount,
	}
	for _, page := range e.doc.Pages {
		if wanted[page.Index] {
			out.Pages = append(out.Pages, page)
		}
	}
	return out, nil
}
