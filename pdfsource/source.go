package pdfsource

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/ledongthuc/pdf"

	"github.com/pfraquete/BookFlow/layout"
	"github.com/pfraquete/BookFlow/model"
)

// ErrPageRange is returned when a selected page does not exist
var ErrPageRange = errors.New("pdfsource: page out of range")

// defaultPageHeight is US Letter, used when a page has no usable MediaBox
const defaultPageHeight = 792.0

// Options configures Load
type Options struct {
	// Pages selects 0-based page indices. Nil loads every page.
	Pages []int

	// Logger receives warnings about unreadable pages and metadata.
	// Nil means slog.Default().
	Logger *slog.Logger
}

// Load extracts spans and metadata from the PDF at path. Pages whose content
// stream cannot be decoded are skipped with a warning. The context is checked
// between pages.
func Load(ctx context.Context, path string, opts Options) (*model.Document, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pdfsource: open %s: %w", path, err)
	}
	defer f.Close()

	info, err := ReadInfo(path)
	if err != nil {
		logger.Warn("falling back to trailer metadata", "path", path, "error", err)
		info = trailerInfo(r)
	}

	indexes, err := selectPages(opts.Pages, r.NumPage())
	if err != nil {
		return nil, err
	}

	doc := &model.Document{
		Metadata:  info.Metadata(),
		PageCount: r.NumPage(),
	}

	for _, idx := range indexes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p := r.Page(idx + 1)
		if p.V.IsNull() {
			logger.Warn("skipping missing page", "path", path, "page", idx)
			continue
		}

		glyphs, err := pageGlyphs(p)
		if err != nil {
			logger.Warn("skipping unreadable page", "path", path, "page", idx, "error", err)
			continue
		}

		width, height := pageSize(p)
		for _, page := range layout.GroupSpans(GlyphsToSpans(glyphs, idx, height)) {
			page.Width = width
			page.Height = height
			doc.Pages = append(doc.Pages, page)
		}
	}

	logger.Debug("loaded pdf", "path", path, "pages", len(doc.Pages), "page_count", doc.PageCount)
	return doc, nil
}

// selectPages validates 0-based page indices against count. Nil selects all.
func selectPages(pages []int, count int) ([]int, error) {
	if len(pages) == 0 {
		all := make([]int, count)
		for i := range all {
			all[i] = i
		}
		return all, nil
	}

	seen := make(map[int]bool)
	var out []int
	for _, p := range pages {
		if p < 0 || p >= count {
			return nil, fmt.Errorf("%w: %d (document has %d pages)", ErrPageRange, p+1, count)
		}
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	sort.Ints(out)
	return out, nil
}

// pageGlyphs decodes the page's content stream. The decoder panics on some
// malformed streams, so the panic is turned into an error.
func pageGlyphs(p pdf.Page) (glyphs []Glyph, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("decoding content stream: %v", rec)
		}
	}()

	content := p.Content()
	glyphs = make([]Glyph, 0, len(content.Text))
	for _, t := range content.Text {
		glyphs = append(glyphs, Glyph{
			Font:     t.Font,
			FontSize: t.FontSize,
			X:        t.X,
			Y:        t.Y,
			W:        t.W,
			S:        t.S,
		})
	}
	return glyphs, nil
}

// pageSize reads the page's MediaBox, following inheritance from parent
// page tree nodes
func pageSize(p pdf.Page) (width, height float64) {
	for v := p.V; !v.IsNull(); v = v.Key("Parent") {
		box := v.Key("MediaBox")
		if box.Kind() == pdf.Array && box.Len() == 4 {
			width = box.Index(2).Float64() - box.Index(0).Float64()
			height = box.Index(3).Float64() - box.Index(1).Float64()
			if width > 0 && height > 0 {
				return width, height
			}
		}
	}
	return 0, defaultPageHeight
}
