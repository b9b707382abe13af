package bookflow

import (
	"context"
	"log/slog"

	"github.com/pfraquete/BookFlow/layout"
	"github.com/pfraquete/BookFlow/model"
	"github.com/pfraquete/BookFlow/render"
	"github.com/pfraquete/BookFlow/structure"
)

// Result holds both artifacts of a conversion
type Result struct {
	Book *model.BookContent
	HTML string
}

// Build recovers the book structure of an extracted document.
//
// The stages run in order: line aggregation, baseline estimation, block
// classification, chapter segmentation and title/author detection. Each is a
// pure function of its input, so Build may run concurrently on independent
// documents. It fails only with ErrNoContent, when no page yields a line.
func Build(doc *model.Document, logger *slog.Logger) (*model.BookContent, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if doc == nil {
		return nil, ErrNoContent
	}

	lines := layout.Aggregate(doc.Pages)
	if len(lines) == 0 {
		return nil, ErrNoContent
	}
	logger.Debug("aggregated lines", "pages", len(doc.Pages), "lines", len(lines))

	baseline := layout.EstimateBaseline(lines)
	logger.Debug("estimated baseline", "font_size", baseline)

	blocks := layout.NewClassifier(baseline).Classify(lines)
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		hist := layout.TypeHistogram(blocks)
		logger.Debug("classified blocks",
			"headings", hist[model.BlockHeading],
			"paragraphs", hist[model.BlockParagraph],
			"quotes", hist[model.BlockQuote],
			"list_items", hist[model.BlockListItem],
			"footers", hist[model.BlockFooter],
		)
	}

	chapters := structure.Segment(blocks, baseline)
	book := &model.BookContent{
		Title:            structure.DetectTitle(doc.Metadata, chapters, baseline),
		Author:           structure.DetectAuthor(doc.Metadata),
		Chapters:         chapters,
		Metadata:         doc.Metadata.Clone(),
		TotalPages:       doc.TotalPages(),
		WordCount:        structure.CountWords(chapters),
		BaselineFontSize: baseline,
	}
	logger.Debug("segmented chapters", "chapters", len(chapters), "words", book.WordCount, "title", book.Title)

	return book, nil
}

// Render serializes a book to HTML
func Render(book *model.BookContent, opts render.Options) (string, error) {
	return render.HTML(book, opts)
}
