package structure

import (
	"strings"

	"github.com/pfraquete/BookFlow/layout"
	"github.com/pfraquete/BookFlow/model"
)

// titleScanDepth is how many leading blocks of the first chapter are
// searched for a title-sized heading
const titleScanDepth = 5

// DetectTitle resolves the book title. The first non-empty of these wins:
// the metadata title, the first chapter's title unless it is the leading
// sentinel, the first heading among the first chapter's opening blocks set
// at least 1.5 times the baseline, and finally [model.UntitledBook].
func DetectTitle(meta model.Metadata, chapters []model.Chapter, baseline float64) string {
	if title := meta.Title(); title != "" {
		return title
	}
	if len(chapters) == 0 {
		return model.UntitledBook
	}

	first := &chapters[0]
	if !first.IsLeading() {
		if title := strings.TrimSpace(first.Title); title != "" {
			return title
		}
	}

	if baseline <= 0 {
		baseline = layout.DefaultBaseline
	}
	minSize := baseline * layout.TitleSizeMultiplier
	for i, block := range first.Blocks {
		if i == titleScanDepth {
			break
		}
		if block.IsHeading() && block.FontSize >= minSize {
			if title := strings.TrimSpace(block.Text); title != "" {
				return title
			}
		}
	}

	return model.UntitledBook
}

// DetectAuthor returns the metadata author, or "" when absent
func DetectAuthor(meta model.Metadata) string {
	return meta.Author()
}
