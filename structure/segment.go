package structure

import (
	"github.com/pfraquete/BookFlow/layout"
	"github.com/pfraquete/BookFlow/model"
)

// Segment splits classified blocks into chapters at level-1 headings.
//
// Content before the first level-1 heading collects in the leading chapter.
// When that chapter is still empty, the first level-1 heading names it
// instead of opening a new one; its page_start stays 0. Footers are dropped and lower-level headings
// stay in the block stream as ordinary content. The result always holds at
// least one chapter.
func Segment(blocks []model.Block, baseline float64) []model.Chapter {
	var chapters []model.Chapter
	current := model.NewLeadingChapter()

	for _, block := range blocks {
		if block.IsFooter() {
			continue
		}

		if block.IsHeading() && layout.LevelOf(block.Line, baseline) == layout.HeadingLevel1 {
			switch {
			case !current.IsEmpty():
				chapters = append(chapters, current)
				current = openChapter(block)
				continue
			case current.IsLeading():
				current.Title = block.Text
				continue
			}
			// an empty chapter that already has a real title keeps the
			// heading as content
		}

		current.Blocks = append(current.Blocks, block)
	}

	if !current.IsEmpty() || len(chapters) == 0 {
		chapters = append(chapters, current)
	}
	return chapters
}

func openChapter(heading model.Block) model.Chapter {
	return model.Chapter{
		Title:     heading.Text,
		Level:     int(layout.HeadingLevel1),
		PageStart: heading.Page,
	}
}

// CountWords returns the whitespace-token count over every block kept in
// the chapters
func CountWords(chapters []model.Chapter) int {
	n := 0
	for i := range chapters {
		n += chapters[i].WordCount()
	}
	return n
}
