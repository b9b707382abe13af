package layout

import (
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/pfraquete/BookFlow/model"
)

// boldFlagThreshold is the mean span flag value at or above which a line is
// considered bold (the bold bit is 16)
const boldFlagThreshold = float64(model.FlagBold)

var (
	boldNameMarkers   = []string{"bold", "black", "heavy"}
	italicNameMarkers = []string{"italic", "oblique"}
)

// Aggregate merges the spans of every page into lines, preserving document
// order. Lines never cross pages and lines with no text are dropped.
func Aggregate(pages []model.Page) []model.Line {
	var lines []model.Line
	for i := range pages {
		lines = append(lines, AggregatePage(pages[i])...)
	}
	return lines
}

// AggregatePage merges the spans of one page into lines
func AggregatePage(page model.Page) []model.Line {
	var lines []model.Line
	for _, block := range page.Blocks {
		for _, sl := range block.Lines {
			if line, ok := MergeSpans(sl.Spans, block.BBox, page.Index); ok {
				lines = append(lines, line)
			}
		}
	}
	return lines
}

// MergeSpans builds one line from spans the extractor placed on the same
// line. Spans whose text is blank do not contribute text or vote on font
// attributes. ok is false when the merged text is empty.
func MergeSpans(spans []model.Span, blockBBox model.BBox, page int) (model.Line, bool) {
	var parts []string
	names := NewTally[string]()
	sizes := NewTally[float64]()
	flagSum := 0

	for _, s := range spans {
		t := strings.TrimSpace(norm.NFC.String(s.Text))
		if t == "" {
			continue
		}
		parts = append(parts, t)
		names.Add(s.FontName)
		sizes.Add(s.FontSize)
		flagSum += int(s.Flags)
	}

	if len(parts) == 0 {
		return model.Line{}, false
	}

	fontName, _ := names.ModeFirstSeen()
	fontSize, _ := sizes.ModeFirstSeen()
	avgFlags := float64(flagSum) / float64(len(parts))

	line := model.Line{
		Text:     strings.Join(parts, " "),
		FontName: fontName,
		FontSize: fontSize,
		IsBold:   avgFlags >= boldFlagThreshold || fontNameHas(fontName, boldNameMarkers),
		IsItalic: model.StyleFlags(int(avgFlags)).Has(model.FlagItalic) || fontNameHas(fontName, italicNameMarkers),
		BBox:     blockBBox,
		Page:     page,
	}
	return line, true
}

// fontNameHas checks a font name for any of the given style markers
func fontNameHas(fontName string, markers []string) bool {
	lower := strings.ToLower(fontName)
	for _, m := range markers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

// GroupSpans arranges a flat span list into pages, blocks and lines for
// extractors that do not report line structure. Spans are grouped by page,
// then into lines by vertical position (top to bottom, left to right within
// a line), then into blocks wherever the gap between lines exceeds one line
// height.
func GroupSpans(spans []model.Span) []model.Page {
	if len(spans) == 0 {
		return nil
	}

	byPage := make(map[int][]model.Span)
	var indexes []int
	for _, s := range spans {
		if _, ok := byPage[s.Page]; !ok {
			indexes = append(indexes, s.Page)
		}
		byPage[s.Page] = append(byPage[s.Page], s)
	}
	sort.Ints(indexes)

	pages := make([]model.Page, 0, len(indexes))
	for _, idx := range indexes {
		lines := groupIntoLines(byPage[idx])
		pages = append(pages, model.Page{
			Index:  idx,
			Blocks: groupIntoBlocks(lines),
		})
	}
	return pages
}

// groupIntoLines groups spans into horizontal lines based on Y position
func groupIntoLines(spans []model.Span) [][]model.Span {
	tolerance := averageSpanHeight(spans) * 0.5

	// Sort top to bottom only; same-line spans keep stream order until the
	// per-line X sort below
	sorted := make([]model.Span, len(spans))
	copy(sorted, spans)
	sort.SliceStable(sorted, func(i, j int) bool {
		yDiff := sorted[i].BBox.Y0 - sorted[j].BBox.Y0
		if absFloat64(yDiff) > tolerance {
			return yDiff < 0
		}
		return false
	})

	var lines [][]model.Span
	var current []model.Span
	flush := func() {
		if len(current) == 0 {
			return
		}
		sort.SliceStable(current, func(i, j int) bool {
			return current[i].BBox.X0 < current[j].BBox.X0
		})
		lines = append(lines, current)
	}

	for _, s := range sorted {
		if len(current) > 0 && absFloat64(s.BBox.Y0-averageLineY(current)) > tolerance {
			flush()
			current = nil
		}
		current = append(current, s)
	}
	flush()

	return lines
}

// groupIntoBlocks splits consecutive lines into blocks at large vertical gaps
func groupIntoBlocks(lines [][]model.Span) []model.SpanBlock {
	var blocks []model.SpanBlock
	var current model.SpanBlock
	prevBottom := 0.0

	for i, spans := range lines {
		bbox := spansBBox(spans)
		if i > 0 && bbox.Y0-prevBottom > bbox.Height() {
			blocks = append(blocks, current)
			current = model.SpanBlock{}
		}
		current.BBox = current.BBox.Union(bbox)
		current.Lines = append(current.Lines, model.SpanLine{Spans: spans})
		prevBottom = bbox.Y1
	}
	if len(current.Lines) > 0 {
		blocks = append(blocks, current)
	}
	return blocks
}

// averageSpanHeight returns the average span height, falling back to the
// font size when the extractor reports no box
func averageSpanHeight(spans []model.Span) float64 {
	if len(spans) == 0 {
		return DefaultBaseline
	}
	total := 0.0
	for _, s := range spans {
		h := s.BBox.Height()
		if h == 0 {
			h = s.FontSize
		}
		total += h
	}
	return total / float64(len(spans))
}

// averageLineY returns the average top coordinate of spans in a line
func averageLineY(spans []model.Span) float64 {
	total := 0.0
	for _, s := range spans {
		total += s.BBox.Y0
	}
	return total / float64(len(spans))
}

// spansBBox returns the union of the span boxes
func spansBBox(spans []model.Span) model.BBox {
	var bbox model.BBox
	for _, s := range spans {
		bbox = bbox.Union(s.BBox)
	}
	return bbox
}

func absFloat64(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
