package pdfsource

import (
	"strings"

	"github.com/pfraquete/BookFlow/model"
)

// Glyph is one text show operation as positioned by the PDF content stream.
// X and Y are the baseline origin in PDF user space (origin bottom left).
type Glyph struct {
	Font     string
	FontSize float64
	X, Y     float64
	W        float64
	S        string
}

const (
	// wordGapRatio is the horizontal gap, relative to font size, beyond
	// which two glyphs belong to different runs
	wordGapRatio = 0.15

	// sameLineRatio is the baseline shift, relative to font size, within
	// which two glyphs share a line
	sameLineRatio = 0.3
)

// run accumulates consecutive glyphs that share a font and a baseline
type run struct {
	text     strings.Builder
	font     string
	size     float64
	x0, x1   float64
	baseline float64
}

func (r *run) accepts(g Glyph) bool {
	if g.Font != r.font || g.FontSize != r.size {
		return false
	}
	tol := r.size * sameLineRatio
	if absFloat64(g.Y-r.baseline) > tol {
		return false
	}
	gap := g.X - r.x1
	return gap >= -tol && gap <= r.size*wordGapRatio
}

// GlyphsToSpans joins glyphs into word-level spans on a page of the given
// height. Coordinates are flipped so that Y grows downwards, which is the
// orientation the line grouping expects. Space glyphs end the current span.
func GlyphsToSpans(glyphs []Glyph, page int, pageHeight float64) []model.Span {
	var spans []model.Span
	var cur *run

	flush := func() {
		if cur == nil {
			return
		}
		text := cur.text.String()
		if strings.TrimSpace(text) != "" {
			top := pageHeight - (cur.baseline + cur.size)
			bottom := pageHeight - cur.baseline
			spans = append(spans, model.Span{
				Text:     text,
				FontName: cur.font,
				FontSize: cur.size,
				Flags:    FlagsFromFontName(cur.font),
				BBox:     model.NewBBox(cur.x0, top, cur.x1, bottom),
				Page:     page,
			})
		}
		cur = nil
	}

	for _, g := range glyphs {
		if strings.TrimSpace(g.S) == "" {
			flush()
			continue
		}
		if cur != nil && !cur.accepts(g) {
			flush()
		}
		if cur == nil {
			cur = &run{font: g.Font, size: g.FontSize, x0: g.X, baseline: g.Y}
		}
		cur.text.WriteString(g.S)
		cur.x1 = g.X + g.W
	}
	flush()

	return spans
}

// FlagsFromFontName derives span style flags from a font's PostScript name,
// for producers whose text runs carry no flags of their own
func FlagsFromFontName(name string) model.StyleFlags {
	lower := strings.ToLower(name)
	var flags model.StyleFlags

	if strings.Contains(lower, "bold") || strings.Contains(lower, "black") || strings.Contains(lower, "heavy") {
		flags |= model.FlagBold
	}
	if strings.Contains(lower, "italic") || strings.Contains(lower, "oblique") {
		flags |= model.FlagItalic
	}
	if strings.Contains(lower, "mono") || strings.Contains(lower, "courier") {
		flags |= model.FlagMonospace
	}
	if strings.Contains(lower, "times") || (strings.Contains(lower, "serif") && !strings.Contains(lower, "sans")) {
		flags |= model.FlagSerif
	}
	return flags
}

func absFloat64(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
