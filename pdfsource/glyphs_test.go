package pdfsource

import (
	"testing"

	"github.com/pfraquete/BookFlow/model"
)

// word lays out a string as fixed-width glyphs starting at x
func word(s string, font string, size, x, y float64) []Glyph {
	var out []Glyph
	w := size * 0.5
	for _, r := range s {
		out = append(out, Glyph{Font: font, FontSize: size, X: x, Y: y, W: w, S: string(r)})
		x += w
	}
	return out
}

func TestGlyphsToSpans_JoinsWords(t *testing.T) {
	var glyphs []Glyph
	glyphs = append(glyphs, word("Hello", "Times-Roman", 12, 72, 700)...)
	glyphs = append(glyphs, Glyph{Font: "Times-Roman", FontSize: 12, X: 102, Y: 700, W: 3, S: " "})
	glyphs = append(glyphs, word("world.", "Times-Roman", 12, 105, 700)...)

	spans := GlyphsToSpans(glyphs, 0, 792)
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d: %+v", len(spans), spans)
	}
	if spans[0].Text != "Hello" || spans[1].Text != "world." {
		t.Errorf("texts = %q, %q", spans[0].Text, spans[1].Text)
	}

	// baseline 700 on a 792pt page puts the top at 80 and bottom at 92
	want := model.NewBBox(72, 80, 102, 92)
	if spans[0].BBox != want {
		t.Errorf("bbox = %+v, want %+v", spans[0].BBox, want)
	}
	if spans[0].FontSize != 12 || spans[0].Page != 0 {
		t.Errorf("unexpected span %+v", spans[0])
	}
}

func TestGlyphsToSpans_SplitsOnFontChange(t *testing.T) {
	var glyphs []Glyph
	glyphs = append(glyphs, word("ab", "Times-Roman", 12, 72, 700)...)
	glyphs = append(glyphs, word("cd", "Times-Bold", 12, 84, 700)...)

	spans := GlyphsToSpans(glyphs, 3, 792)
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}
	if !spans[1].Flags.Has(model.FlagBold) {
		t.Errorf("bold font should set the bold flag, got %v", spans[1].Flags)
	}
	if spans[1].Page != 3 {
		t.Errorf("page = %d, want 3", spans[1].Page)
	}
}

func TestGlyphsToSpans_SplitsOnGapAndLine(t *testing.T) {
	var glyphs []Glyph
	glyphs = append(glyphs, word("one", "Times-Roman", 10, 72, 700)...)
	glyphs = append(glyphs, word("two", "Times-Roman", 10, 200, 700)...)
	glyphs = append(glyphs, word("three", "Times-Roman", 10, 72, 686)...)

	spans := GlyphsToSpans(glyphs, 0, 792)
	if len(spans) != 3 {
		t.Fatalf("expected 3 spans, got %d", len(spans))
	}
}

func TestGlyphsToSpans_Empty(t *testing.T) {
	if spans := GlyphsToSpans(nil, 0, 792); len(spans) != 0 {
		t.Errorf("expected no spans, got %d", len(spans))
	}
	blank := []Glyph{{Font: "F", FontSize: 12, S: " "}, {Font: "F", FontSize: 12, S: "\t"}}
	if spans := GlyphsToSpans(blank, 0, 792); len(spans) != 0 {
		t.Errorf("whitespace glyphs produced %d spans", len(spans))
	}
}

func TestFlagsFromFontName(t *testing.T) {
	tests := []struct {
		name     string
		expected model.StyleFlags
	}{
		{"Helvetica", 0},
		{"Helvetica-Bold", model.FlagBold},
		{"Helvetica-BoldOblique", model.FlagBold | model.FlagItalic},
		{"Times-Italic", model.FlagItalic | model.FlagSerif},
		{"ABCDEF+Merriweather-Black", model.FlagBold},
		{"Courier", model.FlagMonospace},
		{"NotoSerif-Regular", model.FlagSerif},
		{"NotoSans-Regular", 0},
		{"PTSerifSans", 0},
	}

	for _, tt := range tests {
		if got := FlagsFromFontName(tt.name); got != tt.expected {
			t.Errorf("FlagsFromFontName(%q) = %v, want %v", tt.name, got, tt.expected)
		}
	}
}
