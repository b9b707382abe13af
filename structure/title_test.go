package structure

import (
	"testing"

	"github.com/pfraquete/BookFlow/model"
)

func TestDetectTitle(t *testing.T) {
	leadingWith := func(blocks ...model.Block) []model.Chapter {
		ch := model.NewLeadingChapter()
		ch.Blocks = blocks
		return []model.Chapter{ch}
	}

	tests := []struct {
		name     string
		meta     model.Metadata
		chapters []model.Chapter
		expected string
	}{
		{
			name:     "metadata wins",
			meta:     model.Metadata{model.MetaTitle: "  Dom Casmurro "},
			chapters: []model.Chapter{{Title: "CAPÍTULO 1"}},
			expected: "Dom Casmurro",
		},
		{
			name:     "first chapter title",
			meta:     model.Metadata{model.MetaTitle: ""},
			chapters: []model.Chapter{{Title: "O Alienista", Level: 1}},
			expected: "O Alienista",
		},
		{
			name:     "large heading in opening blocks",
			chapters: leadingWith(para("Editora X", 0), makeBlock("Memórias Póstumas", model.BlockHeading, 18, 0)),
			expected: "Memórias Póstumas",
		},
		{
			name:     "heading too small",
			chapters: leadingWith(makeBlock("Prefácio", model.BlockHeading, 15, 0)),
			expected: model.UntitledBook,
		},
		{
			name: "heading past the fifth block",
			chapters: leadingWith(
				para("a", 0), para("b", 0), para("c", 0), para("d", 0), para("e", 0),
				makeBlock("Tarde Demais", model.BlockHeading, 24, 0),
			),
			expected: model.UntitledBook,
		},
		{
			name:     "no chapters",
			expected: model.UntitledBook,
		},
		{
			name:     "leading chapter without headings",
			chapters: leadingWith(para("Hello world.", 0)),
			expected: model.UntitledBook,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectTitle(tt.meta, tt.chapters, 12); got != tt.expected {
				t.Errorf("DetectTitle() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDetectAuthor(t *testing.T) {
	if got := DetectAuthor(model.Metadata{model.MetaAuthor: "Machado de Assis"}); got != "Machado de Assis" {
		t.Errorf("DetectAuthor() = %q", got)
	}
	if got := DetectAuthor(nil); got != "" {
		t.Errorf("DetectAuthor(nil) = %q, want empty", got)
	}
}
