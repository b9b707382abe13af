package model

import "strings"

// StyleFlags is the span style bitmask reported by the text extractor
type StyleFlags int

const (
	FlagSuperscript StyleFlags = 1 << iota // 1
	FlagItalic                             // 2
	FlagSerif                              // 4
	FlagMonospace                          // 8
	FlagBold                               // 16
)

// Has reports whether all bits of f are set
func (s StyleFlags) Has(f StyleFlags) bool {
	return s&f == f
}

// String returns a compact representation such as "bold|italic"
func (s StyleFlags) String() string {
	var parts []string
	names := []struct {
		flag StyleFlags
		name string
	}{
		{FlagSuperscript, "superscript"},
		{FlagItalic, "italic"},
		{FlagSerif, "serif"},
		{FlagMonospace, "monospace"},
		{FlagBold, "bold"},
	}
	for _, n := range names {
		if s.Has(n.flag) {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Span is a run of text sharing one font, style and position.
// Spans are owned by the caller for the duration of one extraction.
type Span struct {
	Text     string
	FontName string
	FontSize float64
	Flags    StyleFlags
	BBox     BBox
	Page     int // 0-based page index
}

// SpanLine is a group of spans the extractor placed on the same line
type SpanLine struct {
	Spans []Span
}

// SpanBlock is a text block on a page, holding one or more lines
type SpanBlock struct {
	BBox  BBox
	Lines []SpanLine
}

// Page is one page of extracted spans in document order
type Page struct {
	Index  int // 0-based
	Width  float64
	Height float64
	Blocks []SpanBlock
}

// SpanCount returns the number of spans on the page
func (p *Page) SpanCount() int {
	n := 0
	for _, b := range p.Blocks {
		for _, l := range b.Lines {
			n += len(l.Spans)
		}
	}
	return n
}

// Well-known metadata keys
const (
	MetaTitle        = "title"
	MetaAuthor       = "author"
	MetaSubject      = "subject"
	MetaKeywords     = "keywords"
	MetaCreator      = "creator"
	MetaProducer     = "producer"
	MetaCreationDate = "creation_date"
	MetaModDate      = "mod_date"
)

// Metadata holds document properties. Absent keys read as empty strings.
type Metadata map[string]string

// Get returns the trimmed value for key, or "" if absent
func (m Metadata) Get(key string) string {
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[key])
}

// Title returns the title property
func (m Metadata) Title() string { return m.Get(MetaTitle) }

// Author returns the author property
func (m Metadata) Author() string { return m.Get(MetaAuthor) }

// Clone returns a copy that shares no storage with m. The copy always
// contains the title and author keys.
func (m Metadata) Clone() Metadata {
	out := make(Metadata, len(m)+2)
	out[MetaTitle] = ""
	out[MetaAuthor] = ""
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Document is the complete extractor output for one file
type Document struct {
	Pages    []Page
	Metadata Metadata

	// PageCount is the page count of the source file. Zero means len(Pages).
	PageCount int
}

// TotalPages returns the source page count
func (d *Document) TotalPages() int {
	if d.PageCount > 0 {
		return d.PageCount
	}
	return len(d.Pages)
}
