package model

const (
	// LeadingChapterTitle marks the synthetic chapter that collects content
	// preceding the first level-1 heading
	LeadingChapterTitle = "Início"

	// UntitledBook is the title used when neither metadata nor headings
	// provide one
	UntitledBook = "Livro sem título"
)

// Chapter is an ordered run of blocks opened by a level-1 heading.
// Footer blocks never appear in Blocks.
type Chapter struct {
	Title     string  `json:"title" yaml:"title"`
	Level     int     `json:"level" yaml:"level"`
	PageStart int     `json:"page_start" yaml:"page_start"`
	Blocks    []Block `json:"blocks" yaml:"blocks"`
}

// NewLeadingChapter returns the synthetic front-matter chapter
func NewLeadingChapter() Chapter {
	return Chapter{Title: LeadingChapterTitle, Level: 1, PageStart: 0}
}

// IsLeading reports whether the chapter still carries the front-matter title
func (c *Chapter) IsLeading() bool {
	return c.Title == LeadingChapterTitle
}

// IsEmpty reports whether the chapter holds no blocks
func (c *Chapter) IsEmpty() bool {
	return len(c.Blocks) == 0
}

// WordCount returns the token count over the chapter's blocks
func (c *Chapter) WordCount() int {
	n := 0
	for i := range c.Blocks {
		n += c.Blocks[i].WordCount()
	}
	return n
}

// BookContent is the recovered structure of one document. It is built once
// by the pipeline and must be treated as read-only afterwards, which makes it
// safe to share between goroutines.
type BookContent struct {
	Title      string    `json:"title" yaml:"title"`
	Author     string    `json:"author" yaml:"author"`
	Chapters   []Chapter `json:"chapters" yaml:"chapters"`
	Metadata   Metadata  `json:"metadata" yaml:"metadata"`
	TotalPages int       `json:"total_pages" yaml:"total_pages"`
	WordCount  int       `json:"word_count" yaml:"word_count"`

	// BaselineFontSize is the body text size the blocks were classified
	// against. Heading levels are derived from it.
	BaselineFontSize float64 `json:"baseline_font_size" yaml:"baseline_font_size"`
}

// BlockCount returns the number of blocks across all chapters
func (b *BookContent) BlockCount() int {
	n := 0
	for i := range b.Chapters {
		n += len(b.Chapters[i].Blocks)
	}
	return n
}

// Blocks returns every block in chapter order
func (b *BookContent) Blocks() []Block {
	out := make([]Block, 0, b.BlockCount())
	for i := range b.Chapters {
		out = append(out, b.Chapters[i].Blocks...)
	}
	return out
}
