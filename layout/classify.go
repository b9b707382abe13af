package layout

import (
	"strings"

	"github.com/pfraquete/BookFlow/model"
)

// quoteOpeners are the characters that open a quotation or a dialogue line
var quoteOpeners = []string{`"`, "“", "”", "„", "«", "»", "—", "–"}

// IsQuoteText reports whether text opens with a quotation mark, guillemet or
// dialogue dash
func IsQuoteText(text string) bool {
	for _, q := range quoteOpeners {
		if strings.HasPrefix(text, q) {
			return true
		}
	}
	return false
}

// rule pairs a block type with the predicate that selects it
type rule struct {
	blockType model.BlockType
	matches   func(line *model.Line, baseline float64) bool
}

// rules are evaluated top to bottom and the first match wins. A bare page
// number set large is still a footer.
var rules = []rule{
	{model.BlockFooter, func(l *model.Line, _ float64) bool { return IsFooterText(strings.TrimSpace(l.Text)) }},
	{model.BlockHeading, isHeading},
	{model.BlockQuote, func(l *model.Line, _ float64) bool { return IsQuoteText(strings.TrimSpace(l.Text)) }},
	{model.BlockListItem, func(l *model.Line, _ float64) bool { return IsListItemText(l.Text) }},
}

// Classifier assigns block types against a fixed baseline font size.
// It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	baseline float64
}

// NewClassifier creates a classifier for a document with the given baseline
func NewClassifier(baseline float64) *Classifier {
	return &Classifier{baseline: baseline}
}

// Baseline returns the baseline font size the classifier was built with
func (c *Classifier) Baseline() float64 {
	return c.baseline
}

// ClassifyLine returns the type of a single line. Lines matching no rule are
// paragraphs.
func (c *Classifier) ClassifyLine(line model.Line) model.BlockType {
	for _, r := range rules {
		if r.matches(&line, c.baseline) {
			return r.blockType
		}
	}
	return model.BlockParagraph
}

// Classify assigns a type to every line, in document order
func (c *Classifier) Classify(lines []model.Line) []model.Block {
	blocks := make([]model.Block, len(lines))
	for i, line := range lines {
		blocks[i] = model.Block{Line: line, Type: c.ClassifyLine(line)}
	}
	return blocks
}

// TypeHistogram counts blocks per type
func TypeHistogram(blocks []model.Block) map[model.BlockType]int {
	hist := make(map[model.BlockType]int)
	for i := range blocks {
		hist[blocks[i].Type]++
	}
	return hist
}
