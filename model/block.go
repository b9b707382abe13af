package model

import (
	"fmt"
	"strings"
)

// Line is one logical line of text built from same-line spans
type Line struct {
	// Text is the concatenated span text, single-space separated
	Text string `json:"text" yaml:"text"`

	// FontName and FontSize are the majority vote over the line's spans
	FontName string  `json:"font_name" yaml:"font_name"`
	FontSize float64 `json:"font_size" yaml:"font_size"`

	IsBold   bool `json:"is_bold" yaml:"is_bold"`
	IsItalic bool `json:"is_italic" yaml:"is_italic"`

	// BBox is the bounding box of the parent text block
	BBox BBox `json:"bbox" yaml:"bbox"`

	// Page is the 0-based page index; a line never spans pages
	Page int `json:"page_num" yaml:"page_num"`
}

// WordCount returns the number of whitespace-delimited tokens
func (l *Line) WordCount() int {
	if l == nil || l.Text == "" {
		return 0
	}
	return len(strings.Fields(l.Text))
}

// BlockType is the semantic type assigned to a line
type BlockType int

const (
	BlockParagraph BlockType = iota
	BlockHeading
	BlockQuote
	BlockListItem
	BlockFooter
)

var blockTypeNames = [...]string{
	BlockParagraph: "paragraph",
	BlockHeading:   "heading",
	BlockQuote:     "quote",
	BlockListItem:  "list_item",
	BlockFooter:    "footer",
}

// String returns the wire name of the block type
func (t BlockType) String() string {
	if t < 0 || int(t) >= len(blockTypeNames) {
		return "unknown"
	}
	return blockTypeNames[t]
}

// MarshalText implements encoding.TextMarshaler
func (t BlockType) MarshalText() ([]byte, error) {
	if t < 0 || int(t) >= len(blockTypeNames) {
		return nil, fmt.Errorf("invalid block type %d", int(t))
	}
	return []byte(blockTypeNames[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *BlockType) UnmarshalText(b []byte) error {
	parsed, err := ParseBlockType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalYAML encodes the block type by name
func (t BlockType) MarshalYAML() (interface{}, error) {
	b, err := t.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// ParseBlockType returns the block type for a wire name
func ParseBlockType(s string) (BlockType, error) {
	for i, name := range blockTypeNames {
		if name == s {
			return BlockType(i), nil
		}
	}
	return BlockParagraph, fmt.Errorf("unknown block type %q", s)
}

// Block is a Line with its assigned semantic type.
// The type is assigned once by the classifier and never re-evaluated.
type Block struct {
	Line `yaml:",inline"`
	Type BlockType `json:"block_type" yaml:"block_type"`
}

// IsHeading reports whether the block was classified as a heading
func (b *Block) IsHeading() bool { return b.Type == BlockHeading }

// IsFooter reports whether the block was classified as a footer
func (b *Block) IsFooter() bool { return b.Type == BlockFooter }
