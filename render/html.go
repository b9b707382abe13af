package render

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/pfraquete/BookFlow/layout"
	"github.com/pfraquete/BookFlow/model"
)

// DefaultLang is the document language written to the html element
const DefaultLang = "pt-BR"

// Class names carried by the generated markup
const (
	ClassBookTitle    = "book-title"
	ClassBookAuthor   = "book-author"
	ClassChapter      = "chapter"
	ClassChapterTitle = "chapter-title"
	AttrDataPage      = "data-page"
)

// Options configures the serializer
type Options struct {
	// Lang is the html lang attribute. Empty means DefaultLang.
	Lang string
}

// DefaultOptions returns the default serializer options
func DefaultOptions() Options {
	return Options{Lang: DefaultLang}
}

// Renderer serializes a BookContent to a standalone HTML document.
// A Renderer holds only its options and may be shared between goroutines.
type Renderer struct {
	opts Options
}

// NewRenderer creates a renderer with the given options
func NewRenderer(opts Options) *Renderer {
	if opts.Lang == "" {
		opts.Lang = DefaultLang
	}
	return &Renderer{opts: opts}
}

// HTML renders book with the given options and returns the document
func HTML(book *model.BookContent, opts Options) (string, error) {
	var buf bytes.Buffer
	if err := NewRenderer(opts).Render(&buf, book); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Render writes the HTML document for book to w. The output depends only on
// book and the renderer options.
func (r *Renderer) Render(w io.Writer, book *model.BookContent) error {
	if book == nil {
		return fmt.Errorf("render: nil book")
	}

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	newline(doc)

	root := element(atom.Html, attr("lang", r.opts.Lang))
	doc.AppendChild(root)
	newline(doc)

	newline(root)
	root.AppendChild(r.head(book))
	newline(root)
	root.AppendChild(r.body(book))
	newline(root)

	if err := html.Render(w, doc); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

func (r *Renderer) head(book *model.BookContent) *html.Node {
	head := element(atom.Head)
	appendLine(head, element(atom.Meta, attr("charset", "utf-8")))
	appendLine(head, textElement(atom.Title, book.Title))
	newline(head)
	return head
}

func (r *Renderer) body(book *model.BookContent) *html.Node {
	body := element(atom.Body)
	appendLine(body, textElement(atom.H1, book.Title, attr("class", ClassBookTitle)))
	if book.Author != "" {
		appendLine(body, textElement(atom.P, book.Author, attr("class", ClassBookAuthor)))
	}

	for i := range book.Chapters {
		appendLine(body, r.chapter(&book.Chapters[i], book.BaselineFontSize))
	}
	newline(body)
	return body
}

// chapter renders one section. List items are collected into a single ul
// until the next block of another type.
func (r *Renderer) chapter(ch *model.Chapter, baseline float64) *html.Node {
	section := element(atom.Section,
		attr("class", ClassChapter),
		attr(AttrDataPage, strconv.Itoa(ch.PageStart)),
	)

	if !ch.IsLeading() {
		appendLine(section, textElement(headingAtom(ch.Level), ch.Title, attr("class", ClassChapterTitle)))
	}

	var list *html.Node
	closeList := func() {
		if list != nil {
			newline(list)
			list = nil
		}
	}

	for i := range ch.Blocks {
		block := &ch.Blocks[i]

		if block.Type == model.BlockListItem {
			if list == nil {
				list = element(atom.Ul)
				appendLine(section, list)
			}
			appendLine(list, emphasized(atom.Li, layout.StripListMarker(block.Text), block))
			continue
		}
		closeList()

		switch block.Type {
		case model.BlockHeading:
			level := layout.LevelOf(block.Line, baseline)
			appendLine(section, textElement(headingAtom(level.Int()), block.Text))
		case model.BlockQuote:
			appendLine(section, emphasized(atom.Blockquote, block.Text, block))
		case model.BlockFooter:
			// never present in a segmented chapter
		default:
			appendLine(section, emphasized(atom.P, block.Text, block))
		}
	}
	closeList()

	newline(section)
	return section
}

// emphasized builds an element whose text is wrapped in strong and em
// according to the block's style
func emphasized(a atom.Atom, text string, block *model.Block) *html.Node {
	n := element(a)
	parent := n
	if block.IsBold {
		strong := element(atom.Strong)
		parent.AppendChild(strong)
		parent = strong
	}
	if block.IsItalic {
		em := element(atom.Em)
		parent.AppendChild(em)
		parent = em
	}
	parent.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}

var headingAtoms = [...]atom.Atom{atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6}

// headingAtom returns the h1-h6 atom for level, clamped to that range
func headingAtom(level int) atom.Atom {
	switch {
	case level < 1:
		level = 1
	case level > len(headingAtoms):
		level = len(headingAtoms)
	}
	return headingAtoms[level-1]
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func textElement(a atom.Atom, text string, attrs ...html.Attribute) *html.Node {
	n := element(a, attrs...)
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func newline(n *html.Node) {
	n.AppendChild(&html.Node{Type: html.TextNode, Data: "\n"})
}

// appendLine puts child on its own line inside n
func appendLine(n, child *html.Node) {
	newline(n)
	n.AppendChild(child)
}
