package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNotBook is returned when parsed HTML lacks the book title heading
var ErrNotBook = errors.New("render: document is not a rendered book")

// Outline is the chapter structure recovered from a rendered book
type Outline struct {
	Lang     string
	Title    string
	Author   string
	Sections []OutlineSection
}

// OutlineSection summarizes one chapter section
type OutlineSection struct {
	Title      string // empty for the leading chapter
	Page       int
	Headings   int
	Paragraphs int
	Quotes     int
	ListItems  int
}

// ReadOutlineFile parses a rendered book from a file
func ReadOutlineFile(filename string) (*Outline, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return ReadOutline(f)
}

// ReadOutline parses a rendered book and returns its outline
func ReadOutline(r io.Reader) (*Outline, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	out := &Outline{}
	if root := findElement(doc, atom.Html); root != nil {
		out.Lang = attrValue(root, "lang")
	}

	body := findElement(doc, atom.Body)
	if body == nil {
		return nil, ErrNotBook
	}

	foundTitle := false
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch {
		case c.DataAtom == atom.H1 && hasClass(c, ClassBookTitle):
			out.Title = textContent(c)
			foundTitle = true
		case c.DataAtom == atom.P && hasClass(c, ClassBookAuthor):
			out.Author = textContent(c)
		case c.DataAtom == atom.Section && hasClass(c, ClassChapter):
			section, err := readSection(c)
			if err != nil {
				return nil, err
			}
			out.Sections = append(out.Sections, section)
		}
	}

	if !foundTitle {
		return nil, ErrNotBook
	}
	return out, nil
}

func readSection(n *html.Node) (OutlineSection, error) {
	var s OutlineSection

	page, err := strconv.Atoi(attrValue(n, AttrDataPage))
	if err != nil {
		return s, fmt.Errorf("section %s: %w", AttrDataPage, err)
	}
	s.Page = page

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.DataAtom {
		case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
			if hasClass(c, ClassChapterTitle) {
				s.Title = textContent(c)
			} else {
				s.Headings++
			}
		case atom.P:
			s.Paragraphs++
		case atom.Blockquote:
			s.Quotes++
		case atom.Ul:
			for li := c.FirstChild; li != nil; li = li.NextSibling {
				if li.Type == html.ElementNode && li.DataAtom == atom.Li {
					s.ListItems++
				}
			}
		}
	}
	return s, nil
}

// Blocks returns the number of content blocks in the section
func (s *OutlineSection) Blocks() int {
	return s.Headings + s.Paragraphs + s.Quotes + s.ListItems
}

// findElement finds the first element with the given atom
func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result := findElement(c, a); result != nil {
			return result
		}
	}
	return nil
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attrValue(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// textContent extracts all text content from a node and its descendants
func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}
