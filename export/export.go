package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pfraquete/BookFlow/model"
)

// Format is a structured encoding of a BookContent
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported structured formats
var Formats = []Format{FormatJSON, FormatYAML}

// ParseFormat returns the format for a name such as "json" or "YML"
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown export format: %s", s)
	}
}

// Ext returns the file extension for the format, including the dot
func (f Format) Ext() string {
	return "." + string(f)
}

// Encode writes book to w in the given format
func Encode(w io.Writer, format Format, book *model.BookContent) error {
	if book == nil {
		return fmt.Errorf("export: nil book")
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(book)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(book)
	default:
		return fmt.Errorf("unknown export format: %s", format)
	}
}

// DecodeJSON reads a BookContent previously written with FormatJSON
func DecodeJSON(r io.Reader) (*model.BookContent, error) {
	var book model.BookContent
	if err := json.NewDecoder(r).Decode(&book); err != nil {
		return nil, fmt.Errorf("decoding book: %w", err)
	}
	return &book, nil
}
