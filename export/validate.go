package export

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/pfraquete/BookFlow/model"
)

//go:embed schema.json
var bookSchema []byte

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// Schema returns the JSON Schema document for encoded BookContent
func Schema() []byte {
	return bytes.Clone(bookSchema)
}

func compileSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("schema.json", bytes.NewReader(bookSchema)); err != nil {
			schemaErr = fmt.Errorf("failed to load book schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile("schema.json")
		if schemaErr != nil {
			schemaErr = fmt.Errorf("failed to compile book schema: %w", schemaErr)
		}
	})
	return compiledSchema, schemaErr
}

// Validate checks JSON-encoded BookContent against the schema
func Validate(data []byte) error {
	schema, err := compileSchema()
	if err != nil {
		return err
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to decode book JSON for validation: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("book JSON failed schema validation: %w", err)
	}
	return nil
}

// ValidateBook encodes book as JSON and validates the result
func ValidateBook(book *model.BookContent) error {
	var buf bytes.Buffer
	if err := Encode(&buf, FormatJSON, book); err != nil {
		return err
	}
	return Validate(buf.Bytes())
}
