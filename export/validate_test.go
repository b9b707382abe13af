package export

import (
	"encoding/json"
	"testing"

	"github.com/pfraquete/BookFlow/model"
)

func TestValidateBook(t *testing.T) {
	if err := ValidateBook(sampleBook()); err != nil {
		t.Errorf("ValidateBook() error = %v", err)
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(b *model.BookContent)
	}{
		{"no chapters", func(b *model.BookContent) { b.Chapters = []model.Chapter{} }},
		{"empty title", func(b *model.BookContent) { b.Title = "" }},
		{"footer block", func(b *model.BookContent) { b.Chapters[0].Blocks[0].Type = model.BlockFooter }},
		{"negative word count", func(b *model.BookContent) { b.WordCount = -1 }},
		{"chapter level zero", func(b *model.BookContent) { b.Chapters[0].Level = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			book := sampleBook()
			tt.mutate(book)
			if err := ValidateBook(book); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestValidate_BadInput(t *testing.T) {
	if err := Validate([]byte("{not json")); err == nil {
		t.Error("expected decode error")
	}
	if err := Validate([]byte(`{"title": "x"}`)); err == nil {
		t.Error("expected error for missing fields")
	}
}

func TestSchemaIsJSON(t *testing.T) {
	var v map[string]any
	if err := json.Unmarshal(Schema(), &v); err != nil {
		t.Fatalf("embedded schema is not JSON: %v", err)
	}
	if v["title"] != "BookContent" {
		t.Errorf("schema title = %v", v["title"])
	}
}
