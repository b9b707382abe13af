package pdfsource

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/pfraquete/BookFlow/model"
)

func TestSelectPages(t *testing.T) {
	tests := []struct {
		name     string
		pages    []int
		count    int
		expected []int
		wantErr  bool
	}{
		{"all", nil, 3, []int{0, 1, 2}, false},
		{"subset sorted", []int{2, 0}, 3, []int{0, 2}, false},
		{"duplicates", []int{1, 1}, 3, []int{1}, false},
		{"negative", []int{-1}, 3, nil, true},
		{"past end", []int{3}, 3, nil, true},
		{"empty document", nil, 0, []int{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := selectPages(tt.pages, tt.count)
			if (err != nil) != tt.wantErr {
				t.Fatalf("selectPages() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrPageRange) {
					t.Errorf("expected ErrPageRange, got %v", err)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("selectPages() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestInfoMetadata(t *testing.T) {
	info := &Info{Title: "Dom Casmurro", Producer: "LaTeX", CreationDate: "D:20200101000000Z"}
	meta := info.Metadata()

	if meta.Title() != "Dom Casmurro" {
		t.Errorf("title = %q", meta.Title())
	}
	if _, ok := meta[model.MetaAuthor]; !ok {
		t.Error("author key should always be present")
	}
	if meta[model.MetaProducer] != "LaTeX" || meta[model.MetaCreationDate] != "D:20200101000000Z" {
		t.Errorf("unexpected metadata %v", meta)
	}
	if _, ok := meta[model.MetaSubject]; ok {
		t.Error("empty optional keys should be omitted")
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(context.Background(), filepath.Join(dir, "missing.pdf"), Options{}); err == nil {
		t.Error("expected error for missing file")
	}

	notPDF := filepath.Join(dir, "notes.pdf")
	if err := os.WriteFile(notPDF, []byte("just some text, not a pdf"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(context.Background(), notPDF, Options{}); err == nil {
		t.Error("expected error for non-PDF content")
	}
}
