package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pfraquete/BookFlow/export"
	"github.com/pfraquete/BookFlow/render"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE...",
	Short: "Check exported books",
	Long: `Check files written by convert.

JSON files are validated against the book schema. HTML files are parsed
and their chapter outline is printed.

Examples:
  bookflow validate out/book.json
  bookflow validate out/*.html`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		invalid := 0
		for _, path := range args {
			if err := validateFile(out, path); err != nil {
				fmt.Fprintf(out, "%s: INVALID: %v\n", path, err)
				invalid++
			}
		}
		if invalid > 0 {
			return fmt.Errorf("%d of %d files invalid", invalid, len(args))
		}
		return nil
	},
}

func validateFile(out io.Writer, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := export.Validate(data); err != nil {
			return err
		}
		book, err := export.DecodeJSON(bytes.NewReader(data))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: ok (%q, %d chapters, %d words)\n", path, book.Title, len(book.Chapters), book.WordCount)
		return nil

	case ".html", ".htm":
		outline, err := render.ReadOutlineFile(path)
		if err != nil {
			return err
		}
		if len(outline.Sections) == 0 {
			return fmt.Errorf("no chapter sections")
		}
		fmt.Fprintf(out, "%s: ok (%q, %d chapters)\n", path, outline.Title, len(outline.Sections))
		for _, s := range outline.Sections {
			title := s.Title
			if title == "" {
				title = "(front matter)"
			}
			fmt.Fprintf(out, "  page %-4d %-40s %d blocks\n", s.Page, title, s.Blocks())
		}
		return nil

	default:
		return fmt.Errorf("unsupported file type %q", filepath.Ext(path))
	}
}
