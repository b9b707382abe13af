package main

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfraquete/BookFlow"
	"github.com/pfraquete/BookFlow/internal/config"
	"github.com/pfraquete/BookFlow/model"
)

func sampleResult(t *testing.T) *bookflow.Result {
	t.Helper()
	doc := &model.Document{
		Pages: []model.Page{{Blocks: []model.SpanBlock{{Lines: []model.SpanLine{
			{Spans: []model.Span{{Text: "CAPÍTULO 1", FontName: "Times-Bold", FontSize: 24}}},
			{Spans: []model.Span{{Text: "Era uma vez.", FontName: "Times-Roman", FontSize: 12}}},
		}}}}},
		Metadata: model.Metadata{model.MetaTitle: "Contos"},
	}
	res, err := bookflow.FromDocument(doc).Convert()
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	return res
}

func TestOutputBase(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"book.pdf", "book"},
		{"/tmp/dir/Dom Casmurro.PDF", "Dom Casmurro"},
		{"archive.tar.pdf", "archive.tar"},
		{"noext", "noext"},
	}

	for _, tt := range tests {
		if got := outputBase(tt.path); got != tt.expected {
			t.Errorf("outputBase(%q) = %q, want %q", tt.path, got, tt.expected)
		}
	}
}

func TestIsPDF(t *testing.T) {
	for path, expected := range map[string]bool{
		"a.pdf":     true,
		"B.PDF":     true,
		"c.pdf.tmp": false,
		"d.html":    false,
	} {
		if got := isPDF(path); got != expected {
			t.Errorf("isPDF(%q) = %v, want %v", path, got, expected)
		}
	}
}

func TestApplyConvertFlags_Jobs(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected int
	}{
		{"zero means one per cpu", "0", runtime.NumCPU()},
		{"explicit count", "3", 3},
	}

	saved := cfgManager
	defer func() { cfgManager = saved }()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cm, err := config.NewManager("")
			if err != nil {
				t.Fatalf("NewManager() error = %v", err)
			}
			cfgManager = cm

			cmd := &cobra.Command{}
			cmd.Flags().IntVarP(&convertJobs, "jobs", "j", 0, "")
			if err := cmd.Flags().Set("jobs", tt.value); err != nil {
				t.Fatal(err)
			}

			if err := applyConvertFlags(cmd); err != nil {
				t.Fatalf("applyConvertFlags() error = %v", err)
			}
			cfg := cfgManager.Get()
			if cfg.Jobs != tt.expected {
				t.Errorf("jobs = %d, want %d", cfg.Jobs, tt.expected)
			}
			if err := cfg.Check(); err != nil {
				t.Errorf("Check() error = %v", err)
			}
		})
	}
}

func TestWriteOutputs(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	cfg := config.DefaultConfig()
	cfg.OutputDir = dir
	cfg.Format = config.FormatAll
	cfg.Validate = true

	written, err := writeOutputs(sampleResult(t), "/books/contos.pdf", cfg)
	if err != nil {
		t.Fatalf("writeOutputs() error = %v", err)
	}
	if len(written) != 3 {
		t.Fatalf("expected 3 files, got %v", written)
	}

	for _, name := range []string{"contos.html", "contos.json", "contos.yaml"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("missing %s: %v", name, err)
			continue
		}
		if !strings.Contains(string(data), "Contos") {
			t.Errorf("%s does not mention the title", name)
		}
	}

	// written files pass validate
	var out bytes.Buffer
	for _, name := range []string{"contos.json", "contos.html"} {
		if err := validateFile(&out, filepath.Join(dir, name)); err != nil {
			t.Errorf("validateFile(%s) error = %v", name, err)
		}
	}
	if !strings.Contains(out.String(), "CAPÍTULO 1") {
		t.Errorf("outline missing chapter title:\n%s", out.String())
	}
}

func TestValidateFile_Rejects(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"bad.json":  `{"title": ""}`,
		"bad.html":  `<html><body><p>not a book</p></body></html>`,
		"notes.txt": "hello",
	}

	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := validateFile(&bytes.Buffer{}, path); err == nil {
			t.Errorf("expected %s to be rejected", name)
		}
	}
}

func TestDebouncer(t *testing.T) {
	var mu sync.Mutex
	calls := make(map[string]int)
	done := make(chan struct{}, 10)

	d := newDebouncer(50*time.Millisecond, func(key string) {
		mu.Lock()
		calls[key]++
		mu.Unlock()
		done <- struct{}{}
	})

	for i := 0; i < 5; i++ {
		d.Trigger("a.pdf")
		time.Sleep(5 * time.Millisecond)
	}
	d.Trigger("b.pdf")

	for i := 0; i < 2; i++ {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for debounced calls")
		}
	}
	d.Stop()

	mu.Lock()
	defer mu.Unlock()
	if calls["a.pdf"] != 1 || calls["b.pdf"] != 1 {
		t.Errorf("calls = %v, want one per key", calls)
	}
}

func TestDebouncer_StopCancelsPending(t *testing.T) {
	var calls atomic.Int32
	d := newDebouncer(time.Hour, func(string) { calls.Add(1) })
	d.Trigger("a.pdf")
	d.Stop()
	d.Trigger("b.pdf")

	if calls.Load() != 0 {
		t.Errorf("expected no calls after Stop, got %d", calls.Load())
	}
}

func TestConfigInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookflow.yaml")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"config", "init", path})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	// a second run refuses to overwrite
	rootCmd.SetArgs([]string{"config", "init", path})
	if err := rootCmd.Execute(); err == nil {
		t.Error("expected error when the file exists")
	}
}
