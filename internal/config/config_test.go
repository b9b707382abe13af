package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Format != FormatHTML {
		t.Errorf("expected html format, got %s", cfg.Format)
	}
	if cfg.Jobs < 1 {
		t.Errorf("expected at least one job, got %d", cfg.Jobs)
	}
	if cfg.Lang != "pt-BR" {
		t.Errorf("expected pt-BR, got %s", cfg.Lang)
	}
	if err := cfg.Check(); err != nil {
		t.Errorf("default config should pass Check: %v", err)
	}
}

func TestFormats(t *testing.T) {
	tests := []struct {
		format   string
		expected []string
		wantErr  bool
	}{
		{"html", []string{"html"}, false},
		{"JSON", []string{"json"}, false},
		{"yml", []string{"yaml"}, false},
		{"all", []string{"html", "json", "yaml"}, false},
		{"pdf", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			cfg := &Config{Format: tt.format}
			got, err := cfg.Formats()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Formats() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Formats() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"chatty", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		cfg := &Config{LogLevel: tt.level}
		if got := cfg.SlogLevel(); got != tt.expected {
			t.Errorf("SlogLevel(%q) = %v, want %v", tt.level, got, tt.expected)
		}
	}
}

func TestCheck(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Jobs = 0
	if err := cfg.Check(); err == nil {
		t.Error("expected error for zero jobs")
	}

	cfg = DefaultConfig()
	cfg.Watch.Debounce = -time.Second
	if err := cfg.Check(); err == nil {
		t.Error("expected error for negative debounce")
	}
}

func TestNewManager(t *testing.T) {
	t.Run("loads from config file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "bookflow.yaml")

		configContent := `
output_dir: out
format: all
jobs: 3
lang: en
watch:
  debounce: 2s
`
		if err := os.WriteFile(configFile, []byte(configContent), 0o644); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}

		cm, err := NewManager(configFile)
		if err != nil {
			t.Fatalf("NewManager failed: %v", err)
		}

		cfg := cm.Get()
		if cfg.OutputDir != "out" || cfg.Format != "all" || cfg.Jobs != 3 || cfg.Lang != "en" {
			t.Errorf("unexpected config %+v", cfg)
		}
		if cfg.Watch.Debounce != 2*time.Second {
			t.Errorf("expected 2s debounce, got %v", cfg.Watch.Debounce)
		}
		// untouched keys keep their defaults
		if cfg.LogLevel != "info" {
			t.Errorf("expected default log level, got %s", cfg.LogLevel)
		}
		if cm.ConfigFile() != configFile {
			t.Errorf("ConfigFile() = %q", cm.ConfigFile())
		}
	})

	t.Run("environment overrides file", func(t *testing.T) {
		t.Setenv("BOOKFLOW_FORMAT", "json")
		t.Setenv("BOOKFLOW_WATCH_DEBOUNCE", "3s")

		configFile := filepath.Join(t.TempDir(), "bookflow.yaml")
		if err := os.WriteFile(configFile, []byte("format: yaml\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		cm, err := NewManager(configFile)
		if err != nil {
			t.Fatalf("NewManager failed: %v", err)
		}
		if got := cm.Get().Format; got != "json" {
			t.Errorf("expected env override json, got %s", got)
		}
		if got := cm.Get().Watch.Debounce; got != 3*time.Second {
			t.Errorf("expected 3s debounce, got %v", got)
		}
	})

	t.Run("invalid config file", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "bookflow.yaml")
		if err := os.WriteFile(configFile, []byte("format: [unclosed"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := NewManager(configFile); err == nil {
			t.Error("expected error for malformed YAML")
		}
	})
}

func TestManagerSet(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "bookflow.yaml")
	if err := os.WriteFile(configFile, []byte("jobs: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cm, err := NewManager(configFile)
	if err != nil {
		t.Fatal(err)
	}
	if err := cm.Set("jobs", 7); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if got := cm.Get().Jobs; got != 7 {
		t.Errorf("expected 7 jobs, got %d", got)
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookflow.yaml")
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	if !strings.HasPrefix(content, "# BookFlow configuration") {
		t.Error("expected header comment")
	}
	for _, key := range []string{"output_dir:", "format: html", "log_level: info", "debounce: 500ms"} {
		if !strings.Contains(content, key) {
			t.Errorf("default config missing %q:\n%s", key, content)
		}
	}

	// the written file loads back to the defaults
	cm, err := NewManager(path)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	if !reflect.DeepEqual(cm.Get(), DefaultConfig()) {
		t.Errorf("round trip mismatch: %+v vs %+v", cm.Get(), DefaultConfig())
	}
}
