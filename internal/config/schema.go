package config

import (
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"time"
)

// Config is the CLI configuration.
type Config struct {
	OutputDir string      `mapstructure:"output_dir" yaml:"output_dir"`
	Format    string      `mapstructure:"format" yaml:"format"`       // html, json, yaml or all
	Jobs      int         `mapstructure:"jobs" yaml:"jobs"`           // concurrent conversions
	LogLevel  string      `mapstructure:"log_level" yaml:"log_level"` // debug, info, warn, error
	Lang      string      `mapstructure:"lang" yaml:"lang"`
	Validate  bool        `mapstructure:"validate" yaml:"validate"` // schema-check JSON before writing
	Watch     WatchConfig `mapstructure:"watch" yaml:"watch"`
}

// WatchConfig configures the directory watcher.
type WatchConfig struct {
	// Debounce is how long a file must be quiet before it is converted
	Debounce time.Duration `mapstructure:"debounce" yaml:"debounce"`
}

// Output formats
const (
	FormatHTML = "html"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatAll  = "all"
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		OutputDir: ".",
		Format:    FormatHTML,
		Jobs:      runtime.NumCPU(),
		LogLevel:  "info",
		Lang:      "pt-BR",
		Validate:  false,
		Watch: WatchConfig{
			Debounce: 500 * time.Millisecond,
		},
	}
}

// Formats expands the format setting into the list of outputs to write.
func (c *Config) Formats() ([]string, error) {
	switch f := strings.ToLower(strings.TrimSpace(c.Format)); f {
	case FormatAll:
		return []string{FormatHTML, FormatJSON, FormatYAML}, nil
	case FormatHTML, FormatJSON, FormatYAML:
		return []string{f}, nil
	case "yml":
		return []string{FormatYAML}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want html, json, yaml or all)", c.Format)
	}
}

// SlogLevel parses the log level setting. Unknown values mean info.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Check reports configuration values the CLI cannot run with.
func (c *Config) Check() error {
	if _, err := c.Formats(); err != nil {
		return err
	}
	if c.Jobs < 1 {
		return fmt.Errorf("jobs must be at least 1, got %d", c.Jobs)
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative")
	}
	return nil
}
