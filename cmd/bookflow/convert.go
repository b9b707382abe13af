package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/pfraquete/BookFlow"
	"github.com/pfraquete/BookFlow/export"
	"github.com/pfraquete/BookFlow/internal/config"
)

var (
	convertFormat    string
	convertOutputDir string
	convertJobs      int
	convertLang      string
	convertValidate  bool
)

var convertCmd = &cobra.Command{
	Use:   "convert FILE.pdf...",
	Short: "Convert PDF books to HTML, JSON or YAML",
	Long: `Convert one or more PDF books.

Each file is converted independently and files run concurrently, up to
--jobs at a time. For book.pdf the outputs are book.html, book.json and
book.yaml in the output directory, depending on --format.

Examples:
  bookflow convert book.pdf
  bookflow convert -f all -d out/ *.pdf
  bookflow convert -j 2 --lang en novel.pdf`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := applyConvertFlags(cmd); err != nil {
			return err
		}
		cfg := cfgManager.Get()
		if err := cfg.Check(); err != nil {
			return err
		}

		failed, err := convertAll(cmd.Context(), args, cfg)
		if err != nil {
			return err
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d files failed", failed, len(args))
		}
		return nil
	},
}

func init() {
	convertCmd.Flags().StringVarP(&convertFormat, "format", "f", "html", "output format: html, json, yaml or all")
	convertCmd.Flags().StringVarP(&convertOutputDir, "output-dir", "d", ".", "directory for converted files")
	convertCmd.Flags().IntVarP(&convertJobs, "jobs", "j", 0, "files converted at once (0: number of CPUs)")
	convertCmd.Flags().StringVar(&convertLang, "lang", "pt-BR", "language attribute of the HTML document")
	convertCmd.Flags().BoolVar(&convertValidate, "validate", false, "check JSON output against the book schema before writing")
}

// applyConvertFlags copies flags the user set over the loaded config.
// An explicit --jobs 0 means one job per CPU.
func applyConvertFlags(cmd *cobra.Command) error {
	jobs := convertJobs
	if jobs == 0 {
		jobs = runtime.NumCPU()
	}

	overrides := []struct {
		flag  string
		key   string
		value any
	}{
		{"format", "format", convertFormat},
		{"output-dir", "output_dir", convertOutputDir},
		{"jobs", "jobs", jobs},
		{"lang", "lang", convertLang},
		{"validate", "validate", convertValidate},
	}
	for _, o := range overrides {
		if !cmd.Flags().Changed(o.flag) {
			continue
		}
		if err := cfgManager.Set(o.key, o.value); err != nil {
			return err
		}
	}
	return nil
}

// convertAll converts files concurrently. A failing file is logged and
// counted; only cancellation stops the batch.
func convertAll(ctx context.Context, paths []string, cfg *config.Config) (int, error) {
	var failed atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Jobs)
	for _, path := range paths {
		path := path
		g.Go(func() error {
			if err := convertFile(ctx, path, cfg); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				failed.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return int(failed.Load()), err
	}
	return int(failed.Load()), nil
}

// convertFile converts one PDF and writes every configured output
func convertFile(ctx context.Context, path string, cfg *config.Config) error {
	runLogger := logger.With("run_id", uuid.New().String(), "path", path)
	start := time.Now()

	res, err := bookflow.Open(path).
		Context(ctx).
		Logger(runLogger).
		Lang(cfg.Lang).
		Convert()
	if err != nil {
		if errors.Is(err, bookflow.ErrNoContent) {
			runLogger.Error("no extractable text; the PDF may be scanned images")
		} else {
			runLogger.Error("conversion failed", "error", err)
		}
		return err
	}

	written, err := writeOutputs(res, path, cfg)
	if err != nil {
		runLogger.Error("writing output failed", "error", err)
		return err
	}

	runLogger.Info("converted",
		"title", res.Book.Title,
		"chapters", len(res.Book.Chapters),
		"words", res.Book.WordCount,
		"outputs", strings.Join(written, ","),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	return nil
}

// writeOutputs writes the result in each configured format and returns the
// written paths
func writeOutputs(res *bookflow.Result, source string, cfg *config.Config) ([]string, error) {
	formats, err := cfg.Formats()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	base := outputBase(source)
	var written []string
	for _, f := range formats {
		var data []byte
		switch f {
		case config.FormatHTML:
			data = []byte(res.HTML)
		default:
			format, err := export.ParseFormat(f)
			if err != nil {
				return written, err
			}
			var buf bytes.Buffer
			if err := export.Encode(&buf, format, res.Book); err != nil {
				return written, fmt.Errorf("encoding %s: %w", f, err)
			}
			if format == export.FormatJSON && cfg.Validate {
				if err := export.Validate(buf.Bytes()); err != nil {
					return written, err
				}
			}
			data = buf.Bytes()
		}

		out := filepath.Join(cfg.OutputDir, base+"."+f)
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return written, fmt.Errorf("writing %s: %w", out, err)
		}
		written = append(written, out)
	}
	return written, nil
}

// outputBase returns the file name of source without directory and extension
func outputBase(source string) string {
	name := filepath.Base(source)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// isPDF reports whether path has a .pdf extension, in any case
func isPDF(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".pdf")
}
