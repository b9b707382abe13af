package bookflow

import (
	"context"
	"log/slog"

	"github.com/pfraquete/BookFlow/render"
)

// ExtractOptions holds configuration for a conversion.
type ExtractOptions struct {
	// Page selection (1-indexed in API, stored as-is)
	pages []int

	// HTML document language
	lang string

	logger *slog.Logger
	ctx    context.Context
}

// defaultOptions returns the default conversion options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		pages: nil, // nil means all pages
		lang:  render.DefaultLang,
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := ExtractOptions{
		lang:   o.lang,
		logger: o.logger,
		ctx:    o.ctx,
	}

	// Deep copy pages slice
	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}

	return newOpts
}

func (o ExtractOptions) context() context.Context {
	if o.ctx == nil {
		return context.Background()
	}
	return o.ctx
}

func (o ExtractOptions) log() *slog.Logger {
	if o.logger == nil {
		return slog.Default()
	}
	return o.logger
}

func (o ExtractOptions) renderOptions() render.Options {
	return render.Options{Lang: o.lang}
}
