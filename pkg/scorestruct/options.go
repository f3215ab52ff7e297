// Package scorestruct extracts structured innings records from scorecard rows.
package scorestruct

import (
	"github.com/ukaji3/scorestruct-go/internal/logger"
	"github.com/ukaji3/scorestruct-go/pkg/scorestruct/parser"
)

// DefaultConcurrency is the number of blocks assembled at once.
const DefaultConcurrency = 4

// Options configures extraction behavior.
type Options struct {
	// Concurrency bounds how many innings blocks are assembled in parallel.
	// Values below 1 mean DefaultConcurrency.
	Concurrency int
	// HeaderFallbackLen caps a header taken from the block text.
	// Zero means parser.DefaultHeaderFallbackLen.
	HeaderFallbackLen int
	// FallbackSearch specifies whether unset extras, total and fall of
	// wickets are searched for in the block text.
	// If nil, defaults to true.
	FallbackSearch *bool
	// Logger receives per-innings diagnostics. If nil, nothing is logged.
	Logger logger.Logger
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Concurrency:       DefaultConcurrency,
		HeaderFallbackLen: parser.DefaultHeaderFallbackLen,
	}
}

// ShouldSearchFullText returns whether the full-text fallback is enabled.
func (o Options) ShouldSearchFullText() bool {
	if o.FallbackSearch != nil {
		return *o.FallbackSearch
	}
	return true
}

func (o Options) concurrency() int {
	if o.Concurrency < 1 {
		return DefaultConcurrency
	}
	return o.Concurrency
}

func (o Options) logger() logger.Logger {
	if o.Logger == nil {
		return logger.NewNop()
	}
	return o.Logger
}

func (o Options) parserConfig() parser.Config {
	cfg := parser.DefaultConfig()
	if o.HeaderFallbackLen > 0 {
		cfg.HeaderFallbackLen = o.HeaderFallbackLen
	}
	cfg.FallbackSearch = o.ShouldSearchFullText()
	return cfg
}
