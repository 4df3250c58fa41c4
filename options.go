// SPDX-License-Identifier: MIT

package zonotope

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/zonotope/cache"
	"github.com/katalvlaran/zonotope/combination"
)

// Option configures Volume, Halfspaces and their generic variants.
type Option func(*Options)

// Options holds the configurable parameters of a computation.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// Workers is the number of goroutines used for the enumeration
	// (<= 1 means single-threaded, the default).
	Workers int

	// Logger receives debug traces; defaults to a discarding logger.
	Logger *slog.Logger

	// Combinations keeps the supporting generator indices on every
	// hyperplane returned by Halfspaces. Off by default.
	Combinations bool

	// Cache, if non-nil, is consulted before and filled after Volume and
	// Halfspaces. Cache failures are logged and never fail a computation.
	Cache cache.Store
}

// DefaultOptions returns Options with a background context, one worker,
// a discarding logger, no combinations and no cache.
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		Workers:      1,
		Logger:       slog.New(slog.DiscardHandler),
		Combinations: false,
		Cache:        nil,
	}
}

// WithContext sets the Context. A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the number of goroutines. It panics on a negative n,
// which is a programming error.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("zonotope: WithWorkers(n) requires n >= 0")
	}

	return func(o *Options) {
		o.Workers = n
	}
}

// WithLogger installs l for debug traces. A nil logger has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithCombinations controls whether hyperplanes carry their combination.
func WithCombinations(keep bool) Option {
	return func(o *Options) {
		o.Combinations = keep
	}
}

// WithCache enables result caching in s.
func WithCache(s cache.Store) Option {
	return func(o *Options) {
		o.Cache = s
	}
}

// newOptions applies opts over the defaults.
func newOptions(opts []Option) Options {
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	return o
}

// traverseOptions translates o into combination.Traverse options.
func (o *Options) traverseOptions() []combination.Option {
	return []combination.Option{
		combination.WithContext(o.Ctx),
		combination.WithWorkers(o.Workers),
	}
}
