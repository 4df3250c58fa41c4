// SPDX-License-Identifier: MIT

// Package combination defines the combination containers, the traversal
// options and the diagnostics collected while enumerating combinations.
package combination

import (
	"context"
	"errors"
)

var (
	// ErrNilVisitor is returned when Traverse is called without a visitor.
	ErrNilVisitor = errors.New("combination: visitor is nil")

	// ErrBadRows is returned when a tracked container is built from an empty
	// or ragged generator matrix.
	ErrBadRows = errors.New("combination: generator rows are empty or ragged")

	// ErrBadLimit is returned for a negative maximum size, or one larger
	// than the ambient dimension for tracked containers.
	ErrBadLimit = errors.New("combination: invalid maximum size")
)

// Container is the contract Traverse walks over. C is the concrete
// container type itself, so Clone stays strongly typed:
//
//	type Kernel[T] struct{ ... }  // implements Container[*Kernel[T]]
//
// Extend must only be called with Begin() <= i < End(); the container
// records degeneracy instead of failing, and Valid reports it.
type Container[C any] interface {
	// Size is the number of chosen indices.
	Size() int

	// Limit returns (n, k): indices are drawn from [0, n) and at most k are chosen.
	Limit() (n, k int)

	// Begin and End bound the next index to append, End exclusive.
	Begin() int
	End() int

	// Extend appends i and updates any tracked linear-algebra state.
	Extend(i int)

	// Valid reports that the combination is not degenerate and Size() <= k.
	Valid() bool

	// Clone returns a fully independent copy.
	Clone() C

	// Elements returns a copy of the chosen indices in increasing order.
	Elements() []int
}

// Visitor is called once per valid combination in depth-first pre-order.
// Returning leaf == true prunes the subtree below c; returning an error
// aborts the traversal with that error.
type Visitor[C any] func(c C) (leaf bool, err error)

// Option configures optional behavior of Traverse.
type Option func(*Options)

// Options holds configurable parameters for Traverse.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// It is checked before every visit.
	Ctx context.Context

	// Workers is the number of goroutines the top-level branches are spread
	// over. Values <= 1 mean a single-threaded walk (the default). With more
	// than one worker the visitor must be safe for concurrent use.
	Workers int

	// OnSingular, if non-nil, is invoked with the parent's elements and the
	// rejected index whenever an extension turns out degenerate.
	// Returning an error aborts traversal. Like the visitor, it runs on
	// several goroutines when Workers > 1.
	OnSingular func(parent []int, i int) error

	// OnVisit, if non-nil, is invoked with the elements of every valid
	// combination just before the visitor. Returning an error aborts
	// traversal.
	OnVisit func(elements []int) error
}

// DefaultOptions returns Options with a background context, a single
// worker and no hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Workers:    1,
		OnSingular: nil,
		OnVisit:    nil,
	}
}

// WithContext sets the Context for the traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers spreads the top-level branches over n goroutines.
// It panics on a negative n, which is a programming error.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("combination: WithWorkers(n) requires n >= 0")
	}

	return func(o *Options) {
		o.Workers = n
	}
}

// WithOnSingular installs fn as the degenerate-extension hook.
func WithOnSingular(fn func(parent []int, i int) error) Option {
	return func(o *Options) {
		o.OnSingular = fn
	}
}

// WithOnVisit installs fn as the pre-visit hook.
func WithOnVisit(fn func(elements []int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// Stats captures diagnostics of a traversal.
type Stats struct {
	// Nodes counts visited (valid) combinations, the root included.
	Nodes int

	// Leaves counts visits for which the visitor returned leaf == true.
	Leaves int

	// Singular counts extensions rejected as degenerate.
	Singular int

	// MaxDepth is the largest combination size visited.
	MaxDepth int
}

func (s *Stats) merge(o Stats) {
	s.Nodes += o.Nodes
	s.Leaves += o.Leaves
	s.Singular += o.Singular
	if o.MaxDepth > s.MaxDepth {
		s.MaxDepth = o.MaxDepth
	}
}
