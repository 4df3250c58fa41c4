// SPDX-License-Identifier: MIT

package zonotope

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/katalvlaran/zonotope/cache"
	"github.com/katalvlaran/zonotope/combination"
	"github.com/katalvlaran/zonotope/exact"
	"github.com/katalvlaran/zonotope/halfspace"
	"github.com/katalvlaran/zonotope/matrix"
)

// Halfspaces returns the facets of the zonotope spanned by g as primitive
// integer inequalities Normal·x + Offset >= 0, sorted by offset and then
// by normal.
//
// The enumeration runs on the integral matrix s·G, with kernels tracked on
// the per-generator scaled rows (same directions, smaller numbers). Every
// facet (n, c) of s·G is mapped back to (s·n, c) and re-standardized, so
// the result describes g itself. Combinations are stripped unless
// WithCombinations(true) is given.
//
// Errors: ErrNilGenerators, ErrDimensionTooSmall (d < 2),
// ErrTooFewGenerators (n < d), ErrNotFullDimensional, or the context's
// error on cancellation.
// Complexity: O(C(n,d-2)·(n·d + n log n)) big-integer operations.
func Halfspaces(g *matrix.Generators, opts ...Option) ([]halfspace.Hyperplane[*big.Int], error) {
	// 1. Validate input
	if g == nil {
		return nil, zonotopeErrorf(opHalfspaces, ErrNilGenerators)
	}
	o := newOptions(opts)

	// 2. Cache lookup
	digest := ""
	if o.Cache != nil {
		digest = g.Digest()
		hs, err := cache.GetHalfspaces(o.Ctx, o.Cache, digest, o.Combinations)
		switch {
		case err == nil:
			o.Logger.Debug("halfspaces cache hit", "digest", digest, "facets", len(hs))
			return hs, nil
		case errors.Is(err, cache.ErrNotFound):
			o.Logger.Debug("halfspaces cache miss", "digest", digest)
		default:
			o.Logger.Warn("halfspaces cache read failed", "digest", digest, "err", err)
		}
	}

	// 3. Enumerate on s·G
	f := exact.Int{}
	rows, s := g.Integral()
	set, err := halfspacesOf(f, g.PerGenerator(), rows, &o)
	if err != nil {
		return nil, zonotopeErrorf(opHalfspaces, err)
	}

	// 4. Back to the coordinates of g
	out := set
	if s.Cmp(big.NewInt(1)) != 0 {
		out = halfspace.NewSet[*big.Int](f)
		for _, h := range set.Sorted() {
			normal := make([]*big.Int, len(h.Normal))
			for r, x := range h.Normal {
				normal[r] = f.Mul(s, x)
			}
			out.Insert(halfspace.Hyperplane[*big.Int]{Offset: h.Offset, Normal: normal, Combination: h.Combination})
		}
	}
	hs := out.Sorted()

	// 5. Cache store
	if o.Cache != nil {
		if err = cache.PutHalfspaces(o.Ctx, o.Cache, digest, o.Combinations, hs); err != nil {
			o.Logger.Warn("halfspaces cache write failed", "digest", digest, "err", err)
		}
	}

	return hs, nil
}

// HalfspacesOf runs the facet enumeration directly in field f over rows,
// one generator per row, and returns the standardized facets in sorted
// order. Nothing is rescaled.
func HalfspacesOf[T any](f exact.Field[T], rows [][]T, opts ...Option) ([]halfspace.Hyperplane[T], error) {
	o := newOptions(opts)
	set, err := halfspacesOf(f, rows, rows, &o)
	if err != nil {
		return nil, zonotopeErrorf(opHalfspaces, err)
	}

	return set.Sorted(), nil
}

// halfspacesOf enumerates every independent (d-2)-subset C of kernelRows
// and sweeps the two-dimensional kernel of C over sweepRows. Both row sets
// must describe the same generator directions.
func halfspacesOf[T any](f exact.Field[T], kernelRows, sweepRows [][]T, o *Options) (*halfspace.Set[T], error) {
	// 1. Preconditions
	if len(sweepRows) == 0 {
		return nil, combination.ErrBadRows
	}
	n, d := len(sweepRows), len(sweepRows[0])
	if d < 2 {
		return nil, fmt.Errorf("d=%d: %w", d, ErrDimensionTooSmall)
	}
	if n < d {
		return nil, fmt.Errorf("n=%d d=%d: %w", n, d, ErrTooFewGenerators)
	}
	rank, err := combination.Rank(f, kernelRows)
	if err != nil {
		return nil, err
	}
	if rank < d {
		return nil, fmt.Errorf("rank %d < d=%d: %w", rank, d, ErrNotFullDimensional)
	}

	// 2. Root container, k = d-1 so that a last index always remains
	root, err := combination.NewKernel(f, kernelRows, d-1)
	if err != nil {
		return nil, err
	}
	o.Logger.Debug("halfspaces start", "field", f.Name(), "n", n, "d", d, "workers", o.Workers)

	// 3. Sweep every (d-2)-combination
	set := halfspace.NewSet(f)
	emit := func(h halfspace.Hyperplane[T]) error {
		if !o.Combinations {
			h.Combination = nil
		}
		set.Insert(h)

		return nil
	}
	visit := func(c *combination.Kernel[T]) (bool, error) {
		if c.Size() < d-2 {
			return false, nil
		}

		return true, halfspace.Sweep(sweepRows, c, emit)
	}
	stats, err := combination.Traverse(root, visit, o.traverseOptions()...)
	if err != nil {
		return nil, err
	}
	o.Logger.Debug("halfspaces done",
		"nodes", stats.Nodes, "leaves", stats.Leaves, "singular", stats.Singular, "facets", set.Len())

	return set, nil
}
