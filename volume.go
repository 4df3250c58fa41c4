// SPDX-License-Identifier: MIT

package zonotope

import (
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/katalvlaran/zonotope/cache"
	"github.com/katalvlaran/zonotope/combination"
	"github.com/katalvlaran/zonotope/exact"
	"github.com/katalvlaran/zonotope/matrix"
)

// Volume returns the exact Euclidean volume of the zonotope spanned by g.
//
// Rational generators are lifted to the integral matrix s·G first; the
// enumeration runs in big integers and the result is divided by s^d.
// With WithCache the digest of g is looked up before any work is done.
//
// Errors: ErrNilGenerators, ErrTooFewGenerators (n < d), or the context's
// error when the enumeration is cancelled.
// Complexity: O(C(n,d)·d²) big-integer operations.
func Volume(g *matrix.Generators, opts ...Option) (*big.Rat, error) {
	// 1. Validate input
	if g == nil {
		return nil, zonotopeErrorf(opVolume, ErrNilGenerators)
	}
	o := newOptions(opts)
	n, d := g.Len(), g.Dim()
	if n < d {
		return nil, zonotopeErrorf(opVolume, fmt.Errorf("n=%d d=%d: %w", n, d, ErrTooFewGenerators))
	}

	// 2. Cache lookup
	digest := ""
	if o.Cache != nil {
		digest = g.Digest()
		v, err := cache.GetVolume(o.Ctx, o.Cache, digest)
		switch {
		case err == nil:
			o.Logger.Debug("volume cache hit", "digest", digest)
			return v, nil
		case errors.Is(err, cache.ErrNotFound):
			o.Logger.Debug("volume cache miss", "digest", digest)
		default:
			o.Logger.Warn("volume cache read failed", "digest", digest, "err", err)
		}
	}

	// 3. Integral enumeration
	rows, s := g.Integral()
	vz, err := volumeOf(exact.Int{}, rows, &o)
	if err != nil {
		return nil, zonotopeErrorf(opVolume, err)
	}

	// 4. Undo the scaling: vol(G) = vol(s·G) / s^d
	scale := new(big.Int).Exp(s, big.NewInt(int64(d)), nil)
	vol := new(big.Rat).SetFrac(vz, scale)

	// 5. Cache store
	if o.Cache != nil {
		if err = cache.PutVolume(o.Ctx, o.Cache, digest, vol); err != nil {
			o.Logger.Warn("volume cache write failed", "digest", digest, "err", err)
		}
	}

	return vol, nil
}

// VolumeOf runs the volume enumeration directly in field f over rows, one
// generator per row. Nothing is rescaled; with a fixed-width field such as
// exact.Int64 overflow is the caller's responsibility.
func VolumeOf[T any](f exact.Field[T], rows [][]T, opts ...Option) (T, error) {
	o := newOptions(opts)
	v, err := volumeOf(f, rows, &o)
	if err != nil {
		return f.Zero(), zonotopeErrorf(opVolume, err)
	}

	return v, nil
}

// volumeOf sums |det| over every independent d-subset of rows. Dependent
// prefixes are pruned by the inverse container, so only full-rank leaves
// reach the accumulator.
func volumeOf[T any](f exact.Field[T], rows [][]T, o *Options) (T, error) {
	// 1. Root container, k = d
	if len(rows) == 0 {
		return f.Zero(), combination.ErrBadRows
	}
	d := len(rows[0])
	if len(rows) < d {
		return f.Zero(), fmt.Errorf("n=%d d=%d: %w", len(rows), d, ErrTooFewGenerators)
	}
	root, err := combination.NewInverse(f, rows, d)
	if err != nil {
		return f.Zero(), err
	}
	o.Logger.Debug("volume start", "field", f.Name(), "n", len(rows), "d", d, "workers", o.Workers)

	// 2. Accumulate absolute determinants of the leaves
	var mu sync.Mutex
	total := f.Zero()
	visit := func(c *combination.Inverse[T]) (bool, error) {
		if c.Size() < d {
			return false, nil
		}
		v := c.AbsDeterminant()
		mu.Lock()
		total = f.Add(total, v)
		mu.Unlock()

		return true, nil
	}
	stats, err := combination.Traverse(root, visit, o.traverseOptions()...)
	if err != nil {
		return f.Zero(), err
	}
	o.Logger.Debug("volume done",
		"nodes", stats.Nodes, "leaves", stats.Leaves, "singular", stats.Singular, "volume", f.String(total))

	return total, nil
}
