// SPDX-License-Identifier: MIT

package matrix

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
	"strconv"

	"github.com/katalvlaran/zonotope/exact"
)

// Integral returns the uniform integral view s·G, where s is the least
// common multiple of every denominator in G, together with s.
//
// Implementation:
//   - Stage 1: s = lcm of all denominators (1 for integral input).
//   - Stage 2: entry num/den becomes num·(s/den), an exact integer.
//
// Callers map results back with volume(G) = volume(s·G)/s^d and, for a
// facet (n, c) of s·G, the facet (s·n, c) of G.
// Complexity: O(n·d) big-integer operations.
func (g *Generators) Integral() ([][]*big.Int, *big.Int) {
	s := big.NewInt(1)
	for _, row := range g.rows {
		lcmInto(s, row)
	}

	return scaleRows(g.rows, func(int) *big.Int { return s }), new(big.Int).Set(s)
}

// PerGenerator returns every generator multiplied by the lcm of its own
// denominators. Directions are preserved and lengths are not, so this view
// only serves computations that depend on directions alone (kernels,
// facet normals).
func (g *Generators) PerGenerator() [][]*big.Int {
	scales := make([]*big.Int, len(g.rows))
	for i, row := range g.rows {
		scales[i] = big.NewInt(1)
		lcmInto(scales[i], row)
	}

	return scaleRows(g.rows, func(i int) *big.Int { return scales[i] })
}

// Into converts the generators into field f, row by row.
// Fails with the field's conversion error (for example exact.ErrNotIntegral
// when a fractional matrix is converted into exact.Int).
func Into[T any](g *Generators, f exact.Field[T]) ([][]T, error) {
	out := make([][]T, len(g.rows))
	for i, row := range g.rows {
		out[i] = make([]T, g.dim)
		for r, x := range row {
			v, err := f.FromRat(x)
			if err != nil {
				return nil, matrixErrorf(opInto, fmt.Errorf("%s (%d,%d): %w", f.Name(), i, r, err))
			}
			out[i][r] = v
		}
	}

	return out, nil
}

// Digest returns a hex SHA-256 of the dimension and the canonical text of
// every entry, in generator order. Equal matrices have equal digests.
func (g *Generators) Digest() string {
	h := sha256.New()
	h.Write([]byte(strconv.Itoa(g.dim)))
	for _, row := range g.rows {
		h.Write([]byte{';'})
		for _, x := range row {
			h.Write([]byte{','})
			h.Write([]byte(x.RatString()))
		}
	}

	return hex.EncodeToString(h.Sum(nil))
}

// lcmInto folds the denominators of row into acc.
func lcmInto(acc *big.Int, row []*big.Rat) {
	gcd := new(big.Int)
	for _, x := range row {
		den := x.Denom()
		if den.IsInt64() && den.Int64() == 1 {
			continue
		}
		gcd.GCD(nil, nil, acc, den)
		acc.Mul(acc, new(big.Int).Quo(den, gcd))
	}
}

func scaleRows(rows [][]*big.Rat, scale func(i int) *big.Int) [][]*big.Int {
	out := make([][]*big.Int, len(rows))
	for i, row := range rows {
		s := scale(i)
		out[i] = make([]*big.Int, len(row))
		for r, x := range row {
			v := new(big.Int).Quo(s, x.Denom())
			out[i][r] = v.Mul(v, x.Num())
		}
	}

	return out
}
