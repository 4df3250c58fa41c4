// SPDX-License-Identifier: MIT

package exact

import (
	"math/big"
	"strconv"
)

// Int64 is the fixed width integer field.
// It is fast but not closed under the engine's arithmetic: intermediate
// values may overflow silently, exactly as with any fixed-width type.
// Callers choose it only when the generator entries are known to be small.
type Int64 struct{}

var _ Field[int64] = Int64{}

// Name implements Field.
func (Int64) Name() string { return "int64" }

// Zero implements Field.
func (Int64) Zero() int64 { return 0 }

// One implements Field.
func (Int64) One() int64 { return 1 }

// FromInt64 implements Field.
func (Int64) FromInt64(x int64) int64 { return x }

// FromRat implements Field; r must be an integer in the int64 range.
func (Int64) FromRat(r *big.Rat) (int64, error) {
	if !r.IsInt() {
		return 0, ErrNotIntegral
	}
	if !r.Num().IsInt64() {
		return 0, ErrOverflow
	}

	return r.Num().Int64(), nil
}

// Rat implements Field.
func (Int64) Rat(a int64) (*big.Rat, error) { return new(big.Rat).SetInt64(a), nil }

// Add implements Field.
func (Int64) Add(a, b int64) int64 { return a + b }

// Sub implements Field.
func (Int64) Sub(a, b int64) int64 { return a - b }

// Mul implements Field.
func (Int64) Mul(a, b int64) int64 { return a * b }

// Quo implements Field.
func (Int64) Quo(a, b int64) int64 { return a / b }

// Neg implements Field.
func (Int64) Neg(a int64) int64 { return -a }

// Abs implements Field.
func (Int64) Abs(a int64) int64 {
	if a < 0 {
		return -a
	}

	return a
}

// Sign implements Field.
func (Int64) Sign(a int64) int {
	switch {
	case a > 0:
		return 1
	case a < 0:
		return -1
	default:
		return 0
	}
}

// Cmp implements Field.
func (Int64) Cmp(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// String implements Field.
func (Int64) String(a int64) string { return strconv.FormatInt(a, 10) }

// Standardize divides v by the gcd of its entries, keeping signs.
func (f Int64) Standardize(v []int64) int64 {
	var g int64
	for _, x := range v {
		if x == 0 {
			continue
		}
		g = gcd64(g, f.Abs(x))
		if g == 1 {
			return 1
		}
	}
	if g == 0 {
		return 0
	}
	for i := range v {
		v[i] /= g
	}

	return g
}

// gcd64 is Euclid's algorithm on non-negative operands.
func gcd64(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
