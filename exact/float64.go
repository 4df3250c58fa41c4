// SPDX-License-Identifier: MIT

package exact

import (
	"math"
	"math/big"
	"strconv"
)

// Float64 is the floating point field. Zero tests are exact comparisons,
// so results are only as good as the rounding of the inputs allows; it
// exists as a fast approximate path and for cross-checks.
type Float64 struct{}

var _ Field[float64] = Float64{}

// Name implements Field.
func (Float64) Name() string { return "float64" }

// Zero implements Field.
func (Float64) Zero() float64 { return 0 }

// One implements Field.
func (Float64) One() float64 { return 1 }

// FromInt64 implements Field.
func (Float64) FromInt64(x int64) float64 { return float64(x) }

// FromRat implements Field with round-to-nearest.
func (Float64) FromRat(r *big.Rat) (float64, error) {
	f, _ := r.Float64()
	if math.IsInf(f, 0) {
		return 0, ErrOverflow
	}

	return f, nil
}

// Rat implements Field; NaN and ±Inf are rejected.
func (Float64) Rat(a float64) (*big.Rat, error) {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return nil, ErrNotFinite
	}

	return new(big.Rat).SetFloat64(a), nil
}

// Add implements Field.
func (Float64) Add(a, b float64) float64 { return a + b }

// Sub implements Field.
func (Float64) Sub(a, b float64) float64 { return a - b }

// Mul implements Field.
func (Float64) Mul(a, b float64) float64 { return a * b }

// Quo implements Field.
func (Float64) Quo(a, b float64) float64 { return a / b }

// Neg implements Field.
func (Float64) Neg(a float64) float64 { return -a }

// Abs implements Field.
func (Float64) Abs(a float64) float64 { return math.Abs(a) }

// Sign implements Field.
func (Float64) Sign(a float64) int {
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
func (Float64) Cmp(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// String implements Field using the shortest round-trip form.
func (Float64) String(a float64) string { return strconv.FormatFloat(a, 'g', -1, 64) }

// Standardize divides v by its L1 norm.
func (Float64) Standardize(v []float64) float64 {
	var norm float64
	for _, x := range v {
		norm += math.Abs(x)
	}
	if norm == 0 || norm == 1 {
		return norm
	}
	for i := range v {
		v[i] /= norm
	}

	return norm
}
