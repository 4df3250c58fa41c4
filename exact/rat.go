// SPDX-License-Identifier: MIT

package exact

import "math/big"

// Rat is the arbitrary precision rational field over *big.Rat.
type Rat struct{}

var _ Field[*big.Rat] = Rat{}

// Name implements Field.
func (Rat) Name() string { return "rat" }

// Zero implements Field.
func (Rat) Zero() *big.Rat { return new(big.Rat) }

// One implements Field.
func (Rat) One() *big.Rat { return big.NewRat(1, 1) }

// FromInt64 implements Field.
func (Rat) FromInt64(x int64) *big.Rat { return new(big.Rat).SetInt64(x) }

// FromRat implements Field; it never fails.
func (Rat) FromRat(r *big.Rat) (*big.Rat, error) { return new(big.Rat).Set(r), nil }

// Rat implements Field.
func (Rat) Rat(a *big.Rat) (*big.Rat, error) { return new(big.Rat).Set(a), nil }

// Add implements Field.
func (Rat) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }

// Sub implements Field.
func (Rat) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }

// Mul implements Field.
func (Rat) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }

// Quo implements Field.
func (Rat) Quo(a, b *big.Rat) *big.Rat { return new(big.Rat).Quo(a, b) }

// Neg implements Field.
func (Rat) Neg(a *big.Rat) *big.Rat { return new(big.Rat).Neg(a) }

// Abs implements Field.
func (Rat) Abs(a *big.Rat) *big.Rat { return new(big.Rat).Abs(a) }

// Sign implements Field.
func (Rat) Sign(a *big.Rat) int { return a.Sign() }

// Cmp implements Field.
func (Rat) Cmp(a, b *big.Rat) int { return a.Cmp(b) }

// String implements Field ("3", "-1/2").
func (Rat) String(a *big.Rat) string { return a.RatString() }

// Standardize divides v by its L1 norm (sum of absolute values).
// The L1 norm keeps every coordinate rational, unlike the Euclidean one.
func (Rat) Standardize(v []*big.Rat) *big.Rat {
	norm := new(big.Rat)
	for _, x := range v {
		norm.Add(norm, new(big.Rat).Abs(x))
	}
	if norm.Sign() == 0 || norm.Cmp(big.NewRat(1, 1)) == 0 {
		return norm
	}
	for i := range v {
		v[i] = new(big.Rat).Quo(v[i], norm)
	}

	return norm
}
