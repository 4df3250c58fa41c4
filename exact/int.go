// SPDX-License-Identifier: MIT

package exact

import "math/big"

// Int is the arbitrary precision integer field over *big.Int.
// It is the default kernel of the engine: fraction-free updates keep every
// intermediate value integral, so no precision is ever lost.
type Int struct{}

var _ Field[*big.Int] = Int{}

// Name implements Field.
func (Int) Name() string { return "int" }

// Zero implements Field.
func (Int) Zero() *big.Int { return new(big.Int) }

// One implements Field.
func (Int) One() *big.Int { return big.NewInt(1) }

// FromInt64 implements Field.
func (Int) FromInt64(x int64) *big.Int { return big.NewInt(x) }

// FromRat implements Field; r must have denominator one.
func (Int) FromRat(r *big.Rat) (*big.Int, error) {
	if !r.IsInt() {
		return nil, ErrNotIntegral
	}

	return new(big.Int).Set(r.Num()), nil
}

// Rat implements Field.
func (Int) Rat(a *big.Int) (*big.Rat, error) { return new(big.Rat).SetInt(a), nil }

// Add implements Field.
func (Int) Add(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) }

// Sub implements Field.
func (Int) Sub(a, b *big.Int) *big.Int { return new(big.Int).Sub(a, b) }

// Mul implements Field.
func (Int) Mul(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) }

// Quo implements Field with truncated division, which is exact for the
// divisions the engine performs.
func (Int) Quo(a, b *big.Int) *big.Int { return new(big.Int).Quo(a, b) }

// Neg implements Field.
func (Int) Neg(a *big.Int) *big.Int { return new(big.Int).Neg(a) }

// Abs implements Field.
func (Int) Abs(a *big.Int) *big.Int { return new(big.Int).Abs(a) }

// Sign implements Field.
func (Int) Sign(a *big.Int) int { return a.Sign() }

// Cmp implements Field.
func (Int) Cmp(a, b *big.Int) int { return a.Cmp(b) }

// String implements Field.
func (Int) String(a *big.Int) string { return a.String() }

// Standardize divides v by the gcd of its entries, keeping signs.
// It returns the gcd (zero for the zero vector, one when v is primitive).
// Complexity: O(len(v)) gcd steps.
func (Int) Standardize(v []*big.Int) *big.Int {
	g := new(big.Int)
	for _, x := range v {
		if x.Sign() == 0 {
			continue
		}
		if g.Sign() == 0 {
			g.Abs(x)
		} else {
			g.GCD(nil, nil, g, new(big.Int).Abs(x))
		}
		if isOne(g) {
			return g // already primitive, nothing to divide
		}
	}
	if g.Sign() == 0 {
		return g
	}
	for i := range v {
		v[i] = new(big.Int).Quo(v[i], g)
	}

	return g
}

func isOne(x *big.Int) bool { return x.IsInt64() && x.Int64() == 1 }
