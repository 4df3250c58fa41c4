// SPDX-License-Identifier: MIT

// Package exact provides the numeric substrate of the zonotope engine:
// a small arithmetic interface (Field) and four implementations of it.
//
// What:
//
//   - Field[T]: the arithmetic surface plus explicit, fallible
//     conversions to and from *big.Rat.
//   - Int: arbitrary precision integers (*big.Int); the default kernel.
//   - Rat: arbitrary precision rationals (*big.Rat).
//   - Int64: fixed width integers; overflow is the caller's responsibility.
//   - Float64: IEEE doubles; approximate, never the primary mode.
//   - Dot, Clone, Combine, AddScaled: vector helpers over any Field.
//
// Why:
//
//   - The combination engine (kernel and inverse updates, angular sweep)
//     is written once against Field[T]; only Standardize differs per field.
//
// Value semantics:
//
//	Field methods never mutate their arguments. Pointer-valued fields
//	(Int, Rat) always return freshly allocated results, so vectors can
//	share elements freely and a shallow slice copy is a full copy.
//
// Standardization:
//
//   - Int, Int64: divide by the gcd of the absolute values (sign kept).
//   - Rat, Float64: divide by the L1 norm (rationality is preserved).
//
// Errors:
//
//   - ErrNotIntegral  a non-integral rational was converted into Int/Int64.
//   - ErrOverflow     a value does not fit into int64.
//   - ErrNotFinite    a NaN or ±Inf float cannot become a rational.
package exact
