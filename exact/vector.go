// SPDX-License-Identifier: MIT

package exact

import "fmt"

// Dot returns Σ a[i]·b[i]. It panics if the lengths differ.
// Complexity: O(d).
func Dot[T any](f Field[T], a, b []T) T {
	if len(a) != len(b) {
		panic(fmt.Sprintf("exact: Dot of vectors with lengths %d and %d", len(a), len(b)))
	}
	n := len(a)
	sum := f.Zero()
	for i := 0; i < n; i++ {
		sum = f.Add(sum, f.Mul(a[i], b[i]))
	}

	return sum
}

// Clone returns a shallow copy of v. Because Field values are never
// mutated in place, a shallow copy is an independent vector.
func Clone[T any](v []T) []T {
	out := make([]T, len(v))
	copy(out, v)

	return out
}

// CloneAll copies every row of m.
func CloneAll[T any](m [][]T) [][]T {
	out := make([][]T, len(m))
	for i := range m {
		out[i] = Clone(m[i])
	}

	return out
}

// Combine returns the fresh vector alpha·u − beta·v.
// This is the single elimination step shared by the kernel and inverse
// updates.
func Combine[T any](f Field[T], alpha T, u []T, beta T, v []T) []T {
	out := make([]T, len(u))
	for r := range u {
		out[r] = f.Sub(f.Mul(alpha, u[r]), f.Mul(beta, v[r]))
	}

	return out
}

// AddScaled adds sign·v to acc in place, for sign ∈ {+1, −1}.
func AddScaled[T any](f Field[T], acc []T, sign int, v []T) {
	for r := range acc {
		if sign < 0 {
			acc[r] = f.Sub(acc[r], v[r])
		} else {
			acc[r] = f.Add(acc[r], v[r])
		}
	}
}

// Sum returns the coordinate-wise sum of rows (d-dimensional zero when empty).
func Sum[T any](f Field[T], d int, rows [][]T) []T {
	acc := Zeros(f, d)
	for _, row := range rows {
		AddScaled(f, acc, 1, row)
	}

	return acc
}

// Zeros returns a vector of d zeros.
func Zeros[T any](f Field[T], d int) []T {
	out := make([]T, d)
	for i := range out {
		out[i] = f.Zero()
	}

	return out
}

// IsZero reports whether every coordinate of v is zero.
func IsZero[T any](f Field[T], v []T) bool {
	for _, x := range v {
		if f.Sign(x) != 0 {
			return false
		}
	}

	return true
}

// Identity returns the d×d identity matrix as rows.
func Identity[T any](f Field[T], d int) [][]T {
	m := make([][]T, d)
	for i := range m {
		m[i] = Zeros(f, d)
		m[i][i] = f.One()
	}

	return m
}
