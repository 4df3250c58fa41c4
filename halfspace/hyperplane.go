// SPDX-License-Identifier: MIT

package halfspace

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/zonotope/exact"
)

// Hyperplane is the closed halfspace {x : Normal·x + Offset >= 0}.
// Combination, when present, lists the generator indices spanning the
// facet (strictly increasing); it does not take part in equality.
type Hyperplane[T any] struct {
	Offset      T
	Normal      []T
	Combination []int
}

// Standardize rewrites h in place so that the vector (Offset, Normal...)
// is the field's canonical positive multiple of itself: a primitive
// integer vector for integer fields, L1-normalized otherwise. The
// orientation, and therefore the meaning of the inequality, is kept.
// Standardize is idempotent.
func Standardize[T any](f exact.Field[T], h *Hyperplane[T]) {
	v := make([]T, 0, len(h.Normal)+1)
	v = append(v, h.Offset)
	v = append(v, h.Normal...)
	f.Standardize(v)
	h.Offset = v[0]
	h.Normal = v[1:]
}

// Key is the canonical text of (Offset, Normal), e.g. "1|-1,0". Two
// standardized hyperplanes describe the same halfspace iff their keys are
// equal.
func Key[T any](f exact.Field[T], h Hyperplane[T]) string {
	var b strings.Builder
	b.WriteString(f.String(h.Offset))
	b.WriteByte('|')
	for r, x := range h.Normal {
		if r > 0 {
			b.WriteByte(',')
		}
		b.WriteString(f.String(x))
	}

	return b.String()
}

// Compare orders hyperplanes lexicographically by Offset, then by Normal
// coordinates, then by length. It returns -1, 0 or +1.
func Compare[T any](f exact.Field[T], a, b Hyperplane[T]) int {
	if c := f.Cmp(a.Offset, b.Offset); c != 0 {
		return c
	}
	for r := 0; r < len(a.Normal) && r < len(b.Normal); r++ {
		if c := f.Cmp(a.Normal[r], b.Normal[r]); c != 0 {
			return c
		}
	}

	return cmpInt(len(a.Normal), len(b.Normal))
}

// Contains reports whether point x satisfies h, i.e. Normal·x + Offset >= 0.
func Contains[T any](f exact.Field[T], h Hyperplane[T], x []T) bool {
	return f.Sign(f.Add(exact.Dot(f, h.Normal, x), h.Offset)) >= 0
}

// Eval returns Normal·x + Offset.
func Eval[T any](f exact.Field[T], h Hyperplane[T], x []T) T {
	return f.Add(exact.Dot(f, h.Normal, x), h.Offset)
}

// Convert moves h into another field through exact rationals. It fails
// when a coordinate is not representable (exact.ErrNotIntegral,
// exact.ErrOverflow); the result is not re-standardized.
func Convert[S, T any](from exact.Field[S], to exact.Field[T], h Hyperplane[S]) (Hyperplane[T], error) {
	off, err := exact.Convert(from, to, h.Offset)
	if err != nil {
		return Hyperplane[T]{}, fmt.Errorf("halfspace: offset: %w", err)
	}
	normal, err := exact.ConvertVector(from, to, h.Normal)
	if err != nil {
		return Hyperplane[T]{}, fmt.Errorf("halfspace: normal: %w", err)
	}

	return Hyperplane[T]{Offset: off, Normal: normal, Combination: cloneInts(h.Combination)}, nil
}

// Format renders h as "n·x + c >= 0" with the field's number syntax,
// e.g. "(-1,0)·x + 1 >= 0".
func Format[T any](f exact.Field[T], h Hyperplane[T]) string {
	parts := make([]string, len(h.Normal))
	for r, x := range h.Normal {
		parts[r] = f.String(x)
	}

	return fmt.Sprintf("(%s)·x + %s >= 0", strings.Join(parts, ","), f.String(h.Offset))
}

func cloneInts(s []int) []int {
	if s == nil {
		return nil
	}
	out := make([]int, len(s))
	copy(out, s)

	return out
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
