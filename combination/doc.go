// Package combination enumerates linearly independent index combinations
// of a generator matrix, depth-first, with incrementally maintained exact
// linear algebra.
//
// What:
//
//   - Base: a strictly increasing index sequence over [0, n) with at most
//     k elements. Back() is -1 when empty; the next index ranges over
//     [Back()+1, n-(k-Size())+1), so every prefix can still be completed.
//   - Kernel[T]: Base plus a standardized basis of the orthogonal
//     complement of the chosen generators (UpdateKernel, O(k·d)).
//   - Inverse[T]: Base plus a fraction-free inverse and pivot
//     (UpdateInverse, one Bareiss step, O(d²)); at size d it yields the
//     exact determinant of the chosen generators.
//   - Traverse: the generic depth-first engine over any Container.
//
// Why:
//
//   - Zonotope volumes sum |det| over independent d-subsets; facets come
//     from independent (d-1)-subsets. Both are walks over the same tree
//     in which a dependent prefix prunes its whole subtree.
//
// Complexity:
//
//   - Traverse: O(#visited · (n · update)), where update is the cost of one
//     Extend. Memory O(k) containers on the recursion stack per worker.
//
// Options:
//
//   - WithContext(ctx)      cancellation, checked before every visit.
//   - WithWorkers(n)        fan top-level branches out to n goroutines.
//   - WithOnSingular(fn)    hook on every rejected (degenerate) extension.
//
// Errors:
//
//   - ErrNilVisitor         Traverse called with a nil visitor.
//   - ErrBadRows            empty or ragged generator rows.
//   - ErrBadLimit           negative n or k, or k > d for tracked containers.
//   - context.Canceled      traversal canceled via context.
//   - visitor and hook errors, wrapped with the offending combination.
package combination
