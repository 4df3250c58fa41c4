// SPDX-License-Identifier: MIT

package combination

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// walker encapsulates the state of one depth-first walk.
type walker[C Container[C]] struct {
	ctx   context.Context
	visit Visitor[C]
	opts  *Options
	stats Stats
}

// Traverse enumerates, depth-first and in lexicographic order, every valid
// combination reachable from root by appending indices in [Begin, End).
// Degenerate extensions are pruned together with their whole subtree, as
// are combinations for which visit returns leaf == true. A combination of
// size k is always a leaf.
//
// With WithWorkers(n > 1) the children of root are distributed over n
// goroutines; every branch owns its containers, so only visit must be safe
// for concurrent use. The first error (visitor, hook or context) cancels
// the remaining branches and is returned.
func Traverse[C Container[C]](root C, visit Visitor[C], opts ...Option) (*Stats, error) {
	// 1. Validate input
	if visit == nil {
		return nil, ErrNilVisitor
	}

	// 2. Apply options
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	// 3. Sequential walk
	if o.Workers <= 1 {
		w := &walker[C]{ctx: o.Ctx, visit: visit, opts: &o}
		err := w.traverse(root)

		return &w.stats, err
	}

	// 4. Parallel walk over the top-level branches
	return traverseParallel(root, visit, &o)
}

// traverse visits c and recurses into its valid children.
func (w *walker[C]) traverse(c C) error {
	// 1. Cancellation check
	select {
	case <-w.ctx.Done():
		return w.ctx.Err()
	default:
	}

	// 2. Visit
	leaf, err := w.enter(c)
	if err != nil || leaf {
		return err
	}

	// 3. Explore each extension
	return w.children(c, func(child C) error { return w.traverse(child) })
}

// enter records c in the stats and runs the visitor.
func (w *walker[C]) enter(c C) (bool, error) {
	w.stats.Nodes++
	if c.Size() > w.stats.MaxDepth {
		w.stats.MaxDepth = c.Size()
	}
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(c.Elements()); err != nil {
			return true, fmt.Errorf("combination: OnVisit hook for %v: %w", c.Elements(), err)
		}
	}
	leaf, err := w.visit(c)
	if err != nil {
		return true, fmt.Errorf("combination: visit %v: %w", c.Elements(), err)
	}
	if _, k := c.Limit(); leaf || c.Size() >= k {
		w.stats.Leaves++
		return true, nil
	}

	return false, nil
}

// children builds every valid child of c and hands it to next.
func (w *walker[C]) children(c C, next func(C) error) error {
	n, _ := c.Limit()
	end := min(c.End(), n)
	for i := c.Begin(); i < end; i++ {
		child := c.Clone()
		child.Extend(i)
		if !child.Valid() {
			w.stats.Singular++
			if w.opts.OnSingular != nil {
				if err := w.opts.OnSingular(c.Elements(), i); err != nil {
					return fmt.Errorf("combination: OnSingular hook for %v+%d: %w", c.Elements(), i, err)
				}
			}
			continue
		}
		if err := next(child); err != nil {
			return err
		}
	}

	return nil
}

// traverseParallel visits root on the calling goroutine, then runs each of
// its children as one errgroup task, at most o.Workers at a time.
func traverseParallel[C Container[C]](root C, visit Visitor[C], o *Options) (*Stats, error) {
	// 1. Root and its children on the calling goroutine
	w := &walker[C]{ctx: o.Ctx, visit: visit, opts: o}
	select {
	case <-o.Ctx.Done():
		return &w.stats, o.Ctx.Err()
	default:
	}
	leaf, err := w.enter(root)
	if err != nil || leaf {
		return &w.stats, err
	}
	var branches []C
	if err = w.children(root, func(child C) error {
		branches = append(branches, child)
		return nil
	}); err != nil {
		return &w.stats, err
	}

	// 2. One task per branch; the first failure cancels ctx
	g, ctx := errgroup.WithContext(o.Ctx)
	g.SetLimit(o.Workers)
	var mu sync.Mutex
	total := w.stats
	for _, b := range branches {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			bw := &walker[C]{ctx: ctx, visit: visit, opts: o}
			err := bw.traverse(b)
			mu.Lock()
			total.merge(bw.stats)
			mu.Unlock()

			return err
		})
	}

	// 3. Report the first failure, or the parent's cancellation
	if err = g.Wait(); err != nil {
		return &total, err
	}

	return &total, o.Ctx.Err()
}
