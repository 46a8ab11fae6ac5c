// Package forest implements flat traversal over parent-key records:
// immediate parents and children, and depth-bounded ancestor chains and
// descendant sets.
//
// Complexity (n = records, d = depth budget):
//
//   - Parents, Children:     Time O(n) to index + O(1) lookup, Memory O(n)
//   - Ancestors:             Time O(n + d), Memory O(n)
//   - Descendants:           Time O(n + reached), Memory O(n)
//
// A key carried by several records is expanded once per call, so duplicate
// keys do not multiply the work. Bounded walks under WithCycleCheck are the
// exception: they re-expand each path and may cost exponential time on
// heavily duplicated input. With WithLinearScan every lookup costs O(n)
// instead.
package forest

import (
	"fmt"
)

// Parents returns the immediate parents of the record keyed root: every record
// whose key equals that record's parent key. Under key injectivity this is at
// most one record.
//
// Errors:
//   - ErrInvalidArgument for nil records.
//   - ErrNotFound if no record has key root.
func (e *Engine[T, K]) Parents(records []T, root K, opts ...Option) ([]T, error) {
	w, err := e.prepare(records, opts)
	if err != nil {
		return nil, err
	}
	pos, ok := w.idx.First(root)
	if !ok {
		return nil, fmt.Errorf("%w: key %v", ErrNotFound, root)
	}
	c := newCollector(w.idx)
	for _, p := range w.idx.ByKey(w.parentKey(pos)) {
		c.add(p)
	}

	return c.items(), nil
}

// Children returns the immediate children of root in input order.
// An unmatched root yields an empty result.
func (e *Engine[T, K]) Children(records []T, root K, opts ...Option) ([]T, error) {
	w, err := e.prepare(records, opts)
	if err != nil {
		return nil, err
	}
	c := newCollector(w.idx)
	for _, p := range w.idx.ByParent(root) {
		c.add(p)
	}

	return c.items(), nil
}

// Ancestors returns the ancestor chain of the record keyed root, nearest
// first, truncated after MaxDepth hops. A depth of 0 returns an empty result
// without looking root up. Records reachable along several paths appear once.
//
// Errors:
//   - ErrInvalidArgument for nil records.
//   - ErrNotFound if no record has key root.
//   - ErrCycleDetected if the chain loops while the cycle guard is active.
func (e *Engine[T, K]) Ancestors(records []T, root K, opts ...Option) ([]T, error) {
	w, err := e.prepare(records, opts)
	if err != nil {
		return nil, err
	}
	c := newCollector(w.idx)
	if w.opts.MaxDepth == 0 {
		return c.items(), nil
	}
	if err = w.enter(root); err != nil {
		return nil, err
	}
	if err = w.ancestors(root, w.opts.MaxDepth, c); err != nil {
		return nil, err
	}

	return c.items(), nil
}

// ancestors appends the parents of root, then their ancestors with depth-1.
func (w *walker[T, K]) ancestors(root K, depth int, c *collector[T, K]) error {
	// 1. Budget exhausted
	if depth == 0 {
		return nil
	}

	// 2. The chain needs the record itself to learn its parent key
	pos, ok := w.idx.First(root)
	if !ok {
		return fmt.Errorf("%w: key %v", ErrNotFound, root)
	}
	p := w.parentKey(pos)

	// 3. No record carries the parent key: top of the chain
	parents := w.idx.ByKey(p)
	if len(parents) == 0 {
		return nil
	}

	// 4. Record every parent, then climb once from the parent key
	for _, i := range parents {
		c.add(i)
	}
	if err := w.enter(p); err != nil {
		return err
	}
	if err := w.ancestors(p, next(depth), c); err != nil {
		return err
	}
	w.leave(p)

	return nil
}

// Descendants returns every record below root within MaxDepth hops, in
// depth-first pre-order following input order among siblings. Root itself is
// not included unless the input loops back to it within the depth budget; an
// unmatched root yields an empty result. Records reachable along several paths
// appear once.
//
// Errors:
//   - ErrInvalidArgument for nil records.
//   - ErrCycleDetected if a key repeats on the current path while the cycle
//     guard is active.
func (e *Engine[T, K]) Descendants(records []T, root K, opts ...Option) ([]T, error) {
	w, err := e.prepare(records, opts)
	if err != nil {
		return nil, err
	}
	c := newCollector(w.idx)
	if err = w.enter(root); err != nil {
		return nil, err
	}
	if err = w.descendants(root, w.opts.MaxDepth, c); err != nil {
		return nil, err
	}

	return c.items(), nil
}

// descendants appends each child of root followed by its own descendants.
func (w *walker[T, K]) descendants(root K, depth int, c *collector[T, K]) error {
	if depth == 0 {
		return nil
	}
	for _, i := range w.idx.ByParent(root) {
		c.add(i)
		k := w.key(i)
		if err := w.enter(k); err != nil {
			return err
		}
		if !w.expanded(k, next(depth)) {
			if err := w.descendants(k, next(depth), c); err != nil {
				return err
			}
			w.finish(k, next(depth))
		}
		w.leave(k)
	}

	return nil
}
