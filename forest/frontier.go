package forest

import "github.com/katalvlaran/forestry/keys"

// Roots returns the frontier reached by climbing from the record keyed root:
// every record with no resolvable parent above it. A record without parents
// is its own root. An unmatched root yields an empty result.
//
// For the sentinel, Roots returns every record whose parent key matches no
// record, in input order: the top-level records plus orphans whose parent is
// missing. Records on a pure cycle always have a parent and are not reported.
// Orphans make this asymmetric with Leaves and Build for the sentinel: those
// start from the records whose parent key is the sentinel and never see an
// orphan's tree.
//
// The walk has no depth budget and always runs with the cycle guard.
//
// Errors:
//   - ErrInvalidArgument for nil records.
//   - ErrCycleDetected if the climb loops.
func (e *Engine[T, K]) Roots(records []T, root K, opts ...Option) ([]T, error) {
	w, err := e.prepare(records, opts)
	if err != nil {
		return nil, err
	}
	c := newCollector(w.idx)
	if keys.IsSentinel(w.r, root) {
		for _, i := range w.idx.Live() {
			if len(w.idx.ByKey(w.parentKey(i))) == 0 {
				c.add(i)
			}
		}

		return c.items(), nil
	}
	if err = w.guarded(func() error { return w.roots(root, c) }); err != nil {
		return nil, err
	}

	return c.items(), nil
}

func (w *walker[T, K]) roots(root K, c *collector[T, K]) error {
	pos, ok := w.idx.First(root)
	if !ok {
		return nil
	}
	if err := w.enter(root); err != nil {
		return err
	}
	if w.expanded(root, Unlimited) {
		w.leave(root)
		return nil
	}
	parents := w.idx.ByKey(w.parentKey(pos))
	if len(parents) == 0 {
		for _, i := range w.idx.ByKey(root) {
			c.add(i)
		}
	}
	for _, i := range parents {
		if err := w.roots(w.key(i), c); err != nil {
			return err
		}
	}
	w.finish(root, Unlimited)
	w.leave(root)

	return nil
}

// Leaves returns the frontier reached by descending from root: every record
// below it without children. When root has no children the records keyed
// root are returned themselves, so a leaf is its own leaf. Passing the
// sentinel returns the leaves of every tree hanging from it.
//
// The walk has no depth budget and always runs with the cycle guard.
//
// Errors:
//   - ErrInvalidArgument for nil records.
//   - ErrCycleDetected if the descent loops.
func (e *Engine[T, K]) Leaves(records []T, root K, opts ...Option) ([]T, error) {
	w, err := e.prepare(records, opts)
	if err != nil {
		return nil, err
	}
	c := newCollector(w.idx)
	if err = w.guarded(func() error { return w.leaves(root, c) }); err != nil {
		return nil, err
	}

	return c.items(), nil
}

func (w *walker[T, K]) leaves(root K, c *collector[T, K]) error {
	if err := w.enter(root); err != nil {
		return err
	}
	if w.expanded(root, Unlimited) {
		w.leave(root)
		return nil
	}
	kids := w.idx.ByParent(root)
	if len(kids) == 0 {
		for _, i := range w.idx.ByKey(root) {
			c.add(i)
		}
	}
	for _, i := range kids {
		if err := w.leaves(w.key(i), c); err != nil {
			return err
		}
	}
	w.finish(root, Unlimited)
	w.leave(root)

	return nil
}
