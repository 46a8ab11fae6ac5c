package forest

import (
	"fmt"

	"github.com/katalvlaran/forestry/keys"
)

// Build assembles the forest hanging below root: its children become the
// top-level nodes and each node's children are re-derived from the full
// collection. Passing the sentinel builds the forest of all top-level records.
// MaxDepth bounds the number of levels below root; 0 yields an empty forest.
//
// Under DuplicatesExpand a key carried by several records expands its
// children under each of them.
//
// Errors:
//   - ErrInvalidArgument for nil records.
//   - ErrCycleDetected if a key repeats on the current path while the cycle
//     guard is active.
//
// Complexity:
//   - Time O(n + nodes) indexed, O(n·nodes) with WithLinearScan; Memory O(n + nodes).
func (e *Engine[T, K]) Build(records []T, root K, opts ...Option) (Forest[T], error) {
	w, err := e.prepare(records, opts)
	if err != nil {
		return nil, err
	}
	if err = w.enter(root); err != nil {
		return nil, err
	}

	return w.build(root, w.opts.MaxDepth)
}

// build returns the nodes whose parent key is parent, expanded depth levels.
func (w *walker[T, K]) build(parent K, depth int) (Forest[T], error) {
	if depth == 0 {
		return Forest[T]{}, nil
	}
	kids := w.idx.ByParent(parent)
	out := make(Forest[T], 0, len(kids))
	for _, i := range kids {
		k := w.key(i)
		if err := w.enter(k); err != nil {
			return nil, err
		}
		children, err := w.build(k, next(depth))
		if err != nil {
			return nil, err
		}
		w.leave(k)
		out = append(out, &Node[T]{Item: w.idx.Record(i), Children: children})
	}

	return out, nil
}

// BuildReverse assembles an ancestor forest: each top-level node is a
// starting record and each node's children are its immediate parents, so
// walking down the result climbs the original hierarchy.
//
// Starting records are the leaves of the whole forest when root is the
// sentinel, otherwise every record keyed root. MaxDepth bounds the number of
// parent hops; 0 returns the starting records without children.
//
// Errors:
//   - ErrInvalidArgument for nil records.
//   - ErrNotFound if root is not the sentinel and no record has key root.
//   - ErrCycleDetected if a key repeats on the current path while the cycle
//     guard is active. Leaf discovery for the sentinel always runs guarded.
func (e *Engine[T, K]) BuildReverse(records []T, root K, opts ...Option) (Forest[T], error) {
	w, err := e.prepare(records, opts)
	if err != nil {
		return nil, err
	}

	// 1. Resolve starting records
	var starts []int
	if keys.IsSentinel(w.r, root) {
		c := newCollector(w.idx)
		if err = w.guarded(func() error { return w.leaves(root, c) }); err != nil {
			return nil, err
		}
		starts = c.pos
	} else {
		starts = w.idx.ByKey(root)
		if len(starts) == 0 {
			return nil, fmt.Errorf("%w: key %v", ErrNotFound, root)
		}
	}

	// 2. Climb from each start
	out := make(Forest[T], 0, len(starts))
	for _, i := range starts {
		n, err := w.reverse(i, w.opts.MaxDepth)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}

	return out, nil
}

// reverse wraps the record at pos and hangs its parents below it.
func (w *walker[T, K]) reverse(pos, depth int) (*Node[T], error) {
	k := w.key(pos)
	if err := w.enter(k); err != nil {
		return nil, err
	}
	n := &Node[T]{Item: w.idx.Record(pos), Children: []*Node[T]{}}
	if depth != 0 {
		for _, p := range w.idx.ByKey(w.parentKey(pos)) {
			child, err := w.reverse(p, next(depth))
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, child)
		}
	}
	w.leave(k)

	return n, nil
}
