package forest

import (
	"fmt"

	"github.com/katalvlaran/forestry/keys"
)

// Engine runs forest queries for one Resolver. It holds no state between
// calls: every method re-reads the records it is given, builds a fresh index,
// and never mutates the collection. An Engine is safe for concurrent use.
type Engine[T, K any] struct {
	r    keys.Resolver[T, K]
	opts Options
}

// New returns an Engine over r whose calls default to opts.
// Per-call options passed to each method are applied on top of these.
//
// Errors:
//   - ErrInvalidArgument if r is nil.
//   - ErrOptionViolation if any option is invalid.
func New[T, K any](r keys.Resolver[T, K], opts ...Option) (*Engine[T, K], error) {
	if r == nil {
		return nil, fmt.Errorf("%w: resolver is nil", ErrInvalidArgument)
	}
	o, err := DefaultOptions().apply(opts)
	if err != nil {
		return nil, err
	}

	return &Engine[T, K]{r: r, opts: o}, nil
}

// Resolver returns the resolver the engine was built with.
func (e *Engine[T, K]) Resolver() keys.Resolver[T, K] { return e.r }

// Options returns the engine's default options.
func (e *Engine[T, K]) Options() Options { return e.opts }

// walker carries the state of a single call.
type walker[T, K any] struct {
	r     keys.Resolver[T, K]
	idx   *keys.Index[T, K]
	opts  Options
	guard bool         // cycle guard active
	trail *keys.Set[K] // keys on the current recursion path
	done  *keys.Marks[K] // fully expanded keys and the budget they had
}

// prepare validates the call, applies per-call options and indexes records.
func (e *Engine[T, K]) prepare(records []T, opts []Option) (*walker[T, K], error) {
	// 1. Merge options
	o, err := e.opts.apply(opts)
	if err != nil {
		return nil, err
	}

	// 2. Build the per-call index
	var iopts []keys.IndexOption
	if o.LinearScan {
		iopts = append(iopts, keys.WithScan())
	}
	if o.Duplicates == DuplicatesFirstWins {
		iopts = append(iopts, keys.WithFirstWins())
	}
	idx, err := keys.NewIndex(records, e.r, iopts...)
	if err != nil {
		return nil, err
	}

	// 3. Enforce key injectivity when asked to
	if o.Duplicates == DuplicatesReject {
		if k, dup := idx.Duplicate(); dup {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateKey, k)
		}
	}

	return &walker[T, K]{
		r:     e.r,
		idx:   idx,
		opts:  o,
		guard: o.unbounded() || o.CycleCheck,
		trail: keys.NewSet[K](e.r),
		done:  keys.NewMarks[K](e.r),
	}, nil
}

// enter pushes k onto the trail, failing if it is already there.
func (w *walker[T, K]) enter(k K) error {
	if !w.guard {
		return nil
	}
	if !w.trail.Add(k) {
		return fmt.Errorf("%w: key %v re-entered", ErrCycleDetected, k)
	}

	return nil
}

// leave pops k from the trail.
func (w *walker[T, K]) leave(k K) {
	if w.guard {
		w.trail.Remove(k)
	}
}

// guarded runs fn with the cycle guard forced on.
func (w *walker[T, K]) guarded(fn func() error) error {
	saved := w.guard
	w.guard = true
	err := fn()
	w.guard = saved

	return err
}

// expanded reports whether k was already walked to completion with a budget
// of at least depth. A bounded guarded walk never reuses earlier work: a loop
// back onto the current path may lie just past the earlier budget.
func (w *walker[T, K]) expanded(k K, depth int) bool {
	if w.guard && depth >= 0 {
		return false
	}
	prev, ok := w.done.Get(k)

	return ok && covers(prev, depth)
}

// finish records that k was walked to completion with budget depth.
func (w *walker[T, K]) finish(k K, depth int) {
	if prev, ok := w.done.Get(k); ok && covers(prev, depth) {
		return
	}
	w.done.Put(k, depth)
}

// covers reports whether budget have reaches at least as far as want.
func covers(have, want int) bool {
	if have < 0 {
		return true
	}

	return want >= 0 && have >= want
}

func (w *walker[T, K]) key(pos int) K { return w.r.Key(w.idx.Record(pos)) }

func (w *walker[T, K]) parentKey(pos int) K { return w.r.ParentKey(w.idx.Record(pos)) }

// next decrements a depth budget, leaving Unlimited untouched.
func next(depth int) int {
	if depth < 0 {
		return depth
	}

	return depth - 1
}

// collector accumulates records once each, in first-seen order.
type collector[T, K any] struct {
	idx  *keys.Index[T, K]
	seen map[int]struct{}
	pos  []int
}

func newCollector[T, K any](idx *keys.Index[T, K]) *collector[T, K] {
	return &collector[T, K]{idx: idx, seen: make(map[int]struct{})}
}

func (c *collector[T, K]) add(pos int) {
	if _, dup := c.seen[pos]; dup {
		return
	}
	c.seen[pos] = struct{}{}
	c.pos = append(c.pos, pos)
}

func (c *collector[T, K]) items() []T {
	out := make([]T, len(c.pos))
	for i, p := range c.pos {
		out[i] = c.idx.Record(p)
	}

	return out
}
