package keys

import "fmt"

// IndexOption configures NewIndex.
type IndexOption func(*indexConfig)

type indexConfig struct {
	scan      bool
	firstWins bool
}

// WithScan disables hashing; every lookup scans the collection.
// Results are identical to the hashed index, only slower.
func WithScan() IndexOption {
	return func(c *indexConfig) {
		c.scan = true
	}
}

// WithFirstWins keeps only the first record (in input order) for each key.
// Later records sharing that key are invisible to every lookup.
func WithFirstWins() IndexOption {
	return func(c *indexConfig) {
		c.firstWins = true
	}
}

// Index answers "which records have key k" and "which records name k as
// parent" over one immutable collection. Positions are returned in input
// order and refer to the slice passed to NewIndex. Returned slices are shared
// and must not be modified.
//
// An Index is built once per call and discarded with it; it never copies or
// mutates the records.
type Index[T, K any] struct {
	records  []T
	r        Resolver[T, K]
	scan     bool
	live     []int
	byKey    map[any][]int
	byParent map[any][]int
}

// NewIndex validates its arguments and prepares lookups over records.
// Hashing is used when every key and parent key has a canonical form
// and WithScan is not given.
//
// Errors:
//   - ErrInvalidArgument if records is nil or r is nil.
//
// Complexity:
//   - Time O(n) hashed, O(n) scanned (O(n²) with WithFirstWins and no hashing).
func NewIndex[T, K any](records []T, r Resolver[T, K], opts ...IndexOption) (*Index[T, K], error) {
	// 1. Validate inputs
	if r == nil {
		return nil, fmt.Errorf("%w: resolver is nil", ErrInvalidArgument)
	}
	if records == nil {
		return nil, fmt.Errorf("%w: records collection is nil", ErrInvalidArgument)
	}

	var cfg indexConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	idx := &Index[T, K]{records: records, r: r, scan: cfg.scan}

	// 2. Decide whether hashing is possible for this collection
	if !cfg.scan {
		idx.scan = !idx.canonicalizable()
	}

	// 3. Select participating positions
	idx.live = make([]int, 0, len(records))
	seen := newSet[K](r, idx.scan)
	for i, rec := range records {
		if cfg.firstWins && !seen.Add(r.Key(rec)) {
			continue
		}
		idx.live = append(idx.live, i)
	}

	// 4. Hash positions by key and by parent key
	if !idx.scan {
		idx.byKey = make(map[any][]int, len(idx.live))
		idx.byParent = make(map[any][]int, len(idx.live))
		for _, i := range idx.live {
			k, _ := r.Canonical(r.Key(records[i]))
			p, _ := r.Canonical(r.ParentKey(records[i]))
			idx.byKey[k] = append(idx.byKey[k], i)
			idx.byParent[p] = append(idx.byParent[p], i)
		}
	}

	return idx, nil
}

func (idx *Index[T, K]) canonicalizable() bool {
	if _, ok := idx.r.Canonical(idx.r.Sentinel()); !ok {
		return false
	}
	for _, rec := range idx.records {
		if _, ok := idx.r.Canonical(idx.r.Key(rec)); !ok {
			return false
		}
		if _, ok := idx.r.Canonical(idx.r.ParentKey(rec)); !ok {
			return false
		}
	}

	return true
}

// Hashed reports whether lookups use maps rather than linear scans.
func (idx *Index[T, K]) Hashed() bool { return !idx.scan }

// Len returns the number of participating records.
func (idx *Index[T, K]) Len() int { return len(idx.live) }

// Live returns the positions of all participating records in input order.
func (idx *Index[T, K]) Live() []int { return idx.live }

// Record returns the record at position pos of the original collection.
func (idx *Index[T, K]) Record(pos int) T { return idx.records[pos] }

// ByKey returns positions of records whose key equals k.
func (idx *Index[T, K]) ByKey(k K) []int {
	if !idx.scan {
		return idx.lookup(idx.byKey, k)
	}

	return idx.filter(k, idx.r.Key)
}

// ByParent returns positions of records whose parent key equals k.
func (idx *Index[T, K]) ByParent(k K) []int {
	if !idx.scan {
		return idx.lookup(idx.byParent, k)
	}

	return idx.filter(k, idx.r.ParentKey)
}

// First returns the position of the first record whose key equals k.
func (idx *Index[T, K]) First(k K) (int, bool) {
	pos := idx.ByKey(k)
	if len(pos) == 0 {
		return -1, false
	}

	return pos[0], true
}

// Duplicate returns the first key, in input order, carried by more than one
// participating record.
func (idx *Index[T, K]) Duplicate() (K, bool) {
	seen := newSet[K](idx.r, idx.scan)
	for _, i := range idx.live {
		k := idx.r.Key(idx.records[i])
		if !seen.Add(k) {
			return k, true
		}
	}

	var zero K

	return zero, false
}

func (idx *Index[T, K]) lookup(m map[any][]int, k K) []int {
	c, ok := idx.r.Canonical(k)
	if !ok {
		// a probe key without canonical form cannot equal any hashed key
		return nil
	}

	return m[c]
}

func (idx *Index[T, K]) filter(k K, project func(T) K) []int {
	var out []int
	for _, i := range idx.live {
		if idx.r.Equal(project(idx.records[i]), k) {
			out = append(out, i)
		}
	}

	return out
}
