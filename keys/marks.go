package keys

// Marks maps keys to an int under a Resolver's notion of equality.
// Like Set, keys with a canonical form are hashed and the rest are scanned.
type Marks[K any] struct {
	eq      Equaler[K]
	canon   Canonicalizer[K]
	hashed  map[any]int
	scanned []mark[K]
}

type mark[K any] struct {
	k K
	v int
}

// NewMarks returns an empty Marks comparing keys with eq.
func NewMarks[K any](eq Equaler[K]) *Marks[K] {
	m := &Marks[K]{eq: eq}
	if c, ok := eq.(Canonicalizer[K]); ok {
		m.canon = c
	}

	return m
}

// Get returns the value stored for k.
func (m *Marks[K]) Get(k K) (int, bool) {
	if c, ok := m.slot(k); ok {
		v, found := m.hashed[c]
		return v, found
	}
	if i := m.indexOf(k); i >= 0 {
		return m.scanned[i].v, true
	}

	return 0, false
}

// Put stores v for k, replacing any earlier value.
func (m *Marks[K]) Put(k K, v int) {
	if c, ok := m.slot(k); ok {
		if m.hashed == nil {
			m.hashed = make(map[any]int)
		}
		m.hashed[c] = v
		return
	}
	if i := m.indexOf(k); i >= 0 {
		m.scanned[i].v = v
		return
	}
	m.scanned = append(m.scanned, mark[K]{k: k, v: v})
}

// Len returns the number of marked keys.
func (m *Marks[K]) Len() int {
	return len(m.hashed) + len(m.scanned)
}

func (m *Marks[K]) slot(k K) (any, bool) {
	if m.canon == nil {
		return nil, false
	}

	return m.canon.Canonical(k)
}

func (m *Marks[K]) indexOf(k K) int {
	for i, x := range m.scanned {
		if m.eq.Equal(x.k, k) {
			return i
		}
	}

	return -1
}
