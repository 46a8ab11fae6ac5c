package keys

// Set holds distinct keys under a Resolver's notion of equality.
// Keys with a canonical form live in a map; the rest are kept in a slice
// and compared with Equal. The zero Set is not usable; call NewSet.
type Set[K any] struct {
	eq      Equaler[K]
	canon   Canonicalizer[K] // nil when hashing is disabled or unavailable
	hashed  map[any]struct{}
	scanned []K
}

// NewSet returns an empty Set comparing keys with eq.
// If eq also implements Canonicalizer, keys are hashed whenever possible.
func NewSet[K any](eq Equaler[K]) *Set[K] {
	return newSet(eq, false)
}

func newSet[K any](eq Equaler[K], scan bool) *Set[K] {
	s := &Set[K]{eq: eq}
	if c, ok := eq.(Canonicalizer[K]); ok && !scan {
		s.canon = c
	}

	return s
}

func (s *Set[K]) slot(k K) (any, bool) {
	if s.canon == nil {
		return nil, false
	}

	return s.canon.Canonical(k)
}

// Add inserts k and reports whether it was absent.
func (s *Set[K]) Add(k K) bool {
	if c, ok := s.slot(k); ok {
		if _, dup := s.hashed[c]; dup {
			return false
		}
		if s.hashed == nil {
			s.hashed = make(map[any]struct{})
		}
		s.hashed[c] = struct{}{}

		return true
	}
	if s.indexOf(k) >= 0 {
		return false
	}
	s.scanned = append(s.scanned, k)

	return true
}

// Has reports whether k is in the set.
func (s *Set[K]) Has(k K) bool {
	if c, ok := s.slot(k); ok {
		_, found := s.hashed[c]
		return found
	}

	return s.indexOf(k) >= 0
}

// Remove deletes k if present.
func (s *Set[K]) Remove(k K) {
	if c, ok := s.slot(k); ok {
		delete(s.hashed, c)
		return
	}
	if i := s.indexOf(k); i >= 0 {
		last := len(s.scanned) - 1
		s.scanned[i] = s.scanned[last]
		s.scanned = s.scanned[:last]
	}
}

// Len returns the number of keys in the set.
func (s *Set[K]) Len() int {
	return len(s.hashed) + len(s.scanned)
}

func (s *Set[K]) indexOf(k K) int {
	for i, x := range s.scanned {
		if s.eq.Equal(x, k) {
			return i
		}
	}

	return -1
}
