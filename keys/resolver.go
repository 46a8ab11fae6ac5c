package keys

import "fmt"

// Equaler reports whether two keys identify the same record.
type Equaler[K any] interface {
	Equal(a, b K) bool
}

// Canonicalizer maps a key to a comparable stand-in usable as a map key.
// ok == false means the key can only be compared through Equal.
// Two keys must share a canonical value exactly when Equal reports true.
type Canonicalizer[K any] interface {
	Canonical(k K) (c any, ok bool)
}

// Resolver extracts identity and parent keys from records of type T.
// Implementations must be pure: the same record always yields the same keys.
type Resolver[T, K any] interface {
	Equaler[K]
	Canonicalizer[K]

	// Key returns the identity key of rec.
	Key(rec T) K

	// ParentKey returns the key of the parent rec refers to.
	ParentKey(rec T) K

	// Sentinel returns the "no parent" key marking top-level records.
	Sentinel() K
}

// Option configures a Projection at construction time.
type Option[K any] func(*settings[K])

type settings[K any] struct {
	sentinel  K
	canonical func(K) any
}

// WithSentinel overrides the default sentinel (the zero value of K).
func WithSentinel[K any](k K) Option[K] {
	return func(s *settings[K]) {
		s.sentinel = k
	}
}

// WithCanonical installs a canonical form for Custom resolvers, enabling hashed
// lookups. fn must agree with the equality func: equal keys, equal canonical values.
// A nil fn is ignored.
func WithCanonical[K any](fn func(K) any) Option[K] {
	return func(s *settings[K]) {
		if fn != nil {
			s.canonical = fn
		}
	}
}

// Projection is a Resolver assembled from projection funcs.
// It is immutable and safe for concurrent use by independent calls.
type Projection[T, K any] struct {
	keyOf     func(T) K
	parentOf  func(T) K
	equal     func(a, b K) bool
	canonical func(K) any
	sentinel  K
}

// Comparable builds a Projection for a comparable key type.
// Keys are compared with == and hashed directly.
//
// Errors:
//   - ErrInvalidArgument if keyOf or parentOf is nil.
func Comparable[T any, K comparable](keyOf, parentOf func(T) K, opts ...Option[K]) (*Projection[T, K], error) {
	return build(keyOf, parentOf,
		func(a, b K) bool { return a == b },
		func(k K) any { return k },
		opts)
}

// Custom builds a Projection whose keys are compared with equal.
// Lookups scan linearly unless WithCanonical supplies a hashable form.
//
// Errors:
//   - ErrInvalidArgument if keyOf, parentOf or equal is nil.
func Custom[T, K any](keyOf, parentOf func(T) K, equal func(a, b K) bool, opts ...Option[K]) (*Projection[T, K], error) {
	if equal == nil {
		return nil, fmt.Errorf("%w: equality func is nil", ErrInvalidArgument)
	}

	return build(keyOf, parentOf, equal, nil, opts)
}

func build[T, K any](keyOf, parentOf func(T) K, equal func(a, b K) bool, canonical func(K) any, opts []Option[K]) (*Projection[T, K], error) {
	if keyOf == nil {
		return nil, fmt.Errorf("%w: key projection is nil", ErrInvalidArgument)
	}
	if parentOf == nil {
		return nil, fmt.Errorf("%w: parent key projection is nil", ErrInvalidArgument)
	}

	s := settings[K]{canonical: canonical}
	for _, opt := range opts {
		opt(&s)
	}

	return &Projection[T, K]{
		keyOf:     keyOf,
		parentOf:  parentOf,
		equal:     equal,
		canonical: s.canonical,
		sentinel:  s.sentinel,
	}, nil
}

// Key returns the identity key of rec.
func (p *Projection[T, K]) Key(rec T) K { return p.keyOf(rec) }

// ParentKey returns the parent key of rec.
func (p *Projection[T, K]) ParentKey(rec T) K { return p.parentOf(rec) }

// Equal reports whether a and b are the same key.
func (p *Projection[T, K]) Equal(a, b K) bool { return p.equal(a, b) }

// Sentinel returns the "no parent" key.
func (p *Projection[T, K]) Sentinel() K { return p.sentinel }

// Canonical returns the hashable form of k, if the projection has one.
func (p *Projection[T, K]) Canonical(k K) (any, bool) {
	if p.canonical == nil {
		return nil, false
	}

	return p.canonical(k), true
}

// IsSentinel reports whether k equals r's sentinel.
func IsSentinel[T, K any](r Resolver[T, K], k K) bool {
	return r.Equal(k, r.Sentinel())
}
