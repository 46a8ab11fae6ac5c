package forest

import "github.com/katalvlaran/forestry/keys"

// The functions below cover the common case of a comparable key whose zero
// value means "no parent". Each call builds a throwaway Engine; hold an
// Engine directly to reuse a Resolver or to pick another sentinel.

func newComparable[T any, K comparable](keyOf, parentOf func(T) K, opts []Option) (*Engine[T, K], error) {
	p, err := keys.Comparable(keyOf, parentOf)
	if err != nil {
		return nil, err
	}

	return New[T, K](p, opts...)
}

// BuildTree builds the forest below root (the zero key for every top-level record).
// See Engine.Build.
func BuildTree[T any, K comparable](records []T, keyOf, parentOf func(T) K, root K, opts ...Option) (Forest[T], error) {
	e, err := newComparable(keyOf, parentOf, opts)
	if err != nil {
		return nil, err
	}

	return e.Build(records, root)
}

// BuildTreeReverse builds the ancestor forest starting at root, or at every
// leaf when root is the zero key. See Engine.BuildReverse.
func BuildTreeReverse[T any, K comparable](records []T, keyOf, parentOf func(T) K, root K, opts ...Option) (Forest[T], error) {
	e, err := newComparable(keyOf, parentOf, opts)
	if err != nil {
		return nil, err
	}

	return e.BuildReverse(records, root)
}

// Ancestors returns the ancestor chain of the record keyed root, nearest first.
// See Engine.Ancestors.
func Ancestors[T any, K comparable](records []T, keyOf, parentOf func(T) K, root K, opts ...Option) ([]T, error) {
	e, err := newComparable(keyOf, parentOf, opts)
	if err != nil {
		return nil, err
	}

	return e.Ancestors(records, root)
}

// Descendants returns every record below root. See Engine.Descendants.
func Descendants[T any, K comparable](records []T, keyOf, parentOf func(T) K, root K, opts ...Option) ([]T, error) {
	e, err := newComparable(keyOf, parentOf, opts)
	if err != nil {
		return nil, err
	}

	return e.Descendants(records, root)
}

// Roots returns the frontier above root. See Engine.Roots.
func Roots[T any, K comparable](records []T, keyOf, parentOf func(T) K, root K, opts ...Option) ([]T, error) {
	e, err := newComparable(keyOf, parentOf, opts)
	if err != nil {
		return nil, err
	}

	return e.Roots(records, root)
}

// Leaves returns the frontier below root. See Engine.Leaves.
func Leaves[T any, K comparable](records []T, keyOf, parentOf func(T) K, root K, opts ...Option) ([]T, error) {
	e, err := newComparable(keyOf, parentOf, opts)
	if err != nil {
		return nil, err
	}

	return e.Leaves(records, root)
}
