// Package forest defines options, duplicate-key policies and sentinel errors
// for forest construction and traversal over flat records.
package forest

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/forestry/keys"
)

// Unlimited is the depth budget meaning "no bound".
const Unlimited = -1

// Sentinel errors for forest operations.
var (
	// ErrInvalidArgument is returned for a nil record collection, a nil resolver
	// or a nil projection func. It is the same value as keys.ErrInvalidArgument.
	ErrInvalidArgument = keys.ErrInvalidArgument

	// ErrNotFound indicates that a query which dereferences a keyed record
	// (Ancestors, Parents, BuildReverse) found no record with that key.
	ErrNotFound = errors.New("forest: record not found")

	// ErrCycleDetected indicates that a traversal re-entered a key already on
	// its current path while the cycle guard was active.
	ErrCycleDetected = errors.New("forest: cycle detected")

	// ErrDuplicateKey indicates a non-injective key under DuplicatesReject.
	ErrDuplicateKey = errors.New("forest: duplicate key")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("forest: invalid option supplied")
)

// DuplicatePolicy selects how records sharing one key are treated.
type DuplicatePolicy int

const (
	// DuplicatesExpand matches every record carrying a key. Children of a
	// duplicated key appear under each of its records, so whole subtrees are
	// repeated. This is the default.
	DuplicatesExpand DuplicatePolicy = iota
	// DuplicatesFirstWins keeps the first record per key in input order and
	// ignores the rest.
	DuplicatesFirstWins
	// DuplicatesReject fails the call with ErrDuplicateKey.
	DuplicatesReject
)

// String returns the policy name.
func (p DuplicatePolicy) String() string {
	switch p {
	case DuplicatesExpand:
		return "expand"
	case DuplicatesFirstWins:
		return "first-wins"
	case DuplicatesReject:
		return "reject"
	default:
		return fmt.Sprintf("DuplicatePolicy(%d)", int(p))
	}
}

// Option configures an Engine or a single call.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// when the Engine is built or the call is made.
type Option func(*Options)

// Options holds traversal parameters.
type Options struct {
	// MaxDepth bounds the number of relationship hops. Unlimited removes the
	// bound; 0 makes depth-limited queries return empty results.
	MaxDepth int

	// CycleCheck forces the cycle guard on bounded walks. Unbounded walks and
	// Roots/Leaves always run with the guard.
	CycleCheck bool

	// Duplicates selects the duplicate-key policy.
	Duplicates DuplicatePolicy

	// LinearScan disables the per-call index; every lookup rescans the records.
	LinearScan bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - no depth limit (MaxDepth = Unlimited)
//   - cycle guard only where the walk is unbounded
//   - DuplicatesExpand
//   - indexed lookups
func DefaultOptions() Options {
	return Options{
		MaxDepth:   Unlimited,
		CycleCheck: false,
		Duplicates: DuplicatesExpand,
		LinearScan: false,
		err:        nil,
	}
}

// WithMaxDepth limits traversal to d relationship hops.
//
//	d >= 0: limit to d hops
//	d < 0:  invalid option → ErrOptionViolation (use WithUnlimitedDepth)
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithUnlimitedDepth removes any depth bound set earlier.
func WithUnlimitedDepth() Option {
	return func(o *Options) {
		o.MaxDepth = Unlimited
	}
}

// WithCycleCheck turns on the cycle guard for bounded walks as well.
func WithCycleCheck() Option {
	return func(o *Options) {
		o.CycleCheck = true
	}
}

// WithDuplicates selects the duplicate-key policy.
func WithDuplicates(p DuplicatePolicy) Option {
	return func(o *Options) {
		switch p {
		case DuplicatesExpand, DuplicatesFirstWins, DuplicatesReject:
			o.Duplicates = p
		default:
			o.err = fmt.Errorf("%w: unknown duplicate policy %v", ErrOptionViolation, p)
		}
	}
}

// WithLinearScan disables the per-call index.
func WithLinearScan() Option {
	return func(o *Options) {
		o.LinearScan = true
	}
}

// apply runs opts over a copy of o and returns the result.
func (o Options) apply(opts []Option) (Options, error) {
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}

// unbounded reports whether the depth budget has no limit.
func (o Options) unbounded() bool { return o.MaxDepth < 0 }
