// Package forest reconstructs hierarchies from flat records that reference
// their parent by key, and answers structural queries over them.
//
// What:
//
//   - Flat traversal: Parents, Children (one hop) and Ancestors, Descendants
//     (depth-bounded, each record reported once).
//   - Tree assembly: Build (forest below a key) and BuildReverse (ancestor
//     forest, children are parents).
//   - Frontier discovery: Roots (climb until no parent) and Leaves (descend
//     until no child).
//
// Why:
//   - Category tables, comment threads, org charts and filesystem listings
//     store hierarchy as a parent column; callers want trees or subtree sets.
//
// Key Types & Constants:
//
//   - Engine:   runs every query for one keys.Resolver
//   - Node, Forest: materialized result; each node owned by one parent
//   - Option:   WithMaxDepth, WithUnlimitedDepth, WithCycleCheck,
//     WithDuplicates, WithLinearScan
//   - DuplicatePolicy: DuplicatesExpand, DuplicatesFirstWins, DuplicatesReject
//   - Unlimited: depth budget without bound (default)
//
// Cycle guard:
//
//	Every walk keeps the keys on its current recursion path. When the depth
//	budget is Unlimited (and always for Roots and Leaves) re-entering one of
//	them fails with ErrCycleDetected instead of recursing forever. Bounded
//	walks repeat the loop until the budget runs out unless WithCycleCheck
//	is given.
//
// Complexity:
//
//   - Each call indexes the records once: Time O(n), Memory O(n).
//   - Lookups are then O(1) per step; WithLinearScan makes them O(n) and
//     is only useful for keys without a canonical form.
//
// Errors:
//
//   - ErrInvalidArgument   nil records, nil resolver or nil projection func
//   - ErrNotFound          Ancestors, Parents, BuildReverse: root not matched
//   - ErrCycleDetected     key repeated on the current path under the guard
//   - ErrDuplicateKey      DuplicatesReject and a non-injective key
//   - ErrOptionViolation   invalid option
//
// Functions:
//
//   - New(r, opts...) (*Engine[T, K], error)
//   - BuildTree, BuildTreeReverse, Ancestors, Descendants, Roots, Leaves:
//     one-shot variants for comparable keys with the zero value as sentinel
package forest
