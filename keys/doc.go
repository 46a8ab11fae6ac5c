// Package keys resolves identity and parent keys of flat records and answers
// the equality questions every forest traversal is built on.
//
// What:
//
//   - Resolver: strategy object bundling key projection, parent-key projection,
//     key equality and the "no parent" sentinel.
//   - Projection: the stock Resolver built from two projection funcs.
//     Comparable uses ==, Custom uses a caller-supplied equality.
//   - Set: key membership honoring Resolver equality.
//   - Marks: per-key int values honoring Resolver equality.
//   - Index: per-call lookup of records by key and by parent key.
//
// Why:
//   - Records in category tables, comment threads or org charts carry their
//     hierarchy only through key equality; the traversal code never needs to
//     know what a key looks like.
//   - Hashing is an optimization, never a requirement: keys that are only
//     comparable through Equal fall back to linear scans with identical results.
//
// Complexity:
//
//   - NewIndex:      Time O(n), O(n²) scanned with first-wins; Memory O(n)
//   - Index.ByKey:   Time O(1)+k hashed, O(n) scanned
//   - Set, Marks:    Time O(1) hashed, O(len) scanned
//
// Errors:
//
//   - ErrInvalidArgument  nil projection, nil equality, nil resolver or nil records
package keys
