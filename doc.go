// Package forestry turns flat, self-referential records into explicit
// forests and answers hierarchy queries over them.
//
// 🌲 What is forestry?
//
//	A small, generic, dependency-light library for data whose hierarchy is
//	expressed only through a parent key: category tables, comment threads,
//	org charts, filesystem entries.
//		• Key resolution: identity key, parent key, equality, sentinel
//		• Flat traversal: parents, children, ancestors, descendants
//		• Tree assembly: forward forests and reverse (ancestor) forests
//		• Frontiers: roots and leaves
//
// ✨ Guarantees
//
//   - Pure: input records are never mutated, no state survives a call
//   - Bounded: depth budgets on every walk, cycle guard when unbounded
//   - Explicit: duplicate keys are expanded, first-wins or rejected on request
//
// Subpackages:
//
//	keys/     — Resolver strategy, key sets and the per-call index
//	forest/   — Engine, Node/Forest types, all traversals and builders
//	examples/ — runnable walkthrough over a product catalog
//
// Quick ASCII example, records (id, parent) = (1,0) (2,1) (3,1) (4,2):
//
//	  1
//	 / \
//	2   3
//	|
//	4
//
//	go get github.com/katalvlaran/forestry
package forestry
