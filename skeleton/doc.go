// Package skeleton implements the split/join pair at the heart of the term
// encoder: Split extracts a term's Catalan skeleton and its stream of
// symbol labels in one traversal, and Join reconstructs the term from that
// pair.
//
// The skeleton and the symbol stream are two separate slices, but they
// describe one interleaved walk of the term: a 0 in the skeleton and the
// next unconsumed symbol are always produced (Split) or consumed (Join)
// together. Join is a single-pass recursive-descent parser over both
// streams at once; see the grammar in the doc comment on Split.
//
// Both Split and Join are implemented with an explicit work stack rather
// than native recursion, per the module's resource-discipline requirement
// that a pathologically deep term (or its encoded skeleton) not overflow a
// fixed goroutine call stack — see DESIGN.md, grounded on
// algorithms/bfs.go's explicit-queue traversal in the teacher lineage
// rather than algorithms/dfs.go's native recursion.
//
// Complexity: both directions are O(n) in the number of term nodes, with
// O(depth) auxiliary stack space.
//
// Errors:
//
//	ErrMalformedPair - Join's two streams are inconsistent with the
//	                    skeleton/sym grammar, or do not exhaust together.
package skeleton
