// Package combin implements the two counting functions the rest of this
// module is built on: Binomial (n choose k) and Catalan (the nth Catalan
// number). Both are total functions of non-negative BigNat arguments and
// both are exact — every division in their implementation is guaranteed
// exact by the combinatorial identity being used, and is performed as an
// exact BigNat.QuoExact (multiply before divide, per the numeric semantics
// in SPEC_FULL.md) so a non-exact division anywhere is a programmer error, not
// a possible runtime outcome.
//
// Catalan(n) is called repeatedly for the same small run of n values by
// both catalan.Rank and catalan.Unrank (see that package), so this package
// also exposes Table, an explicit, lock-guarded memo a caller can hold onto
// across many calls. The package-level Catalan function uses its own
// private Table; nothing here is unguarded global mutable state, and two
// Tables never interfere with each other.
//
// Complexity: Binomial(n, k) is O(min(k, n-k)) big-integer multiply/divide
// steps. Catalan(n), amortized across increasing n on one Table, is O(1)
// per additional value; a cold call for n on a fresh Table is O(n).
package combin
