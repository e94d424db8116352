// Package goedel composes catalan, cantor, and skeleton into the full
// term-to-natural-number bijection (the infinite-signature variant of the
// module's encoding):
//
//	ToCode(t)   = FromTuple([Rank(pars), FromTuple(syms)])   where (pars, syms) = Split(t)
//	FromCode(n) = Join(Unrank(r), ToTuple(treecount(pars), x))
//	              where [r, x] = ToTuple(2, n), pars = Unrank(r)
//
// ToCode and FromCode are mutual inverses: FromCode(ToCode(t)) == t for
// every term t, and ToCode(FromCode(n)) == n for every natural number n.
//
// The free functions ToCode/FromCode share one package-level combin.Table
// so repeated calls amortize Catalan-number memoization without the
// caller doing anything; Encoder and Decoder exist for callers who want an
// explicit, non-global table of their own (concurrent encoders with
// independent caches, or a short-lived table that gets discarded).
package goedel
