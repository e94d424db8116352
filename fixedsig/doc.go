// Package fixedsig implements the fixed-signature variant of the bijective
// numbering: variables, constants, and arity-tagged function symbols are
// drawn from finite, caller-supplied sets (a Signature), and the bijection
// runs between N and the well-formed terms over that signature rather than
// over an unbounded supply of labels.
//
// The natural numbers are partitioned into three contiguous bands:
//
//	[0, lv)           -> FVar(vars[n])
//	[lv, lv+lc)        -> FConst(consts[n-lv])
//	[lv+lc, infinity)  -> a function application, selected and its
//	                      arguments packed via a bijective base-lf digit
//	                      plus a generalized Cantor tuple (see cantor).
//
// where lv = len(vars), lc = len(consts), lf = len(funs).
//
// NatToTerm is implemented with an explicit frame stack rather than native
// recursion, per the same depth-safety requirement as skeleton.Join: a
// pathologically large n can unfold into an arbitrarily deep function
// application, and each recursive step here operates on a strictly smaller
// BigNat, which is the termination argument but not a call-stack bound.
// TermToNat recurses natively over the input term's own structure, mirroring
// the term package's own Equal/NodeCount/Depth.
package fixedsig
