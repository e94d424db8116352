// Package goedelnumbering is your in-process toolkit for encoding and
// decoding terms as natural numbers — a total bijection between N and the
// terms of a term algebra, built from arbitrary-precision arithmetic up.
//
// 🚀 What is bijective-goedel-numberings?
//
//	A pure-computation, thread-safe, nearly-zero-dependency library that
//	brings together:
//		• BigNat: a non-negative arbitrary-precision integer, wrapping math/big
//		• Binomial/Catalan: memoized combinatorial building blocks
//		• Catalan skeletons: ranking/unranking of balanced-parenthesis words
//		• Generalized Cantor tupling: N <-> N^k via combinadics, with an
//		  efficient binary-search inverse instead of a linear scan
//		• Term algebra: Var/Fun tagged terms, and their skeleton/sym split
//		• Goedel numbering: the composed term <-> BigNat bijection
//		• Fixed-signature codec: the same bijection over a finite,
//		  caller-supplied signature of variables, constants, and arities
//
// ✨ Why choose this library?
//
//   - Total in both directions – every term has a code, every natural
//     number decodes to a term; there is no partial success
//   - Rock-solid guarantees – memoization lives behind its own
//     sync.RWMutex-guarded Table, never an unguarded package-level cache
//   - Pure Go – no cgo, only math/big beyond the standard library
//   - Depth-safe – the recursive-descent reconstructions that could run
//     arbitrarily deep (skeleton.Join, fixedsig.NatToTerm) are implemented
//     with an explicit work stack, not native recursion
//
// Under the hood, everything is organized under eight subpackages:
//
//	bignat/    — non-negative arbitrary-precision integers
//	combin/    — Binomial, Catalan, and their shared memo Table
//	catalan/   — balanced-parenthesis skeleton ranking/unranking
//	cantor/    — generalized Cantor N <-> N^k tupling bijection
//	term/      — the Var/Fun term algebra
//	skeleton/  — term <-> (skeleton, syms) split/join
//	goedel/    — the composed term <-> BigNat bijection (infinite signature)
//	fixedsig/  — the same bijection over a finite, fixed signature
//
// Quick example, encoding direction:
//
//	t := term.NewFun(bignat.FromUint64(3), []term.Term{
//		term.NewVar(bignat.FromUint64(3)),
//		term.NewFun(bignat.FromUint64(3), nil),
//	})
//	code := goedel.ToCode(t) // a BigNat
//	back, _ := goedel.FromCode(code) // back == t
package goedelnumbering
