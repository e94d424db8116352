// Package term defines Term, the algebraic data type at the center of this
// module: the free term algebra over an unbounded supply of variable and
// function-symbol labels, each a bignat.BigNat.
//
// Term is a tagged union with exactly two cases, exposed as a sealed
// interface with two implementing structs rather than one struct with an
// optional-children field, so callers are forced into exhaustive handling
// (a type switch) instead of being able to silently ignore one case — the
// skeleton package's split/join logic depends on that exhaustiveness.
//
//   - Var(i)       — a variable labeled i.
//   - Fun(f, args) — a function symbol labeled f applied to an ordered,
//     possibly empty, sequence of argument terms. Fun(f, nil) (a nullary
//     function) is a distinct term from Var(f), even when the labels
//     coincide; the two are disambiguated downstream by the skeleton
//     package's encoding convention, not by this package.
//
// Term values are immutable once constructed: NewFun copies its argument
// slice, so a caller mutating the slice it passed in afterward cannot
// reach back into the Term.
package term
