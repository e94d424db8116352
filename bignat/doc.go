// Package bignat defines BigNat, a non-negative arbitrary-precision integer
// used as the common currency of value across every other package in this
// module: term labels, Catalan ranks, Cantor-tuple components, and final
// codes are all BigNat.
//
// BigNat wraps math/big.Int rather than reimplementing arbitrary-precision
// arithmetic from scratch. There is no third-party bignum package anywhere
// in this module's dependency lineage, and the standard library's bignum
// type is itself the idiomatic choice reached for elsewhere in this domain
// (see DESIGN.md). BigNat's job is narrow: enforce the non-negativity
// invariant every caller in this module relies on, and give the rest of the
// module a small, value-oriented API instead of *big.Int's mutate-in-place
// methods.
//
// BigNat values are immutable from the caller's perspective: every
// operation returns a new BigNat rather than mutating the receiver.
package bignat
