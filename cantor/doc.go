// Package cantor implements the generalized Cantor N ↔ N^k tupling
// bijection: FromTuple packs a fixed-length sequence of BigNat values into
// a single BigNat, and ToTuple is its efficient inverse, computed via a
// combinadic decomposition rather than by searching.
//
// The construction goes through two smaller bijections on equal-length
// sequences:
//
//   - ListToSet maps an arbitrary sequence of BigNat to a strictly
//     increasing one (a "canonical finite set" in increasing order), by a
//     running-offset prefix sum.
//   - SetToList is its inverse.
//
// FromTuple applies ListToSet and sums C(set[i], i+1) over the result.
// ToTuple inverts that sum via Combinadics — the standard combinadic
// decomposition n = sum C(m_j, j) with strictly decreasing m_j, found by
// binary search rather than linear scan, which is what keeps ToTuple
// efficient for the large BigNat codes this module produces.
//
// Complexity: FromTuple(xs) is O(len(xs)) combin.Binomial evaluations.
// ToTuple(k, n) is O(k) binary searches, each over an interval bounded
// using the identity C(n+k, k) > n for all k >= 1; each binary-search step
// is itself a combin.Binomial evaluation, and each search interval has
// about n+1 candidates, so ToTuple is O(k * bit-length of n) binomial
// evaluations.
package cantor
