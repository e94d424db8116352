package catalan

import (
	"fmt"

	"github.com/krfkeith/bijective-goedel-numberings/bignat"
	"github.com/krfkeith/bijective-goedel-numberings/combin"
)

// Pars is a balanced-parenthesis word, one byte per symbol: 0 means '(',
// 1 means ')'. A well-formed Pars has even, positive length, opens with 0,
// closes with 1, and never lets the running count of 1s exceed the running
// count of 0s — see IsBalanced.
type Pars []byte

// String renders p using literal '(' and ')' characters.
func (p Pars) String() string {
	b := make([]byte, len(p))
	for i, bit := range p {
		if bit == 0 {
			b[i] = '('
		} else {
			b[i] = ')'
		}
	}
	return string(b)
}

// NodeCount returns the number of tree nodes a skeleton of this shape
// encodes: half its length, one opening paren per node.
func (p Pars) NodeCount() int { return len(p) / 2 }

// IsBalanced reports whether p is a non-empty balanced parenthesis word:
// every byte is 0 or 1, every prefix has at least as many 0s as 1s, and the
// total counts of 0s and 1s are equal.
func IsBalanced(p Pars) bool {
	if len(p) == 0 || len(p)%2 != 0 {
		return false
	}
	excess := 0
	for _, bit := range p {
		switch bit {
		case 0:
			excess++
		case 1:
			excess--
			if excess < 0 {
				return false
			}
		default:
			return false
		}
	}
	return excess == 0
}

// m computes M(n, x, y) = C(2n-x, n-(x+y)/2) - C(2n-x, n-(x+y)/2-1), the
// count of balanced suffixes of length 2n-x that begin in excess-y state.
// n, x, and y stay plain ints: they are positions and excess counts bounded
// by the length of the word being ranked, never the magnitude of the rank
// itself (which is the BigNat this helper returns).
func m(tbl *combin.Table, n, x, y int) bignat.BigNat {
	top := 2*n - x
	half := n - (x+y)/2
	a := binomialAt(tbl, top, half)
	b := binomialAt(tbl, top, half-1)
	return a.Sub(b)
}

// binomialAt adapts combin.Table.Binomial to plain int arguments, treating
// any out-of-domain (negative) argument as the empty-set case: C(n,k) = 0
// whenever n < 0 or k < 0.
func binomialAt(tbl *combin.Table, n, k int) bignat.BigNat {
	if n < 0 || k < 0 {
		return bignat.Zero()
	}
	return tbl.Binomial(bignat.FromUint64(uint64(n)), bignat.FromUint64(uint64(k)))
}

// Rank returns the rank of pars among the balanced parenthesis words whose
// first '(' closes at the last position (see the package doc), ordered so
// shorter words rank below longer ones. It returns ErrMalformedPars if pars
// is not balanced. It does not check the outer-pair shape: for a balanced
// word of another shape, such as "()()", the result is the rank of a
// different word.
//
// Rank allocates a fresh combin.Table; callers ranking many words should
// use RankWith and share one Table to amortize Catalan-number memoization.
func Rank(pars Pars) (bignat.BigNat, error) {
	return RankWith(combin.NewTable(), pars)
}

// RankWith is Rank, using tbl instead of a fresh combin.Table.
func RankWith(tbl *combin.Table, pars Pars) (bignat.BigNat, error) {
	if !IsBalanced(pars) {
		return bignat.Zero(), fmt.Errorf("catalan: Rank(%s): %w", pars, ErrMalformedPars)
	}

	// pars has length 2(nLocal+1): an implicit outer '(' at index 0, an
	// implicit outer ')' at the last index, and an interior of length
	// 2*nLocal walked below.
	nLocal := len(pars)/2 - 1

	lo := bignat.Zero()
	y := 0
	for x := 1; x <= 2*nLocal; x++ {
		if pars[x] == 0 {
			y++
		} else {
			lo = lo.Add(m(tbl, nLocal, x, y+1))
			y--
		}
	}

	// Add the count of all balanced words with strictly fewer opening
	// parens than pars.
	total := bignat.Zero()
	for j := 0; j < nLocal; j++ {
		total = total.Add(tbl.Catalan(bignat.FromUint64(uint64(j))))
	}

	return lo.Add(total), nil
}

// Unrank returns the balanced parenthesis word with the given rank. Unrank
// is total: every BigNat decodes to some word.
//
// Unrank allocates a fresh combin.Table; callers unranking many words
// should use UnrankWith and share one Table.
func Unrank(n bignat.BigNat) Pars {
	return UnrankWith(combin.NewTable(), n)
}

// UnrankWith is Unrank, using tbl instead of a fresh combin.Table.
func UnrankWith(tbl *combin.Table, n bignat.BigNat) Pars {
	// Find the largest i with sum_{j=0}^{i-1} Catalan(j) <= n.
	i := 0
	total := bignat.Zero()
	for {
		c := tbl.Catalan(bignat.FromUint64(uint64(i)))
		if total.Add(c).Greater(n) {
			break
		}
		total = total.Add(c)
		i++
	}
	local := n.Sub(total)

	interior := make([]byte, 2*i)
	lo := bignat.Zero()
	y := 0
	for x := 1; x <= 2*i; x++ {
		k := m(tbl, i, x, y+1)
		if local.Less(lo.Add(k)) {
			interior[x-1] = 0
			y++
		} else {
			lo = lo.Add(k)
			interior[x-1] = 1
			y--
		}
	}

	pars := make(Pars, 2*(i+1))
	pars[0] = 0
	copy(pars[1:], interior)
	pars[len(pars)-1] = 1
	return pars
}
