package cantor

import (
	"github.com/krfkeith/bijective-goedel-numberings/bignat"
	"github.com/krfkeith/bijective-goedel-numberings/combin"
)

// ListToSet maps an arbitrary BigNat sequence to a strictly increasing one
// (a canonical finite set, in increasing order) via a running-offset
// prefix sum: ys[i] = (sum_{j<=i} xs[j]) + i.
func ListToSet(xs []bignat.BigNat) []bignat.BigNat {
	ys := make([]bignat.BigNat, len(xs))
	sum := bignat.Zero()
	for i, x := range xs {
		sum = sum.Add(x)
		ys[i] = sum.Add(bignat.FromUint64(uint64(i)))
	}
	return ys
}

// SetToList is the inverse of ListToSet: given a strictly increasing
// sequence ys, it recovers xs with xs[0] = ys[0] and
// xs[i] = ys[i] - ys[i-1] - 1 for i >= 1.
func SetToList(ys []bignat.BigNat) []bignat.BigNat {
	xs := make([]bignat.BigNat, len(ys))
	for i, y := range ys {
		if i == 0 {
			xs[0] = y
			continue
		}
		xs[i] = y.Sub(ys[i-1]).Dec()
	}
	return xs
}

// FromTuple packs xs into a single BigNat via the generalized Cantor
// tupling bijection: FromTuple(ListToSet(xs) mapped through Binomial).
// It is total for any length, including the empty sequence, which maps
// to 0.
//
// Complexity: O(len(xs)) combin.Binomial evaluations.
func FromTuple(xs []bignat.BigNat) bignat.BigNat {
	set := ListToSet(xs)
	sum := bignat.Zero()
	for i, s := range set {
		sum = sum.Add(combin.Binomial(s, bignat.FromUint64(uint64(i+1))))
	}
	return sum
}

// ToTuple is the inverse of FromTuple for a fixed length k: it returns the
// unique length-k BigNat sequence xs with FromTuple(xs) == n. ToTuple(0, n)
// returns the empty sequence for any n (only n == 0 is ever produced by
// FromTuple at length 0, but ToTuple does not validate that — it is a
// total function of its arguments, per the spec).
//
// Complexity: O(k) binary searches (see Combinadics), rather than a linear
// scan, which is what makes ToTuple efficient for large n.
func ToTuple(k int, n bignat.BigNat) []bignat.BigNat {
	if k == 0 {
		return []bignat.BigNat{}
	}
	return SetToList(combinadicsToSet(k, n))
}

// Combinadics returns the combinadic decomposition of n in k terms: the
// unique strictly decreasing sequence [m_k, m_{k-1}, ..., m_1] with
//
//	n == sum_{j=1}^{k} Binomial(m_j, j),  m_k > m_{k-1} > ... > m_1 >= 0.
//
// Each m_j is found by binary search for the smallest m with
// Binomial(m, j) > remaining, then decremented by one and subtracted off;
// see firstKBinomialLargerThan.
func Combinadics(k int, n bignat.BigNat) []bignat.BigNat {
	result := make([]bignat.BigNat, k)
	remaining := n
	for idx := 0; idx < k; idx++ {
		j := k - idx
		m := firstKBinomialLargerThan(j, remaining)
		mj := m.Dec()
		result[idx] = mj
		remaining = remaining.Sub(combin.Binomial(mj, bignat.FromUint64(uint64(j))))
	}
	return result
}

// combinadicsToSet reverses Combinadics' strictly-decreasing order into the
// strictly-increasing canonical-set order that SetToList expects.
func combinadicsToSet(k int, n bignat.BigNat) []bignat.BigNat {
	decreasing := Combinadics(k, n)
	set := make([]bignat.BigNat, k)
	for i, v := range decreasing {
		set[k-1-i] = v
	}
	return set
}

// firstKBinomialLargerThan finds, by binary search, the smallest m with
// Binomial(m, k) > n. The search range [k-1, n+k] is valid because
// Binomial(k-1, k) == 0 <= n always holds at the low end, and
// Binomial(n+k, k) > n always holds at the high end, for k >= 1, n >= 0.
func firstKBinomialLargerThan(k int, n bignat.BigNat) bignat.BigNat {
	kBig := bignat.FromUint64(uint64(k))
	lo := kBig.Dec()  // Binomial(lo, k) == 0 <= n
	hi := n.Add(kBig) // Binomial(hi, k) > n

	one := bignat.One()
	two := bignat.FromUint64(2)
	for !lo.Add(one).Equal(hi) {
		mid, _ := lo.Add(hi).QuoRem(two)
		if combin.Binomial(mid, kBig).Greater(n) {
			hi = mid
		} else {
			lo = mid
		}
	}
	return hi
}
