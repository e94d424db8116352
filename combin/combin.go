package combin

import (
	"sync"

	"github.com/krfkeith/bijective-goedel-numberings/bignat"
)

// Table memoizes Catalan numbers behind a sync.RWMutex so a single Table
// may be shared safely across goroutines. Each Table's memo is entirely its
// own: holding two Tables in the same process gives two independent caches
// with no cross-talk, per the no-shared-global-state requirement in
// SPEC_FULL.md.
type Table struct {
	mu      sync.RWMutex
	catalan []bignat.BigNat // catalan[i] holds Catalan(i), grown on demand
}

// NewTable returns a Table with Catalan(0) precomputed.
func NewTable() *Table {
	return &Table{catalan: []bignat.BigNat{bignat.One()}}
}

// sharedTable backs the package-level Catalan convenience function.
var sharedTable = NewTable()

// Binomial returns C(n, k), the number of k-element subsets of an n-element
// set; it is 0 whenever k > n. Binomial needs no memoization: each call
// computes its result directly via the multiplicative recurrence
//
//	b_0 = 1, b_{i+1} = b_i * (n - i) / (i + 1)
//
// run for i = 0..k-1, using the C(n,k) = C(n,n-k) symmetry to run over
// whichever of k, n-k is smaller.
//
// Complexity: O(min(k, n-k)) big-integer multiply/divide steps.
func Binomial(n, k bignat.BigNat) bignat.BigNat {
	if k.Greater(n) {
		return bignat.Zero()
	}

	// Use the smaller side of the symmetric pair.
	if complement := n.Sub(k); complement.Less(k) {
		k = complement
	}

	one := bignat.One()
	b := bignat.One()
	for i := bignat.Zero(); i.Less(k); i = i.Inc() {
		b = b.Mul(n.Sub(i)).QuoExact(i.Add(one))
	}

	return b
}

// Catalan returns the nth Catalan number, via a package-level shared Table.
// Catalan(0) = 1; Catalan(n) = 2*(2n-1)*Catalan(n-1) / (n+1).
//
// Complexity: O(1) amortized once the shared Table already holds n;
// O(n) the first time a given n (or anything larger) is requested.
func Catalan(n bignat.BigNat) bignat.BigNat {
	return sharedTable.Catalan(n)
}

// Binomial is provided on Table too, purely for a uniform call surface
// alongside Table.Catalan; it carries no state and simply forwards to the
// package-level Binomial.
func (t *Table) Binomial(n, k bignat.BigNat) bignat.BigNat {
	return Binomial(n, k)
}

// Catalan returns the nth Catalan number, computing and caching every
// intermediate Catalan(0..n) not already present in t.
//
// Complexity: O(1) amortized once t already holds n; O(n - m) the first
// time, where m is the largest index already memoized.
func (t *Table) Catalan(n bignat.BigNat) bignat.BigNat {
	idx := n.Int()

	t.mu.RLock()
	if idx < len(t.catalan) {
		v := t.catalan[idx]
		t.mu.RUnlock()
		return v
	}
	t.mu.RUnlock()

	t.mu.Lock()
	defer t.mu.Unlock()

	two := bignat.FromUint64(2)
	one := bignat.One()
	for len(t.catalan) <= idx {
		i := len(t.catalan)
		prev := t.catalan[i-1]
		bi := bignat.FromUint64(uint64(i))

		twoIMinus1 := two.Mul(bi).Sub(one)
		numer := two.Mul(twoIMinus1).Mul(prev)
		denom := bi.Add(one)

		t.catalan = append(t.catalan, numer.QuoExact(denom))
	}

	return t.catalan[idx]
}
