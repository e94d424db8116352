package goedel

import (
	"fmt"

	"github.com/krfkeith/bijective-goedel-numberings/bignat"
	"github.com/krfkeith/bijective-goedel-numberings/cantor"
	"github.com/krfkeith/bijective-goedel-numberings/catalan"
	"github.com/krfkeith/bijective-goedel-numberings/combin"
	"github.com/krfkeith/bijective-goedel-numberings/skeleton"
	"github.com/krfkeith/bijective-goedel-numberings/term"
)

var two = bignat.FromUint64(2)

// sharedTable backs the package-level ToCode/FromCode convenience
// functions, following the same amortize-across-calls convention as
// combin.Catalan's sharedTable.
var sharedTable = combin.NewTable()

// ToCode maps t to its Goedel number via a package-level shared
// combin.Table. See ToCodeWith for the algorithm.
func ToCode(t term.Term) bignat.BigNat {
	return ToCodeWith(sharedTable, t)
}

// ToCodeWith is ToCode, using tbl instead of the package-level shared
// Table. Callers encoding many terms should share one Table across calls
// to amortize Catalan-number memoization.
//
// Algorithm: split t into (pars, syms); rank pars and Cantor-pack syms
// into a single BigNat each; Cantor-pack the resulting pair into the
// final code.
func ToCodeWith(tbl *combin.Table, t term.Term) bignat.BigNat {
	pars, syms := skeleton.Split(t)
	r, err := catalan.RankWith(tbl, pars)
	if err != nil {
		// Split always produces a balanced pars by construction; a
		// rejection here means Split itself is broken, not that the
		// caller passed bad input.
		panic(fmt.Sprintf("goedel: ToCode: Split produced an unbalanced skeleton: %v", err))
	}
	x := cantor.FromTuple(syms)
	return cantor.FromTuple([]bignat.BigNat{r, x})
}

// FromCode is the inverse of ToCode: it decodes n back into the unique
// term t with ToCode(t) == n, using a package-level shared combin.Table.
// FromCode is total; every BigNat decodes to some term.
func FromCode(n bignat.BigNat) (term.Term, error) {
	return FromCodeWith(sharedTable, n)
}

// FromCodeWith is FromCode, using tbl instead of the package-level shared
// Table.
//
// Algorithm: unpack n into a pair [r, x]; unrank r into pars; Cantor-unpack
// x into a syms stream of length treecount(pars) = len(pars)/2; join pars
// and syms back into a term.
func FromCodeWith(tbl *combin.Table, n bignat.BigNat) (term.Term, error) {
	pair := cantor.ToTuple(2, n)
	r, x := pair[0], pair[1]

	pars := catalan.UnrankWith(tbl, r)
	treecount := pars.NodeCount()
	syms := cantor.ToTuple(treecount, x)

	t, err := skeleton.Join(pars, syms)
	if err != nil {
		return nil, fmt.Errorf("goedel: FromCode(%s): %w", n, err)
	}
	return t, nil
}

// Encoder bundles a combin.Table so a caller can encode many terms without
// touching package-level shared state. It has no exported fields; the zero
// value is not usable, construct one with NewEncoder.
type Encoder struct {
	tbl *combin.Table
}

// NewEncoder returns an Encoder with a fresh combin.Table of its own.
func NewEncoder() *Encoder {
	return &Encoder{tbl: combin.NewTable()}
}

// ToCode encodes t using e's own Table.
func (e *Encoder) ToCode(t term.Term) bignat.BigNat {
	return ToCodeWith(e.tbl, t)
}

// Decoder bundles a combin.Table so a caller can decode many codes without
// touching package-level shared state. It has no exported fields; the zero
// value is not usable, construct one with NewDecoder.
type Decoder struct {
	tbl *combin.Table
}

// NewDecoder returns a Decoder with a fresh combin.Table of its own.
func NewDecoder() *Decoder {
	return &Decoder{tbl: combin.NewTable()}
}

// FromCode decodes n using d's own Table.
func (d *Decoder) FromCode(n bignat.BigNat) (term.Term, error) {
	return FromCodeWith(d.tbl, n)
}
