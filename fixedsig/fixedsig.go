package fixedsig

import (
	"fmt"

	"github.com/krfkeith/bijective-goedel-numberings/bignat"
	"github.com/krfkeith/bijective-goedel-numberings/cantor"
)

// funKey identifies a function symbol by (symbol, arity): two funs sharing
// a symbol but differing in arity are distinct entries, same as overloaded
// functions in a typed signature.
type funKey[S comparable] struct {
	symbol S
	arity  int
}

// Signature is a finite, fixed set of variable labels, constant labels,
// and arity-tagged function symbols that nat2term/term2nat range over. Its
// zero value is not usable; construct one with NewSignature.
type Signature[S comparable] struct {
	vars   []S
	consts []S
	funs   []FunSym[S]

	varIndex   map[S]int
	constIndex map[S]int
	funIndex   map[funKey[S]]int
}

// NewSignature builds a Signature from vars, consts, and funs. The slices
// are copied, so later mutation by the caller does not reach the
// Signature. Position lookups (used by TermToNat) are determined by each
// label's first occurrence; duplicate labels are a caller error, not
// validated here.
//
// It returns ErrNullaryFunSymbol if any entry in funs declares arity 0: a
// nullary function symbol already has a dedicated home in consts, and
// getBDigit's m for such an entry is never read by NatToTerm, so every n
// that selects it decodes to the same term regardless of m — silently
// breaking injectivity rather than rejecting the ambiguous input.
func NewSignature[S comparable](vars, consts []S, funs []FunSym[S]) (*Signature[S], error) {
	for _, f := range funs {
		if f.Arity == 0 {
			return nil, fmt.Errorf("fixedsig: NewSignature: function %v: %w", f.Symbol, ErrNullaryFunSymbol)
		}
	}

	sig := &Signature[S]{
		vars:       append([]S(nil), vars...),
		consts:     append([]S(nil), consts...),
		funs:       append([]FunSym[S](nil), funs...),
		varIndex:   make(map[S]int, len(vars)),
		constIndex: make(map[S]int, len(consts)),
		funIndex:   make(map[funKey[S]]int, len(funs)),
	}
	for i, v := range sig.vars {
		if _, seen := sig.varIndex[v]; !seen {
			sig.varIndex[v] = i
		}
	}
	for i, c := range sig.consts {
		if _, seen := sig.constIndex[c]; !seen {
			sig.constIndex[c] = i
		}
	}
	for i, f := range sig.funs {
		key := funKey[S]{symbol: f.Symbol, arity: f.Arity}
		if _, seen := sig.funIndex[key]; !seen {
			sig.funIndex[key] = i
		}
	}
	return sig, nil
}

// putBDigit computes the bijective base-b digit encoding putBDigit(b, d, m)
// = 1 + d + b*m, for b >= 1 and 0 <= d < b.
func putBDigit(b, d, m bignat.BigNat) bignat.BigNat {
	return bignat.One().Add(d).Add(b.Mul(m))
}

// getBDigit inverts putBDigit: given b >= 1 and n >= 1, it returns the
// unique (d, m) with 0 <= d < b and putBDigit(b, d, m) == n.
func getBDigit(b, n bignat.BigNat) (d, m bignat.BigNat) {
	q, r := n.QuoRem(b)
	if r.IsZero() {
		return b.Dec(), q.Dec()
	}
	return r.Dec(), q
}

// frame is an in-progress FFun application: symbol and arity are fixed once
// decoded; remaining holds the not-yet-decoded child natural numbers, and
// children accumulates their decoded terms in order.
type frame[S comparable] struct {
	symbol    S
	remaining []bignat.BigNat
	children  []FTerm[S]
}

// NatToTerm decodes n into the unique fixed-signature term t with
// sig.TermToNat(t) == n. It returns ErrEmptySignature if n falls outside
// the variable and constant bands but sig has no function symbols to
// decode into.
//
// NatToTerm is implemented with an explicit stack of frames instead of
// native recursion, so a pathologically large n (which can unfold into an
// arbitrarily deep function application) cannot overflow a fixed call
// stack; see the package doc comment.
func (sig *Signature[S]) NatToTerm(n bignat.BigNat) (FTerm[S], error) {
	lv := bignat.FromUint64(uint64(len(sig.vars)))
	lc := bignat.FromUint64(uint64(len(sig.consts)))
	lf := len(sig.funs)
	lvlc := lv.Add(lc)

	var stack []*frame[S]
	cur := n
	var result FTerm[S]

outer:
	for {
		var term FTerm[S]

		switch {
		case cur.Less(lv):
			term = FVar[S]{Label: sig.vars[cur.Int()]}

		case cur.Less(lvlc):
			term = FConst[S]{Label: sig.consts[cur.Sub(lv).Int()]}

		default:
			if lf == 0 {
				return nil, fmt.Errorf("fixedsig: NatToTerm(%s): %w", n, ErrEmptySignature)
			}
			n1 := cur.Sub(lvlc).Inc()
			d, m := getBDigit(bignat.FromUint64(uint64(lf)), n1)
			fs := sig.funs[d.Int()]

			nums := cantor.ToTuple(fs.Arity, m)
			stack = append(stack, &frame[S]{
				symbol:    fs.Symbol,
				remaining: nums[1:],
				children:  make([]FTerm[S], 0, fs.Arity),
			})
			cur = nums[0]
			continue outer
		}

		for {
			if len(stack) == 0 {
				result = term
				break outer
			}
			top := stack[len(stack)-1]
			top.children = append(top.children, term)
			if len(top.remaining) > 0 {
				cur = top.remaining[0]
				top.remaining = top.remaining[1:]
				continue outer
			}
			stack = stack[:len(stack)-1]
			term = FFun[S]{Symbol: top.symbol, Args: top.children}
		}
	}

	return result, nil
}

// TermToNat encodes t into the unique natural number n with
// sig.NatToTerm(n) == t. It returns ErrUnknownSymbol if t references a
// variable, constant, or (symbol, arity) function pair not present in sig.
func (sig *Signature[S]) TermToNat(t FTerm[S]) (bignat.BigNat, error) {
	lv := len(sig.vars)
	lc := len(sig.consts)

	switch v := t.(type) {
	case FVar[S]:
		idx, ok := sig.varIndex[v.Label]
		if !ok {
			return bignat.Zero(), fmt.Errorf("fixedsig: TermToNat: %w: variable %v", ErrUnknownSymbol, v.Label)
		}
		return bignat.FromUint64(uint64(idx)), nil

	case FConst[S]:
		idx, ok := sig.constIndex[v.Label]
		if !ok {
			return bignat.Zero(), fmt.Errorf("fixedsig: TermToNat: %w: constant %v", ErrUnknownSymbol, v.Label)
		}
		return bignat.FromUint64(uint64(lv + idx)), nil

	case FFun[S]:
		key := funKey[S]{symbol: v.Symbol, arity: len(v.Args)}
		d, ok := sig.funIndex[key]
		if !ok {
			return bignat.Zero(), fmt.Errorf("fixedsig: TermToNat: %w: function %v/%d", ErrUnknownSymbol, v.Symbol, len(v.Args))
		}

		ns := make([]bignat.BigNat, len(v.Args))
		for i, a := range v.Args {
			nv, err := sig.TermToNat(a)
			if err != nil {
				return bignat.Zero(), err
			}
			ns[i] = nv
		}
		m := cantor.FromTuple(ns)
		lf := bignat.FromUint64(uint64(len(sig.funs)))
		n := putBDigit(lf, bignat.FromUint64(uint64(d)), m)
		return n.Add(bignat.FromUint64(uint64(lv + lc))).Dec(), nil

	default:
		return bignat.Zero(), fmt.Errorf("fixedsig: TermToNat: unrecognized FTerm implementation %T", t)
	}
}
