package term

import (
	"fmt"
	"strings"

	"github.com/krfkeith/bijective-goedel-numberings/bignat"
)

// Term is the sealed interface implemented by Var and Fun, the two cases of
// the term algebra. The isTerm method has no behavior; it exists only to
// close the interface against implementations outside this package, so a
// type switch on Term is safe to treat as exhaustive.
type Term interface {
	isTerm()

	// String renders the term using the module's fixed pretty-printing
	// convention: v<i> for a variable, F<f>(c1,...,cn) for a function
	// symbol with arguments, and F<f> (no parens) for a nullary one.
	String() string

	// NodeCount returns the number of nodes in the term's tree: 1 for a
	// leaf (a variable or a nullary function), 1 plus the sum of the
	// children's NodeCount otherwise.
	NodeCount() int

	// Depth returns the term's tree depth: 0 for a leaf, 1 plus the
	// maximum of the children's Depth otherwise.
	Depth() int
}

// Var is a variable labeled by a natural number.
type Var struct {
	Label bignat.BigNat
}

// NewVar returns Var(i).
func NewVar(i bignat.BigNat) Var { return Var{Label: i} }

func (Var) isTerm() {}

// String renders v as "v<i>".
func (v Var) String() string { return fmt.Sprintf("v%s", v.Label) }

// NodeCount is always 1 for a Var.
func (Var) NodeCount() int { return 1 }

// Depth is always 0 for a Var.
func (Var) Depth() int { return 0 }

// Fun is a function symbol labeled f, applied to an ordered sequence of
// argument terms. An empty Args makes Fun a nullary function, distinct
// from Var with the same label.
type Fun struct {
	Label bignat.BigNat
	Args  []Term
}

// NewFun returns Fun(f, args). It copies args, so later mutation of the
// slice the caller passed in does not reach the returned Term.
func NewFun(f bignat.BigNat, args []Term) Fun {
	cp := make([]Term, len(args))
	copy(cp, args)
	return Fun{Label: f, Args: cp}
}

func (Fun) isTerm() {}

// String renders f as "F<label>(arg1,...,argn)", or "F<label>" with no
// parens when f has no arguments.
func (f Fun) String() string {
	if len(f.Args) == 0 {
		return fmt.Sprintf("F%s", f.Label)
	}
	parts := make([]string, len(f.Args))
	for i, a := range f.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("F%s(%s)", f.Label, strings.Join(parts, ","))
}

// NodeCount returns 1 plus the sum of f's arguments' NodeCount.
func (f Fun) NodeCount() int {
	n := 1
	for _, a := range f.Args {
		n += a.NodeCount()
	}
	return n
}

// Depth returns 1 plus the maximum Depth among f's arguments, or 0 if f
// has none.
func (f Fun) Depth() int {
	if len(f.Args) == 0 {
		return 0
	}
	max := 0
	for _, a := range f.Args {
		if d := a.Depth(); d > max {
			max = d
		}
	}
	return max + 1
}

// Equal reports whether a and b are structurally identical terms: same
// case, same label, and (for Fun) pointwise-equal argument lists of the
// same length.
func Equal(a, b Term) bool {
	switch av := a.(type) {
	case Var:
		bv, ok := b.(Var)
		return ok && av.Label.Equal(bv.Label)
	case Fun:
		bf, ok := b.(Fun)
		if !ok || !av.Label.Equal(bf.Label) || len(av.Args) != len(bf.Args) {
			return false
		}
		for i := range av.Args {
			if !Equal(av.Args[i], bf.Args[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
