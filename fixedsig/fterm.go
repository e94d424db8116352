package fixedsig

import (
	"fmt"
	"strings"
)

// FTerm is the sealed interface implemented by FVar, FConst, and FFun, the
// three cases of a fixed-signature term. S is the comparable type used for
// variable, constant, and function-symbol labels (typically string).
type FTerm[S comparable] interface {
	isFTerm()
	String() string
}

// FVar is a reference to one of a Signature's finite variable labels.
type FVar[S comparable] struct {
	Label S
}

func (FVar[S]) isFTerm() {}

// String renders v as its label.
func (v FVar[S]) String() string { return fmt.Sprint(v.Label) }

// FConst is a reference to one of a Signature's finite constant labels.
type FConst[S comparable] struct {
	Label S
}

func (FConst[S]) isFTerm() {}

// String renders c as its label.
func (c FConst[S]) String() string { return fmt.Sprint(c.Label) }

// FFun is a function symbol applied to an ordered sequence of arguments;
// Symbol must name one of the Signature's funs, and len(Args) must equal
// that symbol's declared arity.
type FFun[S comparable] struct {
	Symbol S
	Args   []FTerm[S]
}

func (FFun[S]) isFTerm() {}

// String renders f as "<symbol>(arg1,...,argn)", or just "<symbol>" when f
// has no arguments.
func (f FFun[S]) String() string {
	if len(f.Args) == 0 {
		return fmt.Sprint(f.Symbol)
	}
	parts := make([]string, len(f.Args))
	for i, a := range f.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%v(%s)", f.Symbol, strings.Join(parts, ","))
}

// FunSym declares one function symbol's label and fixed arity.
type FunSym[S comparable] struct {
	Symbol S
	Arity  int
}

// EqualFTerm reports whether a and b are structurally identical fixed-
// signature terms.
func EqualFTerm[S comparable](a, b FTerm[S]) bool {
	switch av := a.(type) {
	case FVar[S]:
		bv, ok := b.(FVar[S])
		return ok && av.Label == bv.Label
	case FConst[S]:
		bc, ok := b.(FConst[S])
		return ok && av.Label == bc.Label
	case FFun[S]:
		bf, ok := b.(FFun[S])
		if !ok || av.Symbol != bf.Symbol || len(av.Args) != len(bf.Args) {
			return false
		}
		for i := range av.Args {
			if !EqualFTerm[S](av.Args[i], bf.Args[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
