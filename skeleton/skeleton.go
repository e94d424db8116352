package skeleton

import (
	"fmt"

	"github.com/krfkeith/bijective-goedel-numberings/bignat"
	"github.com/krfkeith/bijective-goedel-numberings/catalan"
	"github.com/krfkeith/bijective-goedel-numberings/term"
)

var two = bignat.FromUint64(2)

// Split extracts t's Catalan skeleton and symbol stream in one traversal:
//
//   - Var(i)             -> skeleton "0,1", sym 2*i (even).
//   - Fun(f, [])         -> skeleton "0,1", sym 2*f+1 (odd).
//   - Fun(f, c1..cn)     -> skeleton "0, Split(c1), ..., Split(cn), 1", sym f.
//
// A leaf (Var or nullary Fun) is always encoded as the two-bit skeleton
// "0,1" regardless of which case it is; Join disambiguates the two cases by
// the parity of the corresponding sym, per the module's fixed convention
// for Fun(f,[]) vs. Var(f) (see the open-question note in SPEC_FULL.md).
//
// Split walks t with an explicit stack of in-progress Fun frames rather
// than calling itself recursively, so its auxiliary stack space lives on
// the heap and is not bounded by a goroutine's fixed call-stack size.
func Split(t term.Term) (catalan.Pars, []bignat.BigNat) {
	var pars catalan.Pars
	var syms []bignat.BigNat

	// frame tracks a Fun application whose children are still being
	// walked: args is the remaining slice of children not yet pushed.
	type frame struct {
		args []term.Term
	}
	var stack []frame

	// open emits the 0 and sym for t and, if t is a non-leaf Fun, pushes a
	// frame so its children get walked before the closing 1 is emitted.
	open := func(t term.Term) {
		pars = append(pars, 0)
		switch v := t.(type) {
		case term.Var:
			syms = append(syms, v.Label.Mul(two))
			pars = append(pars, 1)
		case term.Fun:
			if len(v.Args) == 0 {
				syms = append(syms, v.Label.Mul(two).Inc())
				pars = append(pars, 1)
				return
			}
			syms = append(syms, v.Label)
			stack = append(stack, frame{args: v.Args})
		}
	}

	open(t)
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if len(top.args) > 0 {
			child := top.args[0]
			top.args = top.args[1:]
			open(child)
			continue
		}
		pars = append(pars, 1)
		stack = stack[:len(stack)-1]
	}

	return pars, syms
}

// Join reconstructs a term from a (pars, syms) pair produced by Split. It
// returns ErrMalformedPair if pars does not parse as a sequence of leaf and
// application productions under the grammar documented on Split, if syms
// runs out before pars is consumed, or if either stream has leftover
// content once parsing completes.
//
// Join is a single-pass recursive-descent parser written with an explicit
// stack of in-progress Fun frames instead of native recursion, so a
// pathologically deep skeleton cannot overflow the call stack; see the
// package doc comment.
func Join(pars catalan.Pars, syms []bignat.BigNat) (term.Term, error) {
	// frame accumulates the children of a Fun application whose closing
	// paren has not yet been seen.
	type frame struct {
		label    bignat.BigNat
		children []term.Term
	}
	var stack []*frame
	var result term.Term
	haveResult := false

	attach := func(t term.Term) error {
		if n := len(stack); n > 0 {
			stack[n-1].children = append(stack[n-1].children, t)
			return nil
		}
		if haveResult {
			return fmt.Errorf("skeleton: Join: %w: extra top-level term after the first", ErrMalformedPair)
		}
		result = t
		haveResult = true
		return nil
	}

	p, s := 0, 0
	for p < len(pars) {
		switch pars[p] {
		case 1:
			n := len(stack)
			if n == 0 {
				return nil, fmt.Errorf("skeleton: Join: %w: unmatched ')' at position %d", ErrMalformedPair, p)
			}
			top := stack[n-1]
			stack = stack[:n-1]
			p++
			if err := attach(term.NewFun(top.label, top.children)); err != nil {
				return nil, err
			}

		case 0:
			if p+1 < len(pars) && pars[p+1] == 1 {
				// Leaf production: 0, 1, one sym.
				if s >= len(syms) {
					return nil, fmt.Errorf("skeleton: Join: %w: sym stream exhausted at leaf (position %d)", ErrMalformedPair, p)
				}
				x := syms[s]
				s++
				p += 2

				var leaf term.Term
				if isEven(x) {
					leaf = term.NewVar(x.QuoExact(two))
				} else {
					leaf = term.NewFun(x.Dec().QuoExact(two), nil)
				}
				if err := attach(leaf); err != nil {
					return nil, err
				}

			} else {
				// Application production: 0, one sym, children, 1.
				if s >= len(syms) {
					return nil, fmt.Errorf("skeleton: Join: %w: sym stream exhausted at application head (position %d)", ErrMalformedPair, p)
				}
				label := syms[s]
				s++
				p++
				stack = append(stack, &frame{label: label})
			}

		default:
			return nil, fmt.Errorf("skeleton: Join: %w: byte %d at position %d is neither 0 nor 1", ErrMalformedPair, pars[p], p)
		}
	}

	if len(stack) != 0 {
		return nil, fmt.Errorf("skeleton: Join: %w: %d unclosed application(s) at end of input", ErrMalformedPair, len(stack))
	}
	if s != len(syms) {
		return nil, fmt.Errorf("skeleton: Join: %w: %d unconsumed sym(s) at end of input", ErrMalformedPair, len(syms)-s)
	}
	if !haveResult {
		return nil, fmt.Errorf("skeleton: Join: %w: empty input", ErrMalformedPair)
	}

	return result, nil
}

// isEven reports whether x is divisible by 2.
func isEven(x bignat.BigNat) bool {
	_, r := x.QuoRem(two)
	return r.IsZero()
}
