package fixedsig_test

import (
	"fmt"

	"github.com/krfkeith/bijective-goedel-numberings/fixedsig"
)

func Example() {
	sig, err := fixedsig.NewSignature(
		[]string{"x", "y"},
		[]string{"true", "false"},
		[]fixedsig.FunSym[string]{
			{Symbol: "not", Arity: 1},
			{Symbol: "and", Arity: 2},
		},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	tm := fixedsig.FFun[string]{
		Symbol: "and",
		Args: []fixedsig.FTerm[string]{
			fixedsig.FVar[string]{Label: "x"},
			fixedsig.FFun[string]{Symbol: "not", Args: []fixedsig.FTerm[string]{fixedsig.FVar[string]{Label: "y"}}},
		},
	}

	n, err := sig.TermToNat(tm)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(n)

	back, err := sig.NatToTerm(n)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(back)
	// Output:
	// 47
	// and(x,not(y))
}
