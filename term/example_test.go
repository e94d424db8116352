package term_test

import (
	"fmt"

	"github.com/krfkeith/bijective-goedel-numberings/bignat"
	"github.com/krfkeith/bijective-goedel-numberings/term"
)

func Example() {
	t := term.NewFun(bignat.FromUint64(3), []term.Term{
		term.NewVar(bignat.FromUint64(3)),
		term.NewFun(bignat.FromUint64(3), nil),
	})
	fmt.Println(t)
	fmt.Println(t.NodeCount())
	// Output:
	// F3(v3,F3)
	// 3
}
