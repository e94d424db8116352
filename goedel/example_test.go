package goedel_test

import (
	"fmt"

	"github.com/krfkeith/bijective-goedel-numberings/bignat"
	"github.com/krfkeith/bijective-goedel-numberings/goedel"
	"github.com/krfkeith/bijective-goedel-numberings/term"
)

func Example() {
	t := term.NewFun(bignat.FromUint64(3), []term.Term{
		term.NewVar(bignat.FromUint64(3)),
		term.NewFun(bignat.FromUint64(3), nil),
	})

	code := goedel.ToCode(t)
	fmt.Println(code)

	back, err := goedel.FromCode(code)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(back)
	// Output:
	// 376281
	// F3(v3,F3)
}
