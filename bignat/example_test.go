package bignat_test

import (
	"fmt"

	"github.com/krfkeith/bijective-goedel-numberings/bignat"
)

func Example() {
	a := bignat.FromUint64(1000000000000)
	b := bignat.FromUint64(999999999999)
	fmt.Println(a.Sub(b))
	// Output: 1
}
