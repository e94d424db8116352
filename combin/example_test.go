package combin_test

import (
	"fmt"

	"github.com/krfkeith/bijective-goedel-numberings/bignat"
	"github.com/krfkeith/bijective-goedel-numberings/combin"
)

func Example() {
	n := bignat.FromUint64(10)
	k := bignat.FromUint64(3)
	fmt.Println(combin.Binomial(n, k))
	fmt.Println(combin.Catalan(bignat.FromUint64(5)))
	// Output:
	// 120
	// 42
}
