package fp_test

import (
	"fmt"
	"strings"

	"github.com/charmingruby/optres/fp"
	"github.com/charmingruby/optres/option"
)

func ExamplePipe() {
	key := fp.Pipe("  Session:Token ", strings.TrimSpace, strings.ToLower)
	fmt.Println(key)
	// Output:
	// session:token
}

func ExampleNot() {
	blank := func(s string) bool { return strings.TrimSpace(s) == "" }
	fmt.Println(option.Some("  ").Filter(fp.Not(blank)))
	fmt.Println(option.None[int]().UnwrapOrElse(fp.Constant(6379)))
	// Output:
	// None
	// 6379
}
