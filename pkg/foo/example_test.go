package foo_test

import (
	"fmt"

	"github.com/WingSMC/CPP20-Modules/pkg/foo"
)

func ExamplePrint() {
	_ = foo.Print(42)
	_ = foo.Print("hello")
	// Output:
	// 42
	// hello
}

func ExampleSquare() {
	n, _ := foo.Square(-3)
	fmt.Println(n)

	_, err := foo.Square(foo.MaxSquareInput + 1)
	fmt.Println(err)
	// Output:
	// 9
	// square of 3037000500 overflows int64
}
