package code_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/keychain/code"
)

func ExampleParseAll() {
	codes, err := code.ParseAll(strings.NewReader("029A\n980A\n"))
	if err != nil {
		panic(err)
	}
	for _, c := range codes {
		fmt.Println(c.Line, c, c.Value())
	}
	// Output:
	// 1 029A 29
	// 2 980A 980
}
