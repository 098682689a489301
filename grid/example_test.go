package grid_test

import (
	"fmt"

	"github.com/katalvlaran/keymaze/grid"
)

// ExampleParseString parses a one-corridor maze and lists its landmarks in
// reading order.
func ExampleParseString() {
	g, err := grid.ParseString("#########\n#b.A.@.a#\n#########")
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, l := range g.Registry().All() {
		fmt.Printf("%s %s at (%d,%d)\n", l.Name, l.Role, l.Row, l.Col)
	}
	fmt.Println("keys:", g.Registry().KeyCount())

	// Output:
	// b key at (1,1)
	// A lock at (1,3)
	// @ start at (1,5)
	// a key at (1,7)
	// keys: 2
}

// ExampleParseError shows the location carried by a parse failure.
func ExampleParseError() {
	_, err := grid.ParseString("#####\n#@?a#\n#####")
	fmt.Println(err)

	// Output:
	// grid: parse error: row 1 col 2: grid: unrecognized symbol
}
