package landmark_test

import (
	"fmt"

	"github.com/katalvlaran/keymaze/grid"
	"github.com/katalvlaran/keymaze/landmark"
	"github.com/katalvlaran/keymaze/propagate"
)

// ExampleBuild lists what each landmark of a corridor sees directly.
// Key a sees lock A past the start; b sees only A.
func ExampleBuild() {
	g, _ := grid.ParseString("#########\n#b.A.@.a#\n#########")
	p, _ := propagate.New(g)
	if _, err := p.Run(); err != nil {
		fmt.Println(err)
		return
	}
	tbl, err := landmark.Build(g, p)
	if err != nil {
		fmt.Println(err)
		return
	}

	reg := tbl.Registry()
	for _, l := range reg.All() {
		fmt.Printf("%s:", l.Label())
		for _, e := range tbl.Edges(l.ID) {
			fmt.Printf(" %s=%d", reg.Landmark(e.To).Label(), e.Dist)
		}
		fmt.Println()
	}
	// Output:
	// b: A=2
	// A: b=2 @=2 a=4
	// @: A=2 a=2
	// a: @=2 A=4
}
