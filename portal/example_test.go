package portal_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/keymaze/grid"
	"github.com/katalvlaran/keymaze/internal/mazes"
	"github.com/katalvlaran/keymaze/landmark"
	"github.com/katalvlaran/keymaze/portal"
	"github.com/katalvlaran/keymaze/propagate"
)

// ExampleShortestRoute solves the same maze flat and nested.
func ExampleShortestRoute() {
	g, err := grid.ParsePortals(strings.NewReader(mazes.Donut))
	if err != nil {
		fmt.Println(err)
		return
	}
	p, _ := propagate.New(g)
	if _, err = p.Run(); err != nil {
		fmt.Println(err)
		return
	}
	tbl, _ := landmark.Build(g, p)

	flat, _ := portal.ShortestRoute(tbl)
	nested, _ := portal.ShortestRoute(tbl, portal.WithRecursive())
	fmt.Println(flat.Steps, flat.Labels())
	fmt.Println(nested.Steps, nested.Deepest)
	// Output:
	// 12 [AA JJ/out ZZ]
	// 28 2
}
