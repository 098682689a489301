package solver_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/keymaze/solver"
)

func ExampleSolveKeys() {
	maze := strings.Join([]string{
		"#########",
		"#b.A.@.a#",
		"#########",
	}, "\n")

	rep, err := solver.SolveKeys(context.Background(), strings.NewReader(maze), solver.Options{})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(rep.Distance, strings.Join(rep.Path, " "))
	// Output: 8 @ a A b
}
