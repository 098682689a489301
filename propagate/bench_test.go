package propagate_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/keymaze/grid"
	"github.com/katalvlaran/keymaze/propagate"
)

// randomMaze builds an n×n maze: a wall border, ~25% interior walls, the start
// in the middle and up to 26 keys scattered over floor cells.
func randomMaze(n int, seed int64) string {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]byte, n)
	for r := range rows {
		rows[r] = make([]byte, n)
		for c := range rows[r] {
			switch {
			case r == 0 || c == 0 || r == n-1 || c == n-1:
				rows[r][c] = '#'
			case rng.Intn(4) == 0:
				rows[r][c] = '#'
			default:
				rows[r][c] = '.'
			}
		}
	}
	rows[n/2][n/2] = '@'
	for k := 0; k < 26; k++ {
		r, c := 1+rng.Intn(n-2), 1+rng.Intn(n-2)
		if rows[r][c] == '.' {
			rows[r][c] = byte('a' + k)
		}
	}
	lines := make([]string, n)
	for r := range rows {
		lines[r] = string(rows[r])
	}

	return strings.Join(lines, "\n")
}

func benchRun(b *testing.B, n int, opts ...propagate.Option) {
	g, err := grid.ParseString(randomMaze(n, 42))
	if err != nil {
		b.Fatalf("setup ParseString failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p, err := propagate.New(g, opts...)
		if err != nil {
			b.Fatal(err)
		}
		if _, err = p.Run(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRun_Sequential81 measures in-place sweeps on an 81×81 maze.
func BenchmarkRun_Sequential81(b *testing.B) { benchRun(b, 81) }

// BenchmarkRun_Parallel81 measures snapshot sweeps on the same maze.
func BenchmarkRun_Parallel81(b *testing.B) {
	benchRun(b, 81, propagate.WithMode(propagate.Parallel))
}
