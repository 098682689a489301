// Package mazes holds small hand-checked puzzle inputs shared by the tests
// and benchmarks of several packages.
package mazes

import "strings"

// join concatenates rows with '\n'.
func join(rows ...string) string { return strings.Join(rows, "\n") }

// Key mazes with their known minimum collection distance.
var (
	// Line8: @ to a (2), a back past @ to the A lock (4 more, a is held),
	// A to b (2 more). Total 8.
	Line8 = join(
		"#########",
		"#b.A.@.a#",
		"#########",
	)

	Corridor86 = join(
		"########################",
		"#f.D.E.e.C.b.A.@.a.B.c.#",
		"######################.#",
		"#d.....................#",
		"########################",
	)

	Loop132 = join(
		"########################",
		"#...............b.C.D.f#",
		"#.######################",
		"#.....@.a.B.c.d.A.e.F.g#",
		"########################",
	)

	Cross136 = join(
		"#################",
		"#i.G..c...e..H.p#",
		"########.########",
		"#j.A..b...f..D.o#",
		"########@########",
		"#k.E..a...g..B.n#",
		"########.########",
		"#l.F..d...h..C.m#",
		"#################",
	)

	Pockets81 = join(
		"########################",
		"#@..............ac.GI.b#",
		"###d#e#f################",
		"###A#B#C################",
		"###g#h#i################",
		"########################",
	)

	// Gated15: the B lock is the only way to key c and a stands between @
	// and B. @→b 4, b→a 6, a→B 2, B→c 3. Total 15.
	Gated15 = join(
		"###########",
		"#b...@.a#.#",
		"#######.#.#",
		"#######B..#",
		"#########c#",
		"###########",
	)

	// GatedNoKey is Gated15 with key b replaced by floor: lock B can never open.
	GatedNoKey = join(
		"###########",
		"#....@.a#.#",
		"#######.#.#",
		"#######B..#",
		"#########c#",
		"###########",
	)

	// Walled has key z sealed in by walls on every side.
	Walled = join(
		"#######",
		"#@.a#z#",
		"#######",
	)
)

// Donut is a portal maze whose shortest flat route is 12 steps
// (AA → JJ → ZZ) and whose shortest recursive route is 28 steps
// (AA → PP → RR → QQ → KK → ZZ), descending at most two levels.
var Donut = join(
	"     A     P       ",
	"     A     P       ",
	"  ###.#####.#####  ",
	"  #.....#.......#  ",
	"  #.###.####.##.#  ",
	"JJ..#  P    R #.#  ",
	"  ###  P    R ###  ",
	"  #..KK Q     #.#  ",
	"  #..JJ Q     #..RR",
	"  #.####.######.#  ",
	"  #..#...#......#  ",
	"  ##.#.#####.####  ",
	"    Z K     Q      ",
	"    Z K     Q      ",
)
