package grid

import "strings"

// offsets are the four orthogonal neighbour steps as (dRow, dCol): N, E, S, W.
var offsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Grid is a parsed maze. It is immutable once built: propagation keeps its
// own per-cell state keyed by flat index.
type Grid struct {
	Rows, Cols int

	cells   []Cell
	reg     *Registry
	variant Variant
}

// newGrid allocates a rows×cols arena filled with the given kind.
func newGrid(rows, cols int, fill Kind, glyph byte, v Variant) *Grid {
	cells := make([]Cell, rows*cols)
	for i := range cells {
		cells[i] = Cell{Kind: fill, Glyph: glyph, Landmark: NoLandmark}
	}

	return &Grid{Rows: rows, Cols: cols, cells: cells, variant: v}
}

// Variant reports which symbol table the grid was parsed with.
func (g *Grid) Variant() Variant { return g.variant }

// Registry returns the landmark registry built during parsing.
func (g *Grid) Registry() *Registry { return g.reg }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// Index maps (row, col) to a row-major index.
// Complexity: O(1).
func (g *Grid) Index(row, col int) int {
	return row*g.Cols + col
}

// Coordinate converts a row-major index back to (row, col).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (row, col int) {
	return idx / g.Cols, idx % g.Cols
}

// Cell returns the cell at flat index idx.
func (g *Grid) Cell(idx int) Cell { return g.cells[idx] }

// At returns the cell at (row, col); out-of-bounds positions read as Void.
func (g *Grid) At(row, col int) Cell {
	if !g.InBounds(row, col) {
		return Cell{Kind: Void, Glyph: ' ', Landmark: NoLandmark}
	}

	return g.cells[g.Index(row, col)]
}

// Passable reports whether the cell at idx can be stood on.
func (g *Grid) Passable(idx int) bool { return g.cells[idx].Passable() }

// IsBarrier reports whether the cell at idx is a landmark that stops
// propagation (every landmark except the start).
func (g *Grid) IsBarrier(idx int) bool {
	c := g.cells[idx]
	if c.Kind != Marker {
		return false
	}

	return g.reg.Landmark(c.Landmark).IsBarrier()
}

// Neighbors appends to dst the in-bounds orthogonal neighbours of idx
// and returns the extended slice. Pass dst[:0] to reuse a buffer.
// Complexity: O(1).
func (g *Grid) Neighbors(idx int, dst []int) []int {
	row, col := g.Coordinate(idx)
	for _, d := range offsets {
		r, c := row+d[0], col+d[1]
		if g.InBounds(r, c) {
			dst = append(dst, g.Index(r, c))
		}
	}

	return dst
}

// String renders the grid with the glyphs it was parsed from, one line per
// row, without a trailing newline. Parsing the result yields an equivalent grid.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.Rows * (g.Cols + 1))
	for row := 0; row < g.Rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < g.Cols; col++ {
			b.WriteByte(g.cells[g.Index(row, col)].Glyph)
		}
	}

	return b.String()
}

// Render is String with the start glyph moved to player, for showing an agent
// part-way through the maze. A negative player leaves the start in place.
func (g *Grid) Render(player int) string {
	if player < 0 || player >= len(g.cells) || g.variant != Keys {
		return g.String()
	}
	out := []byte(g.String())
	start := g.reg.Landmark(g.reg.Start())
	// Each row occupies Cols+1 bytes in the rendering (newline included).
	out[start.Row*(g.Cols+1)+start.Col] = '.'
	row, col := g.Coordinate(player)
	out[row*(g.Cols+1)+col] = '@'

	return string(out)
}
