package grid

// detectPortals turns label letters touching floor into portal landmarks.
// Cells are visited in reading order. For a letter with floor below, the name
// is the letter above followed by this one; floor above: this letter then the
// one below; floor right: the letter to the left then this one; floor left:
// this letter then the one to the right. Only interior rows and columns can
// hold a portal letter since the partner letter must fit on the far side.
func detectPortals(g *Grid, reg *Registry) error {
	for row := 1; row < g.Rows-1; row++ {
		for col := 1; col < g.Cols-1; col++ {
			idx := g.Index(row, col)
			if g.cells[idx].Kind != Label {
				continue
			}

			var pr, pc int // partner letter
			var first bool
			switch {
			case g.At(row+1, col).Kind == Floor:
				pr, pc, first = row-1, col, true
			case g.At(row-1, col).Kind == Floor:
				pr, pc, first = row+1, col, false
			case g.At(row, col+1).Kind == Floor:
				pr, pc, first = row, col-1, true
			case g.At(row, col-1).Kind == Floor:
				pr, pc, first = row, col+1, false
			default:
				continue // plain label letter
			}

			partner := g.At(pr, pc)
			if partner.Kind != Label {
				return &ParseError{Row: row, Col: col, Err: ErrUnpairedLabel}
			}
			name := string([]byte{g.cells[idx].Glyph, partner.Glyph})
			if first {
				name = string([]byte{partner.Glyph, g.cells[idx].Glyph})
			}

			g.cells[idx].Kind = Marker
			g.cells[idx].Landmark = reg.add(Landmark{
				Name:   name,
				Role:   Portal,
				Pos:    idx,
				Row:    row,
				Col:    col,
				Dir:    rim(g, row, col),
				KeyBit: -1,
			})
		}
	}

	// Every remaining letter must be the outer half of some portal label.
	for idx, c := range g.cells {
		if c.Kind != Label {
			continue
		}
		paired := false
		row, col := g.Coordinate(idx)
		for _, d := range offsets {
			if g.At(row+d[0], col+d[1]).Kind == Marker {
				paired = true
				break
			}
		}
		if !paired {
			return &ParseError{Row: row, Col: col, Err: ErrUnpairedLabel}
		}
	}

	return nil
}

// rim classifies a portal cell as Outer when it lies within two cells of the
// grid border, Inner otherwise.
func rim(g *Grid, row, col int) Direction {
	if row <= 1 || row >= g.Rows-2 || col <= 1 || col >= g.Cols-2 {
		return Outer
	}

	return Inner
}
