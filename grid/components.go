package grid

// ConnectedComponents finds all contiguous regions of passable cells (floor
// and landmarks) under 4-connectivity, ignoring locks and portals: it answers
// "could these cells ever be joined", not "are they joined now".
// Returns a slice of components; each component is a slice of flat indices in
// BFS order. Components are ordered by their first cell in reading order.
//
// Time:   O(R·C·4).
// Memory: O(R·C) for visited flags and output.
func (g *Grid) ConnectedComponents() [][]int {
	labels := make([]int, len(g.cells))
	for i := range labels {
		labels[i] = -1
	}

	var comps [][]int
	for i0, c := range g.cells {
		if !c.Passable() || labels[i0] >= 0 {
			continue
		}
		id := len(comps)
		queue := []int{i0}
		labels[i0] = id
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			ur, uc := g.Coordinate(u)
			for _, d := range offsets {
				vr, vc := ur+d[0], uc+d[1]
				if !g.InBounds(vr, vc) {
					continue
				}
				v := g.Index(vr, vc)
				if labels[v] < 0 && g.cells[v].Passable() {
					labels[v] = id
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}

// ComponentLabels returns, for every cell, the index of its component in
// ConnectedComponents order, or -1 for impassable cells.
// Complexity: O(R·C).
func (g *Grid) ComponentLabels() []int {
	labels := make([]int, len(g.cells))
	for i := range labels {
		labels[i] = -1
	}
	for id, comp := range g.ConnectedComponents() {
		for _, idx := range comp {
			labels[idx] = id
		}
	}

	return labels
}
