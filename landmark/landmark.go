// Package landmark derives the read-only Landmark Distance Table from a
// propagated grid: for every landmark, the other landmarks it reaches without
// crossing a third one, and how far they are.
//
// The table is the only spatial surface the order search and the portal route
// search consult. It never changes after Build and is safe for concurrent
// reads.
package landmark

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/keymaze/grid"
	"github.com/katalvlaran/keymaze/propagate"
)

var (
	// ErrNilInput is returned when Build receives a nil grid or propagator.
	ErrNilInput = errors.New("landmark: grid or propagator is nil")
	// ErrMismatch is returned when the propagator was built for another grid.
	ErrMismatch = errors.New("landmark: propagator belongs to a different grid")
	// ErrUnreachable marks a landmark with no reachable neighbours.
	ErrUnreachable = errors.New("landmark: unreachable")
)

// UnreachableLandmarkError records a landmark that reaches no other landmark.
// It is a warning: the table is still usable.
type UnreachableLandmarkError struct {
	ID       grid.LandmarkID
	Name     string
	Row, Col int
}

// Error implements error.
func (e *UnreachableLandmarkError) Error() string {
	return fmt.Sprintf("%v: %q at (%d,%d)", ErrUnreachable, e.Name, e.Row, e.Col)
}

// Unwrap lets errors.Is match ErrUnreachable.
func (e *UnreachableLandmarkError) Unwrap() error { return ErrUnreachable }

// Edge is a direct landmark-to-landmark distance.
type Edge struct {
	To   grid.LandmarkID
	Dist int
}

// Table is the Landmark Distance Table.
type Table struct {
	reg   *grid.Registry
	edges [][]Edge // by landmark ID, sorted by (Dist, To)

	once    sync.Once
	closure *Closure
}

// Build reads every landmark cell's entries from a converged propagator,
// drops the self entry and sorts the rest by (distance, ID).
// Complexity: O(L² log L).
func Build(g *grid.Grid, p *propagate.Propagator) (*Table, error) {
	if g == nil || p == nil {
		return nil, ErrNilInput
	}
	if p.Grid() != g {
		return nil, ErrMismatch
	}
	if !p.Converged() {
		return nil, fmt.Errorf("landmark: %w", propagate.ErrNotConverged)
	}

	reg := g.Registry()
	t := &Table{reg: reg, edges: make([][]Edge, reg.Len())}
	for id := grid.LandmarkID(0); int(id) < reg.Len(); id++ {
		var out []Edge
		for _, e := range p.Distances(reg.Landmark(id).Pos) {
			if e.Landmark != id {
				out = append(out, Edge{To: e.Landmark, Dist: e.Dist})
			}
		}
		sort.Slice(out, func(i, j int) bool {
			if out[i].Dist != out[j].Dist {
				return out[i].Dist < out[j].Dist
			}
			return out[i].To < out[j].To
		})
		t.edges[id] = out
	}

	return t, nil
}

// Registry returns the landmark registry the table was built for.
func (t *Table) Registry() *grid.Registry { return t.reg }

// Len returns the number of landmarks.
func (t *Table) Len() int { return len(t.edges) }

// Edges returns the direct edges from a landmark, nearest first.
// The slice is shared; callers must not modify it.
func (t *Table) Edges(from grid.LandmarkID) []Edge { return t.edges[from] }

// Reachable returns the direct edges from a landmark as a map.
func (t *Table) Reachable(from grid.LandmarkID) map[grid.LandmarkID]int {
	out := make(map[grid.LandmarkID]int, len(t.edges[from]))
	for _, e := range t.edges[from] {
		out[e.To] = e.Dist
	}

	return out
}

// Distance returns the direct distance between two landmarks.
// Complexity: O(degree).
func (t *Table) Distance(a, b grid.LandmarkID) (int, bool) {
	for _, e := range t.edges[a] {
		if e.To == b {
			return e.Dist, true
		}
	}

	return 0, false
}

// Unreachable returns one *UnreachableLandmarkError per landmark with no
// direct edges, in ID order.
func (t *Table) Unreachable() []error {
	var out []error
	for id, es := range t.edges {
		if len(es) > 0 {
			continue
		}
		l := t.reg.Landmark(grid.LandmarkID(id))
		out = append(out, &UnreachableLandmarkError{ID: l.ID, Name: l.Label(), Row: l.Row, Col: l.Col})
	}

	return out
}
