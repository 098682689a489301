package propagate

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/keymaze/grid"
)

// cell classes, precomputed once so sweeps never consult the registry.
const (
	closed  uint8 = iota // wall, void, label: never holds entries
	open                 // floor or start: forwards everything it knows
	barrier              // key or lock: exposes itself at 1
	portal               // portal label: exposes itself at 0
)

// Propagator owns the per-cell distance maps of one grid.
// It is not safe for concurrent use; Parallel mode synchronises internally.
type Propagator struct {
	g    *grid.Grid
	opts Options

	class []uint8
	dist  [][]Entry // per cell, sorted by Landmark; never mutated in place
	next  [][]Entry // Parallel mode write buffer
	sc    *scratch

	sweeps    int
	updates   int
	converged bool
}

// New prepares a Propagator with every landmark cell seeded with itself at 0.
// Complexity: O(R×C).
func New(g *grid.Grid, opts ...Option) (*Propagator, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.MaxSweeps == 0 {
		o.MaxSweeps = g.Rows*g.Cols + 1
	}

	n := g.Len()
	p := &Propagator{
		g:     g,
		opts:  o,
		class: make([]uint8, n),
		dist:  make([][]Entry, n),
		sc:    newScratch(g.Registry().Len()),
	}
	reg := g.Registry()
	for i := 0; i < n; i++ {
		c := g.Cell(i)
		switch {
		case !c.Passable():
			p.class[i] = closed
		case c.Kind == grid.Floor:
			p.class[i] = open
		default:
			switch reg.Landmark(c.Landmark).Role {
			case grid.Start:
				p.class[i] = open
			case grid.Portal:
				p.class[i] = portal
			default:
				p.class[i] = barrier
			}
			p.dist[i] = []Entry{{Landmark: c.Landmark, Dist: 0}}
		}
	}
	if o.Mode == Parallel {
		p.next = make([][]Entry, n)
	}

	return p, nil
}

// Grid returns the grid being propagated.
func (p *Propagator) Grid() *grid.Grid { return p.g }

// Converged reports whether the last sweep changed nothing.
func (p *Propagator) Converged() bool { return p.converged }

// Distances returns a copy of the entries known at cell, sorted by landmark.
func (p *Propagator) Distances(cell int) []Entry {
	out := make([]Entry, len(p.dist[cell]))
	copy(out, p.dist[cell])

	return out
}

// Distance returns the known distance from cell to landmark id.
// Complexity: O(log L).
func (p *Propagator) Distance(cell int, id grid.LandmarkID) (int, bool) {
	es := p.dist[cell]
	i := sort.Search(len(es), func(i int) bool { return es[i].Landmark >= id })
	if i < len(es) && es[i].Landmark == id {
		return es[i].Dist, true
	}

	return 0, false
}

// Stats reports the work done so far.
func (p *Propagator) Stats() Stats {
	entries := 0
	for _, es := range p.dist {
		entries += len(es)
	}
	workers := 1
	if p.opts.Mode == Parallel {
		workers = p.workers()
	}

	return Stats{
		Sweeps:  p.sweeps,
		Updates: p.updates,
		Entries: entries,
		Mode:    p.opts.Mode,
		Workers: workers,
	}
}

// Run sweeps until the fixed point, the sweep limit or cancellation.
// Calling Run on a converged Propagator returns immediately.
func (p *Propagator) Run() (Stats, error) {
	for !p.converged {
		if err := p.opts.Ctx.Err(); err != nil {
			return p.Stats(), fmt.Errorf("%w: after %d sweeps: %w", ErrCanceled, p.sweeps, err)
		}
		if p.sweeps >= p.opts.MaxSweeps {
			return p.Stats(), fmt.Errorf("%w: %d sweeps", ErrNotConverged, p.sweeps)
		}
		p.Sweep()
	}

	return p.Stats(), nil
}

// Sweep performs one full pass and returns the number of cells whose map
// changed. Zero means the fixed point has been reached.
// Complexity: O(R×C×L).
func (p *Propagator) Sweep() int {
	var changed int
	if p.opts.Mode == Parallel {
		changed = p.sweepParallel()
	} else {
		changed = p.sweepSequential()
	}

	p.sweeps++
	p.updates += changed
	p.converged = changed == 0
	p.opts.OnSweep(p.sweeps, changed)

	return changed
}

// sweepSequential relaxes cells in reading order, in place.
func (p *Propagator) sweepSequential() int {
	changed := 0
	for u := range p.dist {
		if p.class[u] == closed {
			continue
		}
		if out, ok := p.relax(u, p.dist, p.sc); ok {
			p.dist[u] = out
			changed++
		}
	}

	return changed
}

// relax computes the new map of cell u from src. It returns the fresh slice
// and true when anything was added or shortened.
func (p *Propagator) relax(u int, src [][]Entry, s *scratch) ([]Entry, bool) {
	for _, e := range src[u] {
		s.offer(e.Landmark, e.Dist)
	}

	changed := false
	cu := p.class[u]
	s.nbuf = p.g.Neighbors(u, s.nbuf[:0])
	for _, v := range s.nbuf {
		switch p.class[v] {
		case closed:
			continue
		case barrier:
			changed = s.offer(p.g.Cell(v).Landmark, 1) || changed
		case portal:
			// label pairs standing side by side are not a path
			if cu == portal {
				continue
			}
			changed = s.offer(p.g.Cell(v).Landmark, 0) || changed
		case open:
			for _, e := range src[v] {
				changed = s.offer(e.Landmark, e.Dist+1) || changed
			}
		}
	}

	if !changed {
		s.reset()
		return src[u], false
	}

	return s.collect(), true
}

// scratch is a dense landmark-indexed buffer used to merge one cell's
// proposals without allocating a map.
type scratch struct {
	best    []int // -1 = unknown
	touched []grid.LandmarkID
	nbuf    []int
}

func newScratch(landmarks int) *scratch {
	s := &scratch{
		best:    make([]int, landmarks),
		touched: make([]grid.LandmarkID, 0, landmarks),
		nbuf:    make([]int, 0, 4),
	}
	for i := range s.best {
		s.best[i] = -1
	}

	return s
}

// offer records d for id and reports whether it was new or shorter.
func (s *scratch) offer(id grid.LandmarkID, d int) bool {
	cur := s.best[id]
	switch {
	case cur < 0:
		s.touched = append(s.touched, id)
	case d >= cur:
		return false
	}
	s.best[id] = d

	return true
}

// collect returns the buffered entries sorted by landmark and resets s.
func (s *scratch) collect() []Entry {
	sort.Slice(s.touched, func(i, j int) bool { return s.touched[i] < s.touched[j] })
	out := make([]Entry, len(s.touched))
	for i, id := range s.touched {
		out[i] = Entry{Landmark: id, Dist: s.best[id]}
	}
	s.reset()

	return out
}

func (s *scratch) reset() {
	for _, id := range s.touched {
		s.best[id] = -1
	}
	s.touched = s.touched[:0]
}
