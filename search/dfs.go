package search

import (
	"math"
	"sort"

	"github.com/katalvlaran/keymaze/grid"
)

// dfsEngine holds the state of the depth-first strategy. One engine runs every
// stage; the incumbent carries over from stage to stage, so a later stage can
// only improve on an earlier one.
type dfsEngine struct {
	*problem
	opts  Options
	m     *meter
	best  *incumbent
	stats *Stats

	// budget is the repeat budget of the running stage; -1 disables every
	// heuristic filter (the exhaustive pass).
	budget int

	path   []grid.LandmarkID // landmarks visited, path[0] is the start
	visits []int             // occurrences of each landmark in path
	seen   map[state]int     // shortest distance each state was entered with
	cand   [][]candidate     // per-depth scratch for branching
}

// candidate is one way out of the current landmark.
type candidate struct {
	to    grid.LandmarkID
	dist  int
	score float64
}

// depthFirst runs the heuristic stages with budgets 0..RepeatCeiling, then
// the exhaustive pass. It reports whether the exhaustive pass ran to the end.
func depthFirst(p *problem, o Options, m *meter, best *incumbent, stats *Stats) bool {
	e := &dfsEngine{
		problem: p,
		opts:    o,
		m:       m,
		best:    best,
		stats:   stats,
		visits:  make([]int, len(p.edges)),
	}

	for b := 0; b <= o.RepeatCeiling; b++ {
		e.stage(b)
		if m.err != nil || (o.StopAtFirst && best.found()) {
			return false
		}
	}
	if !o.Exhaustive {
		return false
	}
	e.stage(-1)

	return m.err == nil
}

// stage runs one complete depth-first search with the given repeat budget.
func (e *dfsEngine) stage(budget int) {
	e.budget = budget
	e.seen = make(map[state]int)
	for i := range e.visits {
		e.visits[i] = 0
	}
	e.path = append(e.path[:0], e.start)
	e.visits[e.start] = 1

	before := e.stats.Expanded
	e.visit(e.start, 0, 0, false)
	e.stats.Stages++

	e.opts.OnStage(StageReport{
		Budget:   budget,
		Best:     e.best.dist,
		Expanded: e.stats.Expanded - before,
	})
}

// visit explores every continuation from at. gained tells whether arriving
// at at collected a new key.
func (e *dfsEngine) visit(at grid.LandmarkID, acc int, keys KeySet, gained bool) {
	if e.m.tick() {
		return
	}
	e.stats.Expanded++

	if keys == e.target {
		e.best.offer(acc, e.path)
		return
	}

	s := state{at: at, keys: keys}
	if prev, ok := e.seen[s]; ok && prev <= acc {
		e.stats.Pruned++
		return
	}
	e.seen[s] = acc

	if lb, ok := e.lowerBound(at, keys); !ok || !e.best.beats(acc+lb) {
		e.stats.Pruned++
		return
	}

	for _, c := range e.candidates(at, keys, gained) {
		if !e.best.beats(acc + c.dist) {
			e.stats.Pruned++
			continue
		}
		nk, got := e.collect(c.to, keys)

		e.path = append(e.path, c.to)
		e.visits[c.to]++
		e.visit(c.to, acc+c.dist, nk, got)
		e.visits[c.to]--
		e.path = e.path[:len(e.path)-1]

		if e.m.err != nil {
			return
		}
	}
}

// candidates lists the legal moves from at, in branching order.
//
// Every stage skips locks without their key. Heuristic stages also skip:
//   - the landmark two moves back (no back-and-forth pairs);
//   - the previous landmark, unless arriving here collected a key;
//   - landmarks already in the path more than budget times;
//
// and order moves by distance raised to the number of earlier visits, so fresh
// landmarks come first. The exhaustive pass keeps the table's (distance, ID)
// order.
func (e *dfsEngine) candidates(at grid.LandmarkID, keys KeySet, gained bool) []candidate {
	depth := len(e.path) - 1
	for len(e.cand) <= depth {
		e.cand = append(e.cand, nil)
	}
	out := e.cand[depth][:0]

	heuristic := e.budget >= 0
	n := len(e.path)
	for _, ed := range e.edges[at] {
		to := ed.To
		if to == at || !e.passable(to, keys) {
			continue
		}
		score := float64(ed.Dist)
		if heuristic {
			switch {
			case n > 2 && e.path[n-3] == to,
				!gained && n > 1 && e.path[n-2] == to,
				e.visits[to] > e.budget:
				e.stats.Pruned++
				continue
			}
			score = math.Pow(float64(ed.Dist), float64(e.visits[to]))
		}
		out = append(out, candidate{to: to, dist: ed.Dist, score: score})
	}
	if heuristic {
		sort.SliceStable(out, func(i, j int) bool { return out[i].score < out[j].score })
	}
	e.cand[depth] = out

	return out
}
