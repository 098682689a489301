package portal

import (
	"container/heap"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/keymaze/grid"
	"github.com/katalvlaran/keymaze/landmark"
)

// ShortestRoute finds the shortest walk from AA to ZZ over a portal maze's
// landmark table.
//
// Walking from one endpoint to another portal label costs the table distance;
// the step onto the label is the teleport step, after which the walk resumes
// from the partner endpoint. The final step onto ZZ's label is not a move, so
// Steps is the sum of hop distances minus one.
//
// Errors:
//   - ErrNilTable, ErrOption, ErrNotPortalGrid for bad input.
//   - ErrNoRoute when ZZ is unreachable under the chosen rules.
//   - ErrBudgetExceeded on MaxSteps or a cancelled context.
//
// Complexity:
//   - Time:  O((S + T) log S) where S = endpoints × levels and T the table edges per level.
//   - Space: O(S).
func ShortestRoute(t *landmark.Table, opts ...Option) (Route, error) {
	if t == nil {
		return Route{}, ErrNilTable
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Route{}, cfg.err
	}

	reg := t.Registry()
	if reg.Exit() == grid.NoLandmark {
		return Route{}, ErrNotPortalGrid
	}
	if !cfg.Recursive {
		cfg.MaxDepth = 0
	} else if cfg.MaxDepth == 0 {
		cfg.MaxDepth = t.Len()
	}

	r := &runner{
		t:       t,
		reg:     reg,
		options: cfg,
		dist:    make(map[node]int),
		prev:    make(map[node]node),
		settled: mapset.New[node](),
	}

	return r.run()
}

// node is a search state: standing at endpoint at on the given level. For a
// portal, at is the endpoint the walk resumes from after the teleport.
type node struct {
	at    grid.LandmarkID
	depth int
}

// runner holds the mutable state of one search.
type runner struct {
	t       *landmark.Table
	reg     *grid.Registry
	options Options
	dist    map[node]int
	prev    map[node]node
	settled mapset.Set[node]
	pq      nodePQ
}

func (r *runner) run() (Route, error) {
	src := node{at: r.reg.Start()}
	exit := node{at: r.reg.Exit()}
	r.dist[src] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{n: src, dist: 0})

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.n
		if r.settled.Has(u) {
			continue
		}
		r.settled.Put(u)

		if u == exit {
			return r.route(exit), nil
		}
		if m := r.options.MaxSteps; m > 0 && r.settled.Size() > m {
			return Route{}, fmt.Errorf("%w: %d states", ErrBudgetExceeded, m)
		}
		if r.settled.Size()&1023 == 0 {
			if err := r.options.Ctx.Err(); err != nil {
				return Route{}, fmt.Errorf("%w: %w", ErrBudgetExceeded, err)
			}
		}

		r.relax(u, item.dist)
	}

	return Route{}, ErrNoRoute
}

// relax pushes every endpoint reachable by walking from u to a portal label.
func (r *runner) relax(u node, d int) {
	for _, e := range r.t.Edges(u.at) {
		v, ok := r.transit(e.To, u.depth)
		if !ok {
			continue
		}
		nd := d + e.Dist
		if old, seen := r.dist[v]; seen && nd >= old {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{n: v, dist: nd})
	}
}

// transit resolves stepping onto label id at the given level: ZZ ends the
// walk, a paired portal moves to its partner, anything else is a wall.
func (r *runner) transit(id grid.LandmarkID, depth int) (node, bool) {
	l := r.reg.Landmark(id)
	switch l.Name {
	case grid.ExitName:
		return node{at: id}, depth == 0
	case grid.EntranceName:
		return node{}, false
	}
	partner, ok := r.reg.Partner(id)
	if !ok {
		return node{}, false
	}
	if !r.options.Recursive {
		return node{at: partner}, true
	}

	next := depth + 1
	if l.Dir == grid.Outer {
		next = depth - 1
	}
	if next < 0 || next > r.options.MaxDepth {
		return node{}, false
	}

	return node{at: partner, depth: next}, true
}

// route rebuilds the hop list ending at exit.
func (r *runner) route(exit node) Route {
	var chain []node
	for n := exit; ; n = r.prev[n] {
		chain = append(chain, n)
		if n.at == r.reg.Start() && n.depth == 0 {
			break
		}
	}

	out := Route{Steps: r.dist[exit] - 1, Settled: r.settled.Size()}
	for i := len(chain) - 1; i >= 0; i-- {
		n := chain[i]
		// a portal hop names the label walked onto, on the level it was entered from
		id, depth := n.at, n.depth
		if i < len(chain)-1 && n.at != r.reg.Exit() {
			id, _ = r.reg.Partner(n.at)
			depth = chain[i+1].depth
		}
		out.Hops = append(out.Hops, Hop{Landmark: id, Label: r.reg.Landmark(id).Label(), Depth: depth})
		out.Deepest = max(out.Deepest, n.depth)
	}

	return out
}

// nodeItem is a state and its tentative distance in the priority queue.
type nodeItem struct {
	n    node
	dist int
}

// nodePQ is a min-heap of *nodeItem ordered by dist; stale entries are
// skipped on pop (lazy decrease-key).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
