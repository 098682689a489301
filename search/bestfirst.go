package search

import (
	"math"

	"github.com/zyedidia/generic/heap"

	"github.com/katalvlaran/keymaze/grid"
)

// trail is a persistent path: partial paths that share a prefix share nodes.
type trail struct {
	at   grid.LandmarkID
	prev *trail
}

// landmarks returns the path from the start to t, start first.
func (t *trail) landmarks() []grid.LandmarkID {
	n := 0
	for c := t; c != nil; c = c.prev {
		n++
	}
	out := make([]grid.LandmarkID, n)
	for c := t; c != nil; c = c.prev {
		n--
		out[n] = c.at
	}

	return out
}

// entry is one queued partial path.
type entry struct {
	state
	dist  int
	trail *trail
}

// score balances distance against progress: lower is more promising.
func (e *entry) score() float64 {
	return math.Sqrt(float64(e.dist)) / float64(e.keys.Count()+1)
}

// promising orders the queue by score, then distance, then key count (more first).
func promising(a, b *entry) bool {
	sa, sb := a.score(), b.score()
	if sa != sb {
		return sa < sb
	}
	if a.dist != b.dist {
		return a.dist < b.dist
	}

	return a.keys.Count() > b.keys.Count()
}

// bestFirst expands the most promising partial path until the queue drains.
// Whenever the queue outgrows QueueCapacity it is trimmed by key count. It
// reports whether the run was exact: drained without trimming or stopping.
func bestFirst(p *problem, o Options, m *meter, best *incumbent, stats *Stats) bool {
	q := heap.New[*entry](promising)
	seen := map[state]int{}

	root := &entry{state: state{at: p.start}, trail: &trail{at: p.start}}
	seen[root.state] = 0
	q.Push(root)

	trimmed := false
	for q.Size() > 0 {
		if m.tick() {
			return false
		}
		cur, _ := q.Pop()
		if d := seen[cur.state]; d < cur.dist {
			continue // stale: a shorter path to this state was queued later
		}
		if lb, ok := p.lowerBound(cur.at, cur.keys); !ok || !best.beats(cur.dist+lb) {
			stats.Pruned++
			continue
		}
		stats.Expanded++

		for _, ed := range p.edges[cur.at] {
			if ed.To == cur.at || !p.passable(ed.To, cur.keys) {
				continue
			}
			nd := cur.dist + ed.Dist
			if !best.beats(nd) {
				stats.Pruned++
				continue
			}
			nk, _ := p.collect(ed.To, cur.keys)
			next := &entry{state: state{at: ed.To, keys: nk}, dist: nd, trail: &trail{at: ed.To, prev: cur.trail}}
			if nk == p.target {
				best.offer(nd, next.trail.landmarks())
				continue
			}
			if prev, ok := seen[next.state]; ok && prev <= nd {
				stats.Pruned++
				continue
			}
			seen[next.state] = nd
			q.Push(next)
		}

		if q.Size() > o.QueueCapacity {
			before := q.Size()
			q = trim(q, o.QueueCapacity)
			if after := q.Size(); after < before {
				stats.Trimmed += before - after
				trimmed = true
				o.OnTrim(before, after)
			}
		}
	}

	return !trimmed
}

// trim keeps the entries holding the most keys: buckets by key count are
// kept from the highest down while they fit within capacity, and at least
// one bucket is always kept. Discarded states stay in the seen map, so the
// search still terminates.
// Complexity: O(N log N).
func trim(q *heap.Heap[*entry], capacity int) *heap.Heap[*entry] {
	var buckets [33][]*entry
	for q.Size() > 0 {
		e, _ := q.Pop()
		c := e.keys.Count()
		buckets[c] = append(buckets[c], e)
	}

	out := heap.New[*entry](promising)
	kept := 0
	for c := len(buckets) - 1; c >= 0; c-- {
		b := buckets[c]
		if len(b) == 0 {
			continue
		}
		if kept > 0 && kept+len(b) > capacity {
			break
		}
		for _, e := range b {
			out.Push(e)
		}
		kept += len(b)
	}

	return out
}
