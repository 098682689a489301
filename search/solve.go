package search

import (
	"context"
	"fmt"
	"math/bits"

	"github.com/katalvlaran/keymaze/grid"
	"github.com/katalvlaran/keymaze/landmark"
)

// state is a search position: where the agent stands and what it holds.
type state struct {
	at   grid.LandmarkID
	keys KeySet
}

// problem is the read-only view of a table both strategies share.
type problem struct {
	edges   [][]landmark.Edge
	start   grid.LandmarkID
	target  KeySet
	keyBit  []int8            // per landmark: key bit, -1 if not a key
	lockBit []int8            // per landmark: required key bit, -1 if not a lock
	keyAt   []grid.LandmarkID // per key bit: the key landmark
	closure *landmark.Closure // nil when the lower bound is off
}

func newProblem(t *landmark.Table, o Options) *problem {
	reg := t.Registry()
	n := t.Len()
	p := &problem{
		edges:   make([][]landmark.Edge, n),
		start:   reg.Start(),
		target:  KeySet(reg.KeyMask()),
		keyBit:  make([]int8, n),
		lockBit: make([]int8, n),
		keyAt:   make([]grid.LandmarkID, 32),
	}
	for id := 0; id < n; id++ {
		l := reg.Landmark(grid.LandmarkID(id))
		p.edges[id] = t.Edges(l.ID)
		p.keyBit[id], p.lockBit[id] = -1, -1
		switch l.Role {
		case grid.Key:
			p.keyBit[id] = int8(l.KeyBit)
			p.keyAt[l.KeyBit] = l.ID
		case grid.Lock:
			p.lockBit[id] = int8(l.KeyBit)
		}
	}
	if o.LowerBound {
		p.closure = t.Closure()
	}

	return p
}

// passable reports whether landmark to may be entered holding keys.
// A lock whose key does not exist is never passable.
func (p *problem) passable(to grid.LandmarkID, keys KeySet) bool {
	b := p.lockBit[to]
	return b < 0 || keys.Has(int(b))
}

// collect returns the key set after arriving at to, and whether it grew.
func (p *problem) collect(to grid.LandmarkID, keys KeySet) (KeySet, bool) {
	b := p.keyBit[to]
	if b < 0 || keys.Has(int(b)) {
		return keys, false
	}

	return keys.With(int(b)), true
}

// lowerBound returns a distance no completion from at can beat: the closure
// distance to the farthest missing key. ok is false when a missing key is
// unreachable even with every lock open.
// Complexity: O(K).
func (p *problem) lowerBound(at grid.LandmarkID, keys KeySet) (lb int, ok bool) {
	if p.closure == nil {
		return 0, true
	}
	for missing := p.target &^ keys; missing != 0; missing &= missing - 1 {
		b := bits.TrailingZeros32(uint32(missing))
		d, ok := p.closure.Dist(at, p.keyAt[b])
		if !ok {
			return 0, false
		}
		lb = max(lb, d)
	}

	return lb, true
}

// meter charges expansions against MaxSteps and polls the context.
type meter struct {
	ctx   context.Context
	max   int
	steps int
	err   error
}

// tick charges one step and reports whether the search must stop.
func (m *meter) tick() bool {
	if m.err != nil {
		return true
	}
	m.steps++
	if m.max > 0 && m.steps > m.max {
		m.err = fmt.Errorf("%w: %d steps", ErrBudgetExceeded, m.max)
		return true
	}
	if m.steps&4095 == 0 {
		if err := m.ctx.Err(); err != nil {
			m.err = fmt.Errorf("%w: %w", ErrBudgetExceeded, err)
			return true
		}
	}

	return false
}

// incumbent is the best complete solution found so far.
type incumbent struct {
	dist int // -1 until the first solution
	path []grid.LandmarkID
	hook func(int, []grid.LandmarkID)
}

func (b *incumbent) found() bool { return b.dist >= 0 }

// beats reports whether a partial distance can still lead to a strictly
// better solution.
func (b *incumbent) beats(d int) bool { return b.dist < 0 || d < b.dist }

// offer records a complete solution if it is strictly better.
func (b *incumbent) offer(d int, path []grid.LandmarkID) bool {
	if !b.beats(d) {
		return false
	}
	b.dist = d
	b.path = append(b.path[:0], path...)
	b.hook(d, append([]grid.LandmarkID(nil), path...))

	return true
}

// Solve finds the shortest landmark sequence from the start that collects
// every key, never entering a lock before holding its key.
//
// Errors:
//   - ErrNilTable, ErrOption for bad input.
//   - ErrUnsolvable when an exact search proves no solution exists.
//   - ErrExhausted when limited stages or a trimmed queue found nothing.
//   - ErrBudgetExceeded, with the best result so far, on MaxSteps or ctx.
func Solve(t *landmark.Table, opts ...Option) (Result, error) {
	if t == nil {
		return Result{}, ErrNilTable
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}

	p := newProblem(t, o)
	m := &meter{ctx: o.Ctx, max: o.MaxSteps}
	if err := o.Ctx.Err(); err != nil {
		m.err = fmt.Errorf("%w: %w", ErrBudgetExceeded, err)
	}
	best := &incumbent{dist: -1, hook: o.OnIncumbent}
	stats := Stats{Strategy: o.Strategy}

	var exact bool
	switch {
	case m.err != nil:
	case p.target == 0:
		best.offer(0, []grid.LandmarkID{p.start})
		exact = true
	case o.Strategy == BestFirst:
		exact = bestFirst(p, o, m, best, &stats)
	default:
		exact = depthFirst(p, o, m, best, &stats)
	}
	stats.Steps = m.steps

	res := Result{Stats: stats}
	if best.found() {
		res.Found = true
		res.Distance = best.dist
		res.Path = best.path
		res.Exact = exact && m.err == nil
	}
	switch {
	case m.err != nil:
		return res, m.err
	case best.found():
		return res, nil
	case exact:
		return res, ErrUnsolvable
	default:
		return res, ErrExhausted
	}
}
