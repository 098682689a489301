// Package propagate computes, for every cell of a grid.Grid, the shortest
// distance to each landmark reachable without crossing a second landmark.
//
// What:
//
//   - Every passable cell owns a small mapping landmark → distance, stored as a
//     slice of Entry sorted by landmark ID in a flat per-cell arena.
//   - Each landmark cell starts out knowing itself at distance 0.
//   - A sweep lets every passable cell pull from its four neighbours:
//     – wall, void and label neighbours contribute nothing;
//     – a key or lock neighbour contributes only its own identity at 1;
//     – a portal neighbour contributes only its own identity at 0, since the
//     step onto the label is the teleport step itself;
//     – floor and start neighbours contribute all their entries plus 1.
//     Two portal cells never pull from one another.
//   - Sweeps repeat until one changes nothing: the fixed point.
//
// Why:
//
//   - Landmarks are one-hop barriers, so the table built from the fixed point
//     holds exactly the direct edges of the landmark graph the order search
//     walks. Locks are edges like any other; whether they may be crossed is
//     the search's concern.
//
// Modes:
//
//   - Sequential (default) relaxes cells in reading order, in place, so fresh
//     values are visible within the same sweep.
//   - Parallel computes each sweep from one consistent snapshot and splits rows
//     across workers. It reaches the same fixed point, usually in more sweeps.
//
// Options:
//
//   - WithMode(Sequential|Parallel), WithWorkers(n)
//   - WithMaxSweeps(n): safety valve; default Rows×Cols+1
//   - WithContext(ctx): checked between sweeps
//   - WithOnSweep(fn): diagnostic hook called after each sweep
//
// Errors:
//
//   - ErrNilGrid, ErrOption for bad input.
//   - ErrNotConverged when MaxSweeps is reached first.
//   - ErrCanceled, wrapping ctx.Err(), on cancellation.
//
// Complexity:
//
//   - One sweep: O(R×C×L) where L is the landmark count.
//   - Sweeps: bounded by the longest landmark-free shortest path plus one.
package propagate
