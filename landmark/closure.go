package landmark

import "github.com/katalvlaran/keymaze/grid"

// inf marks an unreachable pair in the closure matrix.
const inf = int(^uint(0) >> 2)

// Closure holds all-pairs shortest landmark distances over the table's
// edges, locks included as ordinary waypoints. It never overestimates a
// lock-respecting distance, which makes it an admissible bound for search.
type Closure struct {
	n    int
	data []int // row-major n×n
}

// Closure computes (once) and returns the all-pairs closure of t.
// Complexity: O(L³) time, O(L²) memory.
func (t *Table) Closure() *Closure {
	t.once.Do(func() {
		n := len(t.edges)
		c := &Closure{n: n, data: make([]int, n*n)}
		for i := range c.data {
			c.data[i] = inf
		}
		for i := 0; i < n; i++ {
			c.data[i*n+i] = 0
			for _, e := range t.edges[i] {
				if e.Dist < c.data[i*n+int(e.To)] {
					c.data[i*n+int(e.To)] = e.Dist
				}
			}
		}
		floydWarshall(c)
		t.closure = c
	})

	return t.closure
}

// floydWarshall relaxes every pair through every intermediate landmark, in
// place, in k→i→j order with strict improvement only.
func floydWarshall(c *Closure) {
	n, data := c.n, c.data
	for k := 0; k < n; k++ {
		baseK := k * n
		for i := 0; i < n; i++ {
			ik := data[i*n+k]
			if ik == inf {
				continue
			}
			baseI := i * n
			for j := 0; j < n; j++ {
				kj := data[baseK+j]
				if kj == inf {
					continue
				}
				if cand := ik + kj; cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}
}

// Dist returns the shortest distance from a to b through any landmarks.
func (c *Closure) Dist(a, b grid.LandmarkID) (int, bool) {
	d := c.data[int(a)*c.n+int(b)]
	if d == inf {
		return 0, false
	}

	return d, true
}
