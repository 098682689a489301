package propagate

import "sync"

// workers returns the goroutine count actually used: never more than rows.
func (p *Propagator) workers() int {
	return max(1, min(p.opts.Workers, p.g.Rows))
}

// sweepParallel computes the whole sweep from the current snapshot into the
// write buffer, then swaps the two. Rows are split into contiguous bands, one
// per worker; each worker owns its scratch and writes only its band.
func (p *Propagator) sweepParallel() int {
	w := p.workers()
	cols := p.g.Cols
	band := (p.g.Rows + w - 1) / w
	counts := make([]int, w)

	var wg sync.WaitGroup
	for k := 0; k < w; k++ {
		lo, hi := k*band*cols, min((k+1)*band, p.g.Rows)*cols
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(k, lo, hi int) {
			defer wg.Done()
			s := newScratch(len(p.sc.best))
			for u := lo; u < hi; u++ {
				if p.class[u] == closed {
					p.next[u] = nil
					continue
				}
				out, ok := p.relax(u, p.dist, s)
				if ok {
					counts[k]++
				}
				p.next[u] = out
			}
		}(k, lo, hi)
	}
	wg.Wait()

	p.dist, p.next = p.next, p.dist
	changed := 0
	for _, c := range counts {
		changed += c
	}

	return changed
}
