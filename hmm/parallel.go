package hmm

import "sync"

// fillParallel runs the recurrence for t = 1..T-1, splitting the destination
// states of each step into contiguous chunks, one goroutine per chunk.
//
// Column t depends on all of column t-1, so a WaitGroup barrier closes every
// step before the next begins. Chunks write disjoint cells and read only the
// previous column, so no further synchronization is needed and the table is
// identical to the sequential fill.
func (m *Model) fillParallel(tr *trellis, obs []int, workers int) {
	if workers > m.s {
		workers = m.s
	}
	chunk := (m.s + workers - 1) / workers

	var wg sync.WaitGroup
	for t := 1; t < len(obs); t++ {
		for lo := 0; lo < m.s; lo += chunk {
			hi := lo + chunk
			if hi > m.s {
				hi = m.s
			}
			wg.Add(1)
			go func(t, o, lo, hi int) {
				defer wg.Done()
				m.fillRange(tr, t, o, lo, hi)
			}(t, obs[t], lo, hi)
		}
		wg.Wait()
	}
}
