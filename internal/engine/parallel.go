package engine

import "sync"

// parallelize splits [start, stop) into contiguous ranges, one per
// worker, runs fn on each range in its own goroutine and blocks until
// every range has completed. Render operations rely on this join: no
// call returns while worker goroutines are still writing.
func parallelize(workers, start, stop int, fn func(lo, hi int)) {
	count := stop - start
	if count < 1 {
		return
	}
	if workers > count {
		workers = count
	}
	if workers <= 1 {
		fn(start, stop)
		return
	}

	chunk := (count + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := start; lo < stop; lo += chunk {
		hi := lo + chunk
		if hi > stop {
			hi = stop
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}
