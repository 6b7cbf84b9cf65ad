// Package concurrency provides a small fan-out helper for index-based work.
package concurrency

import (
	"context"
	"sync"
)

// ForEach runs fn for every index in [0, n) across at most workers
// goroutines and waits for completion. Dispatch stops early when ctx is
// cancelled; fn calls already in flight still finish.
func ForEach(ctx context.Context, workers, n int, fn func(ctx context.Context, i int)) {
	if n <= 0 {
		return
	}
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	idx := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range idx {
				fn(ctx, i)
			}
		}()
	}

	for i := 0; i < n; i++ {
		select {
		case idx <- i:
		case <-ctx.Done():
			close(idx)
			wg.Wait()
			return
		}
	}
	close(idx)
	wg.Wait()
}
