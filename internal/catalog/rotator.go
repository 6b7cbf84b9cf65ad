package catalog

import (
	"sync"
	"time"
)

// Rotator cycles an image index on a fixed interval, the only recurring
// background activity in the storefront. It must be stopped when its
// owning view goes away; Stop is idempotent. A rotator over zero or one
// images never ticks.
type Rotator struct {
	mu   sync.Mutex
	idx  int
	n    int
	tick *time.Ticker
	done chan struct{}
	once sync.Once
}

func NewRotator(n int, interval time.Duration) *Rotator {
	r := &Rotator{n: n, done: make(chan struct{})}
	if n <= 1 {
		return r
	}
	r.tick = time.NewTicker(interval)
	go r.run()
	return r
}

func (r *Rotator) run() {
	for {
		select {
		case <-r.tick.C:
			r.mu.Lock()
			r.idx = (r.idx + 1) % r.n
			r.mu.Unlock()
		case <-r.done:
			return
		}
	}
}

// Index is the image index to display right now.
func (r *Rotator) Index() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.idx
}

// Stop cancels the rotation goroutine and its ticker.
func (r *Rotator) Stop() {
	r.once.Do(func() {
		if r.tick != nil {
			r.tick.Stop()
		}
		close(r.done)
	})
}
