package concurrency

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForEachVisitsEveryIndex(t *testing.T) {
	seen := make([]int32, 100)
	ForEach(context.Background(), 4, len(seen), func(_ context.Context, i int) {
		atomic.AddInt32(&seen[i], 1)
	})
	for i, n := range seen {
		assert.Equal(t, int32(1), n, "index %d", i)
	}
}

func TestForEachZeroTasks(t *testing.T) {
	called := false
	ForEach(context.Background(), 4, 0, func(_ context.Context, _ int) {
		called = true
	})
	assert.False(t, called)
}

func TestForEachCancelledContextStopsDispatch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var count int32
	ForEach(ctx, 2, 1000, func(_ context.Context, _ int) {
		atomic.AddInt32(&count, 1)
	})
	assert.Less(t, atomic.LoadInt32(&count), int32(1000))
}
