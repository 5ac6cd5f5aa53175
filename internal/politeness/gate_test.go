package politeness

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateSpacing(t *testing.T) {
	t.Parallel()

	const (
		interval = 50 * time.Millisecond
		acquires = 5
		// scheduler wake-up jitter can shift when a timestamp is taken
		slack = 10 * time.Millisecond
	)

	g := New(interval)
	var (
		mu    sync.Mutex
		times []time.Time
		wg    sync.WaitGroup
	)
	for i := 0; i < acquires; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := g.Acquire(context.Background()); err != nil {
				t.Errorf("acquire: %v", err)
				return
			}
			now := time.Now()
			mu.Lock()
			times = append(times, now)
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.Len(t, times, acquires)
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })
	for i := 1; i < len(times); i++ {
		gap := times[i].Sub(times[i-1])
		assert.GreaterOrEqual(t, gap, interval-slack,
			"dispatches %d and %d only %v apart", i-1, i, gap)
	}
}

func TestGateDisabled(t *testing.T) {
	t.Parallel()

	g := New(0)
	start := time.Now()
	for i := 0; i < 100; i++ {
		require.NoError(t, g.Acquire(context.Background()))
	}
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestGateCancellation(t *testing.T) {
	t.Parallel()

	g := New(time.Hour)
	require.NoError(t, g.Acquire(context.Background())) // first grant is free

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := g.Acquire(ctx)
	assert.Error(t, err)
}
