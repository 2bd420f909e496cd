package engine

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-countdown/status"
)

func newTestLoop(t *testing.T) (*Loop, FakeClock, *status.Registry) {
	t.Helper()
	clock := clockwork.NewFakeClockAt(time.Date(2025, 1, 1, 9, 55, 0, 0, time.UTC))
	reg := status.NewRegistry()
	loop := NewLoop(clock, reg)
	loop.Start()
	t.Cleanup(loop.Stop)
	return loop, clock, reg
}

// TestLoopPostPreservesOrder verifies posted tasks run in FIFO order on one goroutine
func TestLoopPostPreservesOrder(t *testing.T) {
	loop, _, reg := newTestLoop(t)

	var mu sync.Mutex
	var got []int
	done := make(chan struct{})

	for i := 0; i < 50; i++ {
		i := i
		loop.Post(func() {
			mu.Lock()
			got = append(got, i)
			mu.Unlock()
			if i == 49 {
				close(done)
			}
		})
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("posted tasks did not run")
	}

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 50)
	for i, v := range got {
		assert.Equal(t, i, v)
	}
	assert.Eventually(t, func() bool {
		return reg.Ints.Get(status.KeyLoopTasks).Load() == 50
	}, time.Second, 5*time.Millisecond)
}

// TestLoopScheduleAfterFiresOnAdvance verifies timers fire only once the clock passes the deadline
func TestLoopScheduleAfterFiresOnAdvance(t *testing.T) {
	loop, clock, _ := newTestLoop(t)

	var fired atomic.Int32
	loop.ScheduleAfter(20*time.Millisecond, func() { fired.Add(1) })

	clock.Advance(10 * time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())

	clock.Advance(10 * time.Millisecond)
	assert.Eventually(t, func() bool { return fired.Load() == 1 }, time.Second, 5*time.Millisecond)
}

// TestLoopCancelBeforeFire verifies a cancelled task never runs
func TestLoopCancelBeforeFire(t *testing.T) {
	loop, clock, _ := newTestLoop(t)

	var fired atomic.Int32
	task := loop.ScheduleAfter(20*time.Millisecond, func() { fired.Add(1) })

	assert.True(t, task.Cancel())
	assert.False(t, task.Cancel())

	clock.Advance(50 * time.Millisecond)

	// Flush the loop with a marker task
	flushed := make(chan struct{})
	loop.Post(func() { close(flushed) })
	<-flushed

	assert.Equal(t, int32(0), fired.Load())
}

// TestLoopCancelAfterTimerPostedBeforeRun verifies cancellation is checked on the loop before the callback runs
func TestLoopCancelAfterTimerPostedBeforeRun(t *testing.T) {
	loop, clock, _ := newTestLoop(t)

	// Block the loop so the timer callback queues behind us
	release := make(chan struct{})
	blocked := make(chan struct{})
	loop.Post(func() {
		close(blocked)
		<-release
	})
	<-blocked

	var fired atomic.Int32
	task := loop.ScheduleAfter(time.Millisecond, func() { fired.Add(1) })
	clock.Advance(time.Millisecond)

	// Give the fake clock's callback time to post onto the blocked loop
	time.Sleep(20 * time.Millisecond)
	assert.True(t, task.Cancel())
	close(release)

	flushed := make(chan struct{})
	loop.Post(func() { close(flushed) })
	<-flushed

	assert.Equal(t, int32(0), fired.Load())
}

// TestLoopStopIsIdempotent verifies Stop flags shutdown and can be called repeatedly
func TestLoopStopIsIdempotent(t *testing.T) {
	loop, _, _ := newTestLoop(t)

	assert.False(t, loop.ShuttingDown())
	loop.Stop()
	loop.Stop()
	assert.True(t, loop.ShuttingDown())
}

// TestLoopNowFollowsClock verifies the loop reports the injected clock's time
func TestLoopNowFollowsClock(t *testing.T) {
	loop, clock, _ := newTestLoop(t)

	before := loop.Now()
	clock.Advance(3 * time.Second)
	assert.Equal(t, 3*time.Second, loop.Now().Sub(before))
}
