package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var manualEpoch = time.Date(2025, 1, 1, 9, 55, 0, 0, time.UTC)

// TestManualLoopFiresInDueOrder verifies due-time ordering with ties broken by scheduling order
func TestManualLoopFiresInDueOrder(t *testing.T) {
	m := NewManualLoop(manualEpoch)

	var order []string
	m.ScheduleAfter(30*time.Millisecond, func() { order = append(order, "c") })
	m.ScheduleAfter(10*time.Millisecond, func() { order = append(order, "a") })
	m.ScheduleAfter(30*time.Millisecond, func() { order = append(order, "d") })
	m.ScheduleAfter(20*time.Millisecond, func() { order = append(order, "b") })

	m.Advance(25 * time.Millisecond)
	assert.Equal(t, []string{"a", "b"}, order)
	assert.Equal(t, 2, m.Pending())

	m.Advance(5 * time.Millisecond)
	assert.Equal(t, []string{"a", "b", "c", "d"}, order)
	assert.Equal(t, 0, m.Pending())
}

// TestManualLoopClockAtDueTime verifies callbacks observe their own due time
func TestManualLoopClockAtDueTime(t *testing.T) {
	m := NewManualLoop(manualEpoch)

	var seen time.Time
	m.ScheduleAfter(40*time.Millisecond, func() { seen = m.Now() })
	m.Advance(time.Second)

	assert.Equal(t, manualEpoch.Add(40*time.Millisecond), seen)
	assert.Equal(t, manualEpoch.Add(time.Second), m.Now())
}

// TestManualLoopSelfRescheduling verifies a task that reschedules itself keeps firing within one Advance
func TestManualLoopSelfRescheduling(t *testing.T) {
	m := NewManualLoop(manualEpoch)

	count := 0
	var tick func()
	tick = func() {
		count++
		m.ScheduleAfter(20*time.Millisecond, tick)
	}
	m.ScheduleAfter(20*time.Millisecond, tick)

	m.Advance(time.Second)
	assert.Equal(t, 50, count)
	assert.Equal(t, 1, m.Pending())
}

// TestManualLoopCancel verifies cancelled tasks are skipped and reported correctly
func TestManualLoopCancel(t *testing.T) {
	m := NewManualLoop(manualEpoch)

	fired := false
	task := m.ScheduleAfter(10*time.Millisecond, func() { fired = true })

	require.True(t, task.Cancel())
	assert.False(t, task.Cancel())

	m.Advance(time.Second)
	assert.False(t, fired)

	ran := m.ScheduleAfter(10*time.Millisecond, func() {})
	m.Advance(time.Second)
	assert.False(t, ran.Cancel())
}

// TestManualLoopPostDefersInsideCallback verifies run-to-completion ordering of posted work
func TestManualLoopPostDefersInsideCallback(t *testing.T) {
	m := NewManualLoop(manualEpoch)

	var order []string
	m.Post(func() {
		m.Post(func() { order = append(order, "inner") })
		order = append(order, "outer")
	})

	assert.Equal(t, []string{"outer", "inner"}, order)
}

// TestManualLoopShutdown verifies the shutdown flag
func TestManualLoopShutdown(t *testing.T) {
	m := NewManualLoop(manualEpoch)
	assert.False(t, m.ShuttingDown())
	m.Shutdown()
	assert.True(t, m.ShuttingDown())
}
