package engine

import (
	"sort"
	"time"

	"github.com/jonboulle/clockwork"
)

// FakeClock is the subset of clockwork's fake clock the manual loop drives
type FakeClock interface {
	clockwork.Clock
	Advance(d time.Duration)
}

// ManualLoop is a deterministic single-threaded Scheduler for tests and headless hosts
// Time only moves through Advance; due tasks fire in due-time order, ties in scheduling order
type ManualLoop struct {
	clock FakeClock

	timers    []*manualTask
	posted    []func()
	executing bool
	closing   bool
	seq       uint64
}

// NewManualLoop creates a manual loop whose clock starts at start
func NewManualLoop(start time.Time) *ManualLoop {
	return &ManualLoop{
		clock: clockwork.NewFakeClockAt(start),
	}
}

// Clock returns the underlying fake clock
func (m *ManualLoop) Clock() FakeClock {
	return m.clock
}

// Now implements Scheduler
func (m *ManualLoop) Now() time.Time {
	return m.clock.Now()
}

// ShuttingDown implements Scheduler
func (m *ManualLoop) ShuttingDown() bool {
	return m.closing
}

// Shutdown simulates host teardown, tasks keep firing but observe ShuttingDown
func (m *ManualLoop) Shutdown() {
	m.closing = true
}

// Post implements Scheduler
// Runs immediately unless a callback is executing, then runs after it returns
func (m *ManualLoop) Post(fn func()) {
	m.posted = append(m.posted, fn)
	if m.executing {
		return
	}

	m.executing = true
	for len(m.posted) > 0 {
		next := m.posted[0]
		m.posted = m.posted[1:]
		next()
	}
	m.executing = false
}

// ScheduleAfter implements Scheduler
func (m *ManualLoop) ScheduleAfter(d time.Duration, fn func()) Task {
	m.seq++
	task := &manualTask{
		due: m.clock.Now().Add(d),
		seq: m.seq,
		fn:  fn,
	}
	m.timers = append(m.timers, task)
	return task
}

// Pending returns the number of scheduled tasks that have neither fired nor been cancelled
func (m *ManualLoop) Pending() int {
	n := 0
	for _, t := range m.timers {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// Advance moves time forward by d, firing every task that comes due on the way
// The clock is positioned at each task's due time while it runs
func (m *ManualLoop) Advance(d time.Duration) {
	target := m.clock.Now().Add(d)

	for {
		task := m.nextDue(target)
		if task == nil {
			break
		}
		if wait := task.due.Sub(m.clock.Now()); wait > 0 {
			m.clock.Advance(wait)
		}
		m.Post(func() {
			if task.cancelled {
				return
			}
			task.fired = true
			task.fn()
		})
	}

	if rest := target.Sub(m.clock.Now()); rest > 0 {
		m.clock.Advance(rest)
	}
}

// nextDue removes and returns the earliest live task due at or before target
func (m *ManualLoop) nextDue(target time.Time) *manualTask {
	live := m.timers[:0]
	for _, t := range m.timers {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	m.timers = live

	if len(m.timers) == 0 {
		return nil
	}

	sort.SliceStable(m.timers, func(i, j int) bool {
		if m.timers[i].due.Equal(m.timers[j].due) {
			return m.timers[i].seq < m.timers[j].seq
		}
		return m.timers[i].due.Before(m.timers[j].due)
	})

	first := m.timers[0]
	if first.due.After(target) {
		return nil
	}
	m.timers = m.timers[1:]
	return first
}

type manualTask struct {
	due       time.Time
	seq       uint64
	fn        func()
	fired     bool
	cancelled bool
}

// Cancel implements Task
func (t *manualTask) Cancel() bool {
	if t.fired || t.cancelled {
		return false
	}
	t.cancelled = true
	return true
}
