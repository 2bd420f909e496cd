package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/lixenwraith/vi-countdown/parameter"
	"github.com/lixenwraith/vi-countdown/status"
)

// Loop is the production Scheduler: one goroutine draining a task queue
// Timers come from a clockwork.Clock and post their callbacks onto the queue
type Loop struct {
	clock clockwork.Clock

	mu      sync.Mutex
	pending []func()
	wake    chan struct{}

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
	closing  atomic.Bool

	// Cached metric pointers
	statTasks *atomic.Int64
}

// NewLoop creates a stopped loop on the given clock
func NewLoop(clock clockwork.Clock, reg *status.Registry) *Loop {
	return &Loop{
		clock:     clock,
		pending:   make([]func(), 0, parameter.LoopQueueSize),
		wake:      make(chan struct{}, 1),
		stopChan:  make(chan struct{}),
		statTasks: reg.Ints.Get(status.KeyLoopTasks),
	}
}

// Start begins draining the queue on a dedicated goroutine
func (l *Loop) Start() {
	if l.running.CompareAndSwap(false, true) {
		l.wg.Add(1)
		Go(l.run)
	}
}

// Stop marks the loop as shutting down and waits for the current task to finish
// Tasks still queued are discarded
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		l.closing.Store(true)
		if l.running.CompareAndSwap(true, false) {
			close(l.stopChan)
			l.wg.Wait()
		}
	})
}

// Now implements Scheduler
func (l *Loop) Now() time.Time {
	return l.clock.Now()
}

// ShuttingDown implements Scheduler
func (l *Loop) ShuttingDown() bool {
	return l.closing.Load()
}

// Post implements Scheduler, safe from any goroutine
func (l *Loop) Post(fn func()) {
	l.mu.Lock()
	l.pending = append(l.pending, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// ScheduleAfter implements Scheduler
func (l *Loop) ScheduleAfter(d time.Duration, fn func()) Task {
	task := &loopTask{}
	task.timer = l.clock.AfterFunc(d, func() {
		l.Post(task.runner(fn))
	})
	return task
}

func (l *Loop) run() {
	defer l.wg.Done()

	for {
		select {
		case <-l.stopChan:
			return
		case <-l.wake:
		}

		for _, fn := range l.drain() {
			select {
			case <-l.stopChan:
				return
			default:
			}
			fn()
			l.statTasks.Add(1)
		}
	}
}

// drain swaps out the pending queue, FIFO order preserved
func (l *Loop) drain() []func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	batch := l.pending
	l.pending = make([]func(), 0, parameter.LoopQueueSize)
	return batch
}

// loopTask guards a timer callback with cancel and run flags
type loopTask struct {
	timer     clockwork.Timer
	cancelled atomic.Bool
	ran       atomic.Bool
}

func (t *loopTask) runner(fn func()) func() {
	return func() {
		if t.cancelled.Load() {
			return
		}
		t.ran.Store(true)
		fn()
	}
}

// Cancel implements Task
func (t *loopTask) Cancel() bool {
	if t.timer != nil {
		t.timer.Stop()
	}
	if t.ran.Load() {
		return false
	}
	return t.cancelled.CompareAndSwap(false, true)
}
