package engine

import "time"

// Task is a pending one-shot callback
type Task interface {
	// Cancel prevents the callback from running, returns false if it already ran or was cancelled
	Cancel() bool
}

// Scheduler runs callbacks on a single logical thread
// Every callback passed to ScheduleAfter or Post executes on that thread, one at a time,
// so state owned by the scheduler's users needs no locking
type Scheduler interface {
	// Now returns the scheduler's current time
	Now() time.Time

	// ScheduleAfter runs fn once on the scheduler thread after d elapses
	// Cancellation is checked on the scheduler thread immediately before fn runs
	ScheduleAfter(d time.Duration, fn func()) Task

	// Post marshals fn onto the scheduler thread, it runs after the current callback returns
	Post(fn func())

	// ShuttingDown reports whether the host has begun teardown
	ShuttingDown() bool
}
