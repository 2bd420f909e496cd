package event

import "github.com/lixenwraith/vi-countdown/parameter"

// EventQueue collects the events raised while one scheduler callback runs
// The widget flushes it after the callback returns, so handlers observe the frame the callback pushed
// Owned by the scheduler thread: no synchronization
//
// Overflow: the oldest event is dropped and counted
type EventQueue struct {
	events  [parameter.EventQueueSize]Event
	head    int // Index of the oldest event
	count   int
	dropped int64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends ev, reports false when the oldest pending event was dropped to make room
func (eq *EventQueue) Push(ev Event) bool {
	if eq.count == parameter.EventQueueSize {
		// Full ring: the write slot is the oldest event
		eq.events[eq.head] = ev
		eq.head = (eq.head + 1) % parameter.EventQueueSize
		eq.dropped++
		return false
	}
	eq.events[(eq.head+eq.count)%parameter.EventQueueSize] = ev
	eq.count++
	return true
}

// Consume returns the pending batch in FIFO order and empties the queue
func (eq *EventQueue) Consume() []Event {
	if eq.count == 0 {
		return nil
	}
	batch := make([]Event, eq.count)
	for i := range batch {
		idx := (eq.head + i) % parameter.EventQueueSize
		batch[i] = eq.events[idx]
		eq.events[idx] = Event{} // Release payloads
	}
	eq.head = 0
	eq.count = 0
	return batch
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	return eq.count
}

// Dropped returns how many events were lost to overflow
func (eq *EventQueue) Dropped() int64 {
	return eq.dropped
}
