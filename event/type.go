package event

import "time"

// EventType represents the type of countdown event
type EventType int

const (
	// EventCountdownStarted signals a session was armed
	// Trigger: Widget.Start, including re-arm while running
	// Consumer: host | Payload: *StartedPayload
	EventCountdownStarted EventType = iota + 1

	// EventTimeUp signals the countdown reached zero
	// Trigger: first tick with negative remaining time, once per armed session
	// Consumer: host (chime, follow-up) | Payload: nil
	EventTimeUp

	// EventCountdownStopped signals an external stop
	// Trigger: Widget.Stop from a non-stopped phase | Payload: nil
	EventCountdownStopped

	// EventFadeOutComplete signals the surface finished fading and is hidden
	// Trigger: surface fade-out callback after a stop | Payload: nil
	EventFadeOutComplete

	// EventLayoutChanged signals new geometry was applied
	// Trigger: Widget.Attach, Widget.Relayout
	// Consumer: host | Payload: *LayoutPayload
	EventLayoutChanged
)

// Event is a single routed notification
type Event struct {
	Type      EventType
	Payload   any
	Frame     int64 // Tick count at emission
	Timestamp time.Time
}

// String returns the registered name of the event type
func (t EventType) String() string {
	if name := GetEventName(t); name != "" {
		return name
	}
	return "Unknown"
}
