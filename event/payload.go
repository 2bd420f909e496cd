package event

import "github.com/google/uuid"

// StartedPayload describes a freshly armed session
type StartedPayload struct {
	SessionID      uuid.UUID
	AlreadyElapsed int // Seconds
}

// LayoutPayload carries the container size the new geometry was computed for
type LayoutPayload struct {
	Width    float64
	Height   float64
	FontSize float64
}
