package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Chime Sound (time-up notification)
// Three descending notes, each a fundamental plus an octave overtone
const (
	ChimeNoteDuration    = 450 * time.Millisecond
	ChimeNoteGap         = 120 * time.Millisecond
	ChimeAttack          = 5 * time.Millisecond
	ChimeFundamentalTail = 400 * time.Millisecond
	ChimeOvertoneTail    = 180 * time.Millisecond
	ChimeVolume          = 0.6
)

// ChimeNotes are the chime frequencies in Hz (E6, C6, A5)
var ChimeNotes = [...]float64{1318.51, 1046.50, 880.00}
