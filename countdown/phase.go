package countdown

// Phase is the lifecycle state of a countdown session
type Phase int32

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseFinished
	PhaseStopped
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseRunning:
		return "Running"
	case PhaseFinished:
		return "Finished"
	case PhaseStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// validTransitions lists allowed phase changes
// Running -> Running is a re-arm; every phase may be stopped or re-armed
var validTransitions = map[Phase][]Phase{
	PhaseIdle:     {PhaseRunning, PhaseStopped},
	PhaseRunning:  {PhaseRunning, PhaseFinished, PhaseStopped},
	PhaseFinished: {PhaseRunning, PhaseStopped},
	PhaseStopped:  {PhaseRunning},
}

// CanTransition checks if a phase transition is valid
func CanTransition(from, to Phase) bool {
	for _, phase := range validTransitions[from] {
		if phase == to {
			return true
		}
	}
	return false
}
