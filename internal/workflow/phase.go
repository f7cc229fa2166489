package workflow

// Phase is the tagged display state of the check-booking workflow. The
// workflow is always in exactly one phase; invalid combinations such as
// "loading with an error showing" cannot be represented.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseLoaded  Phase = "loaded"
	PhaseFailed  Phase = "failed"
	PhaseEditing Phase = "editing"
)

// validTransitions defines the state machine for the workflow phases.
// A failed lookup keeps any previously loaded booking on screen, so the
// failed phase allows the same edit and cancel moves as loaded.
var validTransitions = map[Phase][]Phase{
	PhaseIdle:    {PhaseLoading},
	PhaseLoading: {PhaseLoaded, PhaseFailed},
	PhaseLoaded:  {PhaseLoading, PhaseEditing, PhaseIdle},
	PhaseFailed:  {PhaseLoading, PhaseEditing, PhaseIdle},
	PhaseEditing: {PhaseLoaded, PhaseLoading},
}

// CanTransitionTo returns true if moving from this phase to the target is allowed.
func (p Phase) CanTransitionTo(target Phase) bool {
	allowed, exists := validTransitions[p]
	if !exists {
		return false
	}
	for _, t := range allowed {
		if t == target {
			return true
		}
	}
	return false
}

// String returns the string representation of the phase.
func (p Phase) String() string {
	return string(p)
}
