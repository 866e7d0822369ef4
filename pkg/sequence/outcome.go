package sequence

// Outcome classifies the result of a phase and gates whether the sequencer
// advances.
type Outcome int

const (
	// OutcomeSuccess lets the sequencer advance to the next phase.
	OutcomeSuccess Outcome = iota

	// OutcomeRetryable marks a failure that is retried within the phase's
	// own budget. It never crosses a phase boundary.
	OutcomeRetryable

	// OutcomeFatal aborts the whole startup sequence.
	OutcomeFatal
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeRetryable:
		return "retryable"
	case OutcomeFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// State is a step of the startup state machine.
type State int

const (
	StateInit State = iota
	StateProbing
	StateMigrating
	StateHandoff

	// StateRunning is terminal and only nominally observable: reaching it
	// means the exec succeeded and this process no longer exists.
	StateRunning

	// StateAborted is the terminal failure state.
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "INIT"
	case StateProbing:
		return "PROBING"
	case StateMigrating:
		return "MIGRATING"
	case StateHandoff:
		return "HANDOFF"
	case StateRunning:
		return "RUNNING"
	case StateAborted:
		return "ABORTED"
	default:
		return "UNKNOWN"
	}
}
