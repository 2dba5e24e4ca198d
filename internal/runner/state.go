package runner

import "fmt"

// State is a position in the replay state machine.
type State int

const (
	Resetting State = iota
	AwaitingEvents
	SteppingHost
	CheckingExit
	Finished
)

func (s State) String() string {
	switch s {
	case Resetting:
		return "resetting"
	case AwaitingEvents:
		return "awaiting_events"
	case SteppingHost:
		return "stepping_host"
	case CheckingExit:
		return "checking_exit"
	case Finished:
		return "finished"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Reason explains why a run reached Finished.
type Reason int

const (
	ReasonNone Reason = iota
	// ReasonExhausted: the event log reports every event consumed.
	ReasonExhausted
	// ReasonBound: the cursor reached the stream length without the log
	// reporting finished. The current event log never produces it.
	ReasonBound
	// ReasonHostExit: the host sent AppExit.
	ReasonHostExit
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonExhausted:
		return "exhausted"
	case ReasonBound:
		return "bound"
	case ReasonHostExit:
		return "host_exit"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}
