package contactform

import "fmt"

// State is the submission lifecycle of a form.
//
//	Idle -> Sending -> Succeeded -> Idle
//	                -> Failed    -> Idle
type State string

const (
	StateIdle      State = "idle"
	StateSending   State = "sending"
	StateSucceeded State = "succeeded"
	StateFailed    State = "failed"
)

var transitions = map[State][]State{
	StateIdle:      {StateSending},
	StateSending:   {StateSucceeded, StateFailed},
	StateSucceeded: {StateIdle},
	StateFailed:    {StateIdle},
}

// CanTransition reports whether moving from s to next is allowed.
func (s State) CanTransition(next State) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// InvalidTransitionError reports a lifecycle move that is not allowed.
type InvalidTransitionError struct {
	From State
	To   State
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("contactform: invalid transition %s -> %s", e.From, e.To)
}
