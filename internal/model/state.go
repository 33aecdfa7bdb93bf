package model

import "fmt"

// State is the lifecycle position of a Record inside one simulation.
type State string

const (
	StatePending   State = "PENDING"
	StateReady     State = "READY"
	StateRunning   State = "RUNNING"
	StateCompleted State = "COMPLETED"
)

// String returns the string representation of the state.
func (s State) String() string {
	return string(s)
}

// IsTerminal returns true once the record has finished executing.
func (s State) IsTerminal() bool {
	return s == StateCompleted
}

// ValidTransitions defines the allowed record state transitions.
// Running -> Ready is a preemption and may repeat any number of times.
var ValidTransitions = map[State][]State{
	StatePending: {StateReady},
	StateReady:   {StateRunning},
	StateRunning: {StateReady, StateCompleted},
}

// CanTransitionTo returns true if moving from the current state to next is valid.
func (s State) CanTransitionTo(next State) bool {
	for _, allowed := range ValidTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// InvalidTransitionError reports an illegal state change on a record.
type InvalidTransitionError struct {
	ID   int64
	From State
	To   State
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid process state transition: %s -> %s (pid %d)", e.From, e.To, e.ID)
}
