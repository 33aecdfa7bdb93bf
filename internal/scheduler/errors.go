package scheduler

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when there is nothing to schedule.
	ErrEmptyInput = errors.New("empty input")
	// ErrInvalidInput wraps every *InputError.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidAlgorithm is returned for an unrecognized selector.
	ErrInvalidAlgorithm = errors.New("invalid algorithm")
)

// InputError describes the first offending entry of a rejected input.
type InputError struct {
	Index     int
	ProcessID int64
	Field     string
	Reason    string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: process %d (entry %d): %s %s", ErrInvalidInput, e.ProcessID, e.Index, e.Field, e.Reason)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}
