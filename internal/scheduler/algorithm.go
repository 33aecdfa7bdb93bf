package scheduler

import (
	"fmt"
	"strings"

	"github.com/Hasti0013/cpusched/internal/model"
)

// Algorithm selects a scheduling discipline.
type Algorithm string

const (
	// SJF is non-preemptive Shortest Job First.
	SJF Algorithm = "SJF"
	// SRTF is preemptive Shortest Remaining Time First.
	SRTF Algorithm = "SRTF"
)

// Algorithms lists the supported disciplines in presentation order.
var Algorithms = []Algorithm{SJF, SRTF}

func (a Algorithm) String() string {
	return string(a)
}

// Title is the human-readable name used in report headings.
func (a Algorithm) Title() string {
	switch a {
	case SJF:
		return "Shortest-job-first"
	case SRTF:
		return "Shortest-remaining-time-first"
	}
	return string(a)
}

// ParseAlgorithm converts a selector such as "sjf" or "SRTF".
func ParseAlgorithm(s string) (Algorithm, error) {
	switch a := Algorithm(strings.ToUpper(strings.TrimSpace(s))); a {
	case SJF, SRTF:
		return a, nil
	}
	return "", fmt.Errorf("%w: %q (want SJF or SRTF)", ErrInvalidAlgorithm, s)
}

// Run simulates processes under the selected discipline.
func Run(alg Algorithm, processes []model.Process, opts ...Option) (*Outcome, error) {
	switch alg {
	case SJF:
		return ShortestJobFirst(processes, opts...)
	case SRTF:
		return ShortestRemainingTimeFirst(processes, opts...)
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidAlgorithm, string(alg))
}
