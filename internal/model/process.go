// Package model holds the process types shared by the loader, the
// scheduling engines and the reporting layer.
package model

import "fmt"

// Unfinished is the finish time of a record that has not completed yet.
const Unfinished int64 = -1

type (
	// Process is one input tuple: a batch job with an arrival time and a
	// CPU burst.
	Process struct {
		ProcessID     int64 `yaml:"id"`
		ArrivalTime   int64 `yaml:"arrival"`
		BurstDuration int64 `yaml:"burst"`
	}

	// Result is the per-process outcome of a simulation.
	Result struct {
		ProcessID     int64 `yaml:"id"`
		ArrivalTime   int64 `yaml:"arrival"`
		BurstDuration int64 `yaml:"burst"`
		FinishTime    int64 `yaml:"finish"`
		WaitingTime   int64 `yaml:"waiting"`
	}
)

// Turnaround is the time from arrival to completion.
func (r Result) Turnaround() int64 {
	return r.WaitingTime + r.BurstDuration
}

// Record is a Process plus the mutable state the engines advance while
// simulating it. Records are owned by a single simulation run.
type Record struct {
	Process

	remaining     int64
	finish        int64
	waiting       int64
	eligibleSince int64
	state         State
}

// NewRecord creates a pending record for p.
func NewRecord(p Process) *Record {
	return &Record{
		Process:   p,
		remaining: p.BurstDuration,
		finish:    Unfinished,
		state:     StatePending,
	}
}

// Remaining is the CPU time still owed to the record.
func (r *Record) Remaining() int64 { return r.remaining }

// FinishTime returns Unfinished until the record completes.
func (r *Record) FinishTime() int64 { return r.finish }

// Waiting is the time spent eligible but not running so far.
func (r *Record) Waiting() int64 { return r.waiting }

// State returns the record's lifecycle state.
func (r *Record) State() State { return r.state }

func (r *Record) transition(next State) {
	if !r.state.CanTransitionTo(next) {
		panic(&InvalidTransitionError{ID: r.ProcessID, From: r.state, To: next})
	}
	r.state = next
}

// Admit moves a pending record into the ready set. The record has been
// eligible since its arrival, regardless of when the engine notices it.
func (r *Record) Admit() {
	r.transition(StateReady)
	r.eligibleSince = r.ArrivalTime
}

// Dispatch starts running the record at clock and charges the time it
// spent waiting since it last became eligible.
func (r *Record) Dispatch(clock int64) {
	r.transition(StateRunning)
	r.waiting += clock - r.eligibleSince
}

// Execute consumes units of CPU time.
func (r *Record) Execute(units int64) {
	if r.state != StateRunning {
		panic(fmt.Sprintf("execute on %s process %d", r.state, r.ProcessID))
	}
	if units <= 0 || units > r.remaining {
		panic(fmt.Sprintf("execute %d units on process %d with %d remaining", units, r.ProcessID, r.remaining))
	}
	r.remaining -= units
}

// Preempt returns a running record to the ready set at clock.
func (r *Record) Preempt(clock int64) {
	r.transition(StateReady)
	r.eligibleSince = clock
}

// Complete finalizes a record whose burst is exhausted.
func (r *Record) Complete(clock int64) {
	if r.remaining != 0 {
		panic(fmt.Sprintf("complete process %d with %d remaining", r.ProcessID, r.remaining))
	}
	r.transition(StateCompleted)
	r.finish = clock

	// turnaround = waiting + burst must hold on a single processor
	if want := r.finish - r.ArrivalTime - r.BurstDuration; r.waiting != want {
		panic(fmt.Sprintf("process %d waited %d, want %d", r.ProcessID, r.waiting, want))
	}
}

// Result returns the output tuple for a completed record.
func (r *Record) Result() Result {
	return Result{
		ProcessID:     r.ProcessID,
		ArrivalTime:   r.ArrivalTime,
		BurstDuration: r.BurstDuration,
		FinishTime:    r.finish,
		WaitingTime:   r.waiting,
	}
}
