// Package scheduler simulates a single processor running batch processes
// under Shortest Job First or Shortest Remaining Time First.
//
// The simulation is a pure function of its input: records are created per
// call, nothing is shared between calls, and identical input always yields
// identical output.
package scheduler

import (
	"go.uber.org/zap"

	"github.com/Hasti0013/cpusched/internal/model"
	"github.com/Hasti0013/cpusched/internal/sequence"
)

type (
	// TimeSlice is one contiguous span of CPU time given to a process.
	TimeSlice struct {
		PID   int64
		Start int64
		Stop  int64
	}

	// Outcome is the product of one simulation run.
	Outcome struct {
		// Results are ordered by ascending finish time.
		Results []model.Result
		// Timeline lists execution spans in time order. Idle gaps are not
		// represented.
		Timeline []TimeSlice
	}
)

// Option configures an engine run.
type Option func(*engine)

// WithLogger sets the logger used for per-event debug output.
func WithLogger(log *zap.Logger) Option {
	return func(e *engine) {
		if log != nil {
			e.log = log
		}
	}
}

type engine struct {
	log       *zap.Logger
	clock     int64
	pending   *sequence.Sequence
	ready     *sequence.Sequence
	completed *sequence.Sequence
	timeline  []TimeSlice
}

func newEngine(alg Algorithm, processes []model.Process, opts []Option) (*engine, error) {
	if err := validate(processes); err != nil {
		return nil, err
	}

	e := &engine{
		log:       zap.NewNop(),
		pending:   sequence.New(len(processes)),
		ready:     sequence.New(len(processes)),
		completed: sequence.New(len(processes)),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log = e.log.Named("engine").With(zap.Stringer("algorithm", alg))

	for _, p := range processes {
		e.pending.Append(model.NewRecord(p))
	}
	e.clock = processes[0].ArrivalTime
	return e, nil
}

// validate rejects input the engines cannot simulate. It runs before any
// record is created.
func validate(processes []model.Process) error {
	if len(processes) == 0 {
		return ErrEmptyInput
	}
	seen := make(map[int64]struct{}, len(processes))
	for i, p := range processes {
		fail := func(field, reason string) error {
			return &InputError{Index: i, ProcessID: p.ProcessID, Field: field, Reason: reason}
		}
		switch {
		case p.ProcessID < 0:
			return fail("id", "must not be negative")
		case p.ArrivalTime < 0:
			return fail("arrival_time", "must not be negative")
		case p.BurstDuration <= 0:
			return fail("burst_time", "must be positive")
		case i > 0 && p.ArrivalTime < processes[i-1].ArrivalTime:
			return fail("arrival_time", "is out of arrival order")
		}
		if _, dup := seen[p.ProcessID]; dup {
			return fail("id", "is duplicated")
		}
		seen[p.ProcessID] = struct{}{}
	}
	return nil
}

// busy reports whether any record is still pending or ready.
func (e *engine) busy() bool {
	return e.pending.Len() > 0 || e.ready.Len() > 0
}

// admit moves every pending record that has arrived by now into the ready
// set, ordered by key.
func (e *engine) admit(key sequence.Key) {
	for {
		next, ok := e.pending.PeekHead()
		if !ok || next.ArrivalTime > e.clock {
			return
		}
		r := take(e.pending)
		r.Admit()
		e.ready.InsertSorted(r, key)
		e.log.Debug("admitted",
			zap.Int64("pid", r.ProcessID),
			zap.Int64("clock", e.clock),
			zap.Int64("remaining", r.Remaining()))
	}
}

// idle advances the clock to the next arrival when nothing is ready.
func (e *engine) idle() {
	next, ok := e.pending.PeekHead()
	if !ok {
		return
	}
	e.log.Debug("idle", zap.Int64("from", e.clock), zap.Int64("until", next.ArrivalTime))
	e.clock = next.ArrivalTime
}

func (e *engine) complete(r *model.Record) {
	r.Complete(e.clock)
	e.completed.InsertSorted(r, sequence.ByFinishTime)
	e.log.Debug("completed",
		zap.Int64("pid", r.ProcessID),
		zap.Int64("finish", r.FinishTime()),
		zap.Int64("waiting", r.Waiting()))
}

// run records that pid held the CPU over [start, stop).
func (e *engine) run(pid, start, stop int64) {
	if n := len(e.timeline); n > 0 {
		last := &e.timeline[n-1]
		if last.PID == pid && last.Stop == start {
			last.Stop = stop
			return
		}
	}
	e.timeline = append(e.timeline, TimeSlice{PID: pid, Start: start, Stop: stop})
}

// outcome hands the completed records to the caller; the engine keeps
// nothing afterwards.
func (e *engine) outcome() *Outcome {
	records := e.completed.Drain()
	results := make([]model.Result, len(records))
	for i, r := range records {
		results[i] = r.Result()
	}
	out := &Outcome{Results: results, Timeline: e.timeline}
	e.timeline = nil
	return out
}

// take removes the head of a sequence the caller knows is non-empty.
func take(s *sequence.Sequence) *model.Record {
	r, err := s.RemoveHead()
	if err != nil {
		panic("scheduler: " + err.Error())
	}
	return r
}
