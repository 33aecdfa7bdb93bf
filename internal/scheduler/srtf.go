package scheduler

import (
	"go.uber.org/zap"

	"github.com/Hasti0013/cpusched/internal/model"
	"github.com/Hasti0013/cpusched/internal/sequence"
)

// ShortestRemainingTimeFirst runs processes preemptively one time unit at a
// time. After every unit, an arrived process whose remaining time is
// strictly smaller than the running one's preempts it. processes must be
// sorted by arrival time.
func ShortestRemainingTimeFirst(processes []model.Process, opts ...Option) (*Outcome, error) {
	e, err := newEngine(SRTF, processes, opts)
	if err != nil {
		return nil, err
	}

	for e.busy() {
		e.admit(sequence.ByRemainingBurst)
		if e.ready.Len() == 0 {
			e.idle()
			continue
		}

		r := take(e.ready)
		start := e.clock
		r.Dispatch(start)
		e.log.Debug("dispatched",
			zap.Int64("pid", r.ProcessID),
			zap.Int64("clock", start),
			zap.Int64("remaining", r.Remaining()))

		var by *model.Record
		for r.Remaining() > 0 && by == nil {
			r.Execute(1)
			e.clock++
			if r.Remaining() > 0 {
				by = e.preemptor(r)
			}
		}
		e.run(r.ProcessID, start, e.clock)

		if by != nil {
			r.Preempt(e.clock)
			e.ready.InsertSorted(r, sequence.ByRemainingBurst)
			e.log.Debug("preempted",
				zap.Int64("pid", r.ProcessID),
				zap.Int64("by", by.ProcessID),
				zap.Int64("clock", e.clock),
				zap.Int64("remaining", r.Remaining()))
			continue
		}
		e.complete(r)
	}

	return e.outcome(), nil
}

// preemptor scans arrived-but-unadmitted records in arrival order and
// returns the first whose remaining time is strictly less than running's.
// Records already in the ready set cannot qualify: running was the
// smallest of them when dispatched and has only shrunk since.
func (e *engine) preemptor(running *model.Record) *model.Record {
	for p := range e.pending.All() {
		if p.ArrivalTime > e.clock {
			break
		}
		if p.Remaining() < running.Remaining() {
			return p
		}
	}
	return nil
}
