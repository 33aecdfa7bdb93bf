package scheduler

import (
	"go.uber.org/zap"

	"github.com/Hasti0013/cpusched/internal/model"
	"github.com/Hasti0013/cpusched/internal/sequence"
)

// ShortestJobFirst runs processes non-preemptively, always dispatching the
// arrived process with the smallest burst. Equal bursts run in arrival
// order. processes must be sorted by arrival time.
func ShortestJobFirst(processes []model.Process, opts ...Option) (*Outcome, error) {
	e, err := newEngine(SJF, processes, opts)
	if err != nil {
		return nil, err
	}

	for e.busy() {
		e.admit(sequence.ByOriginalBurst)
		if e.ready.Len() == 0 {
			e.idle()
			continue
		}

		r := take(e.ready)
		start := e.clock
		r.Dispatch(start)
		e.log.Debug("dispatched", zap.Int64("pid", r.ProcessID), zap.Int64("clock", start))

		burst := r.Remaining()
		r.Execute(burst)
		e.clock += burst
		e.run(r.ProcessID, start, e.clock)
		e.complete(r)
	}

	return e.outcome(), nil
}
