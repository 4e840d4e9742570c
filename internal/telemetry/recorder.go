package telemetry

import (
	"time"

	"github.com/charmbracelet/log"
)

// Recorder feeds tick durations into a collector and flushes a summary every
// full window: logged at debug level and appended to perf.csv when output is
// enabled.
type Recorder struct {
	run    string
	ants   int
	steps  int
	perf   *PerfCollector
	out    *OutputManager
	logger *log.Logger
}

// NewRecorder returns a recorder for one simulation run. out may be nil.
func NewRecorder(run string, window, ants, steps int, out *OutputManager, logger *log.Logger) *Recorder {
	return &Recorder{
		run:    run,
		ants:   ants,
		steps:  steps,
		perf:   NewPerfCollector(window),
		out:    out,
		logger: logger,
	}
}

// Observe records one tick and flushes when the window is full.
func (r *Recorder) Observe(tick uint64, d time.Duration) error {
	r.perf.Record(d)
	if !r.perf.Full() {
		return nil
	}
	st := r.perf.Stats()
	r.perf.Reset()
	r.logger.Debug("perf",
		"run", r.run,
		"tick", tick,
		"mean", st.Mean.Round(time.Microsecond),
		"p99", st.P99.Round(time.Microsecond),
		"tps_capacity", int(st.TicksPerSecond),
	)
	return r.out.WritePerf(NewPerfRecord(r.run, tick, r.ants, r.steps, st))
}

// Reset drops the partial window, e.g. after the simulation was reset.
func (r *Recorder) Reset() { r.perf.Reset() }
