// Package telemetry records tick timings and writes them out as CSV.
package telemetry

import (
	"math"
	"slices"
	"time"

	"gonum.org/v1/gonum/stat"
)

// PerfCollector keeps the durations of the most recent ticks in a ring buffer.
type PerfCollector struct {
	samples []float64 // seconds
	next    int
	count   int
}

// NewPerfCollector creates a collector averaging over windowSize ticks.
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{samples: make([]float64, windowSize)}
}

// Record adds one tick duration.
func (p *PerfCollector) Record(d time.Duration) {
	p.samples[p.next] = d.Seconds()
	p.next = (p.next + 1) % len(p.samples)
	if p.count < len(p.samples) {
		p.count++
	}
}

// Count returns the number of samples in the window.
func (p *PerfCollector) Count() int { return p.count }

// Full reports whether the window holds windowSize samples.
func (p *PerfCollector) Full() bool { return p.count == len(p.samples) }

// Reset discards all samples.
func (p *PerfCollector) Reset() {
	p.next = 0
	p.count = 0
}

// PerfStats summarises tick durations over a window.
type PerfStats struct {
	Samples        int
	Mean           time.Duration
	StdDev         time.Duration
	P50            time.Duration
	P99            time.Duration
	Max            time.Duration
	TicksPerSecond float64
}

// Stats computes aggregated statistics over the current window.
func (p *PerfCollector) Stats() PerfStats {
	if p.count == 0 {
		return PerfStats{}
	}
	// Until the ring wraps the samples sit in [0, count).
	sorted := slices.Clone(p.samples[:p.count])
	slices.Sort(sorted)

	mean, std := stat.MeanStdDev(sorted, nil)
	if len(sorted) < 2 {
		std = 0
	}
	st := PerfStats{
		Samples: len(sorted),
		Mean:    seconds(mean),
		StdDev:  seconds(std),
		P50:     seconds(stat.Quantile(0.5, stat.Empirical, sorted, nil)),
		P99:     seconds(stat.Quantile(0.99, stat.Empirical, sorted, nil)),
		Max:     seconds(sorted[len(sorted)-1]),
	}
	if mean > 0 {
		st.TicksPerSecond = 1 / mean
	}
	return st
}

func seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}
