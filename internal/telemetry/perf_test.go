package telemetry

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"langton/internal/config"
)

func TestPerfCollectorStats(t *testing.T) {
	pc := NewPerfCollector(4)
	for _, ms := range []int{1, 2, 3, 4} {
		pc.Record(time.Duration(ms) * time.Millisecond)
	}
	st := pc.Stats()
	if st.Samples != 4 {
		t.Fatalf("samples = %d, want 4", st.Samples)
	}
	if diff := st.Mean - 2500*time.Microsecond; diff < -time.Microsecond || diff > time.Microsecond {
		t.Errorf("mean = %v, want 2.5ms", st.Mean)
	}
	if st.Max != 4*time.Millisecond {
		t.Errorf("max = %v, want 4ms", st.Max)
	}
	if st.TicksPerSecond < 399 || st.TicksPerSecond > 401 {
		t.Errorf("ticks/s = %v, want 400", st.TicksPerSecond)
	}
}

func TestPerfCollectorRollingWindow(t *testing.T) {
	pc := NewPerfCollector(3)
	for i := 0; i < 10; i++ {
		pc.Record(time.Millisecond)
	}
	pc.Record(10 * time.Millisecond)
	if !pc.Full() || pc.Count() != 3 {
		t.Fatalf("count = %d, want 3", pc.Count())
	}
	if got := pc.Stats().Max; got != 10*time.Millisecond {
		t.Fatalf("max = %v, want newest 10ms sample", got)
	}
	pc.Reset()
	if (pc.Stats() != PerfStats{}) {
		t.Fatal("stats after reset should be empty")
	}
}

func TestSingleSampleHasZeroStdDev(t *testing.T) {
	pc := NewPerfCollector(5)
	pc.Record(time.Millisecond)
	if st := pc.Stats(); st.StdDev != 0 || st.P50 != time.Millisecond {
		t.Fatalf("stats = %+v", st)
	}
}

func TestRecorderWritesCSVOncePerWindow(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}
	rec := NewRecorder("seed-1", 2, 20, 3, om, log.New(io.Discard))
	for tick := uint64(1); tick <= 5; tick++ {
		if err := rec.Observe(tick, time.Millisecond); err != nil {
			t.Fatal(err)
		}
	}
	if err := om.WriteConfig(config.Default()); err != nil {
		t.Fatal(err)
	}
	if err := om.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "perf.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("perf.csv has %d lines, want header + 2 rows:\n%s", len(lines), data)
	}
	if !strings.HasPrefix(lines[0], "run,tick,ants,steps_per_tick") {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "seed-1,2,20,3,2,") || !strings.HasPrefix(lines[2], "seed-1,4,") {
		t.Fatalf("unexpected rows %q", lines[1:])
	}
	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Fatalf("config snapshot missing: %v", err)
	}
}

func TestDisabledOutputIsNoop(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil || om != nil {
		t.Fatalf("NewOutputManager(\"\") = %v, %v", om, err)
	}
	if err := om.WritePerf(PerfRecord{}); err != nil {
		t.Fatal(err)
	}
	if err := om.Close(); err != nil {
		t.Fatal(err)
	}
	rec := NewRecorder("x", 1, 1, 1, nil, log.New(io.Discard))
	if err := rec.Observe(1, time.Millisecond); err != nil {
		t.Fatal(err)
	}
}
