package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"langton/internal/config"
)

// PerfRecord is one row of perf.csv.
type PerfRecord struct {
	Run            string  `csv:"run"`
	Tick           uint64  `csv:"tick"`
	Ants           int     `csv:"ants"`
	StepsPerTick   int     `csv:"steps_per_tick"`
	Samples        int     `csv:"samples"`
	MeanMicros     float64 `csv:"mean_us"`
	StdDevMicros   float64 `csv:"stddev_us"`
	P50Micros      float64 `csv:"p50_us"`
	P99Micros      float64 `csv:"p99_us"`
	MaxMicros      float64 `csv:"max_us"`
	TicksPerSecond float64 `csv:"ticks_per_sec"`
	AntStepsPerSec float64 `csv:"ant_steps_per_sec"`
}

// NewPerfRecord converts window stats into a CSV row.
func NewPerfRecord(run string, tick uint64, ants, steps int, st PerfStats) PerfRecord {
	return PerfRecord{
		Run:            run,
		Tick:           tick,
		Ants:           ants,
		StepsPerTick:   steps,
		Samples:        st.Samples,
		MeanMicros:     micros(st.Mean.Seconds()),
		StdDevMicros:   micros(st.StdDev.Seconds()),
		P50Micros:      micros(st.P50.Seconds()),
		P99Micros:      micros(st.P99.Seconds()),
		MaxMicros:      micros(st.Max.Seconds()),
		TicksPerSecond: st.TicksPerSecond,
		AntStepsPerSec: st.TicksPerSecond * float64(ants*steps),
	}
}

func micros(s float64) float64 { return s * 1e6 }

// OutputManager writes perf.csv and a config snapshot into a directory.
type OutputManager struct {
	dir      string
	perfFile *os.File

	perfHeaderWritten bool
}

// NewOutputManager creates the output directory and perf.csv.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, "perf.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating perf.csv: %w", err)
	}
	return &OutputManager{dir: dir, perfFile: f}, nil
}

// WriteConfig saves the run configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WritePerf appends records to perf.csv, writing the header once.
func (om *OutputManager) WritePerf(records ...PerfRecord) error {
	if om == nil || len(records) == 0 {
		return nil
	}
	if !om.perfHeaderWritten {
		if err := gocsv.Marshal(records, om.perfFile); err != nil {
			return fmt.Errorf("writing perf: %w", err)
		}
		om.perfHeaderWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.perfFile); err != nil {
		return fmt.Errorf("writing perf: %w", err)
	}
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close closes perf.csv.
func (om *OutputManager) Close() error {
	if om == nil || om.perfFile == nil {
		return nil
	}
	return om.perfFile.Close()
}
