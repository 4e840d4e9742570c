package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/shirou/gopsutil/v3/cpu"
	"golang.org/x/sync/errgroup"

	"langton/internal/config"
	"langton/internal/core"
	_ "langton/internal/sims/langton"
	"langton/internal/telemetry"
)

type runResult struct {
	seed    int64
	ticks   uint64
	elapsed time.Duration
	records []telemetry.PerfRecord
}

func main() {
	var (
		ticks    int
		runs     int
		workers  int
		realtime bool
		verbose  bool
	)
	cfg, err := config.Parse("langton-bench", os.Args[1:], os.Stderr, func(fs *flag.FlagSet) {
		fs.IntVar(&ticks, "ticks", 10000, "ticks to simulate per run")
		fs.IntVar(&runs, "runs", 1, "number of runs; run i uses seed+i")
		fs.IntVar(&workers, "workers", runtime.NumCPU(), "parallel runs")
		fs.BoolVar(&realtime, "realtime", false, "pace each run at the configured tick rate")
		fs.BoolVar(&verbose, "v", false, "debug logging")
	})
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "bench"})
	if err != nil {
		logger.Fatal("configuration", "err", err)
	}
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	if ticks < 1 || runs < 1 {
		logger.Fatal("configuration", "err", fmt.Errorf("%w: ticks and runs must be > 0", config.ErrInvalid))
	}
	if workers < 1 {
		workers = 1
	}

	logHost(logger)
	logger.Info("sweeping",
		"rule", cfg.Sim.Rule,
		"grid", fmt.Sprintf("%dx%d", cfg.Derived.GridWidth, cfg.Derived.GridHeight),
		"ants", cfg.Sim.Ants,
		"steps_per_tick", cfg.Sim.StepsPerTick,
		"ticks", ticks,
		"runs", runs,
		"workers", workers,
	)

	results := make([]runResult, runs)
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(workers)
	for i := 0; i < runs; i++ {
		seed := cfg.Sim.Seed + int64(i)
		g.Go(func() error {
			res, err := runScenario(ctx, cfg, seed, ticks, realtime)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			results[i] = res
			logger.Debug("run finished", "seed", seed, "elapsed", res.elapsed.Round(time.Millisecond))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Fatal("sweep", "err", err)
	}

	out, err := telemetry.NewOutputManager(cfg.Telemetry.OutputDir)
	if err != nil {
		logger.Fatal("telemetry output", "err", err)
	}
	defer out.Close()
	if err := out.WriteConfig(cfg); err != nil {
		logger.Fatal("config snapshot", "err", err)
	}

	fmt.Printf("%-22s %10s %12s %14s\n", "seed", "ticks", "elapsed", "ant steps/s")
	for _, res := range results {
		if err := out.WritePerf(res.records...); err != nil {
			logger.Fatal("writing perf", "err", err)
		}
		rate := float64(res.ticks) * float64(cfg.Sim.Ants*cfg.Sim.StepsPerTick) / res.elapsed.Seconds()
		fmt.Printf("%-22d %10d %12s %14.0f\n", res.seed, res.ticks, res.elapsed.Round(time.Millisecond), rate)
	}
	if dir := out.Dir(); dir != "" {
		logger.Info("wrote output", "dir", dir)
	}
}

// runScenario drives one simulation for ticks ticks on the calling goroutine.
func runScenario(ctx context.Context, cfg *config.Config, seed int64, ticks int, realtime bool) (runResult, error) {
	settings := cfg.Settings()
	settings.Seed = seed
	sim, err := core.Build(cfg.Sim.Rule, settings)
	if err != nil {
		return runResult{}, err
	}

	var pace *core.FixedStep
	if realtime {
		pace = core.NewFixedStep(cfg.Control.TickRate)
	}
	perf := telemetry.NewPerfCollector(cfg.Telemetry.Window)
	res := runResult{seed: seed}
	run := fmt.Sprintf("seed-%d", seed)

	begin := time.Now()
	for t := 1; t <= ticks; t++ {
		if t%cfg.Telemetry.Window == 0 {
			if err := ctx.Err(); err != nil {
				return runResult{}, err
			}
		}
		if pace != nil {
			pace.Wait()
		}
		start := time.Now()
		sim.Step()
		perf.Record(time.Since(start))
		if perf.Full() {
			res.records = append(res.records, telemetry.NewPerfRecord(run, uint64(t), cfg.Sim.Ants, cfg.Sim.StepsPerTick, perf.Stats()))
			perf.Reset()
		}
	}
	res.elapsed = time.Since(begin)
	res.ticks = uint64(ticks)
	return res, nil
}

func logHost(logger *log.Logger) {
	infos, err := cpu.Info()
	if err != nil || len(infos) == 0 {
		logger.Warn("cpu info unavailable", "err", err)
		return
	}
	logical, _ := cpu.Counts(true)
	logger.Info("host", "cpu", infos[0].ModelName, "logical_cores", logical, "go", runtime.Version())
}
