// Command sandbench runs scripted sand worlds without a window and reports
// per-frame statistics.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"sandfall/internal/app"
	"sandfall/internal/bench"
	"sandfall/internal/sims/sand"
	"sandfall/internal/telemetry"
)

type options struct {
	bench.Options
	runs      int
	workers   int
	seed      int64
	config    string
	outputDir string
	verify    bool
	overrides app.KVList
}

func main() {
	var opts options
	flag.IntVar(&opts.Steps, "steps", 2000, "frames to simulate per run")
	flag.IntVar(&opts.PourFrames, "pour", 1000, "leading frames that spawn grains")
	flag.IntVar(&opts.DrainEvery, "drain-every", 0, "open the drain every N frames (0 = never)")
	flag.StringVar(&opts.Pattern, "pattern", bench.PatternCenter, "spawn pattern: center, sweep or rain")
	flag.BoolVar(&opts.Check, "check", false, "verify world consistency after every phase")
	flag.IntVar(&opts.runs, "runs", 1, "number of seeded runs")
	flag.IntVar(&opts.workers, "workers", runtime.NumCPU(), "parallel runs")
	flag.Int64Var(&opts.seed, "seed", 0, "seed of the first run (0 = configured seed)")
	flag.StringVar(&opts.config, "config", "", "YAML file overriding the default world config")
	flag.StringVar(&opts.outputDir, "output-dir", "", "directory for frames.csv and config.yaml")
	flag.BoolVar(&opts.verify, "verify", false, "run every seed twice and compare the final worlds")
	flag.Var(&opts.overrides, "set", "sim option in key=value form (repeatable)")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts); err != nil {
		slog.Error("sandbench failed", "err", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options) error {
	if opts.runs <= 0 {
		return fmt.Errorf("runs must be positive, got %d", opts.runs)
	}
	simOpts := opts.overrides.Map()
	if opts.config != "" {
		simOpts["config"] = opts.config
	}
	cfg, err := sand.FromMap(simOpts)
	if err != nil {
		return err
	}

	seeds := seedList(opts.seed, cfg.Seed, opts.runs)
	slog.Info("starting",
		"width", cfg.Width, "height", cfg.Height,
		"runs", opts.runs, "steps", opts.Steps,
		"pattern", opts.Pattern, "workers", opts.workers)

	start := time.Now()
	results, err := bench.RunAll(ctx, cfg, seeds, opts.Options, opts.workers)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if opts.verify {
		again, err := bench.RunAll(ctx, cfg, seeds, opts.Options, opts.workers)
		if err != nil {
			return err
		}
		if err := compareRuns(results, again); err != nil {
			return err
		}
		slog.Info("determinism verified", "runs", len(results))
	}

	if err := writeOutput(opts.outputDir, cfg, results); err != nil {
		return err
	}

	var all []telemetry.FrameStats
	for _, res := range results {
		s := res.Summary
		slog.Info("run complete",
			"run", res.Run,
			"seed", res.Seed,
			"final_grains", s.FinalGrains,
			"spawned", s.TotalSpawned,
			"drained", s.TotalDrained,
			"static_frame", s.StaticFrame,
			"hash", fmt.Sprintf("%016x", res.Hash))
		all = append(all, res.Rows...)
	}
	s := telemetry.Summarize(all)
	slog.Info("summary",
		"frames", s.Frames,
		"elapsed", elapsed.Round(time.Millisecond).String(),
		"moved_mean", s.Moved.Mean,
		"moved_p90", s.Moved.P90,
		"region_area_mean", s.RegionArea.Mean,
		"settle_us_mean", s.SettleUS.Mean,
		"settle_us_p90", s.SettleUS.P90,
		"frame_us_mean", s.FrameUS.Mean,
		"frame_us_stddev", s.FrameUS.StdDev,
		"frame_us_max", s.FrameUS.Max)
	return nil
}

// seedList returns runs consecutive seeds starting at first, or at fallback
// when first is zero.
func seedList(first, fallback int64, runs int) []int64 {
	if first == 0 {
		first = fallback
	}
	seeds := make([]int64, runs)
	for i := range seeds {
		seeds[i] = first + int64(i)
	}
	return seeds
}

func compareRuns(a, b []bench.Result) error {
	if len(a) != len(b) {
		return fmt.Errorf("verification produced %d runs, expected %d", len(b), len(a))
	}
	for i := range a {
		if a[i].Hash != b[i].Hash {
			return fmt.Errorf("run %d (seed %d) is not deterministic: %016x vs %016x",
				a[i].Run, a[i].Seed, a[i].Hash, b[i].Hash)
		}
	}
	return nil
}

func writeOutput(dir string, cfg sand.Config, results []bench.Result) error {
	om, err := telemetry.NewOutputManager(dir)
	if err != nil {
		return err
	}
	defer om.Close()
	for _, res := range results {
		if err := om.WriteFrames(res.Rows); err != nil {
			return err
		}
	}
	if om == nil {
		return nil
	}
	if err := cfg.WriteYAML(filepath.Join(om.Dir(), "config.yaml")); err != nil {
		return err
	}
	slog.Info("wrote output", "dir", om.Dir())
	return om.Close()
}
