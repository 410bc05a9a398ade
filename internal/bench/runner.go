package bench

import (
	"context"
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"sandfall/internal/core"
	"sandfall/internal/sims/sand"
	"sandfall/internal/telemetry"

	"golang.org/x/sync/errgroup"
)

// rainSalt decorrelates the rain pattern from the world's spawner.
const rainSalt = 0x5eed

// Options controls a batch of runs.
type Options struct {
	Script
	// Check verifies world consistency after every phase.
	Check bool
}

// Result is the outcome of one seeded run.
type Result struct {
	Run     int
	Seed    int64
	Rows    []telemetry.FrameStats
	Hash    uint64
	Summary telemetry.Summary
}

// Run drives one world built from cfg with seed for opts.Steps frames.
func Run(ctx context.Context, cfg sand.Config, run int, seed int64, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	cfg.Seed = seed
	world, err := sand.NewWithConfig(cfg)
	if err != nil {
		return Result{}, err
	}
	rng := core.NewRNG(seed ^ rainSalt)
	perf := telemetry.NewPerfCollector()
	size := world.Size()

	rows := make([]telemetry.FrameStats, 0, opts.Steps)
	for frame := 0; frame < opts.Steps; frame++ {
		if frame%64 == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		in := opts.Input(frame, size, rng)
		row := telemetry.FrameStats{Run: run, Frame: frame}

		perf.StartFrame()
		perf.StartPhase(telemetry.PhaseSpawn)
		if in.Spawn {
			row.Spawned = world.Spawn(in.X, in.Y)
		}
		if err := check(opts.Check, world, frame, telemetry.PhaseSpawn); err != nil {
			return Result{}, err
		}
		perf.StartPhase(telemetry.PhaseSettle)
		row.Moved = world.Settle()
		if err := check(opts.Check, world, frame, telemetry.PhaseSettle); err != nil {
			return Result{}, err
		}
		perf.StartPhase(telemetry.PhaseDrain)
		if in.Drain {
			row.Drained = world.Drain()
		}
		if err := check(opts.Check, world, frame, telemetry.PhaseDrain); err != nil {
			return Result{}, err
		}
		perf.EndFrame()
		perf.Fill(&row)

		row.Grains = world.GrainCount()
		fillRegion(&row, world.ActiveRegion())
		rows = append(rows, row)
	}

	return Result{
		Run:     run,
		Seed:    seed,
		Rows:    rows,
		Hash:    Fingerprint(world),
		Summary: telemetry.Summarize(rows),
	}, nil
}

// RunAll runs one world per seed on at most workers goroutines. Results are
// returned in seed order.
func RunAll(ctx context.Context, cfg sand.Config, seeds []int64, opts Options, workers int) ([]Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	results := make([]Result, len(seeds))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i, seed := range seeds {
		g.Go(func() error {
			res, err := Run(ctx, cfg, i, seed, opts)
			if err != nil {
				return fmt.Errorf("run %d (seed %d): %w", i, seed, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Fingerprint hashes the grain list in insertion order. Two worlds with the
// same fingerprint hold the same grains in the same order.
func Fingerprint(world *sand.World) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for _, g := range world.Grains() {
		binary.LittleEndian.PutUint32(buf[:4], uint32(g.X))
		binary.LittleEndian.PutUint32(buf[4:], uint32(g.Y))
		h.Write(buf[:])
	}
	return h.Sum64()
}

func check(enabled bool, world *sand.World, frame int, phase string) error {
	if !enabled {
		return nil
	}
	if err := world.CheckConsistency(); err != nil {
		return fmt.Errorf("frame %d after %s: %w", frame, phase, err)
	}
	return nil
}

func fillRegion(row *telemetry.FrameStats, r sand.Region) {
	if r.Empty() {
		row.RegionMinX, row.RegionMinY, row.RegionMaxX, row.RegionMaxY = -1, -1, -1, -1
		return
	}
	row.RegionMinX, row.RegionMinY = r.MinX, r.MinY
	row.RegionMaxX, row.RegionMaxY = r.MaxX, r.MaxY
	row.RegionArea = r.Area()
}
