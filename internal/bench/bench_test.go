package bench

import (
	"context"
	"errors"
	"testing"

	"sandfall/internal/core"
	"sandfall/internal/sims/sand"
)

func smallConfig() sand.Config {
	cfg := sand.DefaultConfig()
	cfg.Width = 40
	cfg.Height = 30
	cfg.Params.SpawnRadius = 3
	cfg.Params.SpawnAttempts = 5
	cfg.Params.DrainHalfWidth = 4
	return cfg
}

func smallOptions() Options {
	return Options{
		Script: Script{Steps: 200, PourFrames: 80, DrainEvery: 7, Pattern: PatternRain},
		Check:  true,
	}
}

func TestScriptValidate(t *testing.T) {
	cases := []struct {
		name   string
		script Script
		ok     bool
	}{
		{"valid", Script{Steps: 1, Pattern: PatternCenter}, true},
		{"zero steps", Script{Steps: 0, Pattern: PatternCenter}, false},
		{"negative pour", Script{Steps: 1, PourFrames: -1, Pattern: PatternCenter}, false},
		{"negative drain", Script{Steps: 1, DrainEvery: -1, Pattern: PatternCenter}, false},
		{"unknown pattern", Script{Steps: 1, Pattern: "spiral"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.script.Validate()
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestScriptInput(t *testing.T) {
	size := core.Size{W: 5, H: 16}
	s := Script{Steps: 20, PourFrames: 10, DrainEvery: 3, Pattern: PatternSweep}

	wantX := []int{0, 1, 2, 3, 4, 3, 2, 1, 0, 1}
	for frame, x := range wantX {
		in := s.Input(frame, size, nil)
		if !in.Spawn || in.X != x || in.Y != 2 {
			t.Fatalf("frame %d: expected spawn at (%d,2), got %+v", frame, x, in)
		}
		if in.Drain != (frame%3 == 0) {
			t.Fatalf("frame %d: unexpected drain %v", frame, in.Drain)
		}
	}
	if in := s.Input(10, size, nil); in.Spawn {
		t.Fatalf("pouring should stop after PourFrames, got %+v", in)
	}

	center := Script{Steps: 1, PourFrames: 1, Pattern: PatternCenter}
	if in := center.Input(0, size, nil); in.X != 2 || in.Drain {
		t.Fatalf("expected centered spawn without drain, got %+v", in)
	}
}

func TestRunKeepsWorldConsistent(t *testing.T) {
	res, err := Run(context.Background(), smallConfig(), 0, 7, smallOptions())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Rows) != 200 {
		t.Fatalf("expected 200 rows, got %d", len(res.Rows))
	}
	spawned, drained := 0, 0
	for _, row := range res.Rows {
		spawned += row.Spawned
		drained += row.Drained
	}
	if spawned == 0 || drained == 0 {
		t.Fatalf("expected both spawning and draining, got spawned=%d drained=%d", spawned, drained)
	}
	if final := res.Rows[len(res.Rows)-1].Grains; final != spawned-drained {
		t.Fatalf("grain count %d does not match spawned-drained %d", final, spawned-drained)
	}
	if res.Summary.TotalSpawned != spawned || res.Summary.FinalGrains != spawned-drained {
		t.Fatalf("summary disagrees with rows: %+v", res.Summary)
	}
}

func TestRunMatchesWorldFrame(t *testing.T) {
	cfg := smallConfig()
	opts := smallOptions()
	res, err := Run(context.Background(), cfg, 0, 11, opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	cfg.Seed = 11
	world, err := sand.NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	rng := core.NewRNG(11 ^ rainSalt)
	for frame := 0; frame < opts.Steps; frame++ {
		report := world.Frame(opts.Input(frame, world.Size(), rng))
		row := res.Rows[frame]
		if report.Spawned != row.Spawned || report.Moved != row.Moved || report.Drained != row.Drained {
			t.Fatalf("frame %d: report %+v differs from row %+v", frame, report, row)
		}
	}
	if got := Fingerprint(world); got != res.Hash {
		t.Fatalf("fingerprint mismatch: %x vs %x", got, res.Hash)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	a, err := Run(context.Background(), smallConfig(), 0, 3, smallOptions())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	b, err := Run(context.Background(), smallConfig(), 0, 3, smallOptions())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if a.Hash != b.Hash {
		t.Fatalf("same seed produced different worlds: %x vs %x", a.Hash, b.Hash)
	}
	c, err := Run(context.Background(), smallConfig(), 0, 4, smallOptions())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if a.Hash == c.Hash {
		t.Fatal("different seeds should produce different worlds")
	}
}

func TestRunAllPreservesSeedOrder(t *testing.T) {
	seeds := []int64{5, 6, 7, 8, 9}
	results, err := RunAll(context.Background(), smallConfig(), seeds, smallOptions(), 3)
	if err != nil {
		t.Fatalf("RunAll: %v", err)
	}
	for i, res := range results {
		if res.Run != i || res.Seed != seeds[i] {
			t.Fatalf("result %d has run=%d seed=%d", i, res.Run, res.Seed)
		}
		single, err := Run(context.Background(), smallConfig(), i, seeds[i], smallOptions())
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		if single.Hash != res.Hash {
			t.Fatalf("run %d differs between pool and direct execution", i)
		}
	}
}

func TestRunAllRejectsBadInput(t *testing.T) {
	opts := smallOptions()
	opts.Pattern = "spiral"
	if _, err := RunAll(context.Background(), smallConfig(), []int64{1}, opts, 1); err == nil {
		t.Fatal("expected invalid script error")
	}

	cfg := smallConfig()
	cfg.Width = 0
	_, err := RunAll(context.Background(), cfg, []int64{1}, smallOptions(), 1)
	if !errors.Is(err, sand.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestRunStopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Run(ctx, smallConfig(), 0, 1, smallOptions()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
