// Command sandterm runs the sand world in a terminal. The grid is sized to
// the terminal at startup.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"sandfall/internal/app"
	"sandfall/internal/sims/sand"
	"sandfall/internal/termui"

	"github.com/gdamore/tcell/v2"
)

func main() {
	tps := flag.Int("tps", 60, "frames per second")
	seed := flag.Int64("seed", 0, "seed for the spawner (0 = configured seed)")
	configPath := flag.String("config", "", "YAML file overriding the default world config")
	logPath := flag.String("log", "", "write logs to this file (the terminal is busy drawing)")
	var overrides app.KVList
	flag.Var(&overrides, "set", "sim option in key=value form (repeatable)")
	flag.Parse()

	logger, closeLog, err := newLogger(*logPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(*tps, *seed, *configPath, overrides, logger); err != nil {
		logger.Error("sandterm failed", "err", err)
		fmt.Fprintln(os.Stderr, err)
		closeLog()
		os.Exit(1)
	}
}

func run(tps int, seed int64, configPath string, overrides app.KVList, logger *slog.Logger) error {
	if tps <= 0 {
		return fmt.Errorf("tps must be positive, got %d", tps)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	cols, rows := screen.Size()
	w, h := termui.GridSize(cols, rows)
	opts := worldOptions(overrides.Map(), configPath, w, h)

	cfg, err := sand.FromMap(opts)
	if err != nil {
		return err
	}
	world, err := sand.NewWithConfig(cfg)
	if err != nil {
		return err
	}
	world.Reset(seed)
	logger.Info("world ready",
		"cols", cols, "rows", rows,
		"width", cfg.Width, "height", cfg.Height,
		"spawn_radius", cfg.Params.SpawnRadius,
		"drain_half_width", cfg.Params.DrainHalfWidth)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = termui.New(screen, world, tps).Run(ctx)
	logger.Info("sandterm stopped", "frames", world.Frames(), "grains", world.GrainCount())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// worldOptions fills in the terminal-derived size and a drain proportional to
// it unless the user set them.
func worldOptions(opts map[string]string, configPath string, w, h int) map[string]string {
	if configPath != "" {
		opts["config"] = configPath
	}
	if _, ok := opts["w"]; !ok {
		opts["w"] = strconv.Itoa(w)
	}
	if _, ok := opts["h"]; !ok {
		opts["h"] = strconv.Itoa(h)
	}
	if _, ok := opts["drain_half_width"]; !ok {
		opts["drain_half_width"] = strconv.Itoa(w / 10)
	}
	if _, ok := opts["spawn_radius"]; !ok {
		opts["spawn_radius"] = "2"
	}
	return opts
}

func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, nil)), func() { f.Close() }, nil
}
