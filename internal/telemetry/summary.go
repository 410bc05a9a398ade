package telemetry

import (
	"slices"

	"gonum.org/v1/gonum/stat"
)

// Series summarizes one column of a run.
type Series struct {
	Mean   float64
	StdDev float64
	P50    float64
	P90    float64
	Max    float64
}

// Summary aggregates a run's frame statistics.
type Summary struct {
	Frames       int
	FinalGrains  int
	TotalSpawned int
	TotalDrained int
	// StaticFrame is the first frame of the trailing run in which nothing
	// moved, or -1 if the last frame still had motion.
	StaticFrame int

	Moved      Series
	RegionArea Series
	SettleUS   Series
	FrameUS    Series
}

// Summarize computes a Summary over rows.
func Summarize(rows []FrameStats) Summary {
	s := Summary{Frames: len(rows), StaticFrame: -1}
	if len(rows) == 0 {
		return s
	}
	moved := make([]float64, len(rows))
	area := make([]float64, len(rows))
	settle := make([]float64, len(rows))
	frame := make([]float64, len(rows))
	for i, r := range rows {
		moved[i] = float64(r.Moved)
		area[i] = float64(r.RegionArea)
		settle[i] = float64(r.SettleMicros)
		frame[i] = float64(r.SpawnMicros + r.SettleMicros + r.DrainMicros)
		s.TotalSpawned += r.Spawned
		s.TotalDrained += r.Drained
	}
	s.FinalGrains = rows[len(rows)-1].Grains
	for i := len(rows) - 1; i >= 0 && rows[i].Moved == 0; i-- {
		s.StaticFrame = rows[i].Frame
	}
	s.Moved = series(moved)
	s.RegionArea = series(area)
	s.SettleUS = series(settle)
	s.FrameUS = series(frame)
	return s
}

func series(xs []float64) Series {
	mean, std := stat.MeanStdDev(xs, nil)
	sorted := slices.Clone(xs)
	slices.Sort(sorted)
	return Series{
		Mean:   mean,
		StdDev: std,
		P50:    stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P90:    stat.Quantile(0.9, stat.Empirical, sorted, nil),
		Max:    sorted[len(sorted)-1],
	}
}
