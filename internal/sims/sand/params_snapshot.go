package sand

import (
	"strconv"

	"sandfall/internal/core"
)

// Parameters reports the configuration for HUDs and run logs.
func (w *World) Parameters() core.ParameterSnapshot {
	params := w.cfg.Params
	start, end, row := w.DrainSpan()
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Spawn",
			Params: []core.Parameter{
				intParam("spawn_radius", "Spawn radius", params.SpawnRadius),
				intParam("spawn_attempts", "Attempts per frame", params.SpawnAttempts),
			},
		},
		{
			Name:    "Drain",
			Summary: "x " + strconv.Itoa(start) + ".." + strconv.Itoa(end) + " on row " + strconv.Itoa(row),
			Params: []core.Parameter{
				intParam("drain_half_width", "Drain half-width", params.DrainHalfWidth),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}
