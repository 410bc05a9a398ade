// Package telemetry records per-frame statistics for headless runs.
package telemetry

// FrameStats is one CSV row describing a single frame.
type FrameStats struct {
	Run   int `csv:"run"`
	Frame int `csv:"frame"`

	Grains  int `csv:"grains"`
	Spawned int `csv:"spawned"`
	Moved   int `csv:"moved"`
	Drained int `csv:"drained"`

	// Active region after the frame; all -1 when the region is empty.
	RegionMinX int `csv:"region_min_x"`
	RegionMinY int `csv:"region_min_y"`
	RegionMaxX int `csv:"region_max_x"`
	RegionMaxY int `csv:"region_max_y"`
	RegionArea int `csv:"region_area"`

	SpawnMicros  int64 `csv:"spawn_us"`
	SettleMicros int64 `csv:"settle_us"`
	DrainMicros  int64 `csv:"drain_us"`
}
