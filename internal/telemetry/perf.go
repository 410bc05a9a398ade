package telemetry

import "time"

// Phase names for the frame pipeline.
const (
	PhaseSpawn  = "spawn"
	PhaseSettle = "settle"
	PhaseDrain  = "drain"
)

// PerfCollector times the phases of the current frame.
type PerfCollector struct {
	phases     map[string]time.Duration
	phaseStart time.Time
	lastPhase  string
	now        func() time.Time
}

// NewPerfCollector creates a collector using the wall clock.
func NewPerfCollector() *PerfCollector {
	return &PerfCollector{phases: make(map[string]time.Duration), now: time.Now}
}

// StartFrame clears the timings of the previous frame.
func (p *PerfCollector) StartFrame() {
	clear(p.phases)
	p.lastPhase = ""
}

// StartPhase closes the running phase, if any, and starts timing name.
func (p *PerfCollector) StartPhase(name string) {
	now := p.now()
	p.closePhase(now)
	p.lastPhase = name
	p.phaseStart = now
}

// EndFrame closes the running phase.
func (p *PerfCollector) EndFrame() {
	p.closePhase(p.now())
	p.lastPhase = ""
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.lastPhase == "" {
		return
	}
	p.phases[p.lastPhase] += now.Sub(p.phaseStart)
}

// Phase returns the time spent in name during the current frame.
func (p *PerfCollector) Phase(name string) time.Duration {
	return p.phases[name]
}

// Fill copies the phase timings into stats.
func (p *PerfCollector) Fill(stats *FrameStats) {
	stats.SpawnMicros = p.phases[PhaseSpawn].Microseconds()
	stats.SettleMicros = p.phases[PhaseSettle].Microseconds()
	stats.DrainMicros = p.phases[PhaseDrain].Microseconds()
}
