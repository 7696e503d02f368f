package telemetry

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// PerfStats holds aggregated timing statistics over the window.
type PerfStats struct {
	AvgTickDuration time.Duration
	P95TickDuration time.Duration
	MaxTickDuration time.Duration

	// PhaseAvg holds average durations per phase.
	PhaseAvg map[string]time.Duration

	// PhasePct holds each phase's share of total tick time.
	PhasePct map[string]float64

	TicksPerSecond float64
}

// Stats computes aggregated statistics over the current window.
func (p *PerfCollector) Stats() PerfStats {
	samples := p.window()
	if len(samples) == 0 {
		return PerfStats{
			PhaseAvg: make(map[string]time.Duration),
			PhasePct: make(map[string]float64),
		}
	}

	ticks := make([]float64, len(samples))
	phaseSum := make(map[string]time.Duration)
	var maxTick time.Duration
	for i, s := range samples {
		ticks[i] = float64(s.TickDuration)
		if s.TickDuration > maxTick {
			maxTick = s.TickDuration
		}
		for phase, dur := range s.Phases {
			phaseSum[phase] += dur
		}
	}

	sort.Float64s(ticks)
	mean := stat.Mean(ticks, nil)
	p95 := stat.Quantile(0.95, stat.Empirical, ticks, nil)

	stats := PerfStats{
		AvgTickDuration: time.Duration(mean),
		P95TickDuration: time.Duration(p95),
		MaxTickDuration: maxTick,
		PhaseAvg:        make(map[string]time.Duration, len(phaseSum)),
		PhasePct:        make(map[string]float64, len(phaseSum)),
	}
	if mean > 0 {
		stats.TicksPerSecond = float64(time.Second) / mean
	}

	n := time.Duration(len(samples))
	totalTick := time.Duration(mean * float64(len(samples)))
	for phase, sum := range phaseSum {
		stats.PhaseAvg[phase] = sum / n
		if totalTick > 0 {
			stats.PhasePct[phase] = float64(sum) / float64(totalTick) * 100
		}
	}
	return stats
}
