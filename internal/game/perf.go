package game

import "time"

// PerfMonitor accumulates per-frame FPS samples and reports aggregate
// stats on a fixed interval.
type PerfMonitor struct {
	samples  []float64
	lastLog  time.Time
	interval time.Duration
}

// PerfStats is one reporting window's aggregate.
type PerfStats struct {
	AvgFPS float64
	MinFPS float64
	MaxFPS float64
	Frames int
}

// NewPerfMonitor creates a monitor reporting every interval.
func NewPerfMonitor(interval time.Duration) *PerfMonitor {
	return &PerfMonitor{
		lastLog:  time.Now(),
		interval: interval,
	}
}

// Sample records one frame's delta time.
func (p *PerfMonitor) Sample(dt float64) {
	if dt > 0 {
		p.samples = append(p.samples, 1/dt)
	}
}

// Due reports whether a reporting window has elapsed.
func (p *PerfMonitor) Due(now time.Time) bool {
	return now.Sub(p.lastLog) >= p.interval
}

// Stats aggregates the current window. Returns false when no frames
// were sampled.
func (p *PerfMonitor) Stats() (PerfStats, bool) {
	if len(p.samples) == 0 {
		return PerfStats{}, false
	}

	stats := PerfStats{
		MinFPS: p.samples[0],
		MaxFPS: p.samples[0],
		Frames: len(p.samples),
	}
	var sum float64
	for _, fps := range p.samples {
		sum += fps
		if fps < stats.MinFPS {
			stats.MinFPS = fps
		}
		if fps > stats.MaxFPS {
			stats.MaxFPS = fps
		}
	}
	stats.AvgFPS = sum / float64(len(p.samples))
	return stats, true
}

// Reset clears the window and restarts the interval from now.
func (p *PerfMonitor) Reset(now time.Time) {
	p.samples = p.samples[:0]
	p.lastLog = now
}
