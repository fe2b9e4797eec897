package engine

import "time"

// Statistics are live, mutable counters. All fields but HashesPerSecond are
// monotonically non-decreasing over a run; HashesPerSecond is recomputed
// from the other two each time UpdateThroughput runs.
type Statistics struct {
	GuessesTried    uint64
	HashesComputed  uint64
	TargetsFound    int
	TargetsTotal    int
	StartTime       time.Time
	HashesPerSecond float64
}

// NewStatistics initialises counters for a run against targetsTotal targets.
func NewStatistics(targetsTotal int) Statistics {
	return Statistics{
		TargetsTotal: targetsTotal,
		StartTime:    time.Now(),
	}
}

// Elapsed returns monotonic seconds since StartTime.
func (s Statistics) Elapsed() float64 {
	return time.Since(s.StartTime).Seconds()
}

// UpdateThroughput sets HashesPerSecond to HashesComputed/elapsed when
// elapsed > 0, else 0.
func (s *Statistics) UpdateThroughput() {
	elapsed := s.Elapsed()
	if elapsed > 0 {
		s.HashesPerSecond = float64(s.HashesComputed) / elapsed
	} else {
		s.HashesPerSecond = 0
	}
}
