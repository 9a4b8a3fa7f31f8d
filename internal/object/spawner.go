package object

import "time"

// Spawner is a periodic timer for one hostile kind, driven by the frame loop.
type Spawner struct {
	Kind     HostileKind
	interval time.Duration
	elapsed  time.Duration
}

// NewSpawner creates a spawner firing at the kind's spawn interval.
func NewSpawner(kind HostileKind) *Spawner {
	return &Spawner{
		Kind:     kind,
		interval: kind.SpawnInterval(),
	}
}

// Advance moves the timer forward by dt and returns how many hostiles are due.
// The first one is due a full interval after the last Reset.
func (s *Spawner) Advance(dt time.Duration) int {
	if s.interval <= 0 {
		return 0
	}
	s.elapsed += dt
	due := 0
	for s.elapsed >= s.interval {
		s.elapsed -= s.interval
		due++
	}
	return due
}

// Reset restarts the interval from zero.
func (s *Spawner) Reset() {
	s.elapsed = 0
}
