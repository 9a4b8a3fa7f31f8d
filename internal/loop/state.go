package loop

import (
	"github.com/tomz197/blaster/internal/object"
)

// Phase is the current stage of a game session.
type Phase int

const (
	PhaseStart   Phase = iota // Waiting for the first start
	PhasePlaying              // Frame loop running
	PhaseOver                 // A hostile reached the player
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// State holds everything that lives for one session: the player, the four
// entity containers and the score. Each entity belongs to exactly one
// container, kept in insertion order.
type State struct {
	Player      *object.Player
	Projectiles []*object.Projectile
	Enemies     []*object.Hostile
	Creatures   []*object.Hostile
	Particles   []*object.Particle
	Score       int
}

// NewState creates a fresh state for a playfield of the given size.
func NewState(screen object.Screen) *State {
	s := &State{}
	s.Reset(screen)
	return s
}

// Reset empties all containers, zeroes the score and rebuilds the player.
func (s *State) Reset(screen object.Screen) {
	s.Player = object.NewPlayer(screen)
	s.Projectiles = clearSlice(s.Projectiles)
	s.Enemies = clearSlice(s.Enemies)
	s.Creatures = clearSlice(s.Creatures)
	s.Particles = clearSlice(s.Particles)
	s.Score = 0
}

// hostiles returns the container for the given kind.
func (s *State) hostiles(kind object.HostileKind) *[]*object.Hostile {
	if kind == object.KindCreature {
		return &s.Creatures
	}
	return &s.Enemies
}

// compact drops every expired entity.
func (s *State) compact() {
	s.Projectiles = object.Compact(s.Projectiles)
	s.Enemies = object.Compact(s.Enemies)
	s.Creatures = object.Compact(s.Creatures)
	s.Particles = object.Compact(s.Particles)
}

// clearSlice empties a slice, keeping its capacity but not its references.
func clearSlice[T any](xs []T) []T {
	clear(xs)
	return xs[:0]
}
