// Package loop runs a game session: the per-tick update of every entity,
// the collision and scoring pass, and the hostile spawn timers.
package loop

import (
	"math/rand"
	"time"

	"github.com/tomz197/blaster/internal/loop/config"
	"github.com/tomz197/blaster/internal/object"
	"github.com/tomz197/blaster/internal/physics"
)

// Game controls one session. It is not safe for concurrent use: the
// frontend calls Tick, Click and Start from a single goroutine.
type Game struct {
	state      *State
	screen     object.Screen
	phase      Phase
	finalScore int
	now        time.Duration // Game clock, one TickTime per Tick
	spawners   []*object.Spawner
	rng        *rand.Rand

	// Broad phase for projectile hits, rebuilt every tick
	grid   *physics.SpatialGrid
	nearby []int
}

// Option configures a Game.
type Option func(*Game)

// WithRand makes the game draw all randomness from rng.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

// New creates a game for a playfield of the given size, waiting in
// PhaseStart until Start is called.
func New(screen object.Screen, opts ...Option) *Game {
	g := &Game{
		state:  NewState(screen),
		screen: screen,
		phase:  PhaseStart,
		spawners: []*object.Spawner{
			object.NewSpawner(object.KindEnemy),
			object.NewSpawner(object.KindCreature),
		},
		grid: physics.NewSpatialGrid(screen.Width, screen.Height, collisionGridCellSize),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return g
}

// Start begins a new session: fresh state, score zero, spawn timers rewound.
// Calling it again after game over restarts the game.
func (g *Game) Start() {
	g.state.Reset(g.screen)
	for _, sp := range g.spawners {
		sp.Reset()
	}
	g.now = 0
	g.finalScore = 0
	g.phase = PhasePlaying
}

// Tick runs one frame: trail fade, entity updates, collisions, removals and
// spawning. It does nothing unless the game is playing.
func (g *Game) Tick(surface object.Surface) {
	if g.phase != PhasePlaying {
		return
	}

	s := g.state
	uctx := object.UpdateContext{Now: g.now, Screen: g.screen}
	dctx := object.DrawContext{Surface: surface}

	surface.Fade(config.TrailAlpha)
	s.Player.Draw(dctx)

	for _, p := range s.Particles {
		p.Update(uctx)
		p.Draw(dctx)
	}
	for _, p := range s.Projectiles {
		p.Update(uctx)
		p.Draw(dctx)
	}

	g.indexProjectiles()
	over := g.collide(s.Enemies, uctx, dctx) || g.collide(s.Creatures, uctx, dctx)

	s.compact()

	if over {
		g.phase = PhaseOver
		g.finalScore = s.Score
		return
	}

	for _, sp := range g.spawners {
		for due := sp.Advance(config.TickTime); due > 0; due-- {
			g.spawn(sp.Kind)
		}
	}
	g.now += config.TickTime
}

// Click fires a projectile from the centre toward (x, y). Ignored unless
// the game is playing.
func (g *Game) Click(x, y float64) {
	if g.phase != PhasePlaying {
		return
	}
	cx, cy := g.screen.Center()
	g.state.Projectiles = append(g.state.Projectiles, object.NewProjectile(cx, cy, x, y))
}

// spawn adds a hostile of the given kind just outside the screen.
func (g *Game) spawn(kind object.HostileKind) {
	h := object.NewHostileAtEdge(kind, g.screen, g.rng)
	list := g.state.hostiles(kind)
	*list = append(*list, h)
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the live score.
func (g *Game) Score() int {
	return g.state.Score
}

// FinalScore returns the score at the moment the last session ended.
func (g *Game) FinalScore() int {
	return g.finalScore
}

// Elapsed returns the game time of the current session.
func (g *Game) Elapsed() time.Duration {
	return g.now
}

// Screen returns the playfield size.
func (g *Game) Screen() object.Screen {
	return g.screen
}

// State exposes the session state for rendering and tests.
func (g *Game) State() *State {
	return g.state
}
