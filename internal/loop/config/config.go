// Package config centralizes all tunable game parameters.
package config

import (
	"image/color"
	"time"
)

// Playfield used by the terminal frontends. Objects live in these logical
// units; the canvas scales them to whatever the terminal offers.
const (
	ViewWidth  = 1280
	ViewHeight = 720
)

// Terminal render area is clamped to this many cells and centred beyond it.
const (
	MaxTermWidth  = 200
	MaxTermHeight = 60
)

// Frame clock. Entity speeds are per tick.
const (
	TickRate = 60
	TickTime = time.Second / TickRate
)

// Trail effect: opacity of the black layer painted over each frame.
const TrailAlpha = 0.1

// Player
const PlayerRadius = 10.0

var PlayerColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Projectiles
const (
	ProjectileRadius = 5.0
	ProjectileSpeed  = 5.0 // Units per tick
)

var ProjectileColor = color.RGBA{R: 128, G: 128, B: 128, A: 255}

// Hostiles
const (
	HostileSpeed = 1.0 // Units per tick, both kinds

	EnemyRadiusMin     = 5.0
	EnemyRadiusMax     = 25.0
	EnemySpawnInterval = 1400 * time.Millisecond

	CreatureRadius        = 30.0
	CreatureSpawnInterval = 8000 * time.Millisecond
)

var CreatureColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Hits
const (
	HitEpsilon       = 1.0  // Edge gap below which two circles touch
	ShrinkAmount     = 10.0 // Radius lost per non-lethal hit
	MinHostileRadius = 5.0  // A hit that would leave the radius at or below this destroys
	ShrinkDuration   = 500 * time.Millisecond
)

// Scoring
const (
	ScoreHit             = 100
	ScoreShrinkEnemy     = 100
	ScoreShrinkCreature  = 200
	ScoreDestroyEnemy    = 200
	ScoreDestroyCreature = 300
)

// Particles
const (
	ParticleFriction  = 0.98 // Velocity multiplier per tick
	ParticleAlphaStep = 0.01 // Opacity lost per tick
	ParticleMaxRadius = 2.0
	ParticleMaxSpeed  = 5.0
)

// Shutdown
const (
	ShutdownDisplaySeconds = 10.0 // Seconds to show shutdown message before auto-disconnect
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Client rendering
const (
	ClientTargetFPS       = TickRate
	ClientTargetFrameTime = time.Second / ClientTargetFPS
)
