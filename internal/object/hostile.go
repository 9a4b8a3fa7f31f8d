package object

import (
	"image/color"
	"math/rand"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/tomz197/blaster/internal/loop/config"
	"github.com/tomz197/blaster/internal/physics"
)

// HostileKind selects the spawn and scoring rules of a hostile.
type HostileKind int

const (
	KindEnemy    HostileKind = iota // Small, coloured, frequent
	KindCreature                    // Large, white, rare, worth more
)

type kindSpec struct {
	name          string
	spawnInterval time.Duration
	shrinkScore   int
	destroyScore  int
}

var kindSpecs = [...]kindSpec{
	KindEnemy: {
		name:          "enemy",
		spawnInterval: config.EnemySpawnInterval,
		shrinkScore:   config.ScoreShrinkEnemy,
		destroyScore:  config.ScoreDestroyEnemy,
	},
	KindCreature: {
		name:          "creature",
		spawnInterval: config.CreatureSpawnInterval,
		shrinkScore:   config.ScoreShrinkCreature,
		destroyScore:  config.ScoreDestroyCreature,
	},
}

func (k HostileKind) String() string {
	return kindSpecs[k].name
}

// SpawnInterval returns how often a hostile of this kind appears.
func (k HostileKind) SpawnInterval() time.Duration {
	return kindSpecs[k].spawnInterval
}

// ShrinkScore is awarded, on top of config.ScoreHit, for a non-lethal hit.
func (k HostileKind) ShrinkScore() int {
	return kindSpecs[k].shrinkScore
}

// DestroyScore is awarded, on top of config.ScoreHit, for a lethal hit.
func (k HostileKind) DestroyScore() int {
	return kindSpecs[k].destroyScore
}

// HitResult is the outcome of a projectile striking a hostile.
type HitResult int

const (
	HitShrunk HitResult = iota
	HitDestroyed
)

// Hostile moves in a straight line toward the player. Projectile hits shrink
// it until it is too small to survive another one.
type Hostile struct {
	Circle
	VX, VY float64 // Units per tick
	Kind   HostileKind

	shrink    Tween
	shrinking bool
	removed   bool
}

// NewHostile creates a hostile at (x, y) heading toward (targetX, targetY).
func NewHostile(kind HostileKind, x, y, radius float64, clr color.Color, targetX, targetY float64) *Hostile {
	ux, uy := physics.Heading(x, y, targetX, targetY)
	return &Hostile{
		Circle: Circle{X: x, Y: y, Radius: radius, Color: clr},
		VX:     ux * config.HostileSpeed,
		VY:     uy * config.HostileSpeed,
		Kind:   kind,
	}
}

// NewHostileAtEdge creates a hostile of the given kind just outside a random
// edge of screen, aimed at its centre.
func NewHostileAtEdge(kind HostileKind, screen Screen, rng *rand.Rand) *Hostile {
	var radius float64
	var clr color.Color
	switch kind {
	case KindCreature:
		radius = config.CreatureRadius
		clr = config.CreatureColor
	default:
		radius = config.EnemyRadiusMin + rng.Float64()*(config.EnemyRadiusMax-config.EnemyRadiusMin)
		clr = RandomHue(rng)
	}

	var x, y float64
	if rng.Float64() < 0.5 {
		// Left or right edge
		x = -radius
		if rng.Float64() < 0.5 {
			x = screen.Width + radius
		}
		y = rng.Float64() * screen.Height
	} else {
		// Top or bottom edge
		x = rng.Float64() * screen.Width
		y = -radius
		if rng.Float64() < 0.5 {
			y = screen.Height + radius
		}
	}

	cx, cy := screen.Center()
	return NewHostile(kind, x, y, radius, clr, cx, cy)
}

// RandomHue returns a mid-saturation, mid-lightness colour with a random hue.
func RandomHue(rng *rand.Rand) color.RGBA {
	r, g, b := colorful.Hsl(rng.Float64()*360, 0.5, 0.5).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Hit applies a projectile hit at game time now. A hostile that would drop to
// config.MinHostileRadius or below is removed; otherwise it starts shrinking
// by config.ShrinkAmount from its current radius.
func (h *Hostile) Hit(now time.Duration) HitResult {
	target := h.Radius - config.ShrinkAmount
	if target <= config.MinHostileRadius {
		h.removed = true
		return HitDestroyed
	}
	h.shrink = Tween{
		From:     h.Radius,
		To:       target,
		Start:    now,
		Duration: config.ShrinkDuration,
	}
	h.shrinking = true
	return HitShrunk
}

// Shrinking reports whether a shrink animation is in progress.
func (h *Hostile) Shrinking() bool {
	return h.shrinking
}

// ShrinkTarget returns the radius the hostile is animating toward, or its
// current radius when it is not shrinking.
func (h *Hostile) ShrinkTarget() float64 {
	if !h.shrinking {
		return h.Radius
	}
	return h.shrink.To
}

// Update moves the hostile and advances its shrink animation.
func (h *Hostile) Update(ctx UpdateContext) {
	h.X += h.VX
	h.Y += h.VY
	if h.shrinking {
		h.Radius = h.shrink.Value(ctx.Now)
		if h.shrink.Done(ctx.Now) {
			h.shrinking = false
		}
	}
}

// Draw renders the hostile.
func (h *Hostile) Draw(ctx DrawContext) {
	h.fill(ctx.Surface, 1)
}

// Expired reports whether the hostile was destroyed.
func (h *Hostile) Expired() bool {
	return h.removed
}
