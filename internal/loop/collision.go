package loop

import (
	"github.com/tomz197/blaster/internal/loop/config"
	"github.com/tomz197/blaster/internal/object"
	"github.com/tomz197/blaster/internal/physics"
)

// collisionGridCellSize must cover the largest hit distance: a full-size
// creature touching a projectile.
const collisionGridCellSize = config.CreatureRadius + config.ProjectileRadius + config.HitEpsilon

// indexProjectiles fills the broad-phase grid with every projectile still on
// screen. Off-screen projectiles never hit anything.
func (g *Game) indexProjectiles() {
	g.grid.Clear()
	for i, p := range g.state.Projectiles {
		if p.Offscreen() {
			continue
		}
		g.grid.Insert(p.X, p.Y, i)
	}
}

// collide advances and draws each hostile, then resolves its contacts.
// It reports true as soon as a hostile touches the player; the remaining
// hostiles are left untouched.
func (g *Game) collide(hostiles []*object.Hostile, uctx object.UpdateContext, dctx object.DrawContext) bool {
	s := g.state
	player := s.Player

	for _, h := range hostiles {
		h.Update(uctx)
		h.Draw(dctx)

		if physics.Touching(player.X, player.Y, player.Radius, h.X, h.Y, h.Radius, config.HitEpsilon) {
			return true
		}

		// Candidates come back sorted, i.e. in container order.
		g.nearby = g.grid.Nearby(h.X, h.Y, g.nearby[:0])
		for _, i := range g.nearby {
			if h.Expired() {
				break
			}
			p := s.Projectiles[i]
			if !physics.Touching(p.X, p.Y, p.Radius, h.X, h.Y, h.Radius, config.HitEpsilon) {
				continue
			}
			g.hit(h, p)
		}
	}
	return false
}

// hit scores a projectile striking a hostile, bursts particles at the point
// of impact and either shrinks or destroys the hostile. The projectile is
// spent either way.
func (g *Game) hit(h *object.Hostile, p *object.Projectile) {
	s := g.state
	s.Score += config.ScoreHit
	s.Particles = append(s.Particles, object.SpawnBurst(p.X, p.Y, h.Radius, h.Color, g.rng)...)

	switch h.Hit(g.now) {
	case object.HitShrunk:
		s.Score += h.Kind.ShrinkScore()
	case object.HitDestroyed:
		s.Score += h.Kind.DestroyScore()
	}
	p.Spend()
}
