package desktop

import (
	"errors"
	"image/color"
	"math/rand"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tomz197/blaster/internal/loop"
	"github.com/tomz197/blaster/internal/object"
)

// fakeWorld counts draw calls in place of the GPU-backed buffer.
type fakeWorld struct {
	fades, circles, clears int
}

func (w *fakeWorld) Bounds() (float64, float64) { return 1280, 720 }
func (w *fakeWorld) Fade(float64)                { w.fades++ }
func (w *fakeWorld) Clear()                      { w.clears++ }
func (w *fakeWorld) FillCircle(_, _, _ float64, _ color.Color, _ float64) {
	w.circles++
}

func newTestApp() (*App, *fakeWorld) {
	world := &fakeWorld{}
	return newApp(world, nil, Options{Rand: rand.New(rand.NewSource(3))}), world
}

func TestWithAlpha(t *testing.T) {
	tests := []struct {
		name  string
		clr   color.Color
		alpha float64
		want  color.NRGBA
	}{
		{"opaque", color.White, 1, color.NRGBA{255, 255, 255, 255}},
		{"half", color.RGBA{R: 200, A: 255}, 0.5, color.NRGBA{R: 200, A: 128}},
		{"trail", color.Black, 0.1, color.NRGBA{A: 26}},
		{"clamped high", color.White, 3, color.NRGBA{255, 255, 255, 255}},
		{"clamped low", color.White, -1, color.NRGBA{255, 255, 255, 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := withAlpha(tc.clr, tc.alpha); got != tc.want {
				t.Fatalf("withAlpha = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestStepStartsOnClickOrSpace(t *testing.T) {
	for _, in := range []frameInput{
		{start: true},
		{clicks: [][2]float64{{10, 10}}},
	} {
		a, world := newTestApp()
		if err := a.step(in); err != nil {
			t.Fatalf("step: %v", err)
		}
		if a.game.Phase() != loop.PhasePlaying {
			t.Fatalf("phase = %v after %+v, want playing", a.game.Phase(), in)
		}
		if world.clears != 1 {
			t.Fatalf("world cleared %d times, want 1", world.clears)
		}
		if len(a.game.State().Projectiles) != 0 {
			t.Fatal("starting click also fired")
		}
	}
}

func TestStepFiresAndTicks(t *testing.T) {
	a, world := newTestApp()
	a.step(frameInput{start: true})

	if err := a.step(frameInput{clicks: [][2]float64{{1000, 360}}}); err != nil {
		t.Fatalf("step: %v", err)
	}
	if world.fades != 1 {
		t.Fatalf("fades = %d, want 1", world.fades)
	}
	ps := a.game.State().Projectiles
	if len(ps) != 1 || ps[0].VX <= 0 {
		t.Fatalf("projectiles = %+v, want one heading right", ps)
	}
}

func TestStepQuit(t *testing.T) {
	a, _ := newTestApp()
	if err := a.step(frameInput{quit: true}); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("err = %v, want ebiten.Termination", err)
	}
}

func TestCopyScoreOnGameOver(t *testing.T) {
	a, _ := newTestApp()
	var copied []string
	a.copy = func(s string) error {
		copied = append(copied, s)
		return nil
	}

	a.step(frameInput{start: true})
	a.step(frameInput{copy: true})
	if len(copied) != 0 {
		t.Fatal("copied while playing")
	}

	// Park a hostile on the player.
	s := a.game.State()
	h := object.NewHostile(object.KindEnemy, 640, 360, 10, color.White, 0, 0)
	h.VX, h.VY = 0, 0
	s.Enemies = append(s.Enemies, h)
	a.step(frameInput{})
	if a.game.Phase() != loop.PhaseOver {
		t.Fatalf("phase = %v, want over", a.game.Phase())
	}

	a.step(frameInput{copy: true})
	if len(copied) != 1 || copied[0] != "0" {
		t.Fatalf("copied = %v, want [0]", copied)
	}
	if a.status == "" {
		t.Fatal("no status after copy")
	}

	a.copy = func(string) error { return errors.New("no clipboard") }
	a.step(frameInput{copy: true})
	if a.status != "Clipboard unavailable" {
		t.Fatalf("status = %q", a.status)
	}
	if a.game.Phase() != loop.PhaseOver {
		t.Fatal("copy restarted the game")
	}

	a.step(frameInput{clicks: [][2]float64{{1, 1}}})
	if a.game.Phase() != loop.PhasePlaying || a.status != "" {
		t.Fatalf("phase = %v status = %q after restart", a.game.Phase(), a.status)
	}
}
