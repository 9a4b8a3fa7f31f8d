package client

import (
	"bufio"
	"bytes"
	"errors"
	"image/color"
	"math/rand"
	"strings"
	"testing"

	"github.com/tomz197/blaster/internal/input"
	"github.com/tomz197/blaster/internal/loop"
	"github.com/tomz197/blaster/internal/loop/server"
	"github.com/tomz197/blaster/internal/object"
)

func fixedSize(w, h int) func() (int, int, error) {
	return func() (int, int, error) { return w, h, nil }
}

func newTestClient(t *testing.T, gs server.GameServer, in string) (*Client, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	c, err := NewClient(gs, bufio.NewReader(strings.NewReader(in)), &out, ClientOptions{
		TermSizeFunc: fixedSize(80, 24),
		Username:     "tester",
		Rand:         rand.New(rand.NewSource(1)),
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c, &out
}

func TestClampTermSize(t *testing.T) {
	tests := []struct {
		w, h                   int
		rw, rh, offCol, offRow int
	}{
		{80, 24, 80, 24, 0, 0},
		{200, 60, 200, 60, 0, 0},
		{300, 100, 200, 60, 50, 20},
		{201, 24, 200, 24, 0, 0},
	}
	for _, tc := range tests {
		rw, rh, oc, or := clampTermSize(tc.w, tc.h)
		if rw != tc.rw || rh != tc.rh || oc != tc.offCol || or != tc.offRow {
			t.Fatalf("clampTermSize(%d, %d) = %d %d %d %d, want %d %d %d %d",
				tc.w, tc.h, rw, rh, oc, or, tc.rw, tc.rh, tc.offCol, tc.offRow)
		}
	}
}

func TestNewClientServerFull(t *testing.T) {
	gs := server.NewServer(1)
	newTestClient(t, gs, "")

	_, err := NewClient(gs, bufio.NewReader(strings.NewReader("")), &bytes.Buffer{}, ClientOptions{
		TermSizeFunc: fixedSize(80, 24),
	})
	if !errors.Is(err, server.ErrServerFull) {
		t.Fatalf("err = %v, want ErrServerFull", err)
	}
}

func TestRunQuitsAndUnregisters(t *testing.T) {
	gs := server.NewServer(0)
	c, out := newTestClient(t, gs, "q")

	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if gs.Players() != 0 {
		t.Fatalf("Players = %d after Run, want 0", gs.Players())
	}
	got := out.String()
	if !strings.Contains(got, "\033[?1000h\033[?1006h") {
		t.Fatal("mouse reporting never enabled")
	}
	if !strings.Contains(got, "\033[?1006l\033[?1000l") {
		t.Fatal("mouse reporting left on")
	}
}

func TestStartAndFire(t *testing.T) {
	c, _ := newTestClient(t, server.NewServer(0), "")

	c.state.Input = input.Input{Clicks: []input.Click{{Col: 1, Row: 1}}}
	c.updateStartState()
	if c.view() != ViewPlaying {
		t.Fatalf("view = %v after click on start screen, want playing", c.view())
	}

	// Right edge, middle row.
	c.state.Input = input.Input{Clicks: []input.Click{{Col: 80, Row: 12}, {Col: 200, Row: 1}}}
	c.updatePlayingState()

	ps := c.game.State().Projectiles
	if len(ps) != 1 {
		t.Fatalf("%d projectiles, want 1 (second click is outside the canvas)", len(ps))
	}
	if ps[0].VX <= 0 {
		t.Fatalf("projectile heading left: VX = %v", ps[0].VX)
	}
}

func TestGameOverReportsScore(t *testing.T) {
	gs := server.NewServer(0)
	c, _ := newTestClient(t, gs, "")
	other, _ := gs.RegisterClient("other")
	gs.ReportScore(other.ID, 50)

	c.state.Input = input.Input{Space: true}
	c.updateStartState()

	s := c.game.State()
	// One destroyed enemy, then contact with the player.
	far := object.NewHostile(object.KindEnemy, 100, 100, 12, color.White, 0, 0)
	far.VX, far.VY = 0, 0
	shot := object.NewProjectile(100, 100, 0, 0)
	shot.VX, shot.VY = 0, 0
	near := object.NewHostile(object.KindEnemy, 640, 360, 12, color.White, 0, 0)
	s.Enemies = append(s.Enemies, far, near)
	s.Projectiles = append(s.Projectiles, shot)

	c.state.Input = input.Input{}
	c.updatePlayingState()

	if c.game.Phase() != loop.PhaseOver {
		t.Fatalf("phase = %v, want over", c.game.Phase())
	}
	if c.view() != ViewOver {
		t.Fatalf("view = %v, want over", c.view())
	}
	top := gs.TopScores(5)
	if len(top) != 2 || top[0].Username != "tester" || top[0].Score != c.game.FinalScore() {
		t.Fatalf("TopScores = %+v, want tester first with %d", top, c.game.FinalScore())
	}

	// Clicks must not skip the game over screen; keys restart.
	c.state.Input = input.Input{Clicks: []input.Click{{Col: 5, Row: 5}}}
	c.updateOverState()
	if c.view() != ViewOver {
		t.Fatal("click restarted the game")
	}
	c.state.Input = input.Input{Enter: true}
	c.updateOverState()
	if c.view() != ViewPlaying || c.game.Score() != 0 {
		t.Fatalf("view = %v score = %d after restart", c.view(), c.game.Score())
	}
}

func TestShutdownEvent(t *testing.T) {
	gs := server.NewServer(0)
	c, _ := newTestClient(t, gs, "")

	c.handle.EventsCh <- server.ClientEvent{Type: server.EventServerShutdown}
	c.processServerEvents()
	if c.view() != ViewShutdown {
		t.Fatalf("view = %v, want shutdown", c.view())
	}

	c.state.delta = 11e9 // Longer than the shutdown countdown
	c.updateShutdownState()
	if c.state.Running {
		t.Fatal("client still running after the shutdown countdown")
	}
}

func TestDrawFrameShowsHUD(t *testing.T) {
	c, out := newTestClient(t, server.NewServer(0), "")

	if err := c.drawFrame(); err != nil {
		t.Fatalf("drawFrame: %v", err)
	}
	if !strings.Contains(out.String(), "Controls") {
		t.Fatal("start screen not drawn")
	}

	c.state.Input = input.Input{Space: true}
	c.updateStartState()
	c.updatePlayingState()
	out.Reset()
	if err := c.drawFrame(); err != nil {
		t.Fatalf("drawFrame: %v", err)
	}
	if !strings.Contains(out.String(), "Score: 0") {
		t.Fatalf("playing HUD missing score: %q", out.String())
	}
}
