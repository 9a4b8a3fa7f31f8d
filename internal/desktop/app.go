// Package desktop runs the game in a native window with ebiten.
package desktop

import (
	"fmt"
	"image/color"
	"math/rand"
	"strconv"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/tomz197/blaster/internal/loop"
	"github.com/tomz197/blaster/internal/loop/config"
	"github.com/tomz197/blaster/internal/object"
	"golang.org/x/image/font"
)

const hudFontSize = 22

// statusDuration is how long a clipboard status message stays on screen.
const statusDuration = 3 * time.Second

// frameInput is what the player did since the last update.
type frameInput struct {
	start  bool
	copy   bool
	quit   bool
	clicks [][2]float64
}

// worldSurface is the drawing target the game ticks into.
type worldSurface interface {
	object.Surface
	Clear()
}

// App implements ebiten.Game for a single local session.
type App struct {
	game    *loop.Game
	world   worldSurface
	face    font.Face
	copy    func(string) error
	status  string
	statusT time.Time
}

// Options configures the app.
type Options struct {
	Rand *rand.Rand // Seeded from the clock if nil
}

// New creates the app with its offscreen world buffer and HUD font.
func New(opts Options) (*App, error) {
	face, err := loadFace(hudFontSize)
	if err != nil {
		return nil, err
	}
	world := newSurface(config.ViewWidth, config.ViewHeight)
	return newApp(world, face, opts), nil
}

func newApp(world worldSurface, face font.Face, opts Options) *App {
	var gameOpts []loop.Option
	if opts.Rand != nil {
		gameOpts = append(gameOpts, loop.WithRand(opts.Rand))
	}
	return &App{
		game:  loop.New(object.ScreenOf(world), gameOpts...),
		world: world,
		face:  face,
		copy:  clipboard.WriteAll,
	}
}

// Update reads input and advances the game one tick.
func (a *App) Update() error {
	return a.step(readInput())
}

// readInput collects edge-triggered keys and clicks for this tick.
func readInput() frameInput {
	var in frameInput
	in.start = inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	in.copy = inpututil.IsKeyJustPressed(ebiten.KeyC)
	in.quit = inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		in.clicks = append(in.clicks, [2]float64{float64(x), float64(y)})
	}
	return in
}

// step applies one tick of input. It returns ebiten.Termination on quit.
func (a *App) step(in frameInput) error {
	if in.quit {
		return ebiten.Termination
	}

	switch a.game.Phase() {
	case loop.PhaseStart, loop.PhaseOver:
		if in.copy && a.game.Phase() == loop.PhaseOver {
			a.copyScore()
		}
		if in.start || len(in.clicks) > 0 {
			a.world.Clear()
			a.status = ""
			a.game.Start()
		}
	case loop.PhasePlaying:
		for _, c := range in.clicks {
			a.game.Click(c[0], c[1])
		}
		a.game.Tick(a.world)
	}
	return nil
}

// copyScore puts the final score on the system clipboard.
func (a *App) copyScore() {
	score := strconv.Itoa(a.game.FinalScore())
	if err := a.copy(score); err != nil {
		a.setStatus("Clipboard unavailable")
		return
	}
	a.setStatus("Copied " + score + " to clipboard")
}

func (a *App) setStatus(msg string) {
	a.status = msg
	a.statusT = time.Now()
}

// Draw blits the world buffer and draws the HUD on top.
func (a *App) Draw(screen *ebiten.Image) {
	if s, ok := a.world.(*surface); ok {
		screen.DrawImage(s.img, nil)
	}

	h := config.ViewHeight
	switch a.game.Phase() {
	case loop.PhaseStart:
		a.drawCentered(screen, "BLASTER", h/2-60, color.White)
		a.drawCentered(screen, "Click to fire. Don't let anything reach you.", h/2-10, color.White)
		a.drawCentered(screen, "Press SPACE or click to start", h/2+30, config.ProjectileColor)
	case loop.PhasePlaying:
		text.Draw(screen, fmt.Sprintf("Score: %d", a.game.Score()), a.face, 16, 32, color.White)
		elapsed := a.game.Elapsed().Truncate(time.Second).String()
		text.Draw(screen, elapsed, a.face, 16, h-16, config.ProjectileColor)
	case loop.PhaseOver:
		a.drawCentered(screen, "GAME OVER", h/2-60, color.White)
		a.drawCentered(screen, fmt.Sprintf("Final score: %d", a.game.FinalScore()), h/2-20, color.White)
		a.drawCentered(screen, "SPACE or click to play again, C to copy your score", h/2+30, config.ProjectileColor)
		if a.status != "" && time.Since(a.statusT) < statusDuration {
			a.drawCentered(screen, a.status, h/2+70, config.ProjectileColor)
		}
	}
}

// drawCentered draws s centred horizontally with its baseline at y.
func (a *App) drawCentered(screen *ebiten.Image, s string, y int, clr color.Color) {
	bounds := text.BoundString(a.face, s)
	x := (config.ViewWidth - bounds.Dx()) / 2
	text.Draw(screen, s, a.face, x, y, clr)
}

// Layout keeps the logical field size so cursor positions need no scaling.
func (a *App) Layout(_, _ int) (int, int) {
	return config.ViewWidth, config.ViewHeight
}
