//go:build ebiten

package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"pixel-ocean/internal/core"
	"pixel-ocean/internal/ocean"
	"pixel-ocean/internal/render"
	"pixel-ocean/internal/ui"
)

// Game adapts the ocean renderer to the ebiten.Game interface.
type Game struct {
	ocean   *ocean.Renderer
	painter *render.Painter
	hud     *ui.HUD
	overlay *ui.Overlay
	cursor  *Cursor
	timer   *core.FrameTimer

	view core.Size
	log  logrus.FieldLogger
}

// New constructs a Game from cfg. The HUD takes hudWidth pixels to the
// right of the ocean.
func New(cfg ocean.Config, hudWidth int, log logrus.FieldLogger) *Game {
	g := &Game{
		painter: render.NewPainter(),
		cursor:  &Cursor{},
		timer:   core.NewFrameTimer(time.Duration(cfg.Motion.MaxFrameDelta * float64(ocean.FrameDuration))),
		view:    core.Size{W: cfg.Width, H: cfg.Height},
		log:     log,
	}
	g.ocean = ocean.New(cfg, g.painter, g.cursor, ocean.WithLogger(log))
	g.hud = ui.NewHUD(g.ocean, hudWidth)
	g.overlay = ui.NewOverlay(g.ocean)
	return g
}

// Renderer exposes the underlying ocean renderer.
func (g *Game) Renderer() *ocean.Renderer { return g.ocean }

// Update handles input and advances the ocean by the measured frame time.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ocean.TogglePause()
		g.timer.Restart()
		g.log.WithField("paused", g.ocean.Paused()).Info("pause toggled")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ocean.Regenerate()
		g.log.WithField("generation", g.ocean.Generations()).Info("ocean regenerated")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		seed := time.Now().UnixNano()
		g.ocean.Reset(seed)
		g.log.WithField("seed", seed).Info("ocean reseeded")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && g.ocean.Paused() {
		g.ocean.StepFrame()
	}

	g.overlay.Update()
	g.hud.Update(g.view.W)

	mx, my := ebiten.CursorPosition()
	g.cursor.Observe(mx, my, g.view)

	g.ocean.Tick(g.timer.Elapsed())
	return nil
}

// Draw renders the last presented frame, the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.view.W, g.view.H)
}

// Layout gives the ocean everything left of the HUD and resizes it to match.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := max(outsideWidth-g.hud.Width(), 0)
	h := max(outsideHeight, 0)
	g.view = core.Size{W: w, H: h}
	g.ocean.Resize(w, h)
	return outsideWidth, outsideHeight
}
