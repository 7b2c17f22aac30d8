package ocean

import (
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"

	"pixel-ocean/internal/core"
	"pixel-ocean/internal/render"
	rng "pixel-ocean/pkg/core"
	"pixel-ocean/pkg/logger"
)

// FrameDuration is the wall-clock length of one simulation frame.
const FrameDuration = time.Second / 60

const (
	streamGenerate uint64 = iota
	streamSimulate
)

// Renderer owns the ocean state and drives it one tick at a time. It is not
// safe for concurrent use.
type Renderer struct {
	cfg      Config
	controls Controls

	viewport core.Size
	state    State
	frame    *render.Frame

	surface core.Surface
	pointer core.PointerSource

	seed   int64
	genRNG *rand.Rand
	simRNG *rand.Rand

	paused      bool
	generations int

	log logrus.FieldLogger
}

// Option customises a Renderer.
type Option func(*Renderer)

// WithLogger routes renderer logs to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.log = l
		}
	}
}

// New returns a renderer sized to cfg.Width x cfg.Height and generates the
// first ocean. A nil surface discards frames; a nil pointer keeps the boat
// aimed at the viewport centre.
func New(cfg Config, surface core.Surface, pointer core.PointerSource, opts ...Option) *Renderer {
	if surface == nil {
		surface = core.DiscardSurface{}
	}
	r := &Renderer{
		cfg:      cfg,
		controls: cfg.Controls.Sanitize(),
		frame:    render.NewFrame(0, 0),
		surface:  surface,
		pointer:  pointer,
		log:      logger.Log,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.reseed(cfg.Seed)
	r.viewport = core.Size{W: max(cfg.Width, 0), H: max(cfg.Height, 0)}
	r.frame.Resize(r.viewport.W, r.viewport.H)
	r.state.Boat = Boat{X: float64(r.viewport.W) / 2, Y: float64(r.viewport.H) / 2}
	r.relayout(true)
	return r
}

// Name identifies the renderer in UI titles.
func (r *Renderer) Name() string { return "pixel ocean" }

// Resize adapts the renderer to a new viewport. The ocean is regenerated
// only when the grid dimensions change.
func (r *Renderer) Resize(w, h int) {
	size := core.Size{W: max(w, 0), H: max(h, 0)}
	if size == r.viewport {
		return
	}
	r.viewport = size
	r.frame.Resize(size.W, size.H)
	r.log.WithFields(logrus.Fields{"width": size.W, "height": size.H}).Debug("viewport resized")
	r.relayout(false)
}

// relayout recomputes grid dimensions and regenerates when they changed.
func (r *Renderer) relayout(force bool) {
	grid := r.viewport.CeilDiv(r.controls.CellSize)
	if !force && grid.W == r.state.Cols && grid.H == r.state.Rows {
		return
	}
	r.generate(grid)
}

// Regenerate replaces the field and every feature using the next draws of
// the generation RNG. The boat and clock are kept.
func (r *Renderer) Regenerate() {
	r.generate(core.Size{W: r.state.Cols, H: r.state.Rows})
}

// Reset reseeds both RNGs and regenerates. A zero seed falls back to the
// configured seed.
func (r *Renderer) Reset(seed int64) {
	if seed == 0 {
		seed = r.cfg.Seed
	}
	r.reseed(seed)
	r.Regenerate()
}

func (r *Renderer) reseed(seed int64) {
	r.seed = seed
	r.genRNG = rng.NewRand(seed, streamGenerate)
	r.simRNG = rng.NewRand(seed, streamSimulate)
}

func (r *Renderer) generate(grid core.Size) {
	field := GenerateField(grid.W, grid.H, r.genRNG, r.cfg.Field)
	features := GenerateFeatures(grid.W, grid.H, r.genRNG, r.cfg.Features)

	r.state.Cols, r.state.Rows = grid.W, grid.H
	r.state.Field = field
	r.state.Features = features
	r.generations++

	r.log.WithFields(logrus.Fields{
		"cols":       grid.W,
		"rows":       grid.H,
		"features":   len(features),
		"seed":       r.seed,
		"generation": r.generations,
	}).Debug("ocean generated")
}

// Tick runs one frame: step the simulation by elapsed, composite and
// present. A paused renderer does nothing.
func (r *Renderer) Tick(elapsed time.Duration) {
	if r.paused {
		return
	}
	r.Advance(float64(elapsed) / float64(FrameDuration))
	r.Render()
	r.frame.Present(r.surface)
}

// Advance steps the simulation by dt frames without drawing.
func (r *Renderer) Advance(dt float64) {
	if r.paused {
		return
	}
	Step(&r.state, dt, r.target(), r.controls, r.cfg.Motion, r.simRNG)
}

// StepFrame advances exactly one frame, composites and presents, even
// while paused.
func (r *Renderer) StepFrame() {
	Step(&r.state, 1, r.target(), r.controls, r.cfg.Motion, r.simRNG)
	r.Render()
	r.frame.Present(r.surface)
}

// Render composites the current state into the frame buffer.
func (r *Renderer) Render() {
	Render(&r.state, r.frame, r.controls.CellSize, r.controls)
}

func (r *Renderer) target() Vec {
	if r.pointer == nil {
		return Vec{X: float64(r.viewport.W) / 2, Y: float64(r.viewport.H) / 2}
	}
	x, y := r.pointer.Pointer()
	return Vec{X: x, Y: y}
}

// Pause freezes the clock and drawing.
func (r *Renderer) Pause() { r.paused = true }

// Resume continues from the frozen state.
func (r *Renderer) Resume() { r.paused = false }

// TogglePause flips between running and paused.
func (r *Renderer) TogglePause() { r.paused = !r.paused }

// Paused reports whether the renderer is paused.
func (r *Renderer) Paused() bool { return r.paused }

// Controls returns the active control values.
func (r *Renderer) Controls() Controls { return r.controls }

// SetControls applies a full control set. A cell size change re-lays out
// the grid.
func (r *Renderer) SetControls(c Controls) {
	r.controls = c.Sanitize()
	r.relayout(false)
}

// Viewport returns the viewport size in pixels.
func (r *Renderer) Viewport() core.Size { return r.viewport }

// GridSize returns the grid dimensions in cells.
func (r *Renderer) GridSize() core.Size { return core.Size{W: r.state.Cols, H: r.state.Rows} }

// Field exposes the static depth field.
func (r *Renderer) Field() *core.FloatGrid { return r.state.Field }

// Features exposes the current feature collection.
func (r *Renderer) Features() []Feature { return r.state.Features }

// Boat returns the boat state.
func (r *Renderer) Boat() Boat { return r.state.Boat }

// Time returns the animation clock.
func (r *Renderer) Time() float64 { return r.state.Clock.Time }

// Frame exposes the composited pixel buffer.
func (r *Renderer) Frame() *render.Frame { return r.frame }

// Seed returns the active seed.
func (r *Renderer) Seed() int64 { return r.seed }

// Generations counts how many times the ocean has been generated.
func (r *Renderer) Generations() int { return r.generations }

// MotionVectors reports position and velocity, in cells per frame, for
// every moving creature.
func (r *Renderer) MotionVectors() []MotionVector {
	var out []MotionVector
	for _, f := range r.state.Features {
		var m *Motion
		mult := 1.0
		switch ft := f.(type) {
		case *Fish:
			m, mult = &ft.Motion, r.controls.FishSpeed
		case *Dolphin:
			m, mult = &ft.Motion, r.controls.DolphinSpeed
		case *Jellyfish:
			m, mult = &ft.Motion, r.controls.DolphinSpeed
		default:
			continue
		}
		speed := m.Speed * mult * r.controls.AnimationSpeed
		out = append(out, MotionVector{Kind: f.Kind(), Pos: m.Position, Velocity: velocity(m.Heading, speed)})
	}
	return out
}

// MotionVector is a creature's position and per-frame displacement.
type MotionVector struct {
	Kind     Kind
	Pos      Vec
	Velocity Vec
}
