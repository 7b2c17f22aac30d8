package ui

import (
	"fmt"
	"image/color"
	"math"

	"pixel-ocean/internal/core"
	"pixel-ocean/internal/ocean"
	"pixel-ocean/internal/render"
)

// OceanView is the read-only renderer surface the overlay inspects.
type OceanView interface {
	Field() *core.FloatGrid
	MotionVectors() []ocean.MotionVector
	Controls() ocean.Controls
	Seed() int64
	Generations() int
	Time() float64
	Paused() bool
}

const depthLevels = 32

var depthPalette = buildDepthPalette()

func buildDepthPalette() []color.RGBA {
	out := make([]color.RGBA, depthLevels)
	for i := range out {
		out[i] = depthRamp(float64(i) / float64(depthLevels-1))
	}
	return out
}

// depthRamp maps a normalised depth, shallow to deep, to an overlay colour.
func depthRamp(t float64) color.RGBA {
	t = clamp01(t)
	stops := [...]struct {
		t   float64
		col color.RGBA
	}{
		{0.0, color.RGBA{R: 240, G: 235, B: 190, A: 200}},
		{0.25, color.RGBA{R: 120, G: 220, B: 200, A: 180}},
		{0.5, color.RGBA{R: 60, G: 150, B: 210, A: 165}},
		{0.75, color.RGBA{R: 50, G: 70, B: 170, A: 170}},
		{1.0, color.RGBA{R: 30, G: 20, B: 80, A: 190}},
	}
	for i := 1; i < len(stops); i++ {
		curr := stops[i]
		if t <= curr.t {
			prev := stops[i-1]
			local := (t - prev.t) / (curr.t - prev.t)
			return lerpRGBA(prev.col, curr.col, local)
		}
	}
	return stops[len(stops)-1].col
}

// FillDepthOverlay writes one RGBA pixel per field cell into buf. Depths are
// stretched to the field's own range and quantised to the depth palette;
// steep cells are drawn more opaque so currents and seed rims stand out.
func FillDepthOverlay(buf []byte, levels []uint8, field *core.FloatGrid) {
	if field.Empty() {
		return
	}
	cells := field.Cells()
	if len(buf) < 4*len(cells) || len(levels) < len(cells) {
		return
	}
	lo, hi := cells[0], cells[0]
	for _, v := range cells {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}
	for i, v := range cells {
		levels[i] = uint8(math.Round((v - lo) / span * (depthLevels - 1)))
	}
	render.FillPalette(buf, levels[:len(cells)], depthPalette)

	w, h := field.W, field.H
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			base := cells[idx]
			maxDiff := 0.0
			if x > 0 {
				maxDiff = math.Max(maxDiff, math.Abs(base-cells[idx-1]))
			}
			if x+1 < w {
				maxDiff = math.Max(maxDiff, math.Abs(base-cells[idx+1]))
			}
			if y > 0 {
				maxDiff = math.Max(maxDiff, math.Abs(base-cells[idx-w]))
			}
			if y+1 < h {
				maxDiff = math.Max(maxDiff, math.Abs(base-cells[idx+w]))
			}
			slope := clamp01(maxDiff / span * 8)
			a := float64(buf[idx*4+3]) * (0.55 + 0.45*slope)
			buf[idx*4+3] = uint8(math.Round(a))
		}
	}
}

type arrow struct {
	calm              bool
	x, y              float64
	tailX, tailY      float64
	tipX, tipY        float64
	bodyX, bodyY      float64
	leftX, leftY      float64
	rightX, rightY    float64
	thickness, radius float64
	col               color.RGBA
}

const (
	calmThreshold    = 0.02
	maxSpeedEstimate = 1.5
	arrowHeadAngle   = math.Pi / 6
)

// motionArrows lays out one arrow per creature, in screen pixels. Slow or
// stationary creatures get a dot instead.
func motionArrows(dst []arrow, vecs []ocean.MotionVector, cell int) []arrow {
	dst = dst[:0]
	if cell <= 0 {
		return dst
	}
	c := float64(cell)
	minLength := c * 1.5
	maxLength := c * 4
	for _, v := range vecs {
		sx := (v.Pos.X + 0.5) * c
		sy := (v.Pos.Y + 0.5) * c
		speed := math.Hypot(v.Velocity.X, v.Velocity.Y)
		if speed < calmThreshold {
			dst = append(dst, arrow{calm: true, x: sx, y: sy, radius: math.Max(c*0.4, 1.5), col: kindColor(v.Kind, 0)})
			continue
		}
		nx, ny := v.Velocity.X/speed, v.Velocity.Y/speed
		norm := clamp01(speed / maxSpeedEstimate)
		length := minLength + (maxLength-minLength)*math.Sqrt(norm)
		head := math.Min(length*0.3, c*1.5)
		tail := length * 0.4

		a := arrow{x: sx, y: sy, col: kindColor(v.Kind, norm)}
		a.tipX, a.tipY = sx+nx*(length-tail), sy+ny*(length-tail)
		a.tailX, a.tailY = sx-nx*tail, sy-ny*tail
		a.bodyX, a.bodyY = a.tipX-nx*head, a.tipY-ny*head
		angle := math.Atan2(ny, nx)
		a.leftX = a.tipX - math.Cos(angle+arrowHeadAngle)*head
		a.leftY = a.tipY - math.Sin(angle+arrowHeadAngle)*head
		a.rightX = a.tipX - math.Cos(angle-arrowHeadAngle)*head
		a.rightY = a.tipY - math.Sin(angle-arrowHeadAngle)*head
		a.thickness = math.Max(1, c*(0.2+0.15*norm))
		dst = append(dst, a)
	}
	return dst
}

func kindColor(k ocean.Kind, t float64) color.RGBA {
	var base color.RGBA
	switch k {
	case ocean.KindFish:
		base = color.RGBA{R: 255, G: 210, B: 90, A: 255}
	case ocean.KindDolphin:
		base = color.RGBA{R: 200, G: 220, B: 255, A: 255}
	default:
		base = color.RGBA{R: 255, G: 150, B: 200, A: 255}
	}
	base.A = uint8(math.Round(140 + 100*clamp01(t)))
	return base
}

// statusLines is the text block drawn in the overlay corner.
func statusLines(v OceanView) []string {
	state := "running"
	if v.Paused() {
		state = "paused"
	}
	var grid core.Size
	if f := v.Field(); f != nil {
		grid = f.Size()
	}
	return []string{
		fmt.Sprintf("seed %d  gen %d", v.Seed(), v.Generations()),
		fmt.Sprintf("t %.2f  %s", v.Time(), state),
		fmt.Sprintf("grid %dx%d  cell %dpx", grid.W, grid.H, v.Controls().CellSize),
		fmt.Sprintf("creatures %d", len(v.MotionVectors())),
	}
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
