package ocean

import (
	"math"
	"math/rand/v2"

	"pixel-ocean/internal/core"
	rng "pixel-ocean/pkg/core"
)

const baseDepth = 0.5

// DepthSeed pulls the field toward Target within Radius of (X, Y).
type DepthSeed struct {
	X, Y   float64
	Target float64
	Radius float64
}

// Current is a flow channel that evens out depth along its polyline.
type Current struct {
	Points   []Vec
	Strength float64
}

// GenerateField builds a depth field of cols*rows cells. It consumes draws
// from r only, so the same seed and dimensions always give the same field.
func GenerateField(cols, rows int, r *rand.Rand, p FieldParams) *core.FloatGrid {
	field := core.NewFloatGrid(cols, rows)
	if field.Empty() {
		return field
	}
	seeds := sampleSeeds(cols, rows, r, p)
	currents := sampleCurrents(cols, rows, r, p)

	cells := field.Cells()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			d := depthAt(float64(x), float64(y), seeds, currents, p.CaptureRadius)
			if p.Noise > 0 {
				d += rng.Signed(r, p.Noise)
			}
			cells[y*cols+x] = clamp01(d)
		}
	}
	return field
}

func sampleSeeds(cols, rows int, r *rand.Rand, p FieldParams) []DepthSeed {
	cr := p.Seeds.normalized()
	n := rng.IntRange(r, cr.Min, cr.Max)
	span := p.SeedRadiusSpan * float64(max(cols, rows))
	seeds := make([]DepthSeed, n)
	for i := range seeds {
		seeds[i] = DepthSeed{
			X:      r.Float64() * float64(cols),
			Y:      r.Float64() * float64(rows),
			Target: r.Float64(),
			Radius: p.SeedRadiusMin + r.Float64()*span,
		}
	}
	return seeds
}

func sampleCurrents(cols, rows int, r *rand.Rand, p FieldParams) []Current {
	cr := p.Currents.normalized()
	n := rng.IntRange(r, cr.Min, cr.Max)
	pr := p.CurrentPoints.normalized()
	currents := make([]Current, n)
	for i := range currents {
		count := rng.IntRange(r, pr.Min, pr.Max)
		pts := make([]Vec, 0, count)
		pos := Vec{X: r.Float64() * float64(cols), Y: r.Float64() * float64(rows)}
		heading := rng.Angle(r)
		for j := 0; j < count; j++ {
			pts = append(pts, pos)
			step := rng.Range(r, p.CurrentStepMin, p.CurrentStepMax)
			heading += rng.Signed(r, p.CurrentJitter)
			pos.X += math.Cos(heading) * step
			pos.Y += math.Sin(heading) * step
		}
		currents[i] = Current{
			Points:   pts,
			Strength: rng.Range(r, p.CurrentStrength[0], p.CurrentStrength[1]),
		}
	}
	return currents
}

func depthAt(x, y float64, seeds []DepthSeed, currents []Current, capture float64) float64 {
	d := baseDepth
	for _, s := range seeds {
		if s.Radius <= 0 {
			continue
		}
		dist := math.Hypot(x-s.X, y-s.Y)
		falloff := 1 - dist/s.Radius
		if falloff <= 0 {
			continue
		}
		d += (s.Target - baseDepth) * falloff
	}
	if capture <= 0 {
		return d
	}
	for _, c := range currents {
		dist := polylineDistance(x, y, c.Points)
		if dist >= capture {
			continue
		}
		w := c.Strength * (1 - dist/capture)
		if w > 1 {
			w = 1
		}
		d += (baseDepth - d) * w
	}
	return d
}

// polylineDistance is the distance to the nearest vertex of the polyline.
func polylineDistance(x, y float64, pts []Vec) float64 {
	best := math.Inf(1)
	for _, p := range pts {
		dx, dy := x-p.X, y-p.Y
		if d2 := dx*dx + dy*dy; d2 < best {
			best = d2
		}
	}
	return math.Sqrt(best)
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
