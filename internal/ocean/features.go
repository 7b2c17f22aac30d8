package ocean

import (
	"image/color"
	"math/rand/v2"

	rng "pixel-ocean/pkg/core"
)

var fishColors = [...]color.RGBA{
	{R: 0xFF, G: 0x6B, B: 0x6B, A: 255},
	{R: 0xFF, G: 0xD9, B: 0x3D, A: 255},
	{R: 0x6B, G: 0xCB, B: 0x77, A: 255},
	{R: 0x4D, G: 0x96, B: 0xFF, A: 255},
	{R: 0xFF, G: 0x8A, B: 0xAE, A: 255},
	{R: 0xC7, G: 0x7D, B: 0xFF, A: 255},
}

// GenerateFeatures populates a fresh feature collection for a cols*rows
// grid. An empty grid yields no features.
func GenerateFeatures(cols, rows int, r *rand.Rand, p FeatureParams) []Feature {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	g := featureGen{cols: float64(cols), rows: float64(rows), r: r}
	var out []Feature

	for n := g.count(p.Islands); n > 0; n-- {
		out = append(out, newIsland(g.pos(), rng.Range(r, 3, 7), r))
	}
	for n := g.count(p.Reefs); n > 0; n-- {
		out = append(out, newReef(g.pos(), rng.IntRange(r, 3, 7), rng.IntRange(r, 2, 5), r))
	}
	for n := g.count(p.Rocks); n > 0; n-- {
		out = append(out, &Rock{
			Position: g.pos(),
			Size:     rng.IntRange(r, 1, 3),
			Tone:     uint8(rng.IntRange(r, 85, 125)),
		})
	}
	for n := g.count(p.Seaweed); n > 0; n-- {
		out = append(out, &Seaweed{Position: g.pos(), Height: rng.IntRange(r, 3, 7), Phase: rng.Angle(r)})
	}
	for n := g.count(p.Kelp); n > 0; n-- {
		out = append(out, &Kelp{Position: g.pos(), Height: rng.IntRange(r, 6, 12), Phase: rng.Angle(r)})
	}
	for n := g.count(p.Fish); n > 0; n-- {
		out = append(out, &Fish{
			Motion: g.motion(0.3, 0.8),
			Color:  fishColors[r.IntN(len(fishColors))],
		})
	}
	for n := g.count(p.Dolphins); n > 0; n-- {
		out = append(out, &Dolphin{Motion: g.motion(0.5, 1.0), Length: rng.IntRange(r, 3, 5)})
	}
	for n := g.count(p.Jellyfish); n > 0; n-- {
		out = append(out, &Jellyfish{Motion: g.motion(0.1, 0.3), BobPhase: rng.Angle(r)})
	}
	return out
}

type featureGen struct {
	cols, rows float64
	r          *rand.Rand
}

func (g featureGen) count(c CountRange) int {
	c = c.normalized()
	return rng.IntRange(g.r, c.Min, c.Max)
}

func (g featureGen) pos() Vec {
	return Vec{X: g.r.Float64() * g.cols, Y: g.r.Float64() * g.rows}
}

func (g featureGen) motion(minSpeed, maxSpeed float64) Motion {
	return Motion{
		Position: g.pos(),
		Heading:  rng.Angle(g.r),
		Speed:    rng.Range(g.r, minSpeed, maxSpeed),
		Phase:    rng.Angle(g.r),
	}
}
