package ocean

import (
	"image/color"
	"math"
)

// depthBands are upper bounds of each colour band, shallow to deep. The
// final band covers everything above the last threshold.
var depthBands = [...]float64{0.15, 0.30, 0.42, 0.58, 0.72, 0.85}

type bandColor struct {
	base   color.RGBA
	jitter uint8
}

var bandColors = [len(depthBands) + 1]bandColor{
	{base: color.RGBA{R: 110, G: 190, B: 230, A: 255}, jitter: 15},
	{base: color.RGBA{R: 75, G: 158, B: 208, A: 255}, jitter: 10},
	{base: color.RGBA{R: 55, G: 130, B: 185, A: 255}, jitter: 8},
	{base: color.RGBA{R: 40, G: 110, B: 170, A: 255}, jitter: 7},
	{base: color.RGBA{R: 28, G: 84, B: 140, A: 255}, jitter: 7},
	{base: color.RGBA{R: 18, G: 62, B: 115, A: 255}, jitter: 6},
	{base: color.RGBA{R: 10, G: 40, B: 90, A: 255}, jitter: 5},
}

const shimmerRate = 6

// depthBand returns the band index for a depth in [0,1].
func depthBand(d float64) int {
	for i, limit := range depthBands {
		if d < limit {
			return i
		}
	}
	return len(depthBands)
}

// animatedDepth perturbs the static depth with a few travelling sines.
func animatedDepth(d float64, x, y int, t float64) float64 {
	fx, fy := float64(x), float64(y)
	d += 0.02*math.Sin(fx*0.30+t*1.2) +
		0.015*math.Sin(fy*0.25-t*0.9) +
		0.01*math.Sin((fx+fy)*0.15+t*2.1)
	return clamp01(d)
}

// depthColor maps a depth to its band colour with a per-cell dither. The
// dither is a hash of the cell and a coarse time slot, so identical inputs
// always give identical pixels.
func depthColor(d float64, x, y, slot int) color.RGBA {
	bc := bandColors[depthBand(d)]
	if bc.jitter == 0 {
		return bc.base
	}
	h := hash3(x, y, slot)
	j := uint32(bc.jitter) + 1
	return color.RGBA{
		R: addClamp(bc.base.R, int(h%j)),
		G: addClamp(bc.base.G, int((h>>8)%j)),
		B: addClamp(bc.base.B, int((h>>16)%j)),
		A: 255,
	}
}

func hash3(x, y, z int) uint32 {
	h := uint32(x)*73856093 ^ uint32(y)*19349663 ^ uint32(z)*83492791
	h ^= h >> 16
	h *= 0x7feb352d
	h ^= h >> 15
	h *= 0x846ca68b
	h ^= h >> 16
	return h
}

func addClamp(v uint8, delta int) uint8 {
	n := int(v) + delta
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}

func adjustBrightness(c color.RGBA, amount int) color.RGBA {
	return color.RGBA{
		R: addClamp(c.R, amount),
		G: addClamp(c.G, amount),
		B: addClamp(c.B, amount),
		A: c.A,
	}
}

func blendColors(base, overlay color.RGBA, overlayWeight float64) color.RGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	w := overlayWeight
	inv := 1 - w
	return color.RGBA{
		R: uint8(float64(base.R)*inv + float64(overlay.R)*w + 0.5),
		G: uint8(float64(base.G)*inv + float64(overlay.G)*w + 0.5),
		B: uint8(float64(base.B)*inv + float64(overlay.B)*w + 0.5),
		A: 255,
	}
}

func rgb(hex uint32) color.RGBA {
	return color.RGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 255}
}

func withAlpha(c color.RGBA, a uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}
