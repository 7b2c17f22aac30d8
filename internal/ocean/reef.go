package ocean

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/aquilax/go-perlin"
)

const (
	reefNoiseFreq = 0.45
	reefThreshold = 0.35
	reefShadeAmp  = 20
)

var reefColors = [...]color.RGBA{
	{R: 0xFF, G: 0x6B, B: 0x9D, A: 255},
	{R: 0xC7, G: 0x7D, B: 0xFF, A: 255},
	{R: 0xFF, G: 0xA0, B: 0x7A, A: 255},
	{R: 0xFF, G: 0x8A, B: 0xAE, A: 255},
	{R: 0xE7, G: 0x6F, B: 0x51, A: 255},
}

func newReef(pos Vec, w, h int, r *rand.Rand) *Reef {
	reef := &Reef{
		Position: pos,
		W:        w,
		H:        h,
		Mask:     make([]bool, w*h),
		Shade:    make([]int8, w*h),
		Color:    reefColors[r.IntN(len(reefColors))],
	}
	noise := perlin.NewPerlin(2, 2, 3, r.Int64())
	ox := r.Float64() * 64
	oy := r.Float64() * 64
	cx := float64(w-1) / 2
	cy := float64(h-1) / 2
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			ex := (float64(i) - cx) / math.Max(cx+0.5, 1)
			ey := (float64(j) - cy) / math.Max(cy+0.5, 1)
			falloff := 1 - (ex*ex + ey*ey)
			n := noise.Noise2D(ox+float64(i)*reefNoiseFreq, oy+float64(j)*reefNoiseFreq)
			idx := j*w + i
			reef.Mask[idx] = falloff+n*0.8 > reefThreshold
			reef.Shade[idx] = int8(r.IntN(2*reefShadeAmp+1) - reefShadeAmp)
		}
	}
	reef.Mask[int(cy)*w+int(cx)] = true
	return reef
}
