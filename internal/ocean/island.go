package ocean

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/ojrac/opensimplex-go"
)

const (
	islandJitter     = 1.5
	islandNoiseScale = 1.3
	palmMinRadius    = 5
)

var (
	shoreColors = [...]color.RGBA{
		{R: 194, G: 178, B: 128, A: 255},
		{R: 212, G: 197, B: 169, A: 255},
		{R: 203, G: 187, B: 146, A: 255},
	}
	vegetationColors = [...]color.RGBA{
		{R: 34, G: 139, B: 34, A: 255},
		{R: 46, G: 125, B: 50, A: 255},
		{R: 60, G: 150, B: 62, A: 255},
	}
)

// Island is a static blob of land. Its colour map is derived from the mask
// on first use and cached for the lifetime of the instance.
type Island struct {
	Position Vec
	Radius   float64
	W, H     int
	Mask     []bool
	Edge     []bool
	Palm     bool
	Phase    float64

	tint        []uint8
	colors      []color.RGBA
	colorBuilds int
}

func newIsland(pos Vec, radius float64, r *rand.Rand) *Island {
	half := int(math.Ceil(radius + islandJitter))
	size := 2*half + 1
	isl := &Island{
		Position: pos,
		Radius:   radius,
		W:        size,
		H:        size,
		Mask:     make([]bool, size*size),
		Edge:     make([]bool, size*size),
		Palm:     radius >= palmMinRadius,
		Phase:    r.Float64() * 2 * math.Pi,
		tint:     make([]uint8, size*size),
	}

	coast := opensimplex.New(r.Int64())
	ox := r.Float64() * 100
	oy := r.Float64() * 100
	for j := 0; j < size; j++ {
		for i := 0; i < size; i++ {
			dx := float64(i - half)
			dy := float64(j - half)
			ang := math.Atan2(dy, dx)
			jitter := coast.Eval2(ox+math.Cos(ang)*islandNoiseScale, oy+math.Sin(ang)*islandNoiseScale) * islandJitter
			idx := j*size + i
			isl.Mask[idx] = math.Hypot(dx, dy) < radius+jitter
			isl.tint[idx] = uint8(r.IntN(len(shoreColors)))
		}
	}
	isl.Mask[half*size+half] = true
	isl.markEdges()
	return isl
}

func (isl *Island) markEdges() {
	for j := 0; j < isl.H; j++ {
		for i := 0; i < isl.W; i++ {
			idx := j*isl.W + i
			if !isl.Mask[idx] {
				continue
			}
			isl.Edge[idx] = !isl.inside(i-1, j) || !isl.inside(i+1, j) ||
				!isl.inside(i, j-1) || !isl.inside(i, j+1)
		}
	}
}

func (isl *Island) inside(i, j int) bool {
	if i < 0 || j < 0 || i >= isl.W || j >= isl.H {
		return false
	}
	return isl.Mask[j*isl.W+i]
}

// Origin returns the grid cell of the mask's top-left corner.
func (isl *Island) Origin() (int, int) {
	return int(math.Floor(isl.Position.X)) - isl.W/2, int(math.Floor(isl.Position.Y)) - isl.H/2
}

// ColorMap returns per-mask-cell colours; cells outside the mask are
// transparent. The slice is built once and then reused.
func (isl *Island) ColorMap() []color.RGBA {
	if isl.colors != nil {
		return isl.colors
	}
	isl.colorBuilds++
	colors := make([]color.RGBA, len(isl.Mask))
	for idx, in := range isl.Mask {
		if !in {
			continue
		}
		t := int(isl.tint[idx])
		if isl.Edge[idx] {
			colors[idx] = shoreColors[t%len(shoreColors)]
			continue
		}
		colors[idx] = vegetationColors[t%len(vegetationColors)]
	}
	isl.colors = colors
	return colors
}
