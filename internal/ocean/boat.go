package ocean

import (
	"image/color"
	"math"
)

const (
	boatBobRate = 2.5
	boatBobAmp  = 1
	sailSwayAmp = 0.5
	wakeLength  = 3
)

// Boat follows the pointer. Position is in pixels.
type Boat struct {
	X, Y    float64
	Heading float64
	Moving  bool
}

// pursue moves the boat up to maxStep pixels toward target. Within the stop
// threshold the boat holds position.
func (b *Boat) pursue(target Vec, maxStep, stop float64) {
	dx := target.X - b.X
	dy := target.Y - b.Y
	dist := math.Hypot(dx, dy)
	if dist <= stop || maxStep <= 0 {
		b.Moving = false
		return
	}
	step := maxStep
	if step > dist {
		step = dist
	}
	b.X += dx / dist * step
	b.Y += dy / dist * step
	b.Heading = math.Atan2(dy, dx)
	b.Moving = true
}

type boatPart uint8

const (
	partHull boatPart = iota
	partSail
	partFlag
)

type stencilCell struct {
	dx, dy int
	part   boatPart
	col    color.RGBA
}

// boatStencil is drawn facing right; it is mirrored when heading left.
var boatStencil = [...]stencilCell{
	{-2, 1, partHull, rgb(0x8B4513)},
	{-1, 1, partHull, rgb(0xA0522D)},
	{0, 1, partHull, rgb(0xA0522D)},
	{1, 1, partHull, rgb(0xA0522D)},
	{2, 1, partHull, rgb(0x8B4513)},
	{-1, 2, partHull, rgb(0x654321)},
	{0, 2, partHull, rgb(0x654321)},
	{1, 2, partHull, rgb(0x654321)},
	{0, 0, partHull, rgb(0x654321)},
	{0, -1, partHull, rgb(0x654321)},
	{0, -2, partHull, rgb(0x654321)},
	{0, -3, partHull, rgb(0x654321)},
	{1, -3, partSail, rgb(0xFFFFFF)},
	{1, -2, partSail, rgb(0xF5F5F5)},
	{2, -2, partSail, rgb(0xFFFFFF)},
	{1, -1, partSail, rgb(0xF0F0F0)},
	{2, -1, partSail, rgb(0xF5F5F5)},
	{1, -4, partFlag, rgb(0xFF0000)},
}

func (cv canvas) drawBoat(b Boat, size float64) {
	bp := int(math.Round(float64(cv.cell) * size))
	if bp < 1 {
		bp = 1
	}
	bob, sway := boatOffsets(cv.t, bp)
	facing := 1
	if math.Cos(b.Heading) < 0 {
		facing = -1
	}
	ox := int(math.Round(b.X)) - bp/2
	oy := int(math.Round(b.Y)) - bp/2 + bob

	if b.Moving {
		backX, backY := -math.Cos(b.Heading), -math.Sin(b.Heading)
		for k := 0; k < wakeLength; k++ {
			dist := float64((k + 3) * bp)
			wobble := math.Sin(cv.t*6+float64(k)) * 0.5 * float64(bp)
			wx := ox + int(math.Round(backX*dist-backY*wobble))
			wy := oy + bp + int(math.Round(backY*dist+backX*wobble))
			cv.f.BlendRect(wx, wy, bp, bp, withAlpha(colFoam, uint8(150-40*k)))
		}
	}

	for _, sc := range boatStencil {
		px := ox + sc.dx*facing*bp
		if sc.part == partSail {
			px += sway * facing
		}
		py := oy + sc.dy*bp
		cv.f.FillRect(px, py, bp, bp, sc.col)
	}
}

// boatOffsets returns the hull bob and sail sway in pixels for a boat
// pixel of bp.
func boatOffsets(t float64, bp int) (bob, sway int) {
	bob = int(math.Round(math.Sin(t*boatBobRate) * boatBobAmp * float64(bp)))
	sway = int(math.Round(math.Sin(t*2) * sailSwayAmp * float64(bp)))
	return bob, sway
}
