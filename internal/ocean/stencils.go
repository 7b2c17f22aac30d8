package ocean

import (
	"image/color"
	"math"
)

var (
	colTrunk     = rgb(0x8B4513)
	colLeaves    = rgb(0x228B22)
	colKelp      = color.RGBA{R: 70, G: 90, B: 30, A: 255}
	colKelpBlade = color.RGBA{R: 95, G: 125, B: 40, A: 255}
	colDolphin   = color.RGBA{R: 112, G: 128, B: 144, A: 255}
	colFin       = color.RGBA{R: 80, G: 92, B: 105, A: 255}
	colFoam      = color.RGBA{R: 235, G: 245, B: 255, A: 255}
	colBell      = color.RGBA{R: 255, G: 182, B: 193, A: 255}
	colTentacle  = color.RGBA{R: 255, G: 192, B: 203, A: 255}
	colEye       = color.RGBA{A: 255}
)

func (cv canvas) set(x, y int, c color.RGBA) {
	cv.f.FillCell(x, y, cv.cell, c)
}

func (cv canvas) blend(x, y int, c color.NRGBA) {
	cv.f.BlendCell(x, y, cv.cell, c)
}

func cellOf(v Vec) (int, int) {
	return int(math.Floor(v.X)), int(math.Floor(v.Y))
}

// axis snaps a heading to the dominant cardinal direction.
func axis(heading float64) (int, int) {
	cx, sy := math.Cos(heading), math.Sin(heading)
	if math.Abs(cx) >= math.Abs(sy) {
		if cx < 0 {
			return -1, 0
		}
		return 1, 0
	}
	if sy < 0 {
		return 0, -1
	}
	return 0, 1
}

func (cv canvas) drawKelp(k *Kelp) {
	x, baseY := cellOf(k.Position)
	for i := 0; i < k.Height; i++ {
		lean := float64(i) / float64(k.Height)
		off := int(math.Floor(math.Sin(cv.t*1.2+k.Phase+float64(i)*0.35) * 1.2 * lean))
		cv.set(x+off, baseY-i, colKelp)
		if i > 0 && i%3 == 0 {
			side := 1
			if (i/3)%2 == 0 {
				side = -1
			}
			cv.set(x+off+side, baseY-i, colKelpBlade)
		}
	}
}

func (cv canvas) drawReef(r *Reef) {
	x0, y0 := cellOf(r.Position)
	for j := 0; j < r.H; j++ {
		for i := 0; i < r.W; i++ {
			idx := j*r.W + i
			if !r.Mask[idx] {
				continue
			}
			cv.set(x0+i, y0+j, adjustBrightness(r.Color, int(r.Shade[idx])))
		}
	}
}

func (cv canvas) drawRock(r *Rock) {
	x0, y0 := cellOf(r.Position)
	base := color.RGBA{R: r.Tone, G: r.Tone, B: addClamp(r.Tone, 8), A: 255}
	for j := 0; j < r.Size; j++ {
		for i := 0; i < r.Size; i++ {
			c := base
			switch {
			case r.Size > 1 && i == 0 && j == 0:
				c = adjustBrightness(base, 25)
			case r.Size > 1 && i == r.Size-1 && j == r.Size-1:
				c = adjustBrightness(base, -25)
			}
			cv.set(x0+i, y0+j, c)
		}
	}
}

func (cv canvas) drawSeaweed(s *Seaweed) {
	x, baseY := cellOf(s.Position)
	sway := math.Sin(cv.t*2+s.Phase) * 1.5
	for i := 0; i < s.Height; i++ {
		off := int(math.Floor(math.Sin(cv.t*2+s.Phase+float64(i)*0.5) * sway))
		green := 100 + int(hash3(x, baseY-i, s.Height)%50)
		cv.set(x+off, baseY-i, color.RGBA{R: 20, G: uint8(green), B: 50, A: 255})
	}
}

func (cv canvas) drawIsland(isl *Island) {
	x0, y0 := isl.Origin()
	colors := isl.ColorMap()
	for j := 0; j < isl.H; j++ {
		for i := 0; i < isl.W; i++ {
			idx := j*isl.W + i
			if !isl.Mask[idx] {
				continue
			}
			cv.set(x0+i, y0+j, colors[idx])
		}
	}
	if !isl.Palm {
		return
	}
	cx, cy := cellOf(isl.Position)
	sway := int(math.Round(math.Sin(cv.t*1.5+isl.Phase) * 0.6))
	cv.set(cx, cy-1, colTrunk)
	cv.set(cx, cy-2, colTrunk)
	cv.set(cx-1+sway, cy-3, colLeaves)
	cv.set(cx+sway, cy-3, colLeaves)
	cv.set(cx+1+sway, cy-3, colLeaves)
	cv.set(cx+sway, cy-4, colLeaves)
}

func (cv canvas) drawFish(f *Fish) {
	x := int(math.Floor(f.Position.X + math.Sin(cv.t*2+f.Phase)*0.5))
	y := int(math.Floor(f.Position.Y + math.Cos(cv.t*3+f.Phase)*0.3))
	dx, dy := axis(f.Heading)

	cv.set(x-dx, y-dy, adjustBrightness(f.Color, -20))
	cv.set(x, y, f.Color)
	cv.set(x+dx, y+dy, blendColors(f.Color, colEye, 0.6))
}

func (cv canvas) drawDolphin(d *Dolphin) {
	x, y := cellOf(d.Position)
	dx, dy := axis(d.Heading)
	surfacing := math.Sin(cv.t*1.3 + d.Phase)
	tail := -d.Length / 2

	for i := 0; i < d.Length; i++ {
		px := x + (tail+i)*dx
		py := y + (tail+i)*dy
		if surfacing < 0 {
			cv.blend(px, py, withAlpha(colDolphin, 110))
			continue
		}
		cv.set(px, py, colDolphin)
	}
	if surfacing < 0 {
		return
	}
	// Fin sits on the side perpendicular to travel.
	cv.set(x-dy, y+dx, colFin)
	if surfacing > 0.85 {
		head := tail + d.Length
		cv.blend(x+head*dx, y+head*dy, withAlpha(colFoam, 160))
	}
}

func (cv canvas) drawJellyfish(j *Jellyfish) {
	x := int(math.Floor(j.Position.X))
	y := int(math.Floor(j.Position.Y + math.Sin(cv.t*1.5+j.BobPhase)*2))

	cv.blend(x-1, y, withAlpha(colBell, 153))
	cv.blend(x, y, withAlpha(colBell, 204))
	cv.blend(x+1, y, withAlpha(colBell, 153))
	cv.blend(x, y-1, withAlpha(colBell, 179))

	wave := math.Sin(cv.t*3 + j.Phase)
	for i := 0; i < 3; i++ {
		sign := 1.0
		if i%2 != 0 {
			sign = -1
		}
		off := int(math.Floor(wave * sign))
		cv.blend(x-1+i, y+1+off, withAlpha(colTentacle, 128))
		cv.blend(x-1+i, y+2+off, withAlpha(colTentacle, 77))
	}
}
