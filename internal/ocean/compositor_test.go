package ocean

import (
	"image/color"
	"math"
	"testing"

	"pixel-ocean/internal/core"
	"pixel-ocean/internal/render"
)

func offscreenBoat() Boat { return Boat{X: -1000, Y: -1000} }

func TestRenderUniformFieldStaysInOneBand(t *testing.T) {
	const cell = 4
	field := core.NewFloatGrid(10, 10)
	field.Fill(0.5)
	s := &State{Cols: 10, Rows: 10, Field: field, Boat: offscreenBoat()}
	f := render.NewFrame(10*cell, 10*cell)
	Render(s, f, cell, DefaultControls())

	mid := bandColors[depthBand(0.5)]
	lo, hi := mid.base, mid.base
	hi.R += mid.jitter
	hi.G += mid.jitter
	hi.B += mid.jitter
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			c := f.At(x*cell+1, y*cell+1)
			if c.R < lo.R || c.R > hi.R || c.G < lo.G || c.G > hi.G || c.B < lo.B || c.B > hi.B {
				t.Fatalf("cell (%d,%d) colour %v outside mid band [%v,%v]", x, y, c, lo, hi)
			}
		}
	}
}

func TestRenderIsDeterministicForFixedClock(t *testing.T) {
	r := New(testConfig(96, 64), nil, nil)
	r.Advance(3)
	r.Render()
	first := r.Frame().Clone()
	r.Render()
	if string(first.Pix) != string(r.Frame().Pix) {
		t.Fatal("rendering the same state twice must give identical pixels")
	}
}

func TestRenderBoatDrawnAboveCreatures(t *testing.T) {
	const cell = 8
	field := core.NewFloatGrid(10, 10)
	fish := &Fish{Motion: Motion{Position: Vec{X: 5, Y: 5}}, Color: fishColors[0]}
	s := &State{
		Cols: 10, Rows: 10, Field: field,
		Features: []Feature{fish},
		Boat:     Boat{X: 44, Y: 44},
	}
	f := render.NewFrame(80, 80)
	Render(s, f, cell, DefaultControls())
	if got := f.At(44, 44); got != rgb(0x654321) {
		t.Fatalf("pixel under boat mast = %v, want mast colour", got)
	}
}

func TestRenderIslandColourMapCachedAcrossFrames(t *testing.T) {
	field := core.NewFloatGrid(30, 30)
	isl := newIsland(Vec{X: 15, Y: 15}, 5, testRand())
	s := &State{Cols: 30, Rows: 30, Field: field, Features: []Feature{isl}, Boat: offscreenBoat()}
	f := render.NewFrame(120, 120)
	Render(s, f, 4, DefaultControls())
	s.Clock.Time = 2.5
	Render(s, f, 4, DefaultControls())
	if isl.colorBuilds != 1 {
		t.Fatalf("colour map built %d times across two frames", isl.colorBuilds)
	}
}

func TestRenderEmptyFieldIsNoop(t *testing.T) {
	f := render.NewFrame(8, 8)
	Render(&State{}, f, 4, DefaultControls())
	for _, b := range f.Pix {
		if b != 0 {
			t.Fatal("empty state must not draw")
		}
	}
}

func TestDepthBandBoundaries(t *testing.T) {
	if depthBand(0) != 0 {
		t.Fatal("depth 0 should be the shallowest band")
	}
	if depthBand(1) != len(depthBands) {
		t.Fatal("depth 1 should be the deepest band")
	}
	for i, limit := range depthBands {
		if depthBand(limit) != i+1 {
			t.Fatalf("depth %f should fall in band %d", limit, i+1)
		}
	}
}

func TestRenderLayerOrderIndependentOfSliceOrder(t *testing.T) {
	const cell = 4
	reef := newReef(Vec{X: 9, Y: 9}, 3, 3, testRand())
	isl := newIsland(Vec{X: 10, Y: 10}, 3, testRand())
	fish := &Fish{Motion: Motion{Position: Vec{X: 10.5, Y: 10.5}}, Color: fishColors[1]}
	dolphin := &Dolphin{Motion: Motion{Position: Vec{X: 10, Y: 10}, Phase: math.Pi / 2}, Length: 3}

	cases := []struct {
		name     string
		features []Feature
		want     color.RGBA
	}{
		{"fish over island over reef", []Feature{fish, isl, reef}, fishColors[1]},
		{"dolphin over fish", []Feature{dolphin, fish, isl, reef}, colDolphin},
	}
	for _, tc := range cases {
		s := &State{Cols: 20, Rows: 20, Field: core.NewFloatGrid(20, 20), Features: tc.features, Boat: offscreenBoat()}
		f := render.NewFrame(20*cell, 20*cell)
		Render(s, f, cell, DefaultControls())
		if got := f.At(10*cell+1, 10*cell+1); got != tc.want {
			t.Fatalf("%s: top pixel = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestBoatBobSpansOneCell(t *testing.T) {
	const bp = 8
	peak := math.Pi / (2 * boatBobRate)
	if bob, _ := boatOffsets(peak, bp); bob != bp {
		t.Fatalf("bob at crest = %d, want %d", bob, bp)
	}
	if bob, sway := boatOffsets(0, bp); bob != 0 || sway != 0 {
		t.Fatalf("offsets at t=0 = (%d,%d), want (0,0)", bob, sway)
	}
	if _, sway := boatOffsets(math.Pi/4, bp); sway != bp/2 {
		t.Fatalf("sway at crest = %d, want %d", sway, bp/2)
	}
}
