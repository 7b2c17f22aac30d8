package ui

import (
	"math"
	"strings"
	"testing"

	"pixel-ocean/internal/core"
	"pixel-ocean/internal/ocean"
)

func TestFillDepthOverlayStretchesRange(t *testing.T) {
	field := core.NewFloatGrid(3, 1)
	copy(field.Cells(), []float64{0.2, 0.4, 0.6})
	buf := make([]byte, 12)
	levels := make([]uint8, 3)
	FillDepthOverlay(buf, levels, field)

	if levels[0] != 0 || levels[2] != depthLevels-1 {
		t.Fatalf("levels = %v, want full palette span", levels)
	}
	shallow, deep := depthPalette[0], depthPalette[depthLevels-1]
	if buf[0] != shallow.R || buf[1] != shallow.G || buf[2] != shallow.B {
		t.Fatalf("shallow pixel = %v", buf[:4])
	}
	if buf[8] != deep.R || buf[9] != deep.G || buf[10] != deep.B {
		t.Fatalf("deep pixel = %v", buf[8:])
	}
	for i := 0; i < 3; i++ {
		if a := buf[i*4+3]; a == 0 || a > depthPalette[levels[i]].A {
			t.Fatalf("pixel %d alpha %d outside (0,%d]", i, a, depthPalette[levels[i]].A)
		}
	}
}

func TestFillDepthOverlayIgnoresShortBuffers(t *testing.T) {
	field := core.NewFloatGrid(2, 2)
	buf := make([]byte, 4)
	FillDepthOverlay(buf, make([]uint8, 4), field)
	for _, b := range buf {
		if b != 0 {
			t.Fatal("short buffer should be left untouched")
		}
	}
}

func TestMotionArrowsPointAlongVelocity(t *testing.T) {
	vecs := []ocean.MotionVector{
		{Kind: ocean.KindFish, Pos: ocean.Vec{X: 2, Y: 3}, Velocity: ocean.Vec{X: 0.8}},
		{Kind: ocean.KindJellyfish, Pos: ocean.Vec{X: 1, Y: 1}},
	}
	arrows := motionArrows(nil, vecs, 8)
	if len(arrows) != 2 {
		t.Fatalf("got %d arrows", len(arrows))
	}
	a := arrows[0]
	if a.calm || a.tipX <= a.tailX || math.Abs(a.tipY-a.tailY) > 1e-9 {
		t.Fatalf("arrow does not point right: %+v", a)
	}
	if a.x != 20 || a.y != 28 {
		t.Fatalf("arrow anchored at (%f,%f), want cell centre (20,28)", a.x, a.y)
	}
	if !arrows[1].calm {
		t.Fatal("stationary creature should be drawn as a dot")
	}
	if got := motionArrows(arrows, vecs, 0); len(got) != 0 {
		t.Fatal("zero cell size should produce no arrows")
	}
}

func TestStatusLinesReportState(t *testing.T) {
	r := newRenderer(t)
	r.Pause()
	text := strings.Join(statusLines(r), "\n")
	for _, want := range []string{"seed 1337", "gen 1", "paused", "grid 12x8", "cell 8px"} {
		if !strings.Contains(text, want) {
			t.Fatalf("status %q missing %q", text, want)
		}
	}
}
