package ocean

import (
	"math"
	"slices"
	"testing"

	rng "pixel-ocean/pkg/core"
)

func TestGenerateFieldInRange(t *testing.T) {
	p := DefaultConfig().Field
	p.Noise = 0.5
	for seed := int64(1); seed <= 8; seed++ {
		field := GenerateField(40, 25, rng.NewRand(seed, 0), p)
		if field.W != 40 || field.H != 25 {
			t.Fatalf("seed %d: field is %dx%d, want 40x25", seed, field.W, field.H)
		}
		for i, d := range field.Cells() {
			if d < 0 || d > 1 || math.IsNaN(d) {
				t.Fatalf("seed %d: cell %d depth %f outside [0,1]", seed, i, d)
			}
		}
	}
}

func TestGenerateFieldDeterministic(t *testing.T) {
	p := DefaultConfig().Field
	a := GenerateField(32, 24, rng.NewRand(99, 0), p)
	b := GenerateField(32, 24, rng.NewRand(99, 0), p)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("same seed and dimensions must give the same field")
	}
	c := GenerateField(32, 24, rng.NewRand(100, 0), p)
	if slices.Equal(a.Cells(), c.Cells()) {
		t.Fatal("different seeds should give different fields")
	}
}

func TestGenerateFieldEmpty(t *testing.T) {
	field := GenerateField(0, 10, rng.NewRand(1, 0), DefaultConfig().Field)
	if !field.Empty() {
		t.Fatalf("expected empty field, got %dx%d", field.W, field.H)
	}
}

func TestDepthSeedPullsTowardTarget(t *testing.T) {
	seeds := []DepthSeed{{X: 5, Y: 5, Target: 1, Radius: 10}}
	if got := depthAt(5, 5, seeds, nil, 15); math.Abs(got-1) > 1e-9 {
		t.Fatalf("depth at seed centre = %f, want 1", got)
	}
	if got := depthAt(5, 10, seeds, nil, 15); math.Abs(got-0.75) > 1e-9 {
		t.Fatalf("depth half way out = %f, want 0.75", got)
	}
	if got := depthAt(30, 30, seeds, nil, 15); got != baseDepth {
		t.Fatalf("depth outside radius = %f, want %f", got, baseDepth)
	}
}

func TestCurrentEvensOutDepth(t *testing.T) {
	seeds := []DepthSeed{{X: 0, Y: 0, Target: 1, Radius: 100}}
	currents := []Current{{Points: []Vec{{X: 0, Y: 0}}, Strength: 1}}
	if got := depthAt(0, 0, seeds, currents, 15); math.Abs(got-baseDepth) > 1e-9 {
		t.Fatalf("full-strength current on its path should reset depth to %f, got %f", baseDepth, got)
	}
	without := depthAt(10, 0, seeds, nil, 15)
	with := depthAt(10, 0, seeds, currents, 15)
	if !(with < without && with > baseDepth) {
		t.Fatalf("partial capture should blend toward base: without=%f with=%f", without, with)
	}
}

func TestPolylineDistance(t *testing.T) {
	pts := []Vec{{X: 0, Y: 0}, {X: 10, Y: 0}}
	if got := polylineDistance(10, 3, pts); math.Abs(got-3) > 1e-9 {
		t.Fatalf("distance = %f, want 3", got)
	}
	if got := polylineDistance(0, 0, nil); !math.IsInf(got, 1) {
		t.Fatalf("empty polyline distance = %f, want +Inf", got)
	}
}
