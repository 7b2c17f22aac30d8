package ocean

import (
	"testing"

	rng "pixel-ocean/pkg/core"
)

func TestGenerateFeaturesDeterministic(t *testing.T) {
	p := DefaultConfig().Features
	a := GenerateFeatures(60, 40, rng.NewRand(5, 0), p)
	b := GenerateFeatures(60, 40, rng.NewRand(5, 0), p)
	if len(a) == 0 {
		t.Fatal("expected features on a 60x40 grid")
	}
	if len(a) != len(b) {
		t.Fatalf("feature counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Kind() != b[i].Kind() || a[i].Pos() != b[i].Pos() {
			t.Fatalf("feature %d differs: %v@%v vs %v@%v", i, a[i].Kind(), a[i].Pos(), b[i].Kind(), b[i].Pos())
		}
	}
}

func TestGenerateFeaturesCountsWithinRanges(t *testing.T) {
	p := DefaultConfig().Features
	counts := CountKinds(GenerateFeatures(80, 50, rng.NewRand(11, 0), p))
	ranges := map[Kind]CountRange{
		KindIsland:    p.Islands,
		KindReef:      p.Reefs,
		KindRock:      p.Rocks,
		KindSeaweed:   p.Seaweed,
		KindKelp:      p.Kelp,
		KindFish:      p.Fish,
		KindDolphin:   p.Dolphins,
		KindJellyfish: p.Jellyfish,
	}
	for kind, cr := range ranges {
		if n := counts[kind]; n < cr.Min || n > cr.Max {
			t.Fatalf("%v count %d outside [%d,%d]", kind, n, cr.Min, cr.Max)
		}
	}
}

func TestGenerateFeaturesEmptyGrid(t *testing.T) {
	if got := GenerateFeatures(0, 0, rng.NewRand(1, 0), DefaultConfig().Features); got != nil {
		t.Fatalf("expected no features for empty grid, got %d", len(got))
	}
}

func TestIslandMaskAndEdges(t *testing.T) {
	isl := newIsland(Vec{X: 20, Y: 20}, 5, rng.NewRand(3, 0))
	half := isl.W / 2
	if !isl.Mask[half*isl.W+half] {
		t.Fatal("island centre must be land")
	}
	land, edges := 0, 0
	for j := 0; j < isl.H; j++ {
		for i := 0; i < isl.W; i++ {
			idx := j*isl.W + i
			if !isl.Mask[idx] {
				if isl.Edge[idx] {
					t.Fatalf("water cell (%d,%d) tagged as edge", i, j)
				}
				continue
			}
			land++
			openSide := !isl.inside(i-1, j) || !isl.inside(i+1, j) || !isl.inside(i, j-1) || !isl.inside(i, j+1)
			if openSide != isl.Edge[idx] {
				t.Fatalf("cell (%d,%d) edge=%v, expected %v", i, j, isl.Edge[idx], openSide)
			}
			if isl.Edge[idx] {
				edges++
			}
		}
	}
	if edges == 0 || edges == land {
		t.Fatalf("expected both shore and interior cells, land=%d edges=%d", land, edges)
	}
}

func TestIslandColorMapComputedOnce(t *testing.T) {
	isl := newIsland(Vec{X: 10, Y: 10}, 4, rng.NewRand(8, 0))
	first := isl.ColorMap()
	second := isl.ColorMap()
	if isl.colorBuilds != 1 {
		t.Fatalf("colour map built %d times, want 1", isl.colorBuilds)
	}
	if &first[0] != &second[0] {
		t.Fatal("ColorMap should return the cached slice")
	}
	for idx, in := range isl.Mask {
		if in && first[idx].A == 0 {
			t.Fatalf("land cell %d has no colour", idx)
		}
		if !in && first[idx].A != 0 {
			t.Fatalf("water cell %d should stay transparent", idx)
		}
	}
}

func TestReefMaskHasCentre(t *testing.T) {
	reef := newReef(Vec{X: 3, Y: 3}, 5, 3, rng.NewRand(2, 0))
	if len(reef.Mask) != 15 || len(reef.Shade) != 15 {
		t.Fatalf("reef buffers sized %d/%d, want 15", len(reef.Mask), len(reef.Shade))
	}
	if !reef.Mask[1*5+2] {
		t.Fatal("reef centre must be occupied")
	}
	for _, s := range reef.Shade {
		if s < -reefShadeAmp || s > reefShadeAmp {
			t.Fatalf("shade %d outside ±%d", s, reefShadeAmp)
		}
	}
}
