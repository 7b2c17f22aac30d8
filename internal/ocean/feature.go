package ocean

import "image/color"

// Vec is a position in grid space (cells, fractional).
type Vec struct {
	X, Y float64
}

// Kind enumerates the feature variants.
type Kind uint8

const (
	KindKelp Kind = iota
	KindReef
	KindRock
	KindSeaweed
	KindIsland
	KindFish
	KindDolphin
	KindJellyfish
	kindCount
)

var kindNames = [kindCount]string{
	KindKelp:      "kelp",
	KindReef:      "reef",
	KindRock:      "rock",
	KindSeaweed:   "seaweed",
	KindIsland:    "island",
	KindFish:      "fish",
	KindDolphin:   "dolphin",
	KindJellyfish: "jellyfish",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "unknown"
}

// layerOrder is the back-to-front draw order. The boat is drawn after the
// last layer.
var layerOrder = [...]Kind{
	KindKelp, KindReef, KindRock, KindSeaweed,
	KindIsland,
	KindFish,
	KindDolphin, KindJellyfish,
}

// Feature is a decorative entity on the field. The set of implementations
// is closed: only the variants in this package satisfy it.
type Feature interface {
	Kind() Kind
	Pos() Vec
	feature()
}

// Motion is the shared state of moving creatures.
type Motion struct {
	Position Vec
	Heading  float64
	Speed    float64
	Phase    float64
}

// Pos implements Feature.
func (m *Motion) Pos() Vec { return m.Position }

// Fish swims along its heading and occasionally turns.
type Fish struct {
	Motion
	Color color.RGBA
}

// Dolphin cruises faster than fish and periodically surfaces.
type Dolphin struct {
	Motion
	Length int
}

// Jellyfish drifts slowly with a pulsing bell.
type Jellyfish struct {
	Motion
	BobPhase float64
}

// Reef is a static coral patch with an irregular occupancy mask.
type Reef struct {
	Position Vec
	W, H     int
	Mask     []bool
	Shade    []int8
	Color    color.RGBA
}

// Rock is a small static boulder.
type Rock struct {
	Position Vec
	Size     int
	Tone     uint8
}

// Seaweed is a short swaying strand.
type Seaweed struct {
	Position Vec
	Height   int
	Phase    float64
}

// Kelp is a tall strand with leaf blades.
type Kelp struct {
	Position Vec
	Height   int
	Phase    float64
}

func (*Fish) Kind() Kind      { return KindFish }
func (*Dolphin) Kind() Kind   { return KindDolphin }
func (*Jellyfish) Kind() Kind { return KindJellyfish }
func (*Reef) Kind() Kind      { return KindReef }
func (*Rock) Kind() Kind      { return KindRock }
func (*Seaweed) Kind() Kind   { return KindSeaweed }
func (*Kelp) Kind() Kind      { return KindKelp }
func (*Island) Kind() Kind    { return KindIsland }

func (r *Reef) Pos() Vec    { return r.Position }
func (r *Rock) Pos() Vec    { return r.Position }
func (s *Seaweed) Pos() Vec { return s.Position }
func (k *Kelp) Pos() Vec    { return k.Position }
func (i *Island) Pos() Vec  { return i.Position }

func (*Fish) feature()      {}
func (*Dolphin) feature()   {}
func (*Jellyfish) feature() {}
func (*Reef) feature()      {}
func (*Rock) feature()      {}
func (*Seaweed) feature()   {}
func (*Kelp) feature()      {}
func (*Island) feature()    {}

// CountKinds tallies features per kind.
func CountKinds(features []Feature) map[Kind]int {
	out := make(map[Kind]int, kindCount)
	for _, f := range features {
		out[f.Kind()]++
	}
	return out
}
