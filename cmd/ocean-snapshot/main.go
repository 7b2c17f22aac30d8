package main

import (
	"flag"
	"fmt"
	"image/png"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"pixel-ocean/internal/app"
	"pixel-ocean/internal/core"
	"pixel-ocean/internal/ocean"
	"pixel-ocean/pkg/logger"
)

func main() {
	logger.Init()
	log := logger.Log

	width := flag.Int("width", 640, "viewport width in pixels")
	height := flag.Int("height", 360, "viewport height in pixels")
	cell := flag.Int("cell", 8, "pixel block size")
	seed := flag.Int64("seed", 1337, "seed for generation and simulation")
	ticks := flag.Int("ticks", 120, "frames to simulate before capturing")
	pointer := flag.String("pointer", "orbit", "pointer path: centre, orbit, or x,y")
	out := flag.String("out", "ocean.png", "output PNG path")
	var overrides app.KVList
	flag.Var(&overrides, "set", "ocean parameter override in key=value form (repeatable)")
	flag.Parse()

	kv := map[string]string{
		"w":         strconv.Itoa(*width),
		"h":         strconv.Itoa(*height),
		"cell_size": strconv.Itoa(*cell),
		"seed":      strconv.FormatInt(*seed, 10),
	}
	for k, v := range overrides.Map() {
		kv[k] = v
	}
	cfg := ocean.FromMap(kv)

	path, err := pointerPath(*pointer, cfg.Width, cfg.Height)
	if err != nil {
		log.WithError(err).Fatal("invalid pointer")
	}

	f, err := os.Create(*out)
	if err != nil {
		log.WithError(err).Fatal("create output")
	}
	r := ocean.New(cfg, nil, path, ocean.WithLogger(log))
	if err := capture(r, *ticks, f); err != nil {
		f.Close()
		log.WithError(err).Fatal("snapshot failed")
	}
	if err := f.Close(); err != nil {
		log.WithError(err).Fatal("close output")
	}
	log.WithField("path", *out).WithField("ticks", *ticks).WithField("time", r.Time()).Info("snapshot written")
}

// capture runs ticks fixed-length frames and encodes the final frame.
func capture(r *ocean.Renderer, ticks int, w io.Writer) error {
	for i := 0; i < ticks; i++ {
		r.Tick(ocean.FrameDuration)
	}
	r.Render()
	if err := png.Encode(w, r.Frame().Image()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// pointerPath parses the -pointer flag.
func pointerPath(arg string, w, h int) (core.PointerSource, error) {
	cx, cy := float64(w)/2, float64(h)/2
	switch strings.ToLower(strings.TrimSpace(arg)) {
	case "", "centre", "center":
		return core.FixedPointer{X: cx, Y: cy}, nil
	case "orbit":
		// The renderer queries the pointer once per tick, so each call
		// moves one step along the circle.
		radius := math.Min(cx, cy) * 0.6
		step := 0
		return core.PointerFunc(func() (float64, float64) {
			a := float64(step) * 0.02
			step++
			return cx + math.Cos(a)*radius, cy + math.Sin(a)*radius
		}), nil
	}
	xs, ys, ok := strings.Cut(arg, ",")
	if !ok {
		return nil, fmt.Errorf("pointer %q: want centre, orbit or x,y", arg)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return nil, fmt.Errorf("pointer x: %w", err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return nil, fmt.Errorf("pointer y: %w", err)
	}
	return core.FixedPointer{X: x, Y: y}, nil
}
