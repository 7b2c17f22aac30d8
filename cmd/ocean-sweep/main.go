package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"pixel-ocean/internal/app"
	"pixel-ocean/internal/core"
	"pixel-ocean/internal/ocean"
	"pixel-ocean/pkg/logger"
)

func main() {
	logger.Init()
	log := logger.Log

	count := flag.Int("seeds", 64, "number of seeds to generate")
	from := flag.Int64("from", 1, "first seed")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("width", 1280, "viewport width in pixels")
	height := flag.Int("height", 720, "viewport height in pixels")
	ticks := flag.Int("ticks", 600, "frames to simulate per seed")
	var overrides app.KVList
	flag.Var(&overrides, "set", "ocean parameter override in key=value form (repeatable)")
	flag.Parse()

	kv := map[string]string{"w": strconv.Itoa(*width), "h": strconv.Itoa(*height)}
	for k, v := range overrides.Map() {
		kv[k] = v
	}
	base := ocean.FromMap(kv)

	fmt.Printf("Sweeping %d seeds from %d (%d workers, %d ticks, %dx%d)\n", *count, *from, *workers, *ticks, base.Width, base.Height)

	start := time.Now()
	results, err := sweep(context.Background(), log, base, seedRange(*from, *count), *ticks, *workers)
	if err != nil {
		log.WithError(err).Fatal("sweep failed")
	}
	report(os.Stdout, results, time.Since(start))
}

type seedStats struct {
	seed       int64
	grid       core.Size
	minDepth   float64
	maxDepth   float64
	meanDepth  float64
	landCells  int
	counts     map[ocean.Kind]int
	escaped    int
	boatMoving bool
}

func seedRange(from int64, n int) []int64 {
	seeds := make([]int64, 0, max(n, 0))
	for i := 0; i < n; i++ {
		seeds = append(seeds, from+int64(i))
	}
	return seeds
}

// sweep generates and simulates every seed on a bounded pool. Each worker
// owns its renderer; results come back in seed order.
func sweep(ctx context.Context, log logrus.FieldLogger, base ocean.Config, seeds []int64, ticks, workers int) ([]seedStats, error) {
	if workers <= 0 {
		workers = 1
	}
	results := make([]seedStats, len(seeds))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, seed := range seeds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = runSeed(log, base, seed, ticks)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("sweep: %w", err)
	}
	return results, nil
}

func runSeed(log logrus.FieldLogger, base ocean.Config, seed int64, ticks int) seedStats {
	cfg := base
	cfg.Seed = seed
	r := ocean.New(cfg, nil, nil, ocean.WithLogger(log))
	st := seedStats{seed: seed, grid: r.GridSize(), counts: ocean.CountKinds(r.Features())}

	if field := r.Field(); !field.Empty() {
		cells := field.Cells()
		st.minDepth, st.maxDepth = cells[0], cells[0]
		sum := 0.0
		for _, d := range cells {
			st.minDepth = min(st.minDepth, d)
			st.maxDepth = max(st.maxDepth, d)
			sum += d
		}
		st.meanDepth = sum / float64(len(cells))
	}
	for _, f := range r.Features() {
		if isl, ok := f.(*ocean.Island); ok {
			for _, in := range isl.Mask {
				if in {
					st.landCells++
				}
			}
		}
	}

	margin := cfg.Motion.WrapMargin
	cols, rows := float64(st.grid.W), float64(st.grid.H)
	for i := 0; i < ticks; i++ {
		r.Advance(1)
	}
	for _, v := range r.MotionVectors() {
		if v.Pos.X < -margin || v.Pos.X > cols+margin || v.Pos.Y < -margin || v.Pos.Y > rows+margin {
			st.escaped++
		}
	}
	st.boatMoving = r.Boat().Moving
	return st
}

func report(w io.Writer, results []seedStats, elapsed time.Duration) {
	kinds := []ocean.Kind{ocean.KindIsland, ocean.KindReef, ocean.KindRock, ocean.KindSeaweed, ocean.KindKelp, ocean.KindFish, ocean.KindDolphin, ocean.KindJellyfish}
	fmt.Fprintf(w, "%8s %9s %6s %6s %6s %5s", "seed", "grid", "min", "mean", "max", "land")
	for _, k := range kinds {
		fmt.Fprintf(w, " %9s", k)
	}
	fmt.Fprintln(w, " escaped")
	for _, st := range results {
		fmt.Fprintf(w, "%8d %9s %6.3f %6.3f %6.3f %5d", st.seed, fmt.Sprintf("%dx%d", st.grid.W, st.grid.H), st.minDepth, st.meanDepth, st.maxDepth, st.landCells)
		for _, k := range kinds {
			fmt.Fprintf(w, " %9d", st.counts[k])
		}
		fmt.Fprintf(w, " %7d\n", st.escaped)
	}
	if len(results) == 0 {
		return
	}

	ranked := append([]seedStats(nil), results...)
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].landCells > ranked[j].landCells })
	escaped := 0
	for _, st := range results {
		escaped += st.escaped
	}
	fmt.Fprintf(w, "\nMost land: seed %d (%d cells). Escaped creatures: %d. Elapsed %s.\n",
		ranked[0].seed, ranked[0].landCells, escaped, elapsed.Round(time.Millisecond))
}
