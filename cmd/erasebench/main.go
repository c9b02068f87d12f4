// Command erasebench measures erase-sweep performance against a canvas of
// synthetic strokes. It drives the same public protocols the UI does, so
// timings reflect the real deletion path: bounding-box prefilter plus exact
// polyline intersection.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/stat"

	"inkpad/internal/sketch"
	"inkpad/pkg/geometry"
)

func main() {
	var (
		curves = flag.Int("curves", 1000, "number of random strokes to draw")
		points = flag.Int("points", 50, "points per stroke")
		sweeps = flag.Int("sweeps", 200, "number of eraser sweeps to time")
		extent = flag.Float64("extent", 2000, "side length of the square drawing area")
		seed   = flag.Int64("seed", 1, "random seed")
	)
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	canvas := sketch.NewCanvas()

	if err := populate(canvas, rng, *curves, *points, *extent); err != nil {
		fmt.Fprintf(os.Stderr, "populate: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("canvas: %d curves, %d points each\n", canvas.CurveCount(), *points)

	durations := make([]float64, 0, *sweeps)
	erasedTotal := 0

	for i := 0; i < *sweeps && canvas.CurveCount() > 0; i++ {
		a := randomPoint(rng, *extent)
		b := randomPoint(rng, *extent)

		start := time.Now()
		if err := canvas.BeginErasure(a); err != nil {
			fmt.Fprintf(os.Stderr, "begin erasure: %v\n", err)
			os.Exit(1)
		}
		erased, err := canvas.ContinueErasure(b)
		if err != nil {
			fmt.Fprintf(os.Stderr, "continue erasure: %v\n", err)
			os.Exit(1)
		}
		if err := canvas.EndErasure(); err != nil {
			fmt.Fprintf(os.Stderr, "end erasure: %v\n", err)
			os.Exit(1)
		}

		durations = append(durations, float64(time.Since(start).Microseconds()))
		erasedTotal += len(erased)
	}

	mean, std := stat.MeanStdDev(durations, nil)
	fmt.Printf("sweeps: %d, curves erased: %d, curves remaining: %d\n",
		len(durations), erasedTotal, canvas.CurveCount())
	fmt.Printf("sweep time: mean %.1fµs, stddev %.1fµs\n", mean, std)
}

// populate draws random-walk strokes through the stroke protocol.
func populate(canvas *sketch.Canvas, rng *rand.Rand, curves, points int, extent float64) error {
	step := extent / 100
	for i := 0; i < curves; i++ {
		p := randomPoint(rng, extent)
		if err := canvas.BeginStroke(p); err != nil {
			return err
		}
		for j := 1; j < points; j++ {
			p = p.Add(randomStep(rng, step))
			if err := canvas.ContinueStroke(p); err != nil {
				return err
			}
		}
		if _, err := canvas.EndStroke(); err != nil {
			return err
		}
	}
	return nil
}

func randomPoint(rng *rand.Rand, extent float64) geometry.Point2D {
	return geometry.NewPoint2D(rng.Float64()*extent, rng.Float64()*extent)
}

func randomStep(rng *rand.Rand, step float64) r2.Vec {
	return r2.Vec{X: (rng.Float64() - 0.5) * 2 * step, Y: (rng.Float64() - 0.5) * 2 * step}
}
