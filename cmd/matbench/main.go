// SPDX-License-Identifier: MIT

// matbench times the multiplication kernels across a sweep of square sizes
// and optionally renders the sweep as a line chart.
//
// Usage:
//
//	matbench [-sizes 64,128,256,512] [-block 128] [-workers 32]
//	         [-reps 3] [-seed 1] [-plot bench.png]
//
// Progress renders live on a terminal; in a pipe it degrades to plain log
// lines. The final table always goes to stdout.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gosuri/uilive"
	"github.com/mattn/go-isatty"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/densekit/mat"
	"github.com/katalvlaran/densekit/multiply"
)

type kernel struct {
	name string
	run  func(left, right mat.Matrix, out mat.Mutable)
}

type result struct {
	size    int
	seconds []float64 // one entry per kernel, best of -reps
}

func main() {
	var (
		sizesArg = flag.String("sizes", "64,128,256", "comma-separated square sizes to time")
		block    = flag.Int("block", multiply.DefaultBufferedBlockSize, "tile edge for the blocked kernels")
		workers  = flag.Int("workers", multiply.DefaultWorkers, "goroutines for the parallel kernel")
		reps     = flag.Int("reps", 3, "repetitions per cell, best time wins")
		seed     = flag.Int64("seed", 1, "operand RNG seed")
		plotPath = flag.String("plot", "", "write a PNG line chart to this path")
	)
	flag.Parse()

	sizes, err := parseSizes(*sizesArg)
	if err != nil {
		log.Fatalf("matbench: %v", err)
	}

	kernels := []kernel{
		{"naive", func(l, r mat.Matrix, o mat.Mutable) { multiply.Naive(l, r, o) }},
		{"blocked", func(l, r mat.Matrix, o mat.Mutable) {
			multiply.Blocked(l, r, o, multiply.WithBlockSize(*block))
		}},
		{"reverse", func(l, r mat.Matrix, o mat.Mutable) {
			multiply.ReverseBlocked(l, r, o, multiply.WithBlockSize(*block))
		}},
		{"buffered", func(l, r mat.Matrix, o mat.Mutable) {
			multiply.Buffered(l, r, o, multiply.WithBlockSize(*block))
		}},
		{"parallel", func(l, r mat.Matrix, o mat.Mutable) {
			multiply.Parallel(l, r, o,
				multiply.WithBlockSize(*block), multiply.WithWorkers(*workers))
		}},
	}

	results := sweep(sizes, kernels, *reps, *seed)
	printTable(kernels, results)

	if *plotPath != "" {
		if err := renderPlot(*plotPath, kernels, results); err != nil {
			log.Fatalf("matbench: %v", err)
		}
		fmt.Printf("chart written to %s\n", *plotPath)
	}
}

func parseSizes(arg string) ([]int, error) {
	parts := strings.Split(arg, ",")
	sizes := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 1 {
			return nil, fmt.Errorf("bad size %q", p)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

// sweep times every kernel at every size, reporting progress as it goes.
func sweep(sizes []int, kernels []kernel, reps int, seed int64) []result {
	progress := newProgress(len(sizes) * len(kernels))
	defer progress.stop()

	results := make([]result, 0, len(sizes))
	for _, n := range sizes {
		left := randomDense(n, seed)
		right := randomDense(n, seed+1)
		out := mat.NewDense(n, n)

		res := result{size: n, seconds: make([]float64, len(kernels))}
		for ki, k := range kernels {
			progress.step(fmt.Sprintf("%d×%d %s", n, n, k.name))
			best := 0.0
			for rep := 0; rep < reps; rep++ {
				out.Zero()
				start := time.Now()
				k.run(left, right, out)
				elapsed := time.Since(start).Seconds()
				if rep == 0 || elapsed < best {
					best = elapsed
				}
			}
			res.seconds[ki] = best
		}
		results = append(results, res)
	}
	return results
}

func randomDense(n int, seed int64) *mat.Dense {
	d := mat.NewDense(n, n)
	rng := rand.New(rand.NewSource(seed))
	data := d.Data()
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}
	return d
}

func printTable(kernels []kernel, results []result) {
	fmt.Printf("%8s", "size")
	for _, k := range kernels {
		fmt.Printf(" %12s", k.name)
	}
	fmt.Println()
	for _, r := range results {
		fmt.Printf("%8d", r.size)
		for _, s := range r.seconds {
			fmt.Printf(" %12s", fmtSeconds(s))
		}
		fmt.Println()
	}
}

func fmtSeconds(s float64) string {
	switch {
	case s < 1e-3:
		return fmt.Sprintf("%.1fµs", s*1e6)
	case s < 1:
		return fmt.Sprintf("%.2fms", s*1e3)
	default:
		return fmt.Sprintf("%.2fs", s)
	}
}

// renderPlot writes one line per kernel over the size sweep.
func renderPlot(path string, kernels []kernel, results []result) error {
	p := plot.New()
	p.Title.Text = "dense multiplication kernels"
	p.X.Label.Text = "matrix size (n)"
	p.Y.Label.Text = "seconds"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}

	args := make([]interface{}, 0, 2*len(kernels))
	for ki, k := range kernels {
		xys := make(plotter.XYs, len(results))
		for i, r := range results {
			xys[i].X = float64(r.size)
			xys[i].Y = r.seconds[ki]
		}
		args = append(args, k.name, xys)
	}
	if err := plotutil.AddLinePoints(p, args...); err != nil {
		return fmt.Errorf("add series: %w", err)
	}
	if err := p.Save(16*vg.Centimeter, 12*vg.Centimeter, path); err != nil {
		return fmt.Errorf("save chart: %w", err)
	}
	return nil
}

// progress renders a single live status line on a TTY and plain log lines
// otherwise.
type progress struct {
	writer *uilive.Writer
	total  int
	done   int
}

func newProgress(total int) *progress {
	p := &progress{total: total}
	if isatty.IsTerminal(os.Stdout.Fd()) {
		p.writer = uilive.New()
		p.writer.Start()
	}
	return p
}

func (p *progress) step(label string) {
	p.done++
	if p.writer == nil {
		log.Printf("[%d/%d] %s", p.done, p.total, label)
		return
	}
	fmt.Fprintf(p.writer, "[%d/%d] timing %s\n", p.done, p.total, label)
}

func (p *progress) stop() {
	if p.writer != nil {
		p.writer.Stop()
	}
}
