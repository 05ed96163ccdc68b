// plottrace creates trace and histogram plots from a sampling
// trajectory file.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// readTrajectory reads iteration numbers and the selected column
// from a tab-separated trajectory file.
func readTrajectory(fn string, col int) (iters, vals []float64, err error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			// skip the header
			first = false
			continue
		}
		fields := strings.Split(line, "\t")
		if col >= len(fields) {
			return nil, nil, fmt.Errorf("no column %d in line %q", col, line)
		}
		it, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, nil, err
		}
		v, err := strconv.ParseFloat(fields[col], 64)
		if err != nil {
			return nil, nil, err
		}
		iters = append(iters, it)
		vals = append(vals, v)
	}
	return iters, vals, scanner.Err()
}

func main() {
	col := flag.Int("col", 2, "trajectory column to plot (2 is the first coordinate)")
	bins := flag.Int("bins", 30, "number of histogram bins")
	traceF := flag.String("trace", "trace.png", "trace plot filename")
	histF := flag.String("hist", "hist.png", "histogram plot filename")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: plottrace [flags] trajectory.tsv")
		os.Exit(1)
	}

	iters, vals, err := readTrajectory(flag.Arg(0), *col)
	if err != nil {
		panic(err)
	}

	// trace
	p := plot.New()
	p.X.Label.Text = "iteration"
	pts := make(plotter.XYs, len(vals))
	for i := range vals {
		pts[i].X = iters[i]
		pts[i].Y = vals[i]
	}
	if err := plotutil.AddLines(p, "trace", pts); err != nil {
		panic(err)
	}
	if err := p.Save(6*vg.Inch, 4*vg.Inch, *traceF); err != nil {
		panic(err)
	}

	// histogram
	p = plot.New()
	h, err := plotter.NewHist(plotter.Values(vals), *bins)
	if err != nil {
		panic(err)
	}
	h.Normalize(1)
	p.Add(h)
	if err := p.Save(6*vg.Inch, 4*vg.Inch, *histF); err != nil {
		panic(err)
	}
}
