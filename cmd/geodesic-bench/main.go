// Command geodesic-bench runs one of this module's solvers over a
// synthetic pseudo-random intensity grid, optionally under a named
// geoconfig preset, and reports timing. It exists to exercise the library
// end-to-end from the command line; it is not part of the public API.
package main

import (
	"errors"
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/billy-4md/geodesic-distance/fastmarching"
	"github.com/billy-4md/geodesic-distance/geoconfig"
	"github.com/billy-4md/geodesic-distance/grid"
	"github.com/billy-4md/geodesic-distance/rasterscan"
)

var errPresetWithoutConfig = errors.New("geodesic-bench: -preset requires -config")

func main() {
	var (
		solver     = flag.String("solver", "fastmarching", "solver to run: fastmarching or rasterscan")
		side       = flag.Int("side", 128, "grid side length (square 2D grid)")
		preset     = flag.String("preset", "", "preset name to load from -config (overrides -lambda/-iter/-diagonals)")
		configPath = flag.String("config", "", "path to a geoconfig presets YAML file")
		lambda     = flag.Float64("lambda", 1.0, "lambda in [0,1], ignored if -preset is set")
		iter       = flag.Int("iter", 4, "raster-scan pass count, ignored if -preset is set")
		diagonals  = flag.Bool("diagonals", false, "enable diagonal connectivity for raster-scan, ignored if -preset is set")
		seed       = flag.Int64("seed", 1, "PRNG seed for the synthetic intensity field")
	)
	flag.Parse()

	opts, err := resolveOptions(*configPath, *preset, *lambda, *iter, *diagonals)
	if err != nil {
		log.Fatalf("geodesic-bench: %v", err)
	}

	g, err := grid.New(*side, *side)
	if err != nil {
		log.Fatalf("geodesic-bench: %v", err)
	}

	rng := rand.New(rand.NewSource(*seed))
	n := g.Len()
	I := make([]float32, n)
	for i := range I {
		I[i] = rng.Float32()
	}
	S := make([]byte, n)
	S[0] = 1

	start := time.Now()
	var solveErr error
	switch *solver {
	case "fastmarching":
		_, solveErr = fastmarching.Solve(g, I, S, opts.lambda)
	case "rasterscan":
		var rsOpts []rasterscan.Option
		if opts.diagonals {
			rsOpts = append(rsOpts, rasterscan.WithDiagonals())
		}
		_, solveErr = rasterscan.Solve(g, I, S, opts.lambda, opts.iter, rsOpts...)
	default:
		log.Fatalf("geodesic-bench: unknown solver %q (want fastmarching or rasterscan)", *solver)
	}
	elapsed := time.Since(start)

	if solveErr != nil {
		log.Fatalf("geodesic-bench: solve failed: %v", solveErr)
	}

	log.Printf("solver=%s side=%d cells=%d lambda=%.3f iter=%d diagonals=%v elapsed=%s",
		*solver, *side, n, opts.lambda, opts.iter, opts.diagonals, elapsed)
}

type resolvedOptions struct {
	lambda    float64
	iter      int
	diagonals bool
}

func resolveOptions(configPath, preset string, lambda float64, iter int, diagonals bool) (resolvedOptions, error) {
	if preset == "" {
		return resolvedOptions{lambda: lambda, iter: iter, diagonals: diagonals}, nil
	}
	if configPath == "" {
		return resolvedOptions{}, errPresetWithoutConfig
	}
	doc, err := geoconfig.LoadFile(configPath)
	if err != nil {
		return resolvedOptions{}, err
	}
	p, err := doc.Get(preset)
	if err != nil {
		return resolvedOptions{}, err
	}
	return resolvedOptions{
		lambda:    p.Lambda,
		iter:      p.Iter,
		diagonals: p.Connectivity == "diagonal",
	}, nil
}
