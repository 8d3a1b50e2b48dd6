package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/xlab/closer"

	"terrain-gen/internal/config"
	"terrain-gen/internal/noise"
	"terrain-gen/internal/profiling"
	"terrain-gen/internal/terrain"
)

type options struct {
	size       float64
	resolution float64
	stepWidth  float64
	stepHeight float64
	amplitude  float64
	frequency  float64
	roughness  float64
	octaves    int
	runs       int
	seed       uint64
	noiseKind  string
	parallel   bool
	only       string
}

func parseFlags() options {
	var o options
	flag.Float64Var(&o.size, "size", 10, "patch edge length in meters")
	flag.Float64Var(&o.resolution, "resolution", 0.005, "vertex spacing in meters")
	flag.Float64Var(&o.stepWidth, "step-width", 0.1, "steps: block edge length")
	flag.Float64Var(&o.stepHeight, "step-height", 0.1, "steps: maximum block height")
	flag.Float64Var(&o.amplitude, "amplitude", 0.2, "hills: first octave amplitude")
	flag.Float64Var(&o.frequency, "frequency", 0.2, "hills: first octave frequency")
	flag.Float64Var(&o.roughness, "roughness", 0, "hills: uniform jitter scale")
	flag.IntVar(&o.octaves, "octaves", 1, "hills: octave count")
	flag.IntVar(&o.runs, "runs", 1, "generations per archetype")
	flag.Uint64Var(&o.seed, "seed", 0, "random engine seed, 0 for entropy")
	flag.StringVar(&o.noiseKind, "noise", "perlin", "hills noise: perlin, simplex or classic")
	flag.BoolVar(&o.parallel, "parallel", false, "generate hills across goroutines")
	flag.StringVar(&o.only, "only", "", "time a single archetype: hills, steps or plane")
	flag.Parse()
	return o
}

func noiseSource(kind string, seed uint64) (noise.Source, error) {
	switch kind {
	case "perlin":
		return noise.NewPerlin(), nil
	case "simplex":
		return noise.NewSimplex(int64(seed)), nil
	case "classic":
		return noise.NewClassic(int64(seed)), nil
	default:
		return nil, fmt.Errorf("unknown noise %q", kind)
	}
}

func configs(o options) []terrain.Config {
	base := terrain.Config{ExtentX: o.size, ExtentY: o.size, Resolution: o.resolution}

	hills := base
	hills.Archetype = terrain.Hills
	hills.Hills = terrain.HillsParams{
		Amplitude: o.amplitude,
		Frequency: o.frequency,
		Roughness: o.roughness,
		Octaves:   o.octaves,
	}

	steps := base
	steps.Archetype = terrain.Steps
	steps.Steps = terrain.StepsParams{Width: o.stepWidth, Height: o.stepHeight}

	plane := base
	plane.Archetype = terrain.Plane

	return []terrain.Config{hills, steps, plane}
}

func main() {
	o := parseFlags()

	closer.Bind(func() {
		if summary := profiling.TopN(8); summary != "" {
			log.Printf("Totals: %s", summary)
		}
	})
	defer closer.Close()

	config.SetParallelHills(o.parallel)

	src, err := noiseSource(o.noiseKind, o.seed)
	if err != nil {
		closer.Fatalln(err)
	}

	var gen *terrain.Generator
	if o.seed == 0 {
		gen = terrain.New(terrain.WithNoise(src))
	} else {
		gen = terrain.NewGenerator(rand.New(rand.NewPCG(o.seed, o.seed)), terrain.WithNoise(src))
	}

	for _, cfg := range configs(o) {
		if o.only != "" && o.only != cfg.Archetype.String() {
			continue
		}
		if err := cfg.Validate(); err != nil {
			log.Printf("Skipping %v: %v", cfg.Archetype, err)
			continue
		}
		for run := 0; run < o.runs; run++ {
			start := time.Now()
			res := gen.Generate(cfg)
			elapsed := time.Since(start)
			lo, hi := res.MinMax()

			fmt.Printf(" Terrain Type         : %v\n", cfg.Archetype)
			fmt.Printf(" Generation Time      : %d ms\n", elapsed.Milliseconds())
			fmt.Printf(" Num Points Generated : %d\n", len(res.Heights))
			fmt.Printf(" Height Range         : [%.4f, %.4f]\n", lo, hi)
			fmt.Println(" -----------------------")
		}
	}
}
