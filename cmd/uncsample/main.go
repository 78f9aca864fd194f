// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// uncsample draws samples from one uncertainty distribution and
// describes them.
//
// Parameters come from flags, with defaults taken from UNCSAMPLE_*
// environment variables and an optional .env file. For example,
//
//	uncsample -kind lognormal -loc 0 -scale 0.5 -max 3 -n 100000
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/aclements/go-uncertainty/montecarlo"
	"github.com/aclements/go-uncertainty/uncertainty"
	"github.com/joho/godotenv"
	"github.com/montanaflynn/stats"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("uncsample")

var leveledLogBackend logging.LeveledBackend

func startLogging() {
	backend := logging.NewLogBackend(os.Stderr, "uncsample: ", 0)
	formatter := logging.MustStringFormatter("%{level:8s} %{module:-10s} | %{message}")
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, formatter))
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
	leveledLogBackend = leveled
}

func main() {
	startLogging()

	// A missing .env is fine; the environment and flags still apply.
	_ = godotenv.Load()

	cfg, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	} else if err != nil {
		log.Errorf("%v", err)
		os.Exit(2)
	}
	if cfg.Verbose {
		leveledLogBackend.SetLevel(logging.DEBUG, "")
	}

	if err := run(cfg, os.Stdout); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(cfg config, w io.Writer) error {
	params, err := cfg.params()
	if err != nil {
		return err
	}
	d, err := uncertainty.NewChoices().Lookup(params[0].Kind)
	if err != nil {
		return err
	}
	if err := d.Validate(params); err != nil {
		return err
	}
	log.Debugf("sampling %d values from %v with seed %d (%s)", cfg.N, d.Kind(), cfg.Seed, cfg.Method)

	if b, ok := d.(uncertainty.Bounded); ok && params.HasBounds() {
		if err := b.CheckBoundsReasonableness(params, uncertainty.DefaultReasonableMass); err != nil {
			log.Warningf("%v", err)
		}
	}

	xs, err := draw(cfg, d, params)
	if err != nil {
		return err
	}
	return describe(w, xs)
}

func draw(cfg config, d uncertainty.Distribution, params uncertainty.Params) ([]float64, error) {
	switch cfg.Method {
	case "mc":
		r, err := montecarlo.NewRandomNumberGenerator(d, params, cfg.Seed, cfg.N)
		if err != nil {
			return nil, err
		}
		r.MaximumIterations = cfg.MaximumIterations
		m, err := r.Next()
		if err != nil {
			return nil, err
		}
		if v := uncertainty.Violations(params, m); v > 0 {
			log.Warningf("%d samples still out of bounds after %d iterations", v, iterationBudget(cfg.MaximumIterations))
		}
		return m.RawRowView(0), nil

	case "latin":
		lh, err := montecarlo.NewLatinHypercube(uncertainty.NewChoices(d), params, cfg.Seed, cfg.N)
		if err != nil {
			return nil, err
		}
		xs := make([]float64, cfg.N)
		for i := range xs {
			v, err := lh.Next()
			if err != nil {
				return nil, err
			}
			xs[i] = v[0]
		}
		return xs, nil
	}
	return nil, fmt.Errorf("unknown method %q", cfg.Method)
}

// iterationBudget returns the number of redraw rounds bounded
// sampling performs for the -iterations value n.
func iterationBudget(n int) int {
	if n <= 0 {
		return uncertainty.DefaultMaximumIterations
	}
	return n
}

func describe(w io.Writer, xs []float64) error {
	s, err := montecarlo.Summarize(xs)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "N %d  mean %.6g  std dev %.6g\n", s.N, s.Mean, s.StdDev)
	fmt.Fprintf(w, "95%% interval [%.6g, %.6g]\n", s.Lower, s.Upper)
	fmt.Fprintln(w)

	// Quartiles and tails.
	labels := map[int]string{0: "min", 50: "median", 100: "max"}
	for _, p := range []int{0, 1, 5, 25, 50, 75, 95, 99, 100} {
		label, ok := labels[p]
		if !ok {
			label = fmt.Sprintf("%d%%ile", p)
		}
		var v float64
		switch p {
		case 0:
			v = s.Min
		case 50:
			v = s.Median
		case 100:
			v = s.Max
		default:
			if v, err = stats.Percentile(xs, float64(p)); err != nil {
				return err
			}
		}
		fmt.Fprintf(w, "%8s %.6g\n", label, v)
	}
	return nil
}
