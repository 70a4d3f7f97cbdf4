// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command hwyulp measures the accuracy and throughput of the vector math
// routines.
//
// Usage:
//
//	hwyulp ulp                                # every declared interval of exp10f
//	hwyulp ulp -i "0 38 100000" --interval="-38 -45 1000"
//	hwyulp ulp --scalar                       # check the scalar reference instead
//	hwyulp bench -n 1048576
//
// Build with -tags hwy_simdexcept to check the strict exception regime.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ajroetker/go-highway-exp10f/hwy"
	"github.com/ajroetker/go-highway-exp10f/hwy/contrib/math"
	"github.com/ajroetker/go-highway-exp10f/hwy/contrib/workerpool"
	"github.com/ajroetker/go-highway-exp10f/internal/ulp"
	"github.com/alecthomas/kong"
	"github.com/pkg/errors"
)

// CLI defines the hwyulp command-line interface.
type CLI struct {
	Ulp   UlpCmd   `cmd:"" help:"Measure the error of a routine over test intervals."`
	Bench BenchCmd `cmd:"" help:"Measure the throughput of a routine and its scalar reference."`
}

// UlpCmd checks a routine interval by interval.
type UlpCmd struct {
	Routine   string   `short:"r" default:"exp10f" help:"Routine to check."`
	Intervals []string `name:"interval" short:"i" sep:"none" help:"Interval \"lo hi n\" (may be repeated; defaults to the declared intervals)."`
	Workers   int      `short:"w" default:"0" help:"Worker goroutines (0 = GOMAXPROCS)."`
	Seed      uint64   `default:"0" help:"Sample layout: 0 spreads samples evenly, anything else draws them at random."`
	Scalar    bool     `help:"Check the scalar reference instead of the vector routine."`
}

// BenchCmd times a routine.
type BenchCmd struct {
	Routine string `short:"r" default:"exp10f" help:"Routine to benchmark."`
	N       int    `short:"n" default:"65536" help:"Inputs per round."`
	Rounds  int    `default:"100" help:"Rounds over the inputs."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("hwyulp"),
		kong.Description("Accuracy and throughput checks for go-highway vector math routines."),
		kong.BindTo(os.Stdout, (*io.Writer)(nil)),
	)
	ctx.FatalIfErrorf(ctx.Run())
}

func printTarget(out io.Writer) {
	regime := "fast"
	if math.SIMDExcept {
		regime = "strict"
	}
	fmt.Fprintf(out, "target %s (%d bytes, fma %v), %s regime\n",
		hwy.CurrentName(), hwy.CurrentWidth(), hwy.HasFMA(), regime)
}

// Run checks every requested interval and fails if any is out of limits.
func (c *UlpCmd) Run(out io.Writer) error {
	routine, err := ulp.Lookup(c.Routine)
	if err != nil {
		return err
	}
	intervals := routine.Intervals
	if len(c.Intervals) > 0 {
		intervals = intervals[:0:0]
		for _, s := range c.Intervals {
			iv, err := ulp.ParseInterval(s)
			if err != nil {
				return err
			}
			intervals = append(intervals, iv)
		}
	}

	pool := workerpool.New(c.Workers)
	defer pool.Close()
	opts := ulp.Options{Pool: pool, Seed: c.Seed, Scalar: c.Scalar}

	printTarget(out)
	failed := 0
	for _, iv := range intervals {
		rep, err := ulp.Check(routine, iv, opts)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, rep)
		if rep.Failed() {
			failed++
		}
	}
	if failed > 0 {
		return errors.Errorf("%s: %d of %d intervals failed", routine.Name, failed, len(intervals))
	}
	return nil
}

// Run times the vector routine and its scalar reference.
func (c *BenchCmd) Run(out io.Writer) error {
	routine, err := ulp.Lookup(c.Routine)
	if err != nil {
		return err
	}
	if c.N <= 0 || c.Rounds <= 0 {
		return errors.Errorf("bench: -n and --rounds must be positive")
	}

	printTarget(out)
	vector, scalar := ulp.Bench(routine, c.N, c.Rounds)
	for _, r := range []ulp.BenchResult{vector, scalar} {
		fmt.Fprintf(out, "%-20s %10d elements %8.3f ns/element\n", r.Name, r.Elements, r.NsPerElement())
	}
	fmt.Fprintf(out, "speedup %.2fx\n", scalar.NsPerElement()/max(vector.NsPerElement(), 1e-9))
	return nil
}
