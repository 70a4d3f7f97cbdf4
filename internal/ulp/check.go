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

package ulp

import (
	"fmt"
	"sync"

	"github.com/ajroetker/go-highway-exp10f/hwy"
	"github.com/ajroetker/go-highway-exp10f/hwy/contrib/workerpool"
	"github.com/pkg/errors"
)

// Options controls a Check run.
type Options struct {
	// Pool evaluates batches in parallel. A nil Pool uses a temporary pool
	// of GOMAXPROCS workers.
	Pool *workerpool.Pool

	// Seed selects the sample layout, see Interval.Samples.
	Seed uint64

	// Scalar checks the routine's scalar reference instead of its vector
	// entry point.
	Scalar bool
}

// Report is the outcome of checking one interval.
type Report struct {
	Routine  string
	Interval Interval
	Limit    float64
	Samples  int

	// MaxErr is the largest Error seen, at input MaxErrAt where the
	// routine returned Got against the reference Want.
	MaxErr   float64
	MaxErrAt float32
	Got      float32
	Want     float64

	// Failures counts samples whose error exceeds the limit.
	Failures int

	// FenvMismatches counts lanes whose exceptions differ from the
	// scalar routine's. Only counted when the routine expects them to match.
	FenvMismatches int
}

// Failed reports whether the interval is outside the routine's limits.
func (r Report) Failed() bool {
	return r.Failures > 0 || r.FenvMismatches > 0
}

// String renders the report on one line.
func (r Report) String() string {
	status := "PASS"
	if r.Failed() {
		status = "FAIL"
	}
	return fmt.Sprintf("%s %s [%s]: max %.4f ULP (limit %.2f + 0.5) at %x got %x want %.10g; %d failures, %d fenv mismatches",
		status, r.Routine, r.Interval, r.MaxErr, r.Limit, r.MaxErrAt, r.Got, r.Want, r.Failures, r.FenvMismatches)
}

type laneResult struct {
	err          float64
	got          float32
	want         float64
	fenvMismatch bool
}

// Check evaluates routine on the samples of iv, 4 lanes at a time.
func Check(routine Routine, iv Interval, opts Options) (Report, error) {
	if routine.Vector == nil || routine.Scalar == nil || routine.Reference == nil {
		return Report{}, errors.Errorf("routine %q: incomplete declaration", routine.Name)
	}
	pool := opts.Pool
	if pool == nil {
		pool = workerpool.New(0)
		defer pool.Close()
	}

	xs := iv.Samples(opts.Seed)
	results := make([]laneResult, len(xs))
	batches := (len(xs) + hwy.Float32x4Lanes - 1) / hwy.Float32x4Lanes

	var (
		errOnce  sync.Once
		firstErr error
	)
	pool.ParallelForAtomic(batches, func(b int) {
		start := b * hwy.Float32x4Lanes
		end := min(start+hwy.Float32x4Lanes, len(xs))
		x := hwy.LoadFloat32x4Partial(xs[start:end])

		var y hwy.Float32x4
		if opts.Scalar {
			for i := range x {
				y[i] = routine.Scalar(x[i])
			}
		} else {
			y = routine.Vector(x)
		}

		for i := range end - start {
			want, err := routine.Reference(x[i])
			if err != nil {
				errOnce.Do(func() { firstErr = err })
				return
			}
			res := laneResult{err: Error(y[i], want), got: y[i], want: want}
			if routine.ExpectFenv && routine.Fenv != nil {
				res.fenvMismatch = routine.Fenv(x[i], y[i]) != routine.Fenv(x[i], routine.Scalar(x[i]))
			}
			results[start+i] = res
		}
	})
	if firstErr != nil {
		return Report{}, errors.Wrapf(firstErr, "check %s [%s]", routine.Name, iv)
	}

	rep := Report{
		Routine:  routine.Name,
		Interval: iv,
		Limit:    routine.ULP,
		Samples:  len(xs),
		MaxErrAt: xs[0],
	}
	for i, res := range results {
		if res.err > rep.MaxErr || i == 0 {
			rep.MaxErr, rep.MaxErrAt, rep.Got, rep.Want = res.err, xs[i], res.got, res.want
		}
		if res.err-0.5 > routine.ULP {
			rep.Failures++
		}
		if res.fenvMismatch {
			rep.FenvMismatches++
		}
	}
	return rep, nil
}

// CheckAll runs Check on every declared interval of routine.
func CheckAll(routine Routine, opts Options) ([]Report, error) {
	reports := make([]Report, 0, len(routine.Intervals))
	for _, iv := range routine.Intervals {
		rep, err := Check(routine, iv, opts)
		if err != nil {
			return reports, err
		}
		reports = append(reports, rep)
	}
	return reports, nil
}
