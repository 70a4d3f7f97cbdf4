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
	"time"

	"github.com/ajroetker/go-highway-exp10f/hwy"
)

// BenchResult is the throughput of one routine variant.
type BenchResult struct {
	Name     string
	Elements int
	Elapsed  time.Duration
}

// NsPerElement returns the mean time per evaluated element.
func (b BenchResult) NsPerElement() float64 {
	if b.Elements == 0 {
		return 0
	}
	return float64(b.Elapsed.Nanoseconds()) / float64(b.Elements)
}

// benchInputs returns n inputs evenly spread over the routine's signature
// domain, rounded up to whole vectors.
func benchInputs(r Routine, n int) []float32 {
	n = hwy.AlignedSize(max(n, hwy.Float32x4Lanes))
	xs := make([]float32, n)
	for i := range xs {
		xs[i] = r.SigLo + (r.SigHi-r.SigLo)*float32(i)/float32(n)
	}
	return xs
}

// Bench times the vector entry point and the scalar reference of r over n
// inputs from its signature domain, each repeated rounds times.
func Bench(r Routine, n, rounds int) (vector, scalar BenchResult) {
	xs := benchInputs(r, n)
	rounds = max(rounds, 1)
	var sink float32

	start := time.Now()
	for range rounds {
		for i := 0; i < len(xs); i += hwy.Float32x4Lanes {
			sink += r.Vector(hwy.LoadFloat32x4Slice(xs[i:])).Get(0)
		}
	}
	vector = BenchResult{Name: r.Name, Elements: len(xs) * rounds, Elapsed: time.Since(start)}

	start = time.Now()
	for range rounds {
		for _, x := range xs {
			sink += r.Scalar(x)
		}
	}
	scalar = BenchResult{Name: r.Name + " (scalar)", Elements: len(xs) * rounds, Elapsed: time.Since(start)}

	benchSink = sink
	return vector, scalar
}

// benchSink keeps the benchmarked results alive.
var benchSink float32
