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

package math

import (
	"github.com/ajroetker/go-highway-exp10f/hwy"
	"github.com/ajroetker/go-highway-exp10f/hwy/contrib/workerpool"
)

// minParallelExp10 is the input length below which Exp10PolyParallel stays
// on the calling goroutine.
const minParallelExp10 = 16384

// Exp10Poly computes output[i] = 10^input[i] for the first
// min(len(input), len(output)) elements, 4 lanes at a time.
// Lanes past the end of a partial tail are evaluated at 0.
func Exp10Poly(input, output []float32) {
	size := min(len(input), len(output))
	hwy.ProcessWithTail(size,
		func(offset int) {
			x := hwy.LoadFloat32x4Slice(input[offset:])
			Exp10_F32x4(x).StoreSlice(output[offset:])
		},
		func(offset, count int) {
			x := hwy.LoadFloat32x4Partial(input[offset : offset+count])
			Exp10_F32x4(x).StorePartial(output[offset : offset+count])
		},
	)
}

// Exp10PolyParallel is Exp10Poly split across the workers of pool.
// Each worker receives a range starting on a 4-lane boundary. With a nil
// pool or a short input it runs Exp10Poly on the calling goroutine.
func Exp10PolyParallel(pool *workerpool.Pool, input, output []float32) {
	size := min(len(input), len(output))
	if pool == nil || size < minParallelExp10 {
		Exp10Poly(input[:size], output[:size])
		return
	}
	pool.ParallelForBlocks(size, hwy.Float32x4Lanes, func(start, end int) {
		Exp10Poly(input[start:end], output[start:end])
	})
}
