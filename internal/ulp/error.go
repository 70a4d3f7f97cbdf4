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

import "math"

const (
	// overflowMidpoint is halfway between MaxFloat32 and 2^128. Exact
	// values at or above it round to +Inf.
	overflowMidpoint = 0x1p128 - 0x1p103

	minNormal32    = 0x1p-126
	minSubnormal32 = 0x1p-149
)

// Error returns |got - want| in units of the float32 ULP at want.
//
// The ULP of a subnormal want is 2^-149. An infinite got counts as 2^128,
// except that it is exact when want rounds to infinity. NaN against NaN is
// exact; NaN against a number, or a number against NaN, is +Inf.
func Error(got float32, want float64) float64 {
	g := float64(got)
	if math.IsNaN(want) || math.IsNaN(g) {
		if math.IsNaN(want) && math.IsNaN(g) {
			return 0
		}
		return math.Inf(1)
	}
	if math.IsInf(g, 0) && math.Abs(want) >= overflowMidpoint && math.Signbit(g) == math.Signbit(want) {
		return 0
	}
	if math.IsInf(g, 0) {
		g = math.Copysign(0x1p128, g)
	}
	a := math.Min(math.Abs(want), 0x1p128)
	ulp := minSubnormal32
	if a >= minNormal32 {
		_, exp := math.Frexp(a)
		ulp = math.Ldexp(1, exp-24)
	}
	return math.Abs(g-math.Copysign(a, want)) / ulp
}
