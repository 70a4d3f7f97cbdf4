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

package hwy

import "math"

const (
	// minNormal32 is the smallest positive normal float32, 2^-126.
	minNormal32 = 0x1p-126

	// subnormalHalfULP32 is half the spacing of float32 subnormals, 2^-150.
	subnormalHalfULP32 = 0x1p-150

	// lowBits32 selects the float64 mantissa bits below float32 precision.
	lowBits32 = 1<<29 - 1
	halfBit32 = 1 << 28
)

// MulAddF32 computes a*b + c rounded once to float32 (round to nearest even),
// matching a hardware single-precision FMA for every input including
// subnormals, infinities and NaNs.
//
// The product of two float32 values is exact in float64, so only the final
// addition can round twice. That only matters when the float64 sum lands
// exactly on a float32 rounding midpoint; the exact residual of the addition
// then decides the direction.
func MulAddF32(a, b, c float32) float32 {
	xy := float64(a) * float64(b)
	cc := float64(c)
	s := xy + cc
	if s == 0 || math.IsInf(s, 0) || math.IsNaN(s) {
		return float32(s)
	}

	var half float64
	if abs := math.Abs(s); abs >= minNormal32 {
		if math.Float64bits(s)&lowBits32 != halfBit32 {
			return float32(s)
		}
		_, exp := math.Frexp(abs)
		half = math.Ldexp(1, exp-25)
	} else {
		t := s / subnormalHalfULP32
		ti := int64(t)
		if float64(ti) != t || ti&1 == 0 {
			return float32(s)
		}
		half = subnormalHalfULP32
	}

	// TwoSum: err is the exact rounding error of xy + cc.
	bb := s - xy
	err := (xy - (s - bb)) + (cc - bb)
	switch {
	case err > 0:
		return float32(s + half)
	case err < 0:
		return float32(s - half)
	default:
		return float32(s)
	}
}
