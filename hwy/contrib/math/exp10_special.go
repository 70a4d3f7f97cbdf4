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

import "github.com/ajroetker/go-highway-exp10f/hwy"

// exp10SpecialStrict replaces every flagged lane of y with the scalar
// result for the unmasked input. Unflagged lanes are returned untouched.
func exp10SpecialStrict(x, y hwy.Float32x4, cmp hwy.Mask32x4) hwy.Float32x4 {
	for i, special := range cmp {
		if special {
			y[i] = Exp10_32Scalar(x[i])
		}
	}
	return y
}

// exp10SpecialFast reconstructs lanes whose 2^n is outside the normal
// exponent range. 2^n is split into s1*s2 with both factors representable,
// and lanes with |n| > 192 saturate to s1*s1 (+Inf or 0).
func exp10SpecialFast(poly, n hwy.Float32x4, e hwy.Uint32x4, cmp1 hwy.Mask32x4, scale hwy.Float32x4) hwy.Float32x4 {
	// b = n <= 0 ? 0x82000000 : 0
	b := exp10SpecialOffsetVec.IfThenElseZero(n.LessEqual(exp10ZeroVec))
	s1 := pow2Bits(b, exp10SpecialBiasVec) // 2^127 or 2^-125
	s2 := e.Sub(b).AsFloat32x4()
	cmp2 := n.AbsGreater(exp10Data.scaleThresh)

	r2 := s1.Mul(s1)
	r1 := poly.MulAdd(s2, s2).Mul(s1)
	r0 := poly.MulAdd(scale, scale)

	r := r1.Merge(r0, cmp1)
	return r2.Merge(r, cmp2)
}
