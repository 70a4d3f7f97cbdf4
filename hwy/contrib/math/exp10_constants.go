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

// exp10Data holds the broadcast constants of the float32 10^x kernel.
// Built once at package init and never written afterwards.
var exp10Data = struct {
	// poly approximates (10^r - 1)/r on |r| <= log10(2)/2.
	poly [5]hwy.Float32x4

	// shift is 1.5*2^23: adding it rounds to an integer held in the
	// low mantissa bits.
	shift hwy.Float32x4

	// log10_2 is log2(10), the scale from x to a power of two.
	log10_2 hwy.Float32x4

	// log2_10_hi + log2_10_lo is a Cody-Waite split of log10(2). The
	// reduction subtracts n*hi with a fused multiply-subtract, so the
	// rounding error of n*hi is never committed.
	log2_10_hi hwy.Float32x4
	log2_10_lo hwy.Float32x4

	// scaleThresh is the |n| beyond which the result saturates to
	// Inf or 0 on the fast special path.
	scaleThresh hwy.Float32x4
}{
	poly: [5]hwy.Float32x4{
		hwy.BroadcastFloat32x4(0x1.26bb16p+1),
		hwy.BroadcastFloat32x4(0x1.5350d2p+1),
		hwy.BroadcastFloat32x4(0x1.04744ap+1),
		hwy.BroadcastFloat32x4(0x1.2d8176p+0),
		hwy.BroadcastFloat32x4(0x1.12b41ap-1),
	},
	shift:       hwy.BroadcastFloat32x4(0x1.8p23),
	log10_2:     hwy.BroadcastFloat32x4(0x1.a934fp+1),
	log2_10_hi:  hwy.BroadcastFloat32x4(0x1.344136p-2),
	log2_10_lo:  hwy.BroadcastFloat32x4(-0x1.ec10cp-27),
	scaleThresh: hwy.BroadcastFloat32x4(Exp10ScaleBound),
}

// Exp10ScaleBound is the |n| (rounded x*log2(10)) beyond which 10^x is
// saturated to +Inf or 0 without further arithmetic.
const Exp10ScaleBound = 192

const (
	// exp10ExponentBias is asuint(1.0f): adding it to e<<23 yields 2^e.
	exp10ExponentBias = 0x3f800000

	// Strict regime: |x| outside [2^-63, 38) goes to the scalar routine.
	exp10StrictBound = 38
	exp10TinyBound   = 0x20000000 // asuint(0x1p-63)
	exp10BigBound    = 0x42180000 // asuint(38)
	exp10Thres       = exp10BigBound - exp10TinyBound

	// Fast regime: split 2^n into two factors when |n| > 126.
	exp10FastBound     = 126
	exp10SpecialOffset = 0x82000000
	exp10SpecialBias   = 0x7f000000
)

var (
	exp10ExponentBiasVec  = hwy.BroadcastUint32x4(exp10ExponentBias)
	exp10TinyBoundVec     = hwy.BroadcastUint32x4(exp10TinyBound)
	exp10ThresVec         = hwy.BroadcastUint32x4(exp10Thres)
	exp10AbsMaskVec       = hwy.BroadcastUint32x4(0x7fffffff)
	exp10SpecialOffsetVec = hwy.BroadcastUint32x4(exp10SpecialOffset)
	exp10SpecialBiasVec   = hwy.BroadcastUint32x4(exp10SpecialBias)
	exp10FastBoundVec     = hwy.BroadcastFloat32x4(exp10FastBound)
	exp10OneVec           = hwy.BroadcastFloat32x4(1)
	exp10ZeroVec          = hwy.ZeroFloat32x4()
)
