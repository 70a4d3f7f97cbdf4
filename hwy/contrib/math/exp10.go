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

// exp10Reduction is the result of splitting x into n*log10(2) + r.
type exp10Reduction struct {
	z hwy.Float32x4 // x*log2(10) + shift, n sits in the low mantissa bits
	n hwy.Float32x4 // round(x*log2(10))
	r hwy.Float32x4 // reduced argument, |r| <= log10(2)/2 (approximately)
	e hwy.Uint32x4  // n in the exponent field position
}

// exp10Reduce computes n = round(x*log2(10)) with the shift trick and the
// Cody-Waite reduced argument r = x - n*log10(2).
func exp10Reduce(x hwy.Float32x4) exp10Reduction {
	d := &exp10Data
	z := x.MulAdd(d.log10_2, d.shift)
	n := z.Sub(d.shift)
	r := n.NegMulAdd(d.log2_10_hi, x)
	r = n.NegMulAdd(d.log2_10_lo, r)
	return exp10Reduction{
		z: z,
		n: n,
		r: r,
		// The low mantissa bits of z hold n; shifting by 23 moves them
		// into the exponent field (modulo 2^9).
		e: z.AsUint32x4().ShiftAllLeft(23),
	}
}

// exp10Poly evaluates 10^r - 1 as r*P(r) with a degree 4 polynomial in
// Estrin form.
func exp10Poly(r hwy.Float32x4) hwy.Float32x4 {
	c := &exp10Data.poly
	r2 := r.Mul(r)
	p := r.MulAdd(c[4], c[3]) // c4*r + c3
	q := r.MulAdd(c[2], c[1]) // c2*r + c1
	q = p.MulAdd(r2, q)       // p*r2 + q
	p = r.Mul(c[0])
	return q.MulAdd(r2, p) // q*r2 + c0*r
}

// pow2Bits reinterprets e + bias as float32. With e holding n<<23 and bias
// the bit pattern of a power of two 2^k, the result is 2^(n+k) as long as
// the biased exponent stays in [1, 254].
func pow2Bits(e, bias hwy.Uint32x4) hwy.Float32x4 {
	return e.Add(bias).AsFloat32x4()
}

// exp10Kernel is the shared 10^x kernel for both regimes. simdExcept is a
// constant at every production call site, so the other variant compiles
// away.
func exp10Kernel(x hwy.Float32x4, simdExcept bool) hwy.Float32x4 {
	var cmp hwy.Mask32x4
	xr := x
	if simdExcept {
		// |x| < 2^-63 or |x| >= 38 or NaN: the unsigned subtraction
		// wraps tiny inputs to large values.
		ix := x.AsUint32x4().And(exp10AbsMaskVec)
		cmp = ix.Sub(exp10TinyBoundVec).GreaterEqual(exp10ThresVec)
		// Flagged lanes are recomputed later; evaluate them at 1.0 so the
		// vector arithmetic itself raises nothing.
		xr = exp10OneVec.Merge(x, cmp)
	}

	red := exp10Reduce(xr)
	poly := exp10Poly(red.r)
	scale := pow2Bits(red.e, exp10ExponentBiasVec)

	if !simdExcept {
		cmp = red.n.AbsGreater(exp10FastBoundVec)
	}

	if !cmp.AnyTrue() {
		return poly.MulAdd(scale, scale)
	}
	if simdExcept {
		return exp10SpecialStrict(x, poly.MulAdd(scale, scale), cmp)
	}
	return exp10SpecialFast(poly, red.n, red.e, cmp, scale)
}

// Exp10_F32x4 computes 10^x for each lane of x.
//
// Maximum error is 2.36 ULP (worst case observed at x = 0x1.be2b36p+1,
// result 0x1.7e79c4p+11 against a correctly rounded 0x1.7e79cp+11).
//
// Special cases:
//   - 10^0 = 1, 10^1 = 10
//   - 10^+Inf = +Inf, 10^-Inf = 0, 10^NaN = NaN
//   - results beyond the float32 range saturate to +Inf or 0
//
// With the hwy_simdexcept build tag, lanes with |x| outside [2^-63, 38)
// (Inf and NaN included) are delegated to Exp10_32Scalar and raise exactly
// the exceptions it raises. Otherwise they are handled in vector arithmetic.
func Exp10_F32x4(x hwy.Float32x4) hwy.Float32x4 {
	return exp10Kernel(x, SIMDExcept)
}
