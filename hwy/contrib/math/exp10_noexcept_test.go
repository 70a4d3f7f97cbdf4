//go:build !hwy_simdexcept

package math

import (
	stdmath "math"
	"testing"

	"github.com/ajroetker/go-highway-exp10f/hwy"
)

func TestExp10FastBuild(t *testing.T) {
	if SIMDExcept || Exp10SpecialBound != 126 {
		t.Fatalf("SIMDExcept = %v, Exp10SpecialBound = %v", SIMDExcept, Exp10SpecialBound)
	}
	got := Exp10_F32x4(hwy.Float32x4{200, -200, -40, 38.5})
	if !stdmath.IsInf(float64(got[0]), 1) || got[1] != 0 {
		t.Errorf("Exp10_F32x4(±200) = (%v, %v), want (+Inf, 0)", got[0], got[1])
	}
	if got[2] <= 0 || got[2] >= 0x1p-126 {
		t.Errorf("Exp10_F32x4(-40) = %v, want a positive subnormal", got[2])
	}
	if e := ulpError(got[3], Exp10_64Scalar(38.5)); e > 2.36 {
		t.Errorf("Exp10_F32x4(38.5) = %v, error %.3f ULP", got[3], e)
	}
}
