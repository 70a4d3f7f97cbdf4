package math

import stdmath "math"

// Scalar helper functions for single-element operations.
// Exp10_F32x4 delegates lanes to Exp10_32Scalar in the strict build, and the
// tests use both as the reference.

// Exp10_32Scalar computes 10^x for a single float32.
// NaN propagates unchanged, 10^+Inf = +Inf and 10^-Inf = 0.
func Exp10_32Scalar(x float32) float32 {
	switch {
	case x != x:
		return x
	case stdmath.IsInf(float64(x), 1):
		return float32(stdmath.Inf(1))
	case stdmath.IsInf(float64(x), -1):
		return 0
	}
	return float32(stdmath.Pow(10, float64(x)))
}

// Exp10_64Scalar computes 10^x for a single float64.
func Exp10_64Scalar(x float64) float64 { return stdmath.Pow(10, x) }
