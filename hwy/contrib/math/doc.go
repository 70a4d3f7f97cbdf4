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

// Package math provides SIMD-style transcendental math functions on the
// 128-bit lane types of package hwy.
//
// # Low-Level Vector Functions
//
// Float32x4 functions:
//   - Exp10_F32x4(x hwy.Float32x4) hwy.Float32x4 - 10^x, max error 2.36 ULP
//
// # Bulk Functions
//
// Slice functions process 4 lanes at a time and handle the tail:
//   - Exp10Poly(input, output []float32)
//   - Exp10PolyParallel(pool *workerpool.Pool, input, output []float32)
//
// # Scalar Functions
//
// Reference implementations on top of the standard library:
//   - Exp10_32Scalar(x float32) float32
//   - Exp10_64Scalar(x float64) float64
//
// # Exception Regimes
//
// The default build handles every lane in vector arithmetic; 10^x saturates
// correctly but the floating-point exceptions raised for far out-of-range
// lanes are unspecified. Building with
//
//	go build -tags hwy_simdexcept
//
// selects the strict regime: lanes with |x| outside [2^-63, 38), Inf and
// NaN included, are recomputed by Exp10_32Scalar so exceptions match the
// scalar routine.
// SIMDExcept reports which regime was compiled in.
//
// # Example
//
//	x := hwy.LoadFloat32x4Slice(input)
//	y := math.Exp10_F32x4(x)
//	y.StoreSlice(output)
package math
