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

// Package hwy provides the portable 128-bit lane substrate used by the
// contrib math kernels.
//
// Vectors are fixed-size arrays with archsimd-style methods, so kernels are
// written once as straight-line vector code and every lane is computed with
// exactly the same IEEE-754 single-precision operations a 128-bit SIMD unit
// would perform (including single-rounding fused multiply-add).
//
// Basic usage:
//
//	import "github.com/ajroetker/go-highway-exp10f/hwy"
//
//	x := hwy.LoadFloat32x4Slice(data)
//	y := x.MulAdd(hwy.BroadcastFloat32x4(2), hwy.BroadcastFloat32x4(1))
//	y.StoreSlice(out)
package hwy

// Float32x4Lanes is the number of float32 lanes in a 128-bit vector.
const Float32x4Lanes = 4

// Float32x4 represents a 128-bit vector of 4 float32 values.
type Float32x4 [Float32x4Lanes]float32

// Uint32x4 represents a 128-bit vector of 4 uint32 values. Arithmetic is
// modular, as on SIMD hardware.
type Uint32x4 [Float32x4Lanes]uint32

// Mask32x4 is the result of a lane-wise comparison on 32-bit lanes.
// Lane i is active when element i is true.
type Mask32x4 [Float32x4Lanes]bool
