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

// Every result below is explicitly converted to float32: without the
// conversion the compiler may fuse x*y+z into one rounding.

// ===== Float32x4 constructors =====

// BroadcastFloat32x4 creates a vector with all lanes set to the given value.
func BroadcastFloat32x4(v float32) Float32x4 {
	return Float32x4{v, v, v, v}
}

// LoadFloat32x4Slice loads 4 float32 values from a slice.
// It panics if len(s) < 4.
func LoadFloat32x4Slice(s []float32) Float32x4 {
	return Float32x4(s[:Float32x4Lanes])
}

// LoadFloat32x4Partial loads up to 4 values from s, leaving missing lanes zero.
func LoadFloat32x4Partial(s []float32) Float32x4 {
	var v Float32x4
	copy(v[:], s)
	return v
}

// ZeroFloat32x4 returns a zero vector.
func ZeroFloat32x4() Float32x4 {
	return Float32x4{}
}

// ===== Float32x4 methods =====

// StoreSlice stores the vector to a slice.
// It panics if len(s) < 4.
func (v Float32x4) StoreSlice(s []float32) {
	copy(s[:Float32x4Lanes], v[:])
}

// StorePartial stores min(len(s), 4) lanes to s.
func (v Float32x4) StorePartial(s []float32) {
	copy(s, v[:])
}

// Get returns the element at the given index.
func (v Float32x4) Get(i int) float32 {
	return v[i]
}

// Add performs element-wise addition.
func (v Float32x4) Add(other Float32x4) Float32x4 {
	var r Float32x4
	for i := range v {
		r[i] = float32(v[i] + other[i])
	}
	return r
}

// Sub performs element-wise subtraction.
func (v Float32x4) Sub(other Float32x4) Float32x4 {
	var r Float32x4
	for i := range v {
		r[i] = float32(v[i] - other[i])
	}
	return r
}

// Mul performs element-wise multiplication.
func (v Float32x4) Mul(other Float32x4) Float32x4 {
	var r Float32x4
	for i := range v {
		r[i] = float32(v[i] * other[i])
	}
	return r
}

// MulAdd computes v*a + b with a single rounding per lane.
func (v Float32x4) MulAdd(a, b Float32x4) Float32x4 {
	var r Float32x4
	for i := range v {
		r[i] = MulAddF32(v[i], a[i], b[i])
	}
	return r
}

// NegMulAdd computes b - v*a with a single rounding per lane.
func (v Float32x4) NegMulAdd(a, b Float32x4) Float32x4 {
	var r Float32x4
	for i := range v {
		r[i] = MulAddF32(-v[i], a[i], b[i])
	}
	return r
}

// Abs clears the sign bit of every lane.
func (v Float32x4) Abs() Float32x4 {
	var r Float32x4
	for i := range v {
		r[i] = math.Float32frombits(math.Float32bits(v[i]) &^ signBit32)
	}
	return r
}

// Neg flips the sign bit of every lane.
func (v Float32x4) Neg() Float32x4 {
	var r Float32x4
	for i := range v {
		r[i] = math.Float32frombits(math.Float32bits(v[i]) ^ signBit32)
	}
	return r
}

// Greater returns a mask of lanes where v > other. NaN lanes are inactive.
func (v Float32x4) Greater(other Float32x4) Mask32x4 {
	var m Mask32x4
	for i := range v {
		m[i] = v[i] > other[i]
	}
	return m
}

// Less returns a mask of lanes where v < other.
func (v Float32x4) Less(other Float32x4) Mask32x4 {
	var m Mask32x4
	for i := range v {
		m[i] = v[i] < other[i]
	}
	return m
}

// LessEqual returns a mask of lanes where v <= other.
func (v Float32x4) LessEqual(other Float32x4) Mask32x4 {
	var m Mask32x4
	for i := range v {
		m[i] = v[i] <= other[i]
	}
	return m
}

// GreaterEqual returns a mask of lanes where v >= other.
func (v Float32x4) GreaterEqual(other Float32x4) Mask32x4 {
	var m Mask32x4
	for i := range v {
		m[i] = v[i] >= other[i]
	}
	return m
}

// AbsGreater returns a mask of lanes where |v| > |other| (NEON FACGT).
func (v Float32x4) AbsGreater(other Float32x4) Mask32x4 {
	return v.Abs().Greater(other.Abs())
}

// Merge returns v in lanes where mask is active and other elsewhere.
func (v Float32x4) Merge(other Float32x4, mask Mask32x4) Float32x4 {
	r := other
	for i, on := range mask {
		if on {
			r[i] = v[i]
		}
	}
	return r
}

// AsUint32x4 reinterprets the lanes as uint32 bit patterns.
func (v Float32x4) AsUint32x4() Uint32x4 {
	var r Uint32x4
	for i := range v {
		r[i] = math.Float32bits(v[i])
	}
	return r
}

const signBit32 = uint32(0x80000000)
