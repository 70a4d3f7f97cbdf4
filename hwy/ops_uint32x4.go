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

// BroadcastUint32x4 creates a vector with all lanes set to the given value.
func BroadcastUint32x4(v uint32) Uint32x4 {
	return Uint32x4{v, v, v, v}
}

// Get returns the element at the given index.
func (v Uint32x4) Get(i int) uint32 {
	return v[i]
}

// Add performs element-wise modular addition.
func (v Uint32x4) Add(other Uint32x4) Uint32x4 {
	var r Uint32x4
	for i := range v {
		r[i] = v[i] + other[i]
	}
	return r
}

// Sub performs element-wise modular subtraction.
func (v Uint32x4) Sub(other Uint32x4) Uint32x4 {
	var r Uint32x4
	for i := range v {
		r[i] = v[i] - other[i]
	}
	return r
}

// And performs element-wise bitwise AND.
func (v Uint32x4) And(other Uint32x4) Uint32x4 {
	var r Uint32x4
	for i := range v {
		r[i] = v[i] & other[i]
	}
	return r
}

// ShiftAllLeft shifts every lane left by count bits; bits shifted out are lost.
func (v Uint32x4) ShiftAllLeft(count uint) Uint32x4 {
	var r Uint32x4
	for i := range v {
		r[i] = v[i] << count
	}
	return r
}

// GreaterEqual returns a mask of lanes where v >= other (unsigned).
func (v Uint32x4) GreaterEqual(other Uint32x4) Mask32x4 {
	var m Mask32x4
	for i := range v {
		m[i] = v[i] >= other[i]
	}
	return m
}

// IfThenElseZero returns v where mask is active and zero elsewhere.
func (v Uint32x4) IfThenElseZero(mask Mask32x4) Uint32x4 {
	var r Uint32x4
	for i, on := range mask {
		if on {
			r[i] = v[i]
		}
	}
	return r
}

// AsFloat32x4 reinterprets the lanes as float32 values.
func (v Uint32x4) AsFloat32x4() Float32x4 {
	var r Float32x4
	for i := range v {
		r[i] = math.Float32frombits(v[i])
	}
	return r
}

// ===== Mask32x4 =====

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask32x4) AnyTrue() bool {
	return m[0] || m[1] || m[2] || m[3]
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask32x4) AllTrue() bool {
	return m[0] && m[1] && m[2] && m[3]
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask32x4) CountTrue() int {
	count := 0
	for _, bit := range m {
		if bit {
			count++
		}
	}
	return count
}

// GetBit returns whether lane i is active.
func (m Mask32x4) GetBit(i int) bool {
	if i < 0 || i >= len(m) {
		return false
	}
	return m[i]
}

// Or returns the lane-wise union of two masks.
func (m Mask32x4) Or(other Mask32x4) Mask32x4 {
	return Mask32x4{m[0] || other[0], m[1] || other[1], m[2] || other[2], m[3] || other[3]}
}

// And returns the lane-wise intersection of two masks.
func (m Mask32x4) And(other Mask32x4) Mask32x4 {
	return Mask32x4{m[0] && other[0], m[1] && other[1], m[2] && other[2], m[3] && other[3]}
}

// Not inverts every lane.
func (m Mask32x4) Not() Mask32x4 {
	return Mask32x4{!m[0], !m[1], !m[2], !m[3]}
}
