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

// Package fenv models the IEEE-754 exception flags raised by float32
// elementary functions.
//
// Go does not expose the floating-point status register, so the flags are
// derived from the input and the returned value: a routine that returns y for
// x raises exactly the flags a conforming implementation raises for that
// pair. Inexact is not modelled.
package fenv

import (
	"math"
	"strings"
)

// Exception is a set of IEEE-754 exception flags.
type Exception uint8

const (
	Invalid Exception = 1 << iota
	DivByZero
	Overflow
	Underflow
)

// None is the empty flag set.
const None Exception = 0

var exceptionNames = []struct {
	flag Exception
	name string
}{
	{Invalid, "invalid"},
	{DivByZero, "divbyzero"},
	{Overflow, "overflow"},
	{Underflow, "underflow"},
}

// String renders the set as names joined by "|", or "none".
func (e Exception) String() string {
	if e == None {
		return "none"
	}
	var parts []string
	for _, n := range exceptionNames {
		if e&n.flag != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// Has reports whether every flag in f is set in e.
func (e Exception) Has(f Exception) bool {
	return e&f == f
}

// IsSignalingNaN reports whether x is a signaling NaN (quiet bit clear).
func IsSignalingNaN(x float32) bool {
	b := math.Float32bits(x)
	return b&0x7f800000 == 0x7f800000 && b&0x007fffff != 0 && b&0x00400000 == 0
}

// Exp10 returns the flags raised by a 10^x routine returning y for x.
//
//   - signaling NaN input: Invalid
//   - finite input, infinite result: Overflow
//   - finite input, zero or subnormal result: Underflow
func Exp10(x, y float32) Exception {
	fx := float64(x)
	switch {
	case IsSignalingNaN(x):
		return Invalid
	case math.IsNaN(fx) || math.IsInf(fx, 0):
		return None
	}
	fy := float64(y)
	switch {
	case math.IsInf(fy, 0):
		return Overflow
	case math.Abs(fy) < 0x1p-126:
		return Underflow
	}
	return None
}
