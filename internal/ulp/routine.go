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

// Package ulp measures the accuracy of the vector math routines against an
// arbitrary-precision reference, interval by interval, and checks their
// floating-point exception behaviour against the scalar routines.
package ulp

import (
	stdmath "math"
	"sort"

	"github.com/ajroetker/go-highway-exp10f/hwy"
	"github.com/ajroetker/go-highway-exp10f/hwy/contrib/math"
	"github.com/ajroetker/go-highway-exp10f/internal/fenv"
	"github.com/pkg/errors"
)

// Routine declares a function under test.
type Routine struct {
	Name string

	// SigLo and SigHi bound the inputs used for benchmarking.
	SigLo, SigHi float32

	// ULP is the accepted error beyond correct rounding: a sample fails
	// when Error - 0.5 exceeds it.
	ULP float64

	// ExpectFenv requests that the exceptions raised by Vector match
	// those raised by Scalar on every lane.
	ExpectFenv bool

	Intervals []Interval

	Vector    func(hwy.Float32x4) hwy.Float32x4
	Scalar    func(float32) float32
	Reference func(float32) (float64, error)
	Fenv      func(x, y float32) fenv.Exception
}

// Exp10 is the declaration of math.Exp10_F32x4 for the regime compiled in.
func Exp10() Routine {
	const sb = math.Exp10SpecialBound
	const scale = math.Exp10ScaleBound
	inf := float32(stdmath.Inf(1))
	negZero := float32(stdmath.Copysign(0, -1))
	return Routine{
		Name:       "exp10f",
		SigLo:      -9.9,
		SigHi:      9.9,
		ULP:        1.86,
		ExpectFenv: math.SIMDExcept,
		Intervals: []Interval{
			{Lo: 0, Hi: sb, N: 5000},
			{Lo: sb, Hi: scale, N: 5000},
			{Lo: scale, Hi: inf, N: 10000},
			{Lo: negZero, Hi: -sb, N: 5000},
			{Lo: -sb, Hi: -scale, N: 5000},
			{Lo: -scale, Hi: -inf, N: 10000},
		},
		Vector:    math.Exp10_F32x4,
		Scalar:    math.Exp10_32Scalar,
		Reference: Reference,
		Fenv:      fenv.Exp10,
	}
}

var routines = map[string]func() Routine{
	"exp10f": Exp10,
}

// Lookup returns the routine declared under name.
func Lookup(name string) (Routine, error) {
	mk, ok := routines[name]
	if !ok {
		return Routine{}, errors.Errorf("unknown routine %q (have %v)", name, Names())
	}
	return mk(), nil
}

// Names lists the declared routines in sorted order.
func Names() []string {
	names := make([]string, 0, len(routines))
	for name := range routines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
