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

package ulp

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Interval is a range of float32 inputs and the number of samples to test in
// it. Lo may be greater than Hi; samples then run from Lo towards Hi.
type Interval struct {
	Lo, Hi float32
	N      int
}

// ParseInterval parses "lo hi n", e.g. "0 38 5000" or "-192 -inf 10000".
func ParseInterval(s string) (Interval, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return Interval{}, errors.Errorf("interval %q: want \"lo hi n\"", s)
	}
	lo, err := strconv.ParseFloat(fields[0], 32)
	if err != nil {
		return Interval{}, errors.Wrapf(err, "interval %q: lo", s)
	}
	hi, err := strconv.ParseFloat(fields[1], 32)
	if err != nil {
		return Interval{}, errors.Wrapf(err, "interval %q: hi", s)
	}
	n, err := strconv.Atoi(fields[2])
	if err != nil {
		return Interval{}, errors.Wrapf(err, "interval %q: n", s)
	}
	if n <= 0 {
		return Interval{}, errors.Errorf("interval %q: n must be positive", s)
	}
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return Interval{}, errors.Errorf("interval %q: NaN bound", s)
	}
	return Interval{Lo: float32(lo), Hi: float32(hi), N: n}, nil
}

// String formats the interval the way ParseInterval reads it.
func (iv Interval) String() string {
	return fmt.Sprintf("%s %s %d", formatBound(iv.Lo), formatBound(iv.Hi), iv.N)
}

func formatBound(f float32) string {
	switch {
	case math.IsInf(float64(f), 1):
		return "inf"
	case math.IsInf(float64(f), -1):
		return "-inf"
	case f == 0 && math.Signbit(float64(f)):
		return "-0"
	}
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

// Samples returns N inputs between Lo and Hi, both included.
//
// Inputs are spread over the float32 bit patterns rather than the real
// line, so every binade in the interval gets its share. With seed 0 the
// patterns are evenly spaced; otherwise they are drawn uniformly from a
// generator seeded with seed. An interval whose bounds are both negative
// (including -0) only yields negative inputs.
func (iv Interval) Samples(seed uint64) []float32 {
	n := max(iv.N, 1)
	negative := math.Signbit(float64(iv.Lo)) && math.Signbit(float64(iv.Hi))
	lo, hi := orderKey(iv.Lo, negative), orderKey(iv.Hi, negative)

	out := make([]float32, n)
	out[0] = fromOrderKey(lo, negative)
	if n == 1 {
		return out
	}
	out[n-1] = fromOrderKey(hi, negative)

	span := hi - lo
	var r *rand.Rand
	if seed != 0 {
		r = rand.New(rand.NewPCG(seed, uint64(n)))
	}
	for i := 1; i < n-1; i++ {
		var k int64
		if r != nil {
			k = lo + int64(r.Float64()*float64(span))
		} else {
			k = lo + span*int64(i)/int64(n-1)
		}
		out[i] = fromOrderKey(k, negative)
	}
	return out
}

// orderKey maps f to an integer that is monotone in f. For negative
// intervals the key is the magnitude so that -0 stays distinct from +0.
func orderKey(f float32, negative bool) int64 {
	b := math.Float32bits(f)
	mag := int64(b & 0x7fffffff)
	if negative || b&0x80000000 == 0 {
		return mag
	}
	return -mag
}

func fromOrderKey(k int64, negative bool) float32 {
	if negative {
		return math.Float32frombits(uint32(k) | 0x80000000)
	}
	if k < 0 {
		return math.Float32frombits(uint32(-k) | 0x80000000)
	}
	return math.Float32frombits(uint32(k))
}
