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
	"math"
	"strconv"

	"github.com/cockroachdb/apd/v3"
	"github.com/pkg/errors"
)

// referencePrecision is the number of significant decimal digits used for
// reference values.
const referencePrecision = 40

// referenceLimit bounds |x| for the arbitrary-precision evaluation. 10^x is
// outside the float64 range beyond it.
const referenceLimit = 300

var (
	referenceCtx = apd.BaseContext.WithPrecision(referencePrecision)

	// wideCtx carries guard digits for the argument x*ln(10).
	wideCtx = apd.BaseContext.WithPrecision(referencePrecision + 10)
	ln10    = mustLn10()
)

func mustLn10() *apd.Decimal {
	var d apd.Decimal
	if _, err := wideCtx.Ln(&d, apd.New(10, 0)); err != nil {
		panic(err)
	}
	return &d
}

// Reference returns 10^x computed to 40 significant digits and rounded to
// float64. Results saturate to +Inf for x > 300 and to 0 for x < -300.
func Reference(x float32) (float64, error) {
	f := float64(x)
	switch {
	case math.IsNaN(f):
		return math.NaN(), nil
	case f > referenceLimit:
		return math.Inf(1), nil
	case f < -referenceLimit:
		return 0, nil
	}

	// 41 significant digits: exact for the binades that matter here.
	d, _, err := apd.NewFromString(strconv.FormatFloat(f, 'e', referencePrecision, 64))
	if err != nil {
		return 0, errors.Wrapf(err, "reference: parse %v", x)
	}
	var arg, r apd.Decimal
	if _, err := wideCtx.Mul(&arg, d, ln10); err != nil {
		return 0, errors.Wrapf(err, "reference: %v*ln(10)", x)
	}
	if _, err := referenceCtx.Exp(&r, &arg); err != nil {
		return 0, errors.Wrapf(err, "reference: 10^%v", x)
	}
	y, err := r.Float64()
	if err != nil {
		return 0, errors.Wrapf(err, "reference: convert 10^%v", x)
	}
	return y, nil
}
