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

//go:build !hwy_simdexcept

package math

// SIMDExcept reports the strict regime. In the default build lanes are
// handled entirely in vector arithmetic and exception flags for far
// out-of-range inputs are unspecified. Build with -tags hwy_simdexcept for
// the strict variant.
const SIMDExcept = false

// Exp10SpecialBound is the |n| (rounded x*log2(10)) beyond which lanes take
// the special path.
const Exp10SpecialBound = exp10FastBound
