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

//go:build hwy_simdexcept

package math

// SIMDExcept reports the strict regime: lanes that could raise overflow or
// underflow, or that are tiny, infinite or NaN, are recomputed by the scalar
// routine so that exception flags match it exactly.
const SIMDExcept = true

// Exp10SpecialBound is the |x| beyond which lanes take the special path.
const Exp10SpecialBound = exp10StrictBound
