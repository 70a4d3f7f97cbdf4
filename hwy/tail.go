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

// ProcessWithTail is a helper for processing arrays 4 float32 lanes at a time
// that handles both full vectors and the tail (remainder) automatically.
//
// It calls:
//   - fullFn(offset) for each full vector (offset is the starting index)
//   - tailFn(offset, count) once for the tail if size is not a multiple of 4
//
// Example:
//
//	hwy.ProcessWithTail(len(data),
//	    func(offset int) {
//	        v := hwy.LoadFloat32x4Slice(data[offset:])
//	        v.Add(v).StoreSlice(output[offset:])
//	    },
//	    func(offset, count int) {
//	        v := hwy.LoadFloat32x4Partial(data[offset : offset+count])
//	        v.Add(v).StorePartial(output[offset : offset+count])
//	    },
//	)
func ProcessWithTail(size int, fullFn func(offset int), tailFn func(offset, count int)) {
	// Process full vectors
	fullVectors := size / Float32x4Lanes
	for i := range fullVectors {
		fullFn(i * Float32x4Lanes)
	}

	// Process tail if any
	remaining := size % Float32x4Lanes
	if remaining > 0 {
		tailFn(fullVectors*Float32x4Lanes, remaining)
	}
}

// AlignedSize rounds up size to the next multiple of the vector width.
// This is useful for allocating buffers that will be processed in blocks.
func AlignedSize(size int) int {
	return ((size + Float32x4Lanes - 1) / Float32x4Lanes) * Float32x4Lanes
}

// IsAligned returns true if size is a multiple of the vector width.
func IsAligned(size int) bool {
	return size%Float32x4Lanes == 0
}
