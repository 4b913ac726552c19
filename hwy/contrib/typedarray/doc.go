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

// Package typedarray converts packed numeric arrays between element kinds,
// element by element, with the coercion semantics of typed array assignment
// (%TypedArray%.prototype.set): integer narrowing wraps modulo 2^N, float to
// integer truncates toward zero and wraps, NaN and ±Inf become 0, and
// float64 to float32 rounds to nearest even.
//
// Every ordered pair of the eight supported kinds is routed through a
// dispatch table built once at startup:
//   - same kind: bulk memmove
//   - same-width integers of different signedness: raw byte reinterpretation
//   - everything else: a specialised bulk kernel, several pairs sharing one
//     kernel when their outputs are bit-identical
//   - pairs without a kernel: the per-element reference conversion
//
// All routes produce output bit-identical to Reference.
//
// Basic usage:
//
//	src := []int32{-127, 0, 65536, 65537, -1}
//	dst := make([]uint16, len(src))
//	if err := typedarray.SetSlice(dst, src, 0); err != nil {
//	    return err
//	}
//	// dst == [65409 0 0 1 65535]
//
// # Configuration
//
// TACVT_FALLBACK forces pairs of the default table onto the reference path.
// It accepts "all" or a comma-separated list of pair names such as
// "Int32Array_Float32Array,float64_int8". HWY_NO_SIMD (see package hwy)
// selects scalar block widths.
package typedarray
