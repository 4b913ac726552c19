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

package typedarray

import "unsafe"

// reinterpretable reports whether converting s to d is a pure byte copy:
// integers of equal width already hold the destination's bit pattern,
// since wrapping modulo 2^N leaves the low N bits untouched.
func reinterpretable(s, d Kind) bool {
	return s != d && !s.IsFloat() && !d.IsFloat() && s.Size() == d.Size()
}

// copyRaw copies n bytes from src to dst. Overlapping regions are handled
// like memmove, which gives same-kind aliasing the semantics of an in-place
// safe sequential copy.
func copyRaw(dst, src unsafe.Pointer, n int) {
	if n == 0 {
		return
	}
	copy(rawBytes(dst, n), rawBytes(src, n))
}
