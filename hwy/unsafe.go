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

import "unsafe"

// This file provides zero-copy reinterpretation of lane memory. None of these
// functions convert values; they only change how the same bytes are viewed.

// Sizeof returns the size of T in bytes.
func Sizeof[T Lanes]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// SliceAt returns the n elements of type T starting at p.
// p must point to at least n valid elements; a nil p yields nil.
func SliceAt[T Lanes](p unsafe.Pointer, n int) []T {
	if p == nil || n == 0 {
		return nil
	}
	return unsafe.Slice((*T)(p), n)
}

// Bytes reinterprets s as its raw in-memory bytes.
func Bytes[T Lanes](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*Sizeof[T]())
}
