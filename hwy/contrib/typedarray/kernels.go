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

import (
	"unsafe"

	"github.com/ajroetker/go-tacvt/hwy"
)

// KernelID names one bulk conversion routine. Several pairs may share a
// KernelID when the routine produces identical destination bits for all of
// them; the X in a name stands for "either signedness".
type KernelID uint8

const (
	// KernelNone marks entries that do not use a kernel.
	KernelNone KernelID = iota

	// Integer widening. Sign or zero extension depends only on the source,
	// so both destination signednesses share the kernel.
	KernelI8ToX16
	KernelI8ToX32
	KernelU8ToX16
	KernelU8ToX32
	KernelI16ToX32
	KernelU16ToX32

	// Integer narrowing keeps the low bits, whatever the signedness.
	KernelX32ToX16
	KernelX32ToX8
	KernelX16ToX8

	// Integer to float.
	KernelI8ToF32
	KernelI8ToF64
	KernelU8ToF32
	KernelU8ToF64
	KernelI16ToF32
	KernelI16ToF64
	KernelU16ToF32
	KernelU16ToF64
	KernelI32ToF32
	KernelI32ToF64
	KernelU32ToF32
	KernelU32ToF64

	// Float to integer: truncate and wrap modulo 2^32, then keep the low bits.
	KernelF32ToX32
	KernelF32ToX16
	KernelF32ToX8
	KernelF64ToX32
	KernelF64ToX16
	KernelF64ToX8

	// Float to float.
	KernelF32ToF64
	KernelF64ToF32

	numKernels
)

// kernelFunc converts n elements from src into dst. dst already points at the
// destination offset. Both regions are assumed valid for n elements.
type kernelFunc func(dst, src unsafe.Pointer, n int)

type kernelSpec struct {
	name string
	fn   kernelFunc
	srcs []Kind
	dsts []Kind
}

func kinds(k ...Kind) []Kind { return k }

// kernelSpecs registers every kernel with the pairs it serves. The table
// builder routes each listed (src, dst) combination to the kernel.
var kernelSpecs = [numKernels]kernelSpec{
	KernelNone: {name: "none"},

	KernelI8ToX16:  {"i8->x16", castKernel[int8, int16], kinds(Int8), kinds(Int16, Uint16)},
	KernelI8ToX32:  {"i8->x32", castKernel[int8, int32], kinds(Int8), kinds(Int32, Uint32)},
	KernelU8ToX16:  {"u8->x16", castKernel[uint8, uint16], kinds(Uint8), kinds(Int16, Uint16)},
	KernelU8ToX32:  {"u8->x32", castKernel[uint8, uint32], kinds(Uint8), kinds(Int32, Uint32)},
	KernelI16ToX32: {"i16->x32", castKernel[int16, int32], kinds(Int16), kinds(Int32, Uint32)},
	KernelU16ToX32: {"u16->x32", castKernel[uint16, uint32], kinds(Uint16), kinds(Int32, Uint32)},

	KernelX32ToX16: {"x32->x16", castKernel[uint32, uint16], kinds(Int32, Uint32), kinds(Int16, Uint16)},
	KernelX32ToX8:  {"x32->x8", castKernel[uint32, uint8], kinds(Int32, Uint32), kinds(Int8, Uint8)},
	KernelX16ToX8:  {"x16->x8", castKernel[uint16, uint8], kinds(Int16, Uint16), kinds(Int8, Uint8)},

	KernelI8ToF32:  {"i8->f32", castKernel[int8, float32], kinds(Int8), kinds(Float32)},
	KernelI8ToF64:  {"i8->f64", castKernel[int8, float64], kinds(Int8), kinds(Float64)},
	KernelU8ToF32:  {"u8->f32", castKernel[uint8, float32], kinds(Uint8), kinds(Float32)},
	KernelU8ToF64:  {"u8->f64", castKernel[uint8, float64], kinds(Uint8), kinds(Float64)},
	KernelI16ToF32: {"i16->f32", castKernel[int16, float32], kinds(Int16), kinds(Float32)},
	KernelI16ToF64: {"i16->f64", castKernel[int16, float64], kinds(Int16), kinds(Float64)},
	KernelU16ToF32: {"u16->f32", castKernel[uint16, float32], kinds(Uint16), kinds(Float32)},
	KernelU16ToF64: {"u16->f64", castKernel[uint16, float64], kinds(Uint16), kinds(Float64)},
	KernelI32ToF32: {"i32->f32", castKernel[int32, float32], kinds(Int32), kinds(Float32)},
	KernelI32ToF64: {"i32->f64", castKernel[int32, float64], kinds(Int32), kinds(Float64)},
	KernelU32ToF32: {"u32->f32", castKernel[uint32, float32], kinds(Uint32), kinds(Float32)},
	KernelU32ToF64: {"u32->f64", castKernel[uint32, float64], kinds(Uint32), kinds(Float64)},

	KernelF32ToX32: {"f32->x32", floatToIntKernel[float32, uint32], kinds(Float32), kinds(Int32, Uint32)},
	KernelF32ToX16: {"f32->x16", floatToIntKernel[float32, uint16], kinds(Float32), kinds(Int16, Uint16)},
	KernelF32ToX8:  {"f32->x8", floatToIntKernel[float32, uint8], kinds(Float32), kinds(Int8, Uint8)},
	KernelF64ToX32: {"f64->x32", floatToIntKernel[float64, uint32], kinds(Float64), kinds(Int32, Uint32)},
	KernelF64ToX16: {"f64->x16", floatToIntKernel[float64, uint16], kinds(Float64), kinds(Int16, Uint16)},
	KernelF64ToX8:  {"f64->x8", floatToIntKernel[float64, uint8], kinds(Float64), kinds(Int8, Uint8)},

	KernelF32ToF64: {"f32->f64", castKernel[float32, float64], kinds(Float32), kinds(Float64)},
	KernelF64ToF32: {"f64->f32", castKernel[float64, float32], kinds(Float64), kinds(Float32)},
}

// String returns the kernel name, e.g. "x32->x16".
func (id KernelID) String() string {
	if id >= numKernels {
		return "unknown"
	}
	return kernelSpecs[id].name
}

// Pairs returns the conversion pairs the kernel is registered for.
func (id KernelID) Pairs() []Pair {
	if id == KernelNone || id >= numKernels {
		return nil
	}
	spec := kernelSpecs[id]
	pairs := make([]Pair, 0, len(spec.srcs)*len(spec.dsts))
	for _, s := range spec.srcs {
		for _, d := range spec.dsts {
			pairs = append(pairs, Pair{Src: s, Dst: d})
		}
	}
	return pairs
}

// castKernel converts with Go conversion semantics, which match the coercion
// rules exactly for integer→integer (low bits), integer→float (exact, or
// round-to-nearest-even for 32-bit integers to float32) and float→float.
// It must not be used for float→integer, whose out-of-range Go conversion is
// implementation-defined.
func castKernel[S, D hwy.Lanes](dst, src unsafe.Pointer, n int) {
	s := hwy.SliceAt[S](src, n)
	d := hwy.SliceAt[D](dst, n)
	d = d[:len(s)]
	for i, v := range s {
		d[i] = D(v)
	}
}

// floatToIntKernel truncates and wraps floats into an integer destination.
// Blocks of hwy.MaxLanes lanes that all lie strictly inside the int64 range
// take the plain truncating path; any block holding NaN, ±Inf or a huge
// magnitude goes lane by lane through Wrap32.
func floatToIntKernel[S hwy.Floats, D hwy.UnsignedInts](dst, src unsafe.Pointer, n int) {
	s := hwy.SliceAt[S](src, n)
	d := hwy.SliceAt[D](dst, n)
	d = d[:len(s)]

	lanes := hwy.MaxLanes[S]()
	full := hwy.FullBlocks[S](len(s))
	i := 0
	for ; i < full; i += lanes {
		blk := s[i : i+lanes]
		out := d[i : i+lanes]
		if int64Range(blk) {
			for j, v := range blk {
				out[j] = D(int64(v))
			}
			continue
		}
		for j, v := range blk {
			out[j] = D(Wrap32(float64(v)))
		}
	}
	for ; i < len(s); i++ {
		d[i] = D(Wrap32(float64(s[i])))
	}
}

// int64Range reports whether every lane is strictly inside (-2^63, 2^63).
// NaN fails the comparison.
func int64Range[S hwy.Floats](blk []S) bool {
	for _, v := range blk {
		if !(v > int64Lo && v < int64Hi) {
			return false
		}
	}
	return true
}
