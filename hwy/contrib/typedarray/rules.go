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
	"math"

	"github.com/cockroachdb/errors"
)

// This file defines the coercion applied to one element for every
// destination kind. A source element is first read exactly as a float64
// (every supported kind fits), then narrowed by the destination rule.
// Kernels are faster renditions of these rules and must agree with them bit
// for bit.

const (
	two32 = 1 << 32

	// int64Lo and int64Hi bound the open interval of floats whose truncation
	// fits in an int64, so int64(x) is exact there.
	int64Lo = -0x1p63
	int64Hi = 0x1p63
)

// Wrap32 truncates x toward zero and reduces it modulo 2^32, returning the
// low 32 bits of its two's-complement value. NaN and ±Inf map to 0.
// Narrower integer destinations take the low bits of this result.
func Wrap32(x float64) uint32 {
	if x > int64Lo && x < int64Hi {
		return uint32(int64(x))
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	// |x| >= 2^63 is already integral and math.Mod is exact.
	m := math.Mod(x, two32)
	if m < 0 {
		m += two32
	}
	return uint32(m)
}

// ToInt8 converts x to int8: truncate, wrap modulo 2^8, NaN/±Inf → 0.
func ToInt8(x float64) int8 { return int8(Wrap32(x)) }

// ToUint8 converts x to uint8: truncate, wrap modulo 2^8, NaN/±Inf → 0.
// This is not the clamping conversion of Uint8ClampedArray.
func ToUint8(x float64) uint8 { return uint8(Wrap32(x)) }

// ToInt16 converts x to int16: truncate, wrap modulo 2^16, NaN/±Inf → 0.
func ToInt16(x float64) int16 { return int16(Wrap32(x)) }

// ToUint16 converts x to uint16: truncate, wrap modulo 2^16, NaN/±Inf → 0.
func ToUint16(x float64) uint16 { return uint16(Wrap32(x)) }

// ToInt32 converts x to int32: truncate, wrap modulo 2^32, NaN/±Inf → 0.
func ToInt32(x float64) int32 { return int32(Wrap32(x)) }

// ToUint32 converts x to uint32: truncate, wrap modulo 2^32, NaN/±Inf → 0.
func ToUint32(x float64) uint32 { return Wrap32(x) }

// ToFloat32 rounds x to the nearest float32, ties to even. Values beyond the
// float32 range become ±Inf; NaN stays NaN (payload not guaranteed).
func ToFloat32(x float64) float32 { return float32(x) }

// Coerce converts x to the value a destination element of kind k holds
// after assignment, widened back to float64. It panics on an invalid kind.
func Coerce(k Kind, x float64) float64 {
	switch k {
	case Int8:
		return float64(ToInt8(x))
	case Uint8:
		return float64(ToUint8(x))
	case Int16:
		return float64(ToInt16(x))
	case Uint16:
		return float64(ToUint16(x))
	case Int32:
		return float64(ToInt32(x))
	case Uint32:
		return float64(ToUint32(x))
	case Float32:
		return float64(ToFloat32(x))
	case Float64:
		return x
	}
	panic(errors.AssertionFailedf("typedarray: coerce to invalid kind %d", k))
}
