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
	"reflect"
	"unsafe"

	"github.com/ajroetker/go-tacvt/hwy"
	"github.com/cockroachdb/errors"
)

// Buffer is a borrowed view over caller-owned packed numeric memory: an
// element kind, a base address and an element count. A Buffer never owns,
// retains or resizes its memory; the memory must stay alive for as long as
// the Buffer is used.
//
// The zero Buffer has kind Invalid and is rejected by Set.
type Buffer struct {
	kind Kind
	ptr  unsafe.Pointer
	n    int
}

// Of returns a Buffer viewing s.
func Of[T hwy.Lanes](s []T) Buffer {
	return Buffer{
		kind: KindFor[T](),
		ptr:  unsafe.Pointer(unsafe.SliceData(s)),
		n:    len(s),
	}
}

// Int8s returns a Buffer viewing s.
func Int8s(s []int8) Buffer { return Of(s) }

// Uint8s returns a Buffer viewing s.
func Uint8s(s []uint8) Buffer { return Of(s) }

// Int16s returns a Buffer viewing s.
func Int16s(s []int16) Buffer { return Of(s) }

// Uint16s returns a Buffer viewing s.
func Uint16s(s []uint16) Buffer { return Of(s) }

// Int32s returns a Buffer viewing s.
func Int32s(s []int32) Buffer { return Of(s) }

// Uint32s returns a Buffer viewing s.
func Uint32s(s []uint32) Buffer { return Of(s) }

// Float32s returns a Buffer viewing s.
func Float32s(s []float32) Buffer { return Of(s) }

// Float64s returns a Buffer viewing s.
func Float64s(s []float64) Buffer { return Of(s) }

// BufferOf returns a Buffer viewing the numeric slice held in v.
func BufferOf(v any) (Buffer, error) {
	k, err := KindOf(v)
	if err != nil {
		return Buffer{}, err
	}
	rv := reflect.ValueOf(v)
	return Buffer{kind: k, ptr: rv.UnsafePointer(), n: rv.Len()}, nil
}

// FromBytes returns a Buffer of kind k viewing the native-endian elements
// stored in b. len(b) must be a multiple of the element size and b must be
// aligned to it.
func FromBytes(k Kind, b []byte) (Buffer, error) {
	if !k.Valid() {
		return Buffer{}, errors.Wrapf(ErrUnsupportedKind, "kind %d", k)
	}
	size := k.Size()
	if len(b)%size != 0 {
		return Buffer{}, errors.Wrapf(ErrOutOfRange,
			"%d bytes do not hold whole %s elements", len(b), k)
	}
	ptr := unsafe.Pointer(unsafe.SliceData(b))
	if uintptr(ptr)%uintptr(size) != 0 {
		return Buffer{}, errors.Wrapf(ErrMisaligned, "%s elements at %p", k, ptr)
	}
	return Buffer{kind: k, ptr: ptr, n: len(b) / size}, nil
}

// Kind returns the element kind.
func (b Buffer) Kind() Kind { return b.kind }

// Len returns the element count.
func (b Buffer) Len() int { return b.n }

// ByteLen returns the size of the viewed memory in bytes.
func (b Buffer) ByteLen() int { return b.n * b.kind.Size() }

// Bytes returns the viewed memory as raw bytes.
func (b Buffer) Bytes() []byte {
	return rawBytes(b.ptr, b.ByteLen())
}

// Slice returns the sub-buffer of elements [i, j). It panics if the bounds
// are invalid, like slicing a Go slice.
func (b Buffer) Slice(i, j int) Buffer {
	if i < 0 || j < i || j > b.n {
		panic(errors.AssertionFailedf("typedarray: slice bounds [%d:%d] with length %d", i, j, b.n))
	}
	return Buffer{kind: b.kind, ptr: b.elem(i), n: j - i}
}

// At returns element i converted exactly to float64. Every supported kind is
// exactly representable as a float64, so At loses no information. It panics
// if i is out of range.
func (b Buffer) At(i int) float64 {
	if i < 0 || i >= b.n {
		panic(errors.AssertionFailedf("typedarray: index %d out of range [0:%d]", i, b.n))
	}
	return b.load(i)
}

// elem returns the address of element i. Callers guarantee i <= n.
func (b Buffer) elem(i int) unsafe.Pointer {
	if b.ptr == nil {
		return nil
	}
	return unsafe.Add(b.ptr, i*b.kind.Size())
}

// load reads element i without bounds checks.
func (b Buffer) load(i int) float64 {
	p := b.elem(i)
	switch b.kind {
	case Int8:
		return float64(*(*int8)(p))
	case Uint8:
		return float64(*(*uint8)(p))
	case Int16:
		return float64(*(*int16)(p))
	case Uint16:
		return float64(*(*uint16)(p))
	case Int32:
		return float64(*(*int32)(p))
	case Uint32:
		return float64(*(*uint32)(p))
	case Float32:
		return float64(*(*float32)(p))
	default:
		return *(*float64)(p)
	}
}

// store writes x to element i using the destination coercion rule, without
// bounds checks.
func (b Buffer) store(i int, x float64) {
	p := b.elem(i)
	switch b.kind {
	case Int8:
		*(*int8)(p) = ToInt8(x)
	case Uint8:
		*(*uint8)(p) = ToUint8(x)
	case Int16:
		*(*int16)(p) = ToInt16(x)
	case Uint16:
		*(*uint16)(p) = ToUint16(x)
	case Int32:
		*(*int32)(p) = ToInt32(x)
	case Uint32:
		*(*uint32)(p) = ToUint32(x)
	case Float32:
		*(*float32)(p) = ToFloat32(x)
	default:
		*(*float64)(p) = x
	}
}

func rawBytes(p unsafe.Pointer, n int) []byte {
	if p == nil || n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(p), n)
}
