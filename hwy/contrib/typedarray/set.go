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

import "github.com/ajroetker/go-tacvt/hwy"

// Set converts every element of src into dst, writing dst[off : off+src.Len()]
// and nothing else, using the default table. It fails with ErrUnsupportedKind
// or ErrOutOfRange before touching memory; otherwise it cannot fail.
//
// src and dst may share memory only when they have the same kind.
func Set(dst, src Buffer, off int) error {
	return defaultTable.Set(dst, src, off)
}

// SetUnchecked is Set without validation, using the default table.
func SetUnchecked(dst, src Buffer, off int) {
	defaultTable.SetUnchecked(dst, src, off)
}

// SetSlice converts src into dst starting at dst[off] using the default
// table.
func SetSlice[D, S hwy.Lanes](dst []D, src []S, off int) error {
	return defaultTable.Set(Of(dst), Of(src), off)
}

// SetAny converts between two numeric slices held in interfaces, e.g. when
// the element types are only known at run time. Values that are not slices
// of a supported kind fail with ErrUnsupportedKind.
func SetAny(dst, src any, off int) error {
	d, err := BufferOf(dst)
	if err != nil {
		return err
	}
	s, err := BufferOf(src)
	if err != nil {
		return err
	}
	return defaultTable.Set(d, s, off)
}

// Set validates the arguments and converts src into dst at off.
func (t *Table) Set(dst, src Buffer, off int) error {
	if err := validate(dst, src, off); err != nil {
		return err
	}
	t.SetUnchecked(dst, src, off)
	return nil
}

// SetUnchecked converts src into dst at off without any validation. Both
// kinds must be valid and off+src.Len() must not exceed dst.Len(); violating
// this corrupts memory. It does not allocate on the copy, reinterpret and
// kernel routes.
func (t *Table) SetUnchecked(dst, src Buffer, off int) {
	n := src.n
	if n == 0 {
		return
	}
	out := dst.elem(off)
	if src.kind == dst.kind {
		copyRaw(out, src.ptr, n*src.kind.Size())
		return
	}
	e := t.entries[src.kind.index()][dst.kind.index()]
	switch e.Route {
	case RouteReinterpret:
		copyRaw(out, src.ptr, n*src.kind.Size())
	case RouteKernel:
		kernelSpecs[e.Kernel].fn(out, src.ptr, n)
	default:
		t.observer.FallbackInvoked(Pair{Src: src.kind, Dst: dst.kind}, n)
		Reference(dst, src, off)
	}
}
