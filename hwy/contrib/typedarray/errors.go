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

import "github.com/cockroachdb/errors"

var (
	// ErrOutOfRange is returned when destinationOffset+source length does not
	// fit in the destination, or a byte region does not hold whole elements.
	// Nothing is written when it is returned.
	ErrOutOfRange = errors.New("typedarray: out of range")

	// ErrUnsupportedKind is returned when a buffer or value does not have one
	// of the eight supported element kinds.
	ErrUnsupportedKind = errors.New("typedarray: unsupported element kind")

	// ErrMisaligned is returned by FromBytes when the byte region is not
	// aligned to the element size.
	ErrMisaligned = errors.New("typedarray: misaligned buffer")
)

// validate checks the boundary preconditions of a conversion.
func validate(dst, src Buffer, off int) error {
	if !dst.kind.Valid() {
		return errors.Wrapf(ErrUnsupportedKind, "destination kind %d", dst.kind)
	}
	if !src.kind.Valid() {
		return errors.Wrapf(ErrUnsupportedKind, "source kind %d", src.kind)
	}
	if off < 0 || off > dst.n || src.n > dst.n-off {
		return errors.Wrapf(ErrOutOfRange,
			"offset %d + source length %d exceeds destination length %d", off, src.n, dst.n)
	}
	return nil
}
