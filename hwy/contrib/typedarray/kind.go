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
	"strings"

	"github.com/ajroetker/go-tacvt/hwy"
	"github.com/cockroachdb/errors"
)

// Kind identifies the element representation of a packed numeric array.
type Kind uint8

const (
	// Invalid is the zero Kind; no buffer carries it.
	Invalid Kind = iota
	Int8
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Float32
	Float64
)

// NumKinds is the number of valid kinds.
const NumKinds = 8

// Kinds lists all valid kinds in declaration order.
var Kinds = [NumKinds]Kind{Int8, Uint8, Int16, Uint16, Int32, Uint32, Float32, Float64}

var kindNames = [...]string{
	Invalid: "invalid",
	Int8:    "int8",
	Uint8:   "uint8",
	Int16:   "int16",
	Uint16:  "uint16",
	Int32:   "int32",
	Uint32:  "uint32",
	Float32: "float32",
	Float64: "float64",
}

var arrayNames = [...]string{
	Invalid: "Array",
	Int8:    "Int8Array",
	Uint8:   "Uint8Array",
	Int16:   "Int16Array",
	Uint16:  "Uint16Array",
	Int32:   "Int32Array",
	Uint32:  "Uint32Array",
	Float32: "Float32Array",
	Float64: "Float64Array",
}

var kindSizes = [...]int{
	Int8:    1,
	Uint8:   1,
	Int16:   2,
	Uint16:  2,
	Int32:   4,
	Uint32:  4,
	Float32: 4,
	Float64: 8,
}

// Valid reports whether k is one of the eight supported kinds.
func (k Kind) Valid() bool {
	return k >= Int8 && k <= Float64
}

// Size returns the element size in bytes, or 0 for an invalid kind.
func (k Kind) Size() int {
	if !k.Valid() {
		return 0
	}
	return kindSizes[k]
}

// IsFloat reports whether k is a floating-point kind.
func (k Kind) IsFloat() bool {
	return k == Float32 || k == Float64
}

// IsSigned reports whether k can represent negative values.
func (k Kind) IsSigned() bool {
	switch k {
	case Int8, Int16, Int32, Float32, Float64:
		return true
	}
	return false
}

// String returns the Go element type name, e.g. "int32".
func (k Kind) String() string {
	if !k.Valid() {
		return kindNames[Invalid]
	}
	return kindNames[k]
}

// ArrayName returns the typed array constructor name, e.g. "Int32Array".
func (k Kind) ArrayName() string {
	if !k.Valid() {
		return arrayNames[Invalid]
	}
	return arrayNames[k]
}

func (k Kind) index() int {
	return int(k) - 1
}

// ParseKind resolves a kind from its Go name ("int16"), its typed array
// constructor name ("Int16Array") or its short form ("i16", "u8", "f64").
// Matching is case-insensitive.
func ParseKind(name string) (Kind, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.TrimSuffix(s, "array")
	for _, k := range Kinds {
		if s == kindNames[k] || s == shortName(k) {
			return k, nil
		}
	}
	return Invalid, errors.Wrapf(ErrUnsupportedKind, "unknown kind %q", name)
}

func shortName(k Kind) string {
	n := kindNames[k]
	switch {
	case strings.HasPrefix(n, "uint"):
		return "u" + n[len("uint"):]
	case strings.HasPrefix(n, "int"):
		return "i" + n[len("int"):]
	default:
		return "f" + n[len("float"):]
	}
}

// KindFor returns the kind whose elements have Go type T.
func KindFor[T hwy.Lanes]() Kind {
	return fromReflect(reflect.TypeFor[T]().Kind())
}

// KindOf returns the kind of the slice held in v. Slices of named types are
// resolved by their underlying element type. Anything else, including []int
// and []any, fails with ErrUnsupportedKind.
func KindOf(v any) (Kind, error) {
	t := reflect.TypeOf(v)
	if t == nil || t.Kind() != reflect.Slice {
		return Invalid, errors.Wrapf(ErrUnsupportedKind, "%T is not a numeric slice", v)
	}
	k := fromReflect(t.Elem().Kind())
	if k == Invalid {
		return Invalid, errors.Wrapf(ErrUnsupportedKind, "element type %s", t.Elem())
	}
	return k, nil
}

func fromReflect(k reflect.Kind) Kind {
	switch k {
	case reflect.Int8:
		return Int8
	case reflect.Uint8:
		return Uint8
	case reflect.Int16:
		return Int16
	case reflect.Uint16:
		return Uint16
	case reflect.Int32:
		return Int32
	case reflect.Uint32:
		return Uint32
	case reflect.Float32:
		return Float32
	case reflect.Float64:
		return Float64
	default:
		return Invalid
	}
}
