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
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

// boundaryValues are source candidates: every kind's min/max and their
// neighbours, signed zero, NaN, infinities, fractions near integers and
// magnitudes past every integer range.
func boundaryValues() []float64 {
	vals := []float64{
		0, math.Copysign(0, -1), 1, -1, 1.1, 1.9, -1.1, -1.9, 0.5, -0.5,
		math.NaN(), math.Inf(1), math.Inf(-1),
		math.MaxInt8, math.MinInt8, math.MaxUint8,
		math.MaxInt16, math.MinInt16, math.MaxUint16,
		math.MaxInt32, math.MinInt32, math.MaxUint32,
		1 << 31, 1 << 32, 1<<32 + 1, 1 << 53, 1<<53 + 2,
		0x1p63, -0x1p63, 0x1p64, -0x1p64, 1e20, -1e20, 1e300, -1e300,
		math.MaxFloat32, -math.MaxFloat32, math.MaxFloat64, -math.MaxFloat64,
		math.SmallestNonzeroFloat64, math.SmallestNonzeroFloat32,
		16777217, -16777217, 2147483647.5, -2147483648.5, 4294967295.9,
		-127, 65536, 65537, 262143.7, -262143.7,
	}
	for _, edge := range []float64{
		math.MaxInt8, math.MinInt8, math.MaxUint8,
		math.MaxInt16, math.MinInt16, math.MaxUint16,
		math.MaxInt32, math.MinInt32, math.MaxUint32,
	} {
		vals = append(vals, edge-1, edge+1)
	}
	return vals
}

// boundaryBuffer stores every boundary value into a new buffer of kind k
// using the assignment rule of k.
func boundaryBuffer(k Kind) (Buffer, []byte) {
	vals := boundaryValues()
	raw := alignedBytes(len(vals) * k.Size())
	b, err := FromBytes(k, raw)
	if err != nil {
		panic(err)
	}
	for i, v := range vals {
		b.store(i, v)
	}
	return b, raw
}

// randomBuffer returns a buffer of kind k and length n filled with random
// bytes, so integer kinds see every bit pattern and float kinds see NaNs,
// infinities and subnormals.
func randomBuffer(r *rand.Rand, k Kind, n int) Buffer {
	raw := alignedBytes(n * k.Size())
	for i := range raw {
		raw[i] = byte(r.Uint32())
	}
	b, err := FromBytes(k, raw)
	if err != nil {
		panic(err)
	}
	return b
}

// harnessBuffer builds the usual conversion harness input: values uniformly
// in (-262144, 262144) with element 0 set to -127.
func harnessBuffer(r *rand.Rand, k Kind, n int) Buffer {
	b, err := FromBytes(k, alignedBytes(n*k.Size()))
	if err != nil {
		panic(err)
	}
	for i := range n {
		v := r.Float64() * 262144
		if r.IntN(2) == 0 {
			v = -v
		}
		b.store(i, v)
	}
	if n > 0 {
		b.store(0, -127)
	}
	return b
}

// alignedBytes returns n zero bytes aligned for any element kind.
func alignedBytes(n int) []byte {
	mem := make([]float64, (n+7)/8)
	return Float64s(mem).Bytes()[:n]
}

func newBuffer(k Kind, n int) Buffer {
	b, err := FromBytes(k, alignedBytes(n*k.Size()))
	if err != nil {
		panic(err)
	}
	return b
}

// requireSameElements compares two buffers of the same kind element by
// element. Floats compare by bits, except that any two NaNs are equal.
func requireSameElements(t *testing.T, want, got Buffer, msgAndArgs ...any) {
	t.Helper()
	require.Equal(t, want.Kind(), got.Kind())
	require.Equal(t, want.Len(), got.Len())
	for i := 0; i < want.Len(); i++ {
		w, g := want.load(i), got.load(i)
		if math.IsNaN(w) && math.IsNaN(g) {
			continue
		}
		if math.Float64bits(w) != math.Float64bits(g) {
			require.Failf(t, "element mismatch",
				"element %d: want %v got %v %v", i, w, g, msgAndArgs)
		}
	}
}

func nonIdentityPairs() []Pair {
	var pairs []Pair
	for _, s := range Kinds {
		for _, d := range Kinds {
			if s != d {
				pairs = append(pairs, Pair{Src: s, Dst: d})
			}
		}
	}
	return pairs
}
