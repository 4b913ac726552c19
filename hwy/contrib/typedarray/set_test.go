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

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetScenario(t *testing.T) {
	src := []int32{-127, 0, 65536, 65537, -1}
	dst := make([]uint16, 5)
	require.NoError(t, SetSlice(dst, src, 0))
	if diff := cmp.Diff([]uint16{65409, 0, 0, 1, 65535}, dst); diff != "" {
		t.Errorf("int32 -> uint16 mismatch (-want +got):\n%s", diff)
	}
}

func TestSetNarrowingWraparound(t *testing.T) {
	src := []int32{1 << 16, 1<<16 + 1}
	i16 := make([]int16, 2)
	u16 := make([]uint16, 2)
	require.NoError(t, SetSlice(i16, src, 0))
	require.NoError(t, SetSlice(u16, src, 0))
	assert.Equal(t, []int16{0, 1}, i16)
	assert.Equal(t, []uint16{0, 1}, u16)

	u8 := make([]uint8, 1)
	require.NoError(t, SetSlice(u8, []int32{-1}, 0))
	assert.Equal(t, []uint8{255}, u8)
}

func TestSetFloatTruncation(t *testing.T) {
	for _, src := range []any{
		[]float32{1.9, -1.9, float32(math.NaN()), float32(math.Inf(1)), float32(math.Inf(-1))},
		[]float64{1.9, -1.9, math.NaN(), math.Inf(1), math.Inf(-1)},
	} {
		dst := make([]int32, 5)
		require.NoError(t, SetAny(dst, src, 0))
		assert.Equal(t, []int32{1, -1, 0, 0, 0}, dst, "%T", src)
	}
}

func TestSetWideningRoundTrip(t *testing.T) {
	f := make([]float32, 1)
	require.NoError(t, SetSlice(f, []int8{-127}, 0))
	back := make([]int32, 1)
	require.NoError(t, SetSlice(back, f, 0))
	assert.Equal(t, int32(-127), back[0])
}

// TestSetMatchesReference is the equivalence property: every pair of the
// default table agrees with the reference-only table on boundary values,
// random bit patterns and harness-style values.
func TestSetMatchesReference(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 8))
	ref := NewTable(WithFallbackOnly(), WithObserver(NoopObserver{}))
	for _, p := range Default().Pairs() {
		t.Run(p.String(), func(t *testing.T) {
			for _, src := range []Buffer{
				func() Buffer { b, _ := boundaryBuffer(p.Src); return b }(),
				randomBuffer(r, p.Src, 257),
				harnessBuffer(r, p.Src, 64),
			} {
				want := newBuffer(p.Dst, src.Len())
				got := newBuffer(p.Dst, src.Len())
				require.NoError(t, ref.Set(want, src, 0))
				require.NoError(t, Set(got, src, 0))
				requireSameElements(t, want, got)
			}
		})
	}
}

func TestSetIdentity(t *testing.T) {
	r := rand.New(rand.NewPCG(9, 10))
	for _, k := range Kinds {
		src := randomBuffer(r, k, 100)
		dst := newBuffer(k, 100)
		require.NoError(t, Set(dst, src, 0))
		assert.Equal(t, src.Bytes(), dst.Bytes(), k.String())
	}
}

func TestSetIdentityOverlap(t *testing.T) {
	buf := []int16{0, 1, 2, 3, 4, 5, 6, 7}
	b := Int16s(buf)
	require.NoError(t, Set(b, b.Slice(0, 5), 2))
	assert.Equal(t, []int16{0, 1, 0, 1, 2, 3, 4, 7}, buf)

	buf = []int16{0, 1, 2, 3, 4, 5, 6, 7}
	b = Int16s(buf)
	require.NoError(t, Set(b.Slice(0, 6), b.Slice(2, 8), 0))
	assert.Equal(t, []int16{2, 3, 4, 5, 6, 7, 6, 7}, buf)
}

func TestSetOffset(t *testing.T) {
	r := rand.New(rand.NewPCG(11, 12))
	const sentinel = 0x5A
	for _, p := range Default().Pairs() {
		for _, off := range []int{0, 1, 3, 17} {
			src := randomBuffer(r, p.Src, 23)
			dst := newBuffer(p.Dst, off+src.Len()+5)
			raw := dst.Bytes()
			for i := range raw {
				raw[i] = sentinel
			}
			require.NoError(t, Set(dst, src, off))

			size := p.Dst.Size()
			for i, c := range raw[:off*size] {
				require.Equal(t, byte(sentinel), c, "%s off=%d: byte %d before range written", p, off, i)
			}
			for i, c := range raw[(off+src.Len())*size:] {
				require.Equal(t, byte(sentinel), c, "%s off=%d: byte %d after range written", p, off, i)
			}
			want := newBuffer(p.Dst, src.Len())
			Reference(want, src, 0)
			requireSameElements(t, want, dst.Slice(off, off+src.Len()), "%s off=%d", p, off)
		}
	}
}

func TestSetErrors(t *testing.T) {
	src := Int32s(make([]int32, 4))
	dst := Float32s(make([]float32, 6))

	tests := []struct {
		name string
		dst  Buffer
		src  Buffer
		off  int
		want error
	}{
		{"fits exactly", dst, src, 2, nil},
		{"empty source at end", dst, Int32s(nil), 6, nil},
		{"overflow", dst, src, 3, ErrOutOfRange},
		{"negative offset", dst, src, -1, ErrOutOfRange},
		{"offset past end", dst, Int32s(nil), 7, ErrOutOfRange},
		{"source longer than destination", src, dst, 0, ErrOutOfRange},
		{"zero destination", Buffer{}, src, 0, ErrUnsupportedKind},
		{"zero source", dst, Buffer{}, 0, ErrUnsupportedKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Set(tt.dst, tt.src, tt.off)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestSetErrorWritesNothing(t *testing.T) {
	dst := []uint8{1, 2, 3}
	err := SetSlice(dst, []float64{9, 9, 9}, 1)
	require.True(t, errors.Is(err, ErrOutOfRange))
	assert.Equal(t, []uint8{1, 2, 3}, dst)
}

func TestSetAny(t *testing.T) {
	type celsius float32
	dst := make([]celsius, 3)
	require.NoError(t, SetAny(dst, []uint8{1, 2, 255}, 0))
	assert.Equal(t, []celsius{1, 2, 255}, dst)

	for _, bad := range []any{[]int{1}, []any{1}, []int64{1}, "abc", nil, [2]int8{}} {
		err := SetAny(dst, bad, 0)
		assert.True(t, errors.Is(err, ErrUnsupportedKind), "%T: %v", bad, err)
		err = SetAny(bad, []uint8{1}, 0)
		assert.True(t, errors.Is(err, ErrUnsupportedKind), "%T: %v", bad, err)
	}
}

func TestSetUncheckedDoesNotAllocate(t *testing.T) {
	src := Float64s(make([]float64, 1024))
	for _, p := range []Pair{{Float64, Float32}, {Float64, Int8}, {Int32, Uint32}, {Float64, Float64}} {
		s := newBuffer(p.Src, 1024)
		if p.Src == Float64 {
			s = src
		}
		d := newBuffer(p.Dst, 1024)
		allocs := testing.AllocsPerRun(100, func() {
			SetUnchecked(d, s, 0)
		})
		assert.Zero(t, allocs, p.String())
	}
}

func BenchmarkSet(b *testing.B) {
	const n = 1 << 14
	r := rand.New(rand.NewPCG(13, 14))
	ref := NewTable(WithFallbackOnly(), WithObserver(NoopObserver{}))
	for _, p := range []Pair{{Float32, Float64}, {Float64, Float32}, {Float32, Int32}, {Int32, Float32}, {Int8, Int32}, {Uint8, Uint32}, {Float64, Uint8}} {
		src := harnessBuffer(r, p.Src, n)
		dst := newBuffer(p.Dst, n)
		b.Run(p.String()+"/table", func(b *testing.B) {
			b.SetBytes(int64(src.ByteLen()))
			for i := 0; i < b.N; i++ {
				SetUnchecked(dst, src, 0)
			}
		})
		b.Run(p.String()+"/reference", func(b *testing.B) {
			b.SetBytes(int64(src.ByteLen()))
			for i := 0; i < b.N; i++ {
				ref.SetUnchecked(dst, src, 0)
			}
		})
	}
}
