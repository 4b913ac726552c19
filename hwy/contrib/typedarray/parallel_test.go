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
	"math/rand/v2"
	"testing"

	"github.com/ajroetker/go-tacvt/hwy/contrib/workerpool"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetParallelMatchesSet(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	r := rand.New(rand.NewPCG(18, 19))
	n := ParallelThreshold + 37
	for _, p := range []Pair{{Float64, Float32}, {Float32, Int16}, {Int32, Uint16}, {Uint8, Float64}, {Int8, Uint8}, {Int16, Int16}} {
		t.Run(p.String(), func(t *testing.T) {
			src := randomBuffer(r, p.Src, n)
			want := newBuffer(p.Dst, n+3)
			got := newBuffer(p.Dst, n+3)
			require.NoError(t, Set(want, src, 3))
			require.NoError(t, SetParallel(pool, got, src, 3))
			requireSameElements(t, want, got)
		})
	}
}

func TestSetParallelSmallAndNilPool(t *testing.T) {
	src := []float64{1.5, -2.5, 70000}
	dst := make([]int16, 3)
	require.NoError(t, SetParallel(nil, Int16s(dst), Float64s(src), 0))
	assert.Equal(t, []int16{1, -2, 4464}, dst)

	pool := workerpool.New(2)
	defer pool.Close()
	dst = make([]int16, 3)
	require.NoError(t, SetParallel(pool, Int16s(dst), Float64s(src), 0))
	assert.Equal(t, []int16{1, -2, 4464}, dst)
}

func TestSetParallelValidates(t *testing.T) {
	pool := workerpool.New(2)
	defer pool.Close()

	big := make([]float32, ParallelThreshold)
	dst := make([]float64, ParallelThreshold)
	dst[0] = 42
	err := SetParallel(pool, Float64s(dst), Float32s(big), 1)
	assert.True(t, errors.Is(err, ErrOutOfRange))
	assert.Equal(t, float64(42), dst[0])
}
