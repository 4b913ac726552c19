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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchScalar, "scalar"},
		{DispatchSSE2, "sse2"},
		{DispatchAVX2, "avx2"},
		{DispatchAVX512, "avx512"},
		{DispatchNEON, "neon"},
		{DispatchLevel(99), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.level.String())
	}
}

func TestCurrentLevel(t *testing.T) {
	assert.Contains(t, []int{16, 32, 64}, CurrentWidth())
	assert.Equal(t, CurrentLevel().String(), CurrentName())
	if NoSimdEnv() {
		assert.Equal(t, DispatchScalar, CurrentLevel())
	}
}

func TestMaxLanes(t *testing.T) {
	w := CurrentWidth()
	assert.Equal(t, w, MaxLanes[int8]())
	assert.Equal(t, w, MaxLanes[uint8]())
	assert.Equal(t, w/2, MaxLanes[int16]())
	assert.Equal(t, w/4, MaxLanes[float32]())
	assert.Equal(t, w/4, MaxLanes[uint32]())
	assert.Equal(t, w/8, MaxLanes[float64]())
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Run(tt.val, func(t *testing.T) {
			t.Setenv("HWY_NO_SIMD", tt.val)
			assert.Equal(t, tt.want, NoSimdEnv())
		})
	}
}
