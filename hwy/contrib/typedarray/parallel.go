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
	"github.com/ajroetker/go-tacvt/hwy"
	"github.com/ajroetker/go-tacvt/hwy/contrib/workerpool"
)

// ParallelThreshold is the source length from which SetParallel splits the
// work across the pool. Shorter conversions are memory bound enough that
// handing them to workers costs more than it saves.
const ParallelThreshold = 1 << 16

// SetParallel is Set spread over pool using the default table.
func SetParallel(pool *workerpool.Pool, dst, src Buffer, off int) error {
	return defaultTable.SetParallel(pool, dst, src, off)
}

// SetParallel validates like Set, then converts contiguous chunks of src
// concurrently on pool. The result is identical to Set. Same-kind copies,
// short sources and a nil pool run on the calling goroutine.
func (t *Table) SetParallel(pool *workerpool.Pool, dst, src Buffer, off int) error {
	if err := validate(dst, src, off); err != nil {
		return err
	}
	n := src.n
	if pool == nil || n < ParallelThreshold || src.kind == dst.kind {
		t.SetUnchecked(dst, src, off)
		return nil
	}
	pool.ParallelFor(n, blockLanes(src.kind), func(start, end int) {
		t.SetUnchecked(dst, src.Slice(start, end), off+start)
	})
	return nil
}

// blockLanes is the kernel block width for source kind k, used to keep
// parallel chunks on block boundaries.
func blockLanes(k Kind) int {
	switch k {
	case Int8, Uint8:
		return hwy.MaxLanes[int8]()
	case Int16, Uint16:
		return hwy.MaxLanes[int16]()
	case Float64:
		return hwy.MaxLanes[float64]()
	default:
		return hwy.MaxLanes[int32]()
	}
}
