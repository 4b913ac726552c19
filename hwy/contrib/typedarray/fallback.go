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
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
)

// Reference converts every element of src into dst starting at off, one
// element at a time through the coercion rules. It is always correct and
// never fast; the kernels are validated against it. Same-kind buffers are
// copied like memmove. Preconditions are those of SetUnchecked.
func Reference(dst, src Buffer, off int) {
	if src.n == 0 {
		return
	}
	if src.kind == dst.kind {
		copyRaw(dst.elem(off), src.ptr, src.ByteLen())
		return
	}
	for i := 0; i < src.n; i++ {
		dst.store(off+i, src.load(i))
	}
}

// Observer is notified when a table converts through the reference path.
// Implementations must be safe for concurrent use and should be cheap; they
// never influence the conversion result.
type Observer interface {
	FallbackInvoked(p Pair, n int)
}

// NoopObserver discards notifications.
type NoopObserver struct{}

// FallbackInvoked does nothing.
func (NoopObserver) FallbackInvoked(Pair, int) {}

// LogObserver logs the first fallback conversion of each pair as a warning
// and counts all of them.
type LogObserver struct {
	logger *slog.Logger
	warned [NumKinds][NumKinds]sync.Once
	calls  [NumKinds][NumKinds]atomic.Int64
	elems  [NumKinds][NumKinds]atomic.Int64
}

// NewLogObserver returns a LogObserver writing to logger. A nil logger
// writes text to stderr at warn level.
func NewLogObserver(logger *slog.Logger) *LogObserver {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		}))
	}
	return &LogObserver{logger: logger}
}

// FallbackInvoked records one reference conversion of n elements.
func (o *LogObserver) FallbackInvoked(p Pair, n int) {
	if !p.Src.Valid() || !p.Dst.Valid() {
		return
	}
	s, d := p.Src.index(), p.Dst.index()
	o.calls[s][d].Add(1)
	o.elems[s][d].Add(int64(n))
	o.warned[s][d].Do(func() {
		o.logger.Warn("fast conversion not implemented, using reference path",
			"pair", p.String(),
			"elements", n,
		)
	})
}

// FallbackStats counts reference conversions of one pair.
type FallbackStats struct {
	Calls    int64
	Elements int64
}

// Stats returns the counts recorded for p.
func (o *LogObserver) Stats(p Pair) FallbackStats {
	if !p.Src.Valid() || !p.Dst.Valid() {
		return FallbackStats{}
	}
	s, d := p.Src.index(), p.Dst.index()
	return FallbackStats{
		Calls:    o.calls[s][d].Load(),
		Elements: o.elems[s][d].Load(),
	}
}

// Counts returns the stats of every pair that has fallen back at least once.
func (o *LogObserver) Counts() map[Pair]FallbackStats {
	out := make(map[Pair]FallbackStats)
	for _, s := range Kinds {
		for _, d := range Kinds {
			p := Pair{Src: s, Dst: d}
			if st := o.Stats(p); st.Calls > 0 {
				out[p] = st
			}
		}
	}
	return out
}
