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
	"strings"

	"github.com/cockroachdb/errors"
)

// Pair is an ordered (source kind, destination kind) tuple, the unit of
// dispatch.
type Pair struct {
	Src, Dst Kind
}

// String renders the pair with typed array names, e.g.
// "Int32Array_Uint16Array".
func (p Pair) String() string {
	return p.Src.ArrayName() + "_" + p.Dst.ArrayName()
}

// ParsePair parses "Src_Dst" where each side is accepted by ParseKind, e.g.
// "Int32Array_Uint16Array" or "int32_uint16".
func ParsePair(s string) (Pair, error) {
	src, dst, ok := strings.Cut(strings.TrimSpace(s), "_")
	if !ok {
		return Pair{}, errors.Wrapf(ErrUnsupportedKind, "malformed pair %q", s)
	}
	sk, err := ParseKind(src)
	if err != nil {
		return Pair{}, err
	}
	dk, err := ParseKind(dst)
	if err != nil {
		return Pair{}, err
	}
	return Pair{Src: sk, Dst: dk}, nil
}

// Route is how a table entry converts its pair.
type Route uint8

const (
	// RouteFallback uses the per-element reference conversion.
	RouteFallback Route = iota
	// RouteCopy is the identity conversion: a bulk copy.
	RouteCopy
	// RouteReinterpret copies the raw bytes of same-width integers.
	RouteReinterpret
	// RouteKernel runs a specialised bulk kernel.
	RouteKernel
)

func (r Route) String() string {
	switch r {
	case RouteFallback:
		return "fallback"
	case RouteCopy:
		return "copy"
	case RouteReinterpret:
		return "reinterpret"
	case RouteKernel:
		return "kernel"
	default:
		return "unknown"
	}
}

// Entry is the dispatch decision for one pair. Kernel is KernelNone unless
// Route is RouteKernel.
type Entry struct {
	Route  Route
	Kernel KernelID
}

func (e Entry) String() string {
	if e.Route == RouteKernel {
		return "kernel(" + e.Kernel.String() + ")"
	}
	return e.Route.String()
}

// Table maps every pair to exactly one Entry. A Table is immutable once
// built and safe for concurrent use.
type Table struct {
	entries  [NumKinds][NumKinds]Entry
	observer Observer
}

type tableConfig struct {
	fallbackAll bool
	fallback    map[Pair]bool
	observer    Observer
}

// Option configures NewTable.
type Option func(*tableConfig)

// WithFallback routes the given pairs to the reference path. Identity pairs
// are always copied and ignore this option.
func WithFallback(pairs ...Pair) Option {
	return func(c *tableConfig) {
		for _, p := range pairs {
			c.fallback[p] = true
		}
	}
}

// WithFallbackOnly routes every non-identity pair to the reference path.
func WithFallbackOnly() Option {
	return func(c *tableConfig) {
		c.fallbackAll = true
	}
}

// WithObserver sets the observer notified on fallback conversions. A nil
// observer discards notifications.
func WithObserver(o Observer) Option {
	return func(c *tableConfig) {
		if o == nil {
			o = NoopObserver{}
		}
		c.observer = o
	}
}

// NewTable builds a dispatch table: identity pairs copy, same-width integer
// pairs reinterpret, registered kernels take their pairs, and anything left
// falls back to the reference conversion.
func NewTable(opts ...Option) *Table {
	cfg := tableConfig{
		fallback: make(map[Pair]bool),
		observer: defaultObserver,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &Table{observer: cfg.observer}
	for _, s := range Kinds {
		for _, d := range Kinds {
			var e Entry
			switch {
			case s == d:
				e.Route = RouteCopy
			case reinterpretable(s, d):
				e.Route = RouteReinterpret
			}
			t.entries[s.index()][d.index()] = e
		}
	}
	for id := KernelNone + 1; id < numKernels; id++ {
		for _, p := range id.Pairs() {
			t.entries[p.Src.index()][p.Dst.index()] = Entry{Route: RouteKernel, Kernel: id}
		}
	}
	for _, s := range Kinds {
		for _, d := range Kinds {
			if s != d && (cfg.fallbackAll || cfg.fallback[Pair{s, d}]) {
				t.entries[s.index()][d.index()] = Entry{Route: RouteFallback}
			}
		}
	}
	return t
}

// Lookup returns the entry for p. Invalid kinds yield a fallback entry.
func (t *Table) Lookup(p Pair) Entry {
	if !p.Src.Valid() || !p.Dst.Valid() {
		return Entry{Route: RouteFallback}
	}
	return t.entries[p.Src.index()][p.Dst.index()]
}

// Pairs returns all NumKinds*NumKinds pairs in table order.
func (t *Table) Pairs() []Pair {
	pairs := make([]Pair, 0, NumKinds*NumKinds)
	for _, s := range Kinds {
		for _, d := range Kinds {
			pairs = append(pairs, Pair{Src: s, Dst: d})
		}
	}
	return pairs
}

// Observer returns the table's fallback observer.
func (t *Table) Observer() Observer {
	return t.observer
}

var (
	defaultObserver Observer = NewLogObserver(nil)
	defaultTable             = NewTable(envOptions(os.Getenv("TACVT_FALLBACK"))...)
)

// Default returns the process-wide table used by the package-level
// functions. It is built once during package initialization.
func Default() *Table {
	return defaultTable
}

// envOptions turns a TACVT_FALLBACK value into table options. Unknown pair
// names are reported and skipped.
func envOptions(val string) []Option {
	val = strings.TrimSpace(val)
	if val == "" {
		return nil
	}
	if strings.EqualFold(val, "all") {
		return []Option{WithFallbackOnly()}
	}
	var pairs []Pair
	for _, name := range strings.Split(val, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		p, err := ParsePair(name)
		if err != nil {
			slog.Warn("ignoring TACVT_FALLBACK entry", "entry", name, "error", err)
			continue
		}
		pairs = append(pairs, p)
	}
	return []Option{WithFallback(pairs...)}
}
