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

package main

import (
	"bytes"
	"math/rand/v2"
	"runtime"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-tacvt/hwy"
	"github.com/ajroetker/go-tacvt/hwy/contrib/typedarray"
	"github.com/ajroetker/go-tacvt/hwy/contrib/workerpool"
)

// harnessRange bounds the random magnitudes fed to every pair.
const harnessRange = 262144

type checkOptions struct {
	size     int
	rounds   int
	seed     uint64
	workers  int
	fallback []string
	format   string
}

type checkResult struct {
	pair       typedarray.Pair
	entry      typedarray.Entry
	elements   int
	mismatches int
}

func newCheckCmd(ctx *cliContext) *cobra.Command {
	opts := checkOptions{}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "compares every fast route against the reference conversion",
		Long: `
Fills a source array of every kind with random values in (-262144, 262144)
whose first element is -127, converts it to every kind through the dispatch
table and through the reference path, and compares the results bit for bit.
Exits non-zero if any pair differs.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseFormat(opts.format)
			if err != nil {
				return err
			}
			results, err := runCheck(ctx, opts)
			if err != nil {
				return err
			}
			rows := lo.Map(results, func(r checkResult, _ int) []string {
				status := "ok"
				if r.mismatches > 0 {
					status = "FAIL"
				}
				return []string{
					r.pair.String(),
					routeCell(r.entry),
					strconv.Itoa(r.elements),
					strconv.Itoa(r.mismatches),
					status,
				}
			})
			if err := printRows(cmd.OutOrStdout(), f,
				[]string{"pair", "route", "elements", "mismatches", "status"}, rows); err != nil {
				return err
			}
			failed := lo.Filter(results, func(r checkResult, _ int) bool { return r.mismatches > 0 })
			if len(failed) > 0 {
				return errors.Newf("%d of %d pairs differ from the reference path", len(failed), len(results))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&opts.size, "size", 64, "elements per array")
	cmd.Flags().IntVar(&opts.rounds, "rounds", 4, "random arrays per pair")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 1, "random seed")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "convert through a worker pool of this size (0 disables)")
	cmd.Flags().StringSliceVar(&opts.fallback, "fallback", nil, "pairs to route through the reference path, e.g. Int32Array_Uint16Array")
	cmd.Flags().StringVar(&opts.format, "format", string(formatPretty), "output format (pretty, tsv)")
	return cmd
}

func runCheck(ctx *cliContext, opts checkOptions) ([]checkResult, error) {
	if opts.size <= 0 {
		return nil, errors.Newf("--size must be positive, got %d", opts.size)
	}
	if opts.rounds <= 0 {
		return nil, errors.Newf("--rounds must be positive, got %d", opts.rounds)
	}

	t := typedarray.Default()
	var observer *typedarray.LogObserver
	if len(opts.fallback) > 0 {
		pairs, err := parsePairs(opts.fallback)
		if err != nil {
			return nil, err
		}
		observer = typedarray.NewLogObserver(ctx.logger)
		t = typedarray.NewTable(typedarray.WithFallback(pairs...), typedarray.WithObserver(observer))
	}

	var pool *workerpool.Pool
	if opts.workers > 0 {
		pool = workerpool.New(opts.workers)
		defer pool.Close()
	}

	pairs := t.Pairs()
	results := make([]checkResult, len(pairs))
	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, p := range pairs {
		g.Go(func() error {
			r, err := checkPair(ctx, t, pool, p, opts, opts.seed+uint64(i))
			results[i] = r
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if observer != nil {
		for p, st := range observer.Counts() {
			ctx.logger.Debug("fallback", "pair", p.String(), "calls", st.Calls, "elements", st.Elements)
		}
	}
	return results, nil
}

func checkPair(ctx *cliContext, t *typedarray.Table, pool *workerpool.Pool, p typedarray.Pair, opts checkOptions, seed uint64) (checkResult, error) {
	res := checkResult{pair: p, entry: t.Lookup(p)}
	rng := rand.New(rand.NewPCG(seed, uint64(p.Src)<<8|uint64(p.Dst)))

	vals := make([]float64, opts.size)
	src := makeBuffer(p.Src, opts.size)
	fast := makeBuffer(p.Dst, opts.size)
	ref := makeBuffer(p.Dst, opts.size)
	size := p.Dst.Size()

	for range opts.rounds {
		for i := range vals {
			sign := 1.0
			if rng.IntN(2) == 0 {
				sign = -1
			}
			vals[i] = rng.Float64() * harnessRange * sign
		}
		vals[0] = -127
		typedarray.Reference(src, typedarray.Float64s(vals), 0)

		var err error
		if pool != nil {
			err = t.SetParallel(pool, fast, src, 0)
		} else {
			err = t.Set(fast, src, 0)
		}
		if err != nil {
			return res, errors.Wrapf(err, "converting %s", p)
		}
		typedarray.Reference(ref, src, 0)

		got, want := fast.Bytes(), ref.Bytes()
		for i := range opts.size {
			if bytes.Equal(got[i*size:(i+1)*size], want[i*size:(i+1)*size]) {
				continue
			}
			if res.mismatches == 0 {
				ctx.logger.Debug("mismatch", "pair", p.String(), "index", i,
					"src", src.At(i), "got", fast.At(i), "want", ref.At(i))
			}
			res.mismatches++
		}
		res.elements += opts.size
	}
	return res, nil
}

func parsePairs(names []string) ([]typedarray.Pair, error) {
	pairs := make([]typedarray.Pair, 0, len(names))
	for _, name := range names {
		p, err := typedarray.ParsePair(name)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

// makeBuffer allocates n zeroed elements of kind k. The backing []float64
// keeps every kind aligned.
func makeBuffer(k typedarray.Kind, n int) typedarray.Buffer {
	mem := make([]float64, n)
	return lo.Must(typedarray.FromBytes(k, hwy.Bytes(mem)[:n*k.Size()]))
}
