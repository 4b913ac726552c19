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
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-tacvt/hwy/contrib/typedarray"
)

type convertOptions struct {
	from   string
	to     string
	offset int
	length int
}

func newConvertCmd(ctx *cliContext) *cobra.Command {
	opts := convertOptions{}
	cmd := &cobra.Command{
		Use:   "convert --from KIND --to KIND [--offset N] [--len N] -- VALUES...",
		Short: "converts values between two element kinds",
		Long: `
Stores VALUES in an array of the --from kind (applying that kind's coercion),
then sets them into a zeroed array of the --to kind at --offset and prints the
destination. Kinds accept Go names (int32), array names (Int32Array) or short
forms (i32). Put -- before negative values.
`,
		Example: `  tacvt convert --from i32 --to u16 -- -127 0 65536 65537 -1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := runConvert(ctx, opts, args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().StringVar(&opts.from, "from", "float64", "source kind")
	cmd.Flags().StringVar(&opts.to, "to", "", "destination kind")
	cmd.Flags().IntVar(&opts.offset, "offset", 0, "destination offset")
	cmd.Flags().IntVar(&opts.length, "len", -1, "destination length; negative means offset+len(VALUES)")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func runConvert(ctx *cliContext, opts convertOptions, args []string) (string, error) {
	from, err := typedarray.ParseKind(opts.from)
	if err != nil {
		return "", errors.Wrap(err, "--from")
	}
	to, err := typedarray.ParseKind(opts.to)
	if err != nil {
		return "", errors.Wrap(err, "--to")
	}

	vals := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return "", errors.Wrapf(err, "value %d", i)
		}
		vals[i] = v
	}

	n := opts.length
	if n < 0 {
		n = max(opts.offset+len(vals), 0)
	}
	src := makeBuffer(from, len(vals))
	typedarray.Reference(src, typedarray.Float64s(vals), 0)
	dst := makeBuffer(to, n)

	p := typedarray.Pair{Src: from, Dst: to}
	ctx.logger.Debug("converting", "pair", p.String(), "route", typedarray.Default().Lookup(p).String(),
		"offset", opts.offset, "elements", len(vals))
	if err := typedarray.Set(dst, src, opts.offset); err != nil {
		return "", err
	}
	return formatBuffer(dst), nil
}

// formatBuffer renders b as "Uint16Array [1 2 3]".
func formatBuffer(b typedarray.Buffer) string {
	k := b.Kind()
	elems := lo.Times(b.Len(), func(i int) string {
		switch k {
		case typedarray.Float32:
			return strconv.FormatFloat(b.At(i), 'g', -1, 32)
		case typedarray.Float64:
			return strconv.FormatFloat(b.At(i), 'g', -1, 64)
		default:
			return strconv.FormatInt(int64(b.At(i)), 10)
		}
	})
	return k.ArrayName() + " [" + strings.Join(elems, " ") + "]"
}
