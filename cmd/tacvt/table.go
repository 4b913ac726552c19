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
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-tacvt/hwy/contrib/typedarray"
)

func newTableCmd(ctx *cliContext) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "table",
		Short: "shows the route of every source/destination pair",
		Long: `
Prints the dispatch table as a matrix with one row per source kind and one
column per destination kind. Cells read copy, reinterp, k:<kernel> or
fallback.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseFormat(format)
			if err != nil {
				return err
			}
			t := typedarray.Default()
			cols := append([]string{"src\\dst"}, lo.Map(typedarray.Kinds[:], func(k typedarray.Kind, _ int) string {
				return k.String()
			})...)
			rows := lo.Map(typedarray.Kinds[:], func(src typedarray.Kind, _ int) []string {
				row := []string{src.String()}
				for _, dst := range typedarray.Kinds {
					row = append(row, routeCell(t.Lookup(typedarray.Pair{Src: src, Dst: dst})))
				}
				return row
			})
			ctx.logger.Debug("printing dispatch table", "pairs", len(t.Pairs()))
			return printRows(cmd.OutOrStdout(), f, cols, rows)
		},
	}
	cmd.Flags().StringVar(&format, "format", string(formatPretty), "output format (pretty, tsv)")
	return cmd
}

func routeCell(e typedarray.Entry) string {
	switch e.Route {
	case typedarray.RouteCopy:
		return "copy"
	case typedarray.RouteReinterpret:
		return "reinterp"
	case typedarray.RouteKernel:
		return "k:" + e.Kernel.String()
	default:
		return "fallback"
	}
}
