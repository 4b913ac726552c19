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

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-tacvt/hwy"
	"github.com/ajroetker/go-tacvt/hwy/contrib/typedarray"
)

func newInfoCmd(ctx *cliContext) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "info",
		Short: "shows the SIMD dispatch level and lanes per element kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseFormat(format)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "SIMD Level: %s, Width: %d bytes\n", hwy.CurrentName(), hwy.CurrentWidth())
			ctx.logger.Debug("dispatch", "level", hwy.CurrentName(), "no_simd", hwy.NoSimdEnv())

			rows := lo.Map(typedarray.Kinds[:], func(k typedarray.Kind, _ int) []string {
				return []string{
					k.String(),
					k.ArrayName(),
					strconv.Itoa(k.Size()),
					strconv.Itoa(kindLanes(k)),
				}
			})
			return printRows(w, f, []string{"kind", "array", "bytes", "lanes"}, rows)
		},
	}
	cmd.Flags().StringVar(&format, "format", string(formatPretty), "output format (pretty, tsv)")
	return cmd
}

func kindLanes(k typedarray.Kind) int {
	switch k {
	case typedarray.Int8:
		return hwy.MaxLanes[int8]()
	case typedarray.Uint8:
		return hwy.MaxLanes[uint8]()
	case typedarray.Int16:
		return hwy.MaxLanes[int16]()
	case typedarray.Uint16:
		return hwy.MaxLanes[uint16]()
	case typedarray.Int32:
		return hwy.MaxLanes[int32]()
	case typedarray.Uint32:
		return hwy.MaxLanes[uint32]()
	case typedarray.Float32:
		return hwy.MaxLanes[float32]()
	default:
		return hwy.MaxLanes[float64]()
	}
}
