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

// Command tacvt inspects and exercises the typed array conversion engine.
//
// Usage:
//
//	tacvt info                                  # dispatch level and lanes per kind
//	tacvt table [--format tsv]                  # route of every conversion pair
//	tacvt check [--size 64] [--rounds 4]        # compare fast routes with the reference path
//	tacvt convert --from i32 --to u16 -- -127 0 65536 65537 -1
//
// Setting TACVT_FALLBACK=all (or a comma separated list of pairs such as
// Int32Array_Uint16Array) routes those pairs through the reference path in
// the default table. HWY_NO_SIMD=1 forces scalar block sizes.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

type cliContext struct {
	verbose bool
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	ctx := &cliContext{}
	root := &cobra.Command{
		Use:           "tacvt",
		Short:         "typed array conversion tool",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if ctx.verbose {
				level = slog.LevelDebug
			}
			ctx.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			}))
		},
	}
	root.PersistentFlags().BoolVarP(&ctx.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(
		newInfoCmd(ctx),
		newTableCmd(ctx),
		newCheckCmd(ctx),
		newConvertCmd(ctx),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
