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
	"encoding/csv"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
)

type displayFormat string

const (
	formatPretty displayFormat = "pretty"
	formatTSV    displayFormat = "tsv"
)

func parseFormat(s string) (displayFormat, error) {
	switch f := displayFormat(s); f {
	case formatPretty, formatTSV:
		return f, nil
	default:
		return "", errors.Newf("unknown format %q (want pretty or tsv)", s)
	}
}

// printRows writes a header and rows in the given format.
func printRows(w io.Writer, format displayFormat, cols []string, rows [][]string) error {
	switch format {
	case formatTSV:
		cw := csv.NewWriter(w)
		cw.Comma = '\t'
		if err := cw.Write(cols); err != nil {
			return err
		}
		return cw.WriteAll(rows)
	default:
		table := tablewriter.NewWriter(w)
		table.SetAutoFormatHeaders(false)
		table.SetAutoWrapText(false)
		table.SetHeader(cols)
		table.AppendBulk(rows)
		table.Render()
		_, err := fmt.Fprintf(w, "(%d rows)\n", len(rows))
		return err
	}
}
