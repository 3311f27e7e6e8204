/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package table prints rolling inputs and outputs side by side.
package table

import (
	"bytes"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// NullText is printed for null cells.
const NullText = "null"

// FprintColumns writes columns as an ASCII table with one row per position,
// followed by a row count. Columns may differ in length; missing cells are
// left blank and nil cells print as NullText.
func FprintColumns(w io.Writer, names []string, columns ...[]interface{}) error {
	rows := 0
	for _, col := range columns {
		rows = max(rows, len(col))
	}

	var buf bytes.Buffer
	tw := tablewriter.NewWriter(&buf)
	tw.SetHeader(names)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	for r := 0; r < rows; r++ {
		line := make([]string, len(names))
		for i := range names {
			if i < len(columns) && r < len(columns[i]) {
				line[i] = cell(columns[i][r])
			}
		}
		tw.Append(line)
	}
	tw.Render()
	fmt.Fprintf(&buf, "(%d rows)\n", rows)

	_, err := w.Write(buf.Bytes())
	return err
}

func cell(v interface{}) string {
	if v == nil {
		return NullText
	}
	return fmt.Sprint(v)
}
