// Copyright 2026 The benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package summary

import (
	"encoding/csv"
	"io"
)

// FormatCSV writes tables to w in CSV (comma-separated values) form.
// Each table starts with a one-cell row holding its title, and tables
// are separated by an empty row. Cells are written as formatted in
// the table.
func FormatCSV(w io.Writer, tables []*Table) error {
	o := csv.NewWriter(w)
	for i, t := range tables {
		if i > 0 {
			o.Write([]string{""})
		}
		o.Write([]string{t.Title})
		for _, r := range t.Rows {
			o.Write(r.Cells)
		}
	}
	o.Flush()
	return o.Error()
}
