// Copyright 2026 The benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package summary builds the per-page summary table of a comparison
// and renders it as text or HTML.
package summary

import (
	"fmt"
	"image/color"
	"io"
	"strconv"

	"github.com/tracerperf/benchplot/internal/texttab"
	"github.com/tracerperf/benchplot/overhead"
	"github.com/tracerperf/benchplot/unit"
)

// A RowKind selects how a row is styled.
type RowKind int

const (
	Header  RowKind = iota // filled, bold white text
	Data                   // plain
	Average                // lightly filled, bold text
)

func (k RowKind) String() string {
	switch k {
	case Header:
		return "header"
	case Data:
		return "data"
	case Average:
		return "average"
	}
	return "RowKind(" + strconv.Itoa(int(k)) + ")"
}

// Fill returns the background of rows of kind k, or nil for none.
func (k RowKind) Fill() color.Color {
	switch k {
	case Header:
		return HeaderFill
	case Average:
		return AverageFill
	}
	return nil
}

// Bold reports whether rows of kind k use bold text.
func (k RowKind) Bold() bool {
	return k != Data
}

// Text returns the text color of rows of kind k.
func (k RowKind) Text() color.Color {
	if k == Header {
		return color.White
	}
	return color.Black
}

var (
	HeaderFill  = color.RGBA{R: 0x4c, G: 0xaf, B: 0x50, A: 0xff} // #4CAF50
	AverageFill = color.RGBA{R: 0xe3, G: 0xf2, B: 0xfd, A: 0xff} // #E3F2FD
)

// Headers are the column headers of every summary table.
var Headers = []string{
	"RPS",
	"CPU Usage (avg)",
	"Confidence Interval",
	"Overhead (%)",
	"Mem Usage (avg)",
	"Confidence Interval",
	"Overhead (MB)",
	"Lost Events",
}

// A Row is one formatted table row.
type Row struct {
	Kind  RowKind
	Cells []string
}

// A Table is the summary of one comparison: a header row, one row per
// load level and an average row.
type Table struct {
	Title string
	Rows  []Row
}

// New returns the summary table of c.
func New(title string, c *overhead.Comparison) *Table {
	t := &Table{Title: title}
	t.Rows = append(t.Rows, Row{Header, append([]string(nil), Headers...)})
	for _, l := range c.Levels {
		t.Rows = append(t.Rows, Row{Data, cells(strconv.Itoa(l.RPS), &l)})
	}
	t.Rows = append(t.Rows, Row{Average, cells("Average", &c.Mean)})
	return t
}

func cells(first string, l *overhead.Level) []string {
	return []string{
		first,
		unit.Percent.Format(l.CPU),
		unit.PercentCI.Format(l.CPUCI),
		unit.Overhead.Format(l.CPUOverhead),
		unit.MB.Format(l.Mem),
		unit.MBCI.Format(l.MemCI),
		unit.MB.Format(l.MemOverhead),
		unit.Count.Format(l.Lost),
	}
}

// Format writes an aligned text rendering of t to w, preceded by its
// title.
func (t *Table) Format(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s\n\n", t.Title); err != nil {
		return err
	}
	var tab texttab.Table
	for i, r := range t.Rows {
		tab.Row()
		for j, c := range r.Cells {
			if j == 0 {
				tab.Cell(c)
			} else {
				tab.Cell(c, texttab.LeftMargin("  "))
			}
		}
		if r.Kind == Header || i+1 < len(t.Rows) && t.Rows[i+1].Kind == Average {
			tab.Rule()
		}
	}
	for col := 1; col < len(Headers); col++ {
		tab.SetAlign(col, texttab.Right)
	}
	return tab.Format(w)
}
