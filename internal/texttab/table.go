// Copyright 2026 The benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texttab lays out aligned plain-text tables.
package texttab

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Table does layout of text-based tables.
//
// Many of its methods return the Table so callers can easily chain
// them to build up many cells at once.
type Table struct {
	rows  []*textRow
	cols  int
	align []align // per-column default
}

type textRow struct {
	cells []textCell
	rule  bool // draw a rule below this row
}

type textCell struct {
	value      string
	leftMargin string
	alignment  align
	set        bool // alignment given explicitly
}

type CellOption func(c *textCell)

// LeftMargin sets the text printed before a cell. The default is a
// single space, except in the first column.
func LeftMargin(x string) CellOption {
	return func(c *textCell) {
		c.leftMargin = x
	}
}

var (
	Left   CellOption = func(c *textCell) { c.alignment, c.set = alignLeft, true }
	Center            = func(c *textCell) { c.alignment, c.set = alignCenter, true }
	Right             = func(c *textCell) { c.alignment, c.set = alignRight, true }
)

type align int

const (
	alignLeft align = iota
	alignCenter
	alignRight
)

func (a align) pad(s string, w int) string {
	n := w - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	switch a {
	default:
		return s + strings.Repeat(" ", n)
	case alignCenter:
		l := n / 2
		return strings.Repeat(" ", l) + s + strings.Repeat(" ", n-l)
	case alignRight:
		return strings.Repeat(" ", n) + s
	}
}

// Row starts a new row in table t.
func (t *Table) Row() *Table {
	t.rows = append(t.rows, &textRow{})
	return t
}

// Rule marks the current row to be underlined by a rule spanning the
// table.
func (t *Table) Rule() *Table {
	t.cur().rule = true
	return t
}

// Cell adds a cell at the end of the current row.
func (t *Table) Cell(value string, opts ...CellOption) *Table {
	r := t.cur()
	lMargin := " "
	if len(r.cells) == 0 {
		lMargin = ""
	}
	c := textCell{value: value, leftMargin: lMargin}
	for _, o := range opts {
		o(&c)
	}
	r.cells = append(r.cells, c)
	if len(r.cells) > t.cols {
		t.cols = len(r.cells)
	}
	return t
}

// SetAlign sets the alignment of every cell in column col that was
// added without an explicit alignment.
func (t *Table) SetAlign(col int, opt CellOption) {
	for len(t.align) < col+1 {
		t.align = append(t.align, alignLeft)
	}
	var c textCell
	opt(&c)
	t.align[col] = c.alignment
}

func (t *Table) cur() *textRow {
	if len(t.rows) == 0 {
		t.Row()
	}
	return t.rows[len(t.rows)-1]
}

// Format lays out table t and writes it to w.
func (t *Table) Format(w io.Writer) error {
	// Column widths, each including the widest left margin.
	lmargin := make([]int, t.cols)
	ws := make([]int, t.cols)
	for _, r := range t.rows {
		for i, c := range r.cells {
			lmargin[i] = max(lmargin[i], utf8.RuneCountInString(c.leftMargin))
		}
	}
	for _, r := range t.rows {
		for i, c := range r.cells {
			ws[i] = max(ws[i], utf8.RuneCountInString(c.value)+lmargin[i])
		}
	}
	total := 0
	for _, w := range ws {
		total += w
	}

	var line strings.Builder
	for _, r := range t.rows {
		line.Reset()
		for i, c := range r.cells {
			a := c.alignment
			if !c.set && i < len(t.align) {
				a = t.align[i]
			}
			fmt.Fprintf(&line, "%*s", lmargin[i], c.leftMargin)
			line.WriteString(a.pad(c.value, ws[i]-lmargin[i]))
		}
		// Don't print trailing spaces.
		if _, err := fmt.Fprintln(w, strings.TrimRight(line.String(), " ")); err != nil {
			return err
		}
		if r.rule {
			if _, err := fmt.Fprintln(w, strings.Repeat("-", total)); err != nil {
				return err
			}
		}
	}
	return nil
}
