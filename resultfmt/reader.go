// Copyright 2026 The benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resultfmt

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// Column names of a result table. Names are case-sensitive.
const (
	ColName  = "Name"
	ColRPS   = "rps"
	ColCPU   = "%cpu"
	ColCPUCI = "cpu_ci"
	ColMem   = "mem(MB)"
	ColMemCI = "mem_ci"
	ColLost  = "lost"
)

// Values of the Name column.
const (
	Baseline     = "baseline"
	Instrumented = "ig"
)

// Columns lists the columns every result table must have.
var Columns = []string{ColName, ColRPS, ColCPU, ColCPUCI, ColMem, ColMemCI, ColLost}

var floatCols = []string{ColCPU, ColCPUCI, ColMem, ColMemCI, ColLost}

// A SyntaxError represents a malformed line of a result file.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (s *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", s.FileName, s.Line, s.Msg)
}

// A SchemaError reports required columns missing from a file header.
type SchemaError struct {
	FileName string
	Missing  []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: missing column(s) %s", e.FileName, strings.Join(e.Missing, ", "))
}

// A Table is one parsed result file.
type Table struct {
	// FileName is the name the table was read from. It is purely
	// diagnostic.
	FileName string

	t *table.Table
}

// Read parses a result table from r. fileName is used in error
// messages.
func Read(r io.Reader, fileName string) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &SyntaxError{fileName, 1, "missing header"}
	} else if err != nil {
		return nil, csvError(fileName, err)
	}
	index := make(map[string]int, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		h = strings.TrimSpace(h)
		if _, dup := index[h]; !dup {
			index[h] = i
		}
	}
	var missing []string
	for _, col := range Columns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if missing != nil {
		return nil, &SchemaError{fileName, missing}
	}

	var (
		names  []string
		rps    []int
		floats = make([][]float64, len(floatCols))
	)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, csvError(fileName, err)
		}
		cell := func(col string) (string, int) {
			i := index[col]
			line, _ := cr.FieldPos(i)
			return strings.TrimSpace(rec[i]), line
		}

		name, _ := cell(ColName)
		names = append(names, name)

		s, line := cell(ColRPS)
		v, err := parseLevel(s)
		if err != nil {
			return nil, &SyntaxError{fileName, line, fmt.Sprintf("column %s: %v", ColRPS, err)}
		}
		rps = append(rps, v)

		for i, col := range floatCols {
			s, line := cell(col)
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, &SyntaxError{fileName, line, fmt.Sprintf("column %s: invalid number %q", col, s)}
			}
			floats[i] = append(floats[i], f)
		}
	}

	// Columns keep the order of Columns, not of the file.
	var b table.Builder
	b.Add(ColName, nonNil(names))
	b.Add(ColRPS, nonNil(rps))
	for i, col := range floatCols {
		b.Add(col, nonNil(floats[i]))
	}
	return &Table{FileName: fileName, t: b.Done()}, nil
}

func csvError(fileName string, err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &SyntaxError{fileName, pe.Line, pe.Err.Error()}
	}
	return err
}

// parseLevel parses a load level. Integral floats such as "500.0"
// are accepted because some spreadsheet exports write them. Levels
// must fit in an int32.
func parseLevel(s string) (int, error) {
	if v, err := strconv.ParseInt(s, 10, 32); err == nil {
		return int(v), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return 0, fmt.Errorf("invalid load level %q", s)
	}
	return int(f), nil
}

// nonNil makes sure an empty column still has a type.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// Len returns the number of data rows in t.
func (t *Table) Len() int {
	return t.t.Len()
}

// Labels returns the distinct values of the Name column in order of
// first appearance.
func (t *Table) Labels() []string {
	var names []string
	slice.Convert(&names, t.t.MustColumn(ColName))
	seen := make(map[string]bool)
	var labels []string
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			labels = append(labels, n)
		}
	}
	return labels
}

// A Group is the set of rows of a Table sharing one Name, ordered by
// ascending load level. Row i of every slice describes the same run.
type Group struct {
	Label string

	RPS   []int
	CPU   []float64 // percent
	CPUCI []float64 // confidence half-width, percent
	Mem   []float64 // megabytes
	MemCI []float64 // confidence half-width, megabytes
	Lost  []float64 // lost events
}

// Len returns the number of load levels in g.
func (g *Group) Len() int {
	return len(g.RPS)
}

// Group returns the rows of t whose Name is label. Rows with equal
// load levels keep their file order.
func (t *Table) Group(label string) *Group {
	g := &Group{Label: label}
	sub := table.Flatten(table.SortBy(table.FilterEq(t.t, ColName, label), ColRPS))
	if sub.Len() == 0 {
		return g
	}
	slice.Convert(&g.RPS, sub.MustColumn(ColRPS))
	for _, c := range []struct {
		col string
		dst *[]float64
	}{
		{ColCPU, &g.CPU},
		{ColCPUCI, &g.CPUCI},
		{ColMem, &g.Mem},
		{ColMemCI, &g.MemCI},
		{ColLost, &g.Lost},
	} {
		slice.Convert(c.dst, sub.MustColumn(c.col))
	}
	return g
}
