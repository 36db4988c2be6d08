// Copyright 2026 The benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report composes comparison pages and collects them into a
// paginated PDF document.
package report

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/tracerperf/benchplot/chart"
	"github.com/tracerperf/benchplot/overhead"
	"github.com/tracerperf/benchplot/summary"
)

// Page size.
const (
	Width  = 16 * vg.Inch
	Height = 12 * vg.Inch
)

// Relative heights of the page bands, top to bottom.
const (
	titleBand  = 0.08
	chartBand  = 1
	tableBand  = 0.6
	bottomBand = 0.05
)

const (
	margin     = 0.5 * vg.Inch
	chartGap   = 0.6 * vg.Inch
	titleSize  = 16
	tableSize  = 9
	rowHeight  = 1.5 * 1.6 * tableSize // points
	cellBorder = 0.5                   // points
)

// TitlePrefix starts every page title.
const TitlePrefix = "Performance Results: "

// A Page is one input file's charts and summary table.
type Page struct {
	Title  string
	Charts [3]*plot.Plot // CPU, memory, lost events
	Table  *summary.Table
}

// NewPage builds the page for comparison c.
func NewPage(title string, c *overhead.Comparison) (*Page, error) {
	p := &Page{Title: title, Table: summary.New(title, c)}
	for i, mk := range []func(*overhead.Comparison) (*plot.Plot, error){
		chart.CPU, chart.Memory, chart.Lost,
	} {
		pl, err := mk(c)
		if err != nil {
			return nil, err
		}
		p.Charts[i] = pl
	}
	return p, nil
}

// Draw draws p onto c.
func (p *Page) Draw(c draw.Canvas) {
	c = draw.Crop(c, margin, -margin, margin/2, -margin/2)

	unit := (c.Max.Y - c.Min.Y) / (titleBand + chartBand + tableBand + bottomBand)
	top := c.Max.Y
	band := func(ratio float64) draw.Canvas {
		h := vg.Length(ratio) * unit
		b := c
		b.Min.Y, b.Max.Y = top-h, top
		top -= h
		return b
	}
	titleC := band(titleBand)
	chartC := band(chartBand)
	tableC := band(tableBand)

	sty := textStyle(titleSize, true, color.Black)
	titleC.FillText(sty, titleC.Center(), TitlePrefix+p.Title)

	tiles := draw.Tiles{Rows: 1, Cols: len(p.Charts), PadX: chartGap, PadBottom: chartGap / 2}
	canvases := plot.Align([][]*plot.Plot{p.Charts[:]}, tiles, chartC)
	for i, pl := range p.Charts {
		pl.Draw(canvases[0][i])
	}

	drawTable(tableC, p.Table)
}

// drawTable draws t centered in c, with equal-width columns spanning c.
func drawTable(c draw.Canvas, t *summary.Table) {
	if len(t.Rows) == 0 {
		return
	}
	ncol := len(t.Rows[0].Cells)
	colW := (c.Max.X - c.Min.X) / vg.Length(ncol)
	rowH := vg.Points(rowHeight)
	if fit := (c.Max.Y - c.Min.Y) / vg.Length(len(t.Rows)); rowH > fit {
		rowH = fit
	}
	y := c.Center().Y + rowH*vg.Length(len(t.Rows))/2

	border := draw.LineStyle{Color: color.Black, Width: vg.Points(cellBorder)}
	for _, r := range t.Rows {
		sty := textStyle(tableSize, r.Kind.Bold(), r.Kind.Text())
		fill := r.Kind.Fill()
		for j, cell := range r.Cells {
			x := c.Min.X + vg.Length(j)*colW
			box := []vg.Point{
				{X: x, Y: y - rowH},
				{X: x, Y: y},
				{X: x + colW, Y: y},
				{X: x + colW, Y: y - rowH},
			}
			if fill != nil {
				c.FillPolygon(fill, box)
			}
			c.StrokeLines(border, append(box, box[0]))
			c.FillText(sty, vg.Point{X: x + colW/2, Y: y - rowH/2}, cell)
		}
		y -= rowH
	}
}

func textStyle(size float64, bold bool, clr color.Color) text.Style {
	f := font.From(plot.DefaultFont, vg.Points(size))
	if bold {
		f = chart.BoldFont(vg.Points(size))
	}
	return text.Style{
		Color:   clr,
		Font:    f,
		XAlign:  draw.XCenter,
		YAlign:  draw.YCenter,
		Handler: plot.DefaultTextHandler,
	}
}
