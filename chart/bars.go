// Copyright 2026 The benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Bars is a bar chart whose bars are sized in category units, with
// optional symmetric error bars and a text label at the top of each
// bar. Bar i is centered on category XMin+i, shifted by Shift.
type Bars struct {
	*plotter.BarChart

	// Span and Shift are the width and center offset of each bar
	// as a fraction of the distance between categories.
	Span, Shift float64

	// Errors holds the half-width of each bar's error bar. A nil
	// Errors draws none.
	Errors     []float64
	ErrorStyle draw.LineStyle
	CapWidth   vg.Length

	// Labels holds the text drawn above each bar.
	Labels      []string
	LabelStyle  text.Style
	LabelOffset vg.Length
}

// NewBars returns Bars drawing vs with error half-widths errs, which
// may be nil.
func NewBars(vs plotter.Valuer, errs []float64, span float64) (*Bars, error) {
	// The BarChart width is replaced by Span when drawing.
	bc, err := plotter.NewBarChart(vs, 1)
	if err != nil {
		return nil, err
	}
	if errs != nil && len(errs) != bc.Len() {
		return nil, fmt.Errorf("chart: %d error bars for %d values", len(errs), bc.Len())
	}
	return &Bars{
		BarChart:   bc,
		Span:       span,
		Errors:     errs,
		ErrorStyle: draw.LineStyle{Color: color.Black, Width: vg.Points(1)},
		CapWidth:   vg.Points(10),
		LabelStyle: text.Style{
			Color:   color.Black,
			Font:    font.From(plot.DefaultFont, vg.Points(9)),
			XAlign:  draw.XCenter,
			YAlign:  draw.YBottom,
			Handler: plot.DefaultTextHandler,
		},
		LabelOffset: vg.Points(2),
	}, nil
}

// Plot implements the plot.Plotter interface.
func (b *Bars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	unit := trX(b.XMin+1) - trX(b.XMin)
	b.BarChart.Width = vg.Length(b.Span) * unit
	b.BarChart.Offset = vg.Length(b.Shift) * unit
	if b.BarChart.Width > 0 {
		b.BarChart.Plot(c, plt)
	}

	for i, v := range b.Values {
		x := trX(b.XMin + float64(i))
		if !c.ContainsX(x) {
			continue
		}
		x += b.BarChart.Offset

		if b.Errors != nil {
			lo, hi := trY(v-b.Errors[i]), trY(v+b.Errors[i])
			half := b.CapWidth / 2
			lines := c.ClipLinesY(
				[]vg.Point{{X: x, Y: lo}, {X: x, Y: hi}},
				[]vg.Point{{X: x - half, Y: lo}, {X: x + half, Y: lo}},
				[]vg.Point{{X: x - half, Y: hi}, {X: x + half, Y: hi}},
			)
			c.StrokeLines(b.ErrorStyle, lines...)
		}

		if i < len(b.Labels) {
			pt := vg.Point{X: x, Y: trY(v) + b.LabelOffset}
			if c.ContainsY(pt.Y) {
				c.FillText(b.LabelStyle, pt, b.Labels[i])
			}
		}
	}
}

// DataRange implements the plot.DataRanger interface. The X range
// leaves half a category on each side so that grouped bars fit, and
// the Y range covers the error bars.
func (b *Bars) DataRange() (xmin, xmax, ymin, ymax float64) {
	_, _, ymin, ymax = b.BarChart.DataRange()
	for i, v := range b.Values {
		if b.Errors == nil {
			break
		}
		ymin = math.Min(ymin, v-b.Errors[i])
		ymax = math.Max(ymax, v+b.Errors[i])
	}
	xmin = b.XMin - 0.5
	xmax = b.XMin + float64(len(b.Values)-1) + 0.5
	return xmin, xmax, ymin, ymax
}

// GlyphBoxes implements the plot.GlyphBoxer interface. Bars are sized
// in data units, so they need no padding.
func (b *Bars) GlyphBoxes(plt *plot.Plot) []plot.GlyphBox {
	return nil
}
