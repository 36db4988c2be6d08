// Copyright 2026 The benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart builds the comparison bar charts of a report page.
//
// Every chart shares the same layout: one category per load level,
// a bold title, a legend at the top and horizontal gridlines.
package chart

import (
	"image/color"
	"strconv"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/tracerperf/benchplot/overhead"
	"github.com/tracerperf/benchplot/unit"
)

const (
	// BarWidth is the width of one bar as a fraction of the
	// distance between load levels.
	BarWidth = 0.35

	// MemPadding is the margin, in megabytes, added below and above
	// the memory values of the memory chart.
	MemPadding = 1024

	// Headroom is the fraction of the value range added above the
	// tallest bar to make room for its label.
	Headroom = 0.08
)

// Titles, axis labels and legend names.
const (
	CPUTitle         = "CPU Usage Comparison (with 95% CI)"
	MemoryTitle      = "Memory Usage Comparison (with 95% CI)"
	LostTitle        = "Lost Events (IG only)"
	XLabel           = "RPS (Requests per Second)"
	BaselineName     = "Baseline"
	InstrumentedName = "IG (with tracer)"

	cpuYLabel    = "CPU Usage (%)"
	memoryYLabel = "Memory Usage (MB)"
	lostYLabel   = "Lost Events"
)

const (
	titleSize     = 12
	axisLabelSize = 11

	// Indexes into the Paired palette: dark blue and dark green.
	baselineIndex     = 1
	instrumentedIndex = 3
)

// Colors returns the fill colors of the baseline and instrumented
// series.
func Colors() (base, inst color.Color) {
	p, err := brewer.GetPalette(brewer.TypeQualitative, "Paired", 4)
	if err != nil {
		panic(err)
	}
	cs := p.Colors()
	return cs[baselineIndex], cs[instrumentedIndex]
}

// LostColor is the fill color of the lost events series.
var LostColor color.Color = color.NRGBA{0xFF, 0, 0, 0xCC}

// CPU returns a chart of baseline and instrumented CPU usage with
// confidence intervals.
func CPU(c *overhead.Comparison) (*plot.Plot, error) {
	p := newPlot(c, CPUTitle, cpuYLabel)
	err := addPair(p, c, unit.Percent,
		func(l *overhead.Level) (float64, float64) { return l.BaseCPU, l.BaseCPUCI },
		func(l *overhead.Level) (float64, float64) { return l.CPU, l.CPUCI },
	)
	if err != nil {
		return nil, err
	}
	addHeadroom(p)
	return p, nil
}

// Memory returns a chart of baseline and instrumented memory usage
// with confidence intervals. The Y axis spans the memory values
// widened by MemPadding on both sides.
func Memory(c *overhead.Comparison) (*plot.Plot, error) {
	p := newPlot(c, MemoryTitle, memoryYLabel)
	err := addPair(p, c, unit.MB,
		func(l *overhead.Level) (float64, float64) { return l.BaseMem, l.BaseMemCI },
		func(l *overhead.Level) (float64, float64) { return l.Mem, l.MemCI },
	)
	if err != nil {
		return nil, err
	}
	lo, hi := MemRange(c)
	p.Y.Min, p.Y.Max = lo, hi
	return p, nil
}

// MemRange returns the Y range of the memory chart of c.
func MemRange(c *overhead.Comparison) (lo, hi float64) {
	all := append(c.Column(func(l *overhead.Level) float64 { return l.BaseMem }),
		c.Column(func(l *overhead.Level) float64 { return l.Mem })...)
	min, max := stats.Bounds(all)
	return min - MemPadding, max + MemPadding
}

// Lost returns a chart of the instrumented lost events.
func Lost(c *overhead.Comparison) (*plot.Plot, error) {
	p := newPlot(c, LostTitle, lostYLabel)
	vs := c.Column(func(l *overhead.Level) float64 { return l.Lost })
	b, err := NewBars(plotter.Values(vs), nil, BarWidth)
	if err != nil {
		return nil, err
	}
	b.Color = LostColor
	b.LineStyle.Width = 0
	b.Labels = labels(vs, unit.Count)
	p.Add(b)
	p.Legend.Add(InstrumentedName, b)
	addHeadroom(p)
	return p, nil
}

func newPlot(c *overhead.Comparison, title, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font = BoldFont(vg.Points(titleSize))
	p.X.Label.Text = XLabel
	p.X.Label.TextStyle.Font.Size = vg.Points(axisLabelSize)
	p.Y.Label.Text = ylabel
	p.Y.Label.TextStyle.Font.Size = vg.Points(axisLabelSize)

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	grid.Horizontal.Color = color.Gray{0xd8}
	p.Add(grid)

	names := make([]string, len(c.Levels))
	for i, l := range c.Levels {
		names[i] = strconv.Itoa(l.RPS)
	}
	p.NominalX(names...)

	p.Legend.Top = true
	p.Legend.Padding = 1 * vg.Millimeter
	return p
}

// addPair adds side by side baseline and instrumented bars to p.
func addPair(p *plot.Plot, c *overhead.Comparison, s unit.Scaler, base, inst func(*overhead.Level) (float64, float64)) error {
	baseColor, instColor := Colors()
	for i, series := range []struct {
		name  string
		get   func(*overhead.Level) (float64, float64)
		color color.Color
	}{
		{BaselineName, base, baseColor},
		{InstrumentedName, inst, instColor},
	} {
		vs := make(plotter.Values, len(c.Levels))
		errs := make([]float64, len(c.Levels))
		for j := range c.Levels {
			vs[j], errs[j] = series.get(&c.Levels[j])
		}
		b, err := NewBars(vs, errs, BarWidth)
		if err != nil {
			return err
		}
		b.Shift = (float64(i) - 0.5) * BarWidth
		b.Color = series.color
		b.LineStyle.Width = 0
		b.Labels = labels(vs, s)
		p.Add(b)
		p.Legend.Add(series.name, b)
	}
	return nil
}

func labels(vs []float64, s unit.Scaler) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = s.Format(v)
	}
	return out
}

func addHeadroom(p *plot.Plot) {
	if p.Y.Max > p.Y.Min {
		p.Y.Max += Headroom * (p.Y.Max - p.Y.Min)
	}
}
