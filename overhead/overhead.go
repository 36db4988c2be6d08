// Copyright 2026 The benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package overhead computes the cost of instrumentation from paired
// baseline and instrumented measurements.
//
// Pairs are positional: the i'th load level of the baseline group is
// compared with the i'th load level of the instrumented group, and
// the two groups must sweep the same load levels.
package overhead

import (
	"errors"
	"fmt"

	"github.com/aclements/go-moremath/stats"

	"github.com/tracerperf/benchplot/resultfmt"
)

var (
	// ErrZeroBaseline indicates a baseline CPU value of 0, for which
	// a relative overhead is undefined.
	ErrZeroBaseline = errors.New("baseline CPU usage is zero")

	// ErrLengthMismatch indicates groups with different numbers of
	// load levels.
	ErrLengthMismatch = errors.New("baseline and instrumented row counts differ")

	// ErrLevelMismatch indicates groups that sweep different load
	// levels.
	ErrLevelMismatch = errors.New("baseline and instrumented load levels differ")

	// ErrEmpty indicates a comparison with no load levels.
	ErrEmpty = errors.New("no load levels")
)

// A Level is the comparison at one load level. In Comparison.Mean,
// every field is the arithmetic mean of that field over all levels,
// except RPS, which is 0.
type Level struct {
	RPS int

	BaseCPU, BaseCPUCI float64
	BaseMem, BaseMemCI float64

	CPU, CPUCI float64 // instrumented, percent
	Mem, MemCI float64 // instrumented, megabytes
	Lost       float64 // instrumented lost events

	CPUOverhead float64 // (CPU - BaseCPU) / BaseCPU, in percent
	MemOverhead float64 // Mem - BaseMem, in megabytes
}

// A Comparison is the per-level and average overhead of one result
// table.
type Comparison struct {
	Levels []Level
	Mean   Level
}

// RPS returns the load levels of c in order.
func (c *Comparison) RPS() []int {
	out := make([]int, len(c.Levels))
	for i, l := range c.Levels {
		out[i] = l.RPS
	}
	return out
}

// Column returns field f of every level of c, in order.
func (c *Comparison) Column(f func(*Level) float64) []float64 {
	out := make([]float64, len(c.Levels))
	for i := range c.Levels {
		out[i] = f(&c.Levels[i])
	}
	return out
}

// A ZeroBaselineError reports the load level at which the baseline
// CPU usage is 0.
type ZeroBaselineError struct {
	RPS int
}

func (e *ZeroBaselineError) Error() string {
	return fmt.Sprintf("at %d rps: %v", e.RPS, ErrZeroBaseline)
}

func (e *ZeroBaselineError) Unwrap() error {
	return ErrZeroBaseline
}

// CPUOverhead returns the relative CPU overhead of inst over base in
// percent. It returns ErrZeroBaseline if base is 0.
func CPUOverhead(base, inst float64) (float64, error) {
	if base == 0 {
		return 0, ErrZeroBaseline
	}
	return (inst - base) / base * 100, nil
}

// Compare pairs the load levels of base and inst and computes the
// overhead at each level and on average.
func Compare(base, inst *resultfmt.Group) (*Comparison, error) {
	if base.Len() != inst.Len() {
		return nil, fmt.Errorf("%w: %s has %d, %s has %d", ErrLengthMismatch, base.Label, base.Len(), inst.Label, inst.Len())
	}
	if base.Len() == 0 {
		return nil, ErrEmpty
	}

	c := &Comparison{Levels: make([]Level, base.Len())}
	for i := range c.Levels {
		if base.RPS[i] != inst.RPS[i] {
			return nil, fmt.Errorf("%w: row %d is %d rps in %s and %d rps in %s", ErrLevelMismatch, i+1, base.RPS[i], base.Label, inst.RPS[i], inst.Label)
		}
		pct, err := CPUOverhead(base.CPU[i], inst.CPU[i])
		if err != nil {
			return nil, &ZeroBaselineError{base.RPS[i]}
		}
		c.Levels[i] = Level{
			RPS:         base.RPS[i],
			BaseCPU:     base.CPU[i],
			BaseCPUCI:   base.CPUCI[i],
			BaseMem:     base.Mem[i],
			BaseMemCI:   base.MemCI[i],
			CPU:         inst.CPU[i],
			CPUCI:       inst.CPUCI[i],
			Mem:         inst.Mem[i],
			MemCI:       inst.MemCI[i],
			Lost:        inst.Lost[i],
			CPUOverhead: pct,
			MemOverhead: inst.Mem[i] - base.Mem[i],
		}
	}

	mean := func(f func(*Level) float64) float64 {
		return stats.Mean(c.Column(f))
	}
	c.Mean = Level{
		BaseCPU:     mean(func(l *Level) float64 { return l.BaseCPU }),
		BaseCPUCI:   mean(func(l *Level) float64 { return l.BaseCPUCI }),
		BaseMem:     mean(func(l *Level) float64 { return l.BaseMem }),
		BaseMemCI:   mean(func(l *Level) float64 { return l.BaseMemCI }),
		CPU:         mean(func(l *Level) float64 { return l.CPU }),
		CPUCI:       mean(func(l *Level) float64 { return l.CPUCI }),
		Mem:         mean(func(l *Level) float64 { return l.Mem }),
		MemCI:       mean(func(l *Level) float64 { return l.MemCI }),
		Lost:        mean(func(l *Level) float64 { return l.Lost }),
		CPUOverhead: mean(func(l *Level) float64 { return l.CPUOverhead }),
		MemOverhead: mean(func(l *Level) float64 { return l.MemOverhead }),
	}
	return c, nil
}
