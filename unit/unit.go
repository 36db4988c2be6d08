// Copyright 2026 The benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package unit formats measurements for display in charts and summary
// tables.
package unit

import (
	"math"
	"strconv"
)

// A Scaler formats a value with a fixed precision and unit.
type Scaler struct {
	Prec   int    // Digits after the decimal point
	Unit   string // Unit suffix ("%", "MB", etc)
	Prefix string // Printed before the value, e.g. "±"

	// Trunc discards the fractional part instead of rounding when
	// Prec is 0. Event counts are truncated.
	Trunc bool
}

// Format formats val according to s. For example, MB.Format(812.6)
// returns "813MB" and PercentCI.Format(0.126) returns "±0.13%".
func (s Scaler) Format(val float64) string {
	if s.Trunc && s.Prec == 0 {
		val = math.Trunc(val)
	}
	buf := make([]byte, 0, 20)
	buf = append(buf, s.Prefix...)
	buf = strconv.AppendFloat(buf, val, 'f', s.Prec, 64)
	buf = append(buf, s.Unit...)
	return string(buf)
}

// Formats for the quantities in a result table.
var (
	Percent   = Scaler{Prec: 2, Unit: "%"}
	PercentCI = Scaler{Prec: 2, Unit: "%", Prefix: "±"}
	Overhead  = Scaler{Prec: 1, Unit: "%"}
	MB        = Scaler{Prec: 0, Unit: "MB"}
	MBCI      = Scaler{Prec: 0, Unit: "MB", Prefix: "±"}
	Count     = Scaler{Prec: 0, Trunc: true}
)
