// Copyright 2026 The benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unit

import "testing"

func TestFormat(t *testing.T) {
	for _, test := range []struct {
		s    Scaler
		val  float64
		want string
	}{
		{Percent, 12.3456, "12.35%"},
		{Percent, 0, "0.00%"},
		{PercentCI, 0.126, "±0.13%"},
		{Overhead, 25, "25.0%"},
		{Overhead, -3.04, "-3.0%"},
		{MB, 812.6, "813MB"},
		{MB, -20.2, "-20MB"},
		{MBCI, 4.4, "±4MB"},
		{Count, 12.75, "12"},
		{Count, 0.99, "0"},
		{Scaler{Prec: 0}, 12.75, "13"},
		{Scaler{Prec: 1, Trunc: true}, 12.74, "12.7"},
	} {
		if got := test.s.Format(test.val); got != test.want {
			t.Errorf("%+v.Format(%v) = %q, want %q", test.s, test.val, got, test.want)
		}
	}
}
