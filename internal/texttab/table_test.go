// Copyright 2026 The benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texttab

import (
	"strings"
	"testing"
)

func TestAlign(t *testing.T) {
	check := func(s string, a align, w int, want string) {
		t.Helper()
		got := a.pad(s, w)
		if got != want {
			t.Errorf("want %q, got %q", want, got)
		}
	}

	check("abc", alignLeft, 10, "abc       ")
	check("abc", alignCenter, 10, "   abc    ")
	check("abc", alignCenter, 11, "    abc    ")
	check("abc", alignRight, 10, "       abc")
	check("±", alignRight, 4, "   ±")
	check("toolong", alignRight, 3, "toolong")
}

func TestTable(t *testing.T) {
	var tab Table
	check := func(want string) {
		t.Helper()
		var gotBuf strings.Builder
		if err := tab.Format(&gotBuf); err != nil {
			t.Fatal(err)
		}
		got := gotBuf.String()
		if want != got {
			t.Errorf("want:\n%sgot:\n%s", want, got)
		}
		tab = Table{}
	}

	// Basic test.
	tab.Row().Cell("a").Cell("b").Cell("c")
	tab.Row().Cell("d").Cell("e").Cell("f")
	check("a b c\nd e f\n")

	// Padding, without trailing spaces.
	tab.Row().Cell("a").Cell("b").Cell("c")
	tab.Row().Cell("long").Cell("e").Cell("long")
	check("a    b c\nlong e long\n")

	// Cell alignment.
	tab.Row().Cell("a", Left).Cell("b", Center).Cell("c", Right)
	tab.Row().Cell("xxx").Cell("xxx").Cell("xxx")
	check("a    b    c\nxxx xxx xxx\n")

	// Column alignment, overridden per cell.
	tab.Row().Cell("RPS").Cell("CPU")
	tab.Row().Cell("1").Cell("2.00%")
	tab.Row().Cell("1000", Left).Cell("x", Left)
	tab.SetAlign(0, Right)
	tab.SetAlign(1, Right)
	check(" RPS   CPU\n   1 2.00%\n1000 x\n")

	// Margins.
	tab.Row().Cell("a").Cell("b", LeftMargin(" | "))
	tab.Row().Cell("c").Cell("d")
	check("a | b\nc   d\n")

	// Missing cells at the end.
	tab.Row().Cell("a")
	tab.Row().Cell("d").Cell("e").Cell("f")
	check("a\nd e f\n")

	// Rules.
	tab.Row().Cell("head").Cell("x").Rule()
	tab.Row().Cell("a").Cell("b")
	check("head x\n------\na    b\n")

	// Cell before Row.
	tab.Cell("a")
	check("a\n")
}
