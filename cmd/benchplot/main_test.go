// Copyright 2026 The benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/goleak"
	"rsc.io/pdf"

	"github.com/tracerperf/benchplot/internal/diff"
	"github.com/tracerperf/benchplot/resultfmt"
)

func TestMain(m *testing.M) {
	// The storage client's opencensus dependency starts a view worker
	// at init that runs for the life of the process.
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}

func TestOne(t *testing.T) {
	golden(t, "one", "-i", "one", "-summary")
}

func TestThree(t *testing.T) {
	out := golden(t, "three", "--input", "three")
	if got := pdfPages(t, out); got != 3 {
		t.Errorf("report has %d pages, want 3", got)
	}
}

func TestMixed(t *testing.T) {
	// Only the first file is usable. The rest lack a group, have a
	// zero baseline, miss a column or disagree on load levels.
	out := golden(t, "mixed", "-i", "mixed")
	if got := pdfPages(t, out); got != 1 {
		t.Errorf("report has %d pages, want 1", got)
	}
}

func TestSkipped(t *testing.T) {
	if out := golden(t, "skipped", "-i", "skipped"); out != nil {
		t.Errorf("report written although no page was produced")
	}
}

func TestSummaries(t *testing.T) {
	dir := t.TempDir()
	htmlPath := filepath.Join(dir, "summary.html")
	csvPath := filepath.Join(dir, "summary.csv")
	var got, gotErr bytes.Buffer
	args := []string{"-i", "testdata/three", "-o", filepath.Join(dir, "report.pdf"), "-html", htmlPath, "-csv", csvPath}
	if err := benchplot(&got, &gotErr, args); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(htmlPath)
	if err != nil {
		t.Fatal(err)
	}
	html := string(data)
	for _, title := range []string{"alpha", "beta", "gamma"} {
		if !strings.Contains(html, "Performance Results: "+title) {
			t.Errorf("HTML summary lacks a table for %s", title)
		}
	}
	if n := strings.Count(html, "<table"); n != 3 {
		t.Errorf("HTML summary has %d tables, want 3", n)
	}

	data, err = os.ReadFile(csvPath)
	if err != nil {
		t.Fatal(err)
	}
	// Three tables of five rows, each after a title row, with two
	// separating rows.
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	if len(lines) != 3*6+2 {
		t.Errorf("CSV summary has %d lines, want %d:\n%s", len(lines), 3*6+2, data)
	}
	if lines[0] != "alpha" || lines[len(lines)-1] != "Average,5.96%,±0.14%,25.5%,873MB,±4MB,51MB,4" {
		t.Errorf("unexpected CSV summary:\n%s", data)
	}
}

func TestInputErrors(t *testing.T) {
	dir := t.TempDir()
	notDir := filepath.Join(dir, "file")
	if err := os.WriteFile(notDir, nil, 0666); err != nil {
		t.Fatal(err)
	}
	for _, test := range []struct {
		input string
		want  error
	}{
		{"testdata/empty", resultfmt.ErrNoMatch},
		{filepath.Join(dir, "missing"), resultfmt.ErrNoDir},
		{notDir, resultfmt.ErrNotDir},
	} {
		t.Run(filepath.Base(test.input), func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "report.pdf")
			var got, gotErr bytes.Buffer
			err := benchplot(&got, &gotErr, []string{"-i", test.input, "-o", out})
			if !errors.Is(err, test.want) {
				t.Fatalf("got error %v, want %v", err, test.want)
			}
			if got.Len() != 0 {
				t.Errorf("unexpected output:\n%s", got.String())
			}
			if _, err := os.Stat(out); !errors.Is(err, os.ErrNotExist) {
				t.Errorf("output file exists after failure (stat: %v)", err)
			}
		})
	}
}

func TestUsage(t *testing.T) {
	for _, test := range []struct {
		name string
		args []string
		help bool
	}{
		{"help", []string{"-h"}, true},
		{"flag", []string{"-nosuch"}, false},
		{"args", []string{"extra.csv"}, false},
	} {
		t.Run(test.name, func(t *testing.T) {
			var got, gotErr bytes.Buffer
			err := benchplot(&got, &gotErr, test.args)
			var uerr usageError
			if test.help {
				if !errors.Is(err, flag.ErrHelp) {
					t.Fatalf("got error %v, want flag.ErrHelp", err)
				}
			} else if !errors.As(err, &uerr) {
				t.Fatalf("got error %v, want a usage error", err)
			}
			if !strings.Contains(gotErr.String(), "Usage: benchplot") {
				t.Errorf("usage message not printed; stderr:\n%s", gotErr.String())
			}
			if got.Len() != 0 {
				t.Errorf("unexpected output:\n%s", got.String())
			}
		})
	}
}

// golden runs benchplot in testdata with args plus an output path in
// a temporary directory, compares its output with the name.stdout and
// name.stderr files, and returns the contents of the written report,
// or nil if there is none. The temporary directory appears as $OUT in
// the golden files.
func golden(t *testing.T, name string, args ...string) []byte {
	t.Helper()
	if err := os.Chdir("testdata"); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir("..")

	dir := t.TempDir()
	out := filepath.Join(dir, "report.pdf")
	args = append(args, "-o", out)

	var got, gotErr bytes.Buffer
	t.Logf("benchplot %s", strings.Join(args, " "))
	if err := benchplot(&got, &gotErr, args); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	clean := func(b []byte) []byte {
		return bytes.ReplaceAll(b, []byte(dir), []byte("$OUT"))
	}
	compare(t, name, "stdout", clean(got.Bytes()))
	compare(t, name, "stderr", clean(gotErr.Bytes()))

	data, err := os.ReadFile(out)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	} else if err != nil {
		t.Fatal(err)
	}
	return data
}

func compare(t *testing.T, name, sub string, got []byte) {
	t.Helper()

	wantPath := name + "." + sub
	want, err := os.ReadFile(wantPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Treat a missing file as empty.
			want = nil
		} else {
			t.Fatal(err)
		}
	}

	d := diff.Diff(want, got)
	if d == "" {
		return
	}
	t.Errorf("%s differs:\n%s", wantPath, d)

	// Write a "got" file for reference.
	gotPath := name + ".got-" + sub
	if err := os.WriteFile(gotPath, got, 0666); err != nil {
		t.Fatalf("error writing %s: %s", gotPath, err)
	}
}

func pdfPages(t *testing.T, b []byte) int {
	t.Helper()
	if b == nil {
		t.Fatal("no report written")
	}
	r, err := pdf.NewReader(bytes.NewReader(b), int64(len(b)))
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	return r.NumPage()
}
