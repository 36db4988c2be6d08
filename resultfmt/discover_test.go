// Copyright 2026 The benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resultfmt

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0666); err != nil {
			t.Fatal(err)
		}
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir,
		"test_results_c.csv",
		"test_results_a.csv",
		"test_results_b.csv",
		"test_results_.csv",
		"other.csv",
		"test_results_a.txt",
		"prefix_test_results_x.csv",
	)
	if err := os.Mkdir(filepath.Join(dir, "test_results_dir.csv"), 0777); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0777); err != nil {
		t.Fatal(err)
	}
	touch(t, filepath.Join(dir, "sub"), "test_results_nested.csv")

	want := []string{
		filepath.Join(dir, "test_results_.csv"),
		filepath.Join(dir, "test_results_a.csv"),
		filepath.Join(dir, "test_results_b.csv"),
		filepath.Join(dir, "test_results_c.csv"),
	}
	// The order must not depend on the run.
	for i := 0; i < 3; i++ {
		got, err := Discover(dir)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("got %q, want %q", got, want)
		}
	}
}

func TestDiscoverErrors(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	touch(t, dir, "file")
	empty := filepath.Join(dir, "empty")
	if err := os.Mkdir(empty, 0777); err != nil {
		t.Fatal(err)
	}
	touch(t, empty, "results.csv")
	missing := filepath.Join(dir, "missing")

	for _, test := range []struct {
		dir     string
		wantErr error
		wantMsg string
	}{
		{missing, ErrNoDir, "Input directory '" + missing + "' not found"},
		{file, ErrNotDir, "Input path '" + file + "' is not a directory"},
		{empty, ErrNoMatch, "No files matching 'test_results_*.csv' found in '" + empty + "'"},
	} {
		paths, err := Discover(test.dir)
		if err == nil {
			t.Errorf("Discover(%s) = %q, want error", test.dir, paths)
			continue
		}
		if !errors.Is(err, test.wantErr) {
			t.Errorf("Discover(%s): got %v, want %v", test.dir, err, test.wantErr)
		}
		if err.Error() != test.wantMsg {
			t.Errorf("Discover(%s): got message %q, want %q", test.dir, err, test.wantMsg)
		}
	}
}

func TestTitle(t *testing.T) {
	for _, test := range []struct {
		path, want string
	}{
		{"test_results_foo.csv", "foo"},
		{"/some/dir/test_results_foo.csv", "foo"},
		{"test_results_trace_exec.csv", "trace_exec"},
		{"test_results_foo", "foo"},
		{"other.csv", "other.csv"},
		{"dir/other.csv", "other.csv"},
		{"results_test_results_x.csv", "results_test_results_x.csv"},
	} {
		if got := Title(test.path); got != test.want {
			t.Errorf("Title(%q) = %q, want %q", test.path, got, test.want)
		}
	}
}
