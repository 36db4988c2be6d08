// Copyright 2026 The benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resultfmt reads the CSV tables written by the tracer
// benchmark harness.
//
// Each file holds one test scenario. Rows are labeled by the Name
// column as either a baseline run (no tracer) or an instrumented run,
// and each row reports resource usage at one load level:
//
//	Name,rps,%cpu,mem(MB),cpu_ci,mem_ci,runs,lost
//	baseline,100,1.52,812.00,0.04,3.10,10,0.00
//	ig,100,1.97,866.00,0.05,2.80,10,0.00
//
// Column order is free; extra columns are carried but ignored.
package resultfmt

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	// Prefix and Suffix bracket the scenario name in a result file name.
	Prefix = "test_results_"
	Suffix = ".csv"

	// Pattern is the glob matched against a result directory.
	Pattern = Prefix + "*" + Suffix
)

var (
	ErrNoDir   = errors.New("input directory not found")
	ErrNotDir  = errors.New("input path is not a directory")
	ErrNoMatch = errors.New("no result files found")
)

// A DirError reports why a result directory could not be used.
// Unwrap returns one of ErrNoDir, ErrNotDir or ErrNoMatch.
type DirError struct {
	Dir string
	Err error
}

func (e *DirError) Error() string {
	switch e.Err {
	case ErrNoDir:
		return fmt.Sprintf("Input directory '%s' not found", e.Dir)
	case ErrNotDir:
		return fmt.Sprintf("Input path '%s' is not a directory", e.Dir)
	case ErrNoMatch:
		return fmt.Sprintf("No files matching '%s' found in '%s'", Pattern, e.Dir)
	}
	return fmt.Sprintf("%s: %v", e.Dir, e.Err)
}

func (e *DirError) Unwrap() error { return e.Err }

// Discover returns the paths of the result files directly inside dir,
// sorted lexicographically.
func Discover(dir string) ([]string, error) {
	fi, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &DirError{dir, ErrNoDir}
		}
		return nil, &DirError{dir, err}
	}
	if !fi.IsDir() {
		return nil, &DirError{dir, ErrNotDir}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &DirError{dir, err}
	}
	var files []string
	for _, ent := range entries {
		// A directory named like a result file is not one.
		if ent.IsDir() {
			continue
		}
		if ok, _ := filepath.Match(Pattern, ent.Name()); ok {
			files = append(files, filepath.Join(dir, ent.Name()))
		}
	}
	if len(files) == 0 {
		return nil, &DirError{dir, ErrNoMatch}
	}
	sort.Strings(files)
	return files, nil
}

// Title returns the scenario name encoded in a result file path.
// Names without Prefix are returned unchanged.
func Title(path string) string {
	name := filepath.Base(path)
	if !strings.HasPrefix(name, Prefix) {
		return name
	}
	return strings.TrimSuffix(strings.TrimPrefix(name, Prefix), Suffix)
}
