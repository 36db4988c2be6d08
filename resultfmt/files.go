// Copyright 2026 The benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resultfmt

import (
	"os"
)

// A Files reads result tables from a sequence of input files.
//
// Unlike a single Read, a Files does not stop at the first bad file:
// a file that cannot be opened or parsed is returned as a File whose
// Err is set, and the next call to Scan moves on to the following
// path.
type Files struct {
	// Paths is the list of file names to read in, in order.
	Paths []string

	next int
	cur  *File
}

// A File is the outcome of reading one path.
type File struct {
	Path  string
	Title string

	// Table is the parsed table, or nil if Err is set.
	Table *Table
	Err   error
}

// Scan advances to the next file and reports whether there was one.
// The caller should use the Result method to get the file.
func (f *Files) Scan() bool {
	if f.next >= len(f.Paths) {
		f.cur = nil
		return false
	}
	path := f.Paths[f.next]
	f.next++
	f.cur = readFile(path)
	return true
}

func readFile(path string) *File {
	res := &File{Path: path, Title: Title(path)}
	file, err := os.Open(path)
	if err != nil {
		res.Err = err
		return res
	}
	defer file.Close()
	res.Table, res.Err = Read(file, path)
	return res
}

// Result returns the file that was just read by Scan.
func (f *Files) Result() *File {
	return f.cur
}
