// Copyright 2026 The benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diff describes differences between expected and actual
// test output.
package diff

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// Diff returns a human-readable description of the differences between
// want and got, or "" if they are equal. If the "diff" command is
// available, the description is a unified diff. Otherwise it names the
// first line that differs.
func Diff(want, got []byte) string {
	if bytes.Equal(want, got) {
		return ""
	}
	if _, err := exec.LookPath("diff"); err == nil {
		if d, err := unified(want, got); err == nil {
			return d
		}
	}
	return firstLine(want, got)
}

func unified(want, got []byte) (string, error) {
	dir, err := os.MkdirTemp("", "diff")
	if err != nil {
		return "", err
	}
	defer os.RemoveAll(dir)
	if err := os.WriteFile(filepath.Join(dir, "want"), want, 0666); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(dir, "got"), got, 0666); err != nil {
		return "", err
	}

	cmd := exec.Command("diff", "-Nu", "want", "got")
	cmd.Dir = dir
	data, err := cmd.CombinedOutput()
	if len(data) > 0 {
		// diff exits with a non-zero status when the files don't
		// match.
		return string(data), nil
	}
	if err == nil {
		err = fmt.Errorf("diff reported no differences")
	}
	return "", err
}

func firstLine(want, got []byte) string {
	wl := bytes.Split(want, []byte("\n"))
	gl := bytes.Split(got, []byte("\n"))
	for i := 0; ; i++ {
		var w, g []byte
		if i < len(wl) {
			w = wl[i]
		}
		if i < len(gl) {
			g = gl[i]
		}
		if i >= len(wl) || i >= len(gl) || !bytes.Equal(w, g) {
			return fmt.Sprintf("line %d:\nwant: %q\ngot:  %q", i+1, w, g)
		}
	}
}
