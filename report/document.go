// Copyright 2026 The benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"errors"
	"fmt"
	"io"

	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/recorder"
	"gonum.org/v1/plot/vg/vgpdf"
)

var (
	// ErrNoPages is returned when writing a Document without pages.
	ErrNoPages = errors.New("document has no pages")

	// ErrWritten is returned when adding to or writing a Document
	// that was already written.
	ErrWritten = errors.New("document already written")
)

// A Document is a PDF document built one page at a time.
//
// Each page is first drawn to a recording and only drawn into the PDF
// if that succeeded, so a failed page leaves no trace.
type Document struct {
	pdf     *vgpdf.Canvas
	titles  []string
	written bool
}

// AddPage draws p as the next page of d. A panic while drawing p is
// returned as an error.
func (d *Document) AddPage(p *Page) error {
	if d.written {
		return ErrWritten
	}
	var rec recorder.Canvas
	if err := drawPage(p, draw.NewCanvas(&rec, Width, Height)); err != nil {
		return err
	}

	if d.pdf == nil {
		d.pdf = vgpdf.New(Width, Height)
	} else {
		d.pdf.NextPage()
	}
	if err := drawPage(p, draw.New(d.pdf)); err != nil {
		return err
	}
	d.titles = append(d.titles, p.Title)
	return nil
}

// drawPage draws p onto c, converting a panic into an error.
func drawPage(p *Page, c draw.Canvas) (err error) {
	defer func() {
		if e := recover(); e != nil {
			err = fmt.Errorf("drawing page %q: %v", p.Title, e)
		}
	}()
	p.Draw(c)
	return nil
}

// Pages returns the number of pages in d.
func (d *Document) Pages() int {
	return len(d.titles)
}

// Titles returns the titles of the pages of d in order.
func (d *Document) Titles() []string {
	return d.titles
}

// WriteTo writes d as a PDF file to w. A Document can be written only
// once.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	if d.written {
		return 0, ErrWritten
	}
	if d.pdf == nil {
		return 0, ErrNoPages
	}
	d.written = true
	return d.pdf.WriteTo(w)
}
