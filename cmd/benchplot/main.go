// Copyright 2026 The benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchplot renders tracer benchmark results as a PDF report.
//
// Usage:
//
//	benchplot [-i dir] [-o output.pdf] [-html file] [-csv file] [-summary] [-credentials file]
//
// Benchplot reads every file named test_results_*.csv in the input
// directory (the current directory by default). Each file holds one
// row per run, with the columns
//
//	Name,rps,%cpu,cpu_ci,mem(MB),mem_ci,lost
//
// in any order. Rows named "baseline" were measured without the tracer
// and rows named "ig" with it; both must cover the same load levels
// (rps). Other columns are ignored.
//
// For each file, in name order, benchplot adds one page to the output
// PDF. The page, titled after the file name without its test_results_
// prefix, holds three bar charts and a summary table. The charts
// compare CPU usage and memory usage of both runs with their
// confidence intervals, and show the events the tracer lost. The
// table lists the instrumented usage at every load level with its
// overhead over the baseline, followed by the average over all levels.
//
// A file that cannot be read, lacks either run, or has mismatched load
// levels is reported and skipped; the remaining files are still
// processed.
//
// The -o flag names the output PDF (performance_comparison.pdf by
// default). It may also be a Cloud Storage URL, gs://bucket/object,
// in which case -credentials optionally names a service account key
// file. The -html and -csv flags additionally write the summary tables
// of all pages as an HTML document or a CSV file, and -summary prints
// them as text. Like -o, they accept gs:// URLs.
//
// Both the long flag names and their one-letter forms -i and -o may
// be written with one or two leading dashes.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/tracerperf/benchplot/internal/sink"
	"github.com/tracerperf/benchplot/overhead"
	"github.com/tracerperf/benchplot/report"
	"github.com/tracerperf/benchplot/resultfmt"
	"github.com/tracerperf/benchplot/summary"
)

// DefaultOutput is the output path used when -o is not given.
const DefaultOutput = "performance_comparison.pdf"

func main() {
	log.SetOutput(os.Stdout)
	log.SetPrefix("Error: ")
	log.SetFlags(0)

	err := benchplot(os.Stdout, os.Stderr, os.Args[1:])
	var uerr usageError
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp), errors.As(err, &uerr):
		os.Exit(2)
	default:
		log.Fatal(err)
	}
}

// A usageError reports bad command-line arguments. The flag set has
// already printed the usage message.
type usageError struct {
	err error
}

func (e usageError) Error() string {
	return e.err.Error()
}

func (e usageError) Unwrap() error {
	return e.err
}

// errMissingGroup indicates a file without baseline or instrumented
// rows.
var errMissingGroup = errors.New("missing baseline or ig data")

func benchplot(w, wErr io.Writer, args []string) error {
	flags := flag.NewFlagSet("benchplot", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: benchplot [flags]\n\nflags:\n")
		flags.PrintDefaults()
	}
	var flagInput, flagOutput string
	flags.StringVar(&flagInput, "input", ".", "`directory` containing test_results_*.csv files")
	flags.StringVar(&flagInput, "i", ".", "shorthand for -input")
	flags.StringVar(&flagOutput, "output", DefaultOutput, "write the PDF report to `path` or gs://bucket/object")
	flags.StringVar(&flagOutput, "o", DefaultOutput, "shorthand for -output")
	flagHTML := flags.String("html", "", "also write the summary tables as HTML to `path` or gs://bucket/object")
	flagCSV := flags.String("csv", "", "also write the summary tables as CSV to `path` or gs://bucket/object")
	flagSummary := flags.Bool("summary", false, "print each page's summary table")
	flagCredentials := flags.String("credentials", "", "service account key `file` for gs:// outputs")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return usageError{err}
	}
	if flags.NArg() > 0 {
		flags.Usage()
		return usageError{fmt.Errorf("unexpected arguments: %q", flags.Args())}
	}

	paths, err := resultfmt.Discover(flagInput)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Found %d test result files:\n", len(paths))
	for _, path := range paths {
		fmt.Fprintf(w, "  - %s\n", filepath.Base(path))
	}

	// Per-file problems are reported and skipped.
	l := log.New(w, "", 0)
	var doc report.Document
	var tables []*summary.Table
	files := &resultfmt.Files{Paths: paths}
	for files.Scan() {
		f := files.Result()
		fmt.Fprintf(w, "\nProcessing: %s\n", filepath.Base(f.Path))

		page, err := newPage(f)
		if errors.Is(err, errMissingGroup) {
			l.Printf("Warning: Missing baseline or ig data in %s", f.Path)
			l.Printf("Skipping %s due to data issues", f.Path)
			continue
		}
		if err == nil {
			err = doc.AddPage(page)
		}
		if err != nil {
			l.Printf("Error processing %s: %v", f.Path, err)
			continue
		}

		tables = append(tables, page.Table)
		if *flagSummary {
			fmt.Fprintln(w)
			if err := page.Table.Format(w); err != nil {
				return err
			}
		}
	}

	ctx := context.Background()
	opts := sink.Options{CredentialsFile: *flagCredentials}
	if doc.Pages() == 0 {
		fmt.Fprintf(w, "\nNo pages were produced; %s was not written\n", flagOutput)
	} else {
		if err := sink.WriteFile(ctx, flagOutput, opts, &doc); err != nil {
			return fmt.Errorf("writing %s: %w", flagOutput, err)
		}
		for _, x := range []struct {
			dest   string
			format func(io.Writer, []*summary.Table) error
		}{
			{*flagHTML, summary.FormatHTML},
			{*flagCSV, summary.FormatCSV},
		} {
			if x.dest == "" {
				continue
			}
			var buf bytes.Buffer
			if err := x.format(&buf, tables); err != nil {
				return err
			}
			if err := sink.WriteFile(ctx, x.dest, opts, &buf); err != nil {
				return fmt.Errorf("writing %s: %w", x.dest, err)
			}
		}
		fmt.Fprintf(w, "\nAll plots saved to: %s\n", flagOutput)
	}
	fmt.Fprintf(w, "Processed %d of %d files successfully\n", doc.Pages(), len(paths))
	return nil
}

// newPage builds the report page of one input file.
func newPage(f *resultfmt.File) (*report.Page, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	base := f.Table.Group(resultfmt.Baseline)
	inst := f.Table.Group(resultfmt.Instrumented)
	if base.Len() == 0 || inst.Len() == 0 {
		return nil, errMissingGroup
	}
	c, err := overhead.Compare(base, inst)
	if err != nil {
		return nil, err
	}
	return report.NewPage(f.Title, c)
}
