// Copyright 2026 The benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sink opens output destinations. A destination is either a
// local file path or a Cloud Storage URL of the form
// gs://bucket/object.
package sink

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

const gcsScheme = "gs://"

// Options configures Create.
type Options struct {
	// CredentialsFile is a service account JSON file used for
	// Cloud Storage destinations. If empty, application default
	// credentials are used.
	CredentialsFile string
}

// IsGCS reports whether dest names a Cloud Storage object.
func IsGCS(dest string) bool {
	return strings.HasPrefix(dest, gcsScheme)
}

// ParseGCS splits a gs:// URL into its bucket and object names.
func ParseGCS(dest string) (bucket, object string, err error) {
	rest, ok := strings.CutPrefix(dest, gcsScheme)
	if !ok {
		return "", "", fmt.Errorf("%q is not a %s URL", dest, gcsScheme)
	}
	bucket, object, _ = strings.Cut(rest, "/")
	if bucket == "" || object == "" || strings.HasSuffix(object, "/") {
		return "", "", fmt.Errorf("%q does not name an object; want %sbucket/object", dest, gcsScheme)
	}
	return bucket, object, nil
}

// ContentType returns the media type for the object name.
func ContentType(name string) string {
	if t := mime.TypeByExtension(path.Ext(name)); t != "" {
		return t
	}
	return "application/octet-stream"
}

// Create opens dest for writing. The destination is complete only
// once the returned writer has been closed without error.
func Create(ctx context.Context, dest string, opts Options) (io.WriteCloser, error) {
	if !IsGCS(dest) {
		f, err := os.Create(dest)
		if err != nil {
			return nil, err
		}
		return f, nil
	}
	bucket, object, err := ParseGCS(dest)
	if err != nil {
		return nil, err
	}
	var copts []option.ClientOption
	if opts.CredentialsFile != "" {
		copts = append(copts, option.WithCredentialsFile(opts.CredentialsFile))
	}
	client, err := storage.NewClient(ctx, copts...)
	if err != nil {
		return nil, fmt.Errorf("creating storage client: %w", err)
	}
	w := client.Bucket(bucket).Object(object).NewWriter(ctx)
	w.ContentType = ContentType(object)
	return &objectWriter{w: w, client: client}, nil
}

// objectWriter closes the storage client along with the object writer.
type objectWriter struct {
	w      *storage.Writer
	client *storage.Client
}

func (o *objectWriter) Write(p []byte) (int, error) {
	return o.w.Write(p)
}

func (o *objectWriter) Close() error {
	err := o.w.Close()
	if cerr := o.client.Close(); err == nil {
		err = cerr
	}
	return err
}

// WriteFile writes the output of wt to dest. The output is rendered
// in memory first, so a failing wt leaves dest untouched. If writing
// dest fails, a local file is removed and an object upload is
// aborted.
func WriteFile(ctx context.Context, dest string, opts Options, wt io.WriterTo) error {
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return err
	}

	// Canceling the context aborts an object upload instead of
	// committing it on Close.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	w, err := Create(ctx, dest, opts)
	if err != nil {
		return err
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		cancel()
		w.Close()
		if !IsGCS(dest) {
			os.Remove(dest)
		}
		return err
	}
	if err := w.Close(); err != nil {
		if !IsGCS(dest) {
			os.Remove(dest)
		}
		return err
	}
	return nil
}
