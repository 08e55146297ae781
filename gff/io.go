// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gff

import (
	"errors"
	"fmt"
	"io"

	"github.com/biogo/biogo/feat"
	"github.com/biogo/biogo/io/featio"

	"github.com/biogo/gffcodec/gff/tsv"
)

var (
	_ featio.Reader = (*Reader)(nil)
	_ featio.Writer = (*Writer)(nil)
)

// ErrNotRecord is returned by Writer.Write for features that are not a
// *Record.
var ErrNotRecord = errors.New("gff: feature is not a *gff.Record")

// A LineError records the physical line of a decode failure.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string { return fmt.Sprintf("gff: line %d: %v", e.Line, e.Err) }

func (e *LineError) Unwrap() error { return e.Err }

// Reader reads GFF records. Lines starting with '#' are skipped.
type Reader struct {
	r *tsv.Reader
}

// NewReader returns a new Reader that reads from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: tsv.NewReader(r)}
}

// Read returns the next record as a *Record. At end of input Read returns
// nil and io.EOF. Decode failures are returned as a *LineError.
func (r *Reader) Read() (feat.Feature, error) {
	fields, err := r.r.Read()
	if err != nil {
		return nil, err
	}
	rec, err := DecodeRecord(fields)
	if err != nil {
		return nil, &LineError{Line: r.r.Line(), Err: err}
	}
	return rec, nil
}

// Writer writes GFF records in canonical form.
type Writer struct {
	w *tsv.Writer
}

// NewWriter returns a new Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: tsv.NewWriter(w)}
}

// Write writes f, which must be a *Record, as a single GFF line.
func (w *Writer) Write(f feat.Feature) (n int, err error) {
	r, ok := f.(*Record)
	if !ok {
		return 0, ErrNotRecord
	}
	fields, err := EncodeRecord(r)
	if err != nil {
		return 0, err
	}
	return w.w.Write(fields)
}
