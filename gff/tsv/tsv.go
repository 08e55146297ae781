// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tsv reads and writes tab-delimited lines without quoting, as
// used by GFF.
package tsv

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Reader splits lines read from an io.Reader into tab-delimited fields.
// Empty lines and lines starting with Comment are skipped.
type Reader struct {
	r    *bufio.Reader
	err  error
	line int

	// Comment is the first byte of a line to be skipped. A zero
	// Comment disables comment skipping. NewReader sets it to '#'.
	Comment byte
}

// NewReader returns a new Reader that reads from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r), Comment: '#'}
}

// Read returns the fields of the next line. At end of input Read returns
// nil and io.EOF. A final line without a terminating newline is returned
// as any other line.
func (r *Reader) Read() ([]string, error) {
	for {
		if r.err != nil {
			return nil, r.err
		}
		l, err := r.r.ReadString('\n')
		r.err = err
		if len(l) == 0 {
			continue
		}
		r.line++
		l = strings.TrimSuffix(l, "\n")
		l = strings.TrimSuffix(l, "\r")
		if len(l) == 0 || (r.Comment != 0 && l[0] == r.Comment) {
			continue
		}
		return strings.Split(l, "\t"), nil
	}
}

// Line returns the 1-based number of the last physical line read.
func (r *Reader) Line() int { return r.line }

// ErrBadField is returned by Write for a field holding a tab or a line
// break.
var ErrBadField = errors.New("tsv: field contains delimiter")

// Writer writes tab-delimited lines to an io.Writer. Writer does not
// buffer; wrap the destination in a bufio.Writer when needed.
type Writer struct {
	w   io.Writer
	buf []byte
}

// NewWriter returns a new Writer that writes to w.
func NewWriter(w io.Writer) *Writer { return &Writer{w: w} }

// Write writes fields as a single newline terminated line.
func (w *Writer) Write(fields []string) (n int, err error) {
	w.buf = w.buf[:0]
	for i, f := range fields {
		if strings.ContainsAny(f, "\t\r\n") {
			return 0, fmt.Errorf("%w: field %d %q", ErrBadField, i+1, f)
		}
		if i != 0 {
			w.buf = append(w.buf, '\t')
		}
		w.buf = append(w.buf, f...)
	}
	w.buf = append(w.buf, '\n')
	return w.w.Write(w.buf)
}
