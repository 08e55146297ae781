// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gff

import (
	"errors"
	"fmt"
)

// ErrEmptySeqName is returned when a record has an empty seqname column.
var ErrEmptySeqName = errors.New("gff: empty seqname")

// ErrDelimiter is returned when a string column holds a tab or a line
// break.
var ErrDelimiter = errors.New("gff: column contains delimiter")

// A ScoreError is returned when score column text is neither the sentinel
// nor a finite decimal floating point literal, or when a non-finite score
// is encoded.
type ScoreError struct {
	Text string
}

func (e *ScoreError) Error() string { return fmt.Sprintf("gff: invalid score %q", e.Text) }

// A StrandError is returned when strand column text is not one of the
// accepted strand characters, or when an undefined Strand is encoded.
type StrandError struct {
	Text string
}

func (e *StrandError) Error() string { return fmt.Sprintf("gff: invalid strand %q", e.Text) }

// A FrameError is returned when frame column text is not 0, 1, 2 or the
// sentinel.
type FrameError struct {
	Text string
}

func (e *FrameError) Error() string { return fmt.Sprintf("gff: invalid frame %q", e.Text) }

// A FrameValueError is returned when a Frame outside {NoFrame, 0, 1, 2}
// is encoded.
type FrameValueError struct {
	Value Frame
}

func (e *FrameValueError) Error() string { return fmt.Sprintf("gff: invalid frame value %d", e.Value) }

// A ColumnCountError is returned when a line does not hold exactly
// NumColumns fields.
type ColumnCountError struct {
	Expected int
	Actual   int
}

func (e *ColumnCountError) Error() string {
	return fmt.Sprintf("gff: wrong number of columns: expected %d got %d", e.Expected, e.Actual)
}

// A ColumnError records the column and raw text of a failed decode or
// encode. Err holds the underlying codec error.
type ColumnError struct {
	Column Column
	Text   string
	Err    error
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("gff: column %d (%v) %q: %v", int(e.Column)+1, e.Column, e.Text, e.Err)
}

func (e *ColumnError) Unwrap() error { return e.Err }
