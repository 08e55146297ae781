// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gff provides column level decoding and encoding of GFF records.
//
// The score, strand and frame columns use the sentinel "." to mark an
// absent value. Decoding is permissive where the format has historical
// synonyms, and encoding always writes the canonical form, so a decoded
// record re-encodes to text that decodes to the same record, though not
// necessarily to the text it was read from.
package gff

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/biogo/biogo/feat"
)

// Sentinel is the column text for an absent value.
const Sentinel = '.'

// Column is a GFF column index.
type Column int

const (
	FieldSeqName Column = iota
	FieldSource
	FieldFeature
	FieldStart
	FieldEnd
	FieldScore
	FieldStrand
	FieldFrame
	FieldAttributes

	NumColumns = int(FieldAttributes) + 1
)

var columnNames = [...]string{
	FieldSeqName:    "seqname",
	FieldSource:     "source",
	FieldFeature:    "feature",
	FieldStart:      "start",
	FieldEnd:        "end",
	FieldScore:      "score",
	FieldStrand:     "strand",
	FieldFrame:      "frame",
	FieldAttributes: "attributes",
}

func (c Column) String() string {
	if c >= 0 && int(c) < len(columnNames) {
		return columnNames[c]
	}
	return fmt.Sprintf("Column%d", int(c))
}

// Record is a single GFF feature line. FeatStart and FeatEnd hold the
// 1-based coordinates as written.
//
// The zero Frame is Frame0, not NoFrame, as in the biogo gff package, so
// records built in memory without a frame must set FeatFrame to NoFrame.
// The zero Strand is Absent.
type Record struct {
	SeqName        string
	Source         string
	Feature        string
	FeatStart      uint64
	FeatEnd        uint64
	FeatScore      *float64
	FeatStrand     Strand
	FeatFrame      Frame
	FeatAttributes string
}

// A codec decodes one column into a Record and encodes it back.
type codec struct {
	decode func(r *Record, text string) error
	encode func(r *Record) (string, error)
}

var columns = [NumColumns]codec{
	FieldSeqName: {
		decode: func(r *Record, text string) error {
			if text == "" {
				return ErrEmptySeqName
			}
			r.SeqName = text
			return nil
		},
		encode: func(r *Record) (string, error) {
			if r.SeqName == "" {
				return "", ErrEmptySeqName
			}
			return plain(r.SeqName)
		},
	},
	FieldSource: {
		decode: func(r *Record, text string) error { r.Source = text; return nil },
		encode: func(r *Record) (string, error) { return plain(r.Source) },
	},
	FieldFeature: {
		decode: func(r *Record, text string) error { r.Feature = text; return nil },
		encode: func(r *Record) (string, error) { return plain(r.Feature) },
	},
	FieldStart: {
		decode: func(r *Record, text string) (err error) {
			r.FeatStart, err = strconv.ParseUint(text, 10, 64)
			return err
		},
		encode: func(r *Record) (string, error) { return strconv.FormatUint(r.FeatStart, 10), nil },
	},
	FieldEnd: {
		decode: func(r *Record, text string) (err error) {
			r.FeatEnd, err = strconv.ParseUint(text, 10, 64)
			return err
		},
		encode: func(r *Record) (string, error) { return strconv.FormatUint(r.FeatEnd, 10), nil },
	},
	FieldScore: {
		decode: func(r *Record, text string) (err error) {
			r.FeatScore, err = DecodeScore(text)
			return err
		},
		encode: func(r *Record) (string, error) { return EncodeScore(r.FeatScore) },
	},
	FieldStrand: {
		decode: func(r *Record, text string) (err error) {
			r.FeatStrand, err = DecodeStrand(text)
			return err
		},
		encode: func(r *Record) (string, error) {
			c, err := EncodeStrand(r.FeatStrand)
			if err != nil {
				return "", err
			}
			return string(c), nil
		},
	},
	FieldFrame: {
		decode: func(r *Record, text string) (err error) {
			r.FeatFrame, err = DecodeFrame(text)
			return err
		},
		encode: func(r *Record) (string, error) {
			c, err := EncodeFrame(r.FeatFrame)
			if err != nil {
				return "", err
			}
			return string(c), nil
		},
	},
	FieldAttributes: {
		decode: func(r *Record, text string) error { r.FeatAttributes = text; return nil },
		encode: func(r *Record) (string, error) { return plain(r.FeatAttributes) },
	},
}

// plain returns s unless it holds a column or line delimiter.
func plain(s string) (string, error) {
	if strings.ContainsAny(s, "\t\r\n") {
		return "", ErrDelimiter
	}
	return s, nil
}

// DecodeRecord returns the Record held in the nine raw column texts of a
// GFF line. A wrong number of columns is reported as a *ColumnCountError
// before any column is decoded. Otherwise the first failing column is
// reported as a *ColumnError.
func DecodeRecord(fields []string) (*Record, error) {
	if len(fields) != NumColumns {
		return nil, &ColumnCountError{Expected: NumColumns, Actual: len(fields)}
	}
	var r Record
	for i, c := range columns {
		err := c.decode(&r, fields[i])
		if err != nil {
			return nil, &ColumnError{Column: Column(i), Text: fields[i], Err: err}
		}
	}
	return &r, nil
}

// EncodeRecord returns the nine canonical column texts of r. It fails
// only for records that could not have been decoded: an empty seqname,
// a string column holding a tab or line break, a non-finite score, an
// undefined strand or an out of range frame.
func EncodeRecord(r *Record) ([]string, error) {
	fields := make([]string, NumColumns)
	for i, c := range columns {
		text, err := c.encode(r)
		if err != nil {
			return nil, &ColumnError{Column: Column(i), Text: columnText(r, Column(i)), Err: err}
		}
		fields[i] = text
	}
	return fields, nil
}

// columnText returns a printable form of the value held for column c.
func columnText(r *Record, c Column) string {
	switch c {
	case FieldScore:
		if r.FeatScore == nil {
			return "<nil>"
		}
		return fmt.Sprint(*r.FeatScore)
	case FieldStrand:
		return r.FeatStrand.String()
	case FieldFrame:
		return strconv.Itoa(int(r.FeatFrame))
	case FieldSeqName:
		return r.SeqName
	case FieldSource:
		return r.Source
	case FieldFeature:
		return r.Feature
	case FieldAttributes:
		return r.FeatAttributes
	}
	return ""
}

// String returns the tab-delimited GFF line for r without a line
// terminator. Records that cannot be encoded are rendered as a
// "%!(gff.Record=...)" diagnostic.
func (r *Record) String() string {
	fields, err := EncodeRecord(r)
	if err != nil {
		return fmt.Sprintf("%%!(gff.Record=%v)", err)
	}
	return strings.Join(fields, "\t")
}

// Start returns the 0-based start position of the feature. Coordinates
// are not validated: a FeatStart of 0 gives -1, and coordinates above the
// maximum int wrap to negative values in Start, End and Len.
func (r *Record) Start() int { return feat.OneToZero(int(r.FeatStart)) }

// End returns the end position of the feature; 1-based closed and
// 0-based half-open ends are equal.
func (r *Record) End() int { return int(r.FeatEnd) }

// Len returns the length of the feature. It has the same limits as Start
// and End.
func (r *Record) Len() int { return r.End() - r.Start() }

// Name returns the feature type.
func (r *Record) Name() string { return r.Feature }

// Description returns the feature source.
func (r *Record) Description() string { return r.Source }

// Location returns the sequence the feature is annotated on.
func (r *Record) Location() feat.Feature { return Sequence(r.SeqName) }

// Orientation returns the biogo orientation of the feature.
func (r *Record) Orientation() feat.Orientation { return r.FeatStrand.Orientation() }

// A Sequence is a feat.Feature naming the sequence a record is annotated on.
type Sequence string

func (s Sequence) Start() int             { return 0 }
func (s Sequence) End() int               { return 0 }
func (s Sequence) Len() int               { return 0 }
func (s Sequence) Name() string           { return string(s) }
func (s Sequence) Description() string    { return "sequence" }
func (s Sequence) Location() feat.Feature { return nil }
