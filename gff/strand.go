// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gff

import (
	"fmt"

	"github.com/biogo/biogo/feat"
)

// Strand is the strand column of a GFF record. Unknown marks a feature
// known to be strand-ambiguous, Absent marks missing strand information.
type Strand int8

const (
	Absent Strand = iota
	Forward
	Reverse
	Unknown
)

// UnknownGlyph is the character written for Unknown. It is the sentinel,
// so Unknown is read back as Absent.
const UnknownGlyph = Sentinel

var strandNames = [...]string{
	Absent:  "Absent",
	Forward: "Forward",
	Reverse: "Reverse",
	Unknown: "Unknown",
}

func (s Strand) String() string {
	if s >= 0 && int(s) < len(strandNames) {
		return strandNames[s]
	}
	return fmt.Sprintf("Strand(%d)", int8(s))
}

// DecodeStrand returns the Strand represented by text. Forward is accepted
// as "+", "f" or "F", Reverse as "-", "r" or "R", Unknown as "?" and Absent
// as the sentinel.
func DecodeStrand(text string) (Strand, error) {
	if len(text) == 1 {
		switch text[0] {
		case '+', 'f', 'F':
			return Forward, nil
		case '-', 'r', 'R':
			return Reverse, nil
		case '?':
			return Unknown, nil
		case Sentinel:
			return Absent, nil
		}
	}
	return Absent, &StrandError{Text: text}
}

// EncodeStrand returns the canonical character for s.
func EncodeStrand(s Strand) (byte, error) {
	switch s {
	case Forward:
		return '+', nil
	case Reverse:
		return '-', nil
	case Unknown:
		return UnknownGlyph, nil
	case Absent:
		return Sentinel, nil
	}
	return 0, &StrandError{Text: s.String()}
}

// Orientation returns the biogo orientation of s. Unknown and Absent are
// not oriented.
func (s Strand) Orientation() feat.Orientation {
	switch s {
	case Forward:
		return feat.Forward
	case Reverse:
		return feat.Reverse
	}
	return feat.NotOriented
}

// StrandOf returns the Strand for the biogo orientation o. A seq.Strand
// may be passed after conversion with feat.Orientation.
func StrandOf(o feat.Orientation) Strand {
	switch {
	case o > feat.NotOriented:
		return Forward
	case o < feat.NotOriented:
		return Reverse
	}
	return Absent
}
