// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gff

import (
	"math"
	"strconv"
	"strings"
)

// DecodeScore returns the score represented by text. The sentinel decodes
// to nil. Only finite decimal literals, with an optional exponent, are
// accepted.
func DecodeScore(text string) (*float64, error) {
	if text == string(Sentinel) {
		return nil, nil
	}
	// ParseFloat also accepts hex mantissas, digit separators and the
	// names of the non-finite values; none of them are GFF.
	if strings.ContainsAny(text, "xX_") {
		return nil, &ScoreError{Text: text}
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return nil, &ScoreError{Text: text}
	}
	return &v, nil
}

// EncodeScore returns the shortest text that decodes to *v, or the sentinel
// if v is nil. NaN and infinite scores have no representation and return
// a *ScoreError.
func EncodeScore(v *float64) (string, error) {
	if v == nil {
		return string(Sentinel), nil
	}
	if math.IsInf(*v, 0) || math.IsNaN(*v) {
		return "", &ScoreError{Text: strconv.FormatFloat(*v, 'g', -1, 64)}
	}
	return strconv.FormatFloat(*v, 'g', -1, 64), nil
}

// Score returns a pointer to v for use as a Record score.
func Score(v float64) *float64 { return &v }
