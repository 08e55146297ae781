// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gff

import "fmt"

// Frame is the reading frame offset of a GFF record.
type Frame int8

const (
	NoFrame Frame = iota - 1
	Frame0
	Frame1
	Frame2
)

func (f Frame) String() string {
	if f == NoFrame {
		return "NoFrame"
	}
	return fmt.Sprintf("Frame%d", int8(f))
}

// IsValid returns whether f can be written to a GFF frame column.
func (f Frame) IsValid() bool { return NoFrame <= f && f <= Frame2 }

// DecodeFrame returns the Frame represented by text. The sentinel decodes
// to NoFrame.
func DecodeFrame(text string) (Frame, error) {
	if len(text) == 1 {
		switch c := text[0]; c {
		case '0', '1', '2':
			return Frame(c - '0'), nil
		case Sentinel:
			return NoFrame, nil
		}
	}
	return NoFrame, &FrameError{Text: text}
}

// EncodeFrame returns the character for f. Values other than NoFrame and
// Frame0 to Frame2 return a *FrameValueError and no character.
func EncodeFrame(f Frame) (byte, error) {
	if !f.IsValid() {
		return 0, &FrameValueError{Value: f}
	}
	if f == NoFrame {
		return Sentinel, nil
	}
	return '0' + byte(f), nil
}
