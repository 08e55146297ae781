// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gff

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/biogo/biogo/io/featio"
	"gopkg.in/check.v1"
)

const uniprot = "P0A7B8\tUniProtKB\tInitiator methionine\t1\t1\t.\t+\t.\tNote=Removed,Obsolete;ID=test\n" +
	"P0A7B8\tUniProtKB\tChain\t2\t176\t50\t+\t.\tNote=ATP-dependent protease subunit HslV;ID=PRO_0000148105\n"

var uniprotRecords = []*Record{
	{
		SeqName:        "P0A7B8",
		Source:         "UniProtKB",
		Feature:        "Initiator methionine",
		FeatStart:      1,
		FeatEnd:        1,
		FeatStrand:     Forward,
		FeatFrame:      NoFrame,
		FeatAttributes: "Note=Removed,Obsolete;ID=test",
	},
	{
		SeqName:        "P0A7B8",
		Source:         "UniProtKB",
		Feature:        "Chain",
		FeatStart:      2,
		FeatEnd:        176,
		FeatScore:      Score(50),
		FeatStrand:     Forward,
		FeatFrame:      NoFrame,
		FeatAttributes: "Note=ATP-dependent protease subunit HslV;ID=PRO_0000148105",
	},
}

func (s *S) TestReadWrite(c *check.C) {
	r := NewReader(strings.NewReader("##gff-version 3\n# comment\n\n" + uniprot))
	var got []*Record
	for {
		f, err := r.Read()
		if err == io.EOF {
			break
		}
		c.Assert(err, check.Equals, nil)
		got = append(got, f.(*Record))
	}
	c.Check(got, check.DeepEquals, uniprotRecords)

	var buf bytes.Buffer
	w := NewWriter(&buf)
	for _, rec := range got {
		_, err := w.Write(rec)
		c.Assert(err, check.Equals, nil)
	}
	c.Check(buf.String(), check.Equals, uniprot)
}

func (s *S) TestWriteRecords(c *check.C) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	for _, rec := range uniprotRecords {
		n, err := w.Write(rec)
		c.Assert(err, check.Equals, nil)
		c.Check(n, check.Equals, len(rec.String())+1)
	}
	c.Check(buf.String(), check.Equals, uniprot)

	_, err := w.Write(Sequence("chr1"))
	c.Check(err, check.Equals, ErrNotRecord)

	bad := *uniprotRecords[0]
	bad.FeatFrame = 3
	buf.Reset()
	_, err = w.Write(&bad)
	var fe *FrameValueError
	c.Check(errors.As(err, &fe), check.Equals, true)
	c.Check(buf.Len(), check.Equals, 0)
}

func (s *S) TestScanner(c *check.C) {
	// Strand synonyms and the CRLF terminator are normalised on write.
	in := "chr1\tsrc\texon\t10\t20\t.\tr\t0\tID=a\r\n" +
		"chr1\tsrc\texon\t30\t40\t1.50\tF\t2\tID=b\r\n" +
		"chr2\tsrc\tgene\t5\t500\t.\t?\t.\tID=c"
	want := "chr1\tsrc\texon\t10\t20\t.\t-\t0\tID=a\n" +
		"chr1\tsrc\texon\t30\t40\t1.5\t+\t2\tID=b\n" +
		"chr2\tsrc\tgene\t5\t500\t.\t.\t.\tID=c\n"

	var buf bytes.Buffer
	w := NewWriter(&buf)
	sc := featio.NewScanner(NewReader(strings.NewReader(in)))
	var n int
	for sc.Next() {
		_, err := w.Write(sc.Feat())
		c.Assert(err, check.Equals, nil)
		n++
	}
	c.Check(sc.Error(), check.Equals, nil)
	c.Check(n, check.Equals, 3)
	c.Check(buf.String(), check.Equals, want)

	// The canonical form is a fixed point.
	buf2 := &bytes.Buffer{}
	w = NewWriter(buf2)
	sc = featio.NewScanner(NewReader(strings.NewReader(want)))
	for sc.Next() {
		_, err := w.Write(sc.Feat())
		c.Assert(err, check.Equals, nil)
	}
	c.Check(sc.Error(), check.Equals, nil)
	c.Check(buf2.String(), check.Equals, want)
}

func (s *S) TestReadErrors(c *check.C) {
	for i, t := range []struct {
		in    string
		line  int
		cause error
	}{
		{
			in:    "# header\nP0A7B8\tUniProtKB\tChain\t2\t176\tx\t+\t.\tID=1\n",
			line:  2,
			cause: &ColumnError{Column: FieldScore, Text: "x", Err: &ScoreError{Text: "x"}},
		},
		{
			in:    "P0A7B8\tUniProtKB\tChain\t2\t176\t.\t+\t.\tID=1\nP0A7B8\tUniProtKB\tChain\t2\t176\t.\t+\t.\n",
			line:  2,
			cause: &ColumnCountError{Expected: 9, Actual: 8},
		},
		{
			in:    "P0A7B8 UniProtKB Chain 2 176 . + . ID=1\n",
			line:  1,
			cause: &ColumnCountError{Expected: 9, Actual: 1},
		},
	} {
		r := NewReader(strings.NewReader(t.in))
		var err error
		for err == nil {
			_, err = r.Read()
		}
		c.Check(err, check.DeepEquals, &LineError{Line: t.line, Err: t.cause}, check.Commentf("Test %d", i))
	}
}

func ExampleReader() {
	r := NewReader(strings.NewReader("##gff-version 3\n" + uniprot))
	for {
		f, err := r.Read()
		if err != nil {
			if err != io.EOF {
				fmt.Println(err)
			}
			break
		}
		rec := f.(*Record)
		score := "none"
		if rec.FeatScore != nil {
			score = fmt.Sprint(*rec.FeatScore)
		}
		fmt.Printf("%s %q [%d,%d) score:%s strand:%v frame:%v\n",
			rec.SeqName, rec.Feature, rec.Start(), rec.End(), score, rec.FeatStrand, rec.FeatFrame)
	}
	// Output:
	// P0A7B8 "Initiator methionine" [0,1) score:none strand:Forward frame:NoFrame
	// P0A7B8 "Chain" [1,176) score:50 strand:Forward frame:NoFrame
}

func ExampleWriter() {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	for _, rec := range uniprotRecords {
		_, err := w.Write(rec)
		if err != nil {
			fmt.Println(err)
			return
		}
	}
	for _, l := range strings.SplitAfter(buf.String(), "\n") {
		if l != "" {
			fmt.Printf("%q\n", l)
		}
	}
	fmt.Println(buf.String() == uniprot)
	// Output:
	// "P0A7B8\tUniProtKB\tInitiator methionine\t1\t1\t.\t+\t.\tNote=Removed,Obsolete;ID=test\n"
	// "P0A7B8\tUniProtKB\tChain\t2\t176\t50\t+\t.\tNote=ATP-dependent protease subunit HslV;ID=PRO_0000148105\n"
	// true
}
