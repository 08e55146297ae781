// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// gffrw is an example client of gffcodec/gff. It reads a set of GFF lines,
// by default two UniProt annotations, and prints the decoded records. It
// then writes the same two annotations, constructed in memory, as
// canonical GFF.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/biogo/biogo/io/featio"

	"github.com/biogo/gffcodec/gff"
)

var uniprot = `P0A7B8	UniProtKB	Initiator methionine	1	1	.	+	.	Note=Removed,Obsolete;ID=test
P0A7B8	UniProtKB	Chain	2	176	50	+	.	Note=ATP-dependent protease subunit HslV;ID=PRO_0000148105
`

var records = []*gff.Record{
	{
		SeqName:        "P0A7B8",
		Source:         "UniProtKB",
		Feature:        "Initiator methionine",
		FeatStart:      1,
		FeatEnd:        1,
		FeatStrand:     gff.Forward,
		FeatFrame:      gff.NoFrame,
		FeatAttributes: "Note=Removed,Obsolete;ID=test",
	},
	{
		SeqName:        "P0A7B8",
		Source:         "UniProtKB",
		Feature:        "Chain",
		FeatStart:      2,
		FeatEnd:        176,
		FeatScore:      gff.Score(50),
		FeatStrand:     gff.Forward,
		FeatFrame:      gff.NoFrame,
		FeatAttributes: "Note=ATP-dependent protease subunit HslV;ID=PRO_0000148105",
	},
}

var (
	inf  = flag.String("in", "", "GFF file to read. Defaults to the built in UniProt example.")
	outf = flag.String("out", "", "output file name. Defaults to stdout.")
	help = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}

	var in io.Reader = strings.NewReader(uniprot)
	if *inf != "" {
		f, err := os.Open(*inf)
		if err != nil {
			log.Fatalf("failed to open %q: %v", *inf, err)
		}
		defer f.Close()
		in = f
	}

	var out *os.File
	if *outf == "" {
		out = os.Stdout
	} else {
		var err error
		out, err = os.Create(*outf)
		if err != nil {
			log.Fatalf("failed to open %q: %v", *outf, err)
		}
		defer out.Close()
	}
	b := bufio.NewWriter(out)
	defer b.Flush()

	err := read(b, in)
	if err != nil {
		log.Fatalf("failed during read: %v", err)
	}
	err = write(b, records)
	if err != nil {
		log.Fatalf("failed during write: %v", err)
	}
}

// read prints a summary of each record read from r to w.
func read(w io.Writer, r io.Reader) error {
	sc := featio.NewScanner(gff.NewReader(r))
	for sc.Next() {
		rec := sc.Feat().(*gff.Record)
		score := "none"
		if rec.FeatScore != nil {
			score = fmt.Sprint(*rec.FeatScore)
		}
		_, err := fmt.Fprintf(w, "SeqName:%s Source:%s Feature:%q Start:%d End:%d Score:%s Strand:%v Frame:%v Attributes:%q\n",
			rec.SeqName, rec.Source, rec.Feature, rec.FeatStart, rec.FeatEnd, score, rec.FeatStrand, rec.FeatFrame, rec.FeatAttributes)
		if err != nil {
			return err
		}
	}
	return sc.Error()
}

// write writes recs to w as GFF lines.
func write(w io.Writer, recs []*gff.Record) error {
	gw := gff.NewWriter(w)
	for _, r := range recs {
		_, err := gw.Write(r)
		if err != nil {
			return fmt.Errorf("failed to write %s record on %s: %w", r.Feature, r.SeqName, err)
		}
	}
	return nil
}
