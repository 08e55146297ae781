// Copyright ©2014 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// gffer converts the JSON output of igor to GFF.
//
// Each input line holds one repeat family as a JSON array of features with
// 0-based half-open coordinates. Features are written with 1-based
// coordinates and a Family attribute holding the 0-based line number.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/biogo/biogo/feat"
	"github.com/biogo/biogo/seq"

	"github.com/biogo/gffcodec/gff"
)

type feature struct {
	Chr    string     `json:"C"`
	Start  int        `json:"S"`
	End    int        `json:"E"`
	Orient seq.Strand `json:"O"`
}

var (
	source = flag.String("source", "igor", "source column of written features.")
	ftype  = flag.String("feature", "repeat", "feature column of written features.")
	help   = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}

	b := bufio.NewWriter(os.Stdout)
	defer b.Flush()
	err := convert(gff.NewWriter(b), os.Stdin, *source, *ftype)
	if err != nil {
		log.Fatalf("error: %v", err)
	}
}

func convert(w *gff.Writer, in io.Reader, source, ftype string) error {
	r := bufio.NewReader(in)
	rec := &gff.Record{
		Source:    source,
		Feature:   ftype,
		FeatFrame: gff.NoFrame,
	}
	var v []*feature
	for fam := 0; ; fam++ {
		l, err := r.ReadBytes('\n')
		if err != nil && (err != io.EOF || len(l) == 0) {
			if err == io.EOF {
				return nil
			}
			return err
		}
		v = v[:0]
		err = json.Unmarshal(l, &v)
		if err != nil {
			return fmt.Errorf("family %d: %w", fam, err)
		}
		for _, f := range v {
			if f.Start < 0 || f.End < f.Start {
				return fmt.Errorf("family %d: invalid feature range %s:[%d,%d)", fam, f.Chr, f.Start, f.End)
			}
			rec.SeqName = f.Chr
			rec.FeatStart = uint64(feat.ZeroToOne(f.Start))
			rec.FeatEnd = uint64(f.End)
			rec.FeatStrand = gff.StrandOf(feat.Orientation(f.Orient))
			rec.FeatAttributes = fmt.Sprintf("Family=%d", fam)
			_, err := w.Write(rec)
			if err != nil {
				return fmt.Errorf("family %d: %w", fam, err)
			}
		}
	}
}
