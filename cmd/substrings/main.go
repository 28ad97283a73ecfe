// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// substrings mines a corpus of documents for substrings that repeat in
// one corpus while staying rare in another.
//
// Example usage:
//	$ substrings -unique spam.txt ham.txt
//
// Each input file holds NUL-delimited documents and may be compressed
// with gzip, bzip2, xz, or zstd. The file name "-" reads from stdin.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dsnet/golib/unitconv"

	"github.com/dsnet/substrings/corpus"
	"github.com/dsnet/substrings/finder"
)

func main() {
	conf := finder.Config{}
	flag.IntVar(&conf.MinCount, "threshold0", 2, "Minimum number of occurrences in the positive corpus")
	flag.IntVar(&conf.MaxNegative, "threshold1", -1, "Maximum number of occurrences in the negative corpus (negative for no limit)")
	flag.Float64Var(&conf.Threshold, "threshold", 0, "Minimum posterior probability for a substring to be reported")
	flag.IntVar(&conf.TopCount, "top", 0, "Keep only this many of the best-scoring substrings (0 for all)")
	flag.IntVar(&conf.CoverThreshold, "cover-threshold", 0, "Print a cover line only if its substring hits more than this many documents")
	flag.Float64Var(&conf.PriorBias, "prior", 1.0, "Weight of the prior when estimating posterior probabilities")
	flag.BoolVar(&conf.Documents, "document", false, "Count each substring once per document rather than once per occurrence")
	flag.BoolVar(&conf.Probability, "probability", false, "Report posterior probabilities instead of occurrence counts")
	flag.BoolVar(&conf.Words, "words", false, "Report only substrings that start and end on word boundaries")
	flag.BoolVar(&conf.Color, "color", false, "Treat input as alternating attribute and character byte pairs")
	flag.BoolVar(&conf.Unique, "unique", false, "Report a minimal set of substrings with no string containing another")
	flag.BoolVar(&conf.Cover, "cover", false, "Report a greedy set of substrings that covers the positive documents")
	flag.BoolVar(&conf.SkipSameCountPrefixes, "skip-prefixes", false, "Suppress prefixes that occur exactly as often as a longer substring")
	verbose := flag.Bool("verbose", false, "Print corpus statistics to stderr")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] positive-file [negative-file]\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 || flag.NArg() > 2 {
		flag.Usage()
		os.Exit(1)
	}

	positive, err := loadFile(flag.Arg(0))
	if err != nil {
		die("error loading positive corpus: %v", err)
	}
	var negative []byte
	if flag.NArg() == 2 {
		if negative, err = loadFile(flag.Arg(1)); err != nil {
			die("error loading negative corpus: %v", err)
		}
	}

	if fi, err := os.Stdout.Stat(); err == nil {
		conf.TTY = fi.Mode()&os.ModeCharDevice != 0
	}

	f, err := finder.New(positive, negative, conf)
	if err != nil {
		die("error in configuration: %v", err)
	}
	if *verbose {
		printStats(os.Stderr, positive, negative)
	}

	bw := bufio.NewWriter(os.Stdout)
	if err := f.Run(bw); err != nil {
		die("error searching corpus: %v", err)
	}
	if err := bw.Flush(); err != nil {
		die("error writing output: %v", err)
	}
}

// loadFile reads a whole corpus file, transparently decompressing it.
// The name "-" reads from stdin.
func loadFile(name string) ([]byte, error) {
	var r io.Reader = os.Stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return corpus.Load(r)
}

func printStats(w io.Writer, positive, negative []byte) {
	stat := func(label string, data []byte) {
		c := corpus.New(data)
		fmt.Fprintf(w, "%s corpus: %sB in %d documents\n",
			label, unitconv.FormatPrefix(float64(len(data)), unitconv.Base1024, 2), c.NumDocuments())
	}
	stat("positive", positive)
	if negative != nil {
		stat("negative", negative)
	}
}

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
