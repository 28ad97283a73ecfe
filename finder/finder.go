// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package finder mines substrings that occur frequently in a positive
// corpus and rarely in a negative one.
//
// The engine enumerates maximal repeated substrings of the positive
// corpus by walking the LCP array of its filtered suffix array, counts
// each candidate in the negative corpus with a windowed binary search,
// applies count and posterior-probability thresholds, and emits the
// survivors either as a stream or through one of the accumulating
// selection modes (top-K unique, greedy document cover).
package finder

import (
	"io"

	"github.com/dsnet/substrings/corpus"
	"github.com/dsnet/substrings/suffix"
)

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "finder: " + string(e) }

var (
	ErrConflictingModes error = Error("unique and cover modes conflict")
	ErrNegativePrior    error = Error("prior bias must not be negative")
)

// Config controls a single mining run. The zero value enumerates every
// repeated substring that does not occur in the negative corpus, since
// a zero MaxNegative is a ceiling of zero occurrences.
type Config struct {
	// MinCount is the minimum occurrence count in the positive corpus
	// for a substring to be considered.
	MinCount int

	// MaxNegative is the maximum occurrence count in the negative
	// corpus. A negative value disables the ceiling.
	MaxNegative int

	// Threshold is the minimum posterior probability that a substring
	// belongs to the positive corpus. A non-zero threshold applies even
	// when Probability output is off.
	Threshold float64

	// TopCount bounds the accumulated match set in unique mode to the
	// K best-scoring candidates. Zero keeps every candidate.
	TopCount int

	// CoverThreshold is the number of documents a substring must remove
	// in cover mode, strictly exceeded, for its line to be printed.
	CoverThreshold int

	// PriorBias is the additive prior used by posterior scoring.
	PriorBias float64

	// Documents counts distinct documents rather than occurrences.
	Documents bool

	// Probability emits the posterior instead of raw counts.
	Probability bool

	// Words restricts output to substrings flanked by whitespace.
	Words bool

	// Color treats the corpus as a stream of two-byte pairs, the first
	// byte of each being a colour attribute, and renders matches with
	// ANSI escapes when TTY is set.
	Color bool

	// Unique keeps only substrings that contain no other kept
	// substring, printed in lexicographic order.
	Unique bool

	// Cover greedily selects substrings until every positive document
	// containing any match is accounted for.
	Cover bool

	// SkipSameCountPrefixes suppresses the shorter members of a run of
	// nested candidates sharing one occurrence count. Implied by Unique
	// and Cover.
	SkipSameCountPrefixes bool

	// TTY gates ANSI escape emission in color mode.
	TTY bool
}

// Finder owns the two corpora and every array derived from them for
// the duration of a run. Substrings handed to the output are views
// into the positive corpus buffer.
type Finder struct {
	conf Config

	pos *corpus.Corpus
	neg *corpus.Corpus

	posSA    []int32
	negSA    []int32
	posCount int
	negCount int

	matches []Match
}

// New validates conf and binds it to the given corpora. The buffers
// must not be mutated while the finder is in use.
func New(positive, negative []byte, conf Config) (*Finder, error) {
	if conf.Unique && conf.Cover {
		return nil, ErrConflictingModes
	}
	if conf.PriorBias < 0 {
		return nil, ErrNegativePrior
	}
	if conf.Unique || conf.Cover {
		conf.SkipSameCountPrefixes = true
	}
	if !conf.Unique {
		conf.TopCount = 0
	}
	return &Finder{
		conf: conf,
		pos:  corpus.New(positive),
		neg:  corpus.New(negative),
	}, nil
}

// Run executes the full pipeline and writes result lines to w.
func (f *Finder) Run(w io.Writer) error {
	if err := f.prepare(); err != nil {
		return err
	}
	f.matches = f.matches[:0]

	p := newPrinter(w, f.conf.Color, f.conf.TTY)
	f.enumerate(p)

	switch {
	case f.conf.Cover:
		f.findCover(p)
	case f.conf.Unique:
		f.printUnique(p)
	}
	return p.err
}

// prepare builds and filters the suffix arrays of both corpora.
func (f *Finder) prepare() error {
	stride := 1
	if f.conf.Color {
		stride = 2
	}

	var err error
	if f.posSA, err = suffix.Sort(f.pos.Data); err != nil {
		return err
	}
	if f.negSA, err = suffix.Sort(f.neg.Data); err != nil {
		return err
	}
	f.posCount = suffix.Filter(f.posSA, f.pos.Data, stride)
	f.negCount = suffix.Filter(f.negSA, f.neg.Data, stride)
	return nil
}
