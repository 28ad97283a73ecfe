// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package corpus models a byte corpus as a contiguous buffer of
// NUL-delimited documents and provides the derived structures used
// for substring mining: document bounds and n-gram length histograms.
package corpus

import (
	"bytes"
	"sort"
)

// Delimiter terminates each document within a corpus buffer.
const Delimiter = 0x00

// Corpus is an in-memory corpus. Data holds the raw bytes, and
// DocumentEnds holds the offset of each document terminator in strictly
// increasing order. If the buffer does not end on a delimiter, the last
// entry is the buffer length. A non-empty corpus has at least one entry.
type Corpus struct {
	Data         []byte
	DocumentEnds []int

	ngrams []int
}

// New splits data into documents at each Delimiter byte.
func New(data []byte) *Corpus {
	c := &Corpus{Data: data}
	for off := 0; off < len(data); {
		i := bytes.IndexByte(data[off:], Delimiter)
		if i < 0 {
			c.DocumentEnds = append(c.DocumentEnds, len(data))
			break
		}
		c.DocumentEnds = append(c.DocumentEnds, off+i)
		off += i + 1
	}
	return c
}

// NumDocuments returns the number of documents in the corpus.
func (c *Corpus) NumDocuments() int { return len(c.DocumentEnds) }

// DocumentAt returns the index of the document containing the byte at
// the given offset. A delimiter byte belongs to the document it ends.
func (c *Corpus) DocumentAt(offset int) int {
	return sort.SearchInts(c.DocumentEnds, offset)
}

// Document returns the contents of document i without its terminator.
func (c *Corpus) Document(i int) []byte {
	start := 0
	if i > 0 {
		start = c.DocumentEnds[i-1] + 1
	}
	return c.Data[start:c.DocumentEnds[i]]
}

// NGramCounts returns a histogram over n-gram lengths: element L is the
// number of documents at least L bytes long, which serves as the prior
// mass for scoring. Element 0 is unused. The histogram is computed once
// and cached.
func (c *Corpus) NGramCounts() []int {
	if c.ngrams != nil {
		return c.ngrams
	}
	max := 0
	for i := range c.DocumentEnds {
		if n := len(c.Document(i)); n > max {
			max = n
		}
	}
	counts := make([]int, max+1)
	for i := range c.DocumentEnds {
		for l := 1; l <= len(c.Document(i)); l++ {
			counts[l]++
		}
	}
	c.ngrams = counts
	return counts
}
