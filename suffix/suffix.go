// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package suffix builds and filters suffix arrays over corpus buffers.
//
// Suffix sorting itself is delegated to the divsufsort implementation
// from the kanzi library; this package narrows the raw array down to
// the anchor positions that substring enumeration may report and
// derives the longest-common-prefix array that drives it.
package suffix

import (
	"github.com/flanglet/kanzi-go/v2/transform"

	"github.com/dsnet/substrings/corpus"
)

// Sort returns the suffix array of data: a permutation of
// [0, len(data)) such that the denoted suffixes are in ascending
// lexicographic order over raw bytes.
func Sort(data []byte) ([]int32, error) {
	sa := make([]int32, len(data))
	if len(data) < 2 {
		return sa, nil
	}
	dss, err := transform.NewDivSufSort()
	if err != nil {
		return nil, err
	}
	dss.ComputeSuffixArray(data, sa)
	return sa, nil
}

// Filter compacts sa in place with one stable left-to-right pass,
// keeping only offsets eligible as enumeration anchors. An offset is
// dropped if it is not a multiple of stride, if it addresses a
// delimiter byte, or if it addresses a UTF-8 continuation byte.
// It returns the number of retained entries.
func Filter(sa []int32, data []byte, stride int) int {
	n := 0
	for _, off := range sa {
		if int(off)%stride != 0 {
			continue
		}
		b := data[off]
		if b == corpus.Delimiter {
			continue
		}
		if b&0xc0 == 0x80 {
			continue
		}
		sa[n] = off
		n++
	}
	return n
}
