// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package finder

import (
	"bytes"
	"sort"
)

// searchWindow is how many suffixes each bounds search examines before
// widening. Candidates from one interval arrive in lexicographic order,
// so the next bound is usually within one window of the cursor.
const searchWindow = 1024

// suffixLess reports whether the suffix at offset r sorts before the
// candidate text when at most len(text) bytes are significant. A
// suffix that equals the candidate on its whole remaining tail but is
// shorter still sorts before it.
func suffixLess(data []byte, r int, text []byte) bool {
	rest := data[r:]
	if len(rest) > len(text) {
		rest = rest[:len(text)]
	}
	switch cmp := bytes.Compare(rest, text[:len(rest)]); {
	case cmp != 0:
		return cmp < 0
	default:
		return len(data)-r < len(text)
	}
}

// suffixPast reports whether the candidate text sorts strictly before
// the suffix at offset r, considering only a len(text)-byte prefix.
// Within the upper-bound scan every examined suffix already sorts at or
// after the candidate, so any suffix without a full matching prefix
// terminates the run.
func suffixPast(data []byte, r int, text []byte) bool {
	if len(data)-r < len(text) {
		return true
	}
	return !bytes.Equal(data[r:r+len(text)], text)
}

// negRange returns the half-open range [lo, hi) of negative-corpus
// suffixes whose len(text)-byte prefix equals text. Rather than
// searching the whole array, it expands a window of searchWindow
// suffixes at a time from the cursor until a bound lands strictly
// inside the window or the array is exhausted, then advances the
// cursor to the lower bound.
func (f *Finder) negRange(pos *int, text []byte) (lo, hi int) {
	data := f.neg.Data

	lo = *pos
	for {
		end := lo + searchWindow
		if end > f.negCount {
			end = f.negCount
		}
		i := lo + sort.Search(end-lo, func(k int) bool {
			return !suffixLess(data, int(f.negSA[lo+k]), text)
		})
		lo = i
		if i < end || end == f.negCount {
			break
		}
	}
	*pos = lo

	hi = lo
	for {
		end := hi + searchWindow
		if end > f.negCount {
			end = f.negCount
		}
		i := hi + sort.Search(end-hi, func(k int) bool {
			return suffixPast(data, int(f.negSA[hi+k]), text)
		})
		hi = i
		if i < end || end == f.negCount {
			break
		}
	}
	return lo, hi
}

// negDocCount counts the distinct negative-corpus documents among the
// suffixes in [lo, hi).
func (f *Finder) negDocCount(lo, hi int) int {
	docs := make(map[int]struct{})
	for i := lo; i < hi; i++ {
		docs[f.neg.DocumentAt(int(f.negSA[i]))] = struct{}{}
	}
	return len(docs)
}
