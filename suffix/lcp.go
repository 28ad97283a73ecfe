// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package suffix

import "github.com/dsnet/substrings/corpus"

// LCP computes the longest-common-prefix array for the first count
// entries of the filtered suffix array sa. lcp[x] is the length of the
// common prefix of the suffixes at ranks x and x+1, never extending to
// or past a delimiter byte. The slot for the final rank is zero.
//
// This is Kasai's amortised-linear scheme: positions are visited in
// text order, and removing the leading byte of a suffix can shorten the
// following rank's shared prefix by at most one, so the running length
// h only needs to back off a single step between positions.
func LCP(data []byte, sa []int32, count int) []int32 {
	lcp := make([]int32, count)

	rank := make([]int32, len(data))
	for i := range rank {
		rank[i] = -1
	}
	for x := 0; x < count; x++ {
		rank[sa[x]] = int32(x)
	}

	h := 0
	for i := 0; i < len(data); i++ {
		x := rank[i]
		if x < 0 {
			if h > 0 {
				h--
			}
			continue
		}
		if int(x)+1 == count {
			h = 0
			continue
		}

		j := int(sa[x+1])
		for i+h < len(data) && j+h < len(data) &&
			data[i+h] != corpus.Delimiter && data[i+h] == data[j+h] {
			h++
		}
		lcp[x] = int32(h)

		if h > 0 {
			h--
		}
	}
	return lcp
}
