// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package finder

import (
	"bytes"
	"container/heap"
)

// Match is a substring that passed every filter, together with its
// score: the raw positive count, or the posterior in probability mode.
// Text is a view into the positive corpus buffer.
type Match struct {
	Text  []byte
	Score float64
}

// compareScore orders matches best-first: higher score, then longer
// text, then lexicographically smaller text.
func compareScore(a, b Match) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if len(a.Text) != len(b.Text) {
		return len(a.Text) > len(b.Text)
	}
	return bytes.Compare(a.Text, b.Text) < 0
}

// compareLength orders matches shortest-first with a lexicographic
// tie-break.
func compareLength(a, b Match) bool {
	if len(a.Text) != len(b.Text) {
		return len(a.Text) < len(b.Text)
	}
	return bytes.Compare(a.Text, b.Text) < 0
}

// posterior computes P(positive | substring) for a candidate of the
// given length and counts, with the configured additive prior. The
// second result is false when neither corpus has a document at least
// that long, which leaves the prior probability undefined.
func (f *Finder) posterior(length, count, negCount int) (float64, bool) {
	var n0, n1 int
	if g := f.pos.NGramCounts(); length < len(g) {
		n0 = g[length]
	}
	if g := f.neg.NGramCounts(); length < len(g) {
		n1 = g[length]
	}
	if n0+n1 == 0 {
		return 0, false
	}

	pA := float64(n0) / float64(n0+n1)
	return (float64(count) + f.conf.PriorBias) /
		(float64(count+negCount) + f.conf.PriorBias/pA), true
}

// matchHeap keeps the weakest match at the root so that a full top-K
// set can evict it on insertion.
type matchHeap []Match

func (h matchHeap) Len() int           { return len(h) }
func (h matchHeap) Less(i, j int) bool { return compareScore(h[j], h[i]) }
func (h matchHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *matchHeap) Push(x any) { *h = append(*h, x.(Match)) }

func (h *matchHeap) Pop() any {
	old := *h
	n := len(old)
	m := old[n-1]
	*h = old[:n-1]
	return m
}

// accumulate records a match for post-selection. With a TopCount bound
// a full set rejects the newcomer only when the weakest kept match has
// a strictly higher score; otherwise the weakest is evicted.
func (f *Finder) accumulate(m Match) {
	if f.conf.TopCount <= 0 {
		f.matches = append(f.matches, m)
		return
	}
	if len(f.matches) >= f.conf.TopCount {
		if f.matches[0].Score > m.Score {
			return
		}
		heap.Pop((*matchHeap)(&f.matches))
	}
	heap.Push((*matchHeap)(&f.matches), m)
}
