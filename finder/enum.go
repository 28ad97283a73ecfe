// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package finder

import "github.com/dsnet/substrings/suffix"

// substring is a candidate produced by the interval walk: a window
// into the positive corpus together with its occurrence count (or
// distinct-document count in document mode).
type substring struct {
	off    int
	length int
	count  int
}

// enumerate walks the LCP array of the positive corpus and feeds every
// maximal repeated substring through the per-candidate pipeline:
// negative-corpus lookup, thresholds, scoring, then streaming output
// or match accumulation.
func (f *Finder) enumerate(p *printer) {
	if f.posCount == 0 {
		return
	}
	lcp := suffix.LCP(f.pos.Data, f.posSA, f.posCount)

	step := 1
	if f.conf.Color {
		step = 2
	}
	accumulate := f.conf.Unique || f.conf.Cover

	var stack []substring
	var docs map[int]struct{}
	if f.conf.Documents {
		docs = make(map[int]struct{})
	}

	previousPrefix := 0
	for i := 1; i < f.posCount; i++ {
		prefix := int(lcp[i-1])
		if prefix > previousPrefix {
			// One or more intervals open at rank i-1. Scan right to
			// find where each nested length closes, pushing a candidate
			// per closure. The two adjacent anchors seed the count.
			count := 2
			j := i + 1
			if f.conf.Documents {
				clear(docs)
				docs[f.pos.DocumentAt(int(f.posSA[i-1]))] = struct{}{}
				docs[f.pos.DocumentAt(int(f.posSA[i]))] = struct{}{}
			}

			for length := prefix; j <= f.posCount && length > previousPrefix; {
				if int(lcp[j-1]) < length {
					if len(stack) == 0 || !f.conf.SkipSameCountPrefixes ||
						stack[len(stack)-1].count != count {
						c := count
						if f.conf.Documents {
							c = len(docs)
						}
						stack = append(stack, substring{
							off:    int(f.posSA[i]),
							length: length,
							count:  c,
						})
					}
					length -= step
					continue
				}

				if f.conf.Documents {
					docs[f.pos.DocumentAt(int(f.posSA[j]))] = struct{}{}
				}
				count++
				j++
			}

			// Candidates pop shortest-first, all anchored at the same
			// text, so successive lookup queries are lexicographically
			// non-decreasing and the window cursor stays valid within
			// this interval. It must not carry over to the next one.
			negPos := 0
			for len(stack) > 0 {
				s := stack[len(stack)-1]
				stack = stack[:len(stack)-1]

				if s.count < f.conf.MinCount {
					continue
				}
				text := f.pos.Data[s.off : s.off+s.length]

				lo, hi := f.negRange(&negPos, text)
				negCount := hi - lo
				if f.conf.Documents {
					negCount = f.negDocCount(lo, hi)
				}
				if f.conf.MaxNegative >= 0 && negCount > f.conf.MaxNegative {
					continue
				}

				if f.conf.Words && !f.hasWordBoundaries(s) {
					continue
				}

				score := float64(s.count)
				if f.conf.Probability || f.conf.Threshold > 0 {
					post, ok := f.posterior(s.length, s.count, negCount)
					if !ok || post < f.conf.Threshold {
						continue
					}
					if f.conf.Probability {
						score = post
					}
				}

				if accumulate {
					f.accumulate(Match{Text: text, Score: score})
					continue
				}

				if f.conf.Probability {
					p.printf("%.9f\t", score)
				} else {
					p.printf("%d\t%d\t", s.count, negCount)
				}
				p.text(text)
				p.writeByte('\n')
			}
		}

		previousPrefix = prefix
	}
}

// hasWordBoundaries reports whether the candidate starts at the buffer
// start or after whitespace, and ends at the buffer end or before
// whitespace.
func (f *Finder) hasWordBoundaries(s substring) bool {
	data := f.pos.Data
	if s.off > 0 && !isSpace(data[s.off-1]) {
		return false
	}
	if end := s.off + s.length; end < len(data) && !isSpace(data[end]) {
		return false
	}
	return true
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
