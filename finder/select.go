// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package finder

import (
	"bytes"
	"sort"
)

// printUnique emits the accumulated matches after superstring
// deduplication: visiting shortest-first, a candidate is dropped if it
// contains a string already kept. Survivors print in lexicographic
// order.
func (f *Finder) printUnique(p *printer) {
	sort.Slice(f.matches, func(i, j int) bool {
		return compareLength(f.matches[i], f.matches[j])
	})

	var unique []Match
	for _, m := range f.matches {
		contains := false
		for _, u := range unique {
			if bytes.Contains(m.Text, u.Text) {
				contains = true
				break
			}
		}
		if contains {
			continue
		}
		unique = append(unique, m)
	}

	sort.Slice(unique, func(i, j int) bool {
		return bytes.Compare(unique[i].Text, unique[j].Text) < 0
	})
	for _, m := range unique {
		p.text(m.Text)
		p.writeByte('\n')
	}
}

// findCover greedily covers the positive documents with the
// accumulated matches in best-score order. Each match removes every
// remaining document it occurs in; a line is printed when the removal
// count exceeds the configured threshold. Selection stops once no
// documents remain.
func (f *Finder) findCover(p *printer) {
	sort.Slice(f.matches, func(i, j int) bool {
		return compareScore(f.matches[i], f.matches[j])
	})

	remaining := make([][]byte, f.pos.NumDocuments())
	for i := range remaining {
		remaining[i] = f.pos.Document(i)
	}

	for _, m := range f.matches {
		if len(remaining) == 0 {
			break
		}

		hits := 0
		kept := remaining[:0]
		for _, doc := range remaining {
			if bytes.Contains(doc, m.Text) {
				hits++
			} else {
				kept = append(kept, doc)
			}
		}
		remaining = kept

		if hits > f.conf.CoverThreshold {
			p.printf("%d\t", hits)
			p.text(m.Text)
			p.writeByte('\n')
		}
	}
}
