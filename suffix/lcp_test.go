// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package suffix

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// naiveLCP directly measures the delimiter-capped common prefix of the
// suffixes at offsets a and b.
func naiveLCP(data []byte, a, b int) int32 {
	var n int32
	for a+int(n) < len(data) && b+int(n) < len(data) &&
		data[a+int(n)] != 0x00 && data[a+int(n)] == data[b+int(n)] {
		n++
	}
	return n
}

func TestLCP(t *testing.T) {
	vectors := []struct {
		data string
		lcp  []int32
	}{{
		data: "banana",
		// sa: a, ana, anana, banana, na, nana
		lcp: []int32{1, 3, 0, 0, 2, 0},
	}, {
		data: "abcabc\x00",
		// anchors: abc, abcabc, bc, bcabc, c, cabc
		lcp: []int32{3, 0, 2, 0, 1, 0},
	}, {
		data: "aaaa",
		// The delimiter-free run exercises the h back-off.
		lcp: []int32{1, 2, 3, 0},
	}, {
		data: "a\x00a\x00",
		// Equal suffixes, but prefixes never extend past a delimiter.
		lcp: []int32{1, 0},
	}, {
		data: "",
		lcp:  []int32{},
	}}

	for i, v := range vectors {
		data := []byte(v.data)
		sa, err := Sort(data)
		if err != nil {
			t.Fatalf("test %d, unexpected Sort error: %v", i, err)
		}
		count := Filter(sa, data, 1)
		got := LCP(data, sa, count)
		if d := cmp.Diff(v.lcp, got); d != "" {
			t.Errorf("test %d, mismatching LCP array (-want +got):\n%s", i, d)
		}
	}
}

func TestLCPCrossCheck(t *testing.T) {
	vectors := []string{
		"banana\x00banana\x00",
		"the cat sat\x00the cat ran\x00",
		"hello world\x00hello there\x00hello you\x00",
		"abracadabra",
		"aaa\x00aa\x00a\x00",
	}

	for i, v := range vectors {
		data := []byte(v)
		sa, err := Sort(data)
		if err != nil {
			t.Fatalf("test %d, unexpected Sort error: %v", i, err)
		}
		count := Filter(sa, data, 1)

		want := make([]int32, count)
		for x := 0; x+1 < count; x++ {
			want[x] = naiveLCP(data, int(sa[x]), int(sa[x+1]))
		}
		got := LCP(data, sa, count)
		if d := cmp.Diff(want, got); d != "" {
			t.Errorf("test %d, mismatching LCP array (-want +got):\n%s", i, d)
		}
	}
}
