// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package finder

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dsnet/substrings/internal/testutil"
)

// base returns a configuration with the usual interesting thresholds:
// substrings must repeat in the positive corpus, the negative ceiling
// is off, and the prior is uniform.
func base() Config {
	return Config{MinCount: 2, MaxNegative: -1, PriorBias: 1}
}

func mustRun(t *testing.T, positive, negative []byte, conf Config) string {
	t.Helper()
	f, err := New(positive, negative, conf)
	if err != nil {
		t.Fatalf("unexpected New error: %v", err)
	}
	var buf bytes.Buffer
	if err := f.Run(&buf); err != nil {
		t.Fatalf("unexpected Run error: %v", err)
	}
	return buf.String()
}

func TestRun(t *testing.T) {
	vectors := []struct {
		name     string
		positive []byte
		negative []byte
		conf     func(Config) Config
		output   string
	}{{
		name:     "Plain",
		positive: testutil.Corpus("abcabc"),
		conf:     func(c Config) Config { return c },
		output: "2\t0\ta\n" +
			"2\t0\tab\n" +
			"2\t0\tabc\n" +
			"2\t0\tb\n" +
			"2\t0\tbc\n" +
			"2\t0\tc\n",
	}, {
		name:     "SkipSameCountPrefixes",
		positive: testutil.Corpus("abcabc"),
		conf: func(c Config) Config {
			c.SkipSameCountPrefixes = true
			return c
		},
		output: "2\t0\tabc\n" +
			"2\t0\tbc\n" +
			"2\t0\tc\n",
	}, {
		name:     "Words",
		positive: testutil.Corpus("the cat sat", "the cat ran"),
		conf: func(c Config) Config {
			c.Words = true
			return c
		},
		output: "2\t0\tcat\n" +
			"2\t0\tthe\n" +
			"2\t0\tthe cat\n",
	}, {
		name:     "NegativeCeiling",
		positive: testutil.Corpus("abcabc"),
		negative: testutil.Corpus("abc"),
		conf: func(c Config) Config {
			c.MaxNegative = 0
			return c
		},
		output: "",
	}, {
		name:     "NegativeCounts",
		positive: testutil.Corpus("abcabc"),
		negative: testutil.Corpus("abc"),
		conf: func(c Config) Config {
			c.SkipSameCountPrefixes = true
			return c
		},
		output: "2\t1\tabc\n" +
			"2\t1\tbc\n" +
			"2\t1\tc\n",
	}, {
		name:     "Documents",
		positive: testutil.Corpus("ab", "ab ab"),
		conf: func(c Config) Config {
			c.Documents = true
			return c
		},
		output: "2\t0\ta\n" +
			"2\t0\tab\n" +
			"2\t0\tb\n",
	}, {
		name:     "Probability",
		positive: testutil.Corpus("ab", "ab"),
		negative: testutil.Corpus("ab"),
		conf: func(c Config) Config {
			c.Probability = true
			return c
		},
		output: "0.666666667\ta\n" +
			"0.666666667\tab\n" +
			"0.666666667\tb\n",
	}, {
		name:     "ThresholdWithoutProbability",
		positive: testutil.Corpus("ab", "ab"),
		negative: testutil.Corpus("ab"),
		conf: func(c Config) Config {
			c.Threshold = 0.7
			return c
		},
		output: "",
	}, {
		name:     "Unique",
		positive: testutil.Corpus("xy", "xy", "ab", "ab"),
		conf: func(c Config) Config {
			c.Unique = true
			return c
		},
		output: "b\ny\n",
	}, {
		name:     "UniqueBanana",
		positive: testutil.Corpus("banana", "banana"),
		conf: func(c Config) Config {
			c.Unique = true
			return c
		},
		output: "a\n",
	}, {
		name:     "UniqueTopK",
		positive: testutil.Corpus("q", "q", "q", "w", "w", "e", "e", "e", "e"),
		conf: func(c Config) Config {
			c.Unique = true
			c.TopCount = 2
			return c
		},
		output: "e\nq\n",
	}, {
		name:     "Cover",
		positive: testutil.Corpus("hello world", "hello there", "hello you"),
		conf: func(c Config) Config {
			c.Cover = true
			c.Probability = true
			c.CoverThreshold = 1
			return c
		},
		output: "3\thello \n",
	}, {
		name:     "Color",
		positive: testutil.Corpus("BaBbBaBb"),
		conf: func(c Config) Config {
			c.Color = true
			return c
		},
		output: "2\t0\tBa\x1b[00m\n" +
			"2\t0\tBaBb\x1b[00m\n" +
			"2\t0\tBb\x1b[00m\n",
	}, {
		name:     "EmptyPositive",
		positive: nil,
		conf:     func(c Config) Config { return c },
		output:   "",
	}, {
		name:     "NoRepeats",
		positive: testutil.Corpus("abcdefg"),
		conf:     func(c Config) Config { return c },
		output:   "",
	}}

	for _, v := range vectors {
		t.Run(v.name, func(t *testing.T) {
			got := mustRun(t, v.positive, v.negative, v.conf(base()))
			if d := cmp.Diff(v.output, got); d != "" {
				t.Errorf("mismatching output (-want +got):\n%s", d)
			}
		})
	}
}

func TestNew(t *testing.T) {
	if _, err := New(nil, nil, Config{Unique: true, Cover: true}); err != ErrConflictingModes {
		t.Errorf("mismatching error: got %v, want %v", err, ErrConflictingModes)
	}
	if _, err := New(nil, nil, Config{PriorBias: -1}); err != ErrNegativePrior {
		t.Errorf("mismatching error: got %v, want %v", err, ErrNegativePrior)
	}
}

func TestRunIdempotent(t *testing.T) {
	f, err := New(testutil.Corpus("banana", "band", "bandana"), testutil.Corpus("ban"), Config{
		MinCount: 2, MaxNegative: -1, PriorBias: 1, Unique: true,
	})
	if err != nil {
		t.Fatalf("unexpected New error: %v", err)
	}

	var buf0, buf1 bytes.Buffer
	if err := f.Run(&buf0); err != nil {
		t.Fatalf("unexpected Run error: %v", err)
	}
	if err := f.Run(&buf1); err != nil {
		t.Fatalf("unexpected Run error: %v", err)
	}
	if !bytes.Equal(buf0.Bytes(), buf1.Bytes()) {
		t.Errorf("output mismatch between runs:\nfirst:  %q\nsecond: %q", buf0.Bytes(), buf1.Bytes())
	}
}

func TestRunSelfNegative(t *testing.T) {
	// With identical corpora, a substring can never be rarer in the
	// negative corpus than in the positive one.
	data := testutil.Corpus("banana", "band", "bandana")
	out := mustRun(t, data, data, base())

	for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		fields := strings.SplitN(line, "\t", 3)
		if len(fields) != 3 {
			t.Fatalf("malformed line: %q", line)
		}
		cntA, err := strconv.Atoi(fields[0])
		if err != nil {
			t.Fatalf("malformed count %q: %v", fields[0], err)
		}
		cntB, err := strconv.Atoi(fields[1])
		if err != nil {
			t.Fatalf("malformed count %q: %v", fields[1], err)
		}
		if cntB < cntA {
			t.Errorf("line %q: negative count %d below positive count %d", line, cntB, cntA)
		}
	}
}

func TestRunWriteError(t *testing.T) {
	errTest := errors.New("test write failure")
	f, err := New(testutil.Corpus("abcabc"), nil, base())
	if err != nil {
		t.Fatalf("unexpected New error: %v", err)
	}
	bw := &testutil.BuggyWriter{W: io.Discard, N: 4, Err: errTest}
	if err := f.Run(bw); err != errTest {
		t.Errorf("mismatching error: got %v, want %v", err, errTest)
	}
}
