// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package corpus

import (
	"bufio"
	"bytes"
	"io"

	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

var (
	magicGzip  = []byte{0x1f, 0x8b}
	magicBzip2 = []byte("BZh")
	magicXZ    = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
	magicZstd  = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

func hasMagic(buf, magic []byte) bool {
	return len(buf) >= len(magic) && bytes.Equal(buf[:len(magic)], magic)
}

// Load reads an entire corpus from r. Inputs whose leading bytes carry
// a gzip, bzip2, xz, or zstd magic number are decompressed
// transparently; anything else is read verbatim.
func Load(r io.Reader) ([]byte, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(len(magicXZ))
	if err != nil && err != io.EOF {
		return nil, err
	}
	switch {
	case hasMagic(magic, magicGzip):
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return io.ReadAll(zr)
	case hasMagic(magic, magicBzip2):
		zr, err := bzip2.NewReader(br, nil)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return io.ReadAll(zr)
	case hasMagic(magic, magicXZ):
		zr, err := xz.NewReader(br)
		if err != nil {
			return nil, err
		}
		return io.ReadAll(zr)
	case hasMagic(magic, magicZstd):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return io.ReadAll(zr)
	}
	return io.ReadAll(br)
}
