// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package finder

import (
	"fmt"
	"io"
)

// printer renders result lines to an io.Writer. The first write error
// sticks and suppresses all further output.
type printer struct {
	w     io.Writer
	color bool
	tty   bool
	err   error
}

func newPrinter(w io.Writer, color, tty bool) *printer {
	return &printer{w: w, color: color, tty: tty}
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) write(b []byte) {
	if p.err != nil {
		return
	}
	_, p.err = p.w.Write(b)
}

func (p *printer) writeByte(b byte) {
	p.write([]byte{b})
}

// text renders s with C-style escapes. In color mode bytes are
// consumed in pairs: on a TTY the first of each pair selects a
// foreground colour, emitted as an ANSI escape, and off a TTY it is
// written verbatim; the second is rendered with escapes. An unpaired
// final byte renders plainly. Coloured output is
// terminated with an attribute reset.
func (p *printer) text(s []byte) {
	for i := 0; i < len(s); i++ {
		if p.color && i+1 < len(s) {
			if p.tty {
				p.printf("\x1b[%d;1m", int(s[i])-'A'+30)
			} else {
				p.writeByte(s[i])
			}
			i++
		}
		p.escape(s[i])
	}
	if p.color {
		p.write([]byte("\x1b[00m"))
	}
}

// escape renders one byte: verbatim if printable ASCII or high-bit
// set, else as a C escape sequence or three-digit octal.
func (p *printer) escape(b byte) {
	if (b >= 0x20 && b < 0x7f) || b&0x80 != 0 {
		p.writeByte(b)
		return
	}

	var c byte
	switch b {
	case '\a':
		c = 'a'
	case '\b':
		c = 'b'
	case '\t':
		c = 't'
	case '\n':
		c = 'n'
	case '\v':
		c = 'v'
	case '\f':
		c = 'f'
	case '\r':
		c = 'r'
	default:
		p.printf("\\%03o", b)
		return
	}
	p.write([]byte{'\\', c})
}
