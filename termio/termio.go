/*
 * tinyos - Raw-mode single-byte terminal I/O for CharPrint/CharRead.
 *
 * Copyright 2026, The tinyos Authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package termio abstracts the CharPrint/CharRead capability behind a
// byte-sink/byte-source interface, so a foreground process gets the real
// terminal (in raw mode, one byte at a time, no line buffering or local
// echo) while a background process gets no terminal at all.
package termio

import (
	"bufio"
	"io"
	"os"

	"golang.org/x/term"
)

// IO is the byte-read/byte-write capability an executor needs for
// CharPrint and CharRead.
type IO interface {
	ReadByte() (byte, error)
	WriteByte(b byte) error
}

// Terminal is an IO backed by the process's controlling terminal, switched
// to raw mode for the lifetime of the Terminal so CharRead sees one raw
// byte at a time instead of a line-buffered, echoed read.
type Terminal struct {
	in     *os.File
	out    io.Writer
	state  *term.State
	reader *bufio.Reader
}

// Open puts stdin into raw mode, if it is a real terminal, and returns a
// Terminal writing to stdout. Call Close to restore the terminal's prior
// mode. When stdin is not a terminal (e.g. piped input in a test harness),
// Open falls back to plain buffered reads without raw mode.
func Open() (*Terminal, error) {
	t := &Terminal{in: os.Stdin, out: os.Stdout, reader: bufio.NewReader(os.Stdin)}
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		state, err := term.MakeRaw(fd)
		if err != nil {
			return nil, err
		}
		t.state = state
	}
	return t, nil
}

// Close restores the terminal to the mode it was in before Open, if it was
// put into raw mode at all.
func (t *Terminal) Close() error {
	if t.state == nil {
		return nil
	}
	return term.Restore(int(t.in.Fd()), t.state)
}

// ReadByte reads one raw byte from the terminal.
func (t *Terminal) ReadByte() (byte, error) {
	return t.reader.ReadByte()
}

// WriteByte writes one byte to the terminal.
func (t *Terminal) WriteByte(b byte) error {
	_, err := t.out.Write([]byte{b})
	return err
}
