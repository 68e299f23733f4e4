/*
 * tinyos - Big-endian word codec and bounds-checked byte access.
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

// Package byteutil holds the low-level, allocation-free helpers every other
// package builds on: big-endian word packing and bounds-checked slice
// access. Every function here is pure and total except where the doc
// comment says it returns ErrAccess.
package byteutil

import "errors"

// ErrAccess is returned whenever a requested offset or range falls outside
// the bounds of the backing byte slice.
var ErrAccess = errors.New("byteutil: access out of range")

// U16FromBE interprets hi, lo as a big-endian 16-bit word.
func U16FromBE(hi, lo byte) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

// U16ToBE splits w into its big-endian byte pair.
func U16ToBE(w uint16) (hi, lo byte) {
	return byte(w >> 8), byte(w)
}

// U32FromBE interprets a 4-byte big-endian sequence as a uint32.
func U32FromBE(b [4]byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

// U32ToBE splits v into its big-endian byte sequence.
func U32ToBE(v uint32) [4]byte {
	return [4]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

// IsAligned reports whether addr is a multiple of k.
func IsAligned(addr, k int) bool {
	return addr%k == 0
}

// GetSlice returns buf[lo:hi], or ErrAccess if the range is invalid or runs
// past the end of buf.
func GetSlice(buf []byte, lo, hi int) ([]byte, error) {
	if lo < 0 || lo > hi || hi > len(buf) {
		return nil, ErrAccess
	}
	return buf[lo:hi], nil
}

// GetU16At reads the big-endian word at buf[addr:addr+2].
func GetU16At(buf []byte, addr int) (uint16, error) {
	s, err := GetSlice(buf, addr, addr+2)
	if err != nil {
		return 0, err
	}
	return U16FromBE(s[0], s[1]), nil
}

// SetU16At writes val as a big-endian word into buf[addr:addr+2].
func SetU16At(buf []byte, addr int, val uint16) error {
	s, err := GetSlice(buf, addr, addr+2)
	if err != nil {
		return err
	}
	hi, lo := U16ToBE(val)
	s[0], s[1] = hi, lo
	return nil
}
