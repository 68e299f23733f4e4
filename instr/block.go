/*
 * tinyos - Fixed-capacity, alignment-enforced program image.
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

package instr

import (
	"errors"

	"github.com/rcornwell/tinyos/internal/byteutil"
)

// MaxInstructions bounds how many instructions a single program image may
// hold.
const MaxInstructions = 256

// MaxBlockBytes is the byte capacity of a program image.
const MaxBlockBytes = MaxInstructions * InstructionLen

// ErrMalformed is returned by NewBlock when the input is not a positive
// multiple of InstructionLen bytes, or exceeds MaxBlockBytes.
var ErrMalformed = errors.New("instr: program image malformed")

// ErrAccess is returned by InstructionAt when addr is unaligned or falls
// outside the instructions actually loaded into the block.
var ErrAccess = errors.New("instr: address out of range")

// Block is a per-process program image: an immutable, fixed-capacity,
// 4-byte-aligned sequence of instructions addressed by byte offset.
type Block struct {
	data  [MaxBlockBytes]byte
	count int // number of instructions actually loaded, <= MaxInstructions
}

// NewBlock deep-copies raw into a fixed-capacity Block. raw's length must be
// a positive multiple of InstructionLen and no larger than MaxBlockBytes.
func NewBlock(raw []byte) (*Block, error) {
	if len(raw) == 0 || len(raw)%InstructionLen != 0 || len(raw) > MaxBlockBytes {
		return nil, ErrMalformed
	}
	b := &Block{count: len(raw) / InstructionLen}
	copy(b.data[:], raw)
	return b, nil
}

// Count returns the number of instructions actually loaded into the block,
// which may be less than MaxInstructions.
func (b *Block) Count() int { return b.count }

// InstructionAt decodes the instruction at byte offset addr. addr must be
// 4-byte aligned and its instruction index must be within the instructions
// actually loaded (not merely within the block's raw capacity), per the
// strict-bounds-on-short-images rule: an in-range-but-past-loaded-program
// address faults rather than reading zeroed padding.
func (b *Block) InstructionAt(addr uint16) (Instruction, error) {
	a := int(addr)
	if !byteutil.IsAligned(a, InstructionLen) {
		return Instruction{}, ErrAccess
	}
	idx := a / InstructionLen
	if idx >= b.count {
		return Instruction{}, ErrAccess
	}
	var raw [InstructionLen]byte
	copy(raw[:], b.data[a:a+InstructionLen])
	return FromBytes(raw), nil
}
