/*
 * tinyos - Instruction record and opcode decoding.
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

// Package instr defines the fixed 4-byte instruction format, the closed set
// of opcodes, and the per-process instruction block (program image) they
// live in.
package instr

import (
	"errors"
	"fmt"

	"github.com/rcornwell/tinyos/internal/byteutil"
)

// InstructionLen is the width in bytes of every instruction record.
const InstructionLen = 4

// Opcode is the closed set of instruction tags a program byte can decode
// to. An unrecognized opcode byte is a DecodeFault, reported through
// ErrDecode rather than a zero value in this set.
type Opcode byte

// The exhaustive opcode table.
const (
	OpLoad         Opcode = 0x11
	OpLoadConstant Opcode = 0x12
	OpStore        Opcode = 0x13
	OpAdd          Opcode = 0x21
	OpSubtract     Opcode = 0x22
	OpMultiply     Opcode = 0x23
	OpDivide       Opcode = 0x24
	OpEqual        Opcode = 0x25
	OpGoto         Opcode = 0x31
	OpGotoIf       Opcode = 0x32
	OpCharPrint    Opcode = 0x41
	OpCharRead     Opcode = 0x42
	OpExit         Opcode = 0xFF
)

// ErrDecode is returned by Type when an instruction's opcode byte is not one
// of the known Opcode values.
var ErrDecode = errors.New("instr: unknown opcode")

var mnemonics = map[Opcode]string{
	OpLoad:         "load",
	OpLoadConstant: "loadc",
	OpStore:        "store",
	OpAdd:          "add",
	OpSubtract:     "sub",
	OpMultiply:     "mul",
	OpDivide:       "div",
	OpEqual:        "eq",
	OpGoto:         "goto",
	OpGotoIf:       "gotoif",
	OpCharPrint:    "cprint",
	OpCharRead:     "cread",
	OpExit:         "exit",
}

// String returns the opcode's mnemonic, or "???" for an unrecognized byte.
func (op Opcode) String() string {
	if m, ok := mnemonics[op]; ok {
		return m
	}
	return "???"
}

// Instruction is the fixed 4-byte record [opcode, b1, b2, b3]. The zero
// value decodes to nothing useful; always build one through FromBytes.
type Instruction struct {
	raw [InstructionLen]byte
}

// FromBytes wraps a 4-byte record as an Instruction. It never fails: any
// byte pattern is a structurally valid record, even if its opcode byte
// turns out not to decode (see Type).
func FromBytes(b [InstructionLen]byte) Instruction {
	return Instruction{raw: b}
}

// Type decodes the instruction's opcode byte, returning ErrDecode if it is
// not one of the known Opcode values.
func (i Instruction) Type() (Opcode, error) {
	op := Opcode(i.raw[0])
	if _, ok := mnemonics[op]; !ok {
		return 0, ErrDecode
	}
	return op, nil
}

// Reg1 is the byte-wide register index carried in operand position 1.
func (i Instruction) Reg1() byte { return i.raw[1] }

// Reg2 is the byte-wide register index carried in operand position 2.
func (i Instruction) Reg2() byte { return i.raw[2] }

// Reg3 is the byte-wide register index carried in operand position 3.
func (i Instruction) Reg3() byte { return i.raw[3] }

// Literal1 is the big-endian 16-bit value spanning operand bytes 1 and 2.
func (i Instruction) Literal1() uint16 {
	return byteutil.U16FromBE(i.raw[1], i.raw[2])
}

// Literal2 is the big-endian 16-bit value spanning operand bytes 2 and 3.
func (i Instruction) Literal2() uint16 {
	return byteutil.U16FromBE(i.raw[2], i.raw[3])
}

// Bytes returns the raw 4-byte record.
func (i Instruction) Bytes() [InstructionLen]byte { return i.raw }

func (i Instruction) String() string {
	op, err := i.Type()
	if err != nil {
		return fmt.Sprintf("??? (%#02x %#02x %#02x %#02x)", i.raw[0], i.raw[1], i.raw[2], i.raw[3])
	}
	return op.String()
}
