/*
 * tinyos - Virtual CPU register file and instruction pointer.
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

// Package cpu models the single virtual CPU every process time-slices
// through: an instruction pointer plus a small register file. There is
// exactly one CPU in the running system; callers serialize access to it
// by holding Shared's lock (see package executor) rather than CPU's
// accessors locking per call, since a slice needs to hold the CPU across
// many register accesses without paying a lock per access.
package cpu

import (
	"errors"
	"fmt"
)

// NumRegisters is the width of the register file.
const NumRegisters = 6

// ErrBadRegister is returned by Get/Set when the register index is out of
// range.
var ErrBadRegister = errors.New("cpu: register index out of range")

// CPU holds the instruction pointer and register file. The zero value is a
// freshly reset CPU.
type CPU struct {
	InstrPtr  uint16
	Registers [NumRegisters]uint16
}

// New returns a CPU reset to its initial state.
func New() *CPU {
	return &CPU{}
}

// Get returns the value of register i, or ErrBadRegister if i is out of
// range.
func (c *CPU) Get(i int) (uint16, error) {
	if i < 0 || i >= NumRegisters {
		return 0, ErrBadRegister
	}
	return c.Registers[i], nil
}

// Set stores v into register i, or returns ErrBadRegister if i is out of
// range. No register outside [0, NumRegisters) is ever written.
func (c *CPU) Set(i int, v uint16) error {
	if i < 0 || i >= NumRegisters {
		return ErrBadRegister
	}
	c.Registers[i] = v
	return nil
}

// Reset zeroes the instruction pointer and every register.
func (c *CPU) Reset() {
	c.InstrPtr = 0
	c.Registers = [NumRegisters]uint16{}
}

// String renders the CPU state for diagnostics.
func (c *CPU) String() string {
	return fmt.Sprintf("instr_ptr=%#04x registers=%v", c.InstrPtr, c.Registers)
}
