/*
 * tinyos - Process control block: per-process state shared between its
 * executor, the reaper, and the process-list reader.
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

// Package process holds the process control block (PCB): a process's id,
// status, saved CPU context, private stack, and program image. A PCB is
// shared through a pointer between its executor, the reaper, and whatever
// is formatting "ps" output; every field but the immutable id and program
// name is guarded by the PCB's own lock, which callers take explicitly with Lock/Unlock rather
// than having each accessor lock internally — an executor needs to hold the
// PCB across an entire time slice, not just a single field read.
package process

import (
	"sync"

	"github.com/rcornwell/tinyos/cpu"
	"github.com/rcornwell/tinyos/instr"
)

// StackLen is the size in bytes of each process's private stack.
const StackLen = 64

// Status is a process's lifecycle state.
type Status int

// The closed set of process states.
const (
	StatusNew Status = iota
	StatusExecuting
	StatusBlocked
	StatusExited
)

func (s Status) String() string {
	switch s {
	case StatusNew:
		return "new"
	case StatusExecuting:
		return "executing"
	case StatusBlocked:
		return "blocked"
	case StatusExited:
		return "exited"
	default:
		return "unknown"
	}
}

// Context is a saved snapshot of the CPU: the register file plus the
// instruction pointer.
type Context struct {
	InstrPtr  uint16
	Registers [cpu.NumRegisters]uint16
}

// PCB is the complete per-process record.
type PCB struct {
	mu sync.Mutex

	id          uint16 // immutable for the PCB's lifetime; safe to read unlocked
	exeFileName string // immutable for the PCB's lifetime

	status Status
	ctx    Context
	stack  [StackLen]byte
	instr  *instr.Block
}

// New builds a fresh PCB: status New, zeroed context, zeroed stack.
func New(id uint16, exeFileName string, block *instr.Block) *PCB {
	return &PCB{
		id:          id,
		exeFileName: exeFileName,
		status:      StatusNew,
		instr:       block,
	}
}

// ID returns the process id. Safe to call without holding the lock.
func (p *PCB) ID() uint16 { return p.id }

// ExeFileName returns the name of the program this process was loaded
// from. Safe to call without holding the lock.
func (p *PCB) ExeFileName() string { return p.exeFileName }

// Lock acquires the PCB's mutex. Every method below other than ID,
// ExeFileName, and Lock/Unlock assumes the caller already holds it.
func (p *PCB) Lock() { p.mu.Lock() }

// Unlock releases the PCB's mutex.
func (p *PCB) Unlock() { p.mu.Unlock() }

// Status returns the process's current lifecycle state.
func (p *PCB) Status() Status { return p.status }

// SetStatus updates the process's lifecycle state.
func (p *PCB) SetStatus(s Status) { p.status = s }

// InstrPtr returns the saved instruction pointer from the last context
// save.
func (p *PCB) InstrPtr() uint16 { return p.ctx.InstrPtr }

// SetInstrPtr overwrites the saved instruction pointer.
func (p *PCB) SetInstrPtr(ip uint16) { p.ctx.InstrPtr = ip }

// Registers returns a copy of the saved register file from the last
// context save.
func (p *PCB) Registers() [cpu.NumRegisters]uint16 { return p.ctx.Registers }

// Stack returns the process's private stack as a mutable byte slice.
func (p *PCB) Stack() []byte { return p.stack[:] }

// InstrBlk returns the process's program image.
func (p *PCB) InstrBlk() *instr.Block { return p.instr }

// LoadCPUCtx copies this PCB's saved context into c — the instruction
// pointer and all six registers.
func (p *PCB) LoadCPUCtx(c *cpu.CPU) {
	c.InstrPtr = p.ctx.InstrPtr
	c.Registers = p.ctx.Registers
}

// SaveCPUCtx copies c's current state into this PCB's saved context: the
// reverse of LoadCPUCtx.
func (p *PCB) SaveCPUCtx(c *cpu.CPU) {
	p.ctx.InstrPtr = c.InstrPtr
	p.ctx.Registers = c.Registers
}
