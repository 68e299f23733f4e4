/*
 * tinyos - Per-process worker: drives one process through repeated
 * preemption quanta until it exits or faults.
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

// Package executor runs one process: a goroutine that repeatedly locks the
// shared CPU and the process's PCB, restores context, executes instructions
// for one wall-clock quantum, saves context, and yields — until the process
// exits cleanly or faults. A clean Exit and a fault both end the worker, but
// only a fault produces a core dump.
package executor

import (
	"io"
	"runtime"
	"time"

	"github.com/rcornwell/tinyos/coredump"
	"github.com/rcornwell/tinyos/cpu"
	"github.com/rcornwell/tinyos/instr"
	"github.com/rcornwell/tinyos/internal/byteutil"
	"github.com/rcornwell/tinyos/process"
	"github.com/rcornwell/tinyos/termio"

	"sync/atomic"
)

// TimeSliceMS is the wall-clock quantum each executor holds the CPU for
// before voluntarily yielding it.
const TimeSliceMS = 1

// Result is the outcome of one exec_once dispatch.
type Result int

const (
	// ResultSuccess means the instruction completed normally; the slice
	// loop continues.
	ResultSuccess Result = iota
	// ResultExit means the process hit the Exit opcode and is shutting
	// down cleanly; no core dump.
	ResultExit
	// ResultFault means an AccessFault, DecodeFault, or divide-by-zero
	// occurred; the process is terminated abnormally and dumped.
	ResultFault
)

// Exit is sent on the exit channel exactly once per process, carrying both
// which process ended and how — so a waiter (or the reaper) can tell a
// fault apart from a normal exit instead of learning only the pid.
type Exit struct {
	ID     uint16
	Result Result
}

// Executor drives one process. Build with New, start with Start.
type Executor struct {
	cpu  *cpu.Shared
	pcb  *process.PCB
	term termio.IO // nil when use_terminal is false

	cancel atomic.Bool

	// onFault is invoked with the rendered core dump text whenever the
	// slice loop ends in ResultFault, while the CPU and PCB locks are
	// still held (so the dump reflects the faulting state exactly).
	onFault func(dumpText string)
}

// New builds an Executor over the shared CPU and a freshly allocated PCB.
// term may be nil; CharPrint/CharRead become no-ops in that case, matching
// a background ("&") process with terminal I/O disabled.
func New(shared *cpu.Shared, pcb *process.PCB, term termio.IO, onFault func(string)) *Executor {
	return &Executor{cpu: shared, pcb: pcb, term: term, onFault: onFault}
}

// Cancel requests prompt termination: the inner fetch/dispatch loop checks
// this flag and stops at the next instruction boundary, ahead of the
// reaper's eventual table removal. See the kill design note in DESIGN.md.
func (e *Executor) Cancel() { e.cancel.Store(true) }

// Start spawns the worker goroutine. When the process ends (exit or
// fault), the worker sends its outcome on exitTx exactly once.
func (e *Executor) Start(exitTx chan<- Exit) {
	go e.run(exitTx)
}

func (e *Executor) run(exitTx chan<- Exit) {
	defer func() {
		// Restore the real terminal's mode (if it was put in raw mode)
		// before this process's slot is reused by another exec.
		if closer, ok := e.term.(io.Closer); ok {
			_ = closer.Close()
		}
	}()

	result := ResultSuccess
	for result == ResultSuccess && !e.cancel.Load() {
		e.cpu.Lock()
		e.pcb.Lock()

		e.pcb.LoadCPUCtx(e.cpu.C)
		e.pcb.SetStatus(process.StatusExecuting)

		deadline := time.Now().Add(TimeSliceMS * time.Millisecond)
		for time.Now().Before(deadline) && result == ResultSuccess && !e.cancel.Load() {
			result = e.execOnce()
		}

		e.pcb.SaveCPUCtx(e.cpu.C)

		if result == ResultFault {
			e.pcb.SetStatus(process.StatusExited)
			dump := coredump.Format(e.cpu.C, e.pcb)
			if e.onFault != nil {
				e.onFault(dump)
			}
		} else if result == ResultExit || e.cancel.Load() {
			e.pcb.SetStatus(process.StatusExited)
		} else {
			e.pcb.SetStatus(process.StatusBlocked)
		}

		e.pcb.Unlock()
		e.cpu.Unlock()

		if result != ResultSuccess || e.cancel.Load() {
			break
		}
		// scheduling hint: let another runnable goroutine take the CPU
		// before we try to reacquire it.
		runtime.Gosched()
	}

	exitTx <- Exit{ID: e.pcb.ID(), Result: result}
}

// execOnce fetches the instruction at the CPU's current instruction
// pointer, advances the pointer by 4 before dispatch, and dispatches.
// Callers must already hold both the CPU and PCB locks.
func (e *Executor) execOnce() Result {
	blk := e.pcb.InstrBlk()
	ins, err := blk.InstructionAt(e.cpu.C.InstrPtr)
	if err != nil {
		return ResultFault
	}
	e.cpu.C.InstrPtr += instr.InstructionLen

	op, err := ins.Type()
	if err != nil {
		return ResultFault
	}

	switch op {
	case instr.OpLoad:
		return e.dispatchLoad(ins)
	case instr.OpLoadConstant:
		return e.dispatchLoadConstant(ins)
	case instr.OpStore:
		return e.dispatchStore(ins)
	case instr.OpAdd:
		return e.dispatchArith(ins, func(a, b uint16) uint16 { return a + b })
	case instr.OpSubtract:
		return e.dispatchArith(ins, func(a, b uint16) uint16 { return a - b })
	case instr.OpMultiply:
		return e.dispatchArith(ins, func(a, b uint16) uint16 { return a * b })
	case instr.OpDivide:
		return e.dispatchDivide(ins)
	case instr.OpEqual:
		return e.dispatchArith(ins, func(a, b uint16) uint16 {
			if a == b {
				return 1
			}
			return 0
		})
	case instr.OpGoto:
		e.cpu.C.InstrPtr = ins.Literal1()
		return ResultSuccess
	case instr.OpGotoIf:
		return e.dispatchGotoIf(ins)
	case instr.OpCharPrint:
		return e.dispatchCharPrint(ins)
	case instr.OpCharRead:
		return e.dispatchCharRead(ins)
	case instr.OpExit:
		return ResultExit
	default:
		return ResultFault
	}
}

func (e *Executor) dispatchLoad(ins instr.Instruction) Result {
	v, err := byteutil.GetU16At(e.pcb.Stack(), int(ins.Literal2()))
	if err != nil {
		return ResultFault
	}
	if e.cpu.C.Set(int(ins.Reg1()), v) != nil {
		return ResultFault
	}
	return ResultSuccess
}

func (e *Executor) dispatchLoadConstant(ins instr.Instruction) Result {
	if e.cpu.C.Set(int(ins.Reg1()), ins.Literal2()) != nil {
		return ResultFault
	}
	return ResultSuccess
}

func (e *Executor) dispatchStore(ins instr.Instruction) Result {
	v, err := e.cpu.C.Get(int(ins.Reg3()))
	if err != nil {
		return ResultFault
	}
	if byteutil.SetU16At(e.pcb.Stack(), int(ins.Literal1()), v) != nil {
		return ResultFault
	}
	return ResultSuccess
}

func (e *Executor) dispatchArith(ins instr.Instruction, f func(a, b uint16) uint16) Result {
	a, err := e.cpu.C.Get(int(ins.Reg1()))
	if err != nil {
		return ResultFault
	}
	b, err := e.cpu.C.Get(int(ins.Reg2()))
	if err != nil {
		return ResultFault
	}
	if e.cpu.C.Set(int(ins.Reg3()), f(a, b)) != nil {
		return ResultFault
	}
	return ResultSuccess
}

func (e *Executor) dispatchDivide(ins instr.Instruction) Result {
	a, err := e.cpu.C.Get(int(ins.Reg1()))
	if err != nil {
		return ResultFault
	}
	b, err := e.cpu.C.Get(int(ins.Reg2()))
	if err != nil {
		return ResultFault
	}
	if b == 0 {
		return ResultFault
	}
	if e.cpu.C.Set(int(ins.Reg3()), a/b) != nil {
		return ResultFault
	}
	return ResultSuccess
}

func (e *Executor) dispatchGotoIf(ins instr.Instruction) Result {
	v, err := e.cpu.C.Get(int(ins.Reg3()))
	if err != nil {
		return ResultFault
	}
	if v != 0 {
		e.cpu.C.InstrPtr = ins.Literal1()
	}
	return ResultSuccess
}

func (e *Executor) dispatchCharPrint(ins instr.Instruction) Result {
	if e.term == nil {
		return ResultSuccess
	}
	addr := int(ins.Literal1())
	stack := e.pcb.Stack()
	if addr < 0 || addr >= len(stack) {
		return ResultFault
	}
	if err := e.term.WriteByte(stack[addr]); err != nil {
		return ResultFault
	}
	return ResultSuccess
}

func (e *Executor) dispatchCharRead(ins instr.Instruction) Result {
	if e.term == nil {
		return ResultSuccess
	}
	addr := int(ins.Literal1())
	stack := e.pcb.Stack()
	if addr < 0 || addr >= len(stack) {
		return ResultFault
	}
	b, err := e.term.ReadByte()
	if err != nil {
		return ResultFault
	}
	stack[addr] = b
	return ResultSuccess
}
