/*
 * tinyos - Fault dump formatting: renders CPU + PCB state as reproducible
 * text for the coredump file.
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

// Package coredump renders the state of a faulted process as plain text,
// written to the file store's "coredump" file by the caller. Callers must
// hold the CPU and PCB locks while calling Format, since it reads both.
package coredump

import (
	"fmt"
	"strings"

	"github.com/rcornwell/tinyos/cpu"
	"github.com/rcornwell/tinyos/process"
)

// Format renders c and pcb's state: instr_ptr, all six registers, the
// process id and status, and the raw stack bytes in hex.
func Format(c *cpu.CPU, pcb *process.PCB) string {
	var b strings.Builder
	fmt.Fprintf(&b, "pid: %d\n", pcb.ID())
	fmt.Fprintf(&b, "status: %s\n", pcb.Status())
	fmt.Fprintf(&b, "instr_ptr: %#04x\n", c.InstrPtr)
	for i, r := range c.Registers {
		fmt.Fprintf(&b, "r%d: %#04x\n", i, r)
	}
	b.WriteString("stack:\n")
	b.WriteString(hexDump(pcb.Stack()))
	return b.String()
}

// hexDump renders buf as 16-byte rows of space-separated hex pairs,
// prefixed with the row's starting offset.
func hexDump(buf []byte) string {
	var b strings.Builder
	for off := 0; off < len(buf); off += 16 {
		end := off + 16
		if end > len(buf) {
			end = len(buf)
		}
		fmt.Fprintf(&b, "%04x:", off)
		for _, v := range buf[off:end] {
			fmt.Fprintf(&b, " %02x", v)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
