/*
 * tinyos - One-line-per-instruction disassembly, used by the shell's "dis"
 * command.
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
	"fmt"
	"strings"
)

// Disassemble renders every instruction loaded into b as one line of
// "addr: mnemonic operands" text.
func Disassemble(b *Block) string {
	var out strings.Builder
	for idx := 0; idx < b.Count(); idx++ {
		addr := uint16(idx * InstructionLen)
		ins, err := b.InstructionAt(addr)
		if err != nil {
			fmt.Fprintf(&out, "%04x: <bad instruction>\n", addr)
			continue
		}
		fmt.Fprintf(&out, "%04x: %s\n", addr, disasmOne(ins))
	}
	return out.String()
}

func disasmOne(ins Instruction) string {
	op, err := ins.Type()
	if err != nil {
		return ins.String()
	}
	switch op {
	case OpLoad, OpLoadConstant:
		return fmt.Sprintf("%-6s r%d, %#04x", op, ins.Reg1(), ins.Literal2())
	case OpStore:
		return fmt.Sprintf("%-6s r%d, %#04x", op, ins.Reg3(), ins.Literal1())
	case OpAdd, OpSubtract, OpMultiply, OpDivide, OpEqual:
		return fmt.Sprintf("%-6s r%d, r%d, r%d", op, ins.Reg1(), ins.Reg2(), ins.Reg3())
	case OpGoto:
		return fmt.Sprintf("%-6s %#04x", op, ins.Literal1())
	case OpGotoIf:
		return fmt.Sprintf("%-6s r%d, %#04x", op, ins.Reg3(), ins.Literal1())
	case OpCharPrint, OpCharRead:
		return fmt.Sprintf("%-6s %#04x", op, ins.Literal1())
	case OpExit:
		return op.String()
	default:
		return ins.String()
	}
}
