package coredump

import (
	"strings"
	"testing"

	"github.com/rcornwell/tinyos/cpu"
	"github.com/rcornwell/tinyos/instr"
	"github.com/rcornwell/tinyos/process"
)

func TestFormatIncludesRequiredFields(t *testing.T) {
	blk, err := instr.NewBlock([]byte{0xFF, 0, 0, 0})
	if err != nil {
		t.Fatalf("instr.NewBlock: %v", err)
	}
	pcb := process.New(5, "bad", blk)
	c := cpu.New()
	c.InstrPtr = 0x20
	c.Registers = [cpu.NumRegisters]uint16{1, 2, 3, 4, 5, 6}

	pcb.Lock()
	pcb.SetStatus(process.StatusExited)
	pcb.Stack()[0] = 0xAB
	out := Format(c, pcb)
	pcb.Unlock()

	for _, want := range []string{"pid: 5", "exited", "instr_ptr: 0x20", "r0: 0x01", "ab"} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q, got:\n%s", want, out)
		}
	}
}
