package executor

import (
	"io"
	"testing"
	"time"

	"github.com/rcornwell/tinyos/cpu"
	"github.com/rcornwell/tinyos/instr"
	"github.com/rcornwell/tinyos/process"
)

type fakeTerm struct {
	written []byte
	toRead  []byte
}

func (f *fakeTerm) WriteByte(b byte) error {
	f.written = append(f.written, b)
	return nil
}

func (f *fakeTerm) ReadByte() (byte, error) {
	if len(f.toRead) == 0 {
		return 0, io.EOF
	}
	b := f.toRead[0]
	f.toRead = f.toRead[1:]
	return b, nil
}

func runProgram(t *testing.T, raw []byte, term *fakeTerm) (*cpu.CPU, *process.PCB, string, Result) {
	t.Helper()
	blk, err := instr.NewBlock(raw)
	if err != nil {
		t.Fatalf("instr.NewBlock: %v", err)
	}
	pcb := process.New(1, "test", blk)
	shared := cpu.NewShared()

	var dump string
	var termIO interface {
		ReadByte() (byte, error)
		WriteByte(b byte) error
	}
	if term != nil {
		termIO = term
	}
	e := New(shared, pcb, termIO, func(d string) { dump = d })

	exitTx := make(chan Exit, 1)
	e.Start(exitTx)

	select {
	case exit := <-exitTx:
		return shared.C, pcb, dump, exit.Result
	case <-time.After(2 * time.Second):
		t.Fatal("executor did not exit in time")
	}
	panic("unreachable")
}

func TestLoadConstantThenExit(t *testing.T) {
	raw := []byte{0x12, 0x01, 0x00, 0x2A, 0xFF, 0, 0, 0}
	_, pcb, dump, result := runProgram(t, raw, nil)
	if dump != "" {
		t.Errorf("expected no core dump, got %q", dump)
	}
	if result != ResultExit {
		t.Errorf("Exit.Result = %v, want ResultExit", result)
	}
	regs := pcb.Registers()
	if regs[1] != 0x002A {
		t.Errorf("r1 = %#04x, want 0x002A", regs[1])
	}
}

func TestAddAndEqual(t *testing.T) {
	raw := []byte{
		0x12, 0x01, 0x00, 0x03,
		0x12, 0x02, 0x00, 0x04,
		0x21, 0x01, 0x02, 0x03,
		0x25, 0x03, 0x03, 0x00,
		0xFF, 0, 0, 0,
	}
	_, pcb, _, _ := runProgram(t, raw, nil)
	regs := pcb.Registers()
	if regs[3] != 7 {
		t.Errorf("r3 = %d, want 7", regs[3])
	}
	if regs[0] != 1 {
		t.Errorf("r0 = %d, want 1", regs[0])
	}
}

func TestPrintCharacter(t *testing.T) {
	raw := []byte{
		0x12, 0x01, 0x00, 0x41,
		0x13, 0x00, 0x20, 0x01,
		0x41, 0x00, 0x21, 0x00,
		0xFF, 0, 0, 0,
	}
	term := &fakeTerm{}
	_, _, _, _ = runProgram(t, raw, term)
	if string(term.written) != "A" {
		t.Errorf("written = %q, want %q", term.written, "A")
	}
}

func TestDivideByZeroFaults(t *testing.T) {
	raw := []byte{
		0x12, 0x01, 0x00, 0x05,
		0x12, 0x02, 0x00, 0x00,
		0x24, 0x01, 0x02, 0x03,
		0xFF, 0, 0, 0,
	}
	_, pcb, dump, result := runProgram(t, raw, nil)
	if dump == "" {
		t.Fatal("expected a core dump on divide-by-zero")
	}
	if result != ResultFault {
		t.Errorf("Exit.Result = %v, want ResultFault", result)
	}
	if pcb.Status() != process.StatusExited {
		t.Errorf("status = %v, want StatusExited", pcb.Status())
	}
}

func TestUnalignedGotoFaults(t *testing.T) {
	raw := []byte{0x31, 0x00, 0x01, 0x00, 0xFF, 0, 0, 0}
	_, _, dump, result := runProgram(t, raw, nil)
	if dump == "" {
		t.Fatal("expected a core dump on unaligned goto target")
	}
	if result != ResultFault {
		t.Errorf("Exit.Result = %v, want ResultFault", result)
	}
}
