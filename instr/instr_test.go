package instr

import "testing"

func TestOperandViews(t *testing.T) {
	ins := FromBytes([InstructionLen]byte{0x12, 0x01, 0x00, 0x2A})
	if ins.Reg1() != 0x01 {
		t.Errorf("Reg1 = %#02x, want 0x01", ins.Reg1())
	}
	if ins.Literal2() != 0x002A {
		t.Errorf("Literal2 = %#04x, want 0x002A", ins.Literal2())
	}
	if got, err := ins.Type(); err != nil || got != OpLoadConstant {
		t.Errorf("Type() = %v, %v; want OpLoadConstant, nil", got, err)
	}
}

func TestLiteral1And2Overlap(t *testing.T) {
	ins := FromBytes([InstructionLen]byte{0x13, 0x00, 0x20, 0x01})
	if ins.Literal1() != 0x0020 {
		t.Errorf("Literal1 = %#04x, want 0x0020", ins.Literal1())
	}
	if ins.Literal2() != 0x2001 {
		t.Errorf("Literal2 = %#04x, want 0x2001", ins.Literal2())
	}
}

func TestUnknownOpcodeFaultsDecode(t *testing.T) {
	ins := FromBytes([InstructionLen]byte{0x99, 0, 0, 0})
	if _, err := ins.Type(); err != ErrDecode {
		t.Errorf("Type() = %v, want ErrDecode", err)
	}
}

func TestNewBlockRejectsBadSizes(t *testing.T) {
	cases := [][]byte{
		{},
		{1, 2, 3},
		make([]byte, MaxBlockBytes+4),
	}
	for _, raw := range cases {
		if _, err := NewBlock(raw); err != ErrMalformed {
			t.Errorf("NewBlock(len=%d) = %v, want ErrMalformed", len(raw), err)
		}
	}
}

func TestNewBlockAcceptsValidSizes(t *testing.T) {
	raw := []byte{0xFF, 0, 0, 0}
	b, err := NewBlock(raw)
	if err != nil {
		t.Fatalf("NewBlock: %v", err)
	}
	if b.Count() != 1 {
		t.Errorf("Count() = %d, want 1", b.Count())
	}
}

func TestInstructionAtAlignmentAndBounds(t *testing.T) {
	raw := []byte{0x12, 0x01, 0x00, 0x2A, 0xFF, 0, 0, 0}
	b, err := NewBlock(raw)
	if err != nil {
		t.Fatalf("NewBlock: %v", err)
	}
	if _, err := b.InstructionAt(1); err != ErrAccess {
		t.Errorf("InstructionAt(1) = %v, want ErrAccess (unaligned)", err)
	}
	if _, err := b.InstructionAt(8); err != ErrAccess {
		t.Errorf("InstructionAt(8) = %v, want ErrAccess (past loaded instructions)", err)
	}
	ins, err := b.InstructionAt(4)
	if err != nil {
		t.Fatalf("InstructionAt(4): %v", err)
	}
	if op, _ := ins.Type(); op != OpExit {
		t.Errorf("InstructionAt(4).Type() = %v, want OpExit", op)
	}
}

func TestInstructionAtFaultsPastLoadedThoughWithinCapacity(t *testing.T) {
	// A 4-byte image only occupies address 0; address 512 is well within
	// the 1024-byte block capacity but past what was actually loaded.
	raw := []byte{0xFF, 0, 0, 0}
	b, err := NewBlock(raw)
	if err != nil {
		t.Fatalf("NewBlock: %v", err)
	}
	if _, err := b.InstructionAt(512); err != ErrAccess {
		t.Errorf("InstructionAt(512) = %v, want ErrAccess", err)
	}
}

func TestDisassemble(t *testing.T) {
	raw := []byte{0x12, 0x01, 0x00, 0x2A, 0xFF, 0, 0, 0}
	b, err := NewBlock(raw)
	if err != nil {
		t.Fatalf("NewBlock: %v", err)
	}
	out := Disassemble(b)
	if out == "" {
		t.Error("Disassemble returned empty string")
	}
}
