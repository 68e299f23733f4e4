package parser

import (
	"strings"
	"testing"

	"github.com/rcornwell/tinyos/filestore"
	"github.com/rcornwell/tinyos/system"
)

func newTestSystem(t *testing.T) *system.System {
	t.Helper()
	fs, err := filestore.New(t.TempDir())
	if err != nil {
		t.Fatalf("filestore.New: %v", err)
	}
	return system.New(fs, nil)
}

func TestProcessCommandEmptyLine(t *testing.T) {
	sys := newTestSystem(t)
	quit, out, err := ProcessCommand("   ", sys)
	if quit || out != "" || err != nil {
		t.Errorf("ProcessCommand(blank) = (%v, %q, %v), want (false, \"\", nil)", quit, out, err)
	}
}

func TestProcessCommandUnknown(t *testing.T) {
	sys := newTestSystem(t)
	_, _, err := ProcessCommand("frobnicate", sys)
	if err == nil || !strings.Contains(err.Error(), "command not found") {
		t.Errorf("ProcessCommand(frobnicate) error = %v, want \"command not found\"", err)
	}
}

func TestProcessCommandAbbreviation(t *testing.T) {
	sys := newTestSystem(t)
	// "ex" is short enough to match both exec (min 1) and exit (min 2),
	// so it is ambiguous; "exi"/"exe" are long enough to disambiguate.
	if _, _, err := ProcessCommand("ex", sys); err == nil {
		t.Error("ProcessCommand(ex) should be ambiguous between exec/exit")
	}

	quit, _, err := ProcessCommand("exi", sys)
	if err != nil || !quit {
		t.Errorf("ProcessCommand(exi) = (%v, _, %v), want (true, nil)", quit, err)
	}
}

func TestProcessCommandLsAndPs(t *testing.T) {
	sys := newTestSystem(t)
	if _, _, err := ProcessCommand("ls", sys); err != nil {
		t.Errorf("ls: %v", err)
	}
	_, out, err := ProcessCommand("ps", sys)
	if err != nil {
		t.Fatalf("ps: %v", err)
	}
	if !strings.HasPrefix(out, "pid\tstate\tip") {
		t.Errorf("ps output = %q", out)
	}
}

func TestProcessCommandExecAndKill(t *testing.T) {
	fs, err := filestore.New(t.TempDir())
	if err != nil {
		t.Fatalf("filestore.New: %v", err)
	}
	if err := fs.Write("loop", []byte{0x31, 0x00, 0x00, 0x00}); err != nil {
		t.Fatalf("write program: %v", err)
	}
	sys := system.New(fs, nil)

	quit, out, err := ProcessCommand("exec loop &", sys)
	if err != nil || quit {
		t.Fatalf("exec loop &: quit=%v out=%q err=%v", quit, out, err)
	}
	if !strings.HasPrefix(out, "started pid ") {
		t.Errorf("exec loop & output = %q", out)
	}
	pid := strings.TrimPrefix(out, "started pid ")

	if _, _, err := ProcessCommand("kill "+pid, sys); err != nil {
		t.Errorf("kill %s: %v", pid, err)
	}
}

// A synchronous "exec" of a faulting program must surface the fault to the
// shell, not return silently — spec.md §8 scenario 4.
func TestProcessCommandExecForegroundFaultSurfaces(t *testing.T) {
	fs, err := filestore.New(t.TempDir())
	if err != nil {
		t.Fatalf("filestore.New: %v", err)
	}
	if err := fs.Write("divzero", []byte{
		0x12, 0x01, 0x00, 0x05,
		0x12, 0x02, 0x00, 0x00,
		0x24, 0x01, 0x02, 0x03,
		0xFF, 0x00, 0x00, 0x00,
	}); err != nil {
		t.Fatalf("write program: %v", err)
	}
	sys := system.New(fs, nil)

	_, _, err = ProcessCommand("exec divzero", sys)
	if err == nil {
		t.Fatal("exec divzero: want fault error, got nil")
	}
	if !strings.Contains(err.Error(), "faulted") {
		t.Errorf("exec divzero error = %v, want it to mention the fault", err)
	}
}

func TestCompleteCmd(t *testing.T) {
	matches := CompleteCmd("e")
	want := map[string]bool{"exec": true, "exit": true}
	if len(matches) != 2 {
		t.Fatalf("CompleteCmd(e) = %v, want 2 matches", matches)
	}
	for _, m := range matches {
		if !want[m] {
			t.Errorf("CompleteCmd(e) unexpected match %q", m)
		}
	}
}
