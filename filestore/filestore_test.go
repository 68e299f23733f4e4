package filestore

import (
	"path/filepath"
	"testing"
)

func TestListReadWriteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := s.Write("counter", []byte{0xFF, 0, 0, 0}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := s.WriteString("coredump", "pid: 1\n"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}

	names, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"coredump", "counter"}
	if len(names) != len(want) {
		t.Fatalf("List() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("List()[%d] = %q, want %q", i, names[i], want[i])
		}
	}

	data, err := s.Read("counter")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(data) != 4 || data[0] != 0xFF {
		t.Errorf("Read(counter) = %v, want [0xFF 0 0 0]", data)
	}
}

func TestNewCreatesMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "fs")
	if _, err := New(dir); err != nil {
		t.Fatalf("New: %v", err)
	}
}
