/*
 * tinyos - System façade: wires the CPU, process table, and file store
 * together, spawns executors, and reaps exited processes.
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

// Package system is the façade the shell drives: it owns the one shared
// CPU, the process table, and the file store, and runs a detached reaper
// that removes processes from the table as their executors finish.
package system

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/rcornwell/tinyos/cpu"
	"github.com/rcornwell/tinyos/executor"
	"github.com/rcornwell/tinyos/filestore"
	"github.com/rcornwell/tinyos/instr"
	"github.com/rcornwell/tinyos/proctable"
	"github.com/rcornwell/tinyos/termio"
)

// ErrKillUnknown is returned by Kill when no live process has the given id.
var ErrKillUnknown = errors.New("system: no such process")

// ErrFaulted is returned by Wait when the process exited via a fault
// (AccessFault, DecodeFault, or divide-by-zero) rather than a normal Exit,
// so a synchronous "exec" reports the failure instead of returning silently.
var ErrFaulted = errors.New("process faulted, see coredump")

// System owns every long-lived collaborator: the shared CPU, the process
// table, the file store, and the exit channel the reaper drains.
type System struct {
	cpu     *cpu.Shared
	procTbl *proctable.Table
	fs      *filestore.Store
	exitTx  chan executor.Exit
	log     *slog.Logger

	mu        sync.Mutex
	executors map[uint16]*executor.Executor
	waiters   map[uint16]chan executor.Result
}

// New builds a System over fs and starts its reaper goroutine. The reaper
// runs for the lifetime of the process; there is no Close, matching the
// shell's own process lifetime.
func New(fs *filestore.Store, log *slog.Logger) *System {
	s := &System{
		cpu:       cpu.NewShared(),
		procTbl:   proctable.New(),
		fs:        fs,
		exitTx:    make(chan executor.Exit, proctable.MaxProcs),
		log:       log,
		executors: make(map[uint16]*executor.Executor),
		waiters:   make(map[uint16]chan executor.Result),
	}
	go s.reap()
	return s
}

func (s *System) reap() {
	for ex := range s.exitTx {
		s.procTbl.Dealloc(ex.ID)
		s.mu.Lock()
		delete(s.executors, ex.ID)
		if ch, ok := s.waiters[ex.ID]; ok {
			ch <- ex.Result
			close(ch)
			delete(s.waiters, ex.ID)
		}
		s.mu.Unlock()
		if s.log != nil {
			if ex.Result == executor.ResultFault {
				s.log.Warn("process exited abnormally", "pid", ex.ID)
			} else {
				s.log.Info("process exited", "pid", ex.ID)
			}
		}
	}
}

// Exec loads name from the file store, allocates a PCB, and starts an
// executor for it. useTerminal selects whether CharPrint/CharRead attach to
// the real terminal (foreground, "exec name") or are no-ops (background,
// "exec name &").
func (s *System) Exec(name string, useTerminal bool) (uint16, error) {
	raw, err := s.fs.Read(name)
	if err != nil {
		return 0, fmt.Errorf("load %s: %w", name, err)
	}

	blk, err := instr.NewBlock(raw)
	if err != nil {
		return 0, fmt.Errorf("load %s: %w", name, err)
	}

	pcb, err := s.procTbl.Alloc(name, blk)
	if err != nil {
		return 0, err
	}

	var term termio.IO
	if useTerminal {
		t, err := termio.Open()
		if err != nil {
			return 0, fmt.Errorf("open terminal: %w", err)
		}
		term = t
	}

	onFault := func(dump string) {
		if s.log != nil {
			s.log.Warn("process faulted", "pid", pcb.ID(), "exe", name)
		}
		if err := s.fs.WriteString("coredump", dump); err != nil && s.log != nil {
			s.log.Error("write coredump", "pid", pcb.ID(), "error", err)
		}
	}

	e := executor.New(s.cpu, pcb, term, onFault)
	s.mu.Lock()
	s.executors[pcb.ID()] = e
	s.waiters[pcb.ID()] = make(chan executor.Result, 1)
	s.mu.Unlock()
	e.Start(s.exitTx)
	if s.log != nil {
		s.log.Info("process spawned", "pid", pcb.ID(), "exe", name, "terminal", useTerminal)
	}
	return pcb.ID(), nil
}

// Wait blocks until id has exited (normally or by fault) and been reaped,
// returning ErrFaulted if the process ended abnormally. It returns nil
// immediately if id is unknown, already exited, or was never spawned
// through Exec. The shell calls this for a synchronous "exec name" so the
// prompt does not return until the process is done; a background
// "exec name &" never calls it.
func (s *System) Wait(id uint16) error {
	s.mu.Lock()
	ch, ok := s.waiters[id]
	s.mu.Unlock()
	if !ok {
		return nil
	}
	result, ok := <-ch
	if !ok || result != executor.ResultFault {
		return nil
	}
	return fmt.Errorf("pid %d: %w", id, ErrFaulted)
}

// Disassemble renders a program's instructions as text without running it,
// for the shell's "dis" diagnostic command.
func (s *System) Disassemble(name string) (string, error) {
	raw, err := s.fs.Read(name)
	if err != nil {
		return "", fmt.Errorf("load %s: %w", name, err)
	}
	blk, err := instr.NewBlock(raw)
	if err != nil {
		return "", fmt.Errorf("load %s: %w", name, err)
	}
	return instr.Disassemble(blk), nil
}

// ListFiles delegates to the file store and returns a tab-separated line
// of file names.
func (s *System) ListFiles() (string, error) {
	names, err := s.fs.List()
	if err != nil {
		return "", err
	}
	return strings.Join(names, "\t"), nil
}

// ListProcesses snapshots the process table and formats one row per live
// process, preceded by a header row.
func (s *System) ListProcesses() string {
	var b strings.Builder
	b.WriteString("pid\tstate\tip\t1\t2\t3\t4\t5\t6\texe\n")

	for _, pcb := range s.procTbl.Snapshot() {
		pcb.Lock()
		regs := pcb.Registers()
		fmt.Fprintf(&b, "%d\t%s\t%#04x", pcb.ID(), pcb.Status(), pcb.InstrPtr())
		for _, r := range regs {
			fmt.Fprintf(&b, "\t%#04x", r)
		}
		fmt.Fprintf(&b, "\t%s\n", pcb.ExeFileName())
		pcb.Unlock()
	}
	return b.String()
}

// Kill requests prompt termination of id and signals the reaper to remove
// it. It is advisory: the target executor may complete one more
// in-flight instruction before its cancellation flag is observed, but it
// is removed from the table within a bounded number of slices either way
// (see DESIGN.md's kill decision).
func (s *System) Kill(id uint16) error {
	if !s.procTbl.Contains(id) {
		return ErrKillUnknown
	}
	s.mu.Lock()
	e, ok := s.executors[id]
	s.mu.Unlock()
	if ok {
		e.Cancel()
	}
	if s.log != nil {
		s.log.Info("kill requested", "pid", id)
	}
	return nil
}

// ParsePID parses a shell-supplied decimal process id.
func ParsePID(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid pid %q", s)
	}
	return uint16(v), nil
}
