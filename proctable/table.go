/*
 * tinyos - Bounded process table: free-id pool plus live PCB lookup.
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

// Package proctable holds the bounded mapping from process id to PCB, with
// an explicit pool of free ids: filled FIFO at startup (ids hand out in
// ascending order the first time through), and LIFO on free (the most
// recently exited id is the next one reused, which keeps id churn low for
// a shell that execs and kills processes in bursts).
package proctable

import (
	"errors"
	"sort"
	"sync"

	"github.com/rcornwell/tinyos/instr"
	"github.com/rcornwell/tinyos/process"
)

// MaxProcs bounds how many processes may exist at once.
const MaxProcs = 10

// ErrFull is returned by Alloc when every process id is in use.
var ErrFull = errors.New("proctable: table full")

// Table is the process table. The zero value is not usable; use New.
type Table struct {
	mu      sync.Mutex
	freeIDs []uint16
	procs   map[uint16]*process.PCB
}

// New returns a Table whose free pool holds every id 0..MaxProcs-1, in
// ascending order.
func New() *Table {
	free := make([]uint16, MaxProcs)
	for i := range free {
		free[i] = uint16(i)
	}
	return &Table{
		freeIDs: free,
		procs:   make(map[uint16]*process.PCB, MaxProcs),
	}
}

// Alloc pops the front free id, builds a PCB for it, and stores it. It
// returns ErrFull if the free pool is empty.
func (t *Table) Alloc(exeFileName string, block *instr.Block) (*process.PCB, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.freeIDs) == 0 {
		return nil, ErrFull
	}
	id := t.freeIDs[0]
	t.freeIDs = t.freeIDs[1:]

	pcb := process.New(id, exeFileName, block)
	t.procs[id] = pcb
	return pcb, nil
}

// Dealloc removes id from the table, if present, and returns it to the
// front of the free pool so it is the next id reused.
func (t *Table) Dealloc(id uint16) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.procs[id]; !ok {
		return
	}
	delete(t.procs, id)
	t.freeIDs = append([]uint16{id}, t.freeIDs...)
}

// Contains reports whether id names a live process.
func (t *Table) Contains(id uint16) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.procs[id]
	return ok
}

// Get returns the PCB for id, if live.
func (t *Table) Get(id uint16) (*process.PCB, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	pcb, ok := t.procs[id]
	return pcb, ok
}

// Snapshot returns every live PCB, ordered by ascending process id, taken
// under the table lock. Each PCB is still a live, shared pointer: callers
// must take the PCB's own lock before reading its mutable fields.
func (t *Table) Snapshot() []*process.PCB {
	t.mu.Lock()
	defer t.mu.Unlock()

	ids := make([]uint16, 0, len(t.procs))
	for id := range t.procs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]*process.PCB, len(ids))
	for i, id := range ids {
		out[i] = t.procs[id]
	}
	return out
}
