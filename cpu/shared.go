/*
 * tinyos - The one CPU in the system, guarded for exclusive access.
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

package cpu

import "sync"

// Shared wraps the system's single CPU with the mutex that makes "exactly
// one CPU, exclusive access enforced by a mutex" hold: whichever executor
// is in its time slice locks Shared, does its work against C, and unlocks.
type Shared struct {
	mu sync.Mutex
	C  *CPU
}

// NewShared returns a Shared wrapping a freshly reset CPU.
func NewShared() *Shared {
	return &Shared{C: New()}
}

// Lock acquires exclusive access to the CPU.
func (s *Shared) Lock() { s.mu.Lock() }

// Unlock releases exclusive access to the CPU.
func (s *Shared) Unlock() { s.mu.Unlock() }
