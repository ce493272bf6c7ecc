// This file is part of hackvm - https://github.com/db47h/hackvm
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hack

import (
	"github.com/pkg/errors"
)

// Word is the raw type stored in a memory location.
type Word int16

// Memory sizes.
const (
	ROMSize = 32768
	RAMSize = 32768
)

// Memory mapped I/O.
const (
	Screen   = 16384
	Keyboard = 24576
)

// Instance represents a Hack CPU with its instruction and data memories.
type Instance struct {
	PC       int      // Program Counter
	A        Word     // A register
	D        Word     // D register
	ROM      []uint16 // Instruction memory
	RAM      []Word   // Data memory
	insCount int64
	maxSteps int64
	halted   bool
}

// Option interface
type Option func(*Instance) error

// DataSize sets the RAM size in words. The default is 32768 words.
func DataSize(size int) Option {
	return func(i *Instance) error {
		if size <= 0 || size > RAMSize {
			return errors.Errorf("RAM size %d out of range", size)
		}
		t := make([]Word, size)
		copy(t, i.RAM)
		i.RAM = t
		return nil
	}
}

// MaxSteps limits the number of instructions executed by Run. A value of 0
// means no limit, which is the default.
func MaxSteps(n int64) Option {
	return func(i *Instance) error {
		if n < 0 {
			return errors.Errorf("negative step limit %d", n)
		}
		i.maxSteps = n
		return nil
	}
}

// Poke sets RAM[addr] = v before the program starts.
func Poke(addr int, v Word) Option {
	return func(i *Instance) error {
		if addr < 0 || addr >= len(i.RAM) {
			return errors.Errorf("address %d out of range", addr)
		}
		i.RAM[addr] = v
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Hack CPU running the given program.
//
// Options will be set by calling SetOptions.
func New(rom []uint16, opts ...Option) (*Instance, error) {
	if len(rom) > ROMSize {
		return nil, errors.Errorf("program too large: %d instructions", len(rom))
	}
	i := &Instance{
		ROM: rom,
		RAM: make([]Word, RAMSize),
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// Reset clears the registers and the halted state. RAM is left untouched.
func (i *Instance) Reset() {
	i.PC, i.A, i.D = 0, 0, 0
	i.insCount = 0
	i.halted = false
}

// Halted returns true if the program has reached a halt loop or ran past the
// end of ROM.
func (i *Instance) Halted() bool { return i.halted }

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// Peek returns RAM[addr]. It panics if addr is out of range.
func (i *Instance) Peek(addr int) Word { return i.RAM[addr] }

// Stack returns the words between address base and the current stack
// pointer, RAM[0]. Changes to the returned slice are reflected in RAM.
func (i *Instance) Stack(base int) []Word {
	sp := int(uint16(i.RAM[0]))
	if sp < base || sp > len(i.RAM) {
		return nil
	}
	return i.RAM[base:sp]
}
