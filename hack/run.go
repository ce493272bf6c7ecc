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

// ErrStepLimit is the cause of errors returned by Run when the step limit set
// with MaxSteps is reached.
var ErrStepLimit = errors.New("step limit reached")

// control bits of the comp field
const (
	zx = 1 << (5 - iota)
	nx
	zy
	ny
	fn
	no
)

// alu computes the output of the Hack ALU for inputs x and y and the six
// control bits in c.
func alu(x, y Word, c uint16) Word {
	if c&zx != 0 {
		x = 0
	}
	if c&nx != 0 {
		x = ^x
	}
	if c&zy != 0 {
		y = 0
	}
	if c&ny != 0 {
		y = ^y
	}
	var out Word
	if c&fn != 0 {
		out = x + y
	} else {
		out = x & y
	}
	if c&no != 0 {
		out = ^out
	}
	return out
}

func jump(out Word, j uint16) bool {
	return (j&4 != 0 && out < 0) || (j&2 != 0 && out == 0) || (j&1 != 0 && out > 0)
}

func (i *Instance) addr() (int, error) {
	a := int(uint16(i.A))
	if a >= len(i.RAM) {
		return 0, errors.Errorf("address %d out of range @pc=%d", a, i.PC)
	}
	return a, nil
}

// Step executes a single instruction. Stepping a halted CPU is a no-op.
func (i *Instance) Step() error {
	if i.halted {
		return nil
	}
	if i.PC < 0 || i.PC >= len(i.ROM) {
		i.halted = true
		return nil
	}
	ins := i.ROM[i.PC]
	i.insCount++
	if ins&0x8000 == 0 {
		i.A = Word(ins)
		i.PC++
		return nil
	}
	if ins&0xE000 != 0xE000 {
		return errors.Errorf("illegal instruction %#04x @pc=%d", ins, i.PC)
	}

	dest, j := ins>>3&7, ins&7
	var m int
	if ins&0x1000 != 0 || dest&1 != 0 {
		var err error
		if m, err = i.addr(); err != nil {
			return err
		}
	}
	y := i.A
	if ins&0x1000 != 0 {
		y = i.RAM[m]
	}
	out := alu(i.D, y, ins>>6&0x3F)
	target := int(uint16(i.A))
	if dest&1 != 0 {
		i.RAM[m] = out
	}
	if dest&4 != 0 {
		i.A = out
	}
	if dest&2 != 0 {
		i.D = out
	}
	if !jump(out, j) {
		i.PC++
		return nil
	}
	// @self; 0;JMP
	if target == i.PC-1 && dest == 0 && j == 7 && int(i.ROM[target]) == target {
		i.halted = true
	}
	i.PC = target
	return nil
}

// Run executes instructions until the program halts, runs past the end of
// ROM, or the step limit is reached.
//
// A program halts when it executes an unconditional jump to the
// A-instruction immediately preceding it, and that A-instruction loads its own
// address (the usual `(END) @END 0;JMP` loop).
func (i *Instance) Run() error {
	for !i.halted {
		if i.maxSteps > 0 && i.insCount >= i.maxSteps {
			return errors.Wrapf(ErrStepLimit, "@pc=%d after %d instructions", i.PC, i.insCount)
		}
		if err := i.Step(); err != nil {
			return err
		}
	}
	return nil
}
