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

package asm

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"text/scanner"

	"github.com/db47h/hackvm/internal/hvi"
)

// ErrAsm is the error type returned by Assemble. It lists every problem found
// in the source, up to 10 entries.
type ErrAsm []struct {
	Pos scanner.Position
	Msg string
}

func (e ErrAsm) Error() string {
	var b bytes.Buffer
	for i, err := range e {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(err.Pos.String())
		b.WriteString(": ")
		b.WriteString(err.Msg)
	}
	return b.String()
}

// Assemble compiles Hack assembly read from the supplied io.Reader and returns
// the resulting machine code and error if any.
//
// The name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// The returned error, if not nil, is either a read error or an ErrAsm value.
func Assemble(name string, r io.Reader) ([]uint16, error) {
	return newParser().Parse(name, r)
}

// Instruction returns the assembly form of the machine instruction ins. The
// second return value is false if ins is not a valid instruction.
func Instruction(ins uint16) (string, bool) {
	if ins&0x8000 == 0 {
		return "@" + strconv.Itoa(int(ins)), true
	}
	if ins&cPrefix != cPrefix {
		return "", false
	}
	comp, ok := compNames[ins>>compShift&0x7F]
	if !ok {
		return "", false
	}
	s := comp
	if d := dests[ins>>destShift&7]; d != "" {
		s = d + "=" + s
	}
	if j := jumps[ins&7]; j != "" {
		s += ";" + j
	}
	return s, true
}

// Disassemble writes a disassembly of the instruction at position pc in the
// given slice to the specified io.Writer and returns any write error. Invalid
// instructions are written as ".dat" directives.
func Disassemble(code []uint16, pc int, w io.Writer) error {
	ew := hvi.NewErrWriter(w)
	ins := code[pc]
	if s, ok := Instruction(ins); ok {
		io.WriteString(ew, s)
	} else {
		fmt.Fprintf(ew, ".dat %#04x", ins)
	}
	return ew.Err
}

// DisassembleAll writes a disassembly of all instructions in the given slice
// to the specified io.Writer. The base argument specifies the real address of
// the first instruction (code[0]). It will return any write error.
func DisassembleAll(code []uint16, base int, w io.Writer) error {
	ew := hvi.NewErrWriter(w)
	for pc := range code {
		fmt.Fprintf(ew, "% 6d\t", base+pc)
		Disassemble(code, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
