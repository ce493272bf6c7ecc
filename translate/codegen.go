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

package translate

import (
	"strconv"

	"github.com/db47h/hackvm/vmcode"
)

// Fragment is a sequence of assembly lines implementing a single instruction.
type Fragment []string

func (f *Fragment) emit(lines ...string) { *f = append(*f, lines...) }

func (f *Fragment) at(v int) { f.emit("@" + strconv.Itoa(v)) }

func (f *Fragment) ref(s Symbol) { f.emit("@" + s.String()) }

func (f *Fragment) define(s Symbol) { f.emit("(" + s.String() + ")") }

// pushD pushes the D register.
func (f *Fragment) pushD() {
	f.emit("@SP", "A=M", "M=D", "@SP", "M=M+1")
}

// popD pops the top of stack into D. A is left pointing at the vacated slot.
func (f *Fragment) popD() {
	f.emit("@SP", "AM=M-1", "D=M")
}

// Fixed memory layout.
const (
	pointerBase = 3
	tempBase    = 5
)

// base pointer symbols for indirect segments.
var segmentBase = map[vmcode.Segment]string{
	vmcode.Local:    "LCL",
	vmcode.Argument: "ARG",
	vmcode.This:     "THIS",
	vmcode.That:     "THAT",
}

// frame layout pushed by call, in push order.
var savedPointers = [...]string{"LCL", "ARG", "THIS", "THAT"}

// frameSize is the number of slots pushed by call.
const frameSize = len(savedPointers) + 1

// Generate returns the assembly fragment for a single instruction. The only
// side effects on st are the counter increments of comparisons and calls, and
// the current function update of function declarations.
//
// No consistency checking is done across instructions: a return outside of
// any function or a call with the wrong number of arguments generate code
// with undefined behavior at run time.
func Generate(in vmcode.Instruction, st *State) Fragment {
	var f Fragment
	switch in.Kind {
	case vmcode.Arithmetic:
		f.arithmetic(in.Op, st)
	case vmcode.Push:
		f.push(in.Segment, in.Index, st)
	case vmcode.Pop:
		f.pop(in.Segment, in.Index, st)
	case vmcode.Label:
		f.define(st.label(in.Name))
	case vmcode.Goto:
		f.ref(st.label(in.Name))
		f.emit("0;JMP")
	case vmcode.IfGoto:
		f.popD()
		f.ref(st.label(in.Name))
		f.emit("D;JNE")
	case vmcode.Function:
		f.function(in.Name, in.Index, st)
	case vmcode.Call:
		f.call(in.Name, in.Index, st)
	case vmcode.Return:
		f.ret()
	}
	return f
}

func (f *Fragment) arithmetic(op vmcode.Op, st *State) {
	switch op {
	case vmcode.OpNeg:
		f.emit("@SP", "A=M-1", "M=-M")
	case vmcode.OpNot:
		f.emit("@SP", "A=M-1", "M=!M")
	case vmcode.OpAdd:
		f.binary("M=D+M")
	case vmcode.OpSub:
		f.binary("M=M-D")
	case vmcode.OpAnd:
		f.binary("M=D&M")
	case vmcode.OpOr:
		f.binary("M=D|M")
	case vmcode.OpEq:
		f.compare("D;JEQ", st)
	case vmcode.OpGt:
		f.compare("D;JGT", st)
	case vmcode.OpLt:
		f.compare("D;JLT", st)
	}
}

// binary pops y, then applies op to x (in M) and y (in D) in place.
func (f *Fragment) binary(op string) {
	f.popD()
	f.emit("A=A-1", op)
}

// compare computes x-y and replaces x with -1 if jump is taken, 0 otherwise.
func (f *Fragment) compare(jump string, st *State) {
	t, ff, end := st.nextBranch()
	f.popD()
	f.emit("A=A-1", "D=M-D")
	f.ref(t)
	f.emit(jump)
	f.define(ff)
	f.emit("@SP", "A=M-1", "M=0")
	f.ref(end)
	f.emit("0;JMP")
	f.define(t)
	f.emit("@SP", "A=M-1", "M=-1")
	f.define(end)
}

// address loads the address of segment[index] in A. Not valid for constant.
// For indirect segments, D is clobbered.
func (f *Fragment) address(seg vmcode.Segment, index int, st *State) {
	switch seg {
	case vmcode.Static:
		f.ref(Symbol{Kind: StaticSymbol, Module: st.module, Seq: index})
	case vmcode.Pointer:
		f.at(pointerBase + index)
	case vmcode.Temp:
		f.at(tempBase + index)
	default:
		f.emit("@" + segmentBase[seg])
		switch index {
		case 0:
			f.emit("A=M")
		case 1:
			f.emit("A=M+1")
		default:
			f.emit("D=M")
			f.at(index)
			f.emit("A=D+A")
		}
	}
}

func (f *Fragment) push(seg vmcode.Segment, index int, st *State) {
	if seg == vmcode.Constant {
		f.at(index)
		f.emit("D=A")
	} else {
		f.address(seg, index, st)
		f.emit("D=M")
	}
	f.pushD()
}

func (f *Fragment) pop(seg vmcode.Segment, index int, st *State) {
	switch seg {
	case vmcode.Constant:
		// no storage: discard
		f.emit("@SP", "M=M-1")
	case vmcode.Static, vmcode.Pointer, vmcode.Temp:
		f.popD()
		f.address(seg, index, st)
		f.emit("M=D")
	default:
		// indirect: the target address goes through R13
		f.address(seg, index, st)
		f.emit("D=A", "@R13", "M=D")
		f.popD()
		f.emit("@R13", "A=M", "M=D")
	}
}

func (f *Fragment) function(name string, locals int, st *State) {
	st.function = ""
	f.define(Symbol{Kind: FunctionSymbol, Name: name})
	st.function = name
	if locals == 0 {
		return
	}
	loop := Symbol{Kind: LocalsLoop, Name: name}
	end := Symbol{Kind: LocalsEnd, Name: name}
	f.at(locals)
	f.emit("D=A", "@R13", "M=D")
	f.define(loop)
	f.emit("@R13", "D=M")
	f.ref(end)
	f.emit("D;JLE")
	f.emit("@SP", "A=M", "M=0", "@SP", "M=M+1")
	f.emit("@R13", "M=M-1")
	f.ref(loop)
	f.emit("0;JMP")
	f.define(end)
}

func (f *Fragment) call(name string, args int, st *State) {
	ret := st.nextReturn()
	f.ref(ret)
	f.emit("D=A")
	f.pushD()
	for _, p := range savedPointers {
		f.emit("@"+p, "D=M")
		f.pushD()
	}
	// ARG = SP - args - 5
	f.emit("@SP", "D=M")
	if args+frameSize <= vmcode.MaxIndex {
		f.at(args + frameSize)
		f.emit("D=D-A")
	} else {
		// too large for a single A-instruction
		f.at(args)
		f.emit("D=D-A")
		f.at(frameSize)
		f.emit("D=D-A")
	}
	f.emit("@ARG", "M=D")
	// LCL = SP
	f.emit("@SP", "D=M", "@LCL", "M=D")
	f.ref(Symbol{Kind: FunctionSymbol, Name: name})
	f.emit("0;JMP")
	f.define(ret)
}

func (f *Fragment) ret() {
	// R14 = FRAME = LCL
	f.emit("@LCL", "D=M", "@R14", "M=D")
	// R15 = RET = *(FRAME-5)
	f.at(frameSize)
	f.emit("A=D-A", "D=M", "@R15", "M=D")
	// *ARG = pop()
	f.popD()
	f.emit("@ARG", "A=M", "M=D")
	// SP = ARG+1
	f.emit("@ARG", "D=M+1", "@SP", "M=D")
	// THAT, THIS, ARG, LCL = *(FRAME-1), ..., *(FRAME-4)
	for i := len(savedPointers) - 1; i >= 0; i-- {
		f.emit("@R14", "AM=M-1", "D=M", "@"+savedPointers[i], "M=D")
	}
	f.emit("@R15", "A=M", "0;JMP")
}
