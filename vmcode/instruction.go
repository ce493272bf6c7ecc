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

package vmcode

import "strconv"

// Kind identifies the variant of an Instruction.
type Kind int

// Instruction kinds.
const (
	Skip Kind = iota
	Arithmetic
	Push
	Pop
	Label
	Goto
	IfGoto
	Function
	Call
	Return
)

var kindNames = [...]string{
	"skip",
	"arithmetic",
	"push",
	"pop",
	"label",
	"goto",
	"if-goto",
	"function",
	"call",
	"return",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Op is an arithmetic or logical operation.
type Op int

// Arithmetic and logical operations.
const (
	OpAdd Op = iota
	OpSub
	OpNeg
	OpEq
	OpGt
	OpLt
	OpAnd
	OpOr
	OpNot
)

var opNames = [...]string{
	"add",
	"sub",
	"neg",
	"eq",
	"gt",
	"lt",
	"and",
	"or",
	"not",
}

func (o Op) String() string {
	if o < 0 || int(o) >= len(opNames) {
		return "Op(" + strconv.Itoa(int(o)) + ")"
	}
	return opNames[o]
}

// Unary returns true for operations that take a single operand.
func (o Op) Unary() bool { return o == OpNeg || o == OpNot }

// Comparison returns true for eq, gt and lt.
func (o Op) Comparison() bool { return o == OpEq || o == OpGt || o == OpLt }

// Segment is a named memory segment addressed by push and pop.
type Segment int

// Memory segments.
const (
	Constant Segment = iota
	Static
	Local
	Argument
	This
	That
	Pointer
	Temp
)

var segmentNames = [...]string{
	"constant",
	"static",
	"local",
	"argument",
	"this",
	"that",
	"pointer",
	"temp",
}

func (s Segment) String() string {
	if s < 0 || int(s) >= len(segmentNames) {
		return "Segment(" + strconv.Itoa(int(s)) + ")"
	}
	return segmentNames[s]
}

// Size returns the number of addressable slots in fixed size segments, or 0
// if the segment is not bounded.
func (s Segment) Size() int {
	switch s {
	case Pointer:
		return 2
	case Temp:
		return 8
	}
	return 0
}

// MaxIndex is the largest numeric operand accepted. It is the largest value
// that fits in a Hack A-instruction.
const MaxIndex = 1<<15 - 1

// Instruction is a single parsed VM instruction. Fields not used by Kind are
// left to their zero value.
//
//	Kind		Op	Segment	Name	Index
//	Arithmetic	✓
//	Push, Pop		✓		✓ (index)
//	Label, Goto, IfGoto		✓
//	Function			✓	✓ (local count)
//	Call				✓	✓ (argument count)
type Instruction struct {
	Kind    Kind
	Op      Op
	Segment Segment
	Name    string
	Index   int
}

// String returns the canonical source form of the instruction.
func (i Instruction) String() string {
	switch i.Kind {
	case Skip:
		return ""
	case Arithmetic:
		return i.Op.String()
	case Push, Pop:
		return i.Kind.String() + " " + i.Segment.String() + " " + strconv.Itoa(i.Index)
	case Label, Goto, IfGoto:
		return i.Kind.String() + " " + i.Name
	case Function, Call:
		return i.Kind.String() + " " + i.Name + " " + strconv.Itoa(i.Index)
	case Return:
		return "return"
	}
	return i.Kind.String()
}
