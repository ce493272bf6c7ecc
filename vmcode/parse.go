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

import (
	"strconv"
	"strings"
	"unicode"
)

// operand layout of an opcode.
type layout int

const (
	noArgs layout = iota
	nameArg
	segmentIndex
	nameCount
)

type opcode struct {
	kind   Kind
	op     Op
	layout layout
}

var opcodes = map[string]opcode{
	"add":      {Arithmetic, OpAdd, noArgs},
	"sub":      {Arithmetic, OpSub, noArgs},
	"neg":      {Arithmetic, OpNeg, noArgs},
	"eq":       {Arithmetic, OpEq, noArgs},
	"gt":       {Arithmetic, OpGt, noArgs},
	"lt":       {Arithmetic, OpLt, noArgs},
	"and":      {Arithmetic, OpAnd, noArgs},
	"or":       {Arithmetic, OpOr, noArgs},
	"not":      {Arithmetic, OpNot, noArgs},
	"push":     {kind: Push, layout: segmentIndex},
	"pop":      {kind: Pop, layout: segmentIndex},
	"label":    {kind: Label, layout: nameArg},
	"goto":     {kind: Goto, layout: nameArg},
	"if-goto":  {kind: IfGoto, layout: nameArg},
	"function": {kind: Function, layout: nameCount},
	"call":     {kind: Call, layout: nameCount},
	"return":   {kind: Return, layout: noArgs},
}

var segmentByName = make(map[string]Segment)

func init() {
	for i, v := range segmentNames {
		segmentByName[v] = Segment(i)
	}
}

// argument count per layout, not including the opcode.
var layoutArgs = [...]int{
	noArgs:       0,
	nameArg:      1,
	segmentIndex: 2,
	nameCount:    2,
}

// stripComment removes an end of line comment.
func stripComment(line string) string {
	if i := strings.Index(line, "//"); i >= 0 {
		return line[:i]
	}
	return line
}

// IsIdentifier returns true if s is a valid label, function or module name:
// letters, digits, '_', '.' and ':', where no dot separated part is empty or
// starts with a digit.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, part := range strings.Split(s, ".") {
		if part == "" || part[0] >= '0' && part[0] <= '9' {
			return false
		}
		for _, c := range part {
			if !unicode.IsLetter(c) && !unicode.IsDigit(c) && c != '_' && c != ':' {
				return false
			}
		}
	}
	return true
}

func parseName(tok string) (string, error) {
	if !IsIdentifier(tok) {
		return "", newError(MalformedOperand, tok, "invalid name")
	}
	return tok, nil
}

func parseCount(tok string) (int, error) {
	for _, c := range tok {
		if c < '0' || c > '9' {
			return 0, newError(MalformedOperand, tok, "not a non-negative integer")
		}
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n > MaxIndex {
		return 0, newError(MalformedOperand, tok, "value out of range [0, "+strconv.Itoa(MaxIndex)+"]")
	}
	return n, nil
}

// Parse classifies a single line of VM source. Blank lines and comments yield
// an Instruction of Kind Skip. On failure, the returned error is an *Error.
func Parse(line string) (Instruction, error) {
	fields := strings.Fields(stripComment(line))
	if len(fields) == 0 {
		return Instruction{}, nil
	}
	oc, ok := opcodes[fields[0]]
	if !ok {
		return Instruction{}, newError(UnrecognizedOpcode, fields[0], "")
	}

	args := fields[1:]
	want := layoutArgs[oc.layout]
	if len(args) < want {
		return Instruction{}, newError(MalformedOperand, "", fields[0]+": expected "+strconv.Itoa(want)+" operand(s), got "+strconv.Itoa(len(args)))
	}
	if len(args) > want {
		return Instruction{}, newError(MalformedOperand, args[want], "unexpected operand")
	}

	in := Instruction{Kind: oc.kind, Op: oc.op}
	switch oc.layout {
	case nameArg:
		name, err := parseName(args[0])
		if err != nil {
			return Instruction{}, err
		}
		in.Name = name
	case segmentIndex:
		seg, ok := segmentByName[args[0]]
		if !ok {
			return Instruction{}, newError(UnknownSegment, args[0], "")
		}
		n, err := parseCount(args[1])
		if err != nil {
			return Instruction{}, err
		}
		if sz := seg.Size(); sz > 0 && n >= sz {
			return Instruction{}, newError(MalformedOperand, args[1], seg.String()+" index out of range [0, "+strconv.Itoa(sz-1)+"]")
		}
		in.Segment, in.Index = seg, n
	case nameCount:
		name, err := parseName(args[0])
		if err != nil {
			return Instruction{}, err
		}
		n, err := parseCount(args[1])
		if err != nil {
			return Instruction{}, err
		}
		in.Name, in.Index = name, n
	}
	return in, nil
}
