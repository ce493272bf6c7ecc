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
	"bytes"
	"strconv"
	"text/scanner"
)

// ErrorKind classifies a rejected source line.
type ErrorKind int

// Classification error kinds.
const (
	UnrecognizedOpcode ErrorKind = iota + 1
	MalformedOperand
	UnknownSegment
)

func (k ErrorKind) String() string {
	switch k {
	case UnrecognizedOpcode:
		return "unrecognized opcode"
	case MalformedOperand:
		return "malformed operand"
	case UnknownSegment:
		return "unknown segment"
	}
	return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
}

// Error describes a source line that could not be classified. Pos is only
// set on errors returned by a Scanner.
type Error struct {
	Kind  ErrorKind
	Token string
	Msg   string
	Pos   scanner.Position
}

func (e *Error) Error() string {
	var b bytes.Buffer
	if e.Pos.IsValid() || e.Pos.Filename != "" {
		b.WriteString(e.Pos.String())
		b.WriteString(": ")
	}
	b.WriteString(e.Kind.String())
	if e.Token != "" {
		b.WriteString(" ")
		b.WriteString(strconv.Quote(e.Token))
	}
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	return b.String()
}

func newError(kind ErrorKind, token, msg string) *Error {
	return &Error{Kind: kind, Token: token, Msg: msg}
}

// ErrList is a list of classification errors. It is used to report all the
// lines skipped while scanning a module.
type ErrList []*Error

func (l ErrList) Error() string {
	var b bytes.Buffer
	for i, e := range l {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e.Error())
	}
	return b.String()
}

// Err returns nil if the list is empty, the list itself otherwise.
func (l ErrList) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}
