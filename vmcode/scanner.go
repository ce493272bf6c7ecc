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
	"bufio"
	"io"
	"text/scanner"

	"github.com/pkg/errors"
)

// MaxLineSize is the longest source line accepted by a Scanner.
const MaxLineSize = 1 << 20

// Scanner reads VM source one line at a time and classifies each line.
// Skip lines are consumed silently.
//
// Classification errors do not stop the scanner: Scan returns true and the
// error is available from LineErr until the next call to Scan. Read errors
// end the scan and are returned by Err.
type Scanner struct {
	s    *bufio.Scanner
	pos  scanner.Position
	in   Instruction
	lerr *Error
	text string
	err  error
}

// NewScanner returns a Scanner reading from r. The name is used in error
// positions, usually the module or file name.
func NewScanner(name string, r io.Reader) *Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 4096), MaxLineSize)
	return &Scanner{
		s:   s,
		pos: scanner.Position{Filename: name},
	}
}

// Scan advances to the next instruction or rejected line. It returns false
// at end of input or on read error.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	for s.s.Scan() {
		s.pos.Line++
		s.pos.Column = 1
		s.text = s.s.Text()
		in, err := Parse(s.text)
		if err != nil {
			e := err.(*Error)
			e.Pos = s.pos
			s.in, s.lerr = Instruction{}, e
			return true
		}
		if in.Kind == Skip {
			continue
		}
		s.in, s.lerr = in, nil
		return true
	}
	if err := s.s.Err(); err != nil {
		s.err = errors.Wrapf(err, "%s: read failed", s.pos.Filename)
	}
	s.in, s.lerr = Instruction{}, nil
	return false
}

// Instruction returns the last instruction read by Scan.
func (s *Scanner) Instruction() Instruction { return s.in }

// LineErr returns the classification error for the last line read by Scan, if
// any. The returned error, if not nil, is an *Error.
func (s *Scanner) LineErr() error {
	if s.lerr == nil {
		return nil
	}
	return s.lerr
}

// Text returns the raw text of the last line read by Scan.
func (s *Scanner) Text() string { return s.text }

// Pos returns the position of the last line read by Scan.
func (s *Scanner) Pos() scanner.Position { return s.pos }

// Err returns the first non-EOF read error.
func (s *Scanner) Err() error { return s.err }

// ParseAll reads and classifies all of r. Rejected lines are skipped and
// returned as an ErrList in the second return value; the third one reports
// read errors.
func ParseAll(name string, r io.Reader) ([]Instruction, ErrList, error) {
	var (
		ins  []Instruction
		errs ErrList
	)
	s := NewScanner(name, r)
	for s.Scan() {
		if s.lerr != nil {
			errs = append(errs, s.lerr)
			continue
		}
		ins = append(ins, s.in)
	}
	return ins, errs, s.Err()
}
