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
	"bufio"
	"io"
	"strconv"
	"strings"
	"text/scanner"
	"unicode"

	"github.com/pkg/errors"
)

const maxErrors = 10

func isSymbolRune(ch rune, i int) bool {
	switch {
	case unicode.IsLetter(ch), ch == '_', ch == '.', ch == '$', ch == ':':
		return true
	case unicode.IsDigit(ch):
		return i > 0
	}
	return false
}

func isSymbol(s string) bool {
	if s == "" {
		return false
	}
	for i, ch := range s {
		if !isSymbolRune(ch, i) {
			return false
		}
	}
	return true
}

// source line stripped of comments and blanks.
type line struct {
	pos  scanner.Position
	text string
}

type parser struct {
	lines  []line
	labels map[string]int
	vars   map[string]int
	next   int
	code   []uint16
	errs   ErrAsm
}

func newParser() *parser {
	return &parser{
		labels: make(map[string]int),
		vars:   make(map[string]int),
		next:   VarBase,
	}
}

func (p *parser) error(pos scanner.Position, msg string) {
	if len(p.errs) < maxErrors {
		p.errs = append(p.errs, struct {
			Pos scanner.Position
			Msg string
		}{pos, msg})
	}
}

// read loads all non blank lines and strips comments and white space.
func (p *parser) read(name string, r io.Reader) error {
	s := bufio.NewScanner(r)
	pos := scanner.Position{Filename: name}
	for s.Scan() {
		pos.Line++
		raw := s.Text()
		text := raw
		if i := strings.Index(text, "//"); i >= 0 {
			text = text[:i]
		}
		lead := len(text) - len(strings.TrimLeftFunc(text, unicode.IsSpace))
		text = strings.Join(strings.Fields(text), "")
		if text != "" {
			lp := pos
			lp.Column = lead + 1
			lp.Offset = pos.Offset + lead
			p.lines = append(p.lines, line{lp, text})
		}
		pos.Offset += len(raw) + 1
	}
	return errors.Wrap(s.Err(), "read failed")
}

// first pass: label addresses.
func (p *parser) scanLabels() {
	pc := 0
	for _, l := range p.lines {
		if l.text[0] != '(' {
			pc++
			continue
		}
		if l.text[len(l.text)-1] != ')' {
			p.error(l.pos, "Unterminated label definition: "+l.text)
			continue
		}
		n := l.text[1 : len(l.text)-1]
		if !isSymbol(n) {
			p.error(l.pos, "Invalid label name: "+n)
			continue
		}
		if _, ok := predefined[n]; ok {
			p.error(l.pos, "Label redefinition of predefined symbol: "+n)
			continue
		}
		if _, ok := p.labels[n]; ok {
			p.error(l.pos, "Label redefinition: "+n)
			continue
		}
		p.labels[n] = pc
	}
}

func (p *parser) symbol(name string) int {
	if v, ok := predefined[name]; ok {
		return v
	}
	if v, ok := p.labels[name]; ok {
		return v
	}
	v, ok := p.vars[name]
	if !ok {
		v = p.next
		p.vars[name] = v
		p.next++
	}
	return v
}

func (p *parser) address(l line) {
	arg := l.text[1:]
	if arg == "" {
		p.error(l.pos, "Missing address: "+l.text)
		return
	}
	if arg[0] >= '0' && arg[0] <= '9' {
		n, err := strconv.ParseUint(arg, 10, 15)
		if err != nil {
			p.error(l.pos, "Invalid constant: "+arg)
			return
		}
		p.code = append(p.code, uint16(n))
		return
	}
	if !isSymbol(arg) {
		p.error(l.pos, "Invalid symbol: "+arg)
		return
	}
	p.code = append(p.code, uint16(p.symbol(arg)))
}

func (p *parser) compute(l line) {
	s := l.text
	var dest, jump uint16
	if i := strings.IndexByte(s, '='); i >= 0 {
		d, ok := destBits(s[:i])
		if !ok || i == 0 {
			p.error(l.pos, "Invalid destination: "+s[:i])
			return
		}
		dest, s = d, s[i+1:]
	}
	if i := strings.IndexByte(s, ';'); i >= 0 {
		j, ok := jumpIndex[s[i+1:]]
		if !ok {
			p.error(l.pos, "Invalid jump: "+s[i+1:])
			return
		}
		jump, s = j, s[:i]
	}
	comp, ok := compIndex[s]
	if !ok {
		p.error(l.pos, "Invalid computation: "+s)
		return
	}
	p.code = append(p.code, cPrefix|comp<<compShift|dest<<destShift|jump)
}

// Parse does the parsing and encoding.
func (p *parser) Parse(name string, r io.Reader) ([]uint16, error) {
	if err := p.read(name, r); err != nil {
		return nil, err
	}
	p.scanLabels()
	for _, l := range p.lines {
		switch l.text[0] {
		case '(':
		case '@':
			p.address(l)
		default:
			p.compute(l)
		}
	}
	if len(p.errs) > 0 {
		return nil, p.errs
	}
	return p.code, nil
}
