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

import "strings"

// C-instruction fields.
const (
	cPrefix   = 0xE000
	aBit      = 0x1000
	compShift = 6
	destShift = 3
)

// computations over A; the M forms are derived in init.
var compA = [...]struct {
	m    string
	bits uint16
}{
	{"0", 0x2A},
	{"1", 0x3F},
	{"-1", 0x3A},
	{"D", 0x0C},
	{"A", 0x30},
	{"!D", 0x0D},
	{"!A", 0x31},
	{"-D", 0x0F},
	{"-A", 0x33},
	{"D+1", 0x1F},
	{"A+1", 0x37},
	{"D-1", 0x0E},
	{"A-1", 0x32},
	{"D+A", 0x02},
	{"D-A", 0x13},
	{"A-D", 0x07},
	{"D&A", 0x00},
	{"D|A", 0x15},
}

// commutative spellings accepted by the assembler.
var compAliases = map[string]string{
	"A+D": "D+A",
	"A&D": "D&A",
	"A|D": "D|A",
	"1+D": "D+1",
	"1+A": "A+1",
}

var jumps = [...]string{"", "JGT", "JEQ", "JGE", "JLT", "JNE", "JLE", "JMP"}

var dests = [...]string{"", "M", "D", "MD", "A", "AM", "AD", "AMD"}

// comp mnemonic -> a+c1..c6 bits
var compIndex = make(map[string]uint16)

// a+c1..c6 bits -> canonical mnemonic
var compNames = make(map[uint16]string)

var jumpIndex = make(map[string]uint16)

func init() {
	for _, c := range compA {
		compIndex[c.m] = c.bits
		compNames[c.bits] = c.m
		if strings.Contains(c.m, "A") {
			m := strings.Replace(c.m, "A", "M", 1)
			compIndex[m] = c.bits | aBit>>compShift
			compNames[c.bits|aBit>>compShift] = m
		}
	}
	for alias, canon := range compAliases {
		compIndex[alias] = compIndex[canon]
		if strings.Contains(alias, "A") {
			compIndex[strings.Replace(alias, "A", "M", 1)] = compIndex[strings.Replace(canon, "A", "M", 1)]
		}
	}
	for i, j := range jumps[1:] {
		jumpIndex[j] = uint16(i + 1)
	}
}

// destBits parses a destination made of the letters A, D and M, each at most
// once and in any order.
func destBits(s string) (uint16, bool) {
	var b uint16
	for _, c := range s {
		var bit uint16
		switch c {
		case 'A':
			bit = 4
		case 'D':
			bit = 2
		case 'M':
			bit = 1
		default:
			return 0, false
		}
		if b&bit != 0 {
			return 0, false
		}
		b |= bit
	}
	return b, true
}

// predefined symbols
var predefined = map[string]int{
	"SP":     0,
	"LCL":    1,
	"ARG":    2,
	"THIS":   3,
	"THAT":   4,
	"R0":     0,
	"R1":     1,
	"R2":     2,
	"R3":     3,
	"R4":     4,
	"R5":     5,
	"R6":     6,
	"R7":     7,
	"R8":     8,
	"R9":     9,
	"R10":    10,
	"R11":    11,
	"R12":    12,
	"R13":    13,
	"R14":    14,
	"R15":    15,
	"SCREEN": 16384,
	"KBD":    24576,
}

// VarBase is the address of the first variable allocated by the assembler.
const VarBase = 16
