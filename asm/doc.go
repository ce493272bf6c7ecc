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

// Package asm provides utility functions to assemble and disassemble Hack
// machine code.
//
// Source format:
//
//	@value		A-instruction: load a 15 bits constant or symbol in A
//	dest=comp;jump	C-instruction: dest and jump are optional
//	(LABEL)		define LABEL as the address of the next instruction
//	// text		comment until end of line
//
// White space inside instructions is ignored.
//
// dest is any combination of the registers A, D and M (memory at address A),
// each at most once. jump is one of JGT, JEQ, JGE, JLT, JNE, JLE or JMP and
// compares the result of comp with 0.
//
// comp is one of:
//
//	0  1  -1  D  A  M  !D  !A  !M  -D  -A  -M
//	D+1  A+1  M+1  D-1  A-1  M-1
//	D+A  D+M  D-A  D-M  A-D  M-D  D&A  D&M  D|A  D|M
//
// The assembler also accepts the commutative spellings A+D, M+D, A&D, M&D,
// A|D, M|D, 1+D, 1+A and 1+M.
//
// Symbols are made of letters, digits, '_', '.', '$' and ':', and may not
// start with a digit. Predefined symbols:
//
//	SP LCL ARG THIS THAT	0 to 4
//	R0 to R15		0 to 15
//	SCREEN			16384
//	KBD			24576
//
// Symbols that are neither predefined nor labels are variables, allocated in
// order of first appearance from address 16.
package asm
