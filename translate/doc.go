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

// Package translate translates Hack VM code to Hack assembly.
//
// Generate is the core of the package: given an instruction and a State, it
// returns the assembly implementing the instruction. The State carries the
// current module and function names used to scope symbols, and the counters
// used to make internal labels unique across a run.
//
// Memory layout of the generated code:
//
//	address		symbol		use
//	-------		------		---
//	0		SP		stack pointer
//	1		LCL		local segment base
//	2		ARG		argument segment base
//	3-4		THIS, THAT	this and that segment bases (pointer segment)
//	5-12		R5-R12		temp segment
//	13-15		R13-R15		scratch registers
//	16-255				static variables
//	256-				stack
//
// Symbols are scoped as follows:
//
//	static i		Module.i
//	label L			Module.L (top level) or Module.Function$L
//	function F		F
//	internal labels		start with a '$', e.g. $TRUE.Module.3, $RETURN.12
//
// Source names must be identifiers and module names identifiers without dots,
// so that no two distinct symbols share the same text.
//
// A call pushes the return address and the caller's LCL, ARG, THIS and THAT,
// in that order. Booleans are -1 (true) and 0 (false).
package translate
