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

// Package vmcode parses the source language of the Hack stack virtual machine.
//
// A source module is a sequence of lines, one instruction per line:
//
//	instruction			operands		stack
//	-----------			--------		-----
//	add sub and or			-			xy-z
//	neg not				-			x-y
//	eq gt lt			-			xy-b	(b is -1 for true, 0 for false)
//	push segment i			segment, index		-x
//	pop segment i			segment, index		x-
//	label name			name
//	goto name			name
//	if-goto name			name			b-
//	function name nLocals		name, count
//	call name nArgs			name, count
//	return				-
//
// Segments: constant, static, local, argument, this, that, pointer (0..1) and
// temp (0..7).
//
// Names are made of letters, digits, '_', '.' and ':'. No dot separated part
// of a name may be empty or start with a digit.
//
// Comments start with // and run to the end of the line. Blank lines and
// comments produce Skip instructions.
package vmcode
