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

package asm_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/db47h/hackvm/asm"
)

// check some errors. We're not checking the messages, rather that they point at
// the correct place.
func TestAssemble_errors(t *testing.T) {
	code := `
	@foo
	D=Q
	AMM=D
	D;JXX
(LOOP
@99999
(LOOP)
  (LOOP)
`
	_, err := asm.Assemble("test_errors", strings.NewReader(code))
	errs, ok := err.(asm.ErrAsm)
	if !ok {
		t.Fatalf("expected ErrAsm, got %T: %v", err, err)
	}
	if len(errs) != 6 {
		t.Errorf("expected 6 errors, got %d:\n%v", len(errs), err)
	}
	// locate and match errors in source code
	for _, e := range errs {
		src := code[e.Pos.Offset:]
		if i := strings.IndexByte(src, '\n'); i >= 0 {
			src = src[:i]
		}
		tok := e.Msg[strings.LastIndex(e.Msg, " ")+1:]
		if !strings.Contains(src, tok) {
			t.Errorf("Error message \"%s\" points to %s", e.Msg, src)
		}
	}
}

var assembleTests = [...]struct {
	name string
	code string
	want []uint16
}{
	{"literal", "@0\n@32767", []uint16{0, 32767}},
	{"predefined", "@SP\n@LCL\n@ARG\n@THIS\n@THAT\n@R13\n@SCREEN\n@KBD",
		[]uint16{0, 1, 2, 3, 4, 13, 16384, 24576}},
	{"variables", "@i\n@j\n@i", []uint16{16, 17, 16}},
	{"labels", "(START)\n@END\n0;JMP\n(END)\n@START", []uint16{2, 0xEA87, 0}},
	{"comp", "D=A\nM=D+M\nAM=M-1\nD;JNE\nM=-1", []uint16{0xEC10, 0xF088, 0xFCA8, 0xE305, 0xEE88}},
	{"aliases", "D=A+D\nD=M+D\nD=D+A\nD=1+M", []uint16{0xE090, 0xF090, 0xE090, 0xFDD0}},
	{"dest order", "MD=1\nDM=1\nAMD=0\nDAM=0", []uint16{0xEFD8, 0xEFD8, 0xEAB8, 0xEAB8}},
	{"comments", "// header\n  @1 // one\n\n\tD = A   // spaces", []uint16{1, 0xEC10}},
	{"symbols", "($ret.0)\n@$ret.0\n@Main.main$LOCALS\n(Main.main$LOCALS)", []uint16{0, 2}},
}

func TestAssemble(t *testing.T) {
	for _, test := range assembleTests {
		code, err := asm.Assemble(test.name, strings.NewReader(test.code))
		if err != nil {
			t.Errorf("%s: %v", test.name, err)
			continue
		}
		if len(code) != len(test.want) {
			t.Errorf("%s: expected %04x, got %04x", test.name, test.want, code)
			continue
		}
		for i := range code {
			if code[i] != test.want[i] {
				t.Errorf("%s: expected %04x, got %04x", test.name, test.want, code)
				break
			}
		}
	}
}

// Disassembling then reassembling must yield the same machine code.
func TestDisassemble(t *testing.T) {
	var src bytes.Buffer
	for _, test := range assembleTests {
		src.WriteString(test.code)
		src.WriteByte('\n')
	}
	code, err := asm.Assemble("all", &src)
	if err != nil {
		t.Fatal(err)
	}
	var dis bytes.Buffer
	for pc := range code {
		if err = asm.Disassemble(code, pc, &dis); err != nil {
			t.Fatal(err)
		}
		dis.WriteByte('\n')
	}
	again, err := asm.Assemble("dis", &dis)
	if err != nil {
		t.Fatal(err)
	}
	if len(again) != len(code) {
		t.Fatalf("expected %d instructions, got %d", len(code), len(again))
	}
	for i := range code {
		if code[i] != again[i] {
			t.Errorf("%d: expected %04x, got %04x", i, code[i], again[i])
		}
	}

	if s, ok := asm.Instruction(0xA000); ok {
		t.Errorf("expected invalid instruction, got %s", s)
	}
	dis.Reset()
	asm.DisassembleAll([]uint16{0xA000}, 0, &dis)
	if !strings.Contains(dis.String(), ".dat 0xa000") {
		t.Errorf("unexpected disassembly %q", dis.String())
	}
}
