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

package translate

import "github.com/db47h/hackvm/vmcode"

// Stack and entry point defaults.
const (
	DefaultStackBase = 256
	DefaultEntry     = "Sys.init"
)

// Bootstrap returns the program preamble: it sets SP to stackBase and, if
// entry is not empty, calls entry with no arguments.
func Bootstrap(st *State, stackBase int, entry string) Fragment {
	var f Fragment
	f.at(stackBase)
	f.emit("D=A", "@SP", "M=D")
	if entry != "" {
		f = append(f, Generate(vmcode.Instruction{Kind: vmcode.Call, Name: entry}, st)...)
	}
	return f
}

// Halt returns the program postamble: an infinite loop.
func Halt() Fragment {
	var f Fragment
	h := Symbol{Kind: HaltLoop}
	f.define(h)
	f.ref(h)
	f.emit("0;JMP")
	return f
}
