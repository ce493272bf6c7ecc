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

// Package hack implements a Hack CPU emulator.
//
// The Hack machine has a 32K words instruction memory (ROM), a 32K words data
// memory (RAM) and two 16 bits registers, A and D. M designates the RAM word
// addressed by A. Instructions are either A-instructions, which load a 15 bits
// constant in A, or C-instructions, which compute a function of D and A or M,
// store it in any of A, D and M, and optionally jump to the address in A
// depending on the sign of the result.
//
// The emulator is meant to run the output of the translator and inspect the
// machine state afterwards: there is no screen nor keyboard emulation, the
// corresponding memory maps are plain RAM.
package hack
