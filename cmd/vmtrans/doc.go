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

// The vmtrans command translates Hack VM source files to Hack assembly.
//
// Usage:
//
//	vmtrans [flags] [file.vm|directory]...
//
//	-bootstrap value
//		  call the entry point from the bootstrap code: auto, always or never
//	-comments
//		  write the source instruction before its code (default true)
//	-debug
//		  enable debug diagnostics
//	-dump from:to
//		  with -run, also dump RAM from:to
//	-entry function
//		  function called by the bootstrap code (default "Sys.init")
//	-hack
//		  also write the assembled program to a .hack file
//	-manifest file
//		  load settings and sources from YAML file
//	-o filename
//		  output filename
//	-progress
//		  show a progress bar
//	-run n
//		  run the program for at most n instructions and dump the machine state
//	-stack address
//		  initial stack pointer address (default 256)
//
// Each source file is a module named after the file, without extension. A
// directory argument adds all the .vm files it contains, in name order.
//
// The default output file is Foo.asm for a single file argument Foo.vm, and
// dir/dir.asm for a single directory argument. With more than one argument, -o
// is mandatory. When called without arguments from a terminal, vmtrans asks
// for a file name and appends the .vm extension if missing.
//
// -bootstrap: the bootstrap code always sets the stack pointer. In auto mode,
// it also calls the entry point when translating a directory or more than one
// file.
//
// Lines that cannot be translated are reported on stderr and skipped.
//
// -run: after translation, the program is assembled and executed on a Hack
// CPU emulator until it reaches an infinite loop of the form
//
//	(END)
//	@END
//	0;JMP
//
// or the instruction limit. The program counter, segment pointers and stack
// contents are then written to stdout.
//
// -manifest: settings given on the command line take precedence over the
// manifest. Source files listed in the manifest are translated before those
// given on the command line. Example:
//
//	sources:
//	  - Main.vm
//	  - lib
//	output: Prog.asm
//	bootstrap: always
//	comments: false
//	run: 100000
package main
