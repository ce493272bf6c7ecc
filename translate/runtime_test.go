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

package translate_test

import (
	"github.com/db47h/hackvm/hack"
	"github.com/db47h/hackvm/translate"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Generated code", func() {
	var cpu *hack.Instance

	Context("single module", func() {
		run := func(src string, opts ...hack.Option) {
			cpu = execute(translateModules(nil, "Test", src), opts...)
		}

		It("adds two constants into a static", func() {
			run("push constant 7\npush constant 8\nadd\npop static 0\npush static 0\n")
			Expect(cpu.Stack(256)).To(Equal(words(15)))
			Expect(cpu.Peek(16)).To(Equal(hack.Word(15)))
		})

		It("leaves the stack pointer unchanged after a balanced sequence", func() {
			run("push constant 7\npush constant 8\nadd\npop static 0\n")
			Expect(cpu.Peek(0)).To(Equal(hack.Word(256)))
		})

		It("evaluates arithmetic and logic operations", func() {
			run(`push constant 5
push constant 3
gt
pop temp 0
push constant 5
push constant 3
lt
pop temp 1
push constant 4
push constant 4
eq
pop temp 2
push constant 3
push constant 5
sub
pop temp 3
push constant 3
neg
pop temp 4
push constant 12
push constant 10
and
pop temp 5
push constant 12
push constant 10
or
pop temp 6
push constant 0
not
pop temp 7
`)
			Expect(cpu.RAM[5:13]).To(Equal(words(-1, 0, -1, -2, -3, 8, 14, -1)))
			Expect(cpu.Peek(0)).To(Equal(hack.Word(256)))
		})

		It("compares negative values", func() {
			run("push constant 0\npush constant 1\nsub\npush constant 1\nlt\npush constant 1\npush constant 0\npush constant 1\nsub\ngt\n")
			Expect(cpu.Stack(256)).To(Equal(words(-1, -1)))
		})

		It("round trips a value through a segment", func() {
			run("push constant 1234\npop local 0\npush local 0\n", pointers(300, 400, 3000, 4000)...)
			Expect(cpu.Stack(256)).To(Equal(words(1234)))
			Expect(cpu.Peek(300)).To(Equal(hack.Word(1234)))
		})

		It("addresses indirect segments", func() {
			run(`push constant 7
pop local 0
push constant 8
pop local 1
push constant 9
pop argument 3
push constant 10
pop this 2
push constant 20
pop that 5
push local 0
push local 1
add
push argument 3
add
push this 2
add
push that 5
add
`, pointers(300, 400, 3000, 4000)...)
			Expect(cpu.Stack(256)).To(Equal(words(54)))
			Expect(cpu.RAM[300:302]).To(Equal(words(7, 8)))
			Expect(cpu.Peek(403)).To(Equal(hack.Word(9)))
			Expect(cpu.Peek(3002)).To(Equal(hack.Word(10)))
			Expect(cpu.Peek(4005)).To(Equal(hack.Word(20)))
		})

		It("maps pointer onto THIS and THAT", func() {
			run(`push constant 3030
pop pointer 0
push constant 3040
pop pointer 1
push constant 32
pop this 2
push constant 46
pop that 6
push pointer 0
`)
			Expect(cpu.Peek(3)).To(Equal(hack.Word(3030)))
			Expect(cpu.Peek(4)).To(Equal(hack.Word(3040)))
			Expect(cpu.Peek(3032)).To(Equal(hack.Word(32)))
			Expect(cpu.Peek(3046)).To(Equal(hack.Word(46)))
			Expect(cpu.Stack(256)).To(Equal(words(3030)))
		})

		It("discards the top of stack on pop constant", func() {
			run("push constant 1\npush constant 2\npop constant 0\n")
			Expect(cpu.Stack(256)).To(Equal(words(1)))
		})

		It("falls through on a false if-goto", func() {
			run("push constant 0\nif-goto skip\npush constant 1\nlabel skip\n")
			Expect(cpu.Stack(256)).To(Equal(words(1)))
		})

		It("jumps on any non zero value", func() {
			run("push constant 2\nif-goto skip\npush constant 1\nlabel skip\npush constant 3\n")
			Expect(cpu.Stack(256)).To(Equal(words(3)))
		})

		It("loops with goto", func() {
			// sum 1..10
			run(`push constant 0
pop temp 0
push constant 10
pop temp 1
label loop
push temp 0
push temp 1
add
pop temp 0
push temp 1
push constant 1
sub
pop temp 1
push temp 1
if-goto loop
`)
			Expect(cpu.Peek(5)).To(Equal(hack.Word(55)))
			Expect(cpu.Peek(0)).To(Equal(hack.Word(256)))
		})

		It("honors a custom stack base", func() {
			cpu = execute(translateModules([]translate.Option{translate.StackBase(1000)}, "Test", "push constant 5\n"))
			Expect(cpu.Stack(1000)).To(Equal(words(5)))
		})
	})

	Context("functions", func() {
		It("restores the caller frame on return", func() {
			cpu = execute(translateWithLib(
				"push constant 11\npush constant 22\ncall Lib.f 2\n",
				"function Lib.f 0\npush constant 99\nreturn\n",
			), pointers(300, 400, 3000, 4000)...)
			Expect(cpu.Stack(256)).To(Equal(words(99)))
			Expect(cpu.RAM[1:5]).To(Equal(words(300, 400, 3000, 4000)))
		})

		It("passes arguments", func() {
			cpu = execute(translateWithLib(
				"push constant 10\npush constant 3\ncall Lib.sub 2\n",
				"function Lib.sub 0\npush argument 0\npush argument 1\nsub\nreturn\n",
			), pointers(300, 400, 3000, 4000)...)
			Expect(cpu.Stack(256)).To(Equal(words(7)))
		})

		It("zeroes locals on entry", func() {
			var garbage []hack.Option
			for a := 256; a < 300; a++ {
				garbage = append(garbage, hack.Poke(a, 77))
			}
			garbage = append(garbage, pointers(300, 400, 3000, 4000)...)
			cpu = execute(translateWithLib(
				"call Lib.locals 0\n",
				`function Lib.locals 3
push local 0
push local 1
add
push local 2
add
return
`,
			), garbage...)
			Expect(cpu.Stack(256)).To(Equal(words(0)))
			Expect(cpu.RAM[1:5]).To(Equal(words(300, 400, 3000, 4000)))
		})

		It("scopes labels per function", func() {
			cpu = execute(translateWithLib(
				"call Lib.f 0\ncall Lib.g 0\nadd\n",
				`function Lib.f 1
label loop
push local 0
push constant 1
add
pop local 0
push local 0
push constant 3
lt
if-goto loop
push local 0
return
function Lib.g 0
push constant 0
if-goto loop
push constant 100
return
label loop
push constant 200
return
`,
			), pointers(300, 400, 3000, 4000)...)
			Expect(cpu.Stack(256)).To(Equal(words(103)))
		})

		It("calls the entry point of multi-module programs", func() {
			cpu = execute(translateModules(nil,
				"Main", `function Main.fib 0
push argument 0
push constant 2
lt
if-goto base
push argument 0
push constant 1
sub
call Main.fib 1
push argument 0
push constant 2
sub
call Main.fib 1
add
return
label base
push argument 0
return
`,
				"Sys", `function Sys.init 0
push constant 10
call Main.fib 1
pop temp 0
label halt
goto halt
`))
			Expect(cpu.Peek(5)).To(Equal(hack.Word(55)))
		})

		It("keeps statics private to their module", func() {
			lib := func(m, v string) string {
				return "function " + m + ".set 0\npush constant " + v + "\npop static 0\npush constant 0\nreturn\n" +
					"function " + m + ".get 0\npush static 0\nreturn\n"
			}
			cpu = execute(translateModules(nil,
				"A", lib("A", "1"),
				"B", lib("B", "2"),
				"Sys", `function Sys.init 0
call A.set 0
pop temp 0
call B.set 0
pop temp 0
call A.get 0
pop temp 1
call B.get 0
pop temp 2
label halt
goto halt
`))
			Expect(cpu.RAM[6:8]).To(Equal(words(1, 2)))
		})

		It("calls a custom entry point", func() {
			opts := []translate.Option{translate.EntryPoint("Main.main")}
			cpu = execute(translateModules(opts,
				"Main", "function Main.main 0\npush constant 42\npop temp 0\nlabel end\ngoto end\n",
				"Other", "function Other.nop 0\npush constant 0\nreturn\n",
			))
			Expect(cpu.Peek(5)).To(Equal(hack.Word(42)))
		})
	})
})
