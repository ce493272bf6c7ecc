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

package main

import (
	"bytes"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/db47h/hackvm/asm"
	"github.com/db47h/hackvm/hack"
	"github.com/db47h/hackvm/internal/hvi"
	"github.com/pkg/errors"
)

var pointerNames = [...]string{"SP", "LCL", "ARG", "THIS", "THAT"}

func dumpSlice(w *hvi.ErrWriter, a []hack.Word) error {
	s := make([]string, len(a))
	for i, v := range a {
		s[i] = strconv.Itoa(int(v))
	}
	return w.WriteLine(strings.Join(s, " "))
}

// memRange is a RAM address range in the form from:to.
type memRange struct {
	from, to int
}

func (r *memRange) String() string {
	if r.to == 0 {
		return ""
	}
	return strconv.Itoa(r.from) + ":" + strconv.Itoa(r.to)
}

func (r *memRange) Set(s string) error {
	f, t, ok := strings.Cut(s, ":")
	if !ok {
		return errors.Errorf("invalid range %q, expected from:to", s)
	}
	from, err := strconv.Atoi(f)
	if err != nil {
		return errors.Wrap(err, "invalid range start")
	}
	to, err := strconv.Atoi(t)
	if err != nil {
		return errors.Wrap(err, "invalid range end")
	}
	if from < 0 || to > hack.RAMSize || from >= to {
		return errors.Errorf("invalid range [%d, %d)", from, to)
	}
	r.from, r.to = from, to
	return nil
}

func (r *memRange) Get() interface{} { return *r }

// dumpCPU writes the registers, the segment pointers and the stack contents
// of i to w, followed by the RAM locations in mem if not empty.
func dumpCPU(i *hack.Instance, stackBase int, mem memRange, w io.Writer) error {
	ew := hvi.NewErrWriter(w)
	ew.WriteLine("PC\t" + strconv.Itoa(i.PC))
	ew.WriteLine("steps\t" + strconv.FormatInt(i.InstructionCount(), 10))
	for n, name := range pointerNames {
		ew.WriteLine(name + "\t" + strconv.Itoa(int(i.RAM[n])))
	}
	io.WriteString(ew, "stack\t")
	dumpSlice(ew, i.Stack(stackBase))
	if mem.to > 0 {
		i.Dump(ew, mem.from, mem.to)
	}
	return ew.Err
}

// assemble assembles the translator output.
func assemble(name string, src []byte) ([]uint16, error) {
	code, err := asm.Assemble(name, bytes.NewReader(src))
	if err != nil {
		return nil, errors.Wrap(err, "assembly failed")
	}
	return code, nil
}

// execute runs code on the emulator for at most steps instructions and dumps
// the final machine state to w. Reaching the step limit is not an error.
func execute(code []uint16, steps int64, stackBase int, mem memRange, w io.Writer) error {
	i, err := hack.New(code, hack.MaxSteps(steps))
	if err != nil {
		return err
	}
	err = i.Run()
	switch {
	case err == nil:
		slog.Debug("program halted", "pc", i.PC, "steps", i.InstructionCount())
	case errors.Cause(err) == hack.ErrStepLimit:
		slog.Warn("program did not halt", "steps", i.InstructionCount())
	default:
		dumpCPU(i, stackBase, mem, w)
		return errors.Wrap(err, "execution failed")
	}
	return dumpCPU(i, stackBase, mem, w)
}
