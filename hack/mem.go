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

package hack

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/db47h/hackvm/internal/hvi"
	"github.com/pkg/errors"
)

// Read reads a program in the .hack text format: one instruction per line,
// written as 16 binary digits. Blank lines are ignored.
func Read(r io.Reader) ([]uint16, error) {
	var rom []uint16
	s := bufio.NewScanner(r)
	for n := 1; s.Scan(); n++ {
		l := strings.TrimSpace(s.Text())
		if l == "" {
			continue
		}
		if len(l) != 16 {
			return nil, errors.Errorf("line %d: expected 16 binary digits, got %q", n, l)
		}
		v, err := strconv.ParseUint(l, 2, 16)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", n)
		}
		if len(rom) == ROMSize {
			return nil, errors.Errorf("line %d: program too large", n)
		}
		rom = append(rom, uint16(v))
	}
	return rom, errors.Wrap(s.Err(), "read failed")
}

// Write writes a program in the .hack text format.
func Write(w io.Writer, rom []uint16) error {
	ew := hvi.NewErrWriter(w)
	for _, ins := range rom {
		fmt.Fprintf(ew, "%016b\n", ins)
	}
	return ew.Err
}

// Load loads a program from file fileName.
func Load(fileName string) ([]uint16, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "open failed")
	}
	defer f.Close()
	rom, err := Read(bufio.NewReader(f))
	if err != nil {
		return nil, errors.Wrapf(err, "%s: load failed", fileName)
	}
	return rom, nil
}

// Save saves a program to file fileName.
func Save(fileName string, rom []uint16) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return errors.Wrap(err, "create failed")
	}
	w := bufio.NewWriter(f)
	defer func() {
		if e := w.Flush(); err == nil && e != nil {
			err = errors.Wrap(e, "write failed")
		}
		f.Close()
		// delete file on error
		if err != nil {
			os.Remove(fileName)
		}
	}()
	return errors.Wrap(Write(w, rom), "save failed")
}

// Dump writes the contents of RAM[from:to] to the specified io.Writer, one
// "address value" pair per line.
func (i *Instance) Dump(w io.Writer, from, to int) error {
	if from < 0 || to > len(i.RAM) || from > to {
		return errors.Errorf("invalid dump range [%d, %d)", from, to)
	}
	ew := hvi.NewErrWriter(w)
	for a := from; a < to; a++ {
		io.WriteString(ew, strconv.Itoa(a))
		ew.Write([]byte{'\t'})
		ew.WriteLine(strconv.Itoa(int(i.RAM[a])))
	}
	return ew.Err
}
