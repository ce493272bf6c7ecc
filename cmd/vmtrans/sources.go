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
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/db47h/hackvm/translate"
	"github.com/pkg/errors"
)

const vmExt = ".vm"

// source is a VM source file and its module name.
type source struct {
	name string
	path string
}

// input is the resolved list of modules of a run.
type input struct {
	modules []source
	dir     bool   // at least one directory argument
	out     string // output file name
}

// moduleName returns the module name for a source file: its base name without
// extension.
func moduleName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// defaultOutput returns the default output file for a single path argument.
func defaultOutput(path string, dir bool) (string, error) {
	if !dir {
		return strings.TrimSuffix(path, filepath.Ext(path)) + ".asm", nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrap(err, "cannot resolve directory name")
	}
	return filepath.Join(path, filepath.Base(abs)+".asm"), nil
}

// vmFiles returns the .vm files in directory dir, sorted by name.
func vmFiles(dir string) ([]string, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "read directory failed")
	}
	var files []string
	for _, e := range ents {
		if e.Type().IsRegular() && filepath.Ext(e.Name()) == vmExt {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		return nil, errors.Errorf("%s: no %s files", dir, vmExt)
	}
	sort.Strings(files)
	return files, nil
}

// collect resolves the command line paths into a list of modules. Directories
// expand to all the .vm files they contain. If out is empty, it defaults to
// <stem>.asm for a single file or <dir>/<dir>.asm for a single directory.
func collect(paths []string, out string) (*input, error) {
	if len(paths) == 0 {
		return nil, errors.New("no input files")
	}
	in := &input{out: out}
	seen := make(map[string]string)
	add := func(path string) error {
		name := moduleName(path)
		if !translate.ValidModule(name) {
			return errors.Errorf("%s: invalid module name %q", path, name)
		}
		if prev, ok := seen[name]; ok {
			return errors.Errorf("module %s defined by both %s and %s", name, prev, path)
		}
		seen[name] = path
		in.modules = append(in.modules, source{name, path})
		return nil
	}
	for _, p := range paths {
		fi, err := os.Stat(p)
		if err != nil {
			return nil, errors.Wrap(err, "invalid input")
		}
		if !fi.IsDir() {
			if err = add(p); err != nil {
				return nil, err
			}
			continue
		}
		in.dir = true
		files, err := vmFiles(p)
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			if err = add(f); err != nil {
				return nil, err
			}
		}
	}
	if in.out == "" {
		if len(paths) > 1 {
			return nil, errors.New("an output file name is required with multiple inputs")
		}
		var err error
		if in.out, err = defaultOutput(paths[0], in.dir); err != nil {
			return nil, err
		}
	}
	return in, nil
}

// prompt asks for an input file name on w and reads it from r. The .vm
// extension is added to names of non-directories that do not have it.
func prompt(r io.Reader, w io.Writer) (string, error) {
	fmt.Fprint(w, "VM file or directory: ")
	s := bufio.NewScanner(r)
	if !s.Scan() {
		if err := s.Err(); err != nil {
			return "", errors.Wrap(err, "read failed")
		}
		return "", errors.New("no input file")
	}
	name := strings.TrimSpace(s.Text())
	if name == "" {
		return "", errors.New("no input file")
	}
	if fi, err := os.Stat(name); err == nil && fi.IsDir() {
		return name, nil
	}
	if filepath.Ext(name) != vmExt {
		name += vmExt
	}
	return name, nil
}
