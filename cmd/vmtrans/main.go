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
	"bytes"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/db47h/hackvm/hack"
	"github.com/db47h/hackvm/translate"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/tebeka/atexit"
)

// bootstrapMode controls the call to the entry point in the bootstrap code.
type bootstrapMode int

const (
	bootstrapAuto bootstrapMode = iota
	bootstrapAlways
	bootstrapNever
)

var bootstrapNames = [...]string{"auto", "always", "never"}

func (m *bootstrapMode) String() string { return bootstrapNames[*m] }
func (m *bootstrapMode) Set(s string) error {
	for i, n := range bootstrapNames {
		if s == n {
			*m = bootstrapMode(i)
			return nil
		}
	}
	return errors.Errorf("invalid bootstrap mode %q", s)
}
func (m *bootstrapMode) Get() interface{} { return *m }

// callEntry returns true if the bootstrap code must call the entry point. In
// auto mode, this is the case for directory inputs and multi-module runs.
func (m bootstrapMode) callEntry(in *input) bool {
	switch m {
	case bootstrapAlways:
		return true
	case bootstrapNever:
		return false
	}
	return in.dir || len(in.modules) > 1
}

var (
	debug        bool
	comments     = true
	progress     bool
	hackOut      bool
	outFileName  string
	manifestName string
	entry        = translate.DefaultEntry
	stackBase    = translate.DefaultStackBase
	runSteps     int64
	bootstrap    bootstrapMode
	dumpRange    memRange
)

func setupLog() {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func newProgressBar(n int) *progressbar.ProgressBar {
	if !progress {
		return nil
	}
	return progressbar.NewOptions(n,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("translating"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish())
}

// translateAll translates the modules of in to w.
func translateAll(in *input, w io.Writer) (int, error) {
	t, err := translate.New(w,
		translate.EntryPoint(entry),
		translate.StackBase(stackBase),
		translate.Comments(comments),
		translate.WithReporter(translate.LogReporter(slog.Default())))
	if err != nil {
		return 0, err
	}
	if err = t.Begin(bootstrap.callEntry(in)); err != nil {
		return 0, err
	}
	bar := newProgressBar(len(in.modules))
	for _, m := range in.modules {
		if bar != nil {
			bar.Describe(m.name)
		}
		f, err := os.Open(m.path)
		if err != nil {
			return t.Skipped(), errors.Wrap(err, "open failed")
		}
		err = t.TranslateModule(m.name, bufio.NewReader(f))
		f.Close()
		if err != nil {
			return t.Skipped(), err
		}
		slog.Debug("module translated", "module", m.name, "path", m.path)
		if bar != nil {
			bar.Add(1)
		}
	}
	if bar != nil {
		bar.Finish()
	}
	return t.Skipped(), t.End()
}

func atExit(err error) {
	if err == nil {
		atexit.Exit(0)
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	} else {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
	}
	atexit.Exit(1)
}

func main() {
	var err error
	defer func() { atExit(err) }()

	flag.StringVar(&outFileName, "o", "", "output `filename`")
	flag.StringVar(&entry, "entry", entry, "`function` called by the bootstrap code")
	flag.Var(&bootstrap, "bootstrap", "call the entry point from the bootstrap code: auto, always or never")
	flag.BoolVar(&comments, "comments", comments, "write the source instruction before its code")
	flag.IntVar(&stackBase, "stack", stackBase, "initial stack pointer `address`")
	flag.StringVar(&manifestName, "manifest", "", "load settings and sources from YAML `file`")
	flag.Int64Var(&runSteps, "run", 0, "run the program for at most `n` instructions and dump the machine state")
	flag.Var(&dumpRange, "dump", "with -run, also dump RAM `from:to`")
	flag.BoolVar(&hackOut, "hack", false, "also write the assembled program to a .hack file")
	flag.BoolVar(&progress, "progress", false, "show a progress bar")
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")
	flag.Parse()

	setupLog()

	paths := flag.Args()
	if manifestName != "" {
		var m *manifest
		if m, err = loadManifest(manifestName); err != nil {
			return
		}
		set := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
		if err = m.apply(set); err != nil {
			return
		}
		paths = append(m.Sources, paths...)
	}
	if len(paths) == 0 {
		if !isTerminal(os.Stdin) {
			flag.Usage()
			err = errors.New("no input files")
			return
		}
		var name string
		if name, err = prompt(os.Stdin, os.Stderr); err != nil {
			return
		}
		paths = []string{name}
	}

	var in *input
	if in, err = collect(paths, outFileName); err != nil {
		return
	}

	f, err := os.Create(in.out)
	if err != nil {
		err = errors.Wrap(err, "create failed")
		return
	}
	translated := false
	atexit.Register(func() {
		f.Close()
		if !translated {
			os.Remove(in.out)
		}
	})

	var asmText bytes.Buffer
	w := bufio.NewWriter(f)
	skipped, err := translateAll(in, io.MultiWriter(w, &asmText))
	if err != nil {
		return
	}
	if err = w.Flush(); err != nil {
		err = errors.Wrap(err, "write failed")
		return
	}
	translated = true
	slog.Debug("translation complete", "output", in.out, "modules", len(in.modules), "skipped", skipped)

	if !hackOut && runSteps == 0 {
		return
	}
	code, err := assemble(in.out, asmText.Bytes())
	if err != nil {
		return
	}
	if hackOut {
		name := strings.TrimSuffix(in.out, ".asm") + ".hack"
		if err = hack.Save(name, code); err != nil {
			return
		}
	}
	if runSteps > 0 {
		out := bufio.NewWriter(os.Stdout)
		err = execute(code, runSteps, stackBase, dumpRange, out)
		if e := out.Flush(); err == nil && e != nil {
			err = errors.Wrap(e, "write failed")
		}
	}
}
