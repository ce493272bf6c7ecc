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

import (
	"io"

	"github.com/db47h/hackvm/internal/hvi"
	"github.com/db47h/hackvm/vmcode"
	"github.com/pkg/errors"
)

// Translator writes the translation of a sequence of modules to an
// io.Writer.
//
// A run is driven by calling Begin, then SetModule and Translate (or
// TranslateModule) for each source module, and finally End.
type Translator struct {
	w         *hvi.ErrWriter
	st        *State
	entry     string
	stackBase int
	comments  bool
	reporter  Reporter
	skipped   int
}

// Option interface
type Option func(*Translator) error

// EntryPoint sets the function called by the bootstrap code of multi-module
// runs. The default is "Sys.init".
func EntryPoint(name string) Option {
	return func(t *Translator) error {
		if name == "" {
			return errors.New("empty entry point name")
		}
		t.entry = name
		return nil
	}
}

// StackBase sets the initial value of the stack pointer. The default is 256.
func StackBase(addr int) Option {
	return func(t *Translator) error {
		if addr < 0 || addr > vmcode.MaxIndex {
			return errors.Errorf("stack base %d out of range", addr)
		}
		t.stackBase = addr
		return nil
	}
}

// Comments enables or disables the comment line written before the code of
// each instruction. Comments are enabled by default.
func Comments(enable bool) Option {
	return func(t *Translator) error { t.comments = enable; return nil }
}

// WithReporter sets the Reporter notified of skipped source lines. The
// default reports to slog.Default().
func WithReporter(r Reporter) Option {
	return func(t *Translator) error { t.reporter = r; return nil }
}

// WithState makes the translator use st instead of a fresh State.
func WithState(st *State) Option {
	return func(t *Translator) error {
		if st == nil {
			return errors.New("nil State")
		}
		t.st = st
		return nil
	}
}

// SetOptions sets the provided options.
func (t *Translator) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return err
		}
	}
	return nil
}

// New returns a new Translator writing to w.
func New(w io.Writer, opts ...Option) (*Translator, error) {
	t := &Translator{
		w:         hvi.NewErrWriter(w),
		entry:     DefaultEntry,
		stackBase: DefaultStackBase,
		comments:  true,
	}
	if err := t.SetOptions(opts...); err != nil {
		return nil, err
	}
	if t.st == nil {
		t.st = NewState()
	}
	if t.reporter == nil {
		t.reporter = LogReporter(nil)
	}
	return t, nil
}

// State returns the translation state.
func (t *Translator) State() *State { return t.st }

// Skipped returns the number of source lines skipped because of
// classification errors.
func (t *Translator) Skipped() int { return t.skipped }

func (t *Translator) write(comment string, f Fragment) error {
	if t.comments && comment != "" {
		t.w.WriteLine("// " + comment)
	}
	for _, l := range f {
		t.w.WriteLine(l)
	}
	return t.w.Err
}

// Begin writes the bootstrap code. The call to the entry point is only
// generated if multiModule is true.
func (t *Translator) Begin(multiModule bool) error {
	entry := ""
	if multiModule {
		entry = t.entry
	}
	return t.write("bootstrap", Bootstrap(t.st, t.stackBase, entry))
}

// SetModule switches the current module.
func (t *Translator) SetModule(name string) { t.st.SetModule(name) }

// Translate writes the code for a single instruction and returns it.
func (t *Translator) Translate(in vmcode.Instruction) (Fragment, error) {
	f := Generate(in, t.st)
	return f, t.write(in.String(), f)
}

// TranslateModule sets the current module to name and translates all of r.
// Lines that cannot be classified are sent to the Reporter and skipped. The
// returned error is an invalid module name, a read or a write error.
func (t *Translator) TranslateModule(name string, r io.Reader) error {
	if !ValidModule(name) {
		return errors.Errorf("invalid module name %q", name)
	}
	t.SetModule(name)
	s := vmcode.NewScanner(name, r)
	for s.Scan() {
		if err := s.LineErr(); err != nil {
			t.skipped++
			t.reporter.Report(name, err.(*vmcode.Error))
			continue
		}
		if _, err := t.Translate(s.Instruction()); err != nil {
			return err
		}
	}
	return s.Err()
}

// End writes the final halt loop.
func (t *Translator) End() error {
	return t.write("halt", Halt())
}

// Module is a named source module.
type Module struct {
	Name   string
	Source io.Reader
}

// Run translates the given modules to w. Bootstrap code calls the entry point
// only if there is more than one module.
func Run(w io.Writer, modules []Module, opts ...Option) error {
	t, err := New(w, opts...)
	if err != nil {
		return err
	}
	if err = t.Begin(len(modules) > 1); err != nil {
		return err
	}
	for _, m := range modules {
		if err = t.TranslateModule(m.Name, m.Source); err != nil {
			return err
		}
	}
	return t.End()
}
