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

// State is the translation context threaded through Generate. A State is
// owned by a single run and must not be shared between goroutines.
type State struct {
	module   string
	function string
	branches int
	calls    int
}

// StateOption configures a new State.
type StateOption func(*State)

// CounterBase sets the initial values of the branch and call counters. Runs
// that translate modules independently must give each module disjoint counter
// ranges.
func CounterBase(branches, calls int) StateOption {
	return func(s *State) {
		s.branches, s.calls = branches, calls
	}
}

// NewState returns a new translation state positioned at top level, with no
// current module.
func NewState(opts ...StateOption) *State {
	s := new(State)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetModule sets the current module and resets the current function.
func (s *State) SetModule(name string) {
	s.module = name
	s.function = ""
}

// Module returns the current module name.
func (s *State) Module() string { return s.module }

// Function returns the current function name, empty at top level.
func (s *State) Function() string { return s.function }

// Branches returns the number of comparison label sets allocated so far.
func (s *State) Branches() int { return s.branches }

// Calls returns the number of return addresses allocated so far.
func (s *State) Calls() int { return s.calls }

// label returns the scoped symbol for a source label.
func (s *State) label(name string) Symbol {
	return Symbol{Kind: LabelSymbol, Module: s.module, Function: s.function, Name: name}
}

// nextBranch allocates the three labels of a comparison.
func (s *State) nextBranch() (t, f, end Symbol) {
	n := s.branches
	s.branches++
	return Symbol{Kind: TrueBranch, Module: s.module, Seq: n},
		Symbol{Kind: FalseBranch, Module: s.module, Seq: n},
		Symbol{Kind: JoinBranch, Module: s.module, Seq: n}
}

// nextReturn allocates a return address label.
func (s *State) nextReturn() Symbol {
	n := s.calls
	s.calls++
	return Symbol{Kind: ReturnAddress, Seq: n}
}
