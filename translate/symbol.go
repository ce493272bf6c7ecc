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
	"strconv"
	"strings"

	"github.com/db47h/hackvm/vmcode"
)

// SymbolKind identifies the origin of an assembly symbol.
type SymbolKind int

// Symbol kinds.
const (
	LabelSymbol    SymbolKind = iota // label, goto and if-goto targets
	StaticSymbol                     // static segment variables
	FunctionSymbol                   // function entry points
	LocalsLoop                       // local initialization loop head
	LocalsEnd                        // local initialization loop exit
	TrueBranch                       // comparison, true path
	FalseBranch                      // comparison, false path
	JoinBranch                       // comparison, join point
	ReturnAddress                    // call return address
	HaltLoop                         // final halt loop
)

// Symbol is a structured assembly symbol. Its textual form is given by
// String.
//
// Source names are identifiers (see vmcode.IsIdentifier) and module names are
// identifiers without dots. Under these conditions, String is injective:
// statics are the only symbols ending with a numeric part, function scoped
// labels are the only source derived symbols containing a '$', and compiler
// generated symbols all start with a '$'.
type Symbol struct {
	Kind     SymbolKind
	Module   string
	Function string
	Name     string
	Seq      int
}

// String returns the canonical assembly form of the symbol.
func (s Symbol) String() string {
	seq := strconv.Itoa(s.Seq)
	switch s.Kind {
	case LabelSymbol:
		if s.Function != "" {
			return s.Module + "." + s.Function + "$" + s.Name
		}
		return s.Module + "." + s.Name
	case StaticSymbol:
		return s.Module + "." + seq
	case FunctionSymbol:
		return s.Name
	case LocalsLoop:
		return "$LOCALS." + s.Name
	case LocalsEnd:
		return "$LOCALS_END." + s.Name
	case TrueBranch:
		return "$TRUE." + s.Module + "." + seq
	case FalseBranch:
		return "$FALSE." + s.Module + "." + seq
	case JoinBranch:
		return "$END." + s.Module + "." + seq
	case ReturnAddress:
		return "$RETURN." + seq
	case HaltLoop:
		return "$HALT"
	}
	return "$INVALID." + strconv.Itoa(int(s.Kind))
}

// ValidModule returns true if name can be used as a module name.
func ValidModule(name string) bool {
	return vmcode.IsIdentifier(name) && !strings.Contains(name, ".")
}
