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
	"log/slog"

	"github.com/db47h/hackvm/vmcode"
)

// Reporter receives the diagnostics for source lines skipped during
// translation.
type Reporter interface {
	Report(module string, err *vmcode.Error)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(module string, err *vmcode.Error)

// Report calls f(module, err).
func (f ReporterFunc) Report(module string, err *vmcode.Error) { f(module, err) }

type logReporter struct {
	l *slog.Logger
}

func (r logReporter) Report(module string, err *vmcode.Error) {
	r.l.Warn("line skipped",
		"module", module,
		"line", err.Pos.Line,
		"kind", err.Kind.String(),
		"token", err.Token,
		"error", err.Error())
}

// LogReporter returns a Reporter logging at Warn level to l. If l is nil,
// slog.Default() is used.
func LogReporter(l *slog.Logger) Reporter {
	if l == nil {
		l = slog.Default()
	}
	return logReporter{l}
}
