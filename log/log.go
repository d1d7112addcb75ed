/*
Copyright © 2026 Benny Powers <web@bennypowers.com>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

// Package log is the standalone-CLI logging seam: a small interface
// matching resolve.Logger, backed by the standard log package. No
// third-party logging library appears anywhere in the retrieval pack,
// so this stays on the standard library, exactly as the teacher's own
// resolve.Logger does.
package log

import (
	"io"
	"log"
	"os"
)

// Logger is satisfied by resolve.Logger; kept as its own type here so
// cmd/ packages can depend on logging without importing resolve.
type Logger interface {
	Warning(format string, args ...any)
	Debug(format string, args ...any)
}

// StandardLogger writes Warning at all verbosity levels and Debug only
// when Verbose is set, both through the standard library's log package.
type StandardLogger struct {
	Verbose bool
	out     *log.Logger
}

// NewStandardLogger builds a StandardLogger writing to w with the given
// prefix (e.g. "noderesolve: ").
func NewStandardLogger(w io.Writer, prefix string, verbose bool) *StandardLogger {
	return &StandardLogger{Verbose: verbose, out: log.New(w, prefix, 0)}
}

// NewDefaultLogger writes to stderr with the "noderesolve: " prefix.
func NewDefaultLogger(verbose bool) *StandardLogger {
	return NewStandardLogger(os.Stderr, "noderesolve: ", verbose)
}

func (l *StandardLogger) Warning(format string, args ...any) {
	l.out.Printf("warning: "+format, args...)
}

func (l *StandardLogger) Debug(format string, args ...any) {
	if !l.Verbose {
		return
	}
	l.out.Printf("debug: "+format, args...)
}
