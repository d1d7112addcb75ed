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
package resolve

import (
	"bennypowers.dev/noderesolve/fs"
	"bennypowers.dev/noderesolve/pathutil"
)

// Logger is the resolver's ambient logging seam, used by cmd/ and by
// embedders that want visibility into which branch of §4's algorithms a
// resolution took without plumbing a return value through every call.
type Logger interface {
	Warning(format string, args ...any)
	Debug(format string, args ...any)
}

// NoopLogger discards everything. It is the default for embedders (and
// tests) that don't care about resolver diagnostics.
type NoopLogger struct{}

func (NoopLogger) Warning(string, ...any) {}
func (NoopLogger) Debug(string, ...any)   {}

// FindWorkspaceRoot walks up from startDir looking for a directory that
// plausibly anchors a project: one containing node_modules, or a .git
// directory. Returns startDir itself when no ancestor qualifies.
func FindWorkspaceRoot(filesystem fs.FileSystem, startDir string) string {
	dir := startDir
	for {
		if stat, err := filesystem.Stat(dir + "/node_modules"); err == nil && stat.IsDir() {
			return dir
		}
		if stat, err := filesystem.Stat(dir + "/.git"); err == nil && stat.IsDir() {
			return dir
		}

		parent, err := pathutil.Dirname(dir, pathutil.POSIX)
		if err != nil || parent == dir {
			return startDir
		}
		dir = parent
	}
}
