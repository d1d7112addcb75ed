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
	"strings"

	"bennypowers.dev/noderesolve/pathutil"
	"bennypowers.dev/noderesolve/permission"
	"bennypowers.dev/noderesolve/rerr"
)

// NodeModulePaths implements spec.md §4.2: the ordered list of candidate
// node_modules directories for an absolute file from, innermost ancestor
// first, with the Windows drive-root and POSIX-root short circuits.
func NodeModulePaths(perm permission.Checker, from string, os pathutil.OS) ([]string, error) {
	if perm != nil {
		if err := perm.CheckRead(from); err != nil {
			return nil, &rerr.PermissionDeniedError{Path: from, Err: err}
		}
	}

	if os == pathutil.Windows && pathutil.IsWindowsDriveRoot(from) {
		return []string{from + "node_modules"}, nil
	}
	if from == "/" {
		return []string{"/node_modules"}, nil
	}

	// Ascend while a parent directory exists; the root itself is never
	// appended here (node_module_paths("/") is handled by the short
	// circuit above) — on POSIX its node_modules entry comes from the
	// unconditional final append below instead, matching classic Node
	// semantics of always trying "/node_modules" last.
	var paths []string
	dir := from
	for {
		parent, err := pathutil.Dirname(dir, os)
		if err != nil || parent == dir {
			break
		}
		if baseName(dir, os) != "node_modules" {
			paths = append(paths, joinNodeModules(dir, os))
		}
		dir = parent
	}

	if os != pathutil.Windows {
		paths = append(paths, "/node_modules")
	}
	return paths, nil
}

func baseName(p string, os pathutil.OS) string {
	b, err := pathutil.Basename(p, os)
	if err != nil {
		return p
	}
	return b
}

func joinNodeModules(dir string, os pathutil.OS) string {
	sep := "/"
	if os == pathutil.Windows {
		sep = "\\"
	}
	if strings.HasSuffix(dir, sep) {
		return dir + "node_modules"
	}
	return dir + sep + "node_modules"
}
