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

// This file generalizes the teacher's resolve/workspace.go, whose
// expandWorkspacePattern only understood a single trailing "dir/*"
// segment. doublestar.Glob supports "**" and brace patterns, so a
// "packages/**" or "apps/{web,api}" workspaces entry now expands
// correctly.
package resolve

import (
	"io/fs"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	noderesolvefs "bennypowers.dev/noderesolve/fs"
)

// workspaceFS roots a noderesolve fs.FileSystem at a fixed directory so
// doublestar.Glob (which operates against io/fs.FS, always relative to
// the fsys's own root) can walk it. noderesolve's FileSystem already
// speaks absolute paths, so Open just joins root onto the requested
// relative name.
type workspaceFS struct {
	root string
	fs   noderesolvefs.FileSystem
}

func (w workspaceFS) Open(name string) (fs.File, error) {
	if name == "." {
		return w.fs.Open(w.root)
	}
	return w.fs.Open(w.root + "/" + strings.TrimPrefix(name, "./"))
}

// ExpandWorkspacePatterns resolves a package.json "workspaces" array
// (each entry a doublestar glob, relative to root) into the set of
// matching package directories — each one a candidate root a resolver
// might treat as its own node_modules scope in a monorepo. Entries that
// match no directory are silently omitted; a malformed glob pattern is
// reported as an error naming the offending pattern.
func ExpandWorkspacePatterns(filesystem noderesolvefs.FileSystem, root string, patterns []string) ([]string, error) {
	fsys := workspaceFS{root: root, fs: filesystem}

	seen := make(map[string]bool)
	var matches []string
	for _, pattern := range patterns {
		found, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, &globError{pattern: pattern, cause: err}
		}
		for _, m := range found {
			dir := pathJoinWorkspace(root, m)
			if !seen[dir] {
				seen[dir] = true
				matches = append(matches, dir)
			}
		}
	}
	sort.Strings(matches)
	return matches, nil
}

type globError struct {
	pattern string
	cause   error
}

func (e *globError) Error() string {
	return "resolve: invalid workspace glob " + e.pattern + ": " + e.cause.Error()
}
func (e *globError) Unwrap() error { return e.cause }

func pathJoinWorkspace(root, rel string) string {
	if rel == "." {
		return root
	}
	return root + "/" + rel
}
