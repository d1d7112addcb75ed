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

// Package npmresolver declares the npm-package-folder-locator interface
// the resolver core consults, mirroring the RequireNpmResolver trait in
// original_source/ext/node/lib.rs. The core only needs to ask "where is
// this bare specifier's folder" and "is this path already inside a
// managed package tree" — it never walks node_modules on the npm
// resolver's behalf. Per spec.md §1, the npm-package folder locator
// itself is out of scope for the core; Default below is a minimal,
// node_modules-ascending implementation good enough to drive the CLI
// and the test suite, grounded on bennypowers-asimonim's specifier/npm.go
// walk-up-to-node_modules loop.
package npmresolver

import (
	"fmt"
	"path/filepath"

	"bennypowers.dev/noderesolve/fs"
	"bennypowers.dev/noderesolve/permission"
)

// Resolver maps a bare specifier + referrer to a package folder, and
// classifies whether an arbitrary path lies inside a managed package
// tree. Implementations may back this with a global npm cache, a
// vendored node_modules directory, or (as Default does) plain
// node_modules ascent.
type Resolver interface {
	// ResolvePackageFolderFromPackage finds pkgName's folder, searching
	// from referrer's directory upward through node_modules ancestors.
	ResolvePackageFolderFromPackage(pkgName, referrer string) (string, error)

	// ResolvePackageFolderFromPath returns the nearest package folder
	// containing path, if path lies inside one.
	ResolvePackageFolderFromPath(path string) (string, error)

	// InNpmPackage reports whether path is managed by this resolver
	// (e.g. under a node_modules tree it controls), used by the
	// permission gate to grant implicit read access.
	InNpmPackage(path string) bool
}

// NotFoundError is returned when a bare specifier's folder cannot be
// located in any node_modules ancestor of referrer.
type NotFoundError struct {
	Specifier string
	Referrer  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("npmresolver: package %q not found from %q", e.Specifier, e.Referrer)
}

// Default is a plain node_modules-ascending resolver: starting at
// referrer's directory, it checks <dir>/node_modules/<pkgName> at each
// ancestor until the root. Grounded on bennypowers-asimonim's
// specifier.NPMResolver.Resolve loop.
type Default struct {
	FS         fs.FileSystem
	Perm       permission.Checker
	nodeModule string // override for testing; defaults to "node_modules"
}

// NewDefault creates a Default resolver over the given filesystem.
func NewDefault(filesystem fs.FileSystem, perm permission.Checker) *Default {
	return &Default{FS: filesystem, Perm: perm, nodeModule: "node_modules"}
}

func (d *Default) modulesDirName() string {
	if d.nodeModule == "" {
		return "node_modules"
	}
	return d.nodeModule
}

func (d *Default) ResolvePackageFolderFromPackage(pkgName, referrer string) (string, error) {
	dir := filepath.Dir(referrer)
	if d.Perm != nil {
		if err := d.Perm.CheckRead(dir); err != nil {
			return "", err
		}
	}
	for {
		candidate := filepath.Join(dir, d.modulesDirName(), pkgName)
		if d.FS.Exists(candidate) {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", &NotFoundError{Specifier: pkgName, Referrer: referrer}
}

func (d *Default) ResolvePackageFolderFromPath(path string) (string, error) {
	dir := filepath.Clean(path)
	for {
		base := filepath.Base(dir)
		parent := filepath.Dir(dir)
		if base != d.modulesDirName() && filepath.Base(parent) == d.modulesDirName() {
			return dir, nil
		}
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", &NotFoundError{Specifier: "", Referrer: path}
}

func (d *Default) InNpmPackage(path string) bool {
	_, err := d.ResolvePackageFolderFromPath(path)
	return err == nil
}
