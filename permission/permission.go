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

// Package permission is the thin adapter between the resolver core and a
// host's dynamic permission model, mirroring the NodePermissions trait
// and ensure_read_permission helper in original_source/ext/node/lib.rs.
package permission

import (
	"fmt"
)

// Checker is the single capability the resolver core needs from a host
// permission object: can this absolute path be read. Hosts that prompt
// the user or consult a sandbox policy implement this; the core never
// inspects or retains more than this borrow-per-operation contract.
type Checker interface {
	CheckRead(path string) error
}

// DeniedError is returned by a Checker that refuses a read. The resolver
// core wraps it into rerr.PermissionDeniedError without inspecting it
// further.
type DeniedError struct {
	Path   string
	Reason string
}

func (e *DeniedError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("permission denied: %s", e.Path)
	}
	return fmt.Sprintf("permission denied: %s (%s)", e.Path, e.Reason)
}

// AllowAll grants every read. It is the default for embedders that don't
// have (or don't need) a sandbox — e.g. the standalone CLI.
type AllowAll struct{}

func (AllowAll) CheckRead(string) error { return nil }

// NpmAwareChecker delegates to an npm-resolver-provided implicit grant
// before falling back to an underlying Checker, matching lib.rs's
// ensure_read_permission: "delegating to the npm-resolver first (which
// may grant implicit read access inside managed package trees)" from
// spec.md §2 component 3.
type NpmAwareChecker struct {
	// InNpmPackage reports whether path lies inside a resolver-managed
	// package tree (e.g. a vendored node_modules cache) that is
	// implicitly readable without prompting.
	InNpmPackage func(path string) bool
	Underlying   Checker
}

func (c NpmAwareChecker) CheckRead(path string) error {
	if c.InNpmPackage != nil && c.InNpmPackage(path) {
		return nil
	}
	if c.Underlying == nil {
		return nil
	}
	return c.Underlying.CheckRead(path)
}
