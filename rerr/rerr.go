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

// Package rerr holds the resolver's error taxonomy (spec.md §7), shared
// between packagejson and resolve so neither has to import the other to
// report a shared failure mode. Each kind is a distinct type so callers
// can branch with errors.As, and each also wraps a package-level sentinel
// so errors.Is works against the kind alone.
package rerr

import "fmt"

// Sentinels for errors.Is. Each concrete error type below wraps one of
// these via Unwrap, so callers that don't need the struct's fields can
// still test errors.Is(err, rerr.ErrPackagePathNotExported) etc.
var (
	ErrInvalidSpecifier         = fmt.Errorf("invalid specifier")
	ErrInvalidPackageConfig     = fmt.Errorf("invalid package config")
	ErrInvalidPackageTarget     = fmt.Errorf("invalid package target")
	ErrPackagePathNotExported   = fmt.Errorf("package path not exported")
	ErrPackageImportNotDefined  = fmt.Errorf("package import not defined")
	ErrPackageNotFound          = fmt.Errorf("package not found")
	ErrModuleNotFound           = fmt.Errorf("module not found")
	ErrPermissionDenied         = fmt.Errorf("permission denied")
	ErrIo                       = fmt.Errorf("io error")
)

// InvalidSpecifierError reports a malformed module request.
type InvalidSpecifierError struct {
	Specifier string
}

func (e *InvalidSpecifierError) Error() string {
	return fmt.Sprintf("invalid specifier %q", e.Specifier)
}
func (e *InvalidSpecifierError) Unwrap() error { return ErrInvalidSpecifier }

// InvalidPackageConfigError reports an unreadable, non-JSON, or
// invariant-violating package.json.
type InvalidPackageConfigError struct {
	Path   string
	Reason string
}

func (e *InvalidPackageConfigError) Error() string {
	return fmt.Sprintf("invalid package config at %q: %s", e.Path, e.Reason)
}
func (e *InvalidPackageConfigError) Unwrap() error { return ErrInvalidPackageConfig }

// InvalidPackageTargetError reports a target string with a disallowed
// segment (".." escape, "/node_modules/" segment, or a leading "/").
type InvalidPackageTargetError struct {
	Package string
	Target  string
}

func (e *InvalidPackageTargetError) Error() string {
	return fmt.Sprintf("invalid package target %q in package %q", e.Target, e.Package)
}
func (e *InvalidPackageTargetError) Unwrap() error { return ErrInvalidPackageTarget }

// PackagePathNotExportedError reports a subpath unmatched (or matched
// null) by "exports".
type PackagePathNotExportedError struct {
	Package string
	Subpath string
}

func (e *PackagePathNotExportedError) Error() string {
	return fmt.Sprintf("package %q does not export %q", e.Package, e.Subpath)
}
func (e *PackagePathNotExportedError) Unwrap() error { return ErrPackagePathNotExported }

// PackageImportNotDefinedError reports a "#…" request unmatched by
// "imports".
type PackageImportNotDefinedError struct {
	Package string
	Request string
}

func (e *PackageImportNotDefinedError) Error() string {
	return fmt.Sprintf("package %q does not define import %q", e.Package, e.Request)
}
func (e *PackageImportNotDefinedError) Unwrap() error { return ErrPackageImportNotDefined }

// PackageNotFoundError reports a bare specifier whose folder could not
// be located in any node_modules ancestor.
type PackageNotFoundError struct {
	Specifier string
	Referrer  string
}

func (e *PackageNotFoundError) Error() string {
	return fmt.Sprintf("package %q not found from %q", e.Specifier, e.Referrer)
}
func (e *PackageNotFoundError) Unwrap() error { return ErrPackageNotFound }

// ModuleNotFoundError reports a legacy-main fallback that found no file.
type ModuleNotFoundError struct {
	Path string
}

func (e *ModuleNotFoundError) Error() string {
	return fmt.Sprintf("module not found: %q", e.Path)
}
func (e *ModuleNotFoundError) Unwrap() error { return ErrModuleNotFound }

// PermissionDeniedError reports a permission gate refusal.
type PermissionDeniedError struct {
	Path string
	Err  error
}

func (e *PermissionDeniedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("permission denied: %q: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("permission denied: %q", e.Path)
}
func (e *PermissionDeniedError) Unwrap() error { return ErrPermissionDenied }

// IoError reports an underlying read/stat/canonicalize failure.
type IoError struct {
	Path  string
	Cause error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("io error at %q: %v", e.Path, e.Cause)
}
func (e *IoError) Unwrap() []error { return []error{ErrIo, e.Cause} }
