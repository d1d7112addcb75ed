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

// Package packagejson loads, parses, and memoizes package.json documents
// (spec.md §3, §4.3). Parsing tolerates JSON-with-comments via
// tidwall/jsonc (the one JSONC-aware library in the retrieval pack),
// and preserves "exports"/"imports" key order through the Value type in
// ordered.go, since condition precedence is insertion order, not set
// membership (spec.md §9).
package packagejson

import (
	"encoding/json"
	"path"
	"strings"

	"bennypowers.dev/noderesolve/fs"
	"bennypowers.dev/noderesolve/permission"
	"bennypowers.dev/noderesolve/rerr"
	"github.com/tidwall/jsonc"
)

// PackageJson is the subset of a package.json document the resolver core
// consults. Fields not listed here (version, dependencies, scripts, …)
// are irrelevant to resolution and are not retained.
type PackageJson struct {
	// Path is the absolute path of the package.json file itself.
	Path string
	// Base is Path's containing directory — the package root.
	Base string

	Name   string
	Main   string
	Module string

	// Exports is the raw "exports" value: string, array, or object.
	// Zero Value (Kind == KindNull and no content) means the field was
	// absent.
	Exports Value
	// Imports is the raw "imports" object; its keys all begin with "#".
	Imports Value

	// Type is "module", "commonjs", or "" if unset.
	Type string

	// Types holds the declaration-entry subpath. The field is named
	// Types to match the JSON key; lib.rs calls the same concept `typ`
	// because `type` is a language keyword there, a naming split with
	// no Go-side reason to keep.
	Types string

	// Bin is opaque to the resolver core; kept only so round-tripping
	// a loaded document doesn't silently drop it.
	Bin json.RawMessage

	// exists records whether this document was actually read from disk,
	// as opposed to standing in for "no package.json here" (§4.3 step 3).
	exists bool
}

// Exists reports whether this document was backed by a real file, as
// opposed to the empty placeholder Load returns when the file is
// absent.
func (p *PackageJson) Exists() bool {
	return p != nil && p.exists
}

type rawPackageJson struct {
	Name    string          `json:"name"`
	Main    string          `json:"main"`
	Module  string          `json:"module"`
	Exports json.RawMessage `json:"exports"`
	Imports json.RawMessage `json:"imports"`
	Type    string          `json:"type"`
	Types   string          `json:"types"`
	Bin     json.RawMessage `json:"bin"`
}

// Parse decodes package.json bytes into a PackageJson rooted at
// pkgPath, validating the exports key-set invariant (spec.md §3, P4).
// pkgPath need not exist on disk; callers loading from a real
// filesystem use Load instead, which also handles the absent-file and
// permission cases.
func Parse(data []byte, pkgPath string) (*PackageJson, error) {
	stripped := jsonc.ToJSON(data)

	var raw rawPackageJson
	if err := json.Unmarshal(stripped, &raw); err != nil {
		return nil, &rerr.InvalidPackageConfigError{Path: pkgPath, Reason: err.Error()}
	}

	pkg := &PackageJson{
		Path:   pkgPath,
		Base:   path.Dir(filepathToSlash(pkgPath)),
		Name:   raw.Name,
		Main:   raw.Main,
		Module: raw.Module,
		Type:   raw.Type,
		Types:  raw.Types,
		Bin:    raw.Bin,
		exists: true,
	}

	if len(raw.Exports) > 0 {
		if err := json.Unmarshal(raw.Exports, &pkg.Exports); err != nil {
			return nil, &rerr.InvalidPackageConfigError{Path: pkgPath, Reason: "exports: " + err.Error()}
		}
		if err := validateExportsKeys(pkg.Exports); err != nil {
			return nil, &rerr.InvalidPackageConfigError{Path: pkgPath, Reason: err.Error()}
		}
	}
	if len(raw.Imports) > 0 {
		if err := json.Unmarshal(raw.Imports, &pkg.Imports); err != nil {
			return nil, &rerr.InvalidPackageConfigError{Path: pkgPath, Reason: "imports: " + err.Error()}
		}
	}

	return pkg, nil
}

// filepathToSlash normalizes a possibly-backslashed absolute path to
// forward slashes so path.Dir (POSIX-only) computes the right parent.
// Real filesystem paths passed in here come from fs.FileSystem, which
// on this module's supported hosts is always "/"-separated already;
// this only guards inputs built from Windows-path fixtures in tests.
func filepathToSlash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// validateExportsKeys enforces spec.md §3's invariant: if any key of an
// object-shaped exports begins with ".", every key must.
func validateExportsKeys(v Value) error {
	if v.Kind != KindObject {
		return nil
	}
	var sawSubpath, sawCondition bool
	for _, e := range v.Object {
		if strings.HasPrefix(e.Key, ".") {
			sawSubpath = true
		} else {
			sawCondition = true
		}
	}
	if sawSubpath && sawCondition {
		return errMixedExportsKeys
	}
	return nil
}

type configError string

func (e configError) Error() string { return string(e) }

var errMixedExportsKeys = configError(`exports object mixes subpath keys (starting with ".") and condition keys`)

// Load reads and parses pkgPath via filesystem, enforcing permission
// first and memoizing the result in cache (spec.md §4.3). A missing
// file is not an error: it yields an empty, Exists()==false document so
// callers can treat "no package.json here" uniformly.
func Load(filesystem fs.FileSystem, perm permission.Checker, cache Cache, pkgPath string) (*PackageJson, error) {
	if perm != nil {
		if err := perm.CheckRead(pkgPath); err != nil {
			return nil, &rerr.PermissionDeniedError{Path: pkgPath, Err: err}
		}
	}

	loader := func() (*PackageJson, error) {
		return loadUncached(filesystem, pkgPath)
	}
	if cache != nil {
		return cache.GetOrLoad(pkgPath, loader)
	}
	return loader()
}

func loadUncached(filesystem fs.FileSystem, pkgPath string) (*PackageJson, error) {
	if !filesystem.Exists(pkgPath) {
		return &PackageJson{Path: pkgPath, Base: path.Dir(filepathToSlash(pkgPath)), exists: false}, nil
	}
	data, err := filesystem.ReadFile(pkgPath)
	if err != nil {
		return nil, &rerr.IoError{Path: pkgPath, Cause: err}
	}
	return Parse(data, pkgPath)
}
