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

// Package-level Ops wraps the resolver core behind the host-facing
// operation surface named in original_source/ext/node/lib.rs's op_require_*
// functions and tabulated in spec.md §6.1. A JS-bridge host calls
// through Ops rather than the lower-level functions directly (the cmd/
// CLI calls those functions itself), so the operation boundary named by the spec exists as an
// actual Go type instead of only as documentation.
package resolve

import (
	"strings"

	"bennypowers.dev/noderesolve/packagejson"
	"bennypowers.dev/noderesolve/pathutil"
	"bennypowers.dev/noderesolve/rerr"
)

// Ops is the host operation surface. Every method corresponds to one row
// of spec.md §6.1's table.
type Ops struct {
	Deps Deps
}

// NewOps constructs an Ops bound to deps.
func NewOps(deps Deps) *Ops {
	return &Ops{Deps: deps}
}

// NodeModulePaths implements the node_module_paths operation.
func (o *Ops) NodeModulePaths(from string) ([]string, error) {
	return NodeModulePaths(o.Deps.Permission, from, o.Deps.OS)
}

// ProxyPath implements the proxy_path operation: a trailing-slash
// filename is redirected to "<dir>/noop.js" (used by hosts that want a
// deterministic placeholder module for directory-style requests that
// didn't resolve through exports or legacy main).
func (o *Ops) ProxyPath(filename string) string {
	if strings.HasSuffix(filename, "/") || strings.HasSuffix(filename, `\`) {
		return pathutil.JoinPosix(strings.TrimRight(filename, `/\`), "noop.js")
	}
	return filename
}

// IsRequestRelative implements the is_request_relative operation.
func (o *Ops) IsRequestRelative(request string) bool {
	return IsRequestRelative(request, o.Deps.OS)
}

// ResolveNpmPackageFolder implements resolve_npm_package_folder.
func (o *Ops) ResolveNpmPackageFolder(request, referrer string) (string, bool) {
	folder, err := o.Deps.NpmResolver.ResolvePackageFolderFromPackage(request, referrer)
	if err != nil {
		return "", false
	}
	return folder, true
}

// IsInsideNpmPackage implements is_inside_npm_package.
func (o *Ops) IsInsideNpmPackage(path string) bool {
	return o.Deps.NpmResolver != nil && o.Deps.NpmResolver.InNpmPackage(path)
}

// RealPath implements real_path: checks read permission and that path
// exists, then strips the Windows UNC extended-length prefix (§6.2). It
// does not resolve symlinks or otherwise canonicalize path; apart from
// that prefix, path is returned as given.
func (o *Ops) RealPath(path string) (string, error) {
	if o.Deps.Permission != nil {
		if err := o.Deps.Permission.CheckRead(path); err != nil {
			return "", &rerr.PermissionDeniedError{Path: path, Err: err}
		}
	}
	if !o.Deps.FS.Exists(path) {
		return "", &rerr.IoError{Path: path, Cause: errNotFound}
	}
	return pathutil.StripUNCPrefix(path), nil
}

// StatResult mirrors the three-valued return of the stat operation.
type StatResult int

const (
	StatFile StatResult = 0
	StatDir  StatResult = 1
	StatMiss StatResult = -1
)

// Stat implements the stat operation.
func (o *Ops) Stat(path string) (StatResult, error) {
	if o.Deps.Permission != nil {
		if err := o.Deps.Permission.CheckRead(path); err != nil {
			return StatMiss, &rerr.PermissionDeniedError{Path: path, Err: err}
		}
	}
	info, err := o.Deps.FS.Stat(path)
	if err != nil {
		return StatMiss, nil
	}
	if info.IsDir() {
		return StatDir, nil
	}
	return StatFile, nil
}

// PathResolve implements path_resolve: joins and normalizes a non-empty
// list of path segments.
func (o *Ops) PathResolve(segments []string) (string, error) {
	if len(segments) == 0 {
		return "", &rerr.InvalidSpecifierError{Specifier: ""}
	}
	return pathutil.JoinPosix(segments...), nil
}

// PathDirname implements path_dirname.
func (o *Ops) PathDirname(path string) (string, error) {
	return pathutil.Dirname(path, o.Deps.OS)
}

// PathBasename implements path_basename.
func (o *Ops) PathBasename(path string) (string, error) {
	return pathutil.Basename(path, o.Deps.OS)
}

// PathIsAbsolute implements path_is_absolute.
func (o *Ops) PathIsAbsolute(path string) bool {
	return pathutil.IsAbs(path, o.Deps.OS)
}

// ReadFile implements read_file.
func (o *Ops) ReadFile(path string) ([]byte, error) {
	if o.Deps.Permission != nil {
		if err := o.Deps.Permission.CheckRead(path); err != nil {
			return nil, &rerr.PermissionDeniedError{Path: path, Err: err}
		}
	}
	data, err := o.Deps.FS.ReadFile(path)
	if err != nil {
		return nil, &rerr.IoError{Path: path, Cause: err}
	}
	return data, nil
}

// AsFilePath implements as_file_path.
func (o *Ops) AsFilePath(urlOrPath string) string {
	return pathutil.AsFilePath(urlOrPath, o.Deps.OS)
}

// ReadClosestPackageJson implements read_closest_package_json.
func (o *Ops) ReadClosestPackageJson(filename string) (*packagejson.PackageJson, error) {
	return ClosestPackageJson(o.Deps.FS, o.Deps.Permission, o.Deps.Cache, o.Deps.NpmResolver, filename, o.Deps.OS)
}

// ReadPackageScope implements read_package_scope: like
// ReadClosestPackageJson, but returns (nil, nil) instead of an empty
// placeholder when no package.json is found, matching the "optional
// document" return type of spec.md §6.1.
func (o *Ops) ReadPackageScope(filename string) (*packagejson.PackageJson, error) {
	pkg, err := o.ReadClosestPackageJson(filename)
	if err != nil {
		return nil, err
	}
	if !pkg.Exists() {
		return nil, nil
	}
	return pkg, nil
}

// PackageImportsResolve implements the package_imports_resolve operation.
func (o *Ops) PackageImportsResolve(parentFilename, request string, kind NodeModuleKind, mode NodeResolutionMode) (string, error) {
	return PackageResolve(o.Deps, request, parentFilename, kind, DefaultConditions(kind, mode), mode)
}

// ResolveExports implements the resolve_exports operation (§6.1, §9's
// first open question). usesLocalNodeModulesDir and the npm-resolver's
// InNpmPackage(modulesPath) jointly decide whether modulesPath already
// is the package root or whether name must still be appended: per
// spec.md §9, in-npm-package AND NOT using a local dir means modulesPath
// is used verbatim.
func (o *Ops) ResolveExports(usesLocalNodeModulesDir bool, modulesPath, request, name, expansion, parentPath string) (string, error) {
	packageRoot := modulesPath
	inNpm := o.Deps.NpmResolver != nil && o.Deps.NpmResolver.InNpmPackage(modulesPath)
	if !(inNpm && !usesLocalNodeModulesDir) {
		packageRoot = pathutil.JoinPosix(modulesPath, name)
	}

	pkgPath := pathutil.JoinPosix(packageRoot, "package.json")
	pkg, err := packagejson.Load(o.Deps.FS, o.Deps.Permission, o.Deps.Cache, pkgPath)
	if err != nil {
		return "", err
	}
	if !pkg.Exports.IsPresent() {
		return "", &rerr.PackagePathNotExportedError{Package: name, Subpath: request}
	}

	conditions := DefaultConditions(Cjs, Execution)
	ctx := targetContext{pkgName: name, pkgBase: pkg.Base, conditions: conditions, os: o.Deps.OS}
	_ = parentPath // consulted only to mirror the operation signature; the core never retains it.

	if val, ok := pkg.Exports.Lookup(request); ok {
		result, err := ctx.resolveTarget(val, expansion)
		if err != nil {
			return "", exportsNotExportedIfUnmatched(err, name, request)
		}
		return result, nil
	}
	if wcVal, bound, ok := matchWildcard(pkg.Exports.Object, request, "./"); ok {
		result, err := ctx.resolveTarget(wcVal, bound)
		if err != nil {
			return "", exportsNotExportedIfUnmatched(err, name, request)
		}
		return result, nil
	}
	return "", &rerr.PackagePathNotExportedError{Package: name, Subpath: request}
}

var errNotFound = notFoundErr("not found")

type notFoundErr string

func (e notFoundErr) Error() string { return string(e) }
