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

// Package resolve is the resolver core: request classification,
// node_modules path synthesis, package.json loading, and the
// conditional exports/imports algorithms that together implement
// Node's require() resolution semantics.
package resolve

import (
	"bennypowers.dev/noderesolve/fs"
	"bennypowers.dev/noderesolve/npmresolver"
	"bennypowers.dev/noderesolve/packagejson"
	"bennypowers.dev/noderesolve/pathutil"
	"bennypowers.dev/noderesolve/permission"
	"bennypowers.dev/noderesolve/rerr"
)

// Deps bundles the external collaborators package_resolve needs: the
// filesystem, the permission gate, the package.json cache, and the
// npm-package folder locator. None of these are owned by the core —
// spec.md §1 calls them out explicitly as out of scope for the core
// itself.
type Deps struct {
	FS          fs.FileSystem
	Permission  permission.Checker
	Cache       packagejson.Cache
	NpmResolver npmresolver.Resolver
	OS          pathutil.OS
	// Logger receives resolver diagnostics (a fallback taken, a package
	// missing from node_modules). Nil means NoopLogger.
	Logger Logger
}

func (deps Deps) logger() Logger {
	if deps.Logger == nil {
		return NoopLogger{}
	}
	return deps.Logger
}

// PackageResolve implements spec.md §4.5: the top-level entry point.
// referrer is an absolute file path (not a directory) that request is
// relative to.
func PackageResolve(
	deps Deps,
	request string,
	referrer string,
	kind NodeModuleKind,
	conditions ConditionSet,
	mode NodeResolutionMode,
) (string, error) {
	classified, err := Classify(request, deps.OS)
	if err != nil {
		return "", err
	}

	switch classified.Kind {
	case KindRelative, KindAbsolute:
		return deps.resolveRelativeOrAbsolute(classified.Kind, request, referrer, mode)

	case KindImports:
		pkg, err := ClosestPackageJson(deps.FS, deps.Permission, deps.Cache, deps.NpmResolver, referrer, deps.OS)
		if err != nil {
			return "", err
		}
		reResolve := func(specifier string) (string, error) {
			return PackageResolve(deps, specifier, referrer, kind, conditions, mode)
		}
		return PackageImportsResolve(pkg.Name, pkg.Base, request, pkg.Imports, conditions, deps.OS, reResolve)

	case KindBare:
		return deps.resolveBare(classified.PackageName, classified.Subpath, referrer, conditions, mode)
	}

	return "", &rerr.InvalidSpecifierError{Specifier: request}
}

func (deps Deps) resolveRelativeOrAbsolute(kind RequestKind, request, referrer string, mode NodeResolutionMode) (string, error) {
	var joined string
	if kind == KindAbsolute {
		joined = request
	} else {
		dir, err := pathutil.Dirname(referrer, deps.OS)
		if err != nil {
			dir = referrer
		}
		joined = pathutil.JoinPosix(dir, request)
	}

	resolved, ok := deps.probeFileOrDirectoryIndex(joined)
	if !ok {
		resolved = joined
	}
	return PathToDeclarationPath(deps.FS, resolved, mode), nil
}

func (deps Deps) probeFileOrDirectoryIndex(path string) (string, bool) {
	if deps.FS.Exists(path) {
		if info, err := deps.FS.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	for _, ext := range legacyCandidateExtensions {
		if deps.FS.Exists(path + ext) {
			return path + ext, true
		}
	}
	for _, ext := range legacyCandidateExtensions {
		candidate := pathutil.JoinPosix(path, "index"+ext)
		if deps.FS.Exists(candidate) {
			return candidate, true
		}
	}
	return "", false
}

func (deps Deps) resolveBare(pkgName, subpath, referrer string, conditions ConditionSet, mode NodeResolutionMode) (string, error) {
	folder, err := deps.NpmResolver.ResolvePackageFolderFromPackage(pkgName, referrer)
	if err != nil {
		deps.logger().Debug("%q missing from node_modules ancestry of %q, trying self-reference", pkgName, referrer)
		if selfPath, ok, selfErr := TrySelf(deps.FS, deps.Permission, deps.Cache, deps.NpmResolver, referrer, pkgName, subpath, conditions, deps.OS); ok {
			if selfErr != nil {
				return "", selfErr
			}
			return PathToDeclarationPath(deps.FS, selfPath, mode), nil
		}
		deps.logger().Warning("package %q not found from referrer %q", pkgName, referrer)
		return "", &rerr.PackageNotFoundError{Specifier: pkgName, Referrer: referrer}
	}

	pkgPath := pathutil.JoinPosix(folder, "package.json")
	pkg, err := packagejson.Load(deps.FS, deps.Permission, deps.Cache, pkgPath)
	if err != nil {
		return "", err
	}

	var resolved string
	if pkg.Exports.IsPresent() {
		resolved, err = PackageExportsResolve(pkgName, folder, subpath, pkg.Exports, conditions, deps.OS)
		if err != nil {
			return "", err
		}
	} else if subpath == "." {
		deps.logger().Debug("%q has no exports map, falling back to legacy main resolution", pkgName)
		resolved, err = LegacyMainResolve(deps.FS, pkg, mode)
		if err != nil {
			return "", err
		}
	} else {
		candidate := pathutil.JoinPosix(folder, subpath)
		found, ok := deps.probeFileOrDirectoryIndex(candidate)
		if !ok {
			return "", &rerr.ModuleNotFoundError{Path: candidate}
		}
		resolved = found
	}

	return PathToDeclarationPath(deps.FS, resolved, mode), nil
}

// ClosestPackageJson implements spec.md §4.4: ascends from the parent
// directory of fileOrURL, probing "<dir>/package.json" at each level.
// The walk stops at a filesystem root, or — when npm is non-nil and the
// starting directory lies inside a managed npm package — as soon as
// ascent would cross outside that package's boundary. Absence is not an
// error: it returns an empty, Exists()==false document.
func ClosestPackageJson(
	filesystem fs.FileSystem,
	perm permission.Checker,
	cache packagejson.Cache,
	npm npmresolver.Resolver,
	fileOrURL string,
	os pathutil.OS,
) (*packagejson.PackageJson, error) {
	path := pathutil.AsFilePath(fileOrURL, os)
	dir, err := pathutil.Dirname(path, os)
	if err != nil {
		dir = path
	}

	startedInNpmPackage := npm != nil && npm.InNpmPackage(dir)

	for {
		if npm != nil && startedInNpmPackage && !npm.InNpmPackage(dir) {
			break
		}

		pkgPath := pathutil.JoinPosix(dir, "package.json")
		pkg, err := packagejson.Load(filesystem, perm, cache, pkgPath)
		if err != nil {
			return nil, err
		}
		if pkg.Exists() {
			return pkg, nil
		}

		parent, derr := pathutil.Dirname(dir, os)
		if derr != nil || parent == dir {
			break
		}
		dir = parent
	}

	return &packagejson.PackageJson{Base: dir}, nil
}
