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

// This file supplements spec.md with the "self" reference feature named
// in original_source/ext/node/lib.rs's op_require_try_self /
// op_require_try_self_parent_path: a package may require its own name
// ("p/sub" from inside package "p") even when it has no node_modules
// entry pointing at itself, by checking whether the closest enclosing
// package.json's own name matches the requested package name.
package resolve

import (
	"bennypowers.dev/noderesolve/fs"
	"bennypowers.dev/noderesolve/npmresolver"
	"bennypowers.dev/noderesolve/packagejson"
	"bennypowers.dev/noderesolve/pathutil"
	"bennypowers.dev/noderesolve/permission"
)

// TrySelf attempts to resolve pkgName/subpath against referrer's own
// enclosing package, honoring "exports" if present. ok is false (with a
// nil error) when the enclosing package's name doesn't match pkgName —
// the ordinary "not self-referencing" case, distinct from a resolution
// failure once a name match is found.
func TrySelf(
	filesystem fs.FileSystem,
	perm permission.Checker,
	cache packagejson.Cache,
	npm npmresolver.Resolver,
	referrer string,
	pkgName string,
	subpath string,
	conditions ConditionSet,
	os pathutil.OS,
) (path string, ok bool, err error) {
	pkg, err := ClosestPackageJson(filesystem, perm, cache, npm, referrer, os)
	if err != nil {
		return "", false, err
	}
	if !pkg.Exists() || pkg.Name != pkgName || !pkg.Exports.IsPresent() {
		return "", false, nil
	}

	resolved, err := PackageExportsResolve(pkgName, pkg.Base, subpath, pkg.Exports, conditions, os)
	if err != nil {
		return "", true, err
	}
	return resolved, true, nil
}
