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

	"bennypowers.dev/noderesolve/packagejson"
	"bennypowers.dev/noderesolve/pathutil"
	"bennypowers.dev/noderesolve/rerr"
)

// PackageExportsResolve implements spec.md §4.7: resolves subpath
// ("." or "./…") against a package's "exports" value.
func PackageExportsResolve(
	pkgName string,
	pkgBase string,
	subpath string,
	exports packagejson.Value,
	conditions ConditionSet,
	os pathutil.OS,
) (string, error) {
	ctx := targetContext{pkgName: pkgName, pkgBase: pkgBase, conditions: conditions, os: os}

	if isShorthandExports(exports) {
		if subpath != "." {
			return "", &rerr.PackagePathNotExportedError{Package: pkgName, Subpath: subpath}
		}
		result, err := ctx.resolveTarget(exports, "")
		if err != nil {
			return "", exportsNotExportedIfUnmatched(err, pkgName, subpath)
		}
		return result, nil
	}

	if val, ok := exports.Lookup(subpath); ok {
		result, err := ctx.resolveTarget(val, "")
		if err != nil {
			return "", exportsNotExportedIfUnmatched(err, pkgName, subpath)
		}
		return result, nil
	}

	if val, bound, ok := matchWildcard(exports.Object, subpath, "./"); ok {
		result, err := ctx.resolveTarget(val, bound)
		if err != nil {
			return "", exportsNotExportedIfUnmatched(err, pkgName, subpath)
		}
		return result, nil
	}

	return "", &rerr.PackagePathNotExportedError{Package: pkgName, Subpath: subpath}
}

// isShorthandExports reports whether exports should be treated as a
// single target for subpath "." rather than a map of subpath keys: a
// string, an array, or an object whose keys are all conditions (none
// begin with ".").
func isShorthandExports(exports packagejson.Value) bool {
	switch exports.Kind {
	case packagejson.KindString, packagejson.KindArray:
		return true
	case packagejson.KindObject:
		for _, e := range exports.Object {
			if strings.HasPrefix(e.Key, ".") {
				return false
			}
		}
		return true
	}
	return false
}

func exportsNotExportedIfUnmatched(err error, pkgName, subpath string) error {
	if err == errUnmatched {
		return &rerr.PackagePathNotExportedError{Package: pkgName, Subpath: subpath}
	}
	return err
}
