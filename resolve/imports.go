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
	"bennypowers.dev/noderesolve/packagejson"
	"bennypowers.dev/noderesolve/pathutil"
	"bennypowers.dev/noderesolve/rerr"
)

// PackageImportsResolve implements spec.md §4.6: resolves a "#…"
// request against the closest package's "imports" map. reResolve lets a
// bare-specifier import target re-enter package_resolve (§4.8); pass nil
// if the caller cannot support that (it will surface InvalidPackageTarget
// instead of following the redirect).
func PackageImportsResolve(
	pkgName string,
	pkgBase string,
	request string,
	imports packagejson.Value,
	conditions ConditionSet,
	os pathutil.OS,
	reResolve reResolveFunc,
) (string, error) {
	if imports.Kind != packagejson.KindObject {
		return "", &rerr.PackageImportNotDefinedError{Package: pkgName, Request: request}
	}

	ctx := targetContext{pkgName: pkgName, pkgBase: pkgBase, conditions: conditions, os: os, reResolve: reResolve}

	if val, ok := imports.Lookup(request); ok {
		result, err := ctx.resolveTarget(val, "")
		if err != nil {
			return "", importsNotDefinedIfUnmatched(err, pkgName, request)
		}
		return result, nil
	}

	if val, bound, ok := matchWildcard(imports.Object, request, "#"); ok {
		result, err := ctx.resolveTarget(val, bound)
		if err != nil {
			return "", importsNotDefinedIfUnmatched(err, pkgName, request)
		}
		return result, nil
	}

	return "", &rerr.PackageImportNotDefinedError{Package: pkgName, Request: request}
}

func importsNotDefinedIfUnmatched(err error, pkgName, request string) error {
	if err == errUnmatched {
		return &rerr.PackageImportNotDefinedError{Package: pkgName, Request: request}
	}
	return err
}
