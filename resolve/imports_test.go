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
package resolve_test

import (
	"errors"
	"testing"

	"bennypowers.dev/noderesolve/pathutil"
	"bennypowers.dev/noderesolve/resolve"
	"bennypowers.dev/noderesolve/rerr"
)

func TestPackageImportsResolveExact(t *testing.T) {
	imports := exportsValue(t, `{"#dep":"./vendor/dep.js"}`)
	got, err := resolve.PackageImportsResolve("p", "/pkg", "#dep", imports, resolve.DefaultConditions(resolve.Cjs, resolve.Execution), pathutil.POSIX, nil)
	if err != nil || got != "/pkg/vendor/dep.js" {
		t.Errorf("got %q, %v, want /pkg/vendor/dep.js", got, err)
	}
}

func TestPackageImportsResolveWildcard(t *testing.T) {
	imports := exportsValue(t, `{"#internal/*":"./src/*.js"}`)
	got, err := resolve.PackageImportsResolve("p", "/pkg", "#internal/util", imports, resolve.DefaultConditions(resolve.Cjs, resolve.Execution), pathutil.POSIX, nil)
	if err != nil || got != "/pkg/src/util.js" {
		t.Errorf("got %q, %v, want /pkg/src/util.js", got, err)
	}
}

func TestPackageImportsResolveReResolvesBareTarget(t *testing.T) {
	imports := exportsValue(t, `{"#dep":"other-pkg/lib.js"}`)
	reResolve := func(specifier string) (string, error) {
		if specifier != "other-pkg/lib.js" {
			t.Errorf("reResolve called with %q", specifier)
		}
		return "/node_modules/other-pkg/lib.js", nil
	}
	got, err := resolve.PackageImportsResolve("p", "/pkg", "#dep", imports, resolve.DefaultConditions(resolve.Cjs, resolve.Execution), pathutil.POSIX, reResolve)
	if err != nil || got != "/node_modules/other-pkg/lib.js" {
		t.Errorf("got %q, %v", got, err)
	}
}

func TestPackageImportsResolveNotDefined(t *testing.T) {
	imports := exportsValue(t, `{"#dep":"./vendor/dep.js"}`)
	_, err := resolve.PackageImportsResolve("p", "/pkg", "#missing", imports, resolve.DefaultConditions(resolve.Cjs, resolve.Execution), pathutil.POSIX, nil)
	var notDefined *rerr.PackageImportNotDefinedError
	if !errors.As(err, &notDefined) {
		t.Errorf("err = %v, want PackageImportNotDefinedError", err)
	}
}

func TestPackageImportsResolveNoImportsMap(t *testing.T) {
	var empty resolve.ConditionSet
	_, err := resolve.PackageImportsResolve("p", "/pkg", "#dep", exportsValue(t, `null`), empty, pathutil.POSIX, nil)
	var notDefined *rerr.PackageImportNotDefinedError
	if !errors.As(err, &notDefined) {
		t.Errorf("err = %v, want PackageImportNotDefinedError", err)
	}
}
