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
	"testing"

	"bennypowers.dev/noderesolve/npmresolver"
	"bennypowers.dev/noderesolve/packagejson"
	"bennypowers.dev/noderesolve/pathutil"
	"bennypowers.dev/noderesolve/permission"
	"bennypowers.dev/noderesolve/resolve"
	"bennypowers.dev/noderesolve/testutil"
)

// TestPackageResolveFixtureScenario loads testdata/pkg-exports into an
// in-memory node_modules tree and drives the full PackageResolve entry
// point through root, conditional, and wildcard subpaths of a single
// realistic package.json, the way a project's own node_modules would
// look on disk.
func TestPackageResolveFixtureScenario(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "pkg-exports", "/app/node_modules/pkg-exports")

	perm := permission.AllowAll{}
	deps := resolve.Deps{
		FS:          mfs,
		Permission:  perm,
		Cache:       packagejson.NewMemoryCache(),
		NpmResolver: npmresolver.NewDefault(mfs, perm),
		OS:          pathutil.POSIX,
	}

	cases := []struct {
		name      string
		specifier string
		want      string
	}{
		{"root", "pkg-exports", "/app/node_modules/pkg-exports/main.js"},
		{"conditional node match", "pkg-exports/feature", "/app/node_modules/pkg-exports/feature.node.js"},
		{"wildcard subpath", "pkg-exports/internal/util", "/app/node_modules/pkg-exports/lib/util.js"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := resolve.PackageResolve(deps, tc.specifier, "/app/index.js", resolve.Cjs,
				resolve.DefaultConditions(resolve.Cjs, resolve.Execution), resolve.Execution)
			if err != nil {
				t.Fatalf("PackageResolve(%q): %v", tc.specifier, err)
			}
			if got != tc.want {
				t.Errorf("PackageResolve(%q) = %q, want %q", tc.specifier, got, tc.want)
			}
		})
	}
}
