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

	"bennypowers.dev/noderesolve/internal/mapfs"
	"bennypowers.dev/noderesolve/npmresolver"
	"bennypowers.dev/noderesolve/packagejson"
	"bennypowers.dev/noderesolve/pathutil"
	"bennypowers.dev/noderesolve/permission"
	"bennypowers.dev/noderesolve/resolve"
)

func TestTrySelfMatchesOwnName(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/app/package.json", `{"name":"app","exports":{"./util":"./util.js"}}`, 0o644)
	mfs.AddFile("/app/util.js", "", 0o644)

	perm := permission.AllowAll{}
	npm := npmresolver.NewDefault(mfs, perm)
	cache := packagejson.NewMemoryCache()

	path, ok, err := resolve.TrySelf(mfs, perm, cache, npm, "/app/src/consumer.js", "app", "./util",
		resolve.DefaultConditions(resolve.Cjs, resolve.Execution), pathutil.POSIX)
	if err != nil {
		t.Fatalf("TrySelf: %v", err)
	}
	if !ok || path != "/app/util.js" {
		t.Errorf("ok=%v path=%q, want ok=true path=/app/util.js", ok, path)
	}
}

func TestTrySelfNameMismatchIsNotSelf(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/app/package.json", `{"name":"app","exports":{".":"./main.js"}}`, 0o644)

	perm := permission.AllowAll{}
	npm := npmresolver.NewDefault(mfs, perm)
	cache := packagejson.NewMemoryCache()

	_, ok, err := resolve.TrySelf(mfs, perm, cache, npm, "/app/src/consumer.js", "other-pkg", ".",
		resolve.DefaultConditions(resolve.Cjs, resolve.Execution), pathutil.POSIX)
	if err != nil {
		t.Fatalf("TrySelf: %v", err)
	}
	if ok {
		t.Error("expected ok=false when enclosing package name doesn't match")
	}
}

func TestTrySelfNoExportsIsNotSelf(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/app/package.json", `{"name":"app"}`, 0o644)

	perm := permission.AllowAll{}
	npm := npmresolver.NewDefault(mfs, perm)
	cache := packagejson.NewMemoryCache()

	_, ok, err := resolve.TrySelf(mfs, perm, cache, npm, "/app/src/consumer.js", "app", ".",
		resolve.DefaultConditions(resolve.Cjs, resolve.Execution), pathutil.POSIX)
	if err != nil {
		t.Fatalf("TrySelf: %v", err)
	}
	if ok {
		t.Error("expected ok=false when package has no exports field")
	}
}
