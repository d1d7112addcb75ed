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
	"reflect"
	"testing"

	"bennypowers.dev/noderesolve/internal/mapfs"
	"bennypowers.dev/noderesolve/resolve"
)

func TestExpandWorkspacePatternsSingleStar(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/repo/packages/a/package.json", `{"name":"a"}`, 0o644)
	mfs.AddFile("/repo/packages/b/package.json", `{"name":"b"}`, 0o644)

	got, err := resolve.ExpandWorkspacePatterns(mfs, "/repo", []string{"packages/*"})
	if err != nil {
		t.Fatalf("ExpandWorkspacePatterns: %v", err)
	}
	want := []string{"/repo/packages/a", "/repo/packages/b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestExpandWorkspacePatternsDoubleStarRecurses(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/repo/apps/web/ui/package.json", `{"name":"ui"}`, 0o644)

	got, err := resolve.ExpandWorkspacePatterns(mfs, "/repo", []string{"apps/**/ui"})
	if err != nil {
		t.Fatalf("ExpandWorkspacePatterns: %v", err)
	}
	want := []string{"/repo/apps/web/ui"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestExpandWorkspacePatternsInvalidPattern(t *testing.T) {
	mfs := mapfs.New()
	_, err := resolve.ExpandWorkspacePatterns(mfs, "/repo", []string{"["})
	if err == nil {
		t.Error("expected an error for a malformed glob pattern")
	}
}

func TestExpandWorkspacePatternsDedupesAcrossPatterns(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/repo/packages/a/package.json", `{"name":"a"}`, 0o644)

	got, err := resolve.ExpandWorkspacePatterns(mfs, "/repo", []string{"packages/*", "packages/a"})
	if err != nil {
		t.Fatalf("ExpandWorkspacePatterns: %v", err)
	}
	want := []string{"/repo/packages/a"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
