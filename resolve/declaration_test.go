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
	"bennypowers.dev/noderesolve/resolve"
)

func TestPathToDeclarationPathExecutionModeIsNoop(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/pkg/index.js", "", 0o644)
	mfs.AddFile("/pkg/index.d.ts", "", 0o644)

	got := resolve.PathToDeclarationPath(mfs, "/pkg/index.js", resolve.Execution)
	if got != "/pkg/index.js" {
		t.Errorf("got %q, want unchanged path in Execution mode", got)
	}
}

func TestPathToDeclarationPathSiblingExtensionMap(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/pkg/index.mjs", "", 0o644)
	mfs.AddFile("/pkg/index.d.mts", "", 0o644)

	got := resolve.PathToDeclarationPath(mfs, "/pkg/index.mjs", resolve.Types)
	if got != "/pkg/index.d.mts" {
		t.Errorf("got %q, want /pkg/index.d.mts", got)
	}
}

func TestPathToDeclarationPathFallbackAppendedSuffix(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/pkg/widget", "", 0o644)
	mfs.AddFile("/pkg/widget.d.ts", "", 0o644)

	got := resolve.PathToDeclarationPath(mfs, "/pkg/widget", resolve.Types)
	if got != "/pkg/widget.d.ts" {
		t.Errorf("got %q, want /pkg/widget.d.ts", got)
	}
}

func TestPathToDeclarationPathDirectoryIndex(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/pkg/lib/index.d.ts", "", 0o644)

	got := resolve.PathToDeclarationPath(mfs, "/pkg/lib", resolve.Types)
	if got != "/pkg/lib/index.d.ts" {
		t.Errorf("got %q, want /pkg/lib/index.d.ts", got)
	}
}

func TestPathToDeclarationPathNoSiblingReturnsOriginal(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/pkg/index.js", "", 0o644)

	got := resolve.PathToDeclarationPath(mfs, "/pkg/index.js", resolve.Types)
	if got != "/pkg/index.js" {
		t.Errorf("got %q, want original path when no declaration sibling exists", got)
	}
}
