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
package pathutil_test

import (
	"testing"

	"bennypowers.dev/noderesolve/pathutil"
)

func TestIsAbs(t *testing.T) {
	tests := []struct {
		name string
		p    string
		os   pathutil.OS
		want bool
	}{
		{"posix absolute", "/a/b", pathutil.POSIX, true},
		{"posix relative", "a/b", pathutil.POSIX, false},
		{"windows drive", `C:\a\b`, pathutil.Windows, true},
		{"windows unc", `\\server\share`, pathutil.Windows, true},
		{"windows relative", `a\b`, pathutil.Windows, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pathutil.IsAbs(tt.p, tt.os); got != tt.want {
				t.Errorf("IsAbs(%q) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestIsWindowsDriveRoot(t *testing.T) {
	tests := []struct {
		p    string
		want bool
	}{
		{`D:\`, true},
		{`D:/`, true},
		{`D:\foo`, false},
		{`/a/b`, false},
	}
	for _, tt := range tests {
		if got := pathutil.IsWindowsDriveRoot(tt.p); got != tt.want {
			t.Errorf("IsWindowsDriveRoot(%q) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestDirnameBasename(t *testing.T) {
	dir, err := pathutil.Dirname("/a/b/c.js", pathutil.POSIX)
	if err != nil || dir != "/a/b" {
		t.Errorf("Dirname = %q, %v", dir, err)
	}
	base, err := pathutil.Basename("/a/b/c.js", pathutil.POSIX)
	if err != nil || base != "c.js" {
		t.Errorf("Basename = %q, %v", base, err)
	}
	if _, err := pathutil.Dirname("/", pathutil.POSIX); err == nil {
		t.Error("expected ErrNoParent for root")
	}
}

func TestHasInvalidSegment(t *testing.T) {
	tests := []struct {
		p    string
		want bool
	}{
		{"./lib/index.js", false},
		{"./lib/../index.js", true},
		{"./node_modules/x.js", true},
		{"./a/./b.js", true},
		{"x", false},
	}
	for _, tt := range tests {
		if got := pathutil.HasInvalidSegment(tt.p); got != tt.want {
			t.Errorf("HasInvalidSegment(%q) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestFileURLRoundTrip(t *testing.T) {
	u := pathutil.ToFileURL("/pkg/index.js", pathutil.POSIX)
	if u != "file:///pkg/index.js" {
		t.Errorf("ToFileURL = %q", u)
	}
	p := pathutil.AsFilePath(u, pathutil.POSIX)
	if p != "/pkg/index.js" {
		t.Errorf("AsFilePath = %q", p)
	}
	// Non-URL input passes through unchanged.
	if got := pathutil.AsFilePath("/already/a/path", pathutil.POSIX); got != "/already/a/path" {
		t.Errorf("AsFilePath passthrough = %q", got)
	}
}

func TestStripUNCPrefix(t *testing.T) {
	if got := pathutil.StripUNCPrefix(`\\?\C:\a`); got != `C:\a` {
		t.Errorf("StripUNCPrefix = %q", got)
	}
}
