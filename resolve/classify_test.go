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

	"bennypowers.dev/noderesolve/pathutil"
	"bennypowers.dev/noderesolve/resolve"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		request string
		want    resolve.RequestKind
		name    string
		subpath string
	}{
		{"./util", resolve.KindRelative, "", ""},
		{"../util", resolve.KindRelative, "", ""},
		{"..", resolve.KindRelative, "", ""},
		{"/abs/path", resolve.KindAbsolute, "", ""},
		{"#internal/foo", resolve.KindImports, "", ""},
		{"lodash", resolve.KindBare, "lodash", "."},
		{"lodash/sub", resolve.KindBare, "lodash", "./sub"},
		{"@scope/pkg", resolve.KindBare, "@scope/pkg", "."},
		{"@scope/pkg/sub/feature", resolve.KindBare, "@scope/pkg", "./sub/feature"},
	}
	for _, tt := range tests {
		t.Run(tt.request, func(t *testing.T) {
			got, err := resolve.Classify(tt.request, pathutil.POSIX)
			if err != nil {
				t.Fatalf("Classify(%q): %v", tt.request, err)
			}
			if got.Kind != tt.want {
				t.Errorf("Kind = %v, want %v", got.Kind, tt.want)
			}
			if tt.name != "" && got.PackageName != tt.name {
				t.Errorf("PackageName = %q, want %q", got.PackageName, tt.name)
			}
			if tt.subpath != "" && got.Subpath != tt.subpath {
				t.Errorf("Subpath = %q, want %q", got.Subpath, tt.subpath)
			}
		})
	}
}

func TestClassifyInvalid(t *testing.T) {
	invalid := []string{"", "#", "#/x", ".hidden", "pkg%20name", `pkg\name`}
	for _, request := range invalid {
		t.Run(request, func(t *testing.T) {
			if _, err := resolve.Classify(request, pathutil.POSIX); err == nil {
				t.Errorf("Classify(%q) = nil error, want InvalidSpecifier", request)
			}
		})
	}
}

func TestIsRequestRelative(t *testing.T) {
	if !resolve.IsRequestRelative("./x", pathutil.POSIX) {
		t.Error("./x should be relative")
	}
	if resolve.IsRequestRelative("foo", pathutil.POSIX) {
		t.Error("foo should not be relative")
	}
	if !resolve.IsRequestRelative("..", pathutil.POSIX) {
		t.Error(".. should be relative")
	}
}
