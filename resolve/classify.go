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

	"bennypowers.dev/noderesolve/pathutil"
	"bennypowers.dev/noderesolve/rerr"
)

// Classify implements spec.md §4.1: decides whether request is relative,
// absolute, a bare package specifier, or a subpath-imports reference.
func Classify(request string, os pathutil.OS) (ClassifiedRequest, error) {
	if request == "" {
		return ClassifiedRequest{}, &rerr.InvalidSpecifierError{Specifier: request}
	}

	if isRelative(request, os) {
		return ClassifiedRequest{Kind: KindRelative}, nil
	}
	if pathutil.IsAbs(request, os) {
		return ClassifiedRequest{Kind: KindAbsolute}, nil
	}
	if strings.HasPrefix(request, "#") {
		if request == "#" || strings.HasPrefix(request, "#/") {
			return ClassifiedRequest{}, &rerr.InvalidSpecifierError{Specifier: request}
		}
		return ClassifiedRequest{Kind: KindImports}, nil
	}

	if strings.HasPrefix(request, ".") || strings.ContainsAny(request, "%\\") {
		return ClassifiedRequest{}, &rerr.InvalidSpecifierError{Specifier: request}
	}

	name, subpath := splitBareSpecifier(request)
	return ClassifiedRequest{Kind: KindBare, PackageName: name, Subpath: subpath}, nil
}

// IsRequestRelative implements op_require_is_request_relative / P6.
func IsRequestRelative(request string, os pathutil.OS) bool {
	return isRelative(request, os)
}

func isRelative(request string, os pathutil.OS) bool {
	if request == ".." {
		return true
	}
	if strings.HasPrefix(request, "./") || strings.HasPrefix(request, "../") {
		return true
	}
	if os == pathutil.Windows && (strings.HasPrefix(request, `.\`) || strings.HasPrefix(request, `..\`)) {
		return true
	}
	return false
}

// splitBareSpecifier splits a bare request into its package name (one
// segment, or two if scoped with "@") and subpath, per spec.md §4.1.
func splitBareSpecifier(request string) (name, subpath string) {
	segments := strings.Split(request, "/")
	if strings.HasPrefix(request, "@") && len(segments) >= 2 {
		name = segments[0] + "/" + segments[1]
		rest := segments[2:]
		if len(rest) == 0 {
			return name, "."
		}
		return name, "./" + strings.Join(rest, "/")
	}
	name = segments[0]
	rest := segments[1:]
	if len(rest) == 0 {
		return name, "."
	}
	return name, "./" + strings.Join(rest, "/")
}
