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

// Package pathutil provides the path-space primitives the resolver core
// builds on: absoluteness tests, dirname/basename, join/normalize, and
// file-URL conversion. Kept host-OS-agnostic (string manipulation rather
// than package path/filepath's build-tagged behavior) so the same code
// path is exercised on every CI platform, matching spec.md §4.2/§6.2's
// requirement that node_module_paths and friends behave identically
// however the host happens to be compiled.
package pathutil

import (
	"errors"
	"net/url"
	"path"
	"strings"
)

// OS selects which platform's path syntax a function should honor.
type OS int

const (
	POSIX OS = iota
	Windows
)

// ErrNoParent is returned by Dirname when path has no parent component.
var ErrNoParent = errors.New("pathutil: path has no parent")

// ErrNoBasename is returned by Basename when path has no file-name component.
var ErrNoBasename = errors.New("pathutil: path has no file name")

func isSep(b byte, os OS) bool {
	if os == Windows {
		return b == '/' || b == '\\'
	}
	return b == '/'
}

// IsAbs reports whether p is syntactically absolute on the given platform.
func IsAbs(p string, os OS) bool {
	if p == "" {
		return false
	}
	if os == Windows {
		if len(p) >= 2 && p[1] == ':' && isDriveLetter(p[0]) {
			return true
		}
		return strings.HasPrefix(p, "\\\\") || strings.HasPrefix(p, "//")
	}
	return p[0] == '/'
}

func isDriveLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// IsWindowsDriveRoot reports whether p is exactly a drive root like `D:\`
// or `D:/` — the node_module_paths short-circuit case from spec.md §4.2.
func IsWindowsDriveRoot(p string) bool {
	if len(p) < 3 {
		return false
	}
	return isDriveLetter(p[0]) && p[1] == ':' && isSep(p[len(p)-1], Windows) && len(p) == 3
}

// Dirname returns the parent directory of p, using the given platform's
// separator convention. Mirrors op_require_path_dirname.
func Dirname(p string, os OS) (string, error) {
	trimmed := strings.TrimRight(p, separators(os))
	if trimmed == "" {
		return "", ErrNoParent
	}
	idx := lastIndexAny(trimmed, separators(os))
	if idx < 0 {
		return "", ErrNoParent
	}
	if idx == 0 {
		return trimmed[:1], nil
	}
	return trimmed[:idx], nil
}

// Basename returns the final path component of p. Mirrors
// op_require_path_basename.
func Basename(p string, os OS) (string, error) {
	trimmed := strings.TrimRight(p, separators(os))
	if trimmed == "" {
		return "", ErrNoBasename
	}
	idx := lastIndexAny(trimmed, separators(os))
	return trimmed[idx+1:], nil
}

func separators(os OS) string {
	if os == Windows {
		return `/\`
	}
	return "/"
}

func lastIndexAny(s, chars string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if strings.IndexByte(chars, s[i]) >= 0 {
			return i
		}
	}
	return -1
}

// JoinPosix joins and lexically normalizes path elements using POSIX "/"
// semantics, regardless of host OS. Node's package-target strings
// ("./lib/index.js") and subpaths are always "/"-separated, so target
// resolution happens in POSIX space before a final filesystem join —
// the same split esbuild's resolver makes between path.Join (POSIX) for
// exports targets and the host filesystem for everything else.
func JoinPosix(elem ...string) string {
	return path.Join(elem...)
}

// HasInvalidSegment reports whether any path segment after the first
// (split on "/" or "\") is ".", ".." or "node_modules" — the Invalid
// Package Target / Invalid Module Specifier check from spec.md §4.7/§4.8.
func HasInvalidSegment(p string) bool {
	slash := strings.IndexAny(p, `/\`)
	if slash == -1 {
		return false
	}
	rest := p[slash+1:]
	for rest != "" {
		next := strings.IndexAny(rest, `/\`)
		seg := rest
		if next != -1 {
			seg = rest[:next]
			rest = rest[next+1:]
		} else {
			rest = ""
		}
		if seg == "." || seg == ".." || seg == "node_modules" {
			return true
		}
	}
	return false
}

// ToFileURL converts an absolute filesystem path to a file:// URL string.
func ToFileURL(p string, os OS) string {
	slashed := p
	if os == Windows {
		slashed = strings.ReplaceAll(p, `\`, "/")
		if !strings.HasPrefix(slashed, "/") {
			slashed = "/" + slashed
		}
	}
	u := url.URL{Scheme: "file", Path: slashed}
	return u.String()
}

// AsFilePath converts a file:// URL (or an already-plain path) to a
// filesystem path. Mirrors op_require_as_file_path: parses fileOrURL as a
// URL and converts to a path on success, otherwise returns it unchanged.
func AsFilePath(fileOrURL string, os OS) string {
	u, err := url.Parse(fileOrURL)
	if err != nil || u.Scheme != "file" {
		return fileOrURL
	}
	p := u.Path
	if os == Windows {
		p = strings.TrimPrefix(p, "/")
		p = strings.ReplaceAll(p, "/", `\`)
	}
	return p
}

// StripUNCPrefix removes the Windows extended-length `\\?\` prefix from a
// canonicalized path, as real_path does per spec.md §6.2.
func StripUNCPrefix(p string) string {
	return strings.TrimPrefix(p, `\\?\`)
}

// TrimDotSlash removes a leading "./" from a path.
func TrimDotSlash(p string) string {
	return strings.TrimPrefix(p, "./")
}
