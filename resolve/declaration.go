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

	"bennypowers.dev/noderesolve/fs"
	"bennypowers.dev/noderesolve/pathutil"
)

// jsExtensionToDeclaration maps a resolved module extension to its
// declaration-file counterpart, per spec.md §4.10.
var jsExtensionToDeclaration = map[string]string{
	".js":  ".d.ts",
	".mjs": ".d.mts",
	".cjs": ".d.cts",
}

// PathToDeclarationPath implements spec.md §4.10: given a resolved path,
// optionally locates a sibling type-declaration file. Returns path
// itself if no declaration sibling exists.
func PathToDeclarationPath(filesystem fs.FileSystem, path string, mode NodeResolutionMode) string {
	if mode != Types {
		return path
	}

	for ext, declExt := range jsExtensionToDeclaration {
		if strings.HasSuffix(path, ext) {
			candidate := strings.TrimSuffix(path, ext) + declExt
			if filesystem.Exists(candidate) {
				return candidate
			}
			break
		}
	}

	if candidate := path + ".d.ts"; filesystem.Exists(candidate) {
		return candidate
	}
	if candidate := pathutil.JoinPosix(path, "index.d.ts"); filesystem.Exists(candidate) {
		return candidate
	}

	return path
}
