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
	"bennypowers.dev/noderesolve/fs"
	"bennypowers.dev/noderesolve/packagejson"
	"bennypowers.dev/noderesolve/pathutil"
	"bennypowers.dev/noderesolve/rerr"
)

// legacyCandidateExtensions is tried, in order, against a missing
// "main"/"types" file and against a resolved directory's index.
var legacyCandidateExtensions = []string{".js", ".json", ".node"}

// LegacyMainResolve implements spec.md §4.9: used when "exports" is
// absent and subpath == ".".
func LegacyMainResolve(filesystem fs.FileSystem, pkg *packagejson.PackageJson, mode NodeResolutionMode) (string, error) {
	if mode == Types && pkg.Types != "" {
		if path, ok := probeFileOrDirectoryIndex(filesystem, pathutil.JoinPosix(pkg.Base, pkg.Types)); ok {
			return path, nil
		}
	}

	if pkg.Main != "" {
		mainPath := pathutil.JoinPosix(pkg.Base, pkg.Main)
		if filesystem.Exists(mainPath) {
			if info, err := filesystem.Stat(mainPath); err == nil && !info.IsDir() {
				return mainPath, nil
			}
		}
		for _, ext := range legacyCandidateExtensions {
			if filesystem.Exists(mainPath + ext) {
				return mainPath + ext, nil
			}
		}
		for _, ext := range legacyCandidateExtensions {
			candidate := pathutil.JoinPosix(mainPath, "index"+ext)
			if filesystem.Exists(candidate) {
				return candidate, nil
			}
		}
	} else {
		for _, ext := range legacyCandidateExtensions {
			candidate := pathutil.JoinPosix(pkg.Base, "index"+ext)
			if filesystem.Exists(candidate) {
				return candidate, nil
			}
		}
	}

	return "", &rerr.ModuleNotFoundError{Path: pkg.Base}
}

// probeFileOrDirectoryIndex returns path itself if it exists as a file,
// or path/index.{js,json,node} if path exists as a directory.
func probeFileOrDirectoryIndex(filesystem fs.FileSystem, path string) (string, bool) {
	if info, err := filesystem.Stat(path); err == nil {
		if !info.IsDir() {
			return path, true
		}
		for _, ext := range legacyCandidateExtensions {
			candidate := pathutil.JoinPosix(path, "index"+ext)
			if filesystem.Exists(candidate) {
				return candidate, true
			}
		}
	}
	return "", false
}
