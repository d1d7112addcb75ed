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
package polyfill_test

import (
	"testing"

	"bennypowers.dev/noderesolve/polyfill"
)

func TestLookupExactSubpath(t *testing.T) {
	spec, ok := polyfill.Lookup("fs/promises")
	if !ok {
		t.Fatal("fs/promises should be registered")
	}
	if spec.Kind != polyfill.StdNode || spec.Value != "node/fs/promises.ts" {
		t.Errorf("got %+v", spec)
	}
}

func TestLookupEmbedded(t *testing.T) {
	spec, ok := polyfill.Lookup("module")
	if !ok || spec.Kind != polyfill.Embedded {
		t.Errorf("module lookup = %+v, %v", spec, ok)
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, ok := polyfill.Lookup("not-a-real-module"); ok {
		t.Error("expected unknown module to miss")
	}
}

func TestIsBuiltin(t *testing.T) {
	if !polyfill.IsBuiltin("path") {
		t.Error("path should be a builtin")
	}
	if polyfill.IsBuiltin("lodash") {
		t.Error("lodash should not be a builtin")
	}
}

func TestRegistryHasNoDuplicateNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, mod := range polyfill.Registry {
		if seen[mod.Name] {
			t.Errorf("duplicate module name %q", mod.Name)
		}
		seen[mod.Name] = true
	}
}
