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

// NodeModuleKind selects which default condition set a resolution
// callsite matches against (spec.md §3, §4.8).
type NodeModuleKind int

const (
	Cjs NodeModuleKind = iota
	Esm
)

func (k NodeModuleKind) String() string {
	if k == Esm {
		return "esm"
	}
	return "cjs"
}

// NodeResolutionMode selects whether declaration-file probing runs and
// which alternate subpath keys ("types") are consulted (spec.md §3).
type NodeResolutionMode int

const (
	Execution NodeResolutionMode = iota
	Types
)

// ConditionSet is the ordered sequence of condition strings a caller is
// willing to match. Order here is irrelevant to matching (membership is
// what counts) — it is the position of a key inside an exports/imports
// object that determines precedence (spec.md §3).
type ConditionSet []string

// Has reports whether cond is a member of the set.
func (c ConditionSet) Has(cond string) bool {
	for _, x := range c {
		if x == cond {
			return true
		}
	}
	return false
}

// DefaultConditions returns the condition set spec.md §4.8 assigns to
// kind, with "types" prepended when mode == Types.
func DefaultConditions(kind NodeModuleKind, mode NodeResolutionMode) ConditionSet {
	var base ConditionSet
	if kind == Esm {
		base = ConditionSet{"node", "import", "default"}
	} else {
		base = ConditionSet{"node", "require", "default"}
	}
	if mode == Types {
		return append(ConditionSet{"types"}, base...)
	}
	return base
}

// RequestKind identifies how classify categorized a request (spec.md §4.1).
type RequestKind int

const (
	KindRelative RequestKind = iota
	KindAbsolute
	KindImports
	KindBare
)

// ClassifiedRequest is the result of Classify.
type ClassifiedRequest struct {
	Kind RequestKind
	// PackageName and Subpath are populated only when Kind == KindBare.
	PackageName string
	Subpath     string
}
