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

// This file implements the shared package-target resolution core,
// spec.md §4.8 — the densest single piece of the resolver, consulted by
// both the exports resolver (§4.7) and the imports resolver (§4.6).
package resolve

import (
	"strings"

	"bennypowers.dev/noderesolve/packagejson"
	"bennypowers.dev/noderesolve/pathutil"
	"bennypowers.dev/noderesolve/rerr"
)

// errUnmatched signals "the target algorithm produced no match" (a JSON
// null, or a conditional object with no matching branch) — distinct from
// a propagated error, since the caller (exports vs. imports resolver)
// reports it under different error kinds.
var errUnmatched = targetErr("unmatched")

type targetErr string

func (e targetErr) Error() string { return string(e) }

// reResolveFunc re-enters package_resolve for a bare-specifier target
// string, per spec.md §4.8: "Strings not beginning with ./ are treated
// as bare specifiers and re-resolved via package_resolve, but only if
// they appear in imports." Only PackageImportsResolve supplies one;
// PackageExportsResolve passes nil, so a bare-specifier export target
// is always InvalidPackageTarget.
type reResolveFunc func(specifier string) (string, error)

// targetContext carries the parameters §4.8 threads through recursive
// calls on arrays and conditional objects.
type targetContext struct {
	pkgName    string
	pkgBase    string
	conditions ConditionSet
	os         pathutil.OS
	reResolve  reResolveFunc
}

// resolveTarget implements spec.md §4.8 for a single JSON target value.
// expansion is the string bound to "*" by the caller's wildcard match,
// or "" if the match was exact.
func (ctx targetContext) resolveTarget(target packagejson.Value, expansion string) (string, error) {
	switch target.Kind {
	case KindNullValue:
		return "", errUnmatched

	case KindStringValue:
		return ctx.resolveStringTarget(target.Str, expansion)

	case KindArrayValue:
		return ctx.resolveArrayTarget(target.Arr, expansion)

	case KindObjectValue:
		return ctx.resolveConditionalTarget(target, expansion)
	}
	return "", errUnmatched
}

// Local aliases so this file doesn't need to say packagejson.KindString
// at every branch above.
const (
	KindNullValue   = packagejson.KindNull
	KindStringValue = packagejson.KindString
	KindArrayValue  = packagejson.KindArray
	KindObjectValue = packagejson.KindObject
)

func (ctx targetContext) resolveStringTarget(target, expansion string) (string, error) {
	substituted := target
	if expansion != "" {
		substituted = strings.ReplaceAll(target, "*", expansion)
	}

	if !strings.HasPrefix(substituted, "./") {
		if ctx.reResolve == nil {
			return "", &rerr.InvalidPackageTargetError{Package: ctx.pkgName, Target: target}
		}
		return ctx.reResolve(substituted)
	}

	if pathutil.HasInvalidSegment(substituted) {
		return "", &rerr.InvalidPackageTargetError{Package: ctx.pkgName, Target: target}
	}

	joined := pathutil.JoinPosix(ctx.pkgBase, strings.TrimPrefix(substituted, "./"))
	if !strings.HasPrefix(joined, ctx.pkgBase) {
		return "", &rerr.InvalidPackageTargetError{Package: ctx.pkgName, Target: target}
	}
	return joined, nil
}

func (ctx targetContext) resolveArrayTarget(arr []packagejson.Value, expansion string) (string, error) {
	var lastErr error = errUnmatched
	for _, elem := range arr {
		result, err := ctx.resolveTarget(elem, expansion)
		if err == nil {
			return result, nil
		}
		lastErr = err
	}
	return "", lastErr
}

func (ctx targetContext) resolveConditionalTarget(target packagejson.Value, expansion string) (string, error) {
	for _, entry := range target.Object {
		if entry.Key == "default" || ctx.conditions.Has(entry.Key) {
			return ctx.resolveTarget(entry.Value, expansion)
		}
	}
	return "", errUnmatched
}

// wildcardCandidate is a key eligible for pattern matching: it contains
// exactly one "*".
type wildcardCandidate struct {
	value  packagejson.Value
	prefix string
	suffix string
}

// matchWildcard implements the §4.6/§4.7/§9 specificity tie-break:
// longest literal prefix before "*" wins; among equal prefixes, longest
// literal suffix after "*" wins. Returns the matched value and the
// substring bound to "*".
func matchWildcard(entries []packagejson.Entry, request string, requiredPrefix string) (packagejson.Value, string, bool) {
	var best *wildcardCandidate
	var bestBound string

	for _, e := range entries {
		if requiredPrefix != "" && !strings.HasPrefix(e.Key, requiredPrefix) {
			continue
		}
		star := strings.IndexByte(e.Key, '*')
		if star < 0 || strings.IndexByte(e.Key[star+1:], '*') >= 0 {
			continue // no wildcard, or more than one — not a pattern key
		}
		prefix := e.Key[:star]
		suffix := e.Key[star+1:]
		if !strings.HasPrefix(request, prefix) || !strings.HasSuffix(request, suffix) {
			continue
		}
		bound := request[len(prefix) : len(request)-len(suffix)]
		if bound == "" {
			continue // "*" must bind a non-empty substring
		}
		cand := wildcardCandidate{value: e.Value, prefix: prefix, suffix: suffix}
		if best == nil || moreSpecific(cand, *best) {
			c := cand
			best = &c
			bestBound = bound
		}
	}
	if best == nil {
		return packagejson.Value{}, "", false
	}
	return best.value, bestBound, true
}

func moreSpecific(a, b wildcardCandidate) bool {
	if len(a.prefix) != len(b.prefix) {
		return len(a.prefix) > len(b.prefix)
	}
	return len(a.suffix) > len(b.suffix)
}
