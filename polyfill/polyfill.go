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

// Package polyfill is the static builtin-module registry named by
// spec.md §2 component 10 and §6.4, carried over verbatim (by name and
// target) from original_source/ext/node/lib.rs's
// SUPPORTED_BUILTIN_NODE_MODULES table. Lookup is consumed by the outer
// runtime, not by the resolver core — the core only needs to know a
// name like "fs/promises" names a builtin, not a bare npm specifier.
package polyfill

// SpecifierKind distinguishes a polyfill served from the binary's own
// embedded asset bundle from one served from a standard-library
// checkout path.
type SpecifierKind int

const (
	Embedded SpecifierKind = iota
	StdNode
)

// Specifier is a polyfill's resolved target: either an internal URL
// (Embedded) or a path relative to the standard library repository
// (StdNode).
type Specifier struct {
	Kind  SpecifierKind
	Value string
}

// Module is one row of the static builtin-module table.
type Module struct {
	Name      string
	Specifier Specifier
}

func stdNode(path string) Specifier { return Specifier{Kind: StdNode, Value: path} }
func embedded(url string) Specifier { return Specifier{Kind: Embedded, Value: url} }

// Registry is the ordered, static list of builtin Node modules this
// runtime polyfills. Order matches original_source's table so a
// rendered listing (e.g. `noderesolve paths --list-builtins`) is
// byte-stable against it.
var Registry = []Module{
	{"assert", stdNode("node/assert.ts")},
	{"assert/strict", stdNode("node/assert/strict.ts")},
	{"async_hooks", stdNode("node/async_hooks.ts")},
	{"buffer", stdNode("node/buffer.ts")},
	{"child_process", stdNode("node/child_process.ts")},
	{"cluster", stdNode("node/cluster.ts")},
	{"console", stdNode("node/console.ts")},
	{"constants", stdNode("node/constants.ts")},
	{"crypto", stdNode("node/crypto.ts")},
	{"dgram", stdNode("node/dgram.ts")},
	{"dns", stdNode("node/dns.ts")},
	{"dns/promises", stdNode("node/dns/promises.ts")},
	{"domain", stdNode("node/domain.ts")},
	{"events", stdNode("node/events.ts")},
	{"fs", stdNode("node/fs.ts")},
	{"fs/promises", stdNode("node/fs/promises.ts")},
	{"http", stdNode("node/http.ts")},
	{"https", stdNode("node/https.ts")},
	{"module", embedded("internal:deno_node/module_es_shim.js")},
	{"net", stdNode("node/net.ts")},
	{"os", stdNode("node/os.ts")},
	{"path", stdNode("node/path.ts")},
	{"path/posix", stdNode("node/path/posix.ts")},
	{"path/win32", stdNode("node/path/win32.ts")},
	{"perf_hooks", stdNode("node/perf_hooks.ts")},
	{"process", stdNode("node/process.ts")},
	{"querystring", stdNode("node/querystring.ts")},
	{"readline", stdNode("node/readline.ts")},
	{"stream", stdNode("node/stream.ts")},
	{"stream/consumers", stdNode("node/stream/consumers.mjs")},
	{"stream/promises", stdNode("node/stream/promises.mjs")},
	{"stream/web", stdNode("node/stream/web.ts")},
	{"string_decoder", stdNode("node/string_decoder.ts")},
	{"sys", stdNode("node/sys.ts")},
	{"timers", stdNode("node/timers.ts")},
	{"timers/promises", stdNode("node/timers/promises.ts")},
	{"tls", stdNode("node/tls.ts")},
	{"tty", stdNode("node/tty.ts")},
	{"url", stdNode("node/url.ts")},
	{"util", stdNode("node/util.ts")},
	{"util/types", stdNode("node/util/types.ts")},
	{"v8", stdNode("node/v8.ts")},
	{"vm", stdNode("node/vm.ts")},
	{"worker_threads", stdNode("node/worker_threads.ts")},
	{"zlib", stdNode("node/zlib.ts")},
}

var byName = func() map[string]Specifier {
	m := make(map[string]Specifier, len(Registry))
	for _, mod := range Registry {
		m[mod.Name] = mod.Specifier
	}
	return m
}()

// Lookup returns the polyfill specifier for an exact module name
// (subpaths like "fs/promises" are themselves exact entries in the
// table, not derived from "fs").
func Lookup(name string) (Specifier, bool) {
	spec, ok := byName[name]
	return spec, ok
}

// IsBuiltin reports whether name names a polyfilled builtin module.
func IsBuiltin(name string) bool {
	_, ok := byName[name]
	return ok
}
