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

// Package hostenv supplements spec.md §6.3 with the environment-variable
// allowlist and global-this naming scheme original_source/ext/node/lib.rs
// uses to bridge process state into a spawned JS context, a detail the
// distilled spec names but doesn't define a home for.
package hostenv

import (
	"fmt"
	"os"
	"time"
)

// EnvVarAllowlist is the set of environment variables the host may
// propagate into a child JS context. Anything not in this set is
// withheld from user code even if the host process has it set.
var EnvVarAllowlist = map[string]bool{
	"NODE_DEBUG":   true,
	"NODE_OPTIONS": true,
}

// AllowedEnv returns the allowlisted environment variables currently set
// in the host process, for propagation into a child context.
func AllowedEnv() map[string]string {
	out := make(map[string]string, len(EnvVarAllowlist))
	for name := range EnvVarAllowlist {
		if val, ok := os.LookupEnv(name); ok {
			out[name] = val
		}
	}
	return out
}

// GlobalThisName returns a process-unique global name of the form
// __DENO_NODE_GLOBAL_THIS_<unix-seconds>__, so user code cannot
// statically depend on a fixed identifier (spec.md §6.3).
func GlobalThisName() string {
	return fmt.Sprintf("__DENO_NODE_GLOBAL_THIS_%d__", time.Now().Unix())
}
