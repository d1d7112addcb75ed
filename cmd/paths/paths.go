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

// Package paths provides the "paths" command: drives
// resolve.NodeModulePaths (spec.md §4.2) against the real filesystem.
package paths

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/noderesolve/pathutil"
	"bennypowers.dev/noderesolve/permission"
	"bennypowers.dev/noderesolve/polyfill"
	"bennypowers.dev/noderesolve/resolve"
)

// Cmd is the paths command.
var Cmd = &cobra.Command{
	Use:   "paths [dir]",
	Short: "List the node_modules ancestor chain for a directory",
	Long: `Synthesizes the ordered node_modules candidate list node's
require() would search from a given starting directory, per
node_module_paths.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("list-builtins", false, "List the static builtin/polyfilled module registry instead")
	Cmd.Flags().String("format", "text", "Output format (text, json)")
}

func run(cmd *cobra.Command, args []string) error {
	listBuiltins, err := cmd.Flags().GetBool("list-builtins")
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	if listBuiltins {
		return printList(format, builtinNames())
	}

	dir := viper.GetString("package")
	if len(args) == 1 {
		dir = args[0]
	}

	list, err := resolve.NodeModulePaths(permission.AllowAll{}, dir, pathutil.POSIX)
	if err != nil {
		return fmt.Errorf("computing node_modules ancestry for %q: %w", dir, err)
	}
	return printList(format, list)
}

func builtinNames() []string {
	names := make([]string, len(polyfill.Registry))
	for i, mod := range polyfill.Registry {
		names[i] = mod.Name
	}
	return names
}

func printList(format string, list []string) error {
	var body string
	if format == "json" {
		out, err := json.MarshalIndent(list, "", "  ")
		if err != nil {
			return err
		}
		body = string(out) + "\n"
	} else {
		body = strings.Join(list, "\n") + "\n"
	}
	return writeOutput(body)
}

// writeOutput honors the shared --output flag: a path writes the body
// to that file, empty means stdout.
func writeOutput(body string) error {
	if out := viper.GetString("output"); out != "" {
		return os.WriteFile(out, []byte(body), 0o644)
	}
	_, err := fmt.Print(body)
	return err
}
