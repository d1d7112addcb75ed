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

// Package resolve provides the "resolve" command: drives
// resolve.PackageResolve (spec.md §4.5) against the real filesystem.
package resolve

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/noderesolve/fs"
	"bennypowers.dev/noderesolve/log"
	"bennypowers.dev/noderesolve/npmresolver"
	"bennypowers.dev/noderesolve/packagejson"
	"bennypowers.dev/noderesolve/pathutil"
	"bennypowers.dev/noderesolve/permission"
	coreresolve "bennypowers.dev/noderesolve/resolve"
)

// Cmd is the resolve command.
var Cmd = &cobra.Command{
	Use:   "resolve <specifier>",
	Short: "Resolve a require()-style specifier against a referrer",
	Long: `Resolve a bare, relative, absolute, or "#"-imports specifier the way
Node's require() resolution algorithm would, printing the resolved
absolute path.`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().String("referrer", "", "Absolute file path the specifier is resolved relative to (default: <package>/index.js)")
	Cmd.Flags().Bool("esm", false, "Use ESM conditions/semantics instead of CJS")
	Cmd.Flags().Bool("types", false, "Resolve in Types mode instead of Execution mode")
	Cmd.Flags().StringSlice("condition", nil, "Additional export condition to honor, may be repeated")
	Cmd.Flags().String("format", "text", "Output format (text, json)")

	_ = viper.BindPFlag("resolve.referrer", Cmd.Flags().Lookup("referrer"))
	_ = viper.BindPFlag("resolve.esm", Cmd.Flags().Lookup("esm"))
	_ = viper.BindPFlag("resolve.types", Cmd.Flags().Lookup("types"))
	_ = viper.BindPFlag("condition", Cmd.Flags().Lookup("condition"))
}

type result struct {
	Specifier string `json:"specifier"`
	Referrer  string `json:"referrer"`
	Resolved  string `json:"resolved"`
}

func run(cmd *cobra.Command, args []string) error {
	specifier := args[0]

	packageDir := viper.GetString("package")
	referrer := viper.GetString("resolve.referrer")
	if referrer == "" {
		referrer = pathutil.JoinPosix(packageDir, "index.js")
	}

	kind := coreresolve.Cjs
	if viper.GetBool("resolve.esm") {
		kind = coreresolve.Esm
	}
	mode := coreresolve.Execution
	if viper.GetBool("resolve.types") {
		mode = coreresolve.Types
	}

	conditions := coreresolve.DefaultConditions(kind, mode)
	for _, extra := range viper.GetStringSlice("condition") {
		if !conditions.Has(extra) {
			conditions = append(conditions, extra)
		}
	}

	filesystem := fs.NewOSFileSystem()
	perm := permission.AllowAll{}
	deps := coreresolve.Deps{
		FS:          filesystem,
		Permission:  perm,
		Cache:       packagejson.NewMemoryCache(),
		NpmResolver: npmresolver.NewDefault(filesystem, perm),
		OS:          pathutil.POSIX,
		Logger:      log.NewDefaultLogger(viper.GetBool("verbose")),
	}

	resolved, err := coreresolve.PackageResolve(deps, specifier, referrer, kind, conditions, mode)
	if err != nil {
		return fmt.Errorf("resolving %q from %q: %w", specifier, referrer, err)
	}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	var body string
	if format == "json" {
		out, err := json.MarshalIndent(result{Specifier: specifier, Referrer: referrer, Resolved: resolved}, "", "  ")
		if err != nil {
			return err
		}
		body = string(out) + "\n"
	} else {
		body = resolved + "\n"
	}

	if out := viper.GetString("output"); out != "" {
		return os.WriteFile(out, []byte(body), 0o644)
	}
	_, err = fmt.Print(body)
	return err
}
