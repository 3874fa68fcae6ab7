package commands

import (
	"fmt"

	"github.com/j2inn/haystack-core-sub001/display"
	"github.com/j2inn/haystack-core-sub001/errors"
	"github.com/j2inn/haystack-core-sub001/sym"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// LibsCmd lists libs or checks a version constraint.
var LibsCmd = &cobra.Command{
	Use:   "libs [name constraint]",
	Short: sym.Short("libs"),
	Long: `List the lib defs of the namespace with their versions.

Given a lib name and a semver constraint, check that the loaded lib
satisfies it instead.

Examples:
  haystack libs
  haystack libs phIoT '^3.9'`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 2 {
			return errors.Newf("accepts no args or <name> <constraint>, received %d", len(args))
		}
		return nil
	},
	RunE: runLibs,
}

type libView struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Doc     string `json:"doc,omitempty"`
}

func runLibs(cmd *cobra.Command, args []string) error {
	ns, err := loadNamespace()
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()

	if len(args) == 2 {
		if err := ns.RequireLib(args[0], args[1]); err != nil {
			return err
		}
		v, _ := ns.LibVersion(args[0])
		if display.ShouldOutputJSON(cmd) {
			return display.JSON(w, map[string]any{"name": args[0], "version": v.String(), "satisfies": args[1]})
		}
		fmt.Fprintf(w, "%s %s %s satisfies %s\n", pterm.LightGreen(sym.Pass), args[0], v, args[1])
		return nil
	}

	var libs []libView
	for _, lib := range ns.Libs() {
		view := libView{Name: lib.Name(), Doc: firstLine(lib.Doc())}
		if v, err := ns.LibVersion(lib.Name()); err == nil {
			view.Version = v.String()
		}
		libs = append(libs, view)
	}

	if display.ShouldOutputJSON(cmd) {
		return display.JSON(w, libs)
	}
	rows := make([][]string, len(libs))
	for i, l := range libs {
		rows[i] = []string{l.Name, l.Version, l.Doc}
	}
	return display.Table(w, []string{"Lib", "Version", "Doc"}, rows)
}
