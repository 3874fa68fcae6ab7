package commands

import (
	"fmt"

	"github.com/j2inn/haystack-core-sub001/display"
	"github.com/j2inn/haystack-core-sub001/errors"
	"github.com/j2inn/haystack-core-sub001/sym"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var validateAll bool

// ReflectCmd reflects a record.
var ReflectCmd = &cobra.Command{
	Use:   "reflect <tags...>",
	Short: sym.Short("reflect"),
	Long: `Reflect a record into the set of defs it implements, including the
supertypes of every marker and any conjunct whose parts are all present.
The most specific entity type is reported as the record type.

Tags are markers by name or name=value; see 'haystack validate --help'.

Examples:
  haystack reflect ahu equip
  haystack reflect 'hot water pipe equip'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReflect,
}

// ValidateCmd validates a record against a def.
var ValidateCmd = &cobra.Command{
	Use:   "validate <def> <tags...>",
	Short: sym.Short("validate"),
	Long: `Check that a record fits a def: the def must be reflected by the
record, every mandatory tag of its implementation must be present, compulsory
defs must be present and tag values must have the kind their def declares.

With --all every entity and marker def the record reflects is checked and no
def name is given.

Tag values: @id ref, ^name symbol, true/false bool, plain numbers,
empty (name=) null, "n:72 °F" style prefixed values; anything else is a string.

Examples:
  haystack validate ahu 'ahu equip siteRef=@s1 dis="AHU-1"'
  haystack validate --all ahu equip siteRef=@s1`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

// ProtosCmd lists child prototypes.
var ProtosCmd = &cobra.Command{
	Use:   "protos <tags...>",
	Short: sym.Short("protos"),
	Long: `List the child records implied by the parent's reflected defs.
Qualifying parent tags, such as the fluid of a pipe, are carried onto each
child.

Examples:
  haystack protos pipe equip
  haystack protos pipe equip chilled water leaving`,
	Args: cobra.MinimumNArgs(1),
	RunE: runProtos,
}

func init() {
	ValidateCmd.Flags().BoolVar(&validateAll, "all", false, "Validate every entity and marker def the record reflects")
}

type reflectView struct {
	Defs []string `json:"defs"`
	Type string   `json:"type,omitempty"`
}

func runReflect(cmd *cobra.Command, args []string) error {
	ns, err := loadNamespace()
	if err != nil {
		return err
	}
	rec, err := parseRecord(args)
	if err != nil {
		return err
	}

	r := ns.Reflect(rec)
	view := reflectView{Defs: r.Names()}
	if typ, ok := r.Type(); ok {
		view.Type = typ.Name()
	}

	w := cmd.OutOrStdout()
	if display.ShouldOutputJSON(cmd) {
		return display.JSON(w, view)
	}
	if err := display.Table(w, []string{"Def", "Doc"}, defRows(r.Defs())); err != nil {
		return err
	}
	if view.Type != "" {
		fmt.Fprintf(w, "\n%s %s\n", pterm.LightCyan("Type:"), pterm.LightGreen(view.Type))
	}
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	ns, err := loadNamespace()
	if err != nil {
		return err
	}

	name, tagArgs := "", args
	if !validateAll {
		if len(args) < 2 {
			return errors.WithHint(
				errors.Wrap(errors.ErrInvalidArgument, "validate needs a def name and tags"),
				"use --all to check every def the record reflects")
		}
		name, tagArgs = args[0], args[1:]
	}
	rec, err := parseRecord(tagArgs)
	if err != nil {
		return err
	}

	if validateAll {
		err = ns.ValidateAll(rec)
	} else {
		err = ns.Validate(name, rec)
	}
	if err != nil {
		return errors.Wrap(err, "validation failed")
	}

	w := cmd.OutOrStdout()
	if display.ShouldOutputJSON(cmd) {
		return display.JSON(w, map[string]bool{"valid": true})
	}
	target := name
	if validateAll {
		target = "every reflected def"
	}
	fmt.Fprintf(w, "%s record fits %s\n", pterm.LightGreen(sym.Pass), target)
	return nil
}

func runProtos(cmd *cobra.Command, args []string) error {
	ns, err := loadNamespace()
	if err != nil {
		return err
	}
	rec, err := parseRecord(args)
	if err != nil {
		return err
	}

	protos := ns.Protos(rec)
	w := cmd.OutOrStdout()
	if display.ShouldOutputJSON(cmd) {
		out := make([]string, len(protos))
		for i, p := range protos {
			out[i] = formatTags(p)
		}
		return display.JSON(w, out)
	}
	if len(protos) == 0 {
		fmt.Fprintln(w, "no prototypes")
		return nil
	}

	rows := make([][]string, len(protos))
	for i, p := range protos {
		rows[i] = []string{fmt.Sprint(i + 1), formatTags(p)}
	}
	return display.Table(w, []string{"#", "Tags"}, rows)
}
