package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/j2inn/haystack-core-sub001/display"
	"github.com/j2inn/haystack-core-sub001/hval"
	"github.com/j2inn/haystack-core-sub001/namespace"
	"github.com/j2inn/haystack-core-sub001/sym"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

var subTypesAll bool

// DefCmd shows one def.
var DefCmd = &cobra.Command{
	Use:   "def <name>",
	Short: sym.Short("def"),
	Long: `Show a def's tags, its inheritance (nearest first), the tags that
implement it, its value kind and its direct sub types.

Examples:
  haystack def ahu
  haystack def hot-water -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runDef,
}

// SubTypesCmd lists sub types of a def.
var SubTypesCmd = &cobra.Command{
	Use:   "subtypes <name>",
	Short: sym.Def + " List the sub types of a def",
	Long: `List the defs declaring name in their "is" tag.

With --all the whole sub tree is listed, breadth first.

Examples:
  haystack subtypes equip
  haystack subtypes fluid --all`,
	Args: cobra.ExactArgs(1),
	RunE: runSubTypes,
}

func init() {
	SubTypesCmd.Flags().BoolVarP(&subTypesAll, "all", "a", false, "List every transitive sub type")
}

type defView struct {
	Def            *orderedmap.OrderedMap[string, string] `json:"def"`
	Inheritance    []string                               `json:"inheritance"`
	Implementation []string                               `json:"implementation"`
	Kind           string                                 `json:"kind"`
	SubTypes       []string                               `json:"subTypes"`
}

func runDef(cmd *cobra.Command, args []string) error {
	ns, err := loadNamespace()
	if err != nil {
		return err
	}
	found, err := ns.ByAllNames(args[0])
	if err != nil {
		return err
	}
	def := found[0]

	impl, err := ns.Implementation(def.Name())
	if err != nil {
		return err
	}
	view := defView{
		Def:            display.Record(def.Record()),
		Inheritance:    defNames(ns.Inheritance(def.Name())),
		Implementation: defNames(impl),
		Kind:           ns.DefToKind(def.Name()).String(),
		SubTypes:       sortedDefNames(ns.SubTypesOf(def.Name())),
	}

	w := cmd.OutOrStdout()
	if display.ShouldOutputJSON(cmd) {
		return display.JSON(w, view)
	}

	var rows [][]string
	def.Record().Each(func(name string, v hval.Value) bool {
		rows = append(rows, []string{name, v.String()})
		return true
	})
	if err := display.Table(w, []string{"Tag", "Value"}, rows); err != nil {
		return err
	}

	fmt.Fprintln(w)
	printList(w, "Inheritance", view.Inheritance)
	printList(w, "Implementation", view.Implementation)
	fmt.Fprintf(w, "%s %s\n", pterm.LightCyan("Kind:"), view.Kind)
	printList(w, "Sub types", view.SubTypes)
	return nil
}

func runSubTypes(cmd *cobra.Command, args []string) error {
	ns, err := loadNamespace()
	if err != nil {
		return err
	}
	if _, err := ns.ByAllNames(args[0]); err != nil {
		return err
	}

	var subs []*namespace.Def
	if subTypesAll {
		subs = ns.AllSubTypesOf(args[0])
	} else {
		subs = ns.SubTypesOf(args[0])
	}

	w := cmd.OutOrStdout()
	if display.ShouldOutputJSON(cmd) {
		return display.JSON(w, defNames(subs))
	}
	if len(subs) == 0 {
		fmt.Fprintf(w, "%s has no sub types\n", args[0])
		return nil
	}
	return display.Table(w, []string{"Def", "Doc"}, defRows(subs))
}

func printList(w io.Writer, label string, items []string) {
	value := pterm.Gray("(none)")
	if len(items) > 0 {
		value = strings.Join(items, ", ")
	}
	fmt.Fprintf(w, "%s %s\n", pterm.LightCyan(label+":"), value)
}
