package commands

import (
	"fmt"

	"github.com/j2inn/haystack-core-sub001/display"
	"github.com/j2inn/haystack-core-sub001/errors"
	"github.com/j2inn/haystack-core-sub001/hval"
	"github.com/j2inn/haystack-core-sub001/namespace"
	"github.com/j2inn/haystack-core-sub001/source"
	"github.com/j2inn/haystack-core-sub001/sym"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	relTerm    string
	relTarget  string
	relRecords string
)

// RelCmd queries a relationship.
var RelCmd = &cobra.Command{
	Use:   "rel <relationship> <tags...>",
	Short: sym.Short("rel"),
	Long: `Report whether a record has a relationship, optionally restricted to
a term and a target ref.

Records for transitive and reciprocal checks are read from --records, a def
style file (YAML, JSON or TOML) whose rows carry an id ref.

Examples:
  haystack rel inputs hotWaterRef=@hwp ahu equip
  haystack rel inputs --term hot-water hotWaterRef=@hwp ahu equip
  haystack rel containedBy --target @site1 --records site.yaml id=@r1 spaceRef=@f1 space`,
	Args: cobra.MinimumNArgs(2),
	RunE: runRel,
}

func init() {
	RelCmd.Flags().StringVar(&relTerm, "term", "", "Only refs declared for this term (or a sub type)")
	RelCmd.Flags().StringVar(&relTarget, "target", "", "Target ref, e.g. @site1")
	RelCmd.Flags().StringVar(&relRecords, "records", "", "File of records used to resolve refs")
}

type relView struct {
	Relationship string `json:"relationship"`
	Term         string `json:"term,omitempty"`
	Target       string `json:"target,omitempty"`
	Result       bool   `json:"result"`
}

func runRel(cmd *cobra.Command, args []string) error {
	ns, err := loadNamespace()
	if err != nil {
		return err
	}
	if _, err := ns.ByAllNames(args[0]); err != nil {
		return err
	}
	rec, err := parseRecord(args[1:])
	if err != nil {
		return err
	}

	q := namespace.RelationshipQuery{Subject: rec, RelName: args[0], RelTerm: relTerm}
	if relTarget != "" {
		q.TargetRef = hval.NewRef(relTarget)
	}
	if relRecords != "" {
		resolve, err := recordResolver(relRecords)
		if err != nil {
			return err
		}
		q.Resolve = resolve
	}

	view := relView{Relationship: args[0], Term: relTerm, Target: q.TargetRef.ID, Result: ns.HasRelationship(q)}
	w := cmd.OutOrStdout()
	if display.ShouldOutputJSON(cmd) {
		return display.JSON(w, view)
	}
	if view.Result {
		fmt.Fprintf(w, "%s record has %s\n", pterm.LightGreen(sym.Pass), describeRel(view))
	} else {
		fmt.Fprintf(w, "%s record does not have %s\n", pterm.Red(sym.Fail), describeRel(view))
	}
	return nil
}

func describeRel(v relView) string {
	s := v.Relationship
	if v.Term != "" {
		s += " " + v.Term
	}
	if v.Target != "" {
		s += " @" + v.Target
	}
	return s
}

// recordResolver indexes the rows of a file by their id ref.
func recordResolver(path string) (namespace.Resolver, error) {
	g, err := source.LoadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load records")
	}
	byID := make(map[string]*hval.Dict, g.Len())
	for _, row := range g.Rows() {
		if id, ok := row.RefVal("id"); ok {
			byID[id.ID] = row
		}
	}
	return func(ref hval.Ref) (*hval.Dict, bool) {
		rec, ok := byID[ref.ID]
		return rec, ok
	}, nil
}
