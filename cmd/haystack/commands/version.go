package commands

import (
	"fmt"

	"github.com/j2inn/haystack-core-sub001/display"
	"github.com/j2inn/haystack-core-sub001/namespace"
	"github.com/j2inn/haystack-core-sub001/ontology"
	"github.com/j2inn/haystack-core-sub001/version"
	"github.com/spf13/cobra"
)

// VersionCmd prints the build stamp and the bundled lib versions.
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show haystack version information",
	Long:  `Display the build stamp of the haystack binary and the versions of the def libs bundled into it.`,
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func runVersion(cmd *cobra.Command, _ []string) error {
	var names []string
	libs := make(map[string]string)
	ns := ontology.Namespace()
	for _, lib := range ns.Libs() {
		name := namespace.FeatureName(lib.Name())
		if v, err := ns.LibVersion(lib.Name()); err == nil {
			names = append(names, name)
			libs[name] = v.String()
		}
	}
	info := version.Get(libs)

	w := cmd.OutOrStdout()
	if display.ShouldOutputJSON(cmd) {
		return display.JSON(w, info)
	}
	fmt.Fprintln(w, info.String())
	return display.Table(w, []string{"Field", "Value"}, info.Rows(names))
}
