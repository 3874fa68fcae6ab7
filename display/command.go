package display

import (
	"github.com/spf13/cobra"
)

// ShouldOutputJSON reports whether the command was run with --output json.
// The flag is usually a persistent flag of the root command.
func ShouldOutputJSON(cmd *cobra.Command) bool {
	if cmd == nil {
		return false
	}
	f := cmd.Flags().Lookup("output")
	return f != nil && f.Value.String() == "json"
}

// OutputJSON writes v as indented JSON to the command's output.
func OutputJSON(cmd *cobra.Command, v any) error {
	return JSON(cmd.OutOrStdout(), v)
}
