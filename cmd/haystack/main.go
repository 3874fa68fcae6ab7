package main

import (
	"fmt"
	"os"

	"github.com/j2inn/haystack-core-sub001/cmd/haystack/commands"
	"github.com/j2inn/haystack-core-sub001/errors"
	"github.com/j2inn/haystack-core-sub001/logger"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "haystack",
	Short: "Haystack def namespace tools",
	Long: `haystack - Query and check Project Haystack defs.

Builds a def namespace from the bundled ontology plus any def files given
in configuration or with --defs, then answers questions about it.

Available commands:
  def      - Show a def with its inheritance and implementation
  subtypes - List the sub types of a def
  reflect  - Reflect a tag expression into the defs it implements
  validate - Check a record against a def
  protos   - Generate child prototypes for a parent record
  rel      - Query a relationship on a record
  libs     - List libs and check version constraints
  watch    - Rebuild the namespace as def files change
  config   - Show or change configuration

Examples:
  haystack def ahu
  haystack reflect ahu equip hot water
  haystack validate ahu 'ahu equip siteRef=@s1 dis="AHU-1"'
  haystack protos pipe equip chilled water
  haystack rel inputs --term hot-water hotWaterRef=@hwp ahu equip`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: commands.Prepare,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	commands.BindGlobalFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(commands.DefCmd)
	rootCmd.AddCommand(commands.SubTypesCmd)
	rootCmd.AddCommand(commands.ReflectCmd)
	rootCmd.AddCommand(commands.ValidateCmd)
	rootCmd.AddCommand(commands.ProtosCmd)
	rootCmd.AddCommand(commands.RelCmd)
	rootCmd.AddCommand(commands.LibsCmd)
	rootCmd.AddCommand(commands.WatchCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, pterm.Red("Error: ")+err.Error())
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintln(os.Stderr, pterm.Yellow("Hint: ")+hint)
		}
		os.Exit(1)
	}
}
