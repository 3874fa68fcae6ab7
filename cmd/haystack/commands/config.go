package commands

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/j2inn/haystack-core-sub001/config"
	"github.com/j2inn/haystack-core-sub001/display"
	"github.com/j2inn/haystack-core-sub001/errors"
	"github.com/j2inn/haystack-core-sub001/sym"
	"github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	configFormat  string
	configSetUser bool
	configSetFile string
)

// ConfigCmd groups the configuration commands.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: sym.Short("config"),
	Long: `Show or change haystack configuration.

Configuration sources (in order of precedence):
1. Environment variables (HAYSTACK_* prefix, e.g. HAYSTACK_DEFS_WATCH)
2. --config file
3. Project config (haystack.toml, searched upward from the working directory)
4. User config (~/.haystack/haystack.toml)
5. Default values

Examples:
  haystack config show                        # Show effective configuration
  haystack config show --format json          # Show configuration as JSON
  haystack config where                       # Show where each value comes from
  haystack config set defs.paths defs,site    # Write to ./haystack.toml
  haystack config set --user log.verbosity 1  # Write to the user config`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configWhereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where each configuration value comes from",
	Args:  cobra.NoArgs,
	RunE:  runConfigWhere,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value in a config file",
	Long: `Set one key in a TOML config file, keeping up to three backups
(.back1 newest). The value is converted to the key's type; lists are comma
separated.

Without --user or --file the project file ./haystack.toml is written.`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configShowCmd.Flags().StringVar(&configFormat, "format", "toml", "Output format: toml, json, yaml")
	configSetCmd.Flags().BoolVar(&configSetUser, "user", false, "Write the user config file")
	configSetCmd.Flags().StringVar(&configSetFile, "file", "", "Write this config file")

	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configWhereCmd)
	ConfigCmd.AddCommand(configSetCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	c := currentConfig()
	w := cmd.OutOrStdout()

	switch configFormat {
	case "json":
		data, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to JSON")
		}
		fmt.Fprintln(w, string(data))

	case "yaml":
		data, err := yaml.Marshal(c)
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to YAML")
		}
		fmt.Fprintf(w, "# haystack configuration\n%s", data)

	case "toml":
		data, err := toml.Marshal(c)
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to TOML")
		}
		fmt.Fprintf(w, "# haystack configuration\n%s", data)

	default:
		return errors.Newf("unsupported format: %s (supported: toml, json, yaml)", configFormat)
	}
	return nil
}

func runConfigWhere(cmd *cobra.Command, args []string) error {
	settings := config.Introspect()
	w := cmd.OutOrStdout()
	if display.ShouldOutputJSON(cmd) {
		return display.JSON(w, settings)
	}

	rows := make([][]string, len(settings))
	for i, s := range settings {
		rows[i] = []string{s.Key, fmt.Sprint(s.Value), string(s.Source), s.SourcePath}
	}
	return display.Table(w, []string{"Key", "Value", "Source", "Path"}, rows)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, raw := args[0], args[1]
	value, err := config.ParseValue(key, raw)
	if err != nil {
		return err
	}

	path, err := configSetTarget()
	if err != nil {
		return err
	}
	if err := config.SaveKey(path, key, value); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %v in %s\n", pterm.LightGreen(sym.Pass), key, value, path)
	return nil
}

func configSetTarget() (string, error) {
	switch {
	case configSetFile != "" && configSetUser:
		return "", errors.Wrap(errors.ErrInvalidArgument, "--user and --file are exclusive")
	case configSetFile != "":
		return configSetFile, nil
	case configSetUser:
		return config.UserConfigPath()
	}
	return filepath.Abs(config.ConfigFileName)
}
