package commands

import (
	"strings"

	"github.com/j2inn/haystack-core-sub001/config"
	"github.com/j2inn/haystack-core-sub001/errors"
	"github.com/j2inn/haystack-core-sub001/hval"
	"github.com/j2inn/haystack-core-sub001/logger"
	"github.com/j2inn/haystack-core-sub001/namespace"
	"github.com/j2inn/haystack-core-sub001/ontology"
	"github.com/j2inn/haystack-core-sub001/source"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Global flag values.
var (
	configPath string
	defPaths   []string
	noBundled  bool
	verbosity  int
	jsonLog    bool
	output     string
)

// cfg is the configuration of the running command, set by Prepare.
var cfg *config.Config

// BindGlobalFlags registers the flags every command accepts.
func BindGlobalFlags(flags *pflag.FlagSet) {
	flags.StringVar(&configPath, "config", "", "Config file merged above the project and user files")
	flags.StringSliceVar(&defPaths, "defs", nil, "Def files or directories (replaces defs.paths)")
	flags.BoolVar(&noBundled, "no-bundled", false, "Do not load the bundled ontology")
	flags.CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (-v, -vv, -vvv)")
	flags.BoolVar(&jsonLog, "json-log", false, "Write logs as JSON")
	flags.StringVarP(&output, "output", "o", "table", "Output format: table, json")
}

// Prepare loads configuration, applies flag overrides and initializes the
// logger. It runs before every command.
func Prepare(cmd *cobra.Command, args []string) error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("defs") {
		c.Defs.Paths = defPaths
	}
	if flags.Changed("no-bundled") {
		c.Defs.Bundled = !noBundled
	}
	if flags.Changed("verbose") {
		c.Log.Verbosity = min(verbosity, 4)
	}
	if flags.Changed("json-log") {
		c.Log.JSON = jsonLog
	}
	if err := logger.Initialize(c.Log.JSON, c.Log.Verbosity); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}

	cfg = c
	return nil
}

func currentConfig() *config.Config {
	if cfg != nil {
		return cfg
	}
	v := viper.New()
	config.SetDefaults(v)
	c, err := config.LoadWithViper(v)
	if err != nil {
		return &config.Config{Defs: config.DefsConfig{Bundled: true}}
	}
	return c
}

// loadNamespace builds the namespace selected by configuration and installs
// it as the process default.
func loadNamespace() (*namespace.Namespace, error) {
	c := currentConfig()
	opts, err := c.NamespaceOptions()
	if err != nil {
		return nil, err
	}

	var base *hval.Grid
	if c.Defs.Bundled {
		base = ontology.Grid()
	}
	ns, err := source.Build(base, c.Defs.Paths, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build namespace")
	}
	logger.Debugw("Namespace ready", logger.FieldCount, ns.Len(), logger.FieldFiles, c.Defs.Paths, "bundled", c.Defs.Bundled)

	namespace.SetDefault(ns)
	return ns, nil
}

// parseRecord turns command arguments into a record. A single argument is
// parsed as a whole tag expression, so quoted expressions work too.
func parseRecord(args []string) (*hval.Dict, error) {
	if len(args) == 1 && strings.ContainsAny(args[0], " \t") {
		return source.ParseTags(args[0])
	}
	return source.ParseTagArgs(args)
}
