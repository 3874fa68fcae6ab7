package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/j2inn/haystack-core-sub001/errors"
	"github.com/j2inn/haystack-core-sub001/hval"
	"github.com/j2inn/haystack-core-sub001/namespace"
	"github.com/j2inn/haystack-core-sub001/ontology"
	"github.com/j2inn/haystack-core-sub001/source"
	"github.com/j2inn/haystack-core-sub001/sym"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// WatchCmd rebuilds the namespace on def file changes.
var WatchCmd = &cobra.Command{
	Use:   "watch",
	Short: sym.Short("watch"),
	Long: `Watch the configured def paths and rebuild the namespace after each
change, reporting the def count. A file that fails to load keeps the
previous namespace. Stop with Ctrl-C.

Examples:
  haystack watch --defs ./defs
  HAYSTACK_DEFS_DEBOUNCE_MS=500 haystack watch --defs site.yaml`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	c := currentConfig()
	if len(c.Defs.Paths) == 0 {
		return errors.WithHint(
			errors.Wrap(errors.ErrInvalidArgument, "nothing to watch"),
			"pass --defs or set defs.paths")
	}
	opts, err := c.NamespaceOptions()
	if err != nil {
		return err
	}

	base := hval.NewGrid()
	if c.Defs.Bundled {
		base = ontology.Grid()
	}
	w, err := source.NewWatcher(namespace.DefaultHolder(), c.Defs.Paths,
		source.WithBase(base),
		source.WithDebounce(c.Debounce()),
		source.WithNamespaceOptions(opts...))
	if err != nil {
		return err
	}
	defer w.Stop()

	out := cmd.OutOrStdout()
	w.OnReload(func(ns *namespace.Namespace) error {
		fmt.Fprintf(out, "%s %s reloaded: %d defs\n",
			pterm.Gray(time.Now().Format("15:04:05")), pterm.LightGreen(sym.Pass), ns.Len())
		return nil
	})

	if _, err := w.Reload(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	w.Start(ctx)

	fmt.Fprintf(out, "Watching %d paths, Ctrl-C to stop\n", len(c.Defs.Paths))
	<-ctx.Done()
	return nil
}
