// Command rsmlc is a small CLI wrapping pkg/rsml: compile an .rsml file to
// the JSON shape of its translated Sheet, watch a file and recompile on
// change, or dump the resolved color tables. The subcommand layout (build,
// watch, plus an inspection verb) sits on a github.com/spf13/cobra command
// tree rather than a hand-rolled flag parser.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:   "rsmlc",
		Short: "compile RSML stylesheets",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "rsmlc.config.yaml", "path to the project config file")

	root.AddCommand(newBuildCmd())
	root.AddCommand(newWatchCmd())
	root.AddCommand(newFmtColorsCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
