package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rsmlang/rojo-rsml/internal/colors"
)

// newFmtColorsCmd dumps the resolved color tables as JSON so a build
// pipeline can snapshot exactly which names were available for a given
// compile.
func newFmtColorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fmt-colors",
		Short: "dump the resolved CSS, Tailwind, and config color tables as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			tables := colors.Load().WithExtra(cfg.Colors)
			out, err := json.MarshalIndent(tables.Dump(), "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling color tables: %w", err)
			}
			fmt.Println(string(out))
			return nil
		},
	}
}
