package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rsmlang/rojo-rsml/internal/colors"
	"github.com/rsmlang/rojo-rsml/internal/rlog"
	"github.com/rsmlang/rojo-rsml/pkg/rsml"
)

func newBuildCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "build <file.rsml>",
		Short: "compile an RSML file and print its translated sheet as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := rlog.NewLog()
			sheet, err := buildOne(args[0], log)
			if err != nil {
				return err
			}
			for _, m := range log.Done() {
				fmt.Fprintf(os.Stderr, "%s: %s\n", m.Kind, m.Text)
			}
			return writeSheet(sheet, outPath)
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write JSON to a file instead of stdout")
	return cmd
}

// buildOne loads the project's color tables (bundled plus config overlay),
// compiles source, and returns the translated Sheet. Diagnostics produced
// while loading go to log; the compile itself never fails.
func buildOne(path string, log *rlog.Log) (*rsml.Sheet, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		log.Add(rlog.Warning, err.Error())
	}

	tables := colors.Load().WithExtra(cfg.Colors)
	arena := rsml.Parse(rsml.Lex(string(src)), tables)
	return rsml.Walk(arena), nil
}

func writeSheet(sheet *rsml.Sheet, outPath string) error {
	out, err := json.MarshalIndent(sheet, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling sheet: %w", err)
	}
	if outPath == "" {
		fmt.Println(string(out))
		return nil
	}
	return os.WriteFile(outPath, out, 0o644)
}
