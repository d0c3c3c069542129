package main

import (
	"crypto/sha256"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rsmlang/rojo-rsml/internal/rlog"
)

// watchIntervalSleep balances responsiveness against CPU use on a single
// watched file.
const watchIntervalSleep = 100 * time.Millisecond

func newWatchCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "watch <file.rsml>",
		Short: "recompile an RSML file on every change, using polling rather than OS file-system events",
		Long: "Polls the file's contents on an interval instead of registering a platform-specific " +
			"file-system watch: no cgo, no per-OS API, " +
			"and it stays correct no matter what filesystem the project lives on.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(args[0], outPath)
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write JSON to a file instead of stdout on every rebuild")
	return cmd
}

func runWatch(path, outPath string) error {
	var lastHash [sha256.Size]byte
	first := true

	for {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			time.Sleep(watchIntervalSleep)
			continue
		}
		hash := sha256.Sum256(data)
		if !first && hash == lastHash {
			time.Sleep(watchIntervalSleep)
			continue
		}
		first = false
		lastHash = hash

		log := rlog.NewLog()
		sheet, err := buildOne(path, log)
		for _, m := range log.Done() {
			fmt.Fprintf(os.Stderr, "%s: %s\n", m.Kind, m.Text)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			time.Sleep(watchIntervalSleep)
			continue
		}
		if writeErr := writeSheet(sheet, outPath); writeErr != nil {
			fmt.Fprintln(os.Stderr, writeErr)
		} else {
			fmt.Fprintf(os.Stderr, "rebuilt %s\n", path)
		}

		time.Sleep(watchIntervalSleep)
	}
}
