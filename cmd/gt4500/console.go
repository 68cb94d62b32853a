package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gt4500/internal/core"
	"github.com/vovakirdan/gt4500/internal/platform/tui"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Open the interactive fire-control console",
	Long: `Open the interactive fire-control console.

Controls:
  Space/F  - Fire single
  A        - Fire all
  R        - Reload both stores
  Tab      - Toggle salvo log
  ?        - More keys
  Q/Ctrl+C - Quit

Examples:
  gt4500 console
  gt4500 console --readiness combat
  gt4500 console --config ./my-ship.yaml`,
	RunE: runConsole,
}

func runConsole(cmd *cobra.Command, args []string) error {
	logger := newLogger("gt4500")

	b, store, err := openBridge(logger)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	// Warnings above reach stderr; once the alt screen is up the log would
	// corrupt the display.
	logger.SetOutput(io.Discard)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	if err := tui.Run(b, cfg); err != nil {
		return fmt.Errorf("console: %w", err)
	}
	return nil
}
