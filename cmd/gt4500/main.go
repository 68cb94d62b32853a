// gt4500 is a terminal fire-control station for the GT4500 starship.
//
// Usage:
//
//	gt4500 list                   - List available ship classes
//	gt4500 fire <single|all>      - Issue fire orders non-interactively
//	gt4500 console                - Interactive fire-control console
//	gt4500 serve                  - Start SSH server for remote crews
//	gt4500 log                    - Show the salvo log
//
// Global flags:
//
//	--config <path>      - Ship config YAML (default: search ~/.gt4500, ./configs)
//	--db <path>          - Salvo log database (default: ~/.gt4500/salvos.db)
//	--seed <value>       - RNG seed for misfire rolls
//	--readiness <level>  - drill, patrol, combat or damaged
//	--verbose            - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gt4500/internal/bridge"
	"github.com/vovakirdan/gt4500/internal/config"
	"github.com/vovakirdan/gt4500/internal/storage"

	// Import ship classes to register them
	_ "github.com/vovakirdan/gt4500/internal/ships/gt4500"
)

var (
	// Global flags
	flagConfig    string
	flagDBPath    string
	flagSeed      int64
	flagReadiness string
	flagVerbose   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gt4500",
	Short: "GT4500 fire control - launch torpedoes from your terminal",
	Long: `GT4500 fire control drives the two torpedo stores of a GT4500 starship.

Single orders alternate between the primary and secondary store and fall back
to whichever store still holds torpedoes. All orders fire every loaded store.

Available commands:
  list     - Show registered ship classes
  fire     - Issue fire orders
  console  - Interactive fire-control console
  serve    - Start SSH server for remote crews
  log      - View the salvo log

Examples:
  gt4500 fire single --times 4
  gt4500 fire all --readiness combat
  gt4500 console
  gt4500 serve --ssh :2222
  gt4500 log --limit 50`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to ship config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gt4500/salvos.db", "Path to salvo log database")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed for misfires (0 = config value or time)")
	rootCmd.PersistentFlags().StringVar(&flagReadiness, "readiness", "", "Readiness preset: drill, patrol, combat, damaged")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(fireCmd)
	rootCmd.AddCommand(consoleCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(logCmd)
}

// newLogger returns the CLI logger honoring --verbose.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadShipConfig runs the config pipeline with the global flags applied.
func loadShipConfig() (config.ShipConfig, error) {
	readiness, err := config.ParseReadiness(flagReadiness)
	if err != nil {
		return config.ShipConfig{}, err
	}

	cfg, err := config.Load(flagConfig, readiness)
	if err != nil {
		return cfg, err
	}

	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	return cfg, nil
}

// openBridge builds a bridge recording into the salvo log when it can be opened.
// The returned store may be nil; callers close it when non-nil.
func openBridge(logger *log.Logger) (*bridge.Bridge, *storage.Store, error) {
	cfg, err := loadShipConfig()
	if err != nil {
		return nil, nil, err
	}

	opts := []bridge.Option{bridge.WithLogger(logger)}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without the salvo log - firing still works
		logger.Warn("could not open salvo log", "error", err)
		store = nil
	} else {
		opts = append(opts, bridge.WithRecorder(store))
	}

	b, err := bridge.New(cfg, opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, nil, err
	}
	return b, store, nil
}
