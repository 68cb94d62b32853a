package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gt4500/internal/core"
)

var (
	flagTimes  int
	flagStrict bool
)

var errFireFailed = errors.New("one or more fire orders failed")

var fireCmd = &cobra.Command{
	Use:   "fire <single|all>",
	Short: "Issue fire orders",
	Long: `Issue one or more fire orders and print the outcome of each salvo.

Modes:
  single - fire one torpedo, alternating primary and secondary stores
  all    - fire every store that still holds torpedoes

Examples:
  gt4500 fire single
  gt4500 fire single --times 6
  gt4500 fire all --readiness damaged --strict`,
	Args: cobra.ExactArgs(1),
	RunE: runFire,
}

func init() {
	fireCmd.Flags().IntVarP(&flagTimes, "times", "n", 1, "Number of fire orders to issue")
	fireCmd.Flags().BoolVar(&flagStrict, "strict", false, "Exit with an error if any order fails")
}

func runFire(cmd *cobra.Command, args []string) error {
	mode, err := core.ParseFiringMode(args[0])
	if err != nil {
		return err
	}
	if flagTimes < 1 {
		return fmt.Errorf("--times must be at least 1, got %d", flagTimes)
	}

	b, store, err := openBridge(newLogger("gt4500"))
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	out := cmd.OutOrStdout()
	failed := 0
	for i := 1; i <= flagTimes; i++ {
		salvo := b.Fire(mode)
		if !salvo.Success {
			failed++
		}
		fmt.Fprintf(out, "%3d  %-6s  %-17s  %-4s  left %d/%d\n",
			i, salvo.Mode, describeStores(salvo.PrimaryFired, salvo.SecondaryFired), hitOrMiss(salvo.Success), salvo.PrimaryLeft, salvo.SecondaryLeft)
	}

	st := b.Status()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%d orders, %d hits, %d failed (session %s)\n", st.Salvos, st.Hits, failed, b.SessionID())

	if flagStrict && failed > 0 {
		return errFireFailed
	}
	return nil
}

func describeStores(primary, secondary bool) string {
	switch {
	case primary && secondary:
		return "primary+secondary"
	case primary:
		return "primary"
	case secondary:
		return "secondary"
	default:
		return "-"
	}
}

func hitOrMiss(success bool) string {
	if success {
		return "hit"
	}
	return "miss"
}
