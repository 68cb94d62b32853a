package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gt4500/internal/registry"
	"github.com/vovakirdan/gt4500/internal/storage"
)

var (
	flagLimit   int
	flagSession string
	flagClear   bool
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show the salvo log",
	Long: `Display recorded salvos and per-class statistics.

Examples:
  gt4500 log
  gt4500 log --limit 50
  gt4500 log --session 0b6c...
  gt4500 log --clear`,
	Args: cobra.NoArgs,
	RunE: runLog,
}

func init() {
	logCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of recent salvos to show")
	logCmd.Flags().StringVar(&flagSession, "session", "", "Show every salvo of one session")
	logCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded salvos")
}

func runLog(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening salvo log: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagClear {
		for _, ship := range registry.List() {
			if err := store.ClearSalvos(ship.Class); err != nil {
				return err
			}
		}
		fmt.Fprintln(out, "Salvo log cleared.")
		return nil
	}

	var entries []storage.SalvoEntry
	if flagSession != "" {
		entries, err = store.SessionSalvos(flagSession)
	} else {
		entries, err = store.RecentSalvos(flagLimit)
	}
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(out, "No salvos recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'gt4500 fire single' to fire the first torpedo.")
		return nil
	}

	fmt.Fprintf(out, "  %-6s  %-16s  %-8s  %-6s  %-17s  %-4s  %s\n", "ID", "Fired", "Class", "Mode", "Stores", "Res", "Left")
	fmt.Fprintf(out, "  %-6s  %-16s  %-8s  %-6s  %-17s  %-4s  %s\n", "--", "-----", "-----", "----", "------", "---", "----")

	for _, e := range entries {
		fmt.Fprintf(out, "  %-6d  %-16s  %-8s  %-6s  %-17s  %-4s  %d/%d\n",
			e.ID, e.FiredAt.Local().Format("2006-01-02 15:04"), e.Class, e.Mode, describeStores(e.PrimaryFired, e.SecondaryFired), hitOrMiss(e.Success), e.PrimaryLeft, e.SecondaryLeft)
	}

	fmt.Fprintln(out)
	for _, ship := range registry.List() {
		stats, err := store.GetClassStats(ship.Class)
		if err != nil {
			return err
		}
		if stats.Salvos == 0 {
			continue
		}
		fmt.Fprintf(out, "%s: %d salvos over %d sessions, %d hits, %d misses (primary %d, secondary %d launches)\n",
			ship.Title, stats.Salvos, stats.Sessions, stats.Hits, stats.Misses, stats.PrimaryLaunches, stats.SecondaryLaunches)
	}
	return nil
}
