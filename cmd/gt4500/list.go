package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gt4500/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available ship classes",
	Long:  `Shows a list of all ship classes registered with fire control.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	ships := registry.List()

	if len(ships) == 0 {
		fmt.Println("No ship classes available.")
		return
	}

	fmt.Println("Available ship classes:")
	fmt.Println()

	// Calculate column widths
	maxClassLen := 5 // "Class" header
	for _, s := range ships {
		if len(s.Class) > maxClassLen {
			maxClassLen = len(s.Class)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxClassLen, "Class", "Title")
	fmt.Printf("  %-*s  %s\n", maxClassLen, "-----", "-----")

	for _, s := range ships {
		fmt.Printf("  %-*s  %s\n", maxClassLen, s.Class, s.Title)
	}
}
