package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gt4500/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the fire-control SSH server",
	Long: `Start an SSH server that gives every connecting crew its own console.

Each SSH connection commands its own ship with freshly loaded stores.
Salvos from all sessions are written to the same salvo log.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.gt4500/host_key

Examples:
  gt4500 serve                           # Listen on :23450 with auto-generated key
  gt4500 serve --ssh :2222               # Listen on port 2222
  gt4500 serve --host-key ./my_host_key  # Use specific host key
  gt4500 serve --readiness combat        # Every session starts at combat readiness

Crews can connect with:
  ssh localhost -p 23450`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23450", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	ship, err := loadShipConfig()
	if err != nil {
		return err
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Ship:        ship,
	}

	server, err := tui.NewSSHServer(cfg, newLogger("gt4500-ssh"))
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Starting fire-control SSH server on %s\n", server.Addr())
	fmt.Fprintln(out, "Press Ctrl+C to stop")

	return server.ListenAndServe()
}
