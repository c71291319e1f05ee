package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kokaton/internal/games/kokaton"
	"github.com/vovakirdan/kokaton/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Fight Kokaton SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection plays one game and then sees the high score table.
Scores are recorded under the SSH user name and shared by everyone on the
server.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Examples:
  kokaton serve                           # Listen on :23234 with auto-generated key
  kokaton serve --ssh :2222               # Listen on port 2222
  kokaton serve --host-key ./my_host_key  # Use specific host key
  kokaton serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh -t alice@localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	// Sessions load resources on their own; broken files should stop the
	// server before anyone connects.
	cfg, _, err := kokaton.LoadResources()
	if err != nil {
		return fmt.Errorf("loading game resources: %w", err)
	}

	serverCfg := tui.DefaultSSHServerConfig()
	serverCfg.Address = flagSSHAddr
	serverCfg.HostKeyPath = flagHostKey
	serverCfg.DBPath = flagDBPath
	serverCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	serverCfg.GameID = kokaton.ID
	serverCfg.TickRate = tickRate(cmd, cfg)
	serverCfg.GameOverHold = time.Duration(cfg.Gameplay.GameOverHoldMs) * time.Millisecond

	server, err := tui.NewSSHServer(serverCfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting Fight Kokaton SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
