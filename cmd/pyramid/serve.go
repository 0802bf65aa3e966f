package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pyramid/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Pyramid of Doom SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game with its own random levels.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.pyramid/host_key

With --watch, config changes apply to sessions that start afterwards.

Examples:
  pyramid serve                           # Listen on :23234 with auto-generated key
  pyramid serve --ssh :2222               # Listen on port 2222
  pyramid serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr, "pyramid-ssh")
	if err != nil {
		return err
	}

	cfg, preset, err := loadConfig()
	if err != nil {
		return err
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    tickRate(cfg),
		Game:        cfg,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	reloads, stop, err := startWatch(preset, logger)
	if err != nil {
		return err
	}
	defer stop()
	if reloads != nil {
		go func() {
			for c := range reloads {
				server.UpdateGameConfig(c)
			}
		}()
	}

	fmt.Printf("Starting Pyramid of Doom SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
