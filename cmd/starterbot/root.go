package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/sglre6355/starterbot/internal/bot"
	"github.com/sglre6355/starterbot/internal/logging"
	"github.com/sglre6355/starterbot/internal/shutdown"
	"github.com/spf13/cobra"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "starterbot",
	Short: "Discord bot template with /help, /ping and /shutdown",
	Long: `starterbot connects to the Discord gateway, registers its slash commands
and serves interactions until it receives SIGINT/SIGTERM or an authorized
user runs /shutdown.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return bot.LoadEnvFiles(envFile)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env",
		"dotenv file loaded before reading configuration (skipped if missing)")

	rootCmd.AddCommand(commandsCmd)
	rootCmd.AddCommand(versionCmd)
}

func run() error {
	closer, err := logging.Setup()
	if err != nil {
		return err
	}
	defer closer.Close()

	slog.Info("starting starterbot", "version", version)

	// Load configuration
	cfg, err := bot.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Create and configure bot
	b := bot.NewBot(cfg)
	b.LoadModules(newRegistry())

	// Installed before Start so a signal during start-up still runs Stop.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	// Start bot
	if err := b.Start(); err != nil {
		_ = b.Stop()
		return fmt.Errorf("failed to start bot: %w", err)
	}

	listenErr := awaitTermination(stop, b.Terminated())

	if err := b.Stop(); err != nil {
		slog.Error("failed to shutdown", "error", err)
	}

	if listenErr != nil {
		return listenErr
	}

	slog.Info("completed bot shutdown")
	return nil
}

// awaitTermination blocks until a termination signal or the shutdown
// listener's result arrives, and returns the listener's error if any.
func awaitTermination(stop <-chan os.Signal, terminated <-chan error) error {
	select {
	case sig := <-stop:
		slog.Info("received termination signal, shutting down", "signal", sig.String())
		return nil
	case err := <-terminated:
		if errors.Is(err, shutdown.ErrSignalLost) {
			slog.Error("lost shutdown signal channel", "error", err)
		}
		return err
	}
}
