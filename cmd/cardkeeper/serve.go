package main

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cardkeeper/cardkeeper/internal/server"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Long: `Start the cardkeeper API server. The other commands and the web
frontend talk to this server.`,
		RunE: runServe,
	}

	cmd.Flags().String("addr", "", "listen address (default :8080)")
	_ = viper.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	// Local overrides for development; absence is fine.
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded environment from .env")
	}

	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = store.Close() }()

	settingsStore, err := initSettings()
	if err != nil {
		return err
	}

	addr := viper.GetString("server.addr")
	if addr == "" {
		addr = ":8080"
	}

	return server.New(addr, store, settingsStore).Run(ctx)
}
