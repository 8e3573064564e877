package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/cardkeeper/cardkeeper/internal/api"
	"github.com/cardkeeper/cardkeeper/internal/cli"
	"github.com/cardkeeper/cardkeeper/internal/settings"
	"github.com/cardkeeper/cardkeeper/internal/storage"
)

// dataDir resolves the directory holding the database and settings file.
func dataDir() (string, error) {
	if dir := viper.GetString("database.dir"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "cardkeeper"), nil
}

// initStorage opens the database and brings the schema up to date.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dir, err := dataDir()
	if err != nil {
		return nil, err
	}

	store, err := storage.NewSQLiteStorage(filepath.Join(dir, "cardkeeper.db"))
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return store, nil
}

// initSettings creates the settings store next to the database.
func initSettings() (*settings.Store, error) {
	dir, err := dataDir()
	if err != nil {
		return nil, err
	}
	return settings.NewStore(filepath.Join(dir, "settings.yaml")), nil
}

// newAPIClient builds a client for the configured server.
func newAPIClient() *api.Client {
	return api.NewClient(viper.GetString("server.url"))
}

func newPresenter() *cli.ConsolePresenter {
	return cli.NewConsolePresenter(os.Stdout)
}
