package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nsellier/brigade/internal/storage"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long: `Initialize or update the database schema to the latest version.

Every command migrates on startup; this exists so a schema upgrade can be
applied explicitly, for instance before a deployment.`,
		RunE: runMigrate,
	}
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	dbPath, err := databasePath()
	if err != nil {
		return err
	}

	slog.Info("🗄️  Running database migrations...", "database", dbPath)

	// openStorage migrates as part of opening
	store, err := openStorage(cmd.Context())
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	defer func() { _ = store.Close() }()

	slog.Info("✅ Database schema up to date", "version", storage.ExpectedSchemaVersion)

	return nil
}
