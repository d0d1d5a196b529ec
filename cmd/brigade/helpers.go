package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/nsellier/brigade/internal/engine"
	"github.com/nsellier/brigade/internal/enrich"
	"github.com/nsellier/brigade/internal/match"
	"github.com/nsellier/brigade/internal/service"
	"github.com/nsellier/brigade/internal/storage"
	"github.com/nsellier/brigade/internal/usagelog"
)

func databasePath() (string, error) {
	if dbPath := viper.GetString("database.path"); dbPath != "" {
		return dbPath, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "brigade", "brigade.db"), nil
}

// openStorage opens the database and brings the schema up to date. Every
// command goes through here, so a fresh install works without an explicit
// migrate run.
func openStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath, err := databasePath()
	if err != nil {
		return nil, err
	}

	if dir := filepath.Dir(dbPath); dbPath != ":memory:" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// newEnricher builds the Gemini enricher when a key is configured. A nil
// return disables enrichment; the pipeline stays deterministic.
func newEnricher(ctx context.Context) engine.Enricher {
	apiKey := viper.GetString("gemini.api_key")
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		slog.Debug("no gemini api key configured, enrichment disabled")
		return nil
	}

	client, err := enrich.NewGeminiClient(ctx, apiKey, viper.GetString("gemini.model"))
	if err != nil {
		slog.Warn("failed to initialize gemini client, enrichment disabled", "error", err)
		return nil
	}

	return enrich.NewEnricher(client, enrich.Config{
		MaxRetries: viper.GetInt("gemini.max_retries"),
		Timeout:    viper.GetDuration("gemini.timeout"),
	}, slog.Default())
}

// newUsageBuffer wires the usage log. Records land in the local database
// unless a Redis address is configured, in which case an external consumer
// owns the log.
func newUsageBuffer(store *storage.SQLiteStorage) *usagelog.Buffer {
	var sink service.UsageSink = store
	if addr := viper.GetString("usage.redis_addr"); addr != "" {
		sink = usagelog.NewRedisSink(addr, viper.GetString("usage.redis_key"))
	}
	return usagelog.NewBuffer(sink, usagelog.DefaultConfig())
}

func matchOptionsFromConfig() match.Options {
	opts := match.Options{
		Limit:           viper.GetInt("match.limit"),
		MinScore:        viper.GetFloat64("match.min_score"),
		IncludeInactive: viper.GetBool("match.include_inactive"),
		Mode:            match.ScoringMode(viper.GetString("match.mode")),
	}
	return opts
}
