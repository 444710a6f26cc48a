package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mvasher/scribe/internal/config"
	"github.com/mvasher/scribe/internal/engine"
	"github.com/mvasher/scribe/internal/storage"
)

const defaultDBPath = "~/.local/share/scribe/scribe.db"

// openStorage opens the configured database and brings its schema current.
// Callers own the returned storage and must Close it.
func openStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = defaultDBPath
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database at %s: %w", dbPath, err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// newEngine wires a capture engine against the given storage.
func newEngine(store *storage.SQLiteStorage) *engine.Engine {
	return engine.New(store, engine.SystemClock())
}

// expandFileArgs resolves glob patterns and direct paths into files to ingest.
func expandFileArgs(args []string) ([]string, error) {
	var files []string
	for _, pattern := range args {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			if _, statErr := os.Stat(pattern); statErr == nil {
				files = append(files, pattern)
			}
			continue
		}
		files = append(files, matches...)
	}
	return files, nil
}
