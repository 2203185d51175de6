package store

import (
	"context"
	"fmt"

	"github.com/okugula/work-kg-admin/internal/config"
	"github.com/okugula/work-kg-admin/internal/logger"
)

// ClientStorages groups the client-side storages into a single value that can
// be passed around the adapter and service layers.
type ClientStorages struct {
	// Session keeps the token and the cached administrator profile.
	Session KeyValueStore

	db *DB
}

// NewClientStorages initialises the client storage layer. A DSN of "memory"
// or ":memory:" selects an in-process store that is lost on exit. Any other
// DSN is treated as an SQLite file path:
//  1. The file is created if it does not exist.
//  2. Pending schema migrations are applied via [DB.Migrate].
//  3. The session store is wired to the local_storage table.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("dsn", cfg.DB.DSN).Msg("creating new storages...")

	if isMemoryDSN(cfg.DB.DSN) {
		return &ClientStorages{Session: NewMemoryKeyValueStore()}, nil
	}

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Session: NewSQLiteKeyValueStore(db, logger),
		db:      db,
	}, nil
}

// Close releases the database connection, if any.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func isMemoryDSN(dsn string) bool {
	return dsn == "memory" || dsn == ":memory:"
}
