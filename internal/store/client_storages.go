package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-user-client/internal/config"
	"github.com/MKhiriev/go-user-client/internal/logger"
)

// ClientStorages groups the client-side stores into a single value that can
// be passed to the service layer.
type ClientStorages struct {
	// Session keeps the active user id between runs.
	Session SessionStore
}

// NewClientStorages opens the session backend selected by cfg.Session.DSN:
//   - "memory" or ":memory:" keeps values in process memory;
//   - a redis:// or rediss:// URL uses a Redis server;
//   - anything else is a SQLite database file, created and migrated on first use.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	session, err := newSessionStore(context.Background(), strings.TrimSpace(cfg.Session.DSN), logger.GetChildLogger("session_store"))
	if err != nil {
		return nil, err
	}

	return &ClientStorages{
		Session: session,
	}, nil
}

// Close releases every backend held by s.
func (s *ClientStorages) Close() error {
	if s == nil || s.Session == nil {
		return nil
	}
	return s.Session.Close()
}

func newSessionStore(ctx context.Context, dsn string, logger *logger.Logger) (SessionStore, error) {
	switch {
	case dsn == "":
		return nil, ErrEmptySessionDSN
	case isMemoryDSN(dsn):
		return NewMemorySessionStore(), nil
	case isRedisDSN(dsn):
		client, err := NewConnectRedis(ctx, dsn, logger)
		if err != nil {
			return nil, fmt.Errorf("redis connection error: %w", err)
		}
		return NewRedisSessionStore(client, logger), nil
	default:
		db, err := NewConnectSQLite(ctx, dsn, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		return NewSQLiteSessionStore(db, logger), nil
	}
}

func isMemoryDSN(dsn string) bool {
	return dsn == "memory" || dsn == ":memory:"
}

func isRedisDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "redis://") || strings.HasPrefix(dsn, "rediss://")
}
