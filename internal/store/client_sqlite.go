package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-user-client/internal/logger"
)

type sqliteSessionStore struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLiteSessionStore returns a [SessionStore] persisted in the session
// table of db. The schema must already be migrated.
func NewSQLiteSessionStore(db *DB, logger *logger.Logger) SessionStore {
	return &sqliteSessionStore{
		db:     db,
		logger: logger,
	}
}

func (s *sqliteSessionStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, getSessionValue, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		s.logger.Err(err).Str("func", "sqliteSessionStore.Get").Str("key", key).Msg("error reading session value")
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, true, nil
}

func (s *sqliteSessionStore) Set(ctx context.Context, key, value string) error {
	if _, err := s.db.ExecContext(ctx, upsertSessionValue, key, value); err != nil {
		s.logger.Err(err).Str("func", "sqliteSessionStore.Set").Str("key", key).Msg("error writing session value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteSessionStore) Remove(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, deleteSessionValue, key); err != nil {
		s.logger.Err(err).Str("func", "sqliteSessionStore.Remove").Str("key", key).Msg("error removing session value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteSessionStore) Close() error {
	return s.db.Close()
}
