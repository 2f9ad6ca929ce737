package store

import "errors"

// Sentinel errors returned by session stores. Callers should use [errors.Is]
// to match against these values.
var (
	// ErrEmptySessionDSN is returned when no session backend is configured.
	ErrEmptySessionDSN = errors.New("empty session dsn")

	// ErrSessionStoreClosed is returned by a store used after Close.
	ErrSessionStoreClosed = errors.New("session store is closed")
)

// Low-level database operation errors. These are wrapped by the SQLite
// session store when a SQL-level operation fails.
var (
	// ErrExecutingQuery is returned when a SELECT against the session table fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrRedisCommand wraps any failure reported by the redis session store
	// other than a missing key.
	ErrRedisCommand = errors.New("redis command failed")
)
