// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	getSessionValue = `
		SELECT value
		FROM session
		WHERE key = ?;`

	upsertSessionValue = `
		INSERT INTO session (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at;`

	deleteSessionValue = `
		DELETE FROM session
		WHERE key = ?;`
)
