package storage

import (
	"context"
	"database/sql"
	"fmt"
)

const (
	tokenCounterName = "form_token"
	tokenWidth       = 3

	// A conflicting token_no can only come from rows written outside the counter.
	maxTokenAttempts = 3
)

// FormatToken renders n as a decimal string zero-padded to the token width.
// Values wider than the width are not truncated.
func FormatToken(n int64) string {
	return fmt.Sprintf("%0*d", tokenWidth, n)
}

// nextToken advances the token counter inside tx. The increment is only
// visible to other writers once tx commits, and SQLite admits one writer at
// a time, so two submissions can never be handed the same value.
func nextToken(ctx context.Context, tx *sql.Tx) (string, error) {
	var value int64
	err := tx.QueryRowContext(ctx,
		"UPDATE counters SET value = value + 1 WHERE name = ? RETURNING value",
		tokenCounterName,
	).Scan(&value)
	if err != nil {
		return "", fmt.Errorf("nextToken(): failed to advance counter: %w", err)
	}
	return FormatToken(value), nil
}
