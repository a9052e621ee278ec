package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// SQLite backed cache of encoded plans keyed by request fingerprint.
// Keys are expected to come from services.Fingerprint.
type SqlitePlanCache struct {
	DB *sql.DB
}

func NewSqlitePlanCache(db *sql.DB) *SqlitePlanCache {
	return &SqlitePlanCache{DB: db}
}

// Fetch the cached plan for a fingerprint.
func (s *SqlitePlanCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if s.DB == nil {
		return nil, false, errors.New("plan cache: db is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return nil, false, errors.New("get plan cache: key must not be empty")
	}

	var payload []byte
	err := s.DB.QueryRowContext(ctx, `
	SELECT payload
	FROM plan_cache
	WHERE fingerprint = ?;
	`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get plan cache: query plan_cache table: %w", err)
	}

	return payload, true, nil
}

// Store a plan, replacing any previous entry for the fingerprint.
func (s *SqlitePlanCache) Put(ctx context.Context, key string, payload []byte) error {
	if s.DB == nil {
		return errors.New("plan cache: db is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("insert plan cache: key must not be empty")
	}

	_, err := s.DB.ExecContext(ctx, `
	INSERT OR REPLACE INTO plan_cache (
		fingerprint,
		payload,
		created_at
	)
	VALUES (?, ?, CURRENT_TIMESTAMP);
	`, key, payload)
	if err != nil {
		return fmt.Errorf("insert plan cache key=%q: %w", key, err)
	}

	return nil
}

// Purge deletes entries stored more than olderThan ago and reports how many
// were removed.
func (s *SqlitePlanCache) Purge(ctx context.Context, olderThan time.Duration) (int64, error) {
	if s.DB == nil {
		return 0, errors.New("plan cache: db is nil")
	}

	modifier := fmt.Sprintf("%+d seconds", -int64(olderThan.Seconds()))
	res, err := s.DB.ExecContext(ctx, `
	DELETE FROM plan_cache
	WHERE created_at < datetime('now', ?);
	`, modifier)
	if err != nil {
		return 0, fmt.Errorf("purge plan cache: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge plan cache: rows affected: %w", err)
	}
	return n, nil
}
