package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sujeonghan78-lgtm/CargoLoading/internal/platform/obs"
)

// SQLPlanCache is a Postgres-backed cache of encoded plans keyed by request fingerprint.
type SQLPlanCache struct {
	DB *sql.DB
}

func NewSQLPlanCache(db *sql.DB) *SQLPlanCache {
	return &SQLPlanCache{DB: db}
}

// Fetch the cached plan for a fingerprint.
func (s *SQLPlanCache) Get(ctx context.Context, key string) (_ []byte, _ bool, err error) {
	defer obs.Time(ctx, "plan.cache.Get")(&err)

	if s.DB == nil {
		return nil, false, errors.New("plan cache: db is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return nil, false, errors.New("get plan cache: key must not be empty")
	}

	var payload []byte
	err = s.DB.QueryRowContext(ctx, `
	SELECT payload
	FROM plan_cache
	WHERE fingerprint = $1;
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
func (s *SQLPlanCache) Put(ctx context.Context, key string, payload []byte) (err error) {
	defer obs.Time(ctx, "plan.cache.Put")(&err)

	if s.DB == nil {
		return errors.New("plan cache: db is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("insert plan cache: key must not be empty")
	}

	_, err = s.DB.ExecContext(ctx, `
	INSERT INTO plan_cache (fingerprint, payload)
	VALUES ($1, $2)
	ON CONFLICT (fingerprint) DO UPDATE
	SET payload = EXCLUDED.payload,
		created_at = now();
	`, key, payload)
	if err != nil {
		return fmt.Errorf("insert plan cache key=%q: %w", key, err)
	}

	return nil
}

// Purge deletes entries stored more than olderThan ago and reports how many
// were removed.
func (s *SQLPlanCache) Purge(ctx context.Context, olderThan time.Duration) (_ int64, err error) {
	defer obs.Time(ctx, "plan.cache.Purge")(&err)

	if s.DB == nil {
		return 0, errors.New("plan cache: db is nil")
	}

	res, err := s.DB.ExecContext(ctx, `
	DELETE FROM plan_cache
	WHERE created_at < now() - make_interval(secs => $1);
	`, olderThan.Seconds())
	if err != nil {
		return 0, fmt.Errorf("purge plan cache: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge plan cache: rows affected: %w", err)
	}
	return n, nil
}
