package cache

import (
	"context"
	"database/sql"
	"time"

	"github.com/sujeonghan78-lgtm/CargoLoading/internal/platform/db"
	"github.com/sujeonghan78-lgtm/CargoLoading/internal/ports"
)

// SQLStore is a database-backed plan cache that can drop stale entries.
type SQLStore interface {
	ports.PlanCache
	Purge(ctx context.Context, olderThan time.Duration) (int64, error)
}

// ForDriver returns the plan cache matching the SQL dialect of driver.
func ForDriver(conn *sql.DB, driver string) SQLStore {
	if driver == db.DriverPostgres {
		return NewSQLPlanCache(conn)
	}
	return NewSqlitePlanCache(conn)
}
