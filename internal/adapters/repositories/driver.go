package repositories

import (
	"database/sql"

	"github.com/sujeonghan78-lgtm/CargoLoading/internal/platform/db"
	"github.com/sujeonghan78-lgtm/CargoLoading/internal/ports"
)

// ForDriver returns the box repository and vehicle catalog matching the SQL
// dialect of driver.
func ForDriver(conn *sql.DB, driver string) (ports.BoxRepository, ports.VehicleCatalog) {
	if driver == db.DriverPostgres {
		return NewSQLBoxRepository(conn), NewSQLVehicleCatalog(conn)
	}
	return NewSqliteBoxRepository(conn), NewSqliteVehicleCatalog(conn)
}
