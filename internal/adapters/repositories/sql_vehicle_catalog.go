package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sujeonghan78-lgtm/CargoLoading/internal/domain"
	"github.com/sujeonghan78-lgtm/CargoLoading/internal/platform/obs"
)

// SQLVehicleCatalog is the Postgres-backed VehicleCatalog.
type SQLVehicleCatalog struct{ DB *sql.DB }

func NewSQLVehicleCatalog(db *sql.DB) *SQLVehicleCatalog {
	return &SQLVehicleCatalog{DB: db}
}

func (s *SQLVehicleCatalog) ListVehicles(ctx context.Context, mode domain.Mode) (_ []domain.VehicleSpec, err error) {
	defer obs.Time(ctx, "vehicles.List")(&err)

	if s.DB == nil {
		return nil, errors.New("vehicle catalog: DB is nil")
	}

	rows, err := s.DB.QueryContext(ctx, `
	SELECT
		name,
		length_mm,
		width_mm,
		height_mm,
		max_weight_kg
	FROM vehicle_types
	WHERE mode = $1
	ORDER BY position;
	`, string(mode))
	if err != nil {
		return nil, fmt.Errorf("list vehicles: query vehicle_types table: %w", err)
	}
	defer rows.Close()

	return scanVehicles(rows, mode)
}

func (s *SQLVehicleCatalog) ReplaceVehicles(ctx context.Context, mode domain.Mode, specs []domain.VehicleSpec) (err error) {
	defer obs.Time(ctx, "vehicles.Replace")(&err)

	if s.DB == nil {
		return errors.New("vehicle catalog: DB is nil")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("replace vehicles: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM vehicle_types WHERE mode = $1;`, string(mode)); err != nil {
		return fmt.Errorf("replace vehicles: clear mode=%q: %w", mode, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO vehicle_types (
		mode,
		position,
		name,
		length_mm,
		width_mm,
		height_mm,
		max_weight_kg
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7);
	`)
	if err != nil {
		return fmt.Errorf("replace vehicles: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, v := range specs {
		if _, err := stmt.ExecContext(ctx, string(mode), i, v.Name, v.Length, v.Width, v.Height, v.MaxWeight); err != nil {
			return fmt.Errorf("replace vehicles: insert %q: %w", v.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("replace vehicles: commit tx: %w", err)
	}

	return nil
}
