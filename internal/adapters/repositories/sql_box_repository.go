package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sujeonghan78-lgtm/CargoLoading/internal/domain"
	"github.com/sujeonghan78-lgtm/CargoLoading/internal/platform/obs"
)

// SQLBoxRepository is the Postgres-backed BoxRepository.
type SQLBoxRepository struct{ DB *sql.DB }

func NewSQLBoxRepository(db *sql.DB) *SQLBoxRepository {
	return &SQLBoxRepository{DB: db}
}

func (s *SQLBoxRepository) ListBoxes(ctx context.Context) (_ []*domain.Box, err error) {
	defer obs.Time(ctx, "boxes.List")(&err)

	if s.DB == nil {
		return nil, errors.New("box repository: DB is nil")
	}

	rows, err := s.DB.QueryContext(ctx, `
	SELECT
		box_id,
		name,
		length_mm,
		width_mm,
		height_mm,
		weight_kg,
		stackable,
		description
	FROM boxes
	ORDER BY box_id;
	`)
	if err != nil {
		return nil, fmt.Errorf("list boxes: query boxes table: %w", err)
	}
	defer rows.Close()

	return scanBoxes(rows)
}

func (s *SQLBoxRepository) ReplaceBoxes(ctx context.Context, boxes []*domain.Box) (err error) {
	defer obs.Time(ctx, "boxes.Replace")(&err)

	if s.DB == nil {
		return errors.New("box repository: DB is nil")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("replace boxes: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `TRUNCATE boxes;`); err != nil {
		return fmt.Errorf("replace boxes: truncate: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO boxes (
		box_id,
		name,
		length_mm,
		width_mm,
		height_mm,
		weight_kg,
		stackable,
		description
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`)
	if err != nil {
		return fmt.Errorf("replace boxes: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, b := range boxes {
		if _, err := stmt.ExecContext(ctx, b.ID, b.Name, b.Length, b.Width, b.Height, b.Weight, b.Stackable, b.Description); err != nil {
			return fmt.Errorf("replace boxes: insert box_id=%d: %w", b.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("replace boxes: commit tx: %w", err)
	}

	return nil
}
