package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sujeonghan78-lgtm/CargoLoading/internal/domain"
	"github.com/sujeonghan78-lgtm/CargoLoading/internal/platform/obs"
)

// SQLite-backed implementation of the BoxRepository port.
type SqliteBoxRepository struct{ DB *sql.DB }

func NewSqliteBoxRepository(db *sql.DB) *SqliteBoxRepository {
	return &SqliteBoxRepository{DB: db}
}

// Return all boxes stored in the database.
func (s *SqliteBoxRepository) ListBoxes(ctx context.Context) (_ []*domain.Box, err error) {
	defer obs.Time(ctx, "sqlite.boxes.List")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite box repository: DB is nil")
	}

	query := `
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
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list boxes: query boxes table: %w", err)
	}
	defer rows.Close()

	return scanBoxes(rows)
}

// Replace the stored packing list in one transaction.
func (s *SqliteBoxRepository) ReplaceBoxes(ctx context.Context, boxes []*domain.Box) (err error) {
	defer obs.Time(ctx, "sqlite.boxes.Replace")(&err)

	if s.DB == nil {
		return errors.New("sqlite box repository: DB is nil")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("replace boxes: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM boxes;`); err != nil {
		return fmt.Errorf("replace boxes: clear table: %w", err)
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
	VALUES (?, ?, ?, ?, ?, ?, ?, ?);
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

func scanBoxes(rows *sql.Rows) ([]*domain.Box, error) {
	boxes := make([]*domain.Box, 0, 64)
	for rows.Next() {
		var (
			id                            int
			name, desc                    string
			length, width, height, weight float64
			stackable                     bool
		)
		if err := rows.Scan(&id, &name, &length, &width, &height, &weight, &stackable, &desc); err != nil {
			return nil, fmt.Errorf("list boxes: scan row: %w", err)
		}
		boxes = append(boxes, domain.NewBox(id, name, length, width, height, weight, stackable, desc))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list boxes: row iteration: %w", err)
	}

	return boxes, nil
}
