package repository

import (
	"context"
	"errors"

	"skill-fit/internal/database"

	"github.com/google/uuid"
)

var ErrNoRows = errors.New("no rows")

type Position struct {
	ID     uuid.UUID
	Title  string
	IsOpen bool
}

type PositionRepository interface {
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (Position, error)
	ListOpen(ctx context.Context) ([]Position, error)
}

type PostgresPositionRepository struct {
	db database.DB
}

func NewPostgresPositionRepository(db database.DB) *PostgresPositionRepository {
	return &PostgresPositionRepository{db: db}
}

func (r *PostgresPositionRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM positions WHERE id = $1)`,
		id,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresPositionRepository) FindByID(ctx context.Context, id uuid.UUID) (Position, error) {
	var p Position
	err := r.db.QueryRow(ctx,
		`SELECT id, title, is_open FROM positions WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.Title, &p.IsOpen)
	if err != nil {
		return Position{}, err
	}
	return p, nil
}

// ListOpen returns open positions in a stable order (title, then id) so
// batch output keeps repo order for equal scores.
func (r *PostgresPositionRepository) ListOpen(ctx context.Context) ([]Position, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, is_open
		 FROM positions
		 WHERE is_open = TRUE
		 ORDER BY title ASC, id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Position, 0)
	for rows.Next() {
		var p Position
		if err := rows.Scan(&p.ID, &p.Title, &p.IsOpen); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
