package repository

import (
	"context"

	"skill-fit/internal/database"

	"github.com/google/uuid"
)

// TrackStep is one rung of a career track, ordered by StepOrder.
type TrackStep struct {
	PositionID uuid.UUID
	Title      string
	StepOrder  int
}

type TrackRepository interface {
	ExistsByID(ctx context.Context, trackID uuid.UUID) (bool, error)
	FindStepsByTrackID(ctx context.Context, trackID uuid.UUID) ([]TrackStep, error)
}

type PostgresTrackRepository struct {
	db database.DB
}

func NewPostgresTrackRepository(db database.DB) *PostgresTrackRepository {
	return &PostgresTrackRepository{db: db}
}

func (r *PostgresTrackRepository) ExistsByID(ctx context.Context, trackID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM career_tracks WHERE id = $1)`,
		trackID,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresTrackRepository) FindStepsByTrackID(ctx context.Context, trackID uuid.UUID) ([]TrackStep, error) {
	rows, err := r.db.Query(ctx,
		`SELECT cts.position_id, p.title, cts.step_order
		 FROM career_track_steps cts
		 JOIN positions p ON p.id = cts.position_id
		 WHERE cts.track_id = $1
		 ORDER BY cts.step_order ASC`,
		trackID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]TrackStep, 0)
	for rows.Next() {
		var it TrackStep
		if err := rows.Scan(&it.PositionID, &it.Title, &it.StepOrder); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
