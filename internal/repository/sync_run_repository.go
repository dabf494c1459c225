package repository

import (
	"context"
	"time"

	"skill-fit/internal/database"

	"github.com/google/uuid"
)

type SyncRun struct {
	ID              uuid.UUID
	Source          string
	CoursesUpserted int
	SkillLinks      int
	DurationMS      int64
	Status          string
	FinishedAt      time.Time
}

type SyncRunRepository interface {
	Insert(ctx context.Context, run SyncRun) error
	ListRecent(ctx context.Context, limit int) ([]SyncRun, error)
}

type PostgresSyncRunRepository struct {
	db database.DB
}

func NewPostgresSyncRunRepository(db database.DB) *PostgresSyncRunRepository {
	return &PostgresSyncRunRepository{db: db}
}

func (r *PostgresSyncRunRepository) Insert(ctx context.Context, run SyncRun) error {
	id := run.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO catalog_sync_runs (id, source, courses_upserted, skill_links, duration_ms, status, finished_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, run.Source, run.CoursesUpserted, run.SkillLinks, run.DurationMS, run.Status, run.FinishedAt,
	)
	return err
}

func (r *PostgresSyncRunRepository) ListRecent(ctx context.Context, limit int) ([]SyncRun, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, source, courses_upserted, skill_links, duration_ms, status, finished_at
		 FROM catalog_sync_runs
		 ORDER BY finished_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SyncRun, 0, limit)
	for rows.Next() {
		var it SyncRun
		if err := rows.Scan(&it.ID, &it.Source, &it.CoursesUpserted, &it.SkillLinks, &it.DurationMS, &it.Status, &it.FinishedAt); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
