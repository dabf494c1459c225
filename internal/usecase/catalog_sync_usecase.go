package usecase

import (
	"context"
	"strings"
	"time"

	"skill-fit/internal/pkg/metrics"
	"skill-fit/internal/repository"
)

// CatalogEventBroadcaster pushes catalog.updated events to connected
// websocket clients.
type CatalogEventBroadcaster interface {
	BroadcastCatalogUpdated(source string)
}

type CatalogSyncEvent struct {
	Source          string
	CoursesUpserted int
	SkillLinks      int
	DurationMS      int64
	Status          string
	FinishedAt      time.Time
}

type CatalogSyncUsecase interface {
	RecordCompleted(ctx context.Context, evt CatalogSyncEvent) error
	ListRuns(ctx context.Context, limit int) ([]repository.SyncRun, error)
}

type CatalogSync struct {
	runs        repository.SyncRunRepository
	broadcaster CatalogEventBroadcaster
}

func NewCatalogSyncUsecase(runs repository.SyncRunRepository, broadcaster CatalogEventBroadcaster) *CatalogSync {
	return &CatalogSync{runs: runs, broadcaster: broadcaster}
}

func (u *CatalogSync) RecordCompleted(ctx context.Context, evt CatalogSyncEvent) error {
	source := strings.TrimSpace(evt.Source)
	if source == "" {
		return ErrInvalidInput
	}
	status := strings.TrimSpace(evt.Status)
	if status == "" {
		status = "finished"
	}
	finishedAt := evt.FinishedAt
	if finishedAt.IsZero() {
		finishedAt = time.Now().UTC()
	}

	err := u.runs.Insert(ctx, repository.SyncRun{
		Source:          source,
		CoursesUpserted: evt.CoursesUpserted,
		SkillLinks:      evt.SkillLinks,
		DurationMS:      evt.DurationMS,
		Status:          status,
		FinishedAt:      finishedAt,
	})
	if err != nil {
		return ErrInternal
	}

	metrics.CatalogSyncRunsTotal.WithLabelValues(source, status).Inc()

	if u.broadcaster != nil {
		u.broadcaster.BroadcastCatalogUpdated(source)
	}
	return nil
}

func (u *CatalogSync) ListRuns(ctx context.Context, limit int) ([]repository.SyncRun, error) {
	if limit < 0 {
		return nil, ErrInvalidInput
	}
	runs, err := u.runs.ListRecent(ctx, limit)
	if err != nil {
		return nil, ErrInternal
	}
	return runs, nil
}
