package dto

import "github.com/google/uuid"

type SyncRunResponse struct {
	ID              uuid.UUID `json:"id"`
	Source          string    `json:"source"`
	CoursesUpserted int       `json:"courses_upserted"`
	SkillLinks      int       `json:"skill_links"`
	DurationMS      int64     `json:"duration_ms"`
	Status          string    `json:"status"`
	FinishedAt      string    `json:"finished_at"`
}
