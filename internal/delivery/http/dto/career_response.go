package dto

import "github.com/google/uuid"

type CareerStepResponse struct {
	PositionID    uuid.UUID          `json:"position_id"`
	PositionTitle string             `json:"position_title"`
	StepOrder     int                `json:"step_order"`
	Readiness     int                `json:"readiness"`
	Tier          string             `json:"tier"`
	SkillGaps     []SkillGapResponse `json:"skill_gaps"`
}

type CareerProjectionResponse struct {
	EmployeeID string               `json:"employee_id"`
	TrackID    uuid.UUID            `json:"track_id"`
	Steps      []CareerStepResponse `json:"steps"`
}
