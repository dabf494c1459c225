package dto

import "github.com/google/uuid"

type SkillMatchResponse struct {
	SkillID   uuid.UUID `json:"skill_id"`
	SkillName string    `json:"skill_name"`
	Current   float64   `json:"current"`
	Required  float64   `json:"required"`
	MatchPct  float64   `json:"match_pct"`
}

type SkillGapResponse struct {
	SkillID   uuid.UUID `json:"skill_id"`
	SkillName string    `json:"skill_name"`
	Current   float64   `json:"current"`
	Required  float64   `json:"required"`
	Gap       float64   `json:"gap"`
}

type FitnessResponse struct {
	EmployeeID    string               `json:"employee_id"`
	PositionID    uuid.UUID            `json:"position_id"`
	PositionTitle string               `json:"position_title"`
	Score         int                  `json:"score"`
	Tier          string               `json:"tier"`
	Action        string               `json:"action"`
	SkillMatches  []SkillMatchResponse `json:"skill_matches"`
	SkillGaps     []SkillGapResponse   `json:"skill_gaps"`
}
