package dto

import "github.com/google/uuid"

type CourseResponse struct {
	CourseID uuid.UUID `json:"course_id"`
	Title    string    `json:"title"`
	Provider string    `json:"provider"`
	URL      string    `json:"url"`
}

type RecommendationResponse struct {
	EmployeeID     string             `json:"employee_id"`
	PositionID     uuid.UUID          `json:"position_id"`
	PositionTitle  string             `json:"position_title"`
	Score          int                `json:"score"`
	Tier           string             `json:"tier"`
	Action         string             `json:"action"`
	SkillGaps      []SkillGapResponse `json:"skill_gaps"`
	CourseIDs      []uuid.UUID        `json:"course_ids"`
	Courses        []CourseResponse   `json:"courses"`
	RoadmapPlanned bool               `json:"roadmap_planned"`
}
