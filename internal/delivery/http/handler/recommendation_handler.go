package handler

import (
	"skill-fit/internal/delivery/http/dto"
	"skill-fit/internal/delivery/http/middleware"
	"skill-fit/internal/domain/fitness"
	"skill-fit/internal/pkg/response"
	"skill-fit/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/employees")
	grp.Get("/:employee_id/recommendations/:position_id", h.HandleRecommend)
}

func (h *RecommendationHandler) HandleRecommend(c fiber.Ctx) error {
	employeeID := c.Params("employee_id")

	positionID, err := uuid.Parse(c.Params("position_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	item, err := h.uc.Recommend(c.Context(), employeeID, positionID)
	if err != nil {
		return mapEvaluationUsecaseError(err)
	}

	out := dto.RecommendationResponse{
		EmployeeID:     item.EmployeeID,
		PositionID:     item.PositionID,
		PositionTitle:  item.PositionTitle,
		Score:          item.Score,
		Tier:           string(item.Tier),
		Action:         string(item.Action),
		SkillGaps:      make([]dto.SkillGapResponse, 0, len(item.Gaps)),
		CourseIDs:      make([]uuid.UUID, 0, len(item.Courses)),
		Courses:        make([]dto.CourseResponse, 0, len(item.Courses)),
		RoadmapPlanned: item.RoadmapPlanned,
	}
	for _, g := range item.Gaps {
		out.SkillGaps = append(out.SkillGaps, toSkillGapResponse(g))
	}
	for _, course := range item.Courses {
		out.CourseIDs = append(out.CourseIDs, course.ID)
		out.Courses = append(out.Courses, dto.CourseResponse{
			CourseID: course.ID,
			Title:    course.Title,
			Provider: course.Provider,
			URL:      course.URL,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func toSkillGapResponse(g fitness.SkillGap) dto.SkillGapResponse {
	return dto.SkillGapResponse{
		SkillID:   g.SkillID,
		SkillName: g.SkillName,
		Current:   g.Current,
		Required:  g.Required,
		Gap:       g.Gap,
	}
}
