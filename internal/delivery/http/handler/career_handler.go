package handler

import (
	"errors"

	"skill-fit/internal/delivery/http/dto"
	"skill-fit/internal/delivery/http/middleware"
	"skill-fit/internal/pkg/response"
	"skill-fit/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type CareerHandler struct {
	uc usecase.CareerPathUsecase
}

func NewCareerHandler(uc usecase.CareerPathUsecase) *CareerHandler {
	return &CareerHandler{uc: uc}
}

func (h *CareerHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/employees")
	grp.Get("/:employee_id/career-tracks/:track_id", h.HandleProjectTrack)
}

func (h *CareerHandler) HandleProjectTrack(c fiber.Ctx) error {
	employeeID := c.Params("employee_id")

	trackID, err := uuid.Parse(c.Params("track_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	projection, err := h.uc.ProjectTrack(c.Context(), employeeID, trackID)
	if err != nil {
		return mapCareerUsecaseError(err)
	}

	out := dto.CareerProjectionResponse{
		EmployeeID: projection.EmployeeID,
		TrackID:    projection.TrackID,
		Steps:      make([]dto.CareerStepResponse, 0, len(projection.Steps)),
	}
	for _, st := range projection.Steps {
		step := dto.CareerStepResponse{
			PositionID:    st.PositionID,
			PositionTitle: st.PositionTitle,
			StepOrder:     st.StepOrder,
			Readiness:     st.Readiness,
			Tier:          string(st.Tier),
			SkillGaps:     make([]dto.SkillGapResponse, 0, len(st.Gaps)),
		}
		for _, g := range st.Gaps {
			step.SkillGaps = append(step.SkillGaps, toSkillGapResponse(g))
		}
		out.Steps = append(out.Steps, step)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func mapCareerUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrEmployeeNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Employee not found", nil, err)
	case errors.Is(err, usecase.ErrTrackNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Career track not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidRequirementData):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Invalid requirement data", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
