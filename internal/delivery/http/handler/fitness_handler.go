package handler

import (
	"errors"
	"strconv"

	"skill-fit/internal/delivery/http/dto"
	"skill-fit/internal/delivery/http/middleware"
	"skill-fit/internal/pkg/response"
	"skill-fit/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type FitnessHandler struct {
	uc usecase.EvaluationUsecase
}

func NewFitnessHandler(uc usecase.EvaluationUsecase) *FitnessHandler {
	return &FitnessHandler{uc: uc}
}

func (h *FitnessHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/employees")
	grp.Get("/:employee_id/fitness", h.HandleEvaluateAll)
	grp.Get("/:employee_id/fitness/:position_id", h.HandleEvaluate)
}

func (h *FitnessHandler) HandleEvaluate(c fiber.Ctx) error {
	employeeID := c.Params("employee_id")

	positionID, err := uuid.Parse(c.Params("position_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	ev, err := h.uc.Evaluate(c.Context(), employeeID, positionID)
	if err != nil {
		return mapEvaluationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, toFitnessResponse(ev))
}

func (h *FitnessHandler) HandleEvaluateAll(c fiber.Ctx) error {
	employeeID := c.Params("employee_id")

	minScore, err := parseQueryIntStrict(c, "min_score", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	evals, err := h.uc.EvaluateOpenPositions(c.Context(), employeeID, usecase.BatchParams{MinScore: minScore})
	if err != nil {
		return mapEvaluationUsecaseError(err)
	}

	out := make([]dto.FitnessResponse, 0, len(evals))
	for _, ev := range evals {
		out = append(out, toFitnessResponse(ev))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func toFitnessResponse(ev usecase.Evaluation) dto.FitnessResponse {
	out := dto.FitnessResponse{
		EmployeeID:    ev.EmployeeID,
		PositionID:    ev.PositionID,
		PositionTitle: ev.PositionTitle,
		Score:         ev.Result.Score,
		Tier:          string(ev.Tier),
		Action:        string(ev.Action),
		SkillMatches:  make([]dto.SkillMatchResponse, 0, len(ev.Result.Matches)),
		SkillGaps:     make([]dto.SkillGapResponse, 0, len(ev.Result.Gaps)),
	}
	for _, m := range ev.Result.Matches {
		out.SkillMatches = append(out.SkillMatches, dto.SkillMatchResponse{
			SkillID:   m.SkillID,
			SkillName: m.SkillName,
			Current:   m.Current,
			Required:  m.Required,
			MatchPct:  m.MatchPct,
		})
	}
	for _, g := range ev.Result.Gaps {
		out.SkillGaps = append(out.SkillGaps, toSkillGapResponse(g))
	}
	return out
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return v, nil
}

func mapEvaluationUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrEmployeeNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Employee not found", nil, err)
	case errors.Is(err, usecase.ErrPositionNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Position not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidRequirementData):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Invalid requirement data", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
