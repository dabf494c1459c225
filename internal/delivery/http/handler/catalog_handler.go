package handler

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"skill-fit/internal/delivery/http/dto"
	"skill-fit/internal/delivery/http/middleware"
	"skill-fit/internal/pkg/response"
	"skill-fit/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"
)

// syncCompletedSchema validates the callback body before it reaches the
// usecase; the catalog-sync binary is a separate process and its payload is
// treated as untrusted input.
const syncCompletedSchema = `{
	"type": "object",
	"required": ["source"],
	"properties": {
		"source":           {"type": "string", "minLength": 1},
		"courses_upserted": {"type": "integer", "minimum": 0},
		"skill_links":      {"type": "integer", "minimum": 0},
		"duration_ms":      {"type": "integer", "minimum": 0},
		"status":           {"type": "string", "enum": ["finished", "failed"]},
		"finished_at":      {"type": "string"}
	},
	"additionalProperties": false
}`

type SyncCompletedRequest struct {
	Source          string `json:"source"`
	CoursesUpserted int    `json:"courses_upserted"`
	SkillLinks      int    `json:"skill_links"`
	DurationMS      int64  `json:"duration_ms"`
	Status          string `json:"status"`
	FinishedAt      string `json:"finished_at"`
}

type CatalogHandler struct {
	uc     usecase.CatalogSyncUsecase
	schema *gojsonschema.Schema
	logger *zap.Logger
}

func NewCatalogHandler(uc usecase.CatalogSyncUsecase, logger *zap.Logger) (*CatalogHandler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(syncCompletedSchema))
	if err != nil {
		return nil, err
	}
	return &CatalogHandler{uc: uc, schema: schema, logger: logger}, nil
}

func (h *CatalogHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/catalog")
	grp.Get("/sync-runs", h.HandleListSyncRuns)
}

func (h *CatalogHandler) RegisterInternalRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/catalog")
	grp.Post("/sync-completed", h.HandleSyncCompleted)
}

func (h *CatalogHandler) HandleSyncCompleted(c fiber.Ctx) error {
	body := c.Body()

	res, err := h.schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if !res.Valid() {
		details := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			details = append(details, e.String())
		}
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Invalid sync payload", details, nil)
	}

	var req SyncCompletedRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var finishedAt time.Time
	if s := strings.TrimSpace(req.FinishedAt); s != "" {
		finishedAt, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
	}

	evt := usecase.CatalogSyncEvent{
		Source:          req.Source,
		CoursesUpserted: req.CoursesUpserted,
		SkillLinks:      req.SkillLinks,
		DurationMS:      req.DurationMS,
		Status:          req.Status,
		FinishedAt:      finishedAt,
	}
	if err := h.uc.RecordCompleted(c.Context(), evt); err != nil {
		return mapCatalogUsecaseError(err)
	}

	h.logger.Info("catalog sync recorded",
		zap.String("source", req.Source),
		zap.Int("courses_upserted", req.CoursesUpserted),
		zap.Int("skill_links", req.SkillLinks),
	)

	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"recorded": true})
}

func (h *CatalogHandler) HandleListSyncRuns(c fiber.Ctx) error {
	limit, err := parseQueryIntStrict(c, "limit", 20)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	runs, err := h.uc.ListRuns(c.Context(), limit)
	if err != nil {
		return mapCatalogUsecaseError(err)
	}

	out := make([]dto.SyncRunResponse, 0, len(runs))
	for _, run := range runs {
		out = append(out, dto.SyncRunResponse{
			ID:              run.ID,
			Source:          run.Source,
			CoursesUpserted: run.CoursesUpserted,
			SkillLinks:      run.SkillLinks,
			DurationMS:      run.DurationMS,
			Status:          run.Status,
			FinishedAt:      run.FinishedAt.UTC().Format(time.RFC3339),
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func mapCatalogUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
