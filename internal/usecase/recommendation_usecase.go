package usecase

import (
	"context"
	"time"

	"skill-fit/internal/domain/fitness"
	"skill-fit/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InterviewNotifier tells HR about an interview-ready evaluation. Optional;
// notification failures are logged and never surface to the caller.
type InterviewNotifier interface {
	NotifyInterviewReady(ctx context.Context, employeeID string, positionID uuid.UUID, score int) error
}

type CourseInfo struct {
	ID       uuid.UUID
	Title    string
	Provider string
	URL      string
}

type RecommendationItem struct {
	EmployeeID    string
	PositionID    uuid.UUID
	PositionTitle string
	Score         int
	Tier          fitness.Tier
	Action        fitness.Action
	Gaps          []fitness.SkillGap
	Courses       []CourseInfo

	// RoadmapPlanned mirrors the engine flag: roadmap contents come from a
	// separate, not-yet-specified stage.
	RoadmapPlanned bool
}

type RecommendationUsecase interface {
	Recommend(ctx context.Context, employeeID string, positionID uuid.UUID) (RecommendationItem, error)
}

type Recommender struct {
	evaluator EvaluationUsecase
	courses   repository.CourseRepository
	notifier  InterviewNotifier
	logger    *zap.Logger
}

func NewRecommendationUsecase(
	evaluator EvaluationUsecase,
	courses repository.CourseRepository,
	notifier InterviewNotifier,
	logger *zap.Logger,
) *Recommender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recommender{evaluator: evaluator, courses: courses, notifier: notifier, logger: logger}
}

func (u *Recommender) Recommend(ctx context.Context, employeeID string, positionID uuid.UUID) (RecommendationItem, error) {
	ev, err := u.evaluator.Evaluate(ctx, employeeID, positionID)
	if err != nil {
		return RecommendationItem{}, err
	}

	rec, err := fitness.Recommend(ctx, ev.Result, u.courses)
	if err != nil {
		return RecommendationItem{}, ErrInternal
	}

	item := RecommendationItem{
		EmployeeID:     ev.EmployeeID,
		PositionID:     ev.PositionID,
		PositionTitle:  ev.PositionTitle,
		Score:          ev.Result.Score,
		Tier:           rec.Tier,
		Action:         rec.Action,
		Gaps:           ev.Result.Gaps,
		RoadmapPlanned: rec.RoadmapPlanned,
	}

	if len(rec.CourseIDs) > 0 {
		courses, err := u.courses.FindByIDs(ctx, rec.CourseIDs)
		if err != nil {
			return RecommendationItem{}, ErrInternal
		}
		byID := make(map[uuid.UUID]repository.Course, len(courses))
		for _, c := range courses {
			byID[c.ID] = c
		}
		// Keep gap-rank order from the engine.
		item.Courses = make([]CourseInfo, 0, len(rec.CourseIDs))
		for _, id := range rec.CourseIDs {
			c, ok := byID[id]
			if !ok {
				continue
			}
			item.Courses = append(item.Courses, CourseInfo{
				ID:       c.ID,
				Title:    c.Title,
				Provider: c.Provider,
				URL:      c.URL,
			})
		}
	}

	if rec.Tier == fitness.TierHigh && u.notifier != nil {
		u.notifyInterviewReady(ev)
	}

	return item, nil
}

func (u *Recommender) notifyInterviewReady(ev Evaluation) {
	notifier := u.notifier
	log := u.logger
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := notifier.NotifyInterviewReady(ctx, ev.EmployeeID, ev.PositionID, ev.Result.Score); err != nil {
			log.Warn("interview notification failed",
				zap.String("employee_id", ev.EmployeeID),
				zap.String("position_id", ev.PositionID.String()),
				zap.Error(err),
			)
		}
	}()
}
