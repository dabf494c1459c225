package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"skill-fit/internal/domain/fitness"
	"skill-fit/internal/repository"

	"github.com/google/uuid"
)

type mockEvaluator struct {
	ev  Evaluation
	err error
}

func (m mockEvaluator) Evaluate(context.Context, string, uuid.UUID) (Evaluation, error) {
	return m.ev, m.err
}

func (m mockEvaluator) EvaluateOpenPositions(context.Context, string, BatchParams) ([]Evaluation, error) {
	return nil, nil
}

type mockCourseRepo struct {
	bySkill map[uuid.UUID][]uuid.UUID
	courses map[uuid.UUID]repository.Course
	err     error
}

func (m mockCourseRepo) CoursesForSkills(_ context.Context, _ []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error) {
	return m.bySkill, m.err
}

func (m mockCourseRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]repository.Course, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]repository.Course, 0, len(ids))
	for _, id := range ids {
		if c, ok := m.courses[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m mockCourseRepo) UpsertCourses(context.Context, []repository.CourseUpsert) (int, int, error) {
	return 0, 0, nil
}

type recordingNotifier struct {
	mu     sync.Mutex
	called chan struct{}
	err    error
}

func (n *recordingNotifier) NotifyInterviewReady(context.Context, string, uuid.UUID, int) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	select {
	case n.called <- struct{}{}:
	default:
	}
	return n.err
}

func TestRecommender_MiddleTierGetsCourses(t *testing.T) {
	skillA, skillB := uuid.New(), uuid.New()
	courseA, courseB := uuid.New(), uuid.New()
	posID := uuid.New()

	ev := Evaluation{
		EmployeeID:    "42",
		PositionID:    posID,
		PositionTitle: "Backend Engineer",
		Result: fitness.Result{
			Score: 60,
			Gaps: []fitness.SkillGap{
				{SkillID: skillA, SkillName: "Go", Gap: 40},
				{SkillID: skillB, SkillName: "SQL", Gap: 20},
			},
		},
		Tier:   fitness.TierMiddle,
		Action: fitness.ActionCourses,
	}

	courses := mockCourseRepo{
		bySkill: map[uuid.UUID][]uuid.UUID{
			skillA: {courseA},
			skillB: {courseB},
		},
		courses: map[uuid.UUID]repository.Course{
			courseA: {ID: courseA, Title: "Advanced Go", Provider: "lms"},
			courseB: {ID: courseB, Title: "SQL Basics", Provider: "lms"},
		},
	}

	uc := NewRecommendationUsecase(mockEvaluator{ev: ev}, courses, nil, nil)
	item, err := uc.Recommend(context.Background(), "42", posID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if item.Action != fitness.ActionCourses {
		t.Fatalf("expected COURSES, got %s", item.Action)
	}
	if len(item.Courses) != 2 {
		t.Fatalf("expected 2 courses, got %d", len(item.Courses))
	}
	// Largest gap's course leads.
	if item.Courses[0].ID != courseA {
		t.Fatalf("expected gap-rank order, got %+v", item.Courses)
	}
}

func TestRecommender_HighTierNotifiesWithoutCourses(t *testing.T) {
	posID := uuid.New()
	ev := Evaluation{
		EmployeeID: "42",
		PositionID: posID,
		Result:     fitness.Result{Score: 90},
		Tier:       fitness.TierHigh,
		Action:     fitness.ActionInterview,
	}

	notifier := &recordingNotifier{called: make(chan struct{}, 1)}
	uc := NewRecommendationUsecase(mockEvaluator{ev: ev}, mockCourseRepo{}, notifier, nil)

	item, err := uc.Recommend(context.Background(), "42", posID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if item.Action != fitness.ActionInterview || len(item.Courses) != 0 {
		t.Fatalf("expected INTERVIEW with no courses, got %+v", item)
	}

	select {
	case <-notifier.called:
	case <-time.After(2 * time.Second):
		t.Fatalf("expected interview notification")
	}
}

func TestRecommender_NotifierFailureDoesNotFailRequest(t *testing.T) {
	posID := uuid.New()
	ev := Evaluation{
		EmployeeID: "42",
		PositionID: posID,
		Result:     fitness.Result{Score: 90},
		Tier:       fitness.TierHigh,
		Action:     fitness.ActionInterview,
	}

	notifier := &recordingNotifier{called: make(chan struct{}, 1), err: errors.New("ses down")}
	uc := NewRecommendationUsecase(mockEvaluator{ev: ev}, mockCourseRepo{}, notifier, nil)

	if _, err := uc.Recommend(context.Background(), "42", posID); err != nil {
		t.Fatalf("notification failure must not surface, got %v", err)
	}
}

func TestRecommender_LowTierRoadmapStub(t *testing.T) {
	posID := uuid.New()
	ev := Evaluation{
		EmployeeID: "42",
		PositionID: posID,
		Result:     fitness.Result{Score: 20},
		Tier:       fitness.TierLow,
		Action:     fitness.ActionRoadmap,
	}

	uc := NewRecommendationUsecase(mockEvaluator{ev: ev}, mockCourseRepo{}, nil, nil)
	item, err := uc.Recommend(context.Background(), "42", posID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if item.Action != fitness.ActionRoadmap {
		t.Fatalf("expected ROADMAP, got %s", item.Action)
	}
	if item.RoadmapPlanned {
		t.Fatalf("roadmap must stay an unplanned extension point")
	}
}

func TestRecommender_EvaluationErrorPropagates(t *testing.T) {
	uc := NewRecommendationUsecase(mockEvaluator{err: ErrPositionNotFound}, mockCourseRepo{}, nil, nil)
	_, err := uc.Recommend(context.Background(), "42", uuid.New())
	if !errors.Is(err, ErrPositionNotFound) {
		t.Fatalf("expected ErrPositionNotFound, got %v", err)
	}
}
