package usecase

import (
	"context"
	"errors"
	"testing"

	"skill-fit/internal/repository"

	"github.com/google/uuid"
)

type mockTrackRepo struct {
	exists bool
	steps  []repository.TrackStep
	err    error
}

func (m mockTrackRepo) ExistsByID(context.Context, uuid.UUID) (bool, error) {
	return m.exists, m.err
}

func (m mockTrackRepo) FindStepsByTrackID(context.Context, uuid.UUID) ([]repository.TrackStep, error) {
	return m.steps, m.err
}

func TestCareerPath_ProjectTrack(t *testing.T) {
	skillA, skillB := uuid.New(), uuid.New()
	junior := repository.TrackStep{PositionID: uuid.New(), Title: "Junior", StepOrder: 1}
	senior := repository.TrackStep{PositionID: uuid.New(), Title: "Senior", StepOrder: 2}

	uc := NewCareerPathUsecase(
		&mockProfileRepo{exists: true, skills: []repository.EmployeeSkill{
			{SkillID: skillA, SkillName: "Go", Level: 70},
			{SkillID: skillB, SkillName: "Architecture", Level: 20},
		}},
		mockTrackRepo{exists: true, steps: []repository.TrackStep{junior, senior}},
		&mockRequirementRepo{byPosition: map[uuid.UUID][]repository.PositionRequirement{
			junior.PositionID: {{SkillID: skillA, SkillName: "Go", RequiredLevel: 50, Weight: 1, IsRequired: true}},
			senior.PositionID: {
				{SkillID: skillA, SkillName: "Go", RequiredLevel: 80, Weight: 1, IsRequired: true},
				{SkillID: skillB, SkillName: "Architecture", RequiredLevel: 70, Weight: 2, IsRequired: true},
			},
		}},
	)

	proj, err := uc.ProjectTrack(context.Background(), "42", uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(proj.Steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(proj.Steps))
	}
	if proj.Steps[0].PositionTitle != "Junior" || proj.Steps[1].PositionTitle != "Senior" {
		t.Fatalf("steps out of order: %+v", proj.Steps)
	}
	if proj.Steps[0].Readiness != 100 {
		t.Fatalf("expected junior readiness 100, got %d", proj.Steps[0].Readiness)
	}
	if proj.Steps[1].Readiness >= proj.Steps[0].Readiness {
		t.Fatalf("expected senior step to be harder here")
	}
	if len(proj.Steps[1].Gaps) == 0 {
		t.Fatalf("expected gaps on the senior step")
	}
}

func TestCareerPath_TrackNotFound(t *testing.T) {
	uc := NewCareerPathUsecase(
		&mockProfileRepo{exists: true},
		mockTrackRepo{exists: false},
		&mockRequirementRepo{},
	)

	_, err := uc.ProjectTrack(context.Background(), "42", uuid.New())
	if !errors.Is(err, ErrTrackNotFound) {
		t.Fatalf("expected ErrTrackNotFound, got %v", err)
	}
}

func TestCareerPath_EmptyTrack(t *testing.T) {
	uc := NewCareerPathUsecase(
		&mockProfileRepo{exists: true},
		mockTrackRepo{exists: true},
		&mockRequirementRepo{},
	)

	proj, err := uc.ProjectTrack(context.Background(), "42", uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(proj.Steps) != 0 {
		t.Fatalf("expected no steps, got %d", len(proj.Steps))
	}
}

func TestCareerPath_InvalidEmployeeID(t *testing.T) {
	uc := NewCareerPathUsecase(&mockProfileRepo{}, mockTrackRepo{}, &mockRequirementRepo{})

	_, err := uc.ProjectTrack(context.Background(), "   ", uuid.New())
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
