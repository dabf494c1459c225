package usecase

import (
	"context"

	"skill-fit/internal/domain/employee"
	"skill-fit/internal/domain/fitness"
	"skill-fit/internal/repository"

	"github.com/google/uuid"
)

type ProjectionStep struct {
	PositionID    uuid.UUID
	PositionTitle string
	StepOrder     int
	Readiness     int
	Tier          fitness.Tier
	Gaps          []fitness.SkillGap
}

// CareerProjection carries per-step readiness only. Timeline estimates are
// not derivable from fitness data and belong to an external estimator.
type CareerProjection struct {
	EmployeeID string
	TrackID    uuid.UUID
	Steps      []ProjectionStep
}

type CareerPathUsecase interface {
	ProjectTrack(ctx context.Context, employeeID string, trackID uuid.UUID) (CareerProjection, error)
}

type CareerPath struct {
	profiles     repository.SkillProfileRepository
	tracks       repository.TrackRepository
	requirements repository.RequirementRepository
}

func NewCareerPathUsecase(
	profiles repository.SkillProfileRepository,
	tracks repository.TrackRepository,
	requirements repository.RequirementRepository,
) *CareerPath {
	return &CareerPath{profiles: profiles, tracks: tracks, requirements: requirements}
}

func (u *CareerPath) ProjectTrack(ctx context.Context, employeeID string, trackID uuid.UUID) (CareerProjection, error) {
	id, err := employee.CanonicalID(employeeID)
	if err != nil {
		return CareerProjection{}, ErrInvalidInput
	}
	if trackID == uuid.Nil {
		return CareerProjection{}, ErrTrackNotFound
	}

	exists, err := u.profiles.EmployeeExists(ctx, id)
	if err != nil {
		return CareerProjection{}, ErrInternal
	}
	if !exists {
		return CareerProjection{}, ErrEmployeeNotFound
	}

	trackExists, err := u.tracks.ExistsByID(ctx, trackID)
	if err != nil {
		return CareerProjection{}, ErrInternal
	}
	if !trackExists {
		return CareerProjection{}, ErrTrackNotFound
	}

	steps, err := u.tracks.FindStepsByTrackID(ctx, trackID)
	if err != nil {
		return CareerProjection{}, ErrInternal
	}

	skills, err := u.profiles.FindByEmployeeID(ctx, id)
	if err != nil {
		return CareerProjection{}, ErrInternal
	}
	profileSkills := make([]fitness.ProfileSkill, 0, len(skills))
	for _, s := range skills {
		profileSkills = append(profileSkills, fitness.ProfileSkill{
			SkillID:   s.SkillID,
			SkillName: s.SkillName,
			Level:     s.Level,
		})
	}
	profile := fitness.Profile{EmployeeID: id, Skills: profileSkills}

	projection := CareerProjection{EmployeeID: id, TrackID: trackID, Steps: make([]ProjectionStep, 0, len(steps))}
	if len(steps) == 0 {
		return projection, nil
	}

	posIDs := make([]uuid.UUID, 0, len(steps))
	for _, st := range steps {
		posIDs = append(posIDs, st.PositionID)
	}
	reqsByPosition, err := u.requirements.FindByPositionIDs(ctx, posIDs)
	if err != nil {
		return CareerProjection{}, ErrInternal
	}

	sets := make([]fitness.RequirementSet, 0, len(steps))
	for _, st := range steps {
		rs, err := buildRequirementSet(st.PositionID, reqsByPosition[st.PositionID])
		if err != nil {
			return CareerProjection{}, err
		}
		sets = append(sets, rs)
	}

	path := fitness.ProjectPath(profile, sets)
	for i, pathStep := range path.Steps {
		tier, _ := fitness.Classify(pathStep.Result.Score)
		projection.Steps = append(projection.Steps, ProjectionStep{
			PositionID:    steps[i].PositionID,
			PositionTitle: steps[i].Title,
			StepOrder:     steps[i].StepOrder,
			Readiness:     pathStep.Result.Score,
			Tier:          tier,
			Gaps:          pathStep.Result.Gaps,
		})
	}

	return projection, nil
}
