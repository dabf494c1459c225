package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"skill-fit/internal/domain/employee"
	"skill-fit/internal/domain/fitness"
	"skill-fit/internal/pkg/metrics"
	"skill-fit/internal/pkg/pool"
	"skill-fit/internal/repository"

	"github.com/google/uuid"
)

type Evaluation struct {
	EmployeeID    string
	PositionID    uuid.UUID
	PositionTitle string
	Result        fitness.Result
	Tier          fitness.Tier
	Action        fitness.Action
}

type BatchParams struct {
	MinScore int
}

type EvaluationUsecase interface {
	Evaluate(ctx context.Context, employeeID string, positionID uuid.UUID) (Evaluation, error)
	EvaluateOpenPositions(ctx context.Context, employeeID string, params BatchParams) ([]Evaluation, error)
}

type Evaluator struct {
	profiles     repository.SkillProfileRepository
	positions    repository.PositionRepository
	requirements repository.RequirementRepository
	cache        AssessmentCache
	workers      int
	cacheTTL     time.Duration
}

func NewEvaluationUsecase(
	profiles repository.SkillProfileRepository,
	positions repository.PositionRepository,
	requirements repository.RequirementRepository,
	cache AssessmentCache,
	workers int,
	cacheTTL time.Duration,
) *Evaluator {
	if workers <= 0 {
		workers = 1
	}
	return &Evaluator{
		profiles:     profiles,
		positions:    positions,
		requirements: requirements,
		cache:        cache,
		workers:      workers,
		cacheTTL:     cacheTTL,
	}
}

// Evaluate scores one employee against one position. An employee with no
// recorded skills is not an error: the engine scores the empty profile.
func (u *Evaluator) Evaluate(ctx context.Context, employeeID string, positionID uuid.UUID) (Evaluation, error) {
	start := time.Now()
	defer func() {
		metrics.EvaluationDuration.Observe(time.Since(start).Seconds())
	}()

	id, err := employee.CanonicalID(employeeID)
	if err != nil {
		return Evaluation{}, ErrInvalidInput
	}
	if positionID == uuid.Nil {
		return Evaluation{}, ErrPositionNotFound
	}

	exists, err := u.profiles.EmployeeExists(ctx, id)
	if err != nil {
		return Evaluation{}, ErrInternal
	}
	if !exists {
		return Evaluation{}, ErrEmployeeNotFound
	}

	pos, err := u.positions.FindByID(ctx, positionID)
	if err != nil {
		return Evaluation{}, ErrPositionNotFound
	}

	profile, err := u.loadProfile(ctx, id)
	if err != nil {
		return Evaluation{}, ErrInternal
	}

	reqs, err := u.requirements.FindByPositionID(ctx, positionID)
	if err != nil {
		return Evaluation{}, ErrInternal
	}

	rs, err := buildRequirementSet(positionID, reqs)
	if err != nil {
		return Evaluation{}, err
	}

	ev := newEvaluation(id, pos, fitness.Score(profile, rs))
	metrics.EvaluationsTotal.WithLabelValues(string(ev.Tier)).Inc()
	return ev, nil
}

// EvaluateOpenPositions scores one employee against every open position.
// Positions are independent, so they fan out over a pool bounded by the
// configured worker count; results sort by score descending with the
// repository's title order deciding ties.
func (u *Evaluator) EvaluateOpenPositions(ctx context.Context, employeeID string, params BatchParams) ([]Evaluation, error) {
	id, err := employee.CanonicalID(employeeID)
	if err != nil {
		return nil, ErrInvalidInput
	}

	minScore := params.MinScore
	if minScore < 0 {
		minScore = 0
	}

	cacheKey := BatchEvaluationCacheKey(id, minScore)
	if u.cache != nil {
		var cached []Evaluation
		if found, err := u.cache.GetJSON(ctx, cacheKey, &cached); err == nil && found {
			metrics.CacheHits.Inc()
			return cached, nil
		}
		metrics.CacheMisses.Inc()
	}

	exists, err := u.profiles.EmployeeExists(ctx, id)
	if err != nil {
		return nil, ErrInternal
	}
	if !exists {
		return nil, ErrEmployeeNotFound
	}

	profile, err := u.loadProfile(ctx, id)
	if err != nil {
		return nil, ErrInternal
	}

	positions, err := u.positions.ListOpen(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	if len(positions) == 0 {
		return []Evaluation{}, nil
	}

	posIDs := make([]uuid.UUID, 0, len(positions))
	for _, p := range positions {
		posIDs = append(posIDs, p.ID)
	}
	reqsByPosition, err := u.requirements.FindByPositionIDs(ctx, posIDs)
	if err != nil {
		return nil, ErrInternal
	}

	workers := u.workers
	if workers > len(positions) {
		workers = len(positions)
	}

	evals := make([]Evaluation, len(positions))
	p := pool.New(workers, len(positions))
	results := p.Run(ctx)

	for i, pos := range positions {
		i, pos := i, pos
		p.Submit(func(ctx context.Context) error {
			rs, err := buildRequirementSet(pos.ID, reqsByPosition[pos.ID])
			if err != nil {
				return err
			}
			evals[i] = newEvaluation(id, pos, fitness.Score(profile, rs))
			return nil
		})
	}
	p.Close()

	for res := range results {
		if res.Err != nil {
			if errors.Is(res.Err, ErrInvalidRequirementData) {
				return nil, ErrInvalidRequirementData
			}
			return nil, ErrInternal
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	metrics.BatchPositionsEvaluated.Observe(float64(len(positions)))

	sort.SliceStable(evals, func(i, j int) bool {
		return evals[i].Result.Score > evals[j].Result.Score
	})

	out := make([]Evaluation, 0, len(evals))
	for _, ev := range evals {
		if ev.Result.Score < minScore {
			continue
		}
		out = append(out, ev)
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cacheKey, out, u.cacheTTL)
	}
	return out, nil
}

func (u *Evaluator) loadProfile(ctx context.Context, employeeID string) (fitness.Profile, error) {
	skills, err := u.profiles.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return fitness.Profile{}, err
	}

	profileSkills := make([]fitness.ProfileSkill, 0, len(skills))
	for _, s := range skills {
		profileSkills = append(profileSkills, fitness.ProfileSkill{
			SkillID:   s.SkillID,
			SkillName: s.SkillName,
			Level:     s.Level,
		})
	}
	return fitness.Profile{EmployeeID: employeeID, Skills: profileSkills}, nil
}

func buildRequirementSet(positionID uuid.UUID, reqs []repository.PositionRequirement) (fitness.RequirementSet, error) {
	engineReqs := make([]fitness.Requirement, 0, len(reqs))
	for _, r := range reqs {
		engineReqs = append(engineReqs, fitness.Requirement{
			SkillID:       r.SkillID,
			SkillName:     r.SkillName,
			RequiredLevel: r.RequiredLevel,
			Weight:        r.Weight,
			Required:      r.IsRequired,
		})
	}

	rs, err := fitness.NewRequirementSet(positionID, engineReqs)
	if err != nil {
		return fitness.RequirementSet{}, ErrInvalidRequirementData
	}
	return rs, nil
}

func newEvaluation(employeeID string, pos repository.Position, res fitness.Result) Evaluation {
	tier, action := fitness.Classify(res.Score)
	return Evaluation{
		EmployeeID:    employeeID,
		PositionID:    pos.ID,
		PositionTitle: pos.Title,
		Result:        res,
		Tier:          tier,
		Action:        action,
	}
}
