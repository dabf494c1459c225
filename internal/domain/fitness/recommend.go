package fitness

import (
	"context"

	"github.com/google/uuid"
)

// MaxRecommendedCourses caps both the number of gap skills considered and
// the size of the combined course list.
const MaxRecommendedCourses = 5

// CourseCatalog resolves candidate course ids per skill. The batch shape
// keeps the per-skill grouping the engine needs to emit courses in gap-rank
// order. Implementations live outside the engine (Postgres repository in
// production, maps in tests).
type CourseCatalog interface {
	CoursesForSkills(ctx context.Context, skillIDs []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error)
}

type Recommendation struct {
	Tier      Tier
	Action    Action
	CourseIDs []uuid.UUID

	// RoadmapPlanned stays false: roadmap construction is a separately
	// specified stage, not something this engine invents.
	RoadmapPlanned bool
}

// Recommend turns a fitness result into a remediation action.
//
// HIGH results go straight to interview with no courses. MIDDLE results get
// courses for the five largest gaps, deduplicated and capped at five ids,
// ordered by gap rank. LOW results signal a roadmap without contents.
func Recommend(ctx context.Context, res Result, catalog CourseCatalog) (Recommendation, error) {
	tier, action := Classify(res.Score)
	rec := Recommendation{Tier: tier, Action: action}

	if tier != TierMiddle {
		return rec, nil
	}

	top := TopGaps(res.Gaps, MaxRecommendedCourses)
	if len(top) == 0 {
		return rec, nil
	}

	skillIDs := make([]uuid.UUID, 0, len(top))
	for _, g := range top {
		skillIDs = append(skillIDs, g.SkillID)
	}

	bySkill, err := catalog.CoursesForSkills(ctx, skillIDs)
	if err != nil {
		return Recommendation{}, err
	}

	seen := make(map[uuid.UUID]struct{}, MaxRecommendedCourses)
	courses := make([]uuid.UUID, 0, MaxRecommendedCourses)
	for _, g := range top {
		for _, courseID := range bySkill[g.SkillID] {
			if courseID == uuid.Nil {
				continue
			}
			if _, ok := seen[courseID]; ok {
				continue
			}
			if len(courses) >= MaxRecommendedCourses {
				break
			}
			seen[courseID] = struct{}{}
			courses = append(courses, courseID)
		}
	}

	rec.CourseIDs = courses
	return rec, nil
}
