package fitness

import "github.com/google/uuid"

type CareerStep struct {
	RoleID       uuid.UUID
	Requirements RequirementSet
	Result       Result
}

type CareerPath struct {
	EmployeeID string
	Steps      []CareerStep
}

// ProjectPath scores a profile against each requirement set of an ordered
// career progression. Steps are scored independently; a later step is NOT
// guaranteed a lower or equal score than an earlier one, because requirement
// sets across steps may diverge in skill composition. Timeline estimates are
// deliberately absent: they belong to an external estimator.
func ProjectPath(p Profile, sets []RequirementSet) CareerPath {
	steps := make([]CareerStep, 0, len(sets))
	for _, rs := range sets {
		steps = append(steps, CareerStep{
			RoleID:       rs.TargetID,
			Requirements: rs,
			Result:       Score(p, rs),
		})
	}
	return CareerPath{EmployeeID: p.EmployeeID, Steps: steps}
}
