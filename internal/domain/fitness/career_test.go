package fitness

import (
	"testing"

	"github.com/google/uuid"
)

func TestProjectPath_OneResultPerStep(t *testing.T) {
	a := uuid.New()
	p := Profile{EmployeeID: "42", Skills: []ProfileSkill{{SkillID: a, Level: 60}}}

	sets := []RequirementSet{
		{TargetID: uuid.New(), Requirements: []Requirement{{SkillID: a, RequiredLevel: 50, Weight: 1, Required: true}}},
		{TargetID: uuid.New(), Requirements: []Requirement{{SkillID: a, RequiredLevel: 80, Weight: 1, Required: true}}},
	}

	path := ProjectPath(p, sets)
	if path.EmployeeID != "42" {
		t.Fatalf("unexpected employee id %q", path.EmployeeID)
	}
	if len(path.Steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(path.Steps))
	}
	for i, step := range path.Steps {
		if step.RoleID != sets[i].TargetID {
			t.Fatalf("step %d: role id mismatch", i)
		}
	}
}

func TestProjectPath_StepsAreIndependent(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	p := Profile{EmployeeID: "42", Skills: []ProfileSkill{
		{SkillID: a, Level: 20},
		{SkillID: b, Level: 90},
	}}

	// A "higher" step may still score better when its skill mix differs;
	// the projector makes no monotonicity promise.
	sets := []RequirementSet{
		{TargetID: uuid.New(), Requirements: []Requirement{{SkillID: a, RequiredLevel: 80, Weight: 1, Required: true}}},
		{TargetID: uuid.New(), Requirements: []Requirement{{SkillID: b, RequiredLevel: 60, Weight: 1, Required: true}}},
	}

	path := ProjectPath(p, sets)
	if path.Steps[1].Result.Score <= path.Steps[0].Result.Score {
		t.Fatalf("expected later step to score higher here: %d vs %d",
			path.Steps[0].Result.Score, path.Steps[1].Result.Score)
	}
	for i, step := range path.Steps {
		if got := Score(p, sets[i]); got.Score != step.Result.Score {
			t.Fatalf("step %d not equal to an independent Score call", i)
		}
	}
}

func TestProjectPath_EmptyPath(t *testing.T) {
	path := ProjectPath(Profile{EmployeeID: "42"}, nil)
	if len(path.Steps) != 0 {
		t.Fatalf("expected no steps, got %d", len(path.Steps))
	}
}
