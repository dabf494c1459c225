package fitness

import (
	"errors"
	"reflect"
	"testing"

	"github.com/google/uuid"
)

func TestScore_AllRequiredMet_Is100(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	p := Profile{EmployeeID: "42", Skills: []ProfileSkill{
		{SkillID: a, Level: 90},
		{SkillID: b, Level: 70},
	}}
	rs := RequirementSet{TargetID: uuid.New(), Requirements: []Requirement{
		{SkillID: a, RequiredLevel: 80, Weight: 2, Required: true},
		{SkillID: b, RequiredLevel: 70, Weight: 1, Required: true},
	}}

	res := Score(p, rs)
	if res.Score != 100 {
		t.Fatalf("expected score 100, got %d", res.Score)
	}
	if len(res.Gaps) != 0 {
		t.Fatalf("expected no gaps, got %d", len(res.Gaps))
	}
}

func TestScore_EmptyRequirementSet_IsZero(t *testing.T) {
	p := Profile{EmployeeID: "42", Skills: []ProfileSkill{
		{SkillID: uuid.New(), Level: 100},
	}}
	res := Score(p, RequirementSet{TargetID: uuid.New()})

	if res.Score != 0 {
		t.Fatalf("expected score 0, got %d", res.Score)
	}
	if len(res.Gaps) != 0 {
		t.Fatalf("expected no gaps, got %d", len(res.Gaps))
	}

	tier, action := Classify(res.Score)
	if tier != TierLow || action != ActionRoadmap {
		t.Fatalf("expected LOW/ROADMAP, got %s/%s", tier, action)
	}
}

func TestScore_MatchPctCappedAt100(t *testing.T) {
	a := uuid.New()
	p := Profile{EmployeeID: "42", Skills: []ProfileSkill{{SkillID: a, Level: 100}}}
	rs := RequirementSet{TargetID: uuid.New(), Requirements: []Requirement{
		{SkillID: a, RequiredLevel: 50, Weight: 1, Required: false},
	}}

	res := Score(p, rs)
	if res.Matches[0].MatchPct != 100 {
		t.Fatalf("expected matchPct 100, got %v", res.Matches[0].MatchPct)
	}
	if res.Score != 100 {
		t.Fatalf("expected score 100, got %d", res.Score)
	}
}

func TestScore_WorkedExample(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	p := Profile{EmployeeID: "7", Skills: []ProfileSkill{
		{SkillID: a, Level: 80},
		{SkillID: b, Level: 30},
	}}
	rs := RequirementSet{TargetID: uuid.New(), Requirements: []Requirement{
		{SkillID: a, RequiredLevel: 80, Weight: 2, Required: true},
		{SkillID: b, RequiredLevel: 60, Weight: 1, Required: false},
	}}

	// base = (1.0*2*100 + 0.5*1*100) / 3 = 83.33, multiplier = 1.0
	res := Score(p, rs)
	if res.Score != 83 {
		t.Fatalf("expected score 83, got %d", res.Score)
	}

	tier, action := Classify(res.Score)
	if tier != TierMiddle || action != ActionCourses {
		t.Fatalf("expected MIDDLE/COURSES, got %s/%s", tier, action)
	}

	if len(res.Gaps) != 1 || res.Gaps[0].SkillID != b || res.Gaps[0].Gap != 30 {
		t.Fatalf("unexpected gaps: %+v", res.Gaps)
	}
}

func TestScore_RequiredMultiplierHalvesWhenNoneMet(t *testing.T) {
	a := uuid.New()
	p := Profile{EmployeeID: "7", Skills: []ProfileSkill{{SkillID: a, Level: 40}}}
	rs := RequirementSet{TargetID: uuid.New(), Requirements: []Requirement{
		{SkillID: a, RequiredLevel: 80, Weight: 1, Required: true},
	}}

	// base = 50, multiplier = 0.5 + 0/1*0.5 = 0.5
	res := Score(p, rs)
	if res.Score != 25 {
		t.Fatalf("expected score 25, got %d", res.Score)
	}
}

func TestScore_MissingSkillDefaultsToZero(t *testing.T) {
	p := Profile{EmployeeID: "7"}
	rs := RequirementSet{TargetID: uuid.New(), Requirements: []Requirement{
		{SkillID: uuid.New(), SkillName: "Go", RequiredLevel: 60, Weight: 1, Required: false},
	}}

	res := Score(p, rs)
	if res.Score != 0 {
		t.Fatalf("expected score 0, got %d", res.Score)
	}
	if len(res.Gaps) != 1 || res.Gaps[0].Current != 0 || res.Gaps[0].Gap != 60 {
		t.Fatalf("unexpected gaps: %+v", res.Gaps)
	}
}

func TestScore_Idempotent(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	p := Profile{EmployeeID: "7", Skills: []ProfileSkill{
		{SkillID: a, Level: 55},
		{SkillID: b, Level: 20},
	}}
	rs := RequirementSet{TargetID: uuid.New(), Requirements: []Requirement{
		{SkillID: a, RequiredLevel: 70, Weight: 3, Required: true},
		{SkillID: b, RequiredLevel: 50, Weight: 1, Required: false},
	}}

	first := Score(p, rs)
	second := Score(p, rs)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %+v vs %+v", first, second)
	}
}

func TestScore_GapTieBreakBySkillID(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	reqs := make([]Requirement, 0, len(ids))
	for _, id := range ids {
		reqs = append(reqs, Requirement{SkillID: id, RequiredLevel: 50, Weight: 1})
	}

	res := Score(Profile{EmployeeID: "7"}, RequirementSet{TargetID: uuid.New(), Requirements: reqs})
	if len(res.Gaps) != 3 {
		t.Fatalf("expected 3 gaps, got %d", len(res.Gaps))
	}
	for i := 1; i < len(res.Gaps); i++ {
		if res.Gaps[i-1].SkillID.String() > res.Gaps[i].SkillID.String() {
			t.Fatalf("equal gaps not ordered by skill id: %s > %s",
				res.Gaps[i-1].SkillID, res.Gaps[i].SkillID)
		}
	}
}

func TestScore_GapsSortedDescending(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	p := Profile{EmployeeID: "7", Skills: []ProfileSkill{
		{SkillID: a, Level: 40},
		{SkillID: b, Level: 10},
	}}
	rs := RequirementSet{TargetID: uuid.New(), Requirements: []Requirement{
		{SkillID: a, RequiredLevel: 60, Weight: 1},
		{SkillID: b, RequiredLevel: 90, Weight: 1},
	}}

	res := Score(p, rs)
	if len(res.Gaps) != 2 {
		t.Fatalf("expected 2 gaps, got %d", len(res.Gaps))
	}
	if res.Gaps[0].SkillID != b || res.Gaps[0].Gap != 80 {
		t.Fatalf("expected largest gap first, got %+v", res.Gaps)
	}
}

func TestAnalyzeGaps_MatchesScoreOutput(t *testing.T) {
	a := uuid.New()
	p := Profile{EmployeeID: "7", Skills: []ProfileSkill{{SkillID: a, Level: 10}}}
	rs := RequirementSet{TargetID: uuid.New(), Requirements: []Requirement{
		{SkillID: a, RequiredLevel: 70, Weight: 1},
	}}

	gaps := AnalyzeGaps(p, rs)
	if !reflect.DeepEqual(gaps, Score(p, rs).Gaps) {
		t.Fatalf("AnalyzeGaps diverged from Score gaps")
	}
}

func TestTopGaps(t *testing.T) {
	gaps := []SkillGap{{Gap: 50}, {Gap: 40}, {Gap: 30}}

	top := TopGaps(gaps, 2)
	if len(top) != 2 || top[0].Gap != 50 || top[1].Gap != 40 {
		t.Fatalf("unexpected top gaps: %+v", top)
	}
	if got := TopGaps(gaps, 10); len(got) != 3 {
		t.Fatalf("expected all 3 gaps, got %d", len(got))
	}
	if got := TopGaps(gaps, 0); got != nil {
		t.Fatalf("expected nil for n=0, got %+v", got)
	}
}

func TestNewRequirementSet_RejectsNonPositiveValues(t *testing.T) {
	id := uuid.New()

	_, err := NewRequirementSet(uuid.New(), []Requirement{
		{SkillID: id, RequiredLevel: 0, Weight: 1},
	})
	if !errors.Is(err, ErrInvalidRequirement) {
		t.Fatalf("expected ErrInvalidRequirement for zero level, got %v", err)
	}

	_, err = NewRequirementSet(uuid.New(), []Requirement{
		{SkillID: id, RequiredLevel: 50, Weight: -1},
	})
	if !errors.Is(err, ErrInvalidRequirement) {
		t.Fatalf("expected ErrInvalidRequirement for negative weight, got %v", err)
	}

	_, err = NewRequirementSet(uuid.New(), []Requirement{
		{SkillID: uuid.Nil, RequiredLevel: 50, Weight: 1},
	})
	if !errors.Is(err, ErrInvalidRequirement) {
		t.Fatalf("expected ErrInvalidRequirement for nil skill id, got %v", err)
	}

	rs, err := NewRequirementSet(uuid.New(), []Requirement{
		{SkillID: id, RequiredLevel: 50, Weight: 1},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(rs.Requirements) != 1 {
		t.Fatalf("expected 1 requirement, got %d", len(rs.Requirements))
	}
}
