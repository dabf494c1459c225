// Package fitness implements the skill fitness and gap resolution engine:
// weighted fitness scoring of an employee skill profile against a position's
// requirement set, gap analysis, tier classification, course recommendation
// and career-path projection. Everything in this package is pure and operates
// on caller-supplied snapshots; repositories and caches live elsewhere.
package fitness

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidRequirement = errors.New("invalid skill requirement")

type ProfileSkill struct {
	SkillID   uuid.UUID
	SkillName string
	Level     float64
}

type Profile struct {
	EmployeeID string
	Skills     []ProfileSkill
}

type Requirement struct {
	SkillID       uuid.UUID
	SkillName     string
	RequiredLevel float64
	Weight        float64
	Required      bool
}

type RequirementSet struct {
	TargetID     uuid.UUID
	Requirements []Requirement
}

// NewRequirementSet validates requirement rows before they reach the engine.
// RequiredLevel and Weight must both be positive; bad catalog data is
// rejected here instead of silently skewing scores.
func NewRequirementSet(targetID uuid.UUID, reqs []Requirement) (RequirementSet, error) {
	for _, r := range reqs {
		if r.SkillID == uuid.Nil {
			return RequirementSet{}, fmt.Errorf("%w: missing skill id", ErrInvalidRequirement)
		}
		if r.RequiredLevel <= 0 {
			return RequirementSet{}, fmt.Errorf("%w: skill %s: required level must be > 0, got %v", ErrInvalidRequirement, r.SkillID, r.RequiredLevel)
		}
		if r.Weight <= 0 {
			return RequirementSet{}, fmt.Errorf("%w: skill %s: weight must be > 0, got %v", ErrInvalidRequirement, r.SkillID, r.Weight)
		}
	}
	return RequirementSet{TargetID: targetID, Requirements: reqs}, nil
}

type SkillMatch struct {
	SkillID   uuid.UUID
	SkillName string
	Current   float64
	Required  float64
	MatchPct  float64
}

type SkillGap struct {
	SkillID   uuid.UUID
	SkillName string
	Current   float64
	Required  float64
	Gap       float64
}

type Result struct {
	Score   int
	Matches []SkillMatch
	Gaps    []SkillGap
}

// Score computes the fitness of a profile against one requirement set.
//
// Each requirement contributes matchPct/100 * weight to a weighted average;
// a requirement the profile over-satisfies is capped at 100%. The base score
// is then scaled by a multiplier in [0.5, 1.0] reflecting how many of the
// hard (Required=true) skills are actually met. The returned score is the
// rounded integer; classification always operates on that integer, never on
// the pre-rounding float.
//
// An empty requirement set scores 0 regardless of the profile. A skill the
// profile does not carry defaults to level 0 and is never an error.
func Score(p Profile, rs RequirementSet) Result {
	levels := make(map[uuid.UUID]float64, len(p.Skills))
	for _, s := range p.Skills {
		if s.SkillID == uuid.Nil {
			continue
		}
		levels[s.SkillID] = clampLevel(s.Level)
	}

	var totalWeightedScore float64
	var totalWeight float64
	var totalRequired int
	var requiredMet int

	matches := make([]SkillMatch, 0, len(rs.Requirements))
	gaps := make([]SkillGap, 0)

	for _, r := range rs.Requirements {
		current := levels[r.SkillID]

		matchPct := 100.0
		if r.RequiredLevel > 0 {
			matchPct = current / r.RequiredLevel * 100
			if matchPct > 100 {
				matchPct = 100
			}
		}

		skillScore := matchPct / 100 * r.Weight
		totalWeightedScore += skillScore * 100
		totalWeight += r.Weight

		if r.Required {
			totalRequired++
			if current >= r.RequiredLevel {
				requiredMet++
			}
		}

		matches = append(matches, SkillMatch{
			SkillID:   r.SkillID,
			SkillName: r.SkillName,
			Current:   current,
			Required:  r.RequiredLevel,
			MatchPct:  matchPct,
		})

		if gap := r.RequiredLevel - current; gap > 0 {
			gaps = append(gaps, SkillGap{
				SkillID:   r.SkillID,
				SkillName: r.SkillName,
				Current:   current,
				Required:  r.RequiredLevel,
				Gap:       gap,
			})
		}
	}

	baseScore := 0.0
	if totalWeight > 0 {
		baseScore = totalWeightedScore / totalWeight
	}

	multiplier := 1.0
	if totalRequired > 0 {
		multiplier = 0.5 + float64(requiredMet)/float64(totalRequired)*0.5
	}

	raw := baseScore * multiplier
	if raw > 100 {
		raw = 100
	}
	if raw < 0 {
		raw = 0
	}

	sortGaps(gaps)

	return Result{
		Score:   int(math.Round(raw)),
		Matches: matches,
		Gaps:    gaps,
	}
}

// AnalyzeGaps returns only the unmet-skill list, for callers that do not
// need the full result.
func AnalyzeGaps(p Profile, rs RequirementSet) []SkillGap {
	return Score(p, rs).Gaps
}

// TopGaps returns the n largest gaps, preserving rank order.
func TopGaps(gaps []SkillGap, n int) []SkillGap {
	if n <= 0 || len(gaps) == 0 {
		return nil
	}
	if n > len(gaps) {
		n = len(gaps)
	}
	out := make([]SkillGap, n)
	copy(out, gaps[:n])
	return out
}

// Gaps sort descending by gap size; equal gaps order by skill id so the
// output is deterministic for identical inputs.
func sortGaps(gaps []SkillGap) {
	sort.SliceStable(gaps, func(i, j int) bool {
		if gaps[i].Gap != gaps[j].Gap {
			return gaps[i].Gap > gaps[j].Gap
		}
		return strings.Compare(gaps[i].SkillID.String(), gaps[j].SkillID.String()) < 0
	})
}

func clampLevel(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
