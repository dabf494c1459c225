package fitness

type Tier string

const (
	TierHigh   Tier = "HIGH"
	TierMiddle Tier = "MIDDLE"
	TierLow    Tier = "LOW"
)

type Action string

const (
	ActionInterview Action = "INTERVIEW"
	ActionCourses   Action = "COURSES"
	ActionRoadmap   Action = "ROADMAP"
)

// Classify maps a rounded fitness score to its action tier.
// Bands are fixed: >=85 HIGH, 50..84 MIDDLE, <50 LOW.
func Classify(score int) (Tier, Action) {
	switch {
	case score >= 85:
		return TierHigh, ActionInterview
	case score >= 50:
		return TierMiddle, ActionCourses
	default:
		return TierLow, ActionRoadmap
	}
}
