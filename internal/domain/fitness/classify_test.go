package fitness

import (
	"math"
	"testing"
)

func TestClassify_Bands(t *testing.T) {
	cases := []struct {
		score  int
		tier   Tier
		action Action
	}{
		{100, TierHigh, ActionInterview},
		{85, TierHigh, ActionInterview},
		{84, TierMiddle, ActionCourses},
		{50, TierMiddle, ActionCourses},
		{49, TierLow, ActionRoadmap},
		{0, TierLow, ActionRoadmap},
	}

	for _, c := range cases {
		tier, action := Classify(c.score)
		if tier != c.tier || action != c.action {
			t.Fatalf("score %d: expected %s/%s, got %s/%s", c.score, c.tier, c.action, tier, action)
		}
	}
}

func TestClassify_RoundingPrecedesClassification(t *testing.T) {
	// A raw 84.6 rounds to 85 and must land in HIGH, not MIDDLE.
	rounded := int(math.Round(84.6))
	tier, _ := Classify(rounded)
	if tier != TierHigh {
		t.Fatalf("expected HIGH for rounded 84.6, got %s", tier)
	}
}
