package rfm

import "ecommerce-analytics/internal/domain"

type segmentRule struct {
	matches func(s domain.Scores) bool
	segment domain.Segment
}

// segmentRules are evaluated top to bottom and the first match wins. The
// predicates overlap, so the order is part of the classification.
var segmentRules = []segmentRule{
	{func(s domain.Scores) bool { return s.R >= 4 && s.F >= 4 && s.M >= 4 }, domain.SegmentChampions},
	{func(s domain.Scores) bool { return s.F >= 4 }, domain.SegmentLoyal},
	{func(s domain.Scores) bool { return s.R >= 4 && s.F <= 2 }, domain.SegmentPromisingNew},
	{func(s domain.Scores) bool { return s.R <= 2 && s.F >= 3 && s.M >= 3 }, domain.SegmentAtRisk},
	{func(s domain.Scores) bool { return s.R <= 2 && s.F <= 2 }, domain.SegmentDormant},
	{func(s domain.Scores) bool { return s.F <= 2 }, domain.SegmentOccasional},
}

// Classify returns the segment for a set of scores.
func Classify(s domain.Scores) domain.Segment {
	for _, rule := range segmentRules {
		if rule.matches(s) {
			return rule.segment
		}
	}
	return domain.SegmentAverage
}

// Segment labels every scored profile in place.
func Segment(profiles []domain.ScoredProfile) {
	for i := range profiles {
		profiles[i].Segment = Classify(profiles[i].Scores)
	}
}
