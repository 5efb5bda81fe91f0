package rfm

import (
	"time"

	"ecommerce-analytics/internal/domain"
)

// Analyze runs aggregation, scoring, segmentation and reporting in one pass.
func Analyze(transactions []domain.Transaction, reference time.Time, scorer Scorer) ([]domain.ScoredProfile, domain.SegmentReport, error) {
	profiles, err := Aggregate(transactions, reference)
	if err != nil {
		return nil, domain.SegmentReport{}, err
	}
	scored := scorer.Score(profiles)
	Segment(scored)
	return scored, BuildReport(scored), nil
}
