package rfm

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecommerce-analytics/internal/domain"
)

func TestBuildReport_Scenario(t *testing.T) {
	profiles, report, err := Analyze(scenarioTransactions(), refDate, NewScorer())
	require.NoError(t, err)

	assert.Equal(t, domain.SegmentChampions, profiles[0].Segment)
	assert.Equal(t, domain.SegmentDormant, profiles[1].Segment)
	assert.Equal(t, domain.SegmentAverage, profiles[2].Segment)

	require.Len(t, report.Segments, 3)
	assert.Equal(t, 3, report.TotalCustomers)
	assert.Equal(t, "1060", report.TotalMonetary.String())

	champions := report.Segments[0]
	assert.Equal(t, domain.SegmentChampions, champions.Segment)
	assert.Equal(t, 1, champions.Customers)
	assert.Equal(t, 5.0, champions.RecencyMean)
	assert.Equal(t, 5.0, champions.FrequencyMean)
	assert.Equal(t, "1000", champions.MonetaryMean.String())
	assert.Equal(t, "33.3", champions.PctCustomers.String())
	assert.Equal(t, "94.3", champions.PctRevenue.String())
	assert.Equal(t, domain.PriorityHigh, champions.Priority)

	assert.Equal(t, domain.SegmentAverage, report.Segments[1].Segment)
	assert.Equal(t, "4.7", report.Segments[1].PctRevenue.String())
	assert.Equal(t, domain.SegmentDormant, report.Segments[2].Segment)
	assert.Equal(t, "0.9", report.Segments[2].PctRevenue.String())
	assert.Equal(t, domain.PriorityLow, report.Segments[2].Priority)
}

func TestBuildReport_TotalsMatchPopulation(t *testing.T) {
	var txs []domain.Transaction
	for c := 0; c < 57; c++ {
		for o := 0; o <= c%5; o++ {
			txs = append(txs, tx(
				fmt.Sprintf("O%d-%d", c, o),
				fmt.Sprintf("K%02d", c),
				daysBefore(refDate, (c*11)%120+o*3),
				fmt.Sprintf("%d.%02d", 3+(c*53)%400, (c+o)%100),
			))
		}
	}

	profiles, report, err := Analyze(txs, refDate, NewScorer())
	require.NoError(t, err)

	count := 0
	monetary := decimal.Zero
	profileTotal := decimal.Zero
	for _, p := range profiles {
		profileTotal = profileTotal.Add(p.Monetary)
	}
	for i, s := range report.Segments {
		count += s.Customers
		monetary = monetary.Add(s.MonetaryTotal)
		if i > 0 {
			assert.True(t, report.Segments[i-1].MonetaryTotal.GreaterThanOrEqual(s.MonetaryTotal),
				"segments must be sorted by total monetary")
		}
	}
	assert.Equal(t, len(profiles), count)
	assert.True(t, profileTotal.Equal(monetary), "segment totals %s != population %s", monetary, profileTotal)
	assert.True(t, report.TotalMonetary.Equal(monetary))
}

func TestBuildReport_MeansAreRounded(t *testing.T) {
	profiles := []domain.ScoredProfile{
		{CustomerProfile: profile("a", 1, 1, "10"), Segment: domain.SegmentOccasional},
		{CustomerProfile: profile("b", 2, 1, "10"), Segment: domain.SegmentOccasional},
		{CustomerProfile: profile("c", 2, 2, "0.01"), Segment: domain.SegmentOccasional},
	}

	report := BuildReport(profiles)

	require.Len(t, report.Segments, 1)
	s := report.Segments[0]
	assert.Equal(t, 1.67, s.RecencyMean)
	assert.Equal(t, 1.33, s.FrequencyMean)
	assert.Equal(t, "6.67", s.MonetaryMean.String())
	assert.Equal(t, "20.01", s.MonetaryTotal.String())
	assert.Equal(t, "100", s.PctCustomers.String())
	assert.Equal(t, "100", s.PctRevenue.String())
}

func TestBuildReport_Empty(t *testing.T) {
	report := BuildReport(nil)
	assert.Empty(t, report.Segments)
	assert.Equal(t, 0, report.TotalCustomers)
	assert.True(t, report.TotalMonetary.IsZero())
}

func TestRecommendation(t *testing.T) {
	priorities := map[domain.Segment]domain.Priority{
		domain.SegmentChampions:    domain.PriorityHigh,
		domain.SegmentLoyal:        domain.PriorityHigh,
		domain.SegmentPromisingNew: domain.PriorityMedium,
		domain.SegmentAtRisk:       domain.PriorityCritical,
		domain.SegmentDormant:      domain.PriorityLow,
		domain.SegmentOccasional:   domain.PriorityMedium,
		domain.SegmentAverage:      domain.PriorityMedium,
	}
	for seg, want := range priorities {
		rec, ok := Recommendation(seg)
		require.True(t, ok, seg)
		assert.Equal(t, want, rec.Priority, seg)
		assert.NotEmpty(t, rec.Description)
		assert.NotEmpty(t, rec.Action)
	}

	_, ok := Recommendation("Unknown")
	assert.False(t, ok)
}
