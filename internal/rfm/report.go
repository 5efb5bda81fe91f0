package rfm

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"

	"ecommerce-analytics/internal/domain"
)

var hundred = decimal.NewFromInt(100)

var recommendations = map[domain.Segment]domain.Recommendation{
	domain.SegmentChampions: {
		Description: "Best customers",
		Action:      "Reward with a VIP programme and early access to new products",
		Priority:    domain.PriorityHigh,
	},
	domain.SegmentLoyal: {
		Description: "Regular, engaged customers",
		Action:      "Upsell, loyalty programme, referral incentives",
		Priority:    domain.PriorityHigh,
	},
	domain.SegmentPromisingNew: {
		Description: "New customers with strong potential",
		Action:      "Personalised onboarding and welcome offers",
		Priority:    domain.PriorityMedium,
	},
	domain.SegmentAtRisk: {
		Description: "Good customers drifting away",
		Action:      "Urgent reactivation campaign with special offers",
		Priority:    domain.PriorityCritical,
	},
	domain.SegmentDormant: {
		Description: "Customers inactive for a long time",
		Action:      "Win-back campaign and satisfaction survey",
		Priority:    domain.PriorityLow,
	},
	domain.SegmentOccasional: {
		Description: "One-off buyers",
		Action:      "Incentives to increase purchase frequency",
		Priority:    domain.PriorityMedium,
	},
	domain.SegmentAverage: {
		Description: "Standard customers",
		Action:      "Personalisation to improve engagement",
		Priority:    domain.PriorityMedium,
	},
}

// Recommendation returns the static guidance for a segment.
func Recommendation(s domain.Segment) (domain.Recommendation, bool) {
	r, ok := recommendations[s]
	return r, ok
}

type segmentGroup struct {
	recency   []float64
	frequency []float64
	monetary  decimal.Decimal
}

// BuildReport groups scored profiles by segment. Only segments with at least
// one customer appear. Rows are sorted by total monetary, descending, with
// ties kept in classification order.
func BuildReport(profiles []domain.ScoredProfile) domain.SegmentReport {
	groups := make(map[domain.Segment]*segmentGroup)
	total := decimal.Zero
	for _, p := range profiles {
		g, ok := groups[p.Segment]
		if !ok {
			g = &segmentGroup{monetary: decimal.Zero}
			groups[p.Segment] = g
		}
		g.recency = append(g.recency, float64(p.Recency))
		g.frequency = append(g.frequency, float64(p.Frequency))
		g.monetary = g.monetary.Add(p.Monetary)
		total = total.Add(p.Monetary)
	}

	report := domain.SegmentReport{
		Segments:       make([]domain.SegmentSummary, 0, len(groups)),
		TotalCustomers: len(profiles),
		TotalMonetary:  total,
	}
	for _, seg := range domain.Segments {
		g, ok := groups[seg]
		if !ok {
			continue
		}
		count := len(g.recency)
		summary := domain.SegmentSummary{
			Segment:       seg,
			Customers:     count,
			RecencyMean:   round2(mean(g.recency)),
			FrequencyMean: round2(mean(g.frequency)),
			MonetaryMean:  g.monetary.Div(decimal.NewFromInt(int64(count))).Round(2),
			MonetaryTotal: g.monetary,
			PctCustomers:  percent(decimal.NewFromInt(int64(count)), decimal.NewFromInt(int64(len(profiles)))),
			PctRevenue:    percent(g.monetary, total),
		}
		summary.Recommendation = recommendations[seg]
		report.Segments = append(report.Segments, summary)
	}
	sort.SliceStable(report.Segments, func(i, j int) bool {
		return report.Segments[i].MonetaryTotal.GreaterThan(report.Segments[j].MonetaryTotal)
	})
	return report
}

func mean(values []float64) float64 {
	m, err := stats.Mean(values)
	if err != nil {
		return 0
	}
	return m
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func percent(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Mul(hundred).Div(whole).Round(1)
}
