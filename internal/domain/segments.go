package domain

import "github.com/shopspring/decimal"

// Segment is the categorical customer label assigned from RFM scores.
type Segment string

const (
	SegmentChampions    Segment = "Champions"
	SegmentLoyal        Segment = "Loyal"
	SegmentPromisingNew Segment = "Promising New"
	SegmentAtRisk       Segment = "At Risk"
	SegmentDormant      Segment = "Dormant"
	SegmentOccasional   Segment = "Occasional"
	SegmentAverage      Segment = "Average"
)

// Segments lists every segment in classification priority order.
var Segments = []Segment{
	SegmentChampions,
	SegmentLoyal,
	SegmentPromisingNew,
	SegmentAtRisk,
	SegmentDormant,
	SegmentOccasional,
	SegmentAverage,
}

// Valid reports whether s is one of the known segments.
func (s Segment) Valid() bool {
	for _, known := range Segments {
		if s == known {
			return true
		}
	}
	return false
}

// Priority is the retention priority attached to a segment.
type Priority string

const (
	PriorityCritical Priority = "Critical"
	PriorityHigh     Priority = "High"
	PriorityMedium   Priority = "Medium"
	PriorityLow      Priority = "Low"
)

// Recommendation is the marketing guidance for a segment.
type Recommendation struct {
	Description string   `json:"description"`
	Action      string   `json:"action"`
	Priority    Priority `json:"retention_priority"`
}

// SegmentSummary aggregates the profiles of one segment.
type SegmentSummary struct {
	Segment       Segment         `json:"segment"`
	Customers     int             `json:"customer_count"`
	RecencyMean   float64         `json:"recency_mean"`
	FrequencyMean float64         `json:"frequency_mean"`
	MonetaryMean  decimal.Decimal `json:"monetary_mean"`
	MonetaryTotal decimal.Decimal `json:"monetary_total"`
	PctCustomers  decimal.Decimal `json:"pct_customers"`
	PctRevenue    decimal.Decimal `json:"pct_revenue"`
	Recommendation
}

// SegmentReport is the per-segment summary, sorted by total monetary descending.
type SegmentReport struct {
	Segments       []SegmentSummary `json:"segments"`
	TotalCustomers int              `json:"total_customers"`
	TotalMonetary  decimal.Decimal  `json:"total_monetary"`
}
