package domain

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// CustomerProfile holds the raw RFM metrics of one customer.
type CustomerProfile struct {
	CustomerID   string          `json:"customer_id"`
	LastPurchase time.Time       `json:"last_purchase"`
	Recency      int             `json:"recency"`   // days between reference date and last purchase
	Frequency    int             `json:"frequency"` // distinct order ids
	Monetary     decimal.Decimal `json:"monetary"`  // sum of amounts
}

// Scores are the three ordinal RFM scores, each in 1..5.
type Scores struct {
	R int `json:"r_score"`
	F int `json:"f_score"`
	M int `json:"m_score"`
}

// Code concatenates the three scores, e.g. "545".
func (s Scores) Code() string {
	return strconv.Itoa(s.R) + strconv.Itoa(s.F) + strconv.Itoa(s.M)
}

// Total is the sum of the three scores.
func (s Scores) Total() int {
	return s.R + s.F + s.M
}

// ScoredProfile is a customer profile after scoring and segmentation.
type ScoredProfile struct {
	CustomerProfile
	Scores
	Segment Segment `json:"segment"`
}

// RunManifest describes a single analysis run.
type RunManifest struct {
	RunID          string          `json:"run_id"`
	GeneratedAt    time.Time       `json:"generated_at"`
	Source         string          `json:"source"`
	ReferenceDate  time.Time       `json:"reference_date"`
	Transactions   int             `json:"transactions"`
	Customers      int             `json:"customers"`
	TotalMonetary  decimal.Decimal `json:"total_monetary"`
	DroppedRecords int             `json:"dropped_records"`
}

// RFMResult is everything an RFM run produces.
type RFMResult struct {
	Manifest RunManifest     `json:"manifest"`
	Profiles []ScoredProfile `json:"profiles"`
	Report   SegmentReport   `json:"report"`
}
