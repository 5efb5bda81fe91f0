package gateway

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"ecommerce-analytics/internal/domain"
)

var segmentHeader = []string{
	"segment", "customer_count", "recency_mean", "frequency_mean", "monetary_mean",
	"monetary_total", "pct_customers", "pct_revenue", "description", "action", "retention_priority",
}

// WriteSegmentReport writes one row per segment in report order.
func WriteSegmentReport(w io.Writer, report domain.SegmentReport) error {
	rows := make([][]string, 0, len(report.Segments))
	for _, s := range report.Segments {
		rows = append(rows, []string{
			string(s.Segment),
			formatInt(s.Customers),
			formatFloat(s.RecencyMean),
			formatFloat(s.FrequencyMean),
			formatDecimal(s.MonetaryMean),
			formatDecimal(s.MonetaryTotal),
			formatDecimal(s.PctCustomers),
			formatDecimal(s.PctRevenue),
			s.Description,
			s.Action,
			string(s.Priority),
		})
	}
	return writeTable(w, segmentHeader, rows)
}

// ReadSegmentReport parses a table written by WriteSegmentReport. Report
// totals are the sums of the segment rows.
func ReadSegmentReport(r io.Reader) (domain.SegmentReport, error) {
	rows, err := readTable(r, segmentHeader)
	if err != nil {
		return domain.SegmentReport{}, fmt.Errorf("segments: %w", err)
	}

	report := domain.SegmentReport{
		Segments:      make([]domain.SegmentSummary, 0, len(rows)),
		TotalMonetary: decimal.Zero,
	}
	for i, row := range rows {
		p := cellParser{row: i + 2}
		s := domain.SegmentSummary{
			Segment:       domain.Segment(row[0]),
			Customers:     p.asInt("customer_count", row[1]),
			RecencyMean:   p.asFloat("recency_mean", row[2]),
			FrequencyMean: p.asFloat("frequency_mean", row[3]),
			MonetaryMean:  p.asDecimal("monetary_mean", row[4]),
			MonetaryTotal: p.asDecimal("monetary_total", row[5]),
			PctCustomers:  p.asDecimal("pct_customers", row[6]),
			PctRevenue:    p.asDecimal("pct_revenue", row[7]),
			Recommendation: domain.Recommendation{
				Description: row[8],
				Action:      row[9],
				Priority:    domain.Priority(row[10]),
			},
		}
		if p.err != nil {
			return domain.SegmentReport{}, fmt.Errorf("segments: %w", p.err)
		}
		if !s.Segment.Valid() {
			return domain.SegmentReport{}, fmt.Errorf("segments: row %d: unknown segment %q", i+2, row[0])
		}
		report.Segments = append(report.Segments, s)
		report.TotalCustomers += s.Customers
		report.TotalMonetary = report.TotalMonetary.Add(s.MonetaryTotal)
	}
	return report, nil
}
