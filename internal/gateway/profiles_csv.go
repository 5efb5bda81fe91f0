package gateway

import (
	"fmt"
	"io"

	"ecommerce-analytics/internal/domain"
)

var profileHeader = []string{
	"customer_id", "last_purchase", "recency", "frequency", "monetary",
	"r_score", "f_score", "m_score", "rfm_code", "rfm_total", "segment",
}

// WriteProfiles writes one row per scored customer.
func WriteProfiles(w io.Writer, profiles []domain.ScoredProfile) error {
	rows := make([][]string, 0, len(profiles))
	for _, p := range profiles {
		rows = append(rows, []string{
			p.CustomerID,
			formatTime(p.LastPurchase),
			formatInt(p.Recency),
			formatInt(p.Frequency),
			formatDecimal(p.Monetary),
			formatInt(p.R),
			formatInt(p.F),
			formatInt(p.M),
			p.Code(),
			formatInt(p.Total()),
			string(p.Segment),
		})
	}
	return writeTable(w, profileHeader, rows)
}

// ReadProfiles parses a table written by WriteProfiles. The derived rfm_code
// and rfm_total columns must agree with the scores.
func ReadProfiles(r io.Reader) ([]domain.ScoredProfile, error) {
	rows, err := readTable(r, profileHeader)
	if err != nil {
		return nil, fmt.Errorf("profiles: %w", err)
	}

	profiles := make([]domain.ScoredProfile, 0, len(rows))
	for i, row := range rows {
		p := cellParser{row: i + 2}
		sp := domain.ScoredProfile{
			CustomerProfile: domain.CustomerProfile{
				CustomerID:   row[0],
				LastPurchase: p.asTime("last_purchase", row[1]),
				Recency:      p.asInt("recency", row[2]),
				Frequency:    p.asInt("frequency", row[3]),
				Monetary:     p.asDecimal("monetary", row[4]),
			},
			Scores: domain.Scores{
				R: p.asInt("r_score", row[5]),
				F: p.asInt("f_score", row[6]),
				M: p.asInt("m_score", row[7]),
			},
			Segment: domain.Segment(row[10]),
		}
		if p.err != nil {
			return nil, fmt.Errorf("profiles: %w", p.err)
		}
		if sp.Code() != row[8] || formatInt(sp.Total()) != row[9] {
			return nil, fmt.Errorf("profiles: row %d: rfm_code/rfm_total do not match scores", i+2)
		}
		if !sp.Segment.Valid() {
			return nil, fmt.Errorf("profiles: row %d: unknown segment %q", i+2, row[10])
		}
		profiles = append(profiles, sp)
	}
	return profiles, nil
}
