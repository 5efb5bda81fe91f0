package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"ecommerce-analytics/internal/domain"
)

// SaveRFM inserts the run, its profiles and its segment report in one
// transaction. Saving a run id that already exists is a no-op.
func (s *Store) SaveRFM(ctx context.Context, result *domain.RFMResult) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save rfm: %w", err)
	}
	defer tx.Rollback()

	m := result.Manifest
	res, err := tx.ExecContext(ctx, `
		INSERT INTO runs
		(run_id, generated_at, source, reference_date, transactions, customers, total_monetary, dropped_records)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(run_id) DO NOTHING
	`,
		m.RunID,
		m.GeneratedAt.Format(time.RFC3339Nano),
		m.Source,
		m.ReferenceDate.Format(time.RFC3339Nano),
		m.Transactions,
		m.Customers,
		m.TotalMonetary.String(),
		m.DroppedRecords,
	)
	if err != nil {
		return fmt.Errorf("save rfm: insert run: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil
	}

	if err := insertProfiles(ctx, tx, m.RunID, result.Profiles); err != nil {
		return err
	}
	if err := insertSegments(ctx, tx, m.RunID, result.Report.Segments); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save rfm: commit: %w", err)
	}
	return nil
}

func insertProfiles(ctx context.Context, tx *sql.Tx, runID string, profiles []domain.ScoredProfile) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO profiles
		(run_id, customer_id, last_purchase, recency, frequency, monetary, r_score, f_score, m_score, segment)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("save rfm: prepare profiles: %w", err)
	}
	defer stmt.Close()

	for _, p := range profiles {
		if _, err := stmt.ExecContext(ctx,
			runID,
			p.CustomerID,
			p.LastPurchase.Format(time.RFC3339Nano),
			p.Recency,
			p.Frequency,
			p.Monetary.String(),
			p.R, p.F, p.M,
			string(p.Segment),
		); err != nil {
			return fmt.Errorf("save rfm: insert profile %s: %w", p.CustomerID, err)
		}
	}
	return nil
}

func insertSegments(ctx context.Context, tx *sql.Tx, runID string, segments []domain.SegmentSummary) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO segments
		(run_id, position, segment, customer_count, recency_mean, frequency_mean, monetary_mean,
		 monetary_total, pct_customers, pct_revenue, description, action, retention_priority)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("save rfm: prepare segments: %w", err)
	}
	defer stmt.Close()

	for i, seg := range segments {
		if _, err := stmt.ExecContext(ctx,
			runID,
			i,
			string(seg.Segment),
			seg.Customers,
			seg.RecencyMean,
			seg.FrequencyMean,
			seg.MonetaryMean.String(),
			seg.MonetaryTotal.String(),
			seg.PctCustomers.String(),
			seg.PctRevenue.String(),
			seg.Description,
			seg.Action,
			string(seg.Priority),
		); err != nil {
			return fmt.Errorf("save rfm: insert segment %s: %w", seg.Segment, err)
		}
	}
	return nil
}
