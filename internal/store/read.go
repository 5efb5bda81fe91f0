package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"ecommerce-analytics/internal/domain"
)

// ErrRunNotFound is returned when a run id is not in the store.
var ErrRunNotFound = errors.New("run not found")

// ListRuns returns every stored run manifest, newest first.
func (s *Store) ListRuns(ctx context.Context) ([]domain.RunManifest, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, generated_at, source, reference_date, transactions, customers, total_monetary, dropped_records
		FROM runs
		ORDER BY generated_at DESC, run_id
	`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.RunManifest
	for rows.Next() {
		m, err := scanManifest(rows)
		if err != nil {
			return nil, fmt.Errorf("list runs: %w", err)
		}
		runs = append(runs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// LoadRFM reads a stored run back: its manifest, profiles by customer id and
// segments in report order.
func (s *Store) LoadRFM(ctx context.Context, runID string) (*domain.RFMResult, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT run_id, generated_at, source, reference_date, transactions, customers, total_monetary, dropped_records
		FROM runs WHERE run_id = ?
	`, runID)
	manifest, err := scanManifest(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("load run %s: %w", runID, ErrRunNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load run %s: %w", runID, err)
	}

	profiles, err := s.loadProfiles(ctx, runID)
	if err != nil {
		return nil, err
	}
	segments, err := s.loadSegments(ctx, runID)
	if err != nil {
		return nil, err
	}

	return &domain.RFMResult{
		Manifest: manifest,
		Profiles: profiles,
		Report: domain.SegmentReport{
			Segments:       segments,
			TotalCustomers: manifest.Customers,
			TotalMonetary:  manifest.TotalMonetary,
		},
	}, nil
}

func (s *Store) loadProfiles(ctx context.Context, runID string) ([]domain.ScoredProfile, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT customer_id, last_purchase, recency, frequency, monetary, r_score, f_score, m_score, segment
		FROM profiles WHERE run_id = ?
		ORDER BY customer_id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("load profiles: %w", err)
	}
	defer rows.Close()

	var profiles []domain.ScoredProfile
	for rows.Next() {
		var p domain.ScoredProfile
		var lastPurchase, mon, segment string
		if err := rows.Scan(&p.CustomerID, &lastPurchase, &p.Recency, &p.Frequency, &mon,
			&p.R, &p.F, &p.M, &segment); err != nil {
			return nil, fmt.Errorf("load profiles: %w", err)
		}
		if p.LastPurchase, err = time.Parse(time.RFC3339Nano, lastPurchase); err != nil {
			return nil, fmt.Errorf("load profiles: %s: %w", p.CustomerID, err)
		}
		if p.Monetary, err = decimal.NewFromString(mon); err != nil {
			return nil, fmt.Errorf("load profiles: %s: %w", p.CustomerID, err)
		}
		p.Segment = domain.Segment(segment)
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load profiles: %w", err)
	}
	return profiles, nil
}

func (s *Store) loadSegments(ctx context.Context, runID string) ([]domain.SegmentSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT segment, customer_count, recency_mean, frequency_mean, monetary_mean, monetary_total,
		       pct_customers, pct_revenue, description, action, retention_priority
		FROM segments WHERE run_id = ?
		ORDER BY position
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("load segments: %w", err)
	}
	defer rows.Close()

	var segments []domain.SegmentSummary
	for rows.Next() {
		var seg domain.SegmentSummary
		var segment, priority, meanMon, totalMon, pctC, pctRev string
		if err := rows.Scan(&segment, &seg.Customers, &seg.RecencyMean, &seg.FrequencyMean, &meanMon, &totalMon,
			&pctC, &pctRev, &seg.Description, &seg.Action, &priority); err != nil {
			return nil, fmt.Errorf("load segments: %w", err)
		}
		seg.Segment = domain.Segment(segment)
		seg.Priority = domain.Priority(priority)
		for _, f := range []struct {
			dst *decimal.Decimal
			src string
		}{
			{&seg.MonetaryMean, meanMon},
			{&seg.MonetaryTotal, totalMon},
			{&seg.PctCustomers, pctC},
			{&seg.PctRevenue, pctRev},
		} {
			v, err := decimal.NewFromString(f.src)
			if err != nil {
				return nil, fmt.Errorf("load segments: %s: %w", segment, err)
			}
			*f.dst = v
		}
		segments = append(segments, seg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load segments: %w", err)
	}
	return segments, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanManifest(row scanner) (domain.RunManifest, error) {
	var m domain.RunManifest
	var generated, ref, tot string
	if err := row.Scan(&m.RunID, &generated, &m.Source, &ref, &m.Transactions, &m.Customers, &tot, &m.DroppedRecords); err != nil {
		return domain.RunManifest{}, err
	}
	var err error
	if m.GeneratedAt, err = time.Parse(time.RFC3339Nano, generated); err != nil {
		return domain.RunManifest{}, err
	}
	if m.ReferenceDate, err = time.Parse(time.RFC3339Nano, ref); err != nil {
		return domain.RunManifest{}, err
	}
	if m.TotalMonetary, err = decimal.NewFromString(tot); err != nil {
		return domain.RunManifest{}, err
	}
	return m, nil
}
