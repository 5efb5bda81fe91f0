package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"ecommerce-analytics/internal/domain"
	"ecommerce-analytics/internal/rfm"
)

// RFMStages is the number of progress ticks an RFM run reports.
const RFMStages = 4

// RFMOptions configures one RFM run.
type RFMOptions struct {
	Source string
	// Reference is the date recency is measured from. Zero means the latest
	// transaction in the (windowed) table.
	Reference time.Time
	Window    Window
	Scorer    rfm.Scorer
}

// RFMUseCase orchestrates the RFM pipeline: load, clean, score, segment,
// report and persist.
type RFMUseCase struct {
	pipeline
	sinks []ResultSink
}

// NewRFMUseCase creates a new instance of the usecase. Results are handed to
// every sink in order.
func NewRFMUseCase(repo TransactionRepository, logger zerolog.Logger, sinks ...ResultSink) *RFMUseCase {
	return &RFMUseCase{pipeline: newPipeline(repo, logger), sinks: sinks}
}

// WithProgress reports stage progress to r.
func (uc *RFMUseCase) WithProgress(r StageReporter) *RFMUseCase {
	uc.progress = r
	return uc
}

// WithClock replaces the clock and run id source used for the manifest.
func (uc *RFMUseCase) WithClock(now func() time.Time, newID func() (string, error)) *RFMUseCase {
	uc.now = now
	uc.newID = newID
	return uc
}

// Run performs the RFM analysis and persists the result.
func (uc *RFMUseCase) Run(ctx context.Context, opts RFMOptions) (*domain.RFMResult, error) {
	transactions, stats, err := uc.load(ctx, opts.Source, opts.Window)
	if err != nil {
		return nil, err
	}

	uc.stage("scoring")
	reference := opts.Reference
	if reference.IsZero() {
		if reference, err = rfm.ReferenceDate(transactions); err != nil {
			return nil, fmt.Errorf("could not determine reference date: %w", err)
		}
	}
	profiles, report, err := rfm.Analyze(transactions, reference, opts.Scorer)
	if err != nil {
		return nil, fmt.Errorf("rfm analysis failed: %w", err)
	}

	runID, err := uc.newID()
	if err != nil {
		return nil, err
	}
	result := &domain.RFMResult{
		Manifest: domain.RunManifest{
			RunID:          runID,
			GeneratedAt:    uc.now().UTC(),
			Source:         opts.Source,
			ReferenceDate:  reference,
			Transactions:   len(transactions),
			Customers:      len(profiles),
			TotalMonetary:  report.TotalMonetary,
			DroppedRecords: stats.Dropped(),
		},
		Profiles: profiles,
		Report:   report,
	}
	uc.logger.Info().
		Str("run_id", runID).
		Int("customers", len(profiles)).
		Int("segments", len(report.Segments)).
		Str("reference_date", reference.Format(time.DateOnly)).
		Msg("rfm analysis complete")

	uc.stage("saving")
	for _, sink := range uc.sinks {
		if err := sink.SaveRFM(ctx, result); err != nil {
			return nil, fmt.Errorf("could not save rfm results: %w", err)
		}
	}
	return result, nil
}
