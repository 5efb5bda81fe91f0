package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"ecommerce-analytics/internal/domain"
	"ecommerce-analytics/internal/kpi"
)

// KPIStages is the number of progress ticks a KPI run reports.
const KPIStages = 4

// KPIOptions configures one KPI run.
type KPIOptions struct {
	Source string
	Window Window
	KPI    kpi.Options
}

// KPIUseCase computes the KPI report over a cleaned transaction table.
type KPIUseCase struct {
	pipeline
	sinks []KPISink
}

// NewKPIUseCase creates a new instance of the usecase.
func NewKPIUseCase(repo TransactionRepository, logger zerolog.Logger, sinks ...KPISink) *KPIUseCase {
	return &KPIUseCase{pipeline: newPipeline(repo, logger), sinks: sinks}
}

// WithProgress reports stage progress to r.
func (uc *KPIUseCase) WithProgress(r StageReporter) *KPIUseCase {
	uc.progress = r
	return uc
}

// Run computes and persists the KPI report.
func (uc *KPIUseCase) Run(ctx context.Context, opts KPIOptions) (*domain.KPIReport, error) {
	transactions, _, err := uc.load(ctx, opts.Source, opts.Window)
	if err != nil {
		return nil, err
	}
	if len(transactions) == 0 {
		return nil, domain.ErrNoTransactions
	}

	uc.stage("computing")
	report := kpi.Build(transactions, opts.KPI)
	uc.logger.Info().
		Str("revenue", report.Summary.TotalRevenue.String()).
		Int("orders", report.Summary.TotalOrders).
		Int("customers", report.Summary.TotalCustomers).
		Msg("kpi report complete")

	uc.stage("saving")
	for _, sink := range uc.sinks {
		if err := sink.SaveKPI(ctx, &report); err != nil {
			return nil, fmt.Errorf("could not save kpi report: %w", err)
		}
	}
	return &report, nil
}
