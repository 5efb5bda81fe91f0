package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"ecommerce-analytics/internal/etl"
)

// CleanStages is the number of progress ticks a clean run reports.
const CleanStages = 3

// CleanUseCase loads, cleans and rewrites a transaction table.
type CleanUseCase struct {
	pipeline
	sink TransactionSink
}

// NewCleanUseCase creates a new instance of the usecase.
func NewCleanUseCase(repo TransactionRepository, sink TransactionSink, logger zerolog.Logger) *CleanUseCase {
	return &CleanUseCase{pipeline: newPipeline(repo, logger), sink: sink}
}

// WithProgress reports stage progress to r.
func (uc *CleanUseCase) WithProgress(r StageReporter) *CleanUseCase {
	uc.progress = r
	return uc
}

// Run cleans the source table and writes the kept rows.
func (uc *CleanUseCase) Run(ctx context.Context, source string, window Window) (etl.CleanStats, error) {
	transactions, stats, err := uc.load(ctx, source, window)
	if err != nil {
		return etl.CleanStats{}, err
	}

	uc.stage("saving")
	if err := uc.sink.SaveTransactions(ctx, transactions); err != nil {
		return etl.CleanStats{}, fmt.Errorf("could not save cleaned transactions: %w", err)
	}
	return stats, nil
}
