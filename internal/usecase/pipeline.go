package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"ecommerce-analytics/internal/domain"
	"ecommerce-analytics/internal/etl"
)

// Window restricts a run to transactions between two dates. The end day is
// inclusive and zero bounds are open.
type Window struct {
	Start time.Time
	End   time.Time
}

// pipeline holds what every use case shares: the repository, logging,
// progress reporting, and the clock and id source for manifests.
type pipeline struct {
	repo     TransactionRepository
	logger   zerolog.Logger
	progress StageReporter
	now      func() time.Time
	newID    func() (string, error)
}

func newPipeline(repo TransactionRepository, logger zerolog.Logger) pipeline {
	return pipeline{
		repo:     repo,
		logger:   logger,
		progress: nopReporter{},
		now:      time.Now,
		newID:    newRunID,
	}
}

func newRunID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("could not generate run id: %w", err)
	}
	return id.String(), nil
}

func (p *pipeline) stage(name string) {
	p.progress.Describe(name)
	if err := p.progress.Add(1); err != nil {
		p.logger.Debug().Err(err).Msg("progress update failed")
	}
}

// load reads the source, cleans the table and applies the window.
func (p *pipeline) load(ctx context.Context, source string, window Window) ([]domain.Transaction, etl.CleanStats, error) {
	p.stage("loading")
	started := p.now()
	raw, err := p.repo.GetTransactions(ctx, source)
	if err != nil {
		return nil, etl.CleanStats{}, fmt.Errorf("could not get transactions: %w", err)
	}
	p.logger.Info().
		Str("source", source).
		Int("records", len(raw)).
		Dur("took", p.now().Sub(started)).
		Msg("transactions loaded")

	p.stage("cleaning")
	cleaned, stats := etl.Clean(raw)
	windowed := etl.FilterWindow(cleaned, window.Start, window.End)
	p.logger.Info().
		Int("duplicates", stats.Duplicates).
		Int("invalid", stats.Invalid).
		Int("kept", stats.Kept).
		Int("outside_window", len(cleaned)-len(windowed)).
		Msg("transactions cleaned")
	return windowed, stats, nil
}

type nopReporter struct{}

func (nopReporter) Describe(string) {}
func (nopReporter) Add(int) error { return nil }
