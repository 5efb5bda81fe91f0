package usecase

import (
	"context"

	"ecommerce-analytics/internal/domain"
)

// TransactionRepository defines the interface for fetching transaction data.
// The usecase layer depends on this interface, not on a concrete implementation.
// The source is a file path or a DSN, depending on the implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go
type TransactionRepository interface {
	GetTransactions(ctx context.Context, source string) ([]domain.Transaction, error)
}

// ResultSink persists the outcome of an RFM run.
type ResultSink interface {
	SaveRFM(ctx context.Context, result *domain.RFMResult) error
}

// KPISink persists a KPI report.
type KPISink interface {
	SaveKPI(ctx context.Context, report *domain.KPIReport) error
}

// TransactionSink persists a cleaned transaction table.
type TransactionSink interface {
	SaveTransactions(ctx context.Context, transactions []domain.Transaction) error
}

// StageReporter receives one tick per pipeline stage. A progress bar
// satisfies it.
type StageReporter interface {
	Describe(description string)
	Add(n int) error
}
