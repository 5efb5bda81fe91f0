package gateway

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"ecommerce-analytics/internal/domain"
)

// CSVTransactionRepository implements the TransactionRepository interface for CSV files.
type CSVTransactionRepository struct {
	columns Columns
}

// NewCSVTransactionRepository creates a new repository instance resolving
// headers with the given column aliases.
func NewCSVTransactionRepository(columns Columns) *CSVTransactionRepository {
	return &CSVTransactionRepository{columns: columns}
}

// GetTransactions reads and parses a transaction CSV file. The header row
// selects the columns; a row that cannot be parsed fails the whole read.
func (r *CSVTransactionRepository) GetTransactions(ctx context.Context, path string) ([]domain.Transaction, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open transaction file %s: %w", path, err)
	}
	defer file.Close()

	return r.read(ctx, path, file)
}

func (r *CSVTransactionRepository) read(ctx context.Context, source string, in io.Reader) ([]domain.Transaction, error) {
	reader := csv.NewReader(in)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", source, err)
	}
	l, err := r.columns.resolve(source, header)
	if err != nil {
		return nil, err
	}

	var transactions []domain.Transaction
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record from %s: %w", source, err)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		tx, err := l.parse(record)
		if err != nil {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("%s:%d: %w", source, line, err)
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}
