package gateway

import (
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecommerce-analytics/internal/domain"
)

func TestCSVTransactionRepository_GetTransactions(t *testing.T) {
	tests := []struct {
		name     string
		csvData  [][]string
		expected []domain.Transaction
		wantErr  bool
	}{
		{
			name: "valid transactions with product columns",
			csvData: [][]string{
				{"transaction_id", "customer_id", "date", "total_amount", "product_name", "category", "quantity"},
				{"T001", "C1", "2024-03-01 10:00:00", "150.00", "Mug", "Home", "3"},
				{"T002", "C2", "2024-03-02T11:30:00Z", "200.50", "Lamp", "Home", "1"},
			},
			expected: []domain.Transaction{
				{
					OrderID:     "T001",
					CustomerID:  "C1",
					Timestamp:   mustParseTime("2024-03-01T10:00:00Z"),
					Amount:      decimal.RequireFromString("150.00"),
					ProductName: "Mug",
					Category:    "Home",
					Quantity:    3,
				},
				{
					OrderID:     "T002",
					CustomerID:  "C2",
					Timestamp:   mustParseTime("2024-03-02T11:30:00Z"),
					Amount:      decimal.RequireFromString("200.50"),
					ProductName: "Lamp",
					Category:    "Home",
					Quantity:    1,
				},
			},
		},
		{
			name: "header aliases are case and space insensitive",
			csvData: [][]string{
				{"\ufeffOrder_ID ", " CustomerID", "ORDER_DATE", "Amount"},
				{"O1", "C9", "2024-01-05", "12.5"},
			},
			expected: []domain.Transaction{
				{
					OrderID:    "O1",
					CustomerID: "C9",
					Timestamp:  mustParseTime("2024-01-05T00:00:00Z"),
					Amount:     decimal.RequireFromString("12.5"),
				},
			},
		},
		{
			name: "online retail layout derives the line amount",
			csvData: [][]string{
				{"InvoiceNo", "StockCode", "Description", "Quantity", "InvoiceDate", "UnitPrice", "CustomerID", "Country"},
				{"536365", "85123A", "WHITE HANGING HEART", "6", "12/1/2010 8:26", "2.55", "17850", "United Kingdom"},
			},
			expected: []domain.Transaction{
				{
					OrderID:     "536365",
					CustomerID:  "17850",
					Timestamp:   mustParseTime("2010-12-01T08:26:00Z"),
					Amount:      decimal.RequireFromString("15.3"),
					ProductID:   "85123A",
					ProductName: "WHITE HANGING HEART",
					Quantity:    6,
					UnitPrice:   decimal.RequireFromString("2.55"),
				},
			},
		},
		{
			name: "empty file with header only",
			csvData: [][]string{
				{"transaction_id", "customer_id", "date", "total_amount"},
			},
			expected: nil,
		},
		{
			name: "invalid amount format",
			csvData: [][]string{
				{"transaction_id", "customer_id", "date", "total_amount"},
				{"T001", "C1", "2024-03-01", "invalid_amount"},
			},
			wantErr: true,
		},
		{
			name: "invalid time format",
			csvData: [][]string{
				{"transaction_id", "customer_id", "date", "total_amount"},
				{"T001", "C1", "invalid_time", "10"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpFile := createTempCSV(t, tt.csvData)

			repo := NewCSVTransactionRepository(DefaultColumns())
			got, err := repo.GetTransactions(context.Background(), tmpFile)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.Len(t, got, len(tt.expected))
			for i := range tt.expected {
				assertTransaction(t, tt.expected[i], got[i])
			}
		})
	}
}

func TestCSVTransactionRepository_MissingColumns(t *testing.T) {
	tmpFile := createTempCSV(t, [][]string{
		{"transaction_id", "date", "note"},
		{"T001", "2024-03-01", "x"},
	})

	_, err := NewCSVTransactionRepository(DefaultColumns()).GetTransactions(context.Background(), tmpFile)

	var missing *domain.MissingColumnsError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"customer id", "amount"}, missing.Columns)
	assert.Contains(t, err.Error(), "customer id, amount")
}

func TestCSVTransactionRepository_ErrorNamesLine(t *testing.T) {
	tmpFile := createTempCSV(t, [][]string{
		{"transaction_id", "customer_id", "date", "total_amount"},
		{"T001", "C1", "2024-03-01", "10"},
		{"T002", "C1", "2024-03-02", "ten"},
	})

	_, err := NewCSVTransactionRepository(DefaultColumns()).GetTransactions(context.Background(), tmpFile)

	require.Error(t, err)
	assert.Contains(t, err.Error(), ":3: could not parse amount 'ten'")
}

func TestCSVTransactionRepository_CustomColumns(t *testing.T) {
	tmpFile := createTempCSV(t, [][]string{
		{"ticket", "client", "sold_at", "total"},
		{"K1", "C1", "2024-03-01", "9.99"},
	})
	columns := DefaultColumns().Merge(Columns{
		Order:     []string{"ticket"},
		Customer:  []string{"client"},
		Timestamp: []string{"sold_at"},
		Amount:    []string{"total"},
	})

	got, err := NewCSVTransactionRepository(columns).GetTransactions(context.Background(), tmpFile)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "K1", got[0].OrderID)
	assert.True(t, got[0].Amount.Equal(decimal.RequireFromString("9.99")))
}

func TestCSVTransactionRepository_NormalizesIdentifiers(t *testing.T) {
	tmpFile := createTempCSV(t, [][]string{
		{"transaction_id", "customer_id", "date", "total_amount"},
		{"T1", "Jose\u0301", "2024-03-01", "1"},
		{"T2", "Jos\u00e9", "2024-03-02", "1"},
	})

	got, err := NewCSVTransactionRepository(DefaultColumns()).GetTransactions(context.Background(), tmpFile)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, got[0].CustomerID, got[1].CustomerID)
}

func TestCSVTransactionRepository_FileErrors(t *testing.T) {
	repo := NewCSVTransactionRepository(DefaultColumns())
	ctx := context.Background()

	t.Run("file not found", func(t *testing.T) {
		_, err := repo.GetTransactions(ctx, "nonexistent_file.csv")
		assert.Error(t, err)
	})

	t.Run("file with no header", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.csv")
		require.NoError(t, os.WriteFile(path, nil, 0o644))

		_, err := repo.GetTransactions(ctx, path)
		assert.Error(t, err)
	})
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2024-03-01T10:00:00+02:00", time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)},
		{"2024-03-01 10:00:00", time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
		{"2024-03-01T10:00:00", time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
		{"2024-03-01", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"12/1/2010 8:26", time.Date(2010, 12, 1, 8, 26, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimestamp(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}

	_, err := ParseTimestamp("yesterday")
	assert.Error(t, err)
}

// Helper functions

func createTempCSV(t testing.TB, data [][]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "transactions.csv")
	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()

	writer := csv.NewWriter(file)
	require.NoError(t, writer.WriteAll(data))
	return path
}

func mustParseTime(timeStr string) time.Time {
	t, err := time.Parse(time.RFC3339, timeStr)
	if err != nil {
		panic(err)
	}
	return t
}

func assertTransaction(t *testing.T, want, got domain.Transaction) {
	t.Helper()
	assert.Equal(t, want.OrderID, got.OrderID)
	assert.Equal(t, want.CustomerID, got.CustomerID)
	assert.True(t, want.Timestamp.Equal(got.Timestamp), "timestamp: want %s, got %s", want.Timestamp, got.Timestamp)
	assert.True(t, want.Amount.Equal(got.Amount), "amount: want %s, got %s", want.Amount, got.Amount)
	assert.Equal(t, want.ProductID, got.ProductID)
	assert.Equal(t, want.ProductName, got.ProductName)
	assert.Equal(t, want.Category, got.Category)
	assert.Equal(t, want.Quantity, got.Quantity)
	assert.True(t, want.UnitPrice.Equal(got.UnitPrice), "unit price: want %s, got %s", want.UnitPrice, got.UnitPrice)
}

// Benchmark tests

func BenchmarkGetTransactions(b *testing.B) {
	data := [][]string{{"transaction_id", "customer_id", "date", "total_amount"}}
	for i := 0; i < 1000; i++ {
		data = append(data, []string{"T" + string(rune('0'+i%10)), "C1", "2024-03-01T10:00:00Z", "150.00"})
	}
	tmpFile := createTempCSV(b, data)
	repo := NewCSVTransactionRepository(DefaultColumns())
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := repo.GetTransactions(ctx, tmpFile); err != nil {
			b.Fatalf("Error in benchmark: %v", err)
		}
	}
}
