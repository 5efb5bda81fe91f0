// Package etl prepares raw transaction tables for analysis.
package etl

import (
	"time"

	"ecommerce-analytics/internal/domain"
)

// CleanStats counts what Clean removed.
type CleanStats struct {
	Read       int `json:"read"`
	Duplicates int `json:"duplicates"`
	Invalid    int `json:"invalid"`
	Kept       int `json:"kept"`
}

// Dropped is the number of records removed for any reason.
func (s CleanStats) Dropped() int {
	return s.Duplicates + s.Invalid
}

// Clean removes duplicate transaction ids (first occurrence wins) and rows
// that cannot take part in revenue analysis: non-positive amounts, quantities
// or unit prices, and missing customer ids or timestamps.
//
// Invoice style tables repeat the order id on every line, so duplicates are
// keyed on the order id together with the product id. Rows without an order
// id are invalid and never take part in deduplication.
func Clean(transactions []domain.Transaction) ([]domain.Transaction, CleanStats) {
	stats := CleanStats{Read: len(transactions)}
	seen := make(map[string]struct{}, len(transactions))
	cleaned := make([]domain.Transaction, 0, len(transactions))

	for _, tx := range transactions {
		if tx.OrderID == "" {
			stats.Invalid++
			continue
		}
		key := tx.OrderID + "\x00" + tx.ProductID
		if _, dup := seen[key]; dup {
			stats.Duplicates++
			continue
		}
		seen[key] = struct{}{}

		if !valid(tx) {
			stats.Invalid++
			continue
		}
		cleaned = append(cleaned, tx)
	}
	stats.Kept = len(cleaned)
	return cleaned, stats
}

// valid treats a zero quantity or unit price as "not provided".
func valid(tx domain.Transaction) bool {
	if tx.CustomerID == "" || tx.Timestamp.IsZero() {
		return false
	}
	return tx.Amount.IsPositive() && tx.Quantity >= 0 && !tx.UnitPrice.IsNegative()
}

// FilterWindow keeps transactions between start and end. The end date is
// inclusive for its whole day. A zero bound leaves that side open.
func FilterWindow(transactions []domain.Transaction, start, end time.Time) []domain.Transaction {
	if start.IsZero() && end.IsZero() {
		return transactions
	}
	var filtered []domain.Transaction
	for _, tx := range transactions {
		ts := tx.Timestamp
		if !start.IsZero() && ts.Before(start) {
			continue
		}
		if !end.IsZero() && !ts.Before(end.Add(24*time.Hour)) {
			continue
		}
		filtered = append(filtered, tx)
	}
	return filtered
}
