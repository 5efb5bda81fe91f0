// Package rfm computes Recency/Frequency/Monetary profiles, scores them
// against the customer population and assigns marketing segments.
package rfm

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"ecommerce-analytics/internal/domain"
)

type customerAccumulator struct {
	last     time.Time
	orders   map[string]struct{}
	monetary decimal.Decimal
}

// ReferenceDate returns the latest transaction timestamp.
func ReferenceDate(transactions []domain.Transaction) (time.Time, error) {
	if len(transactions) == 0 {
		return time.Time{}, domain.ErrNoTransactions
	}
	ref := transactions[0].Timestamp
	for _, tx := range transactions[1:] {
		if tx.Timestamp.After(ref) {
			ref = tx.Timestamp
		}
	}
	return ref, nil
}

// Aggregate builds one profile per customer, sorted by customer id.
// A zero reference date means "latest transaction in the table". Recency
// counts calendar days, so a purchase on the reference day has recency 0.
// Amounts are summed as given; invalid amounts must be filtered beforehand.
func Aggregate(transactions []domain.Transaction, reference time.Time) ([]domain.CustomerProfile, error) {
	if len(transactions) == 0 {
		return nil, domain.ErrNoTransactions
	}
	if reference.IsZero() {
		reference, _ = ReferenceDate(transactions)
	}

	byCustomer := make(map[string]*customerAccumulator)
	for i, tx := range transactions {
		if tx.CustomerID == "" || tx.OrderID == "" {
			return nil, fmt.Errorf("transaction %d: %w", i, domain.ErrMissingField)
		}
		acc, ok := byCustomer[tx.CustomerID]
		if !ok {
			acc = &customerAccumulator{
				last:     tx.Timestamp,
				orders:   make(map[string]struct{}),
				monetary: decimal.Zero,
			}
			byCustomer[tx.CustomerID] = acc
		}
		if tx.Timestamp.After(acc.last) {
			acc.last = tx.Timestamp
		}
		acc.orders[tx.OrderID] = struct{}{}
		acc.monetary = acc.monetary.Add(tx.Amount)
	}

	profiles := make([]domain.CustomerProfile, 0, len(byCustomer))
	for id, acc := range byCustomer {
		profiles = append(profiles, domain.CustomerProfile{
			CustomerID:   id,
			LastPurchase: acc.last,
			Frequency:    len(acc.orders),
			Monetary:     acc.monetary,
		})
	}
	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].CustomerID < profiles[j].CustomerID
	})

	for i := range profiles {
		p := &profiles[i]
		recency := domain.CalendarDays(p.LastPurchase, reference)
		if recency < 0 {
			return nil, fmt.Errorf("customer %s last purchased %s, reference %s: %w",
				p.CustomerID, p.LastPurchase.Format(time.RFC3339), reference.Format(time.DateOnly),
				domain.ErrReferenceBeforePurchase)
		}
		p.Recency = recency
	}
	return profiles, nil
}
