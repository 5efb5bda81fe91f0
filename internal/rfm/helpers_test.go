package rfm

import (
	"time"

	"github.com/shopspring/decimal"

	"ecommerce-analytics/internal/domain"
)

var refDate = time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

func tx(order, customer string, at time.Time, amount string) domain.Transaction {
	return domain.Transaction{
		OrderID:    order,
		CustomerID: customer,
		Timestamp:  at,
		Amount:     decimal.RequireFromString(amount),
	}
}

func daysBefore(ref time.Time, days int) time.Time {
	return ref.AddDate(0, 0, -days)
}

// scenarioTransactions: A buys often and recently, B once two years ago,
// C twice a month ago.
func scenarioTransactions() []domain.Transaction {
	return []domain.Transaction{
		tx("A1", "A", daysBefore(refDate, 9), "200"),
		tx("A2", "A", daysBefore(refDate, 8), "200"),
		tx("A3", "A", daysBefore(refDate, 7), "200"),
		tx("A4", "A", daysBefore(refDate, 6), "200"),
		tx("A5", "A", daysBefore(refDate, 5), "200"),
		tx("B1", "B", time.Date(2022, 6, 30, 0, 0, 0, 0, time.UTC), "10"),
		tx("C1", "C", daysBefore(refDate, 30), "20"),
		tx("C2", "C", daysBefore(refDate, 30), "30"),
	}
}
