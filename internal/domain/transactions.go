package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a single order line read from the transaction table.
// Only OrderID, CustomerID, Timestamp and Amount are required; the product
// fields are filled when the source carries them and feed the KPI reports.
type Transaction struct {
	OrderID    string          `json:"order_id"`
	CustomerID string          `json:"customer_id"`
	Timestamp  time.Time       `json:"timestamp"`
	Amount     decimal.Decimal `json:"amount"`

	ProductID   string          `json:"product_id,omitempty"`
	ProductName string          `json:"product_name,omitempty"`
	Category    string          `json:"category,omitempty"`
	Quantity    int             `json:"quantity,omitempty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// YearMonth returns the calendar month of the transaction as "2006-01".
func (t Transaction) YearMonth() string {
	return t.Timestamp.Format("2006-01")
}

// ISOWeek returns the ISO 8601 week as "2006-W01".
func (t Transaction) ISOWeek() string {
	year, week := t.Timestamp.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// IsWeekend reports whether the transaction happened on a Saturday or Sunday.
func (t Transaction) IsWeekend() bool {
	wd := t.Timestamp.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// Day truncates the timestamp to midnight in its own location.
func (t Transaction) Day() time.Time {
	y, m, d := t.Timestamp.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Timestamp.Location())
}

// CalendarDays counts the date boundaries between from and to, each taken in
// its own location. Negative when to falls on an earlier date.
func CalendarDays(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	start := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	end := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start) / (24 * time.Hour))
}
