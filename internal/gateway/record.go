package gateway

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"

	"ecommerce-analytics/internal/domain"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"1/2/2006 15:04",
}

// ParseTimestamp accepts RFC3339, the common SQL and ISO local layouts, a bare
// date and the m/d/yyyy hh:mm layout of the Online Retail export. Values
// without a zone are read as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("could not parse timestamp '%s'", s)
}

func field(record []string, pos int) string {
	if pos < 0 || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}

// parse builds a transaction from one record. Identifiers are NFC normalised so
// visually identical ids group together. Empty amount and timestamp cells are
// left zero for the cleaning stage to drop.
func (l layout) parse(record []string) (domain.Transaction, error) {
	tx := domain.Transaction{
		OrderID:     norm.NFC.String(field(record, l.order)),
		CustomerID:  norm.NFC.String(field(record, l.customer)),
		ProductID:   field(record, l.productID),
		ProductName: field(record, l.productName),
		Category:    field(record, l.category),
	}

	if raw := field(record, l.amount); raw != "" {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return domain.Transaction{}, fmt.Errorf("could not parse amount '%s': %w", raw, err)
		}
		tx.Amount = amount
	}

	if raw := field(record, l.timestamp); raw != "" {
		ts, err := ParseTimestamp(raw)
		if err != nil {
			return domain.Transaction{}, err
		}
		tx.Timestamp = ts
	}

	if raw := field(record, l.qty); raw != "" {
		qty, err := strconv.Atoi(raw)
		if err != nil {
			return domain.Transaction{}, fmt.Errorf("could not parse quantity '%s': %w", raw, err)
		}
		tx.Quantity = qty
	}
	if raw := field(record, l.unitPrice); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return domain.Transaction{}, fmt.Errorf("could not parse unit price '%s': %w", raw, err)
		}
		tx.UnitPrice = price
	}
	if l.deriveAmount {
		tx.Amount = tx.UnitPrice.Mul(decimal.NewFromInt(int64(tx.Quantity)))
	}
	return tx, nil
}
