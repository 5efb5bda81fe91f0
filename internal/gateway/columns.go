package gateway

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"ecommerce-analytics/internal/domain"
)

// Columns lists the accepted header names for each transaction field. The
// first four fields are required, the product fields are optional.
type Columns struct {
	Order     []string `yaml:"order"`
	Customer  []string `yaml:"customer"`
	Timestamp []string `yaml:"timestamp"`
	Amount    []string `yaml:"amount"`

	ProductID   []string `yaml:"product_id"`
	ProductName []string `yaml:"product_name"`
	Category    []string `yaml:"category"`
	Quantity    []string `yaml:"quantity"`
	UnitPrice   []string `yaml:"unit_price"`
}

// DefaultColumns covers the retail exports the pipeline has been fed so far,
// including the Online Retail layout.
func DefaultColumns() Columns {
	return Columns{
		Order:       []string{"transaction_id", "invoiceno", "order_id"},
		Customer:    []string{"customer_id", "customerid"},
		Timestamp:   []string{"date", "invoicedate", "order_date", "timestamp"},
		Amount:      []string{"total_amount", "totalamount", "amount"},
		ProductID:   []string{"product_id", "stockcode"},
		ProductName: []string{"product_name", "description"},
		Category:    []string{"category"},
		Quantity:    []string{"quantity"},
		UnitPrice:   []string{"unit_price", "unitprice"},
	}
}

// Merge replaces every alias list that is set in override.
func (c Columns) Merge(override Columns) Columns {
	pick := func(base, o []string) []string {
		if len(o) > 0 {
			return o
		}
		return base
	}
	return Columns{
		Order:       pick(c.Order, override.Order),
		Customer:    pick(c.Customer, override.Customer),
		Timestamp:   pick(c.Timestamp, override.Timestamp),
		Amount:      pick(c.Amount, override.Amount),
		ProductID:   pick(c.ProductID, override.ProductID),
		ProductName: pick(c.ProductName, override.ProductName),
		Category:    pick(c.Category, override.Category),
		Quantity:    pick(c.Quantity, override.Quantity),
		UnitPrice:   pick(c.UnitPrice, override.UnitPrice),
	}
}

// normalizeName folds a header for matching: NFC, trimmed, lower case.
func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFC.String(s)))
}

// layout is the position of each field in a record, -1 when absent.
type layout struct {
	order, customer, timestamp, amount              int
	productID, productName, category, qty, unitPrice int

	// deriveAmount is set when the table has no amount column and the line
	// total is quantity times unit price.
	deriveAmount bool
}

// resolve maps a header row to field positions. All missing required
// columns are reported together.
func (c Columns) resolve(source string, header []string) (layout, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		name := normalizeName(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}
	find := func(aliases []string) int {
		for _, a := range aliases {
			if i, ok := index[normalizeName(a)]; ok {
				return i
			}
		}
		return -1
	}

	l := layout{
		order:       find(c.Order),
		customer:    find(c.Customer),
		timestamp:   find(c.Timestamp),
		amount:      find(c.Amount),
		productID:   find(c.ProductID),
		productName: find(c.ProductName),
		category:    find(c.Category),
		qty:         find(c.Quantity),
		unitPrice:   find(c.UnitPrice),
	}

	if l.amount < 0 && l.qty >= 0 && l.unitPrice >= 0 {
		l.deriveAmount = true
	}

	var missing []string
	for _, req := range []struct {
		name string
		pos  int
	}{
		{"order id", l.order},
		{"customer id", l.customer},
		{"timestamp", l.timestamp},
		{"amount", l.amount},
	} {
		if req.pos < 0 && !(req.name == "amount" && l.deriveAmount) {
			missing = append(missing, req.name)
		}
	}
	if len(missing) > 0 {
		return layout{}, &domain.MissingColumnsError{Source: source, Columns: missing}
	}
	return l, nil
}
