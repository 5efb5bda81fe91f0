package gateway

import (
	"io"

	"ecommerce-analytics/internal/domain"
)

var transactionHeader = []string{
	"transaction_id", "customer_id", "date", "total_amount",
	"product_id", "product_name", "category", "quantity", "unit_price",
}

// WriteTransactions writes a transaction table that the CSV repository can
// read back with the default columns. Absent quantity and unit price are
// left empty.
func WriteTransactions(w io.Writer, transactions []domain.Transaction) error {
	rows := make([][]string, 0, len(transactions))
	for _, tx := range transactions {
		var qty, price string
		if tx.Quantity != 0 {
			qty = formatInt(tx.Quantity)
		}
		if !tx.UnitPrice.IsZero() {
			price = formatDecimal(tx.UnitPrice)
		}
		rows = append(rows, []string{
			tx.OrderID,
			tx.CustomerID,
			formatTime(tx.Timestamp),
			formatDecimal(tx.Amount),
			tx.ProductID,
			tx.ProductName,
			tx.Category,
			qty,
			price,
		})
	}
	return writeTable(w, transactionHeader, rows)
}
