// Package kpi computes e-commerce key performance indicators over a cleaned
// transaction table.
package kpi

import (
	"sort"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"

	"ecommerce-analytics/internal/domain"
)

// orderTotals sums amounts per order id, returned in order id order.
func orderTotals(transactions []domain.Transaction) []decimal.Decimal {
	byOrder := make(map[string]decimal.Decimal)
	for _, tx := range transactions {
		total, ok := byOrder[tx.OrderID]
		if !ok {
			total = decimal.Zero
		}
		byOrder[tx.OrderID] = total.Add(tx.Amount)
	}
	ids := make([]string, 0, len(byOrder))
	for id := range byOrder {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	totals := make([]decimal.Decimal, len(ids))
	for i, id := range ids {
		totals[i] = byOrder[id]
	}
	return totals
}

func divide(sum decimal.Decimal, n int) decimal.Decimal {
	if n == 0 {
		return decimal.Zero
	}
	return sum.Div(decimal.NewFromInt(int64(n))).Round(2)
}

// Summary computes the headline indicators. Baskets are measured per order.
func Summary(transactions []domain.Transaction) domain.KPISummary {
	revenue := decimal.Zero
	customers := make(map[string]struct{})
	for _, tx := range transactions {
		revenue = revenue.Add(tx.Amount)
		customers[tx.CustomerID] = struct{}{}
	}

	totals := orderTotals(transactions)
	floats := make([]float64, len(totals))
	for i, t := range totals {
		floats[i] = t.InexactFloat64()
	}
	median := decimal.Zero
	if m, err := stats.Median(floats); err == nil {
		median = decimal.NewFromFloat(m).Round(2)
	}

	summary := domain.KPISummary{
		TotalRevenue:       revenue,
		TotalCustomers:     len(customers),
		TotalOrders:        len(totals),
		AverageBasket:      divide(revenue, len(totals)),
		MedianBasket:       median,
		RevenuePerCustomer: divide(revenue, len(customers)),
	}
	if len(customers) > 0 {
		summary.OrdersPerCustomer = round2(float64(len(totals)) / float64(len(customers)))
	}
	return summary
}
