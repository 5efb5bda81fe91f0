package kpi

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"ecommerce-analytics/internal/domain"
)

type dayAcc struct {
	revenue   decimal.Decimal
	orders    map[string]struct{}
	customers map[string]struct{}
}

// DailyMetrics aggregates revenue, orders and buyers per calendar day.
// Days without sales are not emitted.
func DailyMetrics(transactions []domain.Transaction) []domain.DailyMetrics {
	byDay := make(map[time.Time]*dayAcc)
	for _, tx := range transactions {
		d := tx.Day()
		acc, ok := byDay[d]
		if !ok {
			acc = &dayAcc{
				revenue:   decimal.Zero,
				orders:    make(map[string]struct{}),
				customers: make(map[string]struct{}),
			}
			byDay[d] = acc
		}
		acc.revenue = acc.revenue.Add(tx.Amount)
		acc.orders[tx.OrderID] = struct{}{}
		acc.customers[tx.CustomerID] = struct{}{}
	}

	days := make([]domain.DailyMetrics, 0, len(byDay))
	for d, acc := range byDay {
		days = append(days, domain.DailyMetrics{
			Date:            d,
			Revenue:         acc.revenue,
			Orders:          len(acc.orders),
			UniqueCustomers: len(acc.customers),
			AverageBasket:   divide(acc.revenue, len(acc.orders)),
		})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })
	return days
}

// WeekdayBreakdown aggregates sales per day of the week, Monday first. All
// seven days are present even without sales.
func WeekdayBreakdown(transactions []domain.Transaction) []domain.WeekdaySales {
	revenue := make([]decimal.Decimal, 7)
	orders := make([]map[string]struct{}, 7)
	for i := range orders {
		revenue[i] = decimal.Zero
		orders[i] = make(map[string]struct{})
	}
	for _, tx := range transactions {
		wd := tx.Timestamp.Weekday()
		revenue[wd] = revenue[wd].Add(tx.Amount)
		orders[wd][tx.OrderID] = struct{}{}
	}

	weekdays := make([]domain.WeekdaySales, 0, 7)
	for i := 0; i < 7; i++ {
		wd := time.Weekday((i + 1) % 7)
		n := len(orders[wd])
		weekdays = append(weekdays, domain.WeekdaySales{
			Weekday:       wd,
			Name:          wd.String(),
			Revenue:       revenue[wd],
			Orders:        n,
			AverageBasket: divide(revenue[wd], n),
		})
	}
	return weekdays
}
