package kpi

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"ecommerce-analytics/internal/domain"
)

// firstMonths returns the month of each customer's first purchase.
func firstMonths(transactions []domain.Transaction) map[string]string {
	first := make(map[string]time.Time)
	for _, tx := range transactions {
		if t, ok := first[tx.CustomerID]; !ok || tx.Timestamp.Before(t) {
			first[tx.CustomerID] = tx.Timestamp
		}
	}
	months := make(map[string]string, len(first))
	for id, t := range first {
		months[id] = t.Format("2006-01")
	}
	return months
}

// NewVsReturning splits each month's buyers into customers whose first
// purchase falls in that month and customers who bought before.
func NewVsReturning(transactions []domain.Transaction) []domain.CustomerMix {
	first := firstMonths(transactions)

	type monthAcc struct {
		mix       domain.CustomerMix
		customers map[string]struct{}
	}
	byMonth := make(map[string]*monthAcc)
	for _, tx := range transactions {
		month := tx.YearMonth()
		acc, ok := byMonth[month]
		if !ok {
			acc = &monthAcc{
				mix:       domain.CustomerMix{Month: month, NewRevenue: decimal.Zero, ReturningRevenue: decimal.Zero},
				customers: make(map[string]struct{}),
			}
			byMonth[month] = acc
		}
		_, seen := acc.customers[tx.CustomerID]
		acc.customers[tx.CustomerID] = struct{}{}
		if first[tx.CustomerID] == month {
			acc.mix.NewRevenue = acc.mix.NewRevenue.Add(tx.Amount)
			if !seen {
				acc.mix.NewCustomers++
			}
			continue
		}
		acc.mix.ReturningRevenue = acc.mix.ReturningRevenue.Add(tx.Amount)
		if !seen {
			acc.mix.ReturningCustomers++
		}
	}

	mix := make([]domain.CustomerMix, 0, len(byMonth))
	for _, acc := range byMonth {
		mix = append(mix, acc.mix)
	}
	sort.Slice(mix, func(i, j int) bool { return mix[i].Month < mix[j].Month })
	return mix
}

// CustomerLifetime computes lifetime value per customer, highest value first
// and ties broken by customer id.
func CustomerLifetime(transactions []domain.Transaction) []domain.CustomerLifetime {
	type acc struct {
		ltv    domain.CustomerLifetime
		orders map[string]struct{}
	}
	byCustomer := make(map[string]*acc)
	for _, tx := range transactions {
		a, ok := byCustomer[tx.CustomerID]
		if !ok {
			a = &acc{
				ltv: domain.CustomerLifetime{
					CustomerID:    tx.CustomerID,
					LifetimeValue: decimal.Zero,
					FirstOrder:    tx.Timestamp,
					LastOrder:     tx.Timestamp,
				},
				orders: make(map[string]struct{}),
			}
			byCustomer[tx.CustomerID] = a
		}
		a.ltv.LifetimeValue = a.ltv.LifetimeValue.Add(tx.Amount)
		a.orders[tx.OrderID] = struct{}{}
		if tx.Timestamp.Before(a.ltv.FirstOrder) {
			a.ltv.FirstOrder = tx.Timestamp
		}
		if tx.Timestamp.After(a.ltv.LastOrder) {
			a.ltv.LastOrder = tx.Timestamp
		}
	}

	lifetimes := make([]domain.CustomerLifetime, 0, len(byCustomer))
	for _, a := range byCustomer {
		a.ltv.Orders = len(a.orders)
		a.ltv.LifespanDays = domain.CalendarDays(a.ltv.FirstOrder, a.ltv.LastOrder)
		lifetimes = append(lifetimes, a.ltv)
	}
	sort.Slice(lifetimes, func(i, j int) bool {
		if c := lifetimes[i].LifetimeValue.Cmp(lifetimes[j].LifetimeValue); c != 0 {
			return c > 0
		}
		return lifetimes[i].CustomerID < lifetimes[j].CustomerID
	})
	return lifetimes
}

// CohortRetention groups customers by the month of their first purchase and
// counts how many of them buy again in each following month, up to the last
// month present in the data.
func CohortRetention(transactions []domain.Transaction) []domain.CohortRetention {
	if len(transactions) == 0 {
		return nil
	}
	first := firstMonths(transactions)

	last := transactions[0].Timestamp
	active := make(map[string]map[int]map[string]struct{})
	sizes := make(map[string]int)
	for _, id := range sortedKeys(first) {
		cohort := first[id]
		sizes[cohort]++
		if active[cohort] == nil {
			active[cohort] = make(map[int]map[string]struct{})
		}
	}
	for _, tx := range transactions {
		if tx.Timestamp.After(last) {
			last = tx.Timestamp
		}
		cohort := first[tx.CustomerID]
		offset := monthsBetween(cohort, tx.YearMonth())
		if active[cohort][offset] == nil {
			active[cohort][offset] = make(map[string]struct{})
		}
		active[cohort][offset][tx.CustomerID] = struct{}{}
	}
	lastMonth := last.Format("2006-01")

	cohorts := make([]domain.CohortRetention, 0, len(sizes))
	for _, cohort := range sortedKeys(sizes) {
		span := monthsBetween(cohort, lastMonth) + 1
		row := domain.CohortRetention{
			Cohort:       cohort,
			Size:         sizes[cohort],
			Active:       make([]int, span),
			RetentionPct: make([]float64, span),
		}
		for offset := 0; offset < span; offset++ {
			n := len(active[cohort][offset])
			row.Active[offset] = n
			row.RetentionPct[offset] = round1(float64(n) * 100 / float64(row.Size))
		}
		cohorts = append(cohorts, row)
	}
	return cohorts
}

// monthsBetween counts calendar months from one "2006-01" label to another.
func monthsBetween(from, to string) int {
	a, _ := time.Parse("2006-01", from)
	b, _ := time.Parse("2006-01", to)
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
