package kpi

import (
	"fmt"
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"ecommerce-analytics/internal/domain"
)

// Period is the granularity of a revenue time series.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// ParsePeriod accepts the long names and the single-letter D/W/M/Y forms.
func ParsePeriod(s string) (Period, error) {
	switch s {
	case "day", "D", "d":
		return PeriodDay, nil
	case "week", "W", "w":
		return PeriodWeek, nil
	case "month", "M", "m", "":
		return PeriodMonth, nil
	case "year", "Y", "y":
		return PeriodYear, nil
	}
	return "", fmt.Errorf("unknown period %q (want day, week, month or year)", s)
}

// Key returns the sortable label of the period containing tx.
func (p Period) Key(tx domain.Transaction) string {
	switch p {
	case PeriodDay:
		return tx.Timestamp.Format("2006-01-02")
	case PeriodWeek:
		return tx.ISOWeek()
	case PeriodYear:
		return tx.Timestamp.Format("2006")
	default:
		return tx.YearMonth()
	}
}

// RevenueByPeriod sums revenue per period in chronological order, with growth
// in percent against the previous period.
func RevenueByPeriod(transactions []domain.Transaction, period Period) []domain.PeriodRevenue {
	byPeriod := make(map[string]decimal.Decimal)
	for _, tx := range transactions {
		key := period.Key(tx)
		sum, ok := byPeriod[key]
		if !ok {
			sum = decimal.Zero
		}
		byPeriod[key] = sum.Add(tx.Amount)
	}

	keys := make([]string, 0, len(byPeriod))
	for k := range byPeriod {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	series := make([]domain.PeriodRevenue, len(keys))
	for i, k := range keys {
		series[i] = domain.PeriodRevenue{Period: k, Revenue: byPeriod[k]}
		if i == 0 {
			continue
		}
		prev := series[i-1].Revenue
		if prev.IsZero() {
			continue
		}
		growth := series[i].Revenue.Sub(prev).Mul(decimal.NewFromInt(100)).Div(prev).Round(2)
		series[i].GrowthPct = decimal.NewNullDecimal(growth)
	}
	return series
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
