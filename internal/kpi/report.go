package kpi

import "ecommerce-analytics/internal/domain"

// Options selects the period granularity and the size of the product ranking.
type Options struct {
	Period Period
	TopN   int
}

// DefaultOptions reports monthly revenue and the ten best selling products.
func DefaultOptions() Options {
	return Options{Period: PeriodMonth, TopN: 10}
}

// Build computes every KPI table over the given transactions.
func Build(transactions []domain.Transaction, opts Options) domain.KPIReport {
	if opts.Period == "" {
		opts.Period = PeriodMonth
	}
	return domain.KPIReport{
		Summary:          Summary(transactions),
		Revenue:          RevenueByPeriod(transactions, opts.Period),
		TopProducts:      TopProducts(transactions, opts.TopN),
		Categories:       RevenueByCategory(transactions),
		Daily:            DailyMetrics(transactions),
		Weekdays:         WeekdayBreakdown(transactions),
		CustomerMix:      NewVsReturning(transactions),
		CustomerLifetime: CustomerLifetime(transactions),
		Cohorts:          CohortRetention(transactions),
	}
}
