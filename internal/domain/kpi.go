package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// KPISummary holds the headline sales indicators.
type KPISummary struct {
	TotalRevenue       decimal.Decimal `json:"total_revenue"`
	TotalCustomers     int             `json:"total_customers"`
	TotalOrders        int             `json:"total_orders"`
	AverageBasket      decimal.Decimal `json:"average_basket"`
	MedianBasket       decimal.Decimal `json:"median_basket"`
	OrdersPerCustomer  float64         `json:"orders_per_customer"`
	RevenuePerCustomer decimal.Decimal `json:"revenue_per_customer"`
}

// PeriodRevenue is revenue for one period with growth against the previous one.
type PeriodRevenue struct {
	Period    string              `json:"period"`
	Revenue   decimal.Decimal     `json:"revenue"`
	GrowthPct decimal.NullDecimal `json:"growth_pct"`
}

// ProductSales aggregates revenue for one product.
type ProductSales struct {
	ProductName string          `json:"product_name"`
	Category    string          `json:"category"`
	Quantity    int             `json:"total_quantity"`
	Revenue     decimal.Decimal `json:"revenue"`
	Orders      int             `json:"orders"`
}

// CategorySales aggregates revenue for one category.
type CategorySales struct {
	Category     string          `json:"category"`
	Revenue      decimal.Decimal `json:"revenue"`
	Orders       int             `json:"orders"`
	AverageOrder decimal.Decimal `json:"average_order"`
}

// DailyMetrics aggregates one calendar day.
type DailyMetrics struct {
	Date            time.Time       `json:"date"`
	Revenue         decimal.Decimal `json:"revenue"`
	Orders          int             `json:"orders"`
	UniqueCustomers int             `json:"unique_customers"`
	AverageBasket   decimal.Decimal `json:"average_basket"`
}

// WeekdaySales aggregates one day of the week across the whole table.
type WeekdaySales struct {
	Weekday       time.Weekday    `json:"-"`
	Name          string          `json:"weekday"`
	Revenue       decimal.Decimal `json:"revenue"`
	Orders        int             `json:"orders"`
	AverageBasket decimal.Decimal `json:"average_basket"`
}

// CustomerMix splits a month's buyers into first-time and returning customers.
type CustomerMix struct {
	Month              string          `json:"month"`
	NewCustomers       int             `json:"new_customers"`
	NewRevenue         decimal.Decimal `json:"new_revenue"`
	ReturningCustomers int             `json:"returning_customers"`
	ReturningRevenue   decimal.Decimal `json:"returning_revenue"`
}

// CustomerLifetime is the lifetime value of one customer.
type CustomerLifetime struct {
	CustomerID    string          `json:"customer_id"`
	Orders        int             `json:"orders"`
	LifetimeValue decimal.Decimal `json:"lifetime_value"`
	FirstOrder    time.Time       `json:"first_order"`
	LastOrder     time.Time       `json:"last_order"`
	LifespanDays  int             `json:"lifespan_days"`
}

// CohortRetention tracks a first-order-month cohort over the following months.
// Index i of Active and RetentionPct is i months after the cohort month.
type CohortRetention struct {
	Cohort       string    `json:"cohort"`
	Size         int       `json:"size"`
	Active       []int     `json:"active"`
	RetentionPct []float64 `json:"retention_pct"`
}

// KPIReport bundles every KPI table of a run.
type KPIReport struct {
	Summary          KPISummary         `json:"summary"`
	Revenue          []PeriodRevenue    `json:"revenue_by_period"`
	TopProducts      []ProductSales     `json:"top_products"`
	Categories       []CategorySales    `json:"revenue_by_category"`
	Daily            []DailyMetrics     `json:"daily_metrics"`
	Weekdays         []WeekdaySales     `json:"weekdays"`
	CustomerMix      []CustomerMix      `json:"new_vs_returning"`
	CustomerLifetime []CustomerLifetime `json:"customer_lifetime"`
	Cohorts          []CohortRetention  `json:"cohort_retention"`
}
