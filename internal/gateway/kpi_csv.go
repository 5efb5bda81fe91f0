package gateway

import (
	"io"
	"strconv"
	"strings"

	"ecommerce-analytics/internal/domain"
)

// kpiTables maps each KPI output file to the writer producing it.
var kpiTables = []struct {
	name  string
	write func(io.Writer, *domain.KPIReport) error
}{
	{"kpi_revenue.csv", writeRevenue},
	{"kpi_top_products.csv", writeTopProducts},
	{"kpi_categories.csv", writeCategories},
	{"kpi_daily.csv", writeDaily},
	{"kpi_weekdays.csv", writeWeekdays},
	{"kpi_new_vs_returning.csv", writeCustomerMix},
	{"kpi_customer_lifetime.csv", writeCustomerLifetime},
	{"kpi_cohorts.csv", writeCohorts},
}

func writeRevenue(w io.Writer, r *domain.KPIReport) error {
	rows := make([][]string, 0, len(r.Revenue))
	for _, p := range r.Revenue {
		rows = append(rows, []string{p.Period, formatDecimal(p.Revenue), formatNullDecimal(p.GrowthPct)})
	}
	return writeTable(w, []string{"period", "revenue", "growth_pct"}, rows)
}

func writeTopProducts(w io.Writer, r *domain.KPIReport) error {
	rows := make([][]string, 0, len(r.TopProducts))
	for _, p := range r.TopProducts {
		rows = append(rows, []string{
			p.ProductName, p.Category, formatInt(p.Quantity), formatDecimal(p.Revenue), formatInt(p.Orders),
		})
	}
	return writeTable(w, []string{"product_name", "category", "total_quantity", "revenue", "orders"}, rows)
}

func writeCategories(w io.Writer, r *domain.KPIReport) error {
	rows := make([][]string, 0, len(r.Categories))
	for _, c := range r.Categories {
		rows = append(rows, []string{c.Category, formatDecimal(c.Revenue), formatInt(c.Orders), formatDecimal(c.AverageOrder)})
	}
	return writeTable(w, []string{"category", "revenue", "orders", "average_order"}, rows)
}

func writeDaily(w io.Writer, r *domain.KPIReport) error {
	rows := make([][]string, 0, len(r.Daily))
	for _, d := range r.Daily {
		rows = append(rows, []string{
			d.Date.Format("2006-01-02"), formatDecimal(d.Revenue), formatInt(d.Orders),
			formatInt(d.UniqueCustomers), formatDecimal(d.AverageBasket),
		})
	}
	return writeTable(w, []string{"date", "revenue", "orders", "unique_customers", "average_basket"}, rows)
}

func writeWeekdays(w io.Writer, r *domain.KPIReport) error {
	rows := make([][]string, 0, len(r.Weekdays))
	for _, d := range r.Weekdays {
		rows = append(rows, []string{d.Name, formatDecimal(d.Revenue), formatInt(d.Orders), formatDecimal(d.AverageBasket)})
	}
	return writeTable(w, []string{"weekday", "revenue", "orders", "average_basket"}, rows)
}

func writeCustomerMix(w io.Writer, r *domain.KPIReport) error {
	rows := make([][]string, 0, len(r.CustomerMix))
	for _, m := range r.CustomerMix {
		rows = append(rows, []string{
			m.Month, formatInt(m.NewCustomers), formatDecimal(m.NewRevenue),
			formatInt(m.ReturningCustomers), formatDecimal(m.ReturningRevenue),
		})
	}
	return writeTable(w, []string{"month", "new_customers", "new_revenue", "returning_customers", "returning_revenue"}, rows)
}

func writeCustomerLifetime(w io.Writer, r *domain.KPIReport) error {
	rows := make([][]string, 0, len(r.CustomerLifetime))
	for _, c := range r.CustomerLifetime {
		rows = append(rows, []string{
			c.CustomerID, formatInt(c.Orders), formatDecimal(c.LifetimeValue),
			formatTime(c.FirstOrder), formatTime(c.LastOrder), formatInt(c.LifespanDays),
		})
	}
	return writeTable(w, []string{"customer_id", "orders", "lifetime_value", "first_order", "last_order", "lifespan_days"}, rows)
}

// writeCohorts writes one row per cohort with a month_N column per offset.
// Offsets a cohort has not reached yet are left empty.
func writeCohorts(w io.Writer, r *domain.KPIReport) error {
	width := 0
	for _, c := range r.Cohorts {
		if len(c.RetentionPct) > width {
			width = len(c.RetentionPct)
		}
	}
	header := []string{"cohort", "size"}
	for i := 0; i < width; i++ {
		header = append(header, "month_"+strconv.Itoa(i))
	}

	rows := make([][]string, 0, len(r.Cohorts))
	for _, c := range r.Cohorts {
		row := []string{c.Cohort, formatInt(c.Size)}
		for i := 0; i < width; i++ {
			cell := ""
			if i < len(c.RetentionPct) {
				cell = formatFloat(c.RetentionPct[i])
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}
	return writeTable(w, header, rows)
}

// kpiTableNames lists the KPI files in write order, for logging.
func kpiTableNames() string {
	names := make([]string, len(kpiTables))
	for i, t := range kpiTables {
		names[i] = t.name
	}
	return strings.Join(names, ", ")
}
