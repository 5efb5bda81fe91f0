package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"ecommerce-analytics/internal/domain"
	"ecommerce-analytics/internal/etl"
)

type rfmOutput struct {
	Manifest domain.RunManifest   `json:"manifest"`
	Report   domain.SegmentReport `json:"report"`
}

func (o rfmOutput) renderText(w io.Writer) error {
	m := o.Manifest
	fmt.Fprintf(w, "Run %s\n", m.RunID)
	fmt.Fprintf(w, "Reference date: %s\n", m.ReferenceDate.Format(time.DateOnly))
	fmt.Fprintf(w, "Customers: %d  Transactions: %d  Dropped: %d  Revenue: %s\n\n",
		m.Customers, m.Transactions, m.DroppedRecords, m.TotalMonetary.StringFixed(2))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SEGMENT\tCUSTOMERS\t% CUST\tREVENUE\t% REV\tAVG RECENCY\tAVG FREQ\tPRIORITY\tACTION")
	for _, s := range o.Report.Segments {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%.2f\t%.2f\t%s\t%s\n",
			s.Segment, s.Customers, s.PctCustomers.StringFixed(1), s.MonetaryTotal.StringFixed(2),
			s.PctRevenue.StringFixed(1), s.RecencyMean, s.FrequencyMean, s.Priority, s.Action)
	}
	return tw.Flush()
}

type kpiOutput struct {
	Report *domain.KPIReport `json:"report"`
}

func (o kpiOutput) renderText(w io.Writer) error {
	s := o.Report.Summary
	fmt.Fprintf(w, "Revenue: %s  Orders: %d  Customers: %d\n",
		s.TotalRevenue.StringFixed(2), s.TotalOrders, s.TotalCustomers)
	fmt.Fprintf(w, "Average basket: %s  Median basket: %s  Orders/customer: %.2f  Revenue/customer: %s\n\n",
		s.AverageBasket.StringFixed(2), s.MedianBasket.StringFixed(2), s.OrdersPerCustomer, s.RevenuePerCustomer.StringFixed(2))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PERIOD\tREVENUE\tGROWTH %")
	for _, p := range o.Report.Revenue {
		growth := "-"
		if p.GrowthPct.Valid {
			growth = p.GrowthPct.Decimal.StringFixed(2)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Period, p.Revenue.StringFixed(2), growth)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(o.Report.TopProducts) == 0 {
		return nil
	}
	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PRODUCT\tCATEGORY\tQUANTITY\tREVENUE")
	for _, p := range o.Report.TopProducts {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", p.ProductName, p.Category, p.Quantity, p.Revenue.StringFixed(2))
	}
	return tw.Flush()
}

type cleanOutput struct {
	Stats  etl.CleanStats `json:"stats"`
	Output string         `json:"output"`
}

func (o cleanOutput) renderText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Read %d, dropped %d duplicates and %d invalid rows, kept %d\nWritten to %s\n",
		o.Stats.Read, o.Stats.Duplicates, o.Stats.Invalid, o.Stats.Kept, o.Output)
	return err
}

type runsOutput struct {
	Runs []domain.RunManifest `json:"runs"`
}

func (o runsOutput) renderText(w io.Writer) error {
	if len(o.Runs) == 0 {
		_, err := fmt.Fprintln(w, "No runs recorded.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RUN ID\tGENERATED\tREFERENCE\tCUSTOMERS\tREVENUE\tSOURCE")
	for _, m := range o.Runs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\n",
			m.RunID, m.GeneratedAt.Format(time.RFC3339), m.ReferenceDate.Format(time.DateOnly),
			m.Customers, m.TotalMonetary.StringFixed(2), m.Source)
	}
	return tw.Flush()
}
