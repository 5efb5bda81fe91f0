package cli

import (
	"github.com/spf13/cobra"

	"ecommerce-analytics/internal/config"
	"ecommerce-analytics/internal/gateway"
	"ecommerce-analytics/internal/usecase"
)

// KPIOptions holds flags for the kpi command.
type KPIOptions struct {
	*RootOptions
	inputFlags
	TopN   int
	Period string
}

// NewKPICommand creates the kpi command.
func NewKPICommand(rootOpts *RootOptions) *cobra.Command {
	opts := &KPIOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "kpi",
		Short: "Compute revenue, product and customer KPIs",
		Long: `Compute the KPI report: headline figures, revenue per period with growth,
top products, categories, daily and weekday sales, new versus returning
customers, customer lifetime value and monthly cohort retention.

Example:
  analytics kpi --input orders.csv --period week --top-n 5`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKPI(opts, cmd)
		},
	}

	opts.inputFlags.register(cmd)
	cmd.Flags().IntVar(&opts.TopN, "top-n", 10, "number of products in the ranking (0 for all)")
	cmd.Flags().StringVar(&opts.Period, "period", "month", "revenue period (day|week|month|year)")

	return cmd
}

func runKPI(opts *KPIOptions, cmd *cobra.Command) error {
	e, err := setup(opts.RootOptions, cmd, func(cfg *config.Config) {
		opts.inputFlags.apply(cmd, cfg)
		if cmd.Flags().Changed("top-n") {
			cfg.KPI.TopN = opts.TopN
		}
		if cmd.Flags().Changed("period") {
			cfg.KPI.Period = opts.Period
		}
	})
	if err != nil {
		return err
	}

	uc := usecase.NewKPIUseCase(e.repo, e.logger, gateway.NewFileResultWriter(e.cfg.Output.Dir, e.logger))
	bar := e.progress(cmd, usecase.KPIStages)
	if bar != nil {
		uc.WithProgress(bar)
	}
	report, err := uc.Run(cmd.Context(), usecase.KPIOptions{
		Source: e.source,
		Window: e.window,
		KPI:    e.cfg.KPIOptions(),
	})
	finish(bar)
	if err != nil {
		return classify("kpi computation failed", err)
	}

	return e.out.Success(kpiOutput{Report: report})
}
