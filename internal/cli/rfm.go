package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"ecommerce-analytics/internal/config"
	"ecommerce-analytics/internal/domain"
	"ecommerce-analytics/internal/gateway"
	"ecommerce-analytics/internal/rfm"
	"ecommerce-analytics/internal/store"
	"ecommerce-analytics/internal/usecase"
)

// RFMOptions holds flags for the rfm command.
type RFMOptions struct {
	*RootOptions
	inputFlags
	ReferenceDate string
	Database      string
	RankTies      bool
}

// NewRFMCommand creates the rfm command.
func NewRFMCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RFMOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "rfm",
		Short: "Score customers by recency, frequency and monetary value",
		Long: `Score every customer on recency, frequency and monetary value, assign
marketing segments and write the profile and segment tables.

Example:
  analytics rfm --input orders.csv --output ./out
  analytics rfm --input orders.csv --reference-date 2024-06-30 --db runs.db`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRFM(opts, cmd)
		},
	}

	opts.inputFlags.register(cmd)
	cmd.Flags().StringVar(&opts.ReferenceDate, "reference-date", "", "date recency is measured from (YYYY-MM-DD, default latest transaction)")
	cmd.Flags().StringVar(&opts.Database, "db", "", "also record the run in this SQLite database")
	cmd.Flags().BoolVar(&opts.RankTies, "rank-ties", true, "bin stable ranks instead of raw values")

	return cmd
}

func runRFM(opts *RFMOptions, cmd *cobra.Command) error {
	e, err := setup(opts.RootOptions, cmd, func(cfg *config.Config) {
		opts.inputFlags.apply(cmd, cfg)
		if cmd.Flags().Changed("reference-date") {
			cfg.RFM.ReferenceDate = opts.ReferenceDate
		}
		if cmd.Flags().Changed("db") {
			cfg.Output.DB = opts.Database
		}
		if cmd.Flags().Changed("rank-ties") {
			cfg.RFM.RankTies = opts.RankTies
		}
	})
	if err != nil {
		return err
	}
	reference, _ := e.cfg.Reference()

	sinks := []usecase.ResultSink{gateway.NewFileResultWriter(e.cfg.Output.Dir, e.logger)}
	if e.cfg.Output.DB != "" {
		st, err := store.Open(e.cfg.Output.DB)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to open database", err)
		}
		defer func() {
			if closeErr := st.Close(); closeErr != nil {
				e.logger.Error().Err(closeErr).Msg("error closing database")
			}
		}()
		sinks = append(sinks, st)
	}

	uc := usecase.NewRFMUseCase(e.repo, e.logger, sinks...)
	bar := e.progress(cmd, usecase.RFMStages)
	if bar != nil {
		uc.WithProgress(bar)
	}
	result, err := uc.Run(cmd.Context(), usecase.RFMOptions{
		Source:    e.source,
		Reference: reference,
		Window:    e.window,
		Scorer:    rfm.Scorer{RankTies: e.cfg.RFM.RankTies},
	})
	finish(bar)
	if err != nil {
		if errors.Is(err, domain.ErrReferenceBeforePurchase) {
			return WrapExitError(ExitCommandError, "rfm analysis failed", err)
		}
		return classify("rfm analysis failed", err)
	}

	return e.out.Success(rfmOutput{Manifest: result.Manifest, Report: result.Report})
}
