package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"ecommerce-analytics/internal/config"
	"ecommerce-analytics/internal/gateway"
	"ecommerce-analytics/internal/usecase"
)

// CleanOptions holds flags for the clean command.
type CleanOptions struct {
	*RootOptions
	inputFlags
}

// NewCleanCommand creates the clean command.
func NewCleanCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CleanOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Deduplicate and validate a transaction table",
		Long: `Drop duplicate and invalid transactions and write the cleaned table in
the canonical column layout.

Example:
  analytics clean --input raw.csv --output ./out`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(opts, cmd)
		},
	}

	opts.inputFlags.register(cmd)

	return cmd
}

func runClean(opts *CleanOptions, cmd *cobra.Command) error {
	e, err := setup(opts.RootOptions, cmd, func(cfg *config.Config) {
		opts.inputFlags.apply(cmd, cfg)
	})
	if err != nil {
		return err
	}

	uc := usecase.NewCleanUseCase(e.repo, gateway.NewFileResultWriter(e.cfg.Output.Dir, e.logger), e.logger)
	bar := e.progress(cmd, usecase.CleanStages)
	if bar != nil {
		uc.WithProgress(bar)
	}
	stats, err := uc.Run(cmd.Context(), e.source, e.window)
	finish(bar)
	if err != nil {
		return classify("cleaning failed", err)
	}

	return e.out.Success(cleanOutput{
		Stats:  stats,
		Output: filepath.Join(e.cfg.Output.Dir, gateway.TransactionsFile),
	})
}
