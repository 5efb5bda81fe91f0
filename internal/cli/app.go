package cli

import (
	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"ecommerce-analytics/internal/config"
	"ecommerce-analytics/internal/gateway"
	"ecommerce-analytics/internal/logging"
	"ecommerce-analytics/internal/usecase"
)

// inputFlags are the flags shared by every command that reads transactions.
// They override the config file only when set on the command line.
type inputFlags struct {
	Input     string
	SourceDSN string
	Query     string
	Start     string
	End       string
	Output    string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Input, "input", "i", "", "transaction CSV file")
	cmd.Flags().StringVar(&f.SourceDSN, "source-dsn", "", "read transactions from a database (mysql://, postgres://, sqlite://)")
	cmd.Flags().StringVar(&f.Query, "query", "", "query used with --source-dsn")
	cmd.Flags().StringVar(&f.Start, "start", "", "first day of the analysis window (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.End, "end", "", "last day of the analysis window (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&f.Output, "output", "o", "", "output directory")
}

func (f *inputFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input.Path = f.Input
	}
	if flags.Changed("source-dsn") {
		cfg.Input.SourceDSN = f.SourceDSN
	}
	if flags.Changed("query") {
		cfg.Input.Query = f.Query
	}
	if flags.Changed("start") {
		cfg.ETL.Start = f.Start
	}
	if flags.Changed("end") {
		cfg.ETL.End = f.End
	}
	if flags.Changed("output") {
		cfg.Output.Dir = f.Output
	}
}

// env is what a command needs once flags and config are resolved.
type env struct {
	cfg    *config.Config
	logger zerolog.Logger
	out    *OutputFormatter
	repo   usecase.TransactionRepository
	source string
	window usecase.Window
}

// setup loads the config, lets override adjust it from flags and builds the
// logger and transaction repository.
func setup(opts *RootOptions, cmd *cobra.Command, override func(*config.Config)) (*env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid configuration", err)
	}
	override(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid configuration", err)
	}

	start, end, _ := cfg.Window()
	e := &env{
		cfg:    cfg,
		logger: logging.New(cmd.ErrOrStderr(), opts.Verbose),
		out:    &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()},
		window: usecase.Window{Start: start, End: end},
	}

	switch {
	case cfg.Input.SourceDSN != "":
		if _, _, err := gateway.OpenSource(cfg.Input.SourceDSN); err != nil {
			return nil, WrapExitError(ExitCommandError, "invalid source", err)
		}
		e.repo = gateway.NewSQLTransactionRepository(cfg.Columns(), cfg.Input.Query, cfg.Input.Timeout)
		e.source = cfg.Input.SourceDSN
	case cfg.Input.Path != "":
		e.repo = gateway.NewCSVTransactionRepository(cfg.Columns())
		e.source = cfg.Input.Path
	default:
		return nil, NewExitError(ExitCommandError, "no input: pass --input or --source-dsn")
	}
	return e, nil
}

// progress returns a stage bar on stderr for text output and nil otherwise.
func (e *env) progress(cmd *cobra.Command, stages int) *progressbar.ProgressBar {
	if e.out.Format != "text" {
		return nil
	}
	return progressbar.NewOptions(stages,
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionSetDescription("starting"),
		progressbar.OptionClearOnFinish(),
	)
}

func finish(bar *progressbar.ProgressBar) {
	if bar != nil {
		_ = bar.Finish()
	}
}
