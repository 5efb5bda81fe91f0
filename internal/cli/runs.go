package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"ecommerce-analytics/internal/config"
	"ecommerce-analytics/internal/store"
)

// RunsOptions holds flags for the runs command and its subcommands.
type RunsOptions struct {
	*RootOptions
	Database string
}

// NewRunsCommand creates the runs command, which browses RFM runs recorded
// with rfm --db.
func NewRunsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List RFM runs recorded in a database",
		Long: `List the RFM runs recorded in a SQLite database, newest first.

Example:
  analytics runs --db runs.db
  analytics runs show 01890a5d-ac96-774b-bcce-b302099a8057 --db runs.db`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listRuns(opts, cmd)
		},
	}
	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "path to SQLite database")

	cmd.AddCommand(&cobra.Command{
		Use:           "show <run-id>",
		Short:         "Show the segment report of one run",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showRun(opts, cmd, args[0])
		},
	})

	return cmd
}

// openRunStore resolves the database from the flag, then the config file
// and environment.
func openRunStore(opts *RunsOptions, cmd *cobra.Command) (*store.Store, error) {
	path := opts.Database
	if !cmd.Flags().Changed("db") {
		cfg, err := config.Load(opts.ConfigPath)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "invalid configuration", err)
		}
		path = cfg.Output.DB
	}
	if path == "" {
		return nil, NewExitError(ExitCommandError, "no database: pass --db")
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}
	return st, nil
}

func listRuns(opts *RunsOptions, cmd *cobra.Command) error {
	st, err := openRunStore(opts, cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	runs, err := st.ListRuns(cmd.Context())
	if err != nil {
		return WrapExitError(ExitFailure, "failed to list runs", err)
	}
	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return out.Success(runsOutput{Runs: runs})
}

func showRun(opts *RunsOptions, cmd *cobra.Command, runID string) error {
	st, err := openRunStore(opts, cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	result, err := st.LoadRFM(cmd.Context(), runID)
	if err != nil {
		if errors.Is(err, store.ErrRunNotFound) {
			return WrapExitError(ExitCommandError, "unknown run", err)
		}
		return WrapExitError(ExitFailure, "failed to load run", err)
	}
	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return out.Success(rfmOutput{Manifest: result.Manifest, Report: result.Report})
}
