package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"aws-recommender/adapters/storage"
	"aws-recommender/core/engine"
	"aws-recommender/core/output"
	"aws-recommender/internal/config"
	"aws-recommender/internal/errors"
)

var (
	lastMaxAge       time.Duration
	lastIncludeStale bool
)

// lastCmd shows the saved recommendation
var lastCmd = &cobra.Command{
	Use:   "last",
	Short: "Show the last saved recommendation",
	Long: `Show the recommendation saved by the last run of recommend.

Records older than --max-age (default from output.restore_window, 7 days) are
reported as stale and only shown with --include-stale.`,
	Args: cobra.NoArgs,
	RunE: runLast,
}

func init() {
	lastCmd.Flags().DurationVar(&lastMaxAge, "max-age", 0, "maximum age of a saved recommendation (default from config)")
	lastCmd.Flags().BoolVar(&lastIncludeStale, "include-stale", false, "show the saved recommendation even when it is older than --max-age")
	lastCmd.Flags().IntVarP(&topN, "top", "n", 0, "number of recommendations to show, 0 for all (default from config)")
	lastCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json, yaml, markdown, table)")
	lastCmd.Flags().BoolVar(&showExplain, "explain", false, "show the per-criterion score breakdown")
}

func runLast(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := config.Get()
	w := newWriter(cmd)

	format, top, err := resolveOutput(cmd, cfg)
	if err != nil {
		return err
	}

	window := cfg.Output.RestoreWindow
	if lastMaxAge > 0 {
		window = lastMaxAge
	}

	slots, closeStore, err := openSlots()
	if err != nil {
		return errors.Storage("open store", err)
	}
	defer closeStore()

	record, err := slots.LoadLast(ctx)
	if err != nil {
		return err
	}
	if record == nil {
		w.Info("No saved recommendation. Run 'aws-recommender recommend' first.")
		return nil
	}

	if !storage.IsFresh(record, time.Now(), window) && !lastIncludeStale {
		w.Warning("The saved recommendation from %s is older than %s. Use --include-stale to show it.",
			record.Timestamp.Local().Format("2006-01-02"), window)
		return nil
	}

	result := output.FromStored(record, top)
	if showExplain {
		result.WithExplanations(engine.Default())
	}
	return render(cmd.OutOrStdout(), format, result)
}
