package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aws-recommender/adapters/export"
	"aws-recommender/internal/config"
	"aws-recommender/internal/errors"
	"aws-recommender/internal/logging"
)

var (
	exportDir    string
	exportStdout bool
)

// exportCmd writes the saved recommendation to a JSON file
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the last saved recommendation as JSON",
	Long: `Write the last saved recommendation to aws-recommendation-YYYY-MM-DD.json.

Examples:
  aws-recommender export
  aws-recommender export --dir ./reports
  aws-recommender export --stdout | jq .data.recommendations[0]`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportDir, "dir", "d", "", "directory to write the file into (default from config)")
	exportCmd.Flags().BoolVar(&exportStdout, "stdout", false, "write the JSON document to stdout instead of a file")
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	w := newWriter(cmd)

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
		return errors.NotFound("saved recommendation", "lastRecommendation")
	}

	if exportStdout {
		return export.Write(cmd.OutOrStdout(), record)
	}

	dir := config.Get().Export.Directory
	if exportDir != "" {
		dir = exportDir
	}

	path, err := export.WriteFile(dir, record, time.Now())
	if err != nil {
		return err
	}

	logging.Info("exported recommendation", zap.String("path", path))
	w.Success("Exported to %s", path)
	return nil
}
