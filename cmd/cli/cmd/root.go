// Package cmd provides the CLI commands for aws-recommender.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aws-recommender/adapters/storage"
	"aws-recommender/core/ui"
	"aws-recommender/internal/config"
	"aws-recommender/internal/logging"
)

// Version is set at build time
var Version = "0.1.0"

var (
	cfgFile      string
	verbose      bool
	noColor      bool
	storeBackend string
	storePath    string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "aws-recommender",
	Short: "Recommend AWS services for a workload",
	Long: `aws-recommender ranks 18 AWS services against seven answers about your workload
and explains every score.

Examples:
  aws-recommender recommend
  aws-recommender recommend --workload-type serverless --scale small --budget veryLow \
    --traffic-pattern spiky --customization low --performance standard --ops-preference fullyManaged
  aws-recommender recommend --answers answers.hcl --format json
  aws-recommender last
  aws-recommender export --dir ./reports`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./aws-recommender.yaml or $HOME/.aws-recommender/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&storeBackend, "store", "", "storage backend (file, memory, badger)")
	rootCmd.PersistentFlags().StringVar(&storePath, "store-path", "", "storage directory")

	// Add subcommands
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(lastCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if noColor {
		cfg.Output.NoColor = true
	}
	if storeBackend != "" {
		cfg.Storage.Backend = storeBackend
	}
	if storePath != "" {
		cfg.Storage.Path = storePath
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error in flags: %v\n", err)
		os.Exit(1)
	}
	config.Set(cfg)

	// Initialize logging
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// newWriter returns a terminal writer on the command's output
func newWriter(cmd *cobra.Command) *ui.Writer {
	w := ui.NewWriter(cmd.OutOrStdout(), config.Get().Output.NoColor)
	if verbose {
		w.SetVerbosity(1)
	}
	return w
}

// openSlots opens the configured store. The returned func closes it.
func openSlots() (*storage.Slots, func(), error) {
	cfg := config.Get()
	store, err := storage.StoreFactory(storage.Backend(cfg.Storage.Backend), map[string]string{
		"path": cfg.Storage.Path,
	})
	if err != nil {
		return nil, func() {}, err
	}

	logging.Debug("opened store",
		zap.String("backend", cfg.Storage.Backend),
		zap.String("path", cfg.Storage.Path))

	closeFn := func() {
		if err := store.Close(); err != nil {
			logging.Warn("failed to close store", zap.Error(err))
		}
	}
	return storage.NewSlots(store), closeFn, nil
}

// isInteractive reports whether both stdin and stdout are terminals
func isInteractive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "aws-recommender version %s\n", Version)
	},
}
