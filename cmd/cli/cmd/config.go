package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"aws-recommender/internal/config"
	"aws-recommender/internal/errors"
)

var configForce bool

// configCmd manages configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := config.Get().YAML()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write([]byte(doc))
		return err
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init [PATH]",
	Short: "Write a default configuration file",
	Long: `Write the default configuration as YAML.

PATH defaults to $HOME/.aws-recommender/config.yaml. Existing files are kept
unless --force is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	w := newWriter(cmd)

	var path string
	if len(args) > 0 {
		path = args[0]
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return errors.Config("locate home directory", err)
		}
		path = filepath.Join(home, ".aws-recommender", "config.yaml")
	}

	if _, err := os.Stat(path); err == nil && !configForce {
		return errors.Newf(errors.TypeConfig, "%s already exists, use --force to overwrite", path)
	}

	if err := config.Default().Save(path); err != nil {
		return errors.Config("write config file", err)
	}
	w.Success("Wrote %s", path)
	return nil
}
