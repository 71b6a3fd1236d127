// Package main is the entry point for the aws-recommender CLI.
package main

import (
	"os"

	"aws-recommender/cmd/cli/cmd"
	"aws-recommender/internal/logging"
)

func main() {
	defer logging.Sync()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
