package cmd

import (
	"github.com/spf13/cobra"

	"aws-recommender/internal/errors"
)

// themeCmd persists the questionnaire theme
var themeCmd = &cobra.Command{
	Use:       "theme [dark|light|show]",
	Short:     "Set or show the questionnaire theme",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"dark", "light", "show"},
	RunE:      runTheme,
}

func runTheme(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	w := newWriter(cmd)

	slots, closeStore, err := openSlots()
	if err != nil {
		return errors.Storage("open store", err)
	}
	defer closeStore()

	action := "show"
	if len(args) > 0 {
		action = args[0]
	}

	switch action {
	case "dark", "light":
		if err := slots.SetDarkMode(ctx, action == "dark"); err != nil {
			return err
		}
		w.Success("Theme set to %s", action)
	case "show":
		dark, err := slots.DarkMode(ctx)
		if err != nil {
			return err
		}
		theme := "light"
		if dark {
			theme = "dark"
		}
		w.Println("%s", theme)
	default:
		return errors.Newf(errors.TypeInput, "unknown theme %q, expected dark, light or show", action)
	}
	return nil
}
