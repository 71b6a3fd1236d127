package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aws-recommender/adapters/answers"
	"aws-recommender/adapters/storage"
	"aws-recommender/core/determinism"
	"aws-recommender/core/engine"
	"aws-recommender/core/output"
	"aws-recommender/core/types"
	"aws-recommender/core/ui"
	"aws-recommender/internal/config"
	apperrors "aws-recommender/internal/errors"
	"aws-recommender/internal/logging"
)

var (
	answersFile    string
	interactive    bool
	topN           int
	outputFormat   string
	showExplain    bool
	noSave         bool
	criterionFlags = make(map[types.Criterion]*string)
)

// recommendCmd represents the recommend command
var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank AWS services for your workload",
	Long: `Score every catalog service against your seven answers and show the best matches.

Answers come from flags, from an answers file, or from an interactive questionnaire.
Flags override values read from the answers file. Without any answers on a terminal
the questionnaire starts, offering to show a recent saved recommendation first.

Examples:
  aws-recommender recommend
  aws-recommender recommend --answers answers.hcl --top 5
  aws-recommender recommend --answers answers.hcl --scale enterprise --explain
  aws-recommender recommend --format json --no-save --workload-type ml --scale large \
    --budget high --traffic-pattern variable --customization high --performance high \
    --ops-preference partial`,
	Args: cobra.NoArgs,
	RunE: runRecommend,
}

func init() {
	for _, c := range types.Criteria() {
		v := new(string)
		criterionFlags[c] = v
		recommendCmd.Flags().StringVar(v, criterionFlag(c), "",
			fmt.Sprintf("%s (%s)", c.Label(), strings.Join(c.Values(), ", ")))
	}

	recommendCmd.Flags().StringVarP(&answersFile, "answers", "a", "", "answers file (.hcl or .json)")
	recommendCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "ask the questions interactively")
	recommendCmd.Flags().IntVarP(&topN, "top", "n", 0, "number of recommendations to show, 0 for all (default from config)")
	recommendCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json, yaml, markdown, table)")
	recommendCmd.Flags().BoolVar(&showExplain, "explain", false, "show the per-criterion score breakdown")
	recommendCmd.Flags().BoolVar(&noSave, "no-save", false, "do not save this recommendation")
}

// criterionFlag turns workload_type into workload-type
func criterionFlag(c types.Criterion) string {
	return strings.ReplaceAll(answers.AttributeName(c), "_", "-")
}

func flagPreferences() types.PreferenceVector {
	var prefs types.PreferenceVector
	for c, v := range criterionFlags {
		_ = prefs.Set(c, strings.TrimSpace(*v))
	}
	return prefs
}

func runRecommend(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := config.Get()
	w := newWriter(cmd)

	format, top, err := resolveOutput(cmd, cfg)
	if err != nil {
		return err
	}

	var prefs types.PreferenceVector
	if answersFile != "" {
		prefs, err = answers.NewParser().DecodeFile(answersFile)
		if err != nil {
			return err
		}
		logging.Debug("loaded answers file", zap.String("path", answersFile))
	}
	prefs = prefs.Merge(flagPreferences())

	slots, closeStore, err := openSlots()
	if err != nil {
		logging.Warn("storage unavailable, recommendations will not be saved", zap.Error(err))
	}
	defer closeStore()

	noAnswers := len(prefs.Missing()) == len(types.Criteria())
	if interactive || (noAnswers && isInteractive()) {
		dark := darkModePreference(ctx, slots)

		if noAnswers && slots != nil {
			restored, err := offerRestore(ctx, slots, cfg.Output.RestoreWindow, dark)
			if errors.Is(err, ui.ErrCancelled) {
				w.Warning("Cancelled")
				return nil
			}
			if err != nil {
				return err
			}
			if restored != nil {
				result := output.FromStored(restored, top)
				if showExplain {
					result.WithExplanations(engine.Default())
				}
				return render(cmd.OutOrStdout(), format, result)
			}
		}

		prefs, err = ui.NewQuestionnaire(prefs, dark).Run(ctx)
		if errors.Is(err, ui.ErrCancelled) {
			w.Warning("Cancelled")
			return nil
		}
		if err != nil {
			return err
		}
	}

	if err := answers.RequireComplete(prefs); err != nil {
		return err
	}
	for _, c := range types.Criteria() {
		if v := prefs.Value(c); !types.IsKnownValue(c, v) {
			w.Warning("%s %q is not a known option, it scores %d for every service", c.Label(), v, types.DefaultScore)
		}
	}

	eng := engine.Default()
	recs := eng.Rank(prefs)
	now := time.Now()

	logging.Info("ranked services",
		zap.String("input_hash", string(determinism.FingerprintOf(prefs))),
		zap.String("top", recs[0].Service),
		zap.Int("score", recs[0].Score))

	if !noSave && slots != nil {
		if _, err := slots.SaveLast(ctx, prefs, recs, now); err != nil {
			logging.Warn("failed to save recommendation", zap.Error(err))
		}
	}

	result := output.NewResult(prefs, recs, top, now)
	if showExplain {
		result.WithExplanations(eng)
	}
	return render(cmd.OutOrStdout(), format, result)
}

// resolveOutput applies the --format and --top flags over the configuration
func resolveOutput(cmd *cobra.Command, cfg *config.Config) (output.Format, int, error) {
	format := cfg.Output.Format
	if outputFormat != "" {
		format = outputFormat
	}
	if !output.IsValidFormat(format) {
		return "", 0, apperrors.Newf(apperrors.TypeInput, "unknown output format %q", format)
	}

	top := cfg.Output.Top
	if cmd.Flags().Changed("top") {
		top = topN
	}
	return output.Format(format), top, nil
}

func render(w io.Writer, format output.Format, result *output.Result) error {
	formatter, ok := output.DefaultRegistry(config.Get().Output.NoColor).GetFormatter(format)
	if !ok {
		return apperrors.NotSupported(fmt.Sprintf("output format %s", format))
	}
	return formatter.Render(w, result)
}

func darkModePreference(ctx context.Context, slots *storage.Slots) bool {
	if slots == nil {
		return false
	}
	dark, err := slots.DarkMode(ctx)
	if err != nil {
		logging.Warn("failed to read theme preference", zap.Error(err))
		return false
	}
	return dark
}

// offerRestore asks to show a saved recommendation younger than window.
// It returns nil when there is none or the user declines.
func offerRestore(ctx context.Context, slots *storage.Slots, window time.Duration, dark bool) (*types.StoredRecommendation, error) {
	record, err := slots.LoadLast(ctx)
	if err != nil {
		logging.Warn("failed to load saved recommendation", zap.Error(err))
		return nil, nil
	}
	if !storage.IsFresh(record, time.Now(), window) {
		return nil, nil
	}

	restore, err := ui.ConfirmRestore(ctx, record, dark)
	if err != nil {
		return nil, err
	}
	if !restore {
		return nil, nil
	}
	return record, nil
}
