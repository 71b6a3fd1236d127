package ui

import (
	"context"
	"errors"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"aws-recommender/core/types"
	apperrors "aws-recommender/internal/errors"
)

// ErrCancelled is returned when the user aborts a prompt
var ErrCancelled = apperrors.Input("cancelled by user")

var questions = map[types.Criterion]string{
	types.WorkloadType:   "What kind of workload are you building?",
	types.Scale:          "How large will it get?",
	types.Budget:         "What is your budget?",
	types.TrafficPattern: "What does your traffic look like?",
	types.Customization:  "How much control over the runtime do you need?",
	types.Performance:    "What performance do you need?",
	types.OpsPreference:  "How much do you want to operate yourself?",
}

// Palette holds the colors of a questionnaire theme
type Palette struct {
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Muted   lipgloss.Color
	Text    lipgloss.Color
	Error   lipgloss.Color
	Button  lipgloss.Color
	Border  lipgloss.Color
}

// DarkPalette is used when dark mode is on
var DarkPalette = Palette{
	Primary: lipgloss.Color("#FF9900"),
	Accent:  lipgloss.Color("#FFB84D"),
	Muted:   lipgloss.Color("#9CA3AF"),
	Text:    lipgloss.Color("#E5E7EB"),
	Error:   lipgloss.Color("#F87171"),
	Button:  lipgloss.Color("#3B82F6"),
	Border:  lipgloss.Color("#334155"),
}

// LightPalette is used when dark mode is off
var LightPalette = Palette{
	Primary: lipgloss.Color("#232F3E"),
	Accent:  lipgloss.Color("#C45500"),
	Muted:   lipgloss.Color("#6B7280"),
	Text:    lipgloss.Color("#111827"),
	Error:   lipgloss.Color("#B91C1C"),
	Button:  lipgloss.Color("#1D4ED8"),
	Border:  lipgloss.Color("#D1D5DB"),
}

// PaletteFor returns the palette for a theme preference
func PaletteFor(dark bool) Palette {
	if dark {
		return DarkPalette
	}
	return LightPalette
}

// createTheme returns a huh theme for the palette
func createTheme(p Palette) *huh.Theme {
	t := huh.ThemeBase()

	t.Group.Title = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true).
		MarginBottom(1)
	t.Group.Description = lipgloss.NewStyle().
		Foreground(p.Muted).
		MarginBottom(1)

	t.Focused.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(p.Primary)
	t.Focused.Title = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)
	t.Focused.Description = lipgloss.NewStyle().
		Foreground(p.Muted)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().
		Foreground(p.Error).
		SetString(" *")
	t.Focused.ErrorMessage = lipgloss.NewStyle().
		Foreground(p.Error)

	t.Focused.SelectSelector = lipgloss.NewStyle().
		Foreground(p.Primary).
		SetString("> ")
	t.Focused.Option = lipgloss.NewStyle().
		Foreground(p.Text)
	t.Focused.SelectedOption = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)

	t.Focused.FocusedButton = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(p.Button).
		Padding(0, 2).
		MarginRight(1)
	t.Focused.BlurredButton = lipgloss.NewStyle().
		Foreground(p.Muted).
		Background(p.Border).
		Padding(0, 2).
		MarginRight(1)

	t.Blurred = t.Focused
	t.Blurred.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.HiddenBorder()).
		BorderLeft(true)
	t.Blurred.Title = lipgloss.NewStyle().
		Foreground(p.Muted)
	t.Blurred.SelectSelector = lipgloss.NewStyle().
		Foreground(p.Muted).
		SetString("  ")
	t.Blurred.Option = lipgloss.NewStyle().
		Foreground(p.Muted)

	return t
}

// optionsFor converts a criterion's enumeration into select options
func optionsFor(c types.Criterion) []huh.Option[string] {
	opts := c.Options()
	out := make([]huh.Option[string], 0, len(opts))
	for _, o := range opts {
		out = append(out, huh.NewOption(o.Label, o.Value))
	}
	return out
}

// Questionnaire collects a preference vector interactively
type Questionnaire struct {
	values     map[types.Criterion]*string
	palette    Palette
	accessible bool
}

// NewQuestionnaire creates a questionnaire preselected with defaults.
// Unanswered criteria start on their first option.
func NewQuestionnaire(defaults types.PreferenceVector, dark bool) *Questionnaire {
	q := &Questionnaire{
		values:  make(map[types.Criterion]*string),
		palette: PaletteFor(dark),
	}
	for _, c := range types.Criteria() {
		v := defaults.Value(c)
		if !types.IsKnownValue(c, v) {
			v = c.Values()[0]
		}
		q.values[c] = &v
	}
	return q
}

// WithAccessible switches to plain line-based prompts
func (q *Questionnaire) WithAccessible(accessible bool) *Questionnaire {
	q.accessible = accessible
	return q
}

// Form builds the huh form, one select per criterion
func (q *Questionnaire) Form() *huh.Form {
	var fields []huh.Field
	for _, c := range types.Criteria() {
		fields = append(fields, huh.NewSelect[string]().
			Title(c.Label()).
			Description(questions[c]).
			Options(optionsFor(c)...).
			Value(q.values[c]))
	}

	return huh.NewForm(
		huh.NewGroup(fields[:4]...).
			Title("Your workload").
			Description("Tell us what you are building"),
		huh.NewGroup(fields[4:]...).
			Title("Your requirements").
			Description("How you want to run it"),
	).WithTheme(createTheme(q.palette)).WithAccessible(q.accessible)
}

// Result returns the currently selected answers
func (q *Questionnaire) Result() types.PreferenceVector {
	var prefs types.PreferenceVector
	for c, v := range q.values {
		_ = prefs.Set(c, *v)
	}
	return prefs
}

// Run shows the form and returns the answers
func (q *Questionnaire) Run(ctx context.Context) (types.PreferenceVector, error) {
	if err := q.Form().RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return types.PreferenceVector{}, ErrCancelled
		}
		return types.PreferenceVector{}, apperrors.Internal("questionnaire failed", err)
	}
	return q.Result(), nil
}
