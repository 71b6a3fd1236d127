package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"aws-recommender/core/types"
)

func TestWriterNoColor(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)

	w.Success("saved %d recommendations", 18)
	w.Warning("record is %d days old", 9)
	w.Error("failed")
	w.Debug("hidden at normal verbosity")

	out := buf.String()
	for _, want := range []string{"✓ saved 18 recommendations", "⚠ record is 9 days old", "✗ failed"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got %q", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("expected no ANSI escapes with noColor")
	}
	if strings.Contains(out, "hidden") {
		t.Error("debug output shown at verbosity 1")
	}

	w.SetVerbosity(2)
	w.Debug("shown when verbose")
	if !strings.Contains(buf.String(), "shown when verbose") {
		t.Error("expected debug output at verbosity 2")
	}
}

func TestTableRender(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)

	table := w.NewTable("Service", "Score")
	table.AddRow("Lambda", "94%")
	table.AddRow("Elastic Beanstalk", "73%")
	table.Render()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), buf.String())
	}
	if lines[0] != "Service           │ Score" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if lines[2] != "Lambda            │ 94%" {
		t.Errorf("unexpected row %q", lines[2])
	}
}

func TestQuestionnaireDefaults(t *testing.T) {
	q := NewQuestionnaire(types.PreferenceVector{
		WorkloadType: types.WorkloadML,
		Scale:        "galactic",
	}, true)

	got := q.Result()
	if got.WorkloadType != types.WorkloadML {
		t.Errorf("expected ml preselected, got %q", got.WorkloadType)
	}
	if got.Scale != types.ScaleSmall {
		t.Errorf("expected unknown scale to fall back to first option, got %q", got.Scale)
	}
	if len(got.Missing()) != 0 {
		t.Errorf("expected every criterion answered, missing %v", got.Missing())
	}
	if q.Form() == nil {
		t.Error("expected a form")
	}
}

func TestOptionsFor(t *testing.T) {
	for _, c := range types.Criteria() {
		opts := optionsFor(c)
		if len(opts) != len(c.Values()) {
			t.Errorf("%s: expected %d options, got %d", c, len(c.Values()), len(opts))
		}
		for i, o := range opts {
			if o.Value != c.Values()[i] {
				t.Errorf("%s: option %d value %q", c, i, o.Value)
			}
		}
	}
}

func TestPaletteFor(t *testing.T) {
	if PaletteFor(true) != DarkPalette || PaletteFor(false) != LightPalette {
		t.Error("unexpected palette selection")
	}
	if createTheme(DarkPalette) == nil {
		t.Error("expected a theme")
	}
}

func TestRestorePrompt(t *testing.T) {
	record := &types.StoredRecommendation{Timestamp: time.Date(2024, 3, 9, 12, 0, 0, 0, time.Local)}
	expected := "You have a saved recommendation from 2024-03-09. Would you like to view it?"
	if got := RestorePrompt(record); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}
