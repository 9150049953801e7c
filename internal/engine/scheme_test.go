package engine

import (
	"testing"

	"coachdash/internal/models"
)

func TestRepScheme(t *testing.T) {
	tests := []struct {
		workset3 string
		want     string
	}{
		{"5+", "5"},
		{"3+", "3"},
		{"1+", "1"},
		{"5", "5"},
		{"", "?"},
		{"+", "?"},
	}

	for _, tt := range tests {
		t.Run(tt.workset3, func(t *testing.T) {
			if got := RepScheme(tt.workset3); got != tt.want {
				t.Errorf("RepScheme(%q) = %q, want %q", tt.workset3, got, tt.want)
			}
		})
	}
}

func TestReconcileTemplateForOverride(t *testing.T) {
	template := models.WeekTemplate{
		Name:        "Week 1",
		Percentages: models.Percentages{Warmup1: 0.5, Warmup2: 0.6, Workset1: 0.65, Workset2: 0.75, Workset3: 0.85},
		Reps:        models.Reps{Workset1: 5, Workset2: 5, Workset3: "5+"},
	}

	t.Run("matching override is a no-op", func(t *testing.T) {
		got := ReconcileTemplateForOverride(template, "5")
		if got.Reps.Workset3 != "5+" || got.Percentages.Workset3 != 0.85 {
			t.Errorf("matching override changed the template: %+v", got)
		}
	})

	t.Run("empty override is a no-op", func(t *testing.T) {
		got := ReconcileTemplateForOverride(template, "")
		if got.Reps.Workset3 != "5+" {
			t.Errorf("empty override changed the template: %+v", got)
		}
	})

	t.Run("differing override swaps percentages and reps", func(t *testing.T) {
		got := ReconcileTemplateForOverride(template, "1")
		if got.Percentages.Workset3 != 0.95 {
			t.Errorf("top-set percentage = %v, want 0.95", got.Percentages.Workset3)
		}
		if got.Reps.Workset1 != 5 || got.Reps.Workset2 != 3 || got.Reps.Workset3 != "1+" {
			t.Errorf("reps = %+v, want 5/3/1+", got.Reps)
		}
	})

	t.Run("unknown override keeps the stored templates", func(t *testing.T) {
		got := ReconcileTemplateForOverride(template, "7")
		if got.Percentages != template.Percentages || got.Reps != template.Reps {
			t.Errorf("unknown override altered the template: %+v", got)
		}
	})
}

func TestWeekRepScheme(t *testing.T) {
	settings := models.CycleSettings{
		"week1": {Reps: models.Reps{Workset3: "5+"}},
	}
	if got := WeekRepScheme(settings, "week1"); got != "5" {
		t.Errorf("week1 = %q, want 5", got)
	}
	if got := WeekRepScheme(settings, "week9"); got != "?" {
		t.Errorf("missing week = %q, want ?", got)
	}
}
