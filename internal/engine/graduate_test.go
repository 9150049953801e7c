package engine

import (
	"testing"

	"coachdash/internal/models"
)

func TestGraduateClient(t *testing.T) {
	client := models.Client{
		ID:                 "c1",
		CurrentCycleNumber: 1,
		TrainingMaxesByCycle: map[int]models.TrainingMaxSet{
			1: {
				models.LiftSquat:    265,
				models.LiftBench:    175,
				models.LiftDeadlift: 235,
				models.LiftPress:    120,
			},
		},
	}

	got := GraduateClient(client, 2)

	if got.Cycle() != 2 {
		t.Errorf("cycle = %d, want 2", got.Cycle())
	}
	want := models.TrainingMaxSet{
		models.LiftSquat:    275,
		models.LiftBench:    180,
		models.LiftDeadlift: 245,
		models.LiftPress:    125,
	}
	for _, lift := range models.Lifts {
		if got.TrainingMaxesByCycle[2][lift] != want[lift] {
			t.Errorf("%s = %v, want %v", lift, got.TrainingMaxesByCycle[2][lift], want[lift])
		}
		if got.TrainingMaxes[lift] != want[lift] {
			t.Errorf("flat %s = %v, want %v", lift, got.TrainingMaxes[lift], want[lift])
		}
	}

	assignments := got.WeekAssignmentsByCycle[2]
	wantAssignments := map[string]string{"week1": "5", "week2": "3", "week3": "1"}
	if len(assignments) != len(wantAssignments) {
		t.Fatalf("assignments = %v, want %v", assignments, wantAssignments)
	}
	for key, scheme := range wantAssignments {
		if assignments[key] != scheme {
			t.Errorf("%s = %q, want %q", key, assignments[key], scheme)
		}
	}

	// The source cycle's maxes stay on record.
	if got.TrainingMaxesByCycle[1][models.LiftSquat] != 265 {
		t.Error("cycle-1 maxes were disturbed")
	}
}

func TestGraduateClient_FlatFallback(t *testing.T) {
	client := models.Client{
		ID: "c1",
		TrainingMaxes: models.TrainingMaxSet{
			models.LiftSquat:    240,
			models.LiftBench:    175,
			models.LiftDeadlift: 235,
			models.LiftPress:    120,
		},
	}
	got := GraduateClient(client, 2)
	if got.TrainingMaxesByCycle[2][models.LiftSquat] != 250 {
		t.Errorf("squat = %v, want 250 from the flat fallback", got.TrainingMaxesByCycle[2][models.LiftSquat])
	}
}

func TestBuildGraduatedCycleSettings(t *testing.T) {
	source := threeWeekSettings()

	got := BuildGraduatedCycleSettings(source)
	if len(got) != 4 {
		t.Fatalf("got %d weeks, want 4", len(got))
	}
	assertContiguous(t, got)

	wantSchemes := map[string]string{
		"week1": "5+",
		"week2": "3+",
		"week3": "1+",
	}
	for key, scheme := range wantSchemes {
		if got[key].Reps.Workset3 != scheme {
			t.Errorf("%s top set = %q, want %q", key, got[key].Reps.Workset3, scheme)
		}
	}
	// No plain-5 week in the source: week4 falls back to the source's
	// week1.
	if got["week4"].Reps.Workset3 != "5+" {
		t.Errorf("week4 top set = %q, want the week1 fallback", got["week4"].Reps.Workset3)
	}

	for n := 1; n <= 4; n++ {
		if got[WeekKey(n)].Name != WeekName(n) {
			t.Errorf("%s name = %q, want %q", WeekKey(n), got[WeekKey(n)].Name, WeekName(n))
		}
	}
}

func TestBuildGraduatedCycleSettings_LatestPerFamily(t *testing.T) {
	source := threeWeekSettings()
	// A later 5+ week with a distinguishable top-set percentage wins over
	// week1.
	source["week4"] = models.WeekTemplate{
		Name:        "Week 4",
		Percentages: models.Percentages{Warmup1: 0.5, Warmup2: 0.6, Workset1: 0.65, Workset2: 0.75, Workset3: 0.88},
		Reps:        models.Reps{Workset1: 5, Workset2: 5, Workset3: "5+"},
	}

	got := BuildGraduatedCycleSettings(source)
	if got["week1"].Percentages.Workset3 != 0.88 {
		t.Errorf("week1 top percentage = %v, want the later 0.88", got["week1"].Percentages.Workset3)
	}
}
