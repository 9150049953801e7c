package engine

import (
	"testing"
	"time"

	"coachdash/internal/models"
)

func threeWeekSettings() models.CycleSettings {
	return models.CycleSettings{
		"week1": {
			Name:        "Week 1",
			Percentages: models.Percentages{Warmup1: 0.5, Warmup2: 0.6, Workset1: 0.65, Workset2: 0.75, Workset3: 0.85},
			Reps:        models.Reps{Workset1: 5, Workset2: 5, Workset3: "5+"},
		},
		"week2": {
			Name:        "Week 2",
			Percentages: models.Percentages{Warmup1: 0.5, Warmup2: 0.6, Workset1: 0.7, Workset2: 0.8, Workset3: 0.9},
			Reps:        models.Reps{Workset1: 3, Workset2: 3, Workset3: "3+"},
		},
		"week3": {
			Name:        "Week 3",
			Percentages: models.Percentages{Warmup1: 0.5, Warmup2: 0.6, Workset1: 0.75, Workset2: 0.85, Workset3: 0.95},
			Reps:        models.Reps{Workset1: 5, Workset2: 3, Workset3: "1+"},
		},
	}
}

func TestResolveEffectiveWeek(t *testing.T) {
	settings := threeWeekSettings()

	t.Run("no state means normal", func(t *testing.T) {
		got := ResolveEffectiveWeek(models.Client{}, 1, "week2", settings)
		if got.Mode != models.ModeNormal || got.WeekKey != "week2" {
			t.Errorf("got %+v, want normal/week2", got)
		}
	})

	t.Run("per-week mode beats the legacy default", func(t *testing.T) {
		client := models.Client{
			SessionStateByCycle: map[int]models.SessionState{
				1: {
					Mode:       models.ModeRecovery,
					ModeByWeek: map[string]models.SessionMode{"week2": models.ModeJackShit},
				},
			},
		}
		if got := ResolveEffectiveWeek(client, 1, "week2", settings); got.Mode != models.ModeJackShit {
			t.Errorf("mode = %s, want jack_shit", got.Mode)
		}
		if got := ResolveEffectiveWeek(client, 1, "week3", settings); got.Mode != models.ModeRecovery {
			t.Errorf("other week mode = %s, want the legacy recovery", got.Mode)
		}
	})

	t.Run("slide uses the stored flow week", func(t *testing.T) {
		client := models.Client{
			SessionStateByCycle: map[int]models.SessionState{
				1: {
					ModeByWeek:        map[string]models.SessionMode{"week3": models.ModeSlide},
					FlowWeekKeyByWeek: map[string]string{"week3": "week1"},
				},
			},
		}
		got := ResolveEffectiveWeek(client, 1, "week3", settings)
		if got.WeekKey != "week1" {
			t.Errorf("week = %s, want the stored week1", got.WeekKey)
		}
	})

	t.Run("slide with a dangling flow week falls back to the previous week", func(t *testing.T) {
		client := models.Client{
			SessionStateByCycle: map[int]models.SessionState{
				1: {
					ModeByWeek:        map[string]models.SessionMode{"week3": models.ModeSlide},
					FlowWeekKeyByWeek: map[string]string{"week3": "week9"},
				},
			},
		}
		got := ResolveEffectiveWeek(client, 1, "week3", settings)
		if got.WeekKey != "week2" {
			t.Errorf("week = %s, want the preceding week2", got.WeekKey)
		}
	})

	t.Run("slide on the first week keeps its nominal key", func(t *testing.T) {
		client := models.Client{
			SessionStateByCycle: map[int]models.SessionState{
				1: {ModeByWeek: map[string]models.SessionMode{"week1": models.ModeSlide}},
			},
		}
		got := ResolveEffectiveWeek(client, 1, "week1", settings)
		if got.WeekKey != "week1" {
			t.Errorf("week = %s, want week1", got.WeekKey)
		}
	})
}

func TestResolve_PauseWeekYieldsNoSets(t *testing.T) {
	client := models.Client{
		ID:            "c1",
		TrainingMaxes: models.TrainingMaxSet{models.LiftSquat: 240},
		SessionStateByCycle: map[int]models.SessionState{
			1: {ModeByWeek: map[string]models.SessionMode{"week1": models.ModePauseWeek}},
		},
	}
	got := Resolve(client, models.LiftSquat, 1, "week1", threeWeekSettings(), nil, time.Now())
	if len(got.Sets) != 0 {
		t.Errorf("got %d sets, want none", len(got.Sets))
	}
	if got.PRTarget != nil {
		t.Error("pause week should have no PR target")
	}
	if got.SessionMode != models.ModePauseWeek {
		t.Errorf("mode = %s, want pause_week", got.SessionMode)
	}
}

func TestResolve_SkipAssignmentYieldsNoSets(t *testing.T) {
	client := models.Client{
		ID:            "c1",
		TrainingMaxes: models.TrainingMaxSet{models.LiftSquat: 240},
		WeekAssignmentsByCycle: map[int]map[string]string{
			1: {"week1": SkipAssignment},
		},
	}
	got := Resolve(client, models.LiftSquat, 1, "week1", threeWeekSettings(), nil, time.Now())
	if len(got.Sets) != 0 || got.PRTarget != nil {
		t.Errorf("skipped week produced %d sets (PR %v)", len(got.Sets), got.PRTarget)
	}
}

func TestResolve_MissingWeekYieldsNoSets(t *testing.T) {
	client := models.Client{
		ID:            "c1",
		TrainingMaxes: models.TrainingMaxSet{models.LiftSquat: 240},
	}
	got := Resolve(client, models.LiftSquat, 1, "week9", threeWeekSettings(), nil, time.Now())
	if len(got.Sets) != 0 {
		t.Errorf("missing week produced %d sets", len(got.Sets))
	}
}

func TestResolve_OverrideAgainstEffectiveWeek(t *testing.T) {
	// Slide from week2 back to week1, where the client holds a "1"
	// override: the override on the effective week wins.
	client := models.Client{
		ID:            "c1",
		TrainingMaxes: models.TrainingMaxSet{models.LiftSquat: 200},
		WeekAssignmentsByCycle: map[int]map[string]string{
			1: {"week1": "1"},
		},
		SessionStateByCycle: map[int]models.SessionState{
			1: {ModeByWeek: map[string]models.SessionMode{"week2": models.ModeSlide}},
		},
	}
	got := Resolve(client, models.LiftSquat, 1, "week2", threeWeekSettings(), nil, time.Now())
	if got.EffectiveWeekKey != "week1" {
		t.Fatalf("effective week = %s, want week1", got.EffectiveWeekKey)
	}
	if got.Sets[4].Reps != "1+" {
		t.Errorf("top set reps = %q, want the overridden 1+", got.Sets[4].Reps)
	}
	// 200 * 0.95 = 190.
	if got.Sets[4].Weight != 190 {
		t.Errorf("top set weight = %v, want 190", got.Sets[4].Weight)
	}
}

func TestResolve_RecoveryStripsAMRAP(t *testing.T) {
	client := models.Client{
		ID:            "c1",
		TrainingMaxes: models.TrainingMaxSet{models.LiftSquat: 240},
		SessionStateByCycle: map[int]models.SessionState{
			1: {ModeByWeek: map[string]models.SessionMode{"week1": models.ModeRecovery}},
		},
	}
	history := []models.HistoricalRecord{
		{ClientID: "c1", Lift: models.LiftSquat, Date: time.Now(), Estimated1RM: 265},
	}
	got := Resolve(client, models.LiftSquat, 1, "week1", threeWeekSettings(), history, time.Now())
	if len(got.Sets) != 5 {
		t.Fatalf("got %d sets, want 5", len(got.Sets))
	}
	if got.Sets[4].Reps != "5" {
		t.Errorf("top set reps = %q, want the plus stripped", got.Sets[4].Reps)
	}
	if got.PRTarget != nil {
		t.Error("recovery should clear the PR target")
	}
}

func TestResolve_JackShitKeepsOnlyWorkSets(t *testing.T) {
	client := models.Client{
		ID:            "c1",
		TrainingMaxes: models.TrainingMaxSet{models.LiftSquat: 240},
		SessionStateByCycle: map[int]models.SessionState{
			1: {ModeByWeek: map[string]models.SessionMode{"week1": models.ModeJackShit}},
		},
	}
	got := Resolve(client, models.LiftSquat, 1, "week1", threeWeekSettings(), nil, time.Now())
	if len(got.Sets) != 3 {
		t.Fatalf("got %d sets, want the 3 work sets", len(got.Sets))
	}
	for _, set := range got.Sets {
		if set.Type != SetWork {
			t.Errorf("set %q is not a work set", set.Label)
		}
	}
}
