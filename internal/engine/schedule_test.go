package engine

import (
	"testing"

	"coachdash/internal/models"
)

func TestDayOffset(t *testing.T) {
	tests := []struct {
		name string
		from models.Weekday
		to   models.Weekday
		want int
	}{
		{"Tuesday to Thursday", models.Tuesday, models.Thursday, 2},
		{"Thursday to Tuesday wraps", models.Thursday, models.Tuesday, 5},
		{"same day", models.Monday, models.Monday, 0},
		{"Saturday to Sunday wraps", models.Saturday, models.Sunday, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DayOffset(tt.from, tt.to); got != tt.want {
				t.Errorf("DayOffset(%s, %s) = %d, want %d", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestResolveWeekSchedule(t *testing.T) {
	schedule := &models.ScheduleSettings{
		CycleStartDate: "2026-01-06",
		Day1Weekday:    models.Tuesday,
		Day2Weekday:    models.Thursday,
	}

	t.Run("week 1 starts on the cycle start date", func(t *testing.T) {
		got := ResolveWeekSchedule(schedule, "week1")
		if !got.IsConfigured {
			t.Fatal("expected a configured schedule")
		}
		if got.Day1Date != "2026-01-06" || got.Day2Date != "2026-01-08" {
			t.Errorf("dates = %s / %s, want 2026-01-06 / 2026-01-08", got.Day1Date, got.Day2Date)
		}
	})

	t.Run("week 3 lands 14 days later", func(t *testing.T) {
		got := ResolveWeekSchedule(schedule, "week3")
		if got.Day1Date != "2026-01-20" || got.Day2Date != "2026-01-22" {
			t.Errorf("dates = %s / %s, want 2026-01-20 / 2026-01-22", got.Day1Date, got.Day2Date)
		}
	})

	t.Run("no start date yields weekdays only", func(t *testing.T) {
		got := ResolveWeekSchedule(&models.ScheduleSettings{}, "week1")
		if got.IsConfigured {
			t.Error("expected an unconfigured schedule")
		}
		if got.Day1Date != "" || got.Day2Date != "" {
			t.Errorf("dates should be empty, got %s / %s", got.Day1Date, got.Day2Date)
		}
		if got.Day1Weekday != models.Tuesday || got.Day2Weekday != models.Thursday {
			t.Errorf("weekdays = %s / %s, want the Tuesday/Thursday defaults", got.Day1Weekday, got.Day2Weekday)
		}
	})

	t.Run("unparseable start date degrades to weekdays only", func(t *testing.T) {
		got := ResolveWeekSchedule(&models.ScheduleSettings{CycleStartDate: "next tuesday"}, "week1")
		if got.IsConfigured {
			t.Error("expected an unconfigured schedule")
		}
	})

	t.Run("nil schedule uses every default", func(t *testing.T) {
		got := ResolveWeekSchedule(nil, "week2")
		if got.Day1Weekday != models.Tuesday || got.DayOffset != 2 {
			t.Errorf("got %+v, want Tuesday with offset 2", got)
		}
	})
}

func TestLiftDaySlots(t *testing.T) {
	day1 := LiftsForDaySlot(nil, models.Day1)
	day2 := LiftsForDaySlot(nil, models.Day2)

	wantDay1 := []models.Lift{models.LiftDeadlift, models.LiftBench}
	wantDay2 := []models.Lift{models.LiftSquat, models.LiftPress}
	if len(day1) != 2 || day1[0] != wantDay1[0] || day1[1] != wantDay1[1] {
		t.Errorf("day 1 lifts = %v, want %v", day1, wantDay1)
	}
	if len(day2) != 2 || day2[0] != wantDay2[0] || day2[1] != wantDay2[1] {
		t.Errorf("day 2 lifts = %v, want %v", day2, wantDay2)
	}

	custom := &models.ScheduleSettings{
		LiftDayAssignments: map[models.Lift]models.DaySlot{
			models.LiftSquat: models.Day1,
		},
	}
	if got := LiftDaySlot(custom, models.LiftSquat); got != models.Day1 {
		t.Errorf("reassigned squat = %s, want day1", got)
	}
}
