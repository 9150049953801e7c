package engine

import (
	"testing"

	"coachdash/internal/models"
)

func TestWeekNumber(t *testing.T) {
	tests := []struct {
		key  string
		want int
	}{
		{"week1", 1},
		{"week3", 3},
		{"week12", 12},
		{"Week 4", 4},
		{"week", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := WeekNumber(tt.key); got != tt.want {
				t.Errorf("WeekNumber(%q) = %d, want %d", tt.key, got, tt.want)
			}
		})
	}
}

func TestWeekKeyRoundTrip(t *testing.T) {
	for n := 1; n <= 20; n++ {
		if got := WeekNumber(WeekKey(n)); got != n {
			t.Errorf("WeekNumber(WeekKey(%d)) = %d", n, got)
		}
	}
}

func TestSortedWeekKeys(t *testing.T) {
	settings := models.CycleSettings{
		"week10": {},
		"week2":  {},
		"week1":  {},
	}
	got := SortedWeekKeys(settings)
	want := []string{"week1", "week2", "week10"}
	if len(got) != len(want) {
		t.Fatalf("got %d keys, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("key %d = %q, want %q", i, got[i], want[i])
		}
	}
}
