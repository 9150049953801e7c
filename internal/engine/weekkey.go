package engine

import (
	"fmt"
	"sort"
	"strconv"

	"coachdash/internal/models"
)

// WeekNumber extracts the embedded integer from a week key ("week3" →
// 3). Keys without digits return 0; callers that need a usable week
// clamp to 1 themselves.
func WeekNumber(weekKey string) int {
	start, end := -1, -1
	for i, r := range weekKey {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			end = i + 1
		} else if start >= 0 {
			break
		}
	}
	if start < 0 {
		return 0
	}
	n, err := strconv.Atoi(weekKey[start:end])
	if err != nil {
		return 0
	}
	return n
}

// WeekKey formats a week number back into its map key.
func WeekKey(weekNumber int) string {
	return fmt.Sprintf("week%d", weekNumber)
}

// WeekName formats the display name for a week number.
func WeekName(weekNumber int) string {
	return fmt.Sprintf("Week %d", weekNumber)
}

// SortedWeekKeys returns a cycle's week keys ordered by embedded
// number, not insertion order.
func SortedWeekKeys(settings models.CycleSettings) []string {
	keys := make([]string, 0, len(settings))
	for key := range settings {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return WeekNumber(keys[i]) < WeekNumber(keys[j])
	})
	return keys
}
