package engine

import "coachdash/internal/models"

// NormalizeWeekAssignments prunes a client's per-week overrides for one
// cycle: entries for weeks that no longer exist are dropped, and an
// override equal to the week's own global scheme is a no-op and is
// removed. "N/A" always survives. Idempotent.
func NormalizeWeekAssignments(assignments map[string]string, settings models.CycleSettings) map[string]string {
	normalized := make(map[string]string)
	if assignments == nil || settings == nil {
		return normalized
	}
	for weekKey, scheme := range assignments {
		if _, ok := settings[weekKey]; !ok {
			continue
		}
		if scheme == SkipAssignment || scheme != WeekRepScheme(settings, weekKey) {
			normalized[weekKey] = scheme
		}
	}
	return normalized
}

// NormalizeAssignmentsByCycle applies NormalizeWeekAssignments per
// cycle, dropping cycles that end up with no true overrides.
func NormalizeAssignmentsByCycle(
	byCycle map[int]map[string]string,
	settingsByCycle map[int]models.CycleSettings,
) map[int]map[string]string {
	cleaned := make(map[int]map[string]string)
	for cycle, assignments := range byCycle {
		normalized := NormalizeWeekAssignments(assignments, settingsByCycle[cycle])
		if len(normalized) > 0 {
			cleaned[cycle] = normalized
		}
	}
	return cleaned
}

// PinWarmupPercentages rebuilds cycle settings with every week's
// warm-up fractions forced to the process-wide 50%/60%.
func PinWarmupPercentages(byCycle map[int]models.CycleSettings) map[int]models.CycleSettings {
	pinned := make(map[int]models.CycleSettings, len(byCycle))
	for cycle, settings := range byCycle {
		next := settings.Clone()
		for key, week := range next {
			week.Percentages.Warmup1 = 0.5
			week.Percentages.Warmup2 = 0.6
			next[key] = week
		}
		pinned[cycle] = next
	}
	return pinned
}

// WithDefaultSchedules guarantees every configured cycle has a fully
// populated schedule, layering stored values over the defaults.
func WithDefaultSchedules(
	settingsByCycle map[int]models.CycleSettings,
	existing map[int]models.ScheduleSettings,
) map[int]models.ScheduleSettings {
	schedules := make(map[int]models.ScheduleSettings, len(settingsByCycle))
	for cycle, schedule := range existing {
		schedules[cycle] = schedule
	}
	for cycle := range settingsByCycle {
		stored, ok := schedules[cycle]
		if ok {
			schedules[cycle] = EffectiveSchedule(&stored)
		} else {
			schedules[cycle] = EffectiveSchedule(nil)
		}
	}
	return schedules
}

// NormalizeSettings is the repair pass run on every settings read and
// write: warm-ups pinned, schedules defaulted, cycle names guaranteed,
// and an empty settings map reseeded with a bare cycle 1.
func NormalizeSettings(settings models.AppSettings) models.AppSettings {
	out := settings.Clone()
	if len(out.CycleSettingsByCycle) == 0 {
		out.CycleSettingsByCycle = map[int]models.CycleSettings{1: {}}
	}
	out.CycleSettingsByCycle = PinWarmupPercentages(out.CycleSettingsByCycle)
	if len(out.CycleNames) == 0 {
		out.CycleNames = map[int]string{1: "Cycle 1"}
	}
	out.CycleSchedulesByCycle = WithDefaultSchedules(out.CycleSettingsByCycle, out.CycleSchedulesByCycle)
	return out
}

func allLiftsEqual(a, b models.TrainingMaxSet) bool {
	if a == nil || b == nil {
		return false
	}
	for _, lift := range models.Lifts {
		if a[lift] != b[lift] {
			return false
		}
	}
	return true
}

// RepairTrainingMaxes corrects cycle-1 drift on a client currently on
// cycle 1: stored maxes copied straight from the one-rep maxes, or any
// cycle-1 entry above its one-rep max, cause the full set to be rebuilt
// at 90% of the one-rep maxes, on both the cycle entry and the flat
// fallback. Returns the repaired client and whether anything changed.
func RepairTrainingMaxes(client models.Client) (models.Client, bool) {
	if client.Cycle() != 1 {
		return client, false
	}

	inflatedLegacy := allLiftsEqual(client.TrainingMaxes, client.OneRepMaxes) ||
		allLiftsEqual(client.TrainingMaxesByCycle[1], client.OneRepMaxes)

	active := client.TrainingMaxesByCycle[1]
	if active == nil {
		active = client.TrainingMaxes
	}
	impossible := false
	for _, lift := range models.Lifts {
		oneRM := client.OneRepMaxes[lift]
		if oneRM > 0 && active[lift] > oneRM {
			impossible = true
			break
		}
	}

	if !inflatedLegacy && !impossible {
		return client, false
	}

	corrected := TrainingMaxes(client.OneRepMaxes)
	out := client.Clone()
	out.TrainingMaxes = corrected
	if out.TrainingMaxesByCycle == nil {
		out.TrainingMaxesByCycle = make(map[int]models.TrainingMaxSet)
	}
	out.TrainingMaxesByCycle[1] = corrected.Clone()
	return out, true
}
