package engine

import (
	"fmt"

	"coachdash/internal/models"
)

// shiftWeekMap rebuilds a week-keyed map with numbers strictly greater
// than pivot moved by delta. When dropPivot is set the entry at exactly
// pivot is discarded. Keys without digits are dropped; the result is
// always a fresh map.
func shiftWeekMap[V any](m map[string]V, pivot, delta int, dropPivot bool) map[string]V {
	out := make(map[string]V, len(m))
	for key, value := range m {
		num := WeekNumber(key)
		if num < 1 {
			continue
		}
		if dropPivot && num == pivot {
			continue
		}
		if num > pivot {
			num += delta
		}
		out[WeekKey(num)] = value
	}
	return out
}

// DuplicateWeek inserts a clone of the named week directly after it;
// every later week shifts up by one and all names are renumbered. The
// key set stays contiguous from week1.
func DuplicateWeek(settings models.CycleSettings, weekKey string) (models.CycleSettings, error) {
	weekNum := WeekNumber(weekKey)
	if weekNum < 1 {
		return nil, fmt.Errorf("invalid week key %q", weekKey)
	}
	source, ok := settings[weekKey]
	if !ok {
		return nil, fmt.Errorf("week %q does not exist", weekKey)
	}

	next := make(models.CycleSettings, len(settings)+1)
	for key, week := range settings {
		num := WeekNumber(key)
		if num < 1 {
			continue
		}
		if num > weekNum {
			num++
		}
		cloned := week.Clone()
		cloned.Name = WeekName(num)
		next[WeekKey(num)] = cloned
	}

	inserted := source.Clone()
	inserted.Name = WeekName(weekNum + 1)
	next[WeekKey(weekNum+1)] = inserted
	return next, nil
}

// DeleteWeek removes the named week and shifts later weeks down by one.
// The last remaining week of a cycle cannot be deleted.
func DeleteWeek(settings models.CycleSettings, weekKey string) (models.CycleSettings, error) {
	weekNum := WeekNumber(weekKey)
	if weekNum < 1 {
		return nil, fmt.Errorf("invalid week key %q", weekKey)
	}
	if _, ok := settings[weekKey]; !ok {
		return nil, fmt.Errorf("week %q does not exist", weekKey)
	}
	if len(settings) <= 1 {
		return nil, fmt.Errorf("cannot delete the only week of a cycle")
	}

	next := make(models.CycleSettings, len(settings)-1)
	for key, week := range settings {
		num := WeekNumber(key)
		if num < 1 || num == weekNum {
			continue
		}
		if num > weekNum {
			num--
		}
		cloned := week.Clone()
		cloned.Name = WeekName(num)
		next[WeekKey(num)] = cloned
	}
	return next, nil
}

// ClampCurrentWeek adjusts a current-week pointer after deleting a
// week: at the deleted week it clamps to the new total, past it it
// slides down by one, before it it is untouched.
func ClampCurrentWeek(currentWeekKey string, deletedWeekNum, totalWeeks int) string {
	current := WeekNumber(currentWeekKey)
	if current < 1 {
		current = 1
	}
	switch {
	case current == deletedWeekNum:
		current = min(deletedWeekNum, totalWeeks)
	case current > deletedWeekNum:
		current--
	}
	current = max(1, min(current, totalWeeks))
	return WeekKey(current)
}

// shiftClientWeekData moves every week-keyed client artifact for one
// cycle by the same pivot/delta rule. Overrides are reduced to true
// overrides against the old settings before shifting and normalized
// against the new settings afterward, so the duplicated week never
// inherits per-client overrides.
func shiftClientWeekData(
	client models.Client,
	cycleNumber, pivot, delta int,
	dropPivot bool,
	oldSettings, newSettings models.CycleSettings,
) models.Client {
	out := client.Clone()

	overrides := make(map[string]string)
	for weekKey, scheme := range out.WeekAssignmentsByCycle[cycleNumber] {
		if scheme == SkipAssignment || scheme != WeekRepScheme(oldSettings, weekKey) {
			overrides[weekKey] = scheme
		}
	}
	shifted := shiftWeekMap(overrides, pivot, delta, dropPivot)
	if out.WeekAssignmentsByCycle == nil {
		out.WeekAssignmentsByCycle = make(map[int]map[string]string)
	}
	out.WeekAssignmentsByCycle[cycleNumber] = NormalizeWeekAssignments(shifted, newSettings)

	if logged, ok := out.LoggedSetInputsByCycle[cycleNumber]; ok {
		out.LoggedSetInputsByCycle[cycleNumber] = shiftWeekMap(logged, pivot, delta, dropPivot)
	}

	if state, ok := out.SessionStateByCycle[cycleNumber]; ok {
		state.ModeByWeek = shiftWeekMap(state.ModeByWeek, pivot, delta, dropPivot)
		state.FlowWeekKeyByWeek = shiftWeekMap(state.FlowWeekKeyByWeek, pivot, delta, dropPivot)
		out.SessionStateByCycle[cycleNumber] = state
	}

	return out
}

// ApplyWeekInsertToClient shifts a client's per-week artifacts after a
// week was duplicated: entries past the source week move up by one,
// entries at or before it stay, and the new week starts clean.
func ApplyWeekInsertToClient(
	client models.Client,
	cycleNumber, insertedAfterWeekNum int,
	oldSettings, newSettings models.CycleSettings,
) models.Client {
	return shiftClientWeekData(client, cycleNumber, insertedAfterWeekNum, 1, false, oldSettings, newSettings)
}

// ApplyWeekDeleteToClient shifts a client's per-week artifacts after a
// week was deleted: entries at the deleted week are dropped, later
// entries move down by one.
func ApplyWeekDeleteToClient(
	client models.Client,
	cycleNumber, deletedWeekNum int,
	oldSettings, newSettings models.CycleSettings,
) models.Client {
	return shiftClientWeekData(client, cycleNumber, deletedWeekNum, -1, true, oldSettings, newSettings)
}

// RemoveCycle strips one cycle from the settings graph. Emptying the
// settings map reseeds a bare cycle 1 so at least one cycle always
// exists.
func RemoveCycle(settings models.AppSettings, cycleNumber int) models.AppSettings {
	out := settings.Clone()
	delete(out.CycleSettingsByCycle, cycleNumber)
	if len(out.CycleSettingsByCycle) == 0 {
		if out.CycleSettingsByCycle == nil {
			out.CycleSettingsByCycle = make(map[int]models.CycleSettings)
		}
		out.CycleSettingsByCycle[1] = models.CycleSettings{}
	}
	delete(out.CycleNames, cycleNumber)
	if len(out.CycleNames) == 0 {
		if out.CycleNames == nil {
			out.CycleNames = make(map[int]string)
		}
		out.CycleNames[1] = "Cycle 1"
	}
	delete(out.CycleSchedulesByCycle, cycleNumber)
	return out
}

// StripClientCycle removes every reference a client holds to a deleted
// cycle; a client currently on that cycle returns to cycle 1.
func StripClientCycle(client models.Client, cycleNumber int) models.Client {
	out := client.Clone()
	if out.Cycle() == cycleNumber {
		out.CurrentCycleNumber = 1
	}
	delete(out.WeekAssignmentsByCycle, cycleNumber)
	delete(out.TrainingMaxesByCycle, cycleNumber)
	return out
}
