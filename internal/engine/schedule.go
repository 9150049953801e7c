package engine

import (
	"time"

	"coachdash/internal/models"
)

const isoDate = "2006-01-02"

// DefaultSchedule is the schedule applied when a cycle has no stored
// configuration: Tuesday/Thursday, pulls and bench on day 1, squat and
// press on day 2.
func DefaultSchedule() models.ScheduleSettings {
	return models.ScheduleSettings{
		Day1Weekday: models.Tuesday,
		Day2Weekday: models.Thursday,
		LiftDayAssignments: map[models.Lift]models.DaySlot{
			models.LiftDeadlift: models.Day1,
			models.LiftBench:    models.Day1,
			models.LiftSquat:    models.Day2,
			models.LiftPress:    models.Day2,
		},
	}
}

// EffectiveSchedule fills any missing fields of a stored schedule with
// the defaults. A nil schedule yields the defaults wholesale.
func EffectiveSchedule(schedule *models.ScheduleSettings) models.ScheduleSettings {
	effective := DefaultSchedule()
	if schedule == nil {
		return effective
	}
	effective.CycleStartDate = schedule.CycleStartDate
	if schedule.Day1Weekday != "" {
		effective.Day1Weekday = schedule.Day1Weekday
	}
	if schedule.Day2Weekday != "" {
		effective.Day2Weekday = schedule.Day2Weekday
	}
	for lift, slot := range schedule.LiftDayAssignments {
		effective.LiftDayAssignments[lift] = slot
	}
	return effective
}

// WeekSchedule is a week's resolved calendar placement. Day1Date and
// Day2Date are empty unless the cycle has a parseable start date.
type WeekSchedule struct {
	Day1Weekday  models.Weekday
	Day2Weekday  models.Weekday
	Day1Date     string
	Day2Date     string
	WeekNumber   int
	DayOffset    int
	IsConfigured bool
}

func weekdayIndex(day models.Weekday) int {
	for i, d := range models.WeekdayOrder {
		if d == day {
			return i
		}
	}
	return -1
}

// DayOffset is the non-negative weekday distance from day 1 to day 2,
// modulo 7.
func DayOffset(from, to models.Weekday) int {
	fromIdx := weekdayIndex(from)
	toIdx := weekdayIndex(to)
	if fromIdx < 0 || toIdx < 0 {
		return 0
	}
	return (toIdx - fromIdx + 7) % 7
}

// ResolveWeekSchedule maps a week key onto the calendar: day 1 of week
// N lands (N-1)*7 days after the cycle start, day 2 follows by the
// weekday offset. With no usable start date only weekday labels are
// returned.
func ResolveWeekSchedule(schedule *models.ScheduleSettings, weekKey string) WeekSchedule {
	effective := EffectiveSchedule(schedule)
	weekNumber := WeekNumber(weekKey)
	if weekNumber < 1 {
		weekNumber = 1
	}
	resolved := WeekSchedule{
		Day1Weekday: effective.Day1Weekday,
		Day2Weekday: effective.Day2Weekday,
		WeekNumber:  weekNumber,
		DayOffset:   DayOffset(effective.Day1Weekday, effective.Day2Weekday),
	}

	if effective.CycleStartDate == "" {
		return resolved
	}
	start, err := time.ParseInLocation(isoDate, effective.CycleStartDate, time.Local)
	if err != nil {
		return resolved
	}

	day1 := start.AddDate(0, 0, (weekNumber-1)*7)
	day2 := day1.AddDate(0, 0, resolved.DayOffset)
	resolved.Day1Date = day1.Format(isoDate)
	resolved.Day2Date = day2.Format(isoDate)
	resolved.IsConfigured = true
	return resolved
}

// LiftDaySlot returns the day slot a lift trains on, defaulting to
// day 1.
func LiftDaySlot(schedule *models.ScheduleSettings, lift models.Lift) models.DaySlot {
	effective := EffectiveSchedule(schedule)
	if slot, ok := effective.LiftDayAssignments[lift]; ok {
		return slot
	}
	return models.Day1
}

// LiftsForDaySlot returns every lift assigned to the slot, in canonical
// lift order.
func LiftsForDaySlot(schedule *models.ScheduleSettings, slot models.DaySlot) []models.Lift {
	var lifts []models.Lift
	for _, lift := range models.Lifts {
		if LiftDaySlot(schedule, lift) == slot {
			lifts = append(lifts, lift)
		}
	}
	return lifts
}
