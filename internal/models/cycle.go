package models

// Percentages holds the five per-set fractions of training max for one
// week, warm-ups first.
type Percentages struct {
	Warmup1  float64 `json:"warmup1"`
	Warmup2  float64 `json:"warmup2"`
	Workset1 float64 `json:"workset1"`
	Workset2 float64 `json:"workset2"`
	Workset3 float64 `json:"workset3"`
}

// Reps holds the prescribed rep counts for the three work sets. Workset3
// stays a string so the "5+" AMRAP marker survives round trips.
type Reps struct {
	Workset1 int    `json:"workset1"`
	Workset2 int    `json:"workset2"`
	Workset3 string `json:"workset3"`
}

// WeekTemplate is the shared prescription for one week of a cycle.
type WeekTemplate struct {
	Name                string                   `json:"name"`
	Percentages         Percentages              `json:"percentages"`
	Reps                Reps                     `json:"reps"`
	Accessories         map[Lift][]string        `json:"accessories,omitempty"`
	AccessoryVisibility map[Lift]map[string]bool `json:"accessoryVisibility,omitempty"`
}

// Clone returns a deep copy of the template.
func (w WeekTemplate) Clone() WeekTemplate {
	out := w
	if w.Accessories != nil {
		out.Accessories = make(map[Lift][]string, len(w.Accessories))
		for lift, names := range w.Accessories {
			out.Accessories[lift] = append([]string(nil), names...)
		}
	}
	if w.AccessoryVisibility != nil {
		out.AccessoryVisibility = make(map[Lift]map[string]bool, len(w.AccessoryVisibility))
		for lift, visible := range w.AccessoryVisibility {
			m := make(map[string]bool, len(visible))
			for name, on := range visible {
				m[name] = on
			}
			out.AccessoryVisibility[lift] = m
		}
	}
	return out
}

// CycleSettings maps week keys ("week1", "week2", ...) to templates.
// Keys are ordered by their embedded integer, never by insertion; the
// structural editors keep the numbering contiguous from 1.
type CycleSettings map[string]WeekTemplate

// Clone returns a deep copy of the settings.
func (c CycleSettings) Clone() CycleSettings {
	if c == nil {
		return nil
	}
	out := make(CycleSettings, len(c))
	for key, week := range c {
		out[key] = week.Clone()
	}
	return out
}

// ScheduleSettings anchors a cycle to the calendar. An empty
// CycleStartDate means the schedule is unconfigured and only weekday
// labels can be derived.
type ScheduleSettings struct {
	CycleStartDate     string           `json:"cycleStartDate"`
	Day1Weekday        Weekday          `json:"day1Weekday"`
	Day2Weekday        Weekday          `json:"day2Weekday"`
	LiftDayAssignments map[Lift]DaySlot `json:"liftDayAssignments,omitempty"`
}

// AppSettings is the globally owned configuration. At least one cycle
// entry always exists; cycle 1 is the fallback default.
type AppSettings struct {
	CycleSettingsByCycle  map[int]CycleSettings    `json:"cycleSettingsByCycle"`
	CycleNames            map[int]string           `json:"cycleNames"`
	CycleSchedulesByCycle map[int]ScheduleSettings `json:"cycleSchedulesByCycle,omitempty"`
	SettingsUpdatedAt     string                   `json:"settingsUpdatedAt,omitempty"`
}

// Clone returns a deep copy of the settings graph.
func (a AppSettings) Clone() AppSettings {
	out := AppSettings{SettingsUpdatedAt: a.SettingsUpdatedAt}
	if a.CycleSettingsByCycle != nil {
		out.CycleSettingsByCycle = make(map[int]CycleSettings, len(a.CycleSettingsByCycle))
		for cycle, settings := range a.CycleSettingsByCycle {
			out.CycleSettingsByCycle[cycle] = settings.Clone()
		}
	}
	if a.CycleNames != nil {
		out.CycleNames = make(map[int]string, len(a.CycleNames))
		for cycle, name := range a.CycleNames {
			out.CycleNames[cycle] = name
		}
	}
	if a.CycleSchedulesByCycle != nil {
		out.CycleSchedulesByCycle = make(map[int]ScheduleSettings, len(a.CycleSchedulesByCycle))
		for cycle, schedule := range a.CycleSchedulesByCycle {
			copied := schedule
			if schedule.LiftDayAssignments != nil {
				copied.LiftDayAssignments = make(map[Lift]DaySlot, len(schedule.LiftDayAssignments))
				for lift, slot := range schedule.LiftDayAssignments {
					copied.LiftDayAssignments[lift] = slot
				}
			}
			out.CycleSchedulesByCycle[cycle] = copied
		}
	}
	return out
}
