package models

import "time"

// SessionMode is a per-client, per-week exception to normal
// prescription.
type SessionMode string

const (
	ModeNormal    SessionMode = "normal"
	ModeSlide     SessionMode = "slide"
	ModeJackShit  SessionMode = "jack_shit"
	ModePauseWeek SessionMode = "pause_week"
	ModeRecovery  SessionMode = "recovery"
)

// ParseSessionMode matches a mode name against the closed set.
func ParseSessionMode(s string) (SessionMode, bool) {
	switch SessionMode(s) {
	case ModeNormal, ModeSlide, ModeJackShit, ModePauseWeek, ModeRecovery:
		return SessionMode(s), true
	}
	return "", false
}

// SessionState holds a client's exception state for one cycle. The
// per-week maps take precedence over the legacy per-cycle defaults when
// an entry is present.
type SessionState struct {
	Mode              SessionMode            `json:"mode"`
	FlowWeekKey       string                 `json:"flowWeekKey,omitempty"`
	ModeByWeek        map[string]SessionMode `json:"modeByWeek,omitempty"`
	FlowWeekKeyByWeek map[string]string      `json:"flowWeekKeyByWeek,omitempty"`
	Note              string                 `json:"note,omitempty"`
}

// LoggedSet is the actual performance a coach entered against one
// prescribed slot. It overlays the prescription and never alters it.
type LoggedSet struct {
	Weight    float64   `json:"weight"`
	Reps      int       `json:"reps"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LoggedSetMap keys logged sets by prescribed set index.
type LoggedSetMap map[string]LoggedSet

// LoggedWeek maps lift → set index → logged set for one week.
type LoggedWeek map[Lift]LoggedSetMap

// Client is one roster member. Cycle-scoped maps accrete entries as
// cycles progress and shrink only through explicit cycle deletion.
type Client struct {
	ID                     string                        `json:"id"`
	Name                   string                        `json:"name"`
	RosterOrder            int                           `json:"rosterOrder"`
	Notes                  string                        `json:"notes,omitempty"`
	OneRepMaxes            TrainingMaxSet                `json:"oneRepMaxes"`
	TrainingMaxes          TrainingMaxSet                `json:"trainingMaxes"`
	TrainingMaxesByCycle   map[int]TrainingMaxSet        `json:"trainingMaxesByCycle,omitempty"`
	CurrentCycleNumber     int                           `json:"currentCycleNumber,omitempty"`
	WeekAssignmentsByCycle map[int]map[string]string     `json:"weekAssignmentsByCycle,omitempty"`
	SessionStateByCycle    map[int]SessionState          `json:"sessionStateByCycle,omitempty"`
	LoggedSetInputsByCycle map[int]map[string]LoggedWeek `json:"loggedSetInputsByCycle,omitempty"`
}

// Cycle returns the client's current cycle number, defaulting to 1.
func (c *Client) Cycle() int {
	if c.CurrentCycleNumber < 1 {
		return 1
	}
	return c.CurrentCycleNumber
}

// Clone returns a deep copy of the client.
func (c Client) Clone() Client {
	out := c
	out.OneRepMaxes = c.OneRepMaxes.Clone()
	out.TrainingMaxes = c.TrainingMaxes.Clone()
	if c.TrainingMaxesByCycle != nil {
		out.TrainingMaxesByCycle = make(map[int]TrainingMaxSet, len(c.TrainingMaxesByCycle))
		for cycle, set := range c.TrainingMaxesByCycle {
			out.TrainingMaxesByCycle[cycle] = set.Clone()
		}
	}
	if c.WeekAssignmentsByCycle != nil {
		out.WeekAssignmentsByCycle = make(map[int]map[string]string, len(c.WeekAssignmentsByCycle))
		for cycle, assignments := range c.WeekAssignmentsByCycle {
			m := make(map[string]string, len(assignments))
			for week, scheme := range assignments {
				m[week] = scheme
			}
			out.WeekAssignmentsByCycle[cycle] = m
		}
	}
	if c.SessionStateByCycle != nil {
		out.SessionStateByCycle = make(map[int]SessionState, len(c.SessionStateByCycle))
		for cycle, state := range c.SessionStateByCycle {
			copied := state
			if state.ModeByWeek != nil {
				copied.ModeByWeek = make(map[string]SessionMode, len(state.ModeByWeek))
				for week, mode := range state.ModeByWeek {
					copied.ModeByWeek[week] = mode
				}
			}
			if state.FlowWeekKeyByWeek != nil {
				copied.FlowWeekKeyByWeek = make(map[string]string, len(state.FlowWeekKeyByWeek))
				for week, flow := range state.FlowWeekKeyByWeek {
					copied.FlowWeekKeyByWeek[week] = flow
				}
			}
			out.SessionStateByCycle[cycle] = copied
		}
	}
	if c.LoggedSetInputsByCycle != nil {
		out.LoggedSetInputsByCycle = make(map[int]map[string]LoggedWeek, len(c.LoggedSetInputsByCycle))
		for cycle, byWeek := range c.LoggedSetInputsByCycle {
			weeks := make(map[string]LoggedWeek, len(byWeek))
			for week, byLift := range byWeek {
				lifts := make(LoggedWeek, len(byLift))
				for lift, sets := range byLift {
					m := make(LoggedSetMap, len(sets))
					for idx, set := range sets {
						m[idx] = set
					}
					lifts[lift] = m
				}
				weeks[week] = lifts
			}
			out.LoggedSetInputsByCycle[cycle] = weeks
		}
	}
	return out
}
