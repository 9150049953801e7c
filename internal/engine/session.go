package engine

import (
	"strings"
	"time"

	"coachdash/internal/models"
)

// EffectiveWeek is a client's resolved mode and the week key actually
// used for prescription.
type EffectiveWeek struct {
	Mode    models.SessionMode
	WeekKey string
}

// ResolveEffectiveWeek determines a client's effective session mode and
// week for the given nominal week. The per-week mode map wins over the
// legacy per-cycle default; absence means normal. In slide mode the
// stored flow week is used when it names an existing week, otherwise
// the immediately preceding week in sorted order; the first week has
// nothing to slide back to and keeps its nominal key.
func ResolveEffectiveWeek(
	client models.Client,
	cycleNumber int,
	currentWeekKey string,
	settings models.CycleSettings,
) EffectiveWeek {
	state, hasState := client.SessionStateByCycle[cycleNumber]
	mode := models.ModeNormal
	if hasState {
		if perWeek, ok := state.ModeByWeek[currentWeekKey]; ok && perWeek != "" {
			mode = perWeek
		} else if state.Mode != "" {
			mode = state.Mode
		}
	}

	effective := EffectiveWeek{Mode: mode, WeekKey: currentWeekKey}
	if mode != models.ModeSlide {
		return effective
	}

	flowKey := ""
	if hasState {
		if perWeek, ok := state.FlowWeekKeyByWeek[currentWeekKey]; ok && perWeek != "" {
			flowKey = perWeek
		} else {
			flowKey = state.FlowWeekKey
		}
	}
	if flowKey != "" {
		if _, ok := settings[flowKey]; ok {
			effective.WeekKey = flowKey
			return effective
		}
	}

	sorted := SortedWeekKeys(settings)
	for i, key := range sorted {
		if key == currentWeekKey && i > 0 {
			effective.WeekKey = sorted[i-1]
			break
		}
	}
	return effective
}

// Resolve runs the full per-client prescription pipeline for one lift:
// mode resolution, week-skip handling, override reconciliation against
// the effective week, calculation, and the mode's post-transform.
func Resolve(
	client models.Client,
	lift models.Lift,
	cycleNumber int,
	currentWeekKey string,
	settings models.CycleSettings,
	history []models.HistoricalRecord,
	now time.Time,
) CalculatedWorkout {
	effective := ResolveEffectiveWeek(client, cycleNumber, currentWeekKey, settings)

	empty := CalculatedWorkout{
		Client:           client,
		SessionMode:      effective.Mode,
		EffectiveWeekKey: effective.WeekKey,
	}

	if effective.Mode == models.ModePauseWeek {
		return empty
	}

	template, ok := settings[effective.WeekKey]
	if !ok {
		return empty
	}

	globalScheme := RepScheme(template.Reps.Workset3)
	assigned := client.WeekAssignmentsByCycle[cycleNumber][effective.WeekKey]
	if assigned == "" {
		assigned = globalScheme
	}
	if assigned == SkipAssignment {
		return empty
	}

	workout := Calculate(client, lift, ReconcileTemplateForOverride(template, assigned), history, cycleNumber, now)
	workout.SessionMode = effective.Mode
	workout.EffectiveWeekKey = effective.WeekKey

	switch effective.Mode {
	case models.ModeRecovery:
		workout.PRTarget = nil
		for i, set := range workout.Sets {
			if set.Type == SetWork && set.Set == 3 {
				workout.Sets[i].Reps = strings.ReplaceAll(set.Reps, "+", "")
			}
		}
	case models.ModeJackShit:
		workout.PRTarget = nil
		workSets := workout.Sets[:0]
		for _, set := range workout.Sets {
			if set.Type == SetWork {
				workSets = append(workSets, set)
			}
		}
		workout.Sets = workSets
	}

	return workout
}
