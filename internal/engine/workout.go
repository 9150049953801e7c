package engine

import (
	"strconv"
	"time"

	"coachdash/internal/models"
)

// SetType distinguishes warm-ups from work sets.
type SetType string

const (
	SetWarmup SetType = "Warm-up"
	SetWork   SetType = "Work Set"
)

// WorkoutSet is one prescribed set. Reps stays a string so the top
// set's AMRAP marker ("5+") carries through to display.
type WorkoutSet struct {
	Type   SetType
	Set    int
	Label  string
	Weight float64
	Reps   string
	Plates string
}

// PRTarget is the rep count at today's top-set weight that would beat
// the client's best estimated max from the last month by at least 1 lb.
type PRTarget struct {
	Reps         int
	LastMonth1RM float64
}

// CalculatedWorkout is the full prescription for one client and lift.
type CalculatedWorkout struct {
	Client           models.Client
	Sets             []WorkoutSet
	PRTarget         *PRTarget
	SessionMode      models.SessionMode
	EffectiveWeekKey string
}

func prescribedSet(setType SetType, setNumber int, label string, tm, percentage float64, reps string) WorkoutSet {
	weight := RoundToNearestFive(tm * percentage)
	return WorkoutSet{
		Type:   setType,
		Set:    setNumber,
		Label:  label,
		Weight: weight,
		Reps:   reps,
		Plates: PlatesPerSide(weight),
	}
}

// Calculate produces the five ordered sets for a client, lift and week
// template, plus the PR target derived from the client's records in the
// month before now. Identical inputs always produce identical output;
// now anchors only the one-month PR lookback.
func Calculate(
	client models.Client,
	lift models.Lift,
	template models.WeekTemplate,
	history []models.HistoricalRecord,
	cycleNumber int,
	now time.Time,
) CalculatedWorkout {
	tm := TrainingMaxForCycle(client, lift, cycleNumber)

	sets := []WorkoutSet{
		prescribedSet(SetWarmup, 1, "Warm-up 1", tm, template.Percentages.Warmup1, "5"),
		prescribedSet(SetWarmup, 2, "Warm-up 2", tm, template.Percentages.Warmup2, "5"),
		prescribedSet(SetWork, 1, "Work Set 1", tm, template.Percentages.Workset1, strconv.Itoa(template.Reps.Workset1)),
		prescribedSet(SetWork, 2, "Work Set 2", tm, template.Percentages.Workset2, strconv.Itoa(template.Reps.Workset2)),
		prescribedSet(SetWork, 3, "Top Set", tm, template.Percentages.Workset3, template.Reps.Workset3),
	}

	workout := CalculatedWorkout{Client: client, Sets: sets}

	oneMonthAgo := now.AddDate(0, -1, 0)
	lastMonth1RM := 0.0
	for _, record := range history {
		if record.ClientID != client.ID || record.Lift != lift {
			continue
		}
		if record.Date.Before(oneMonthAgo) {
			continue
		}
		if record.Estimated1RM > lastMonth1RM {
			lastMonth1RM = record.Estimated1RM
		}
	}
	if lastMonth1RM > 0 {
		topSetWeight := sets[len(sets)-1].Weight
		workout.PRTarget = &PRTarget{
			Reps:         RepsRequiredForTarget(lastMonth1RM+1, topSetWeight),
			LastMonth1RM: lastMonth1RM,
		}
	}

	return workout
}
