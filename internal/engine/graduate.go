package engine

import "coachdash/internal/models"

// Per-cycle training max increments: lower-body lifts move twice as
// fast as pressing lifts.
var graduationIncrements = map[models.Lift]float64{
	models.LiftSquat:    10,
	models.LiftDeadlift: 10,
	models.LiftBench:    5,
	models.LiftPress:    5,
}

// StarterAssignments is the fixed override pattern seeded for every
// client on a freshly graduated cycle, independent of the source
// cycle's week count.
func StarterAssignments() map[string]string {
	return map[string]string{"week1": "5", "week2": "3", "week3": "1"}
}

// GraduateClient advances a client to the new cycle: training maxes
// bump by the per-lift increment from the cycle being graduated, the
// flat fallback follows, and the starter override pattern is seeded.
func GraduateClient(client models.Client, newCycleNumber int) models.Client {
	out := client.Clone()
	previousCycle := out.Cycle()

	source := out.TrainingMaxesByCycle[previousCycle]
	if source == nil {
		source = out.TrainingMaxes
	}
	next := make(models.TrainingMaxSet, len(models.Lifts))
	for _, lift := range models.Lifts {
		next[lift] = source[lift] + graduationIncrements[lift]
	}

	out.CurrentCycleNumber = newCycleNumber
	out.TrainingMaxes = next.Clone()
	if out.TrainingMaxesByCycle == nil {
		out.TrainingMaxesByCycle = make(map[int]models.TrainingMaxSet)
	}
	out.TrainingMaxesByCycle[newCycleNumber] = next
	if out.WeekAssignmentsByCycle == nil {
		out.WeekAssignmentsByCycle = make(map[int]map[string]string)
	}
	out.WeekAssignmentsByCycle[newCycleNumber] = StarterAssignments()
	return out
}

// schemeFamily classifies a week by its top-set rep string into one of
// the canonical families, or "" when it fits none.
func schemeFamily(week models.WeekTemplate) string {
	raw := week.Reps.Workset3
	hasPlus := false
	for i := 0; i < len(raw); i++ {
		if raw[i] == '+' {
			hasPlus = true
		}
	}
	if hasPlus {
		switch RepScheme(raw) {
		case "5":
			return "5+"
		case "3":
			return "3+"
		case "1":
			return "1+"
		}
		return ""
	}
	if RepScheme(raw) == "5" {
		return "5"
	}
	return ""
}

// BuildGraduatedCycleSettings seeds the canonical 4-week template for a
// new cycle from the source cycle: for each family (5+, 3+, 1+, plain
// 5) the most recently defined matching week is taken, falling back
// through the source's week1..week4 when a family has no match, and the
// four results are renamed Week 1..Week 4.
func BuildGraduatedCycleSettings(source models.CycleSettings) models.CycleSettings {
	sorted := SortedWeekKeys(source)

	latestByFamily := make(map[string]models.WeekTemplate)
	for _, key := range sorted {
		week := source[key]
		if family := schemeFamily(week); family != "" {
			latestByFamily[family] = week.Clone()
		}
	}

	pick := func(family string, fallbacks ...string) (models.WeekTemplate, bool) {
		if week, ok := latestByFamily[family]; ok {
			return week, true
		}
		for _, key := range fallbacks {
			if week, ok := source[key]; ok {
				return week.Clone(), true
			}
		}
		return models.WeekTemplate{}, false
	}

	first, last := models.WeekTemplate{}, models.WeekTemplate{}
	if len(sorted) > 0 {
		first = source[sorted[0]].Clone()
		last = source[sorted[len(sorted)-1]].Clone()
	}

	week1, ok := pick("5+", "week1", "week4")
	if !ok {
		week1 = first.Clone()
	}
	week2, ok := pick("3+", "week2", "week1")
	if !ok {
		week2 = first.Clone()
	}
	week3, ok := pick("1+", "week3", "week2")
	if !ok {
		week3 = first.Clone()
	}
	week4, ok := pick("5", "week4", "week1")
	if !ok {
		week4 = last.Clone()
	}

	next := models.CycleSettings{
		"week1": week1,
		"week2": week2,
		"week3": week3,
		"week4": week4,
	}
	for num := 1; num <= 4; num++ {
		week := next[WeekKey(num)]
		week.Name = WeekName(num)
		next[WeekKey(num)] = week
	}
	return next
}
