package models

// Lift is one of the four main barbell lifts. The set is closed and is
// never extended at runtime.
type Lift string

const (
	LiftSquat    Lift = "Squat"
	LiftBench    Lift = "Bench"
	LiftDeadlift Lift = "Deadlift"
	LiftPress    Lift = "Press"
)

// Lifts is the canonical display order used everywhere a full lift list
// is rendered or iterated.
var Lifts = []Lift{LiftDeadlift, LiftBench, LiftSquat, LiftPress}

// ParseLift matches a lift name case-sensitively against the closed set.
func ParseLift(s string) (Lift, bool) {
	switch Lift(s) {
	case LiftSquat, LiftBench, LiftDeadlift, LiftPress:
		return Lift(s), true
	}
	return "", false
}

// TrainingMaxSet maps each lift to a weight in pounds.
type TrainingMaxSet map[Lift]float64

// Clone returns an independent copy of the set.
func (t TrainingMaxSet) Clone() TrainingMaxSet {
	if t == nil {
		return nil
	}
	out := make(TrainingMaxSet, len(t))
	for lift, weight := range t {
		out[lift] = weight
	}
	return out
}

type Weekday string

const (
	Sunday    Weekday = "Sunday"
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
)

// WeekdayOrder indexes weekdays Sunday-first for day-offset arithmetic.
var WeekdayOrder = []Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// DaySlot names one of the two weekly training days.
type DaySlot string

const (
	Day1 DaySlot = "day1"
	Day2 DaySlot = "day2"
)
