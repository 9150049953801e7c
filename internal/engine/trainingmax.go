package engine

import "coachdash/internal/models"

// trainingMaxFraction is the working percentage of a one-rep max.
const trainingMaxFraction = 0.9

// TrainingMax derives a training max from a one-rep max: 90%, rounded
// to the nearest 5.
func TrainingMax(oneRepMax float64) float64 {
	return RoundToNearestFive(oneRepMax * trainingMaxFraction)
}

// TrainingMaxes derives a full training-max set from a one-rep-max set.
func TrainingMaxes(oneRepMaxes models.TrainingMaxSet) models.TrainingMaxSet {
	out := make(models.TrainingMaxSet, len(models.Lifts))
	for _, lift := range models.Lifts {
		out[lift] = TrainingMax(oneRepMaxes[lift])
	}
	return out
}

// TrainingMaxForCycle resolves the training max used for prescription:
// the cycle's stored entry, falling back to the flat legacy field. For
// cycle 1 a stored value above the lift's one-rep max is treated as
// drift and replaced with the 90%-derived value.
func TrainingMaxForCycle(client models.Client, lift models.Lift, cycleNumber int) float64 {
	tm, ok := 0.0, false
	if byCycle, exists := client.TrainingMaxesByCycle[cycleNumber]; exists {
		tm, ok = byCycle[lift]
	}
	if !ok {
		tm = client.TrainingMaxes[lift]
	}
	if cycleNumber == 1 {
		if oneRM, exists := client.OneRepMaxes[lift]; exists && oneRM > 0 && tm > oneRM {
			tm = TrainingMax(oneRM)
		}
	}
	return tm
}
