package engine

import (
	"math"
	"strconv"
	"strings"
)

// BarWeight is the fixed weight of the barbell in pounds.
const BarWeight = 45

// plateDenominations, largest first, for one side of the bar.
var plateDenominations = []float64{45, 25, 10, 5, 2.5}

// RoundToNearestFive rounds a weight to the nearest multiple of 5.
// Every displayed or loaded weight goes through this.
func RoundToNearestFive(weight float64) float64 {
	return math.Round(weight/5) * 5
}

// PlatesPerSide greedily decomposes the per-side load of a barbell into
// standard plates, e.g. "45, 10, 5". Weights at or below the bar return
// "". A remainder smaller than 2.5 is dropped, matching how the loading
// chart has always read.
func PlatesPerSide(totalWeight float64) string {
	if totalWeight <= BarWeight {
		return ""
	}
	perSide := (totalWeight - BarWeight) / 2
	var plates []string
	for _, plate := range plateDenominations {
		for perSide >= plate {
			plates = append(plates, strconv.FormatFloat(plate, 'f', -1, 64))
			perSide -= plate
		}
	}
	return strings.Join(plates, ", ")
}

// Estimated1RM estimates a one-rep max from a set using the Epley
// formula. A single is its own max.
func Estimated1RM(weight float64, reps int) float64 {
	if reps == 1 {
		return weight
	}
	return math.Round(weight * (1 + float64(reps)/30))
}

// RepsRequiredForTarget returns the rep count at setWeight whose Epley
// estimate reaches target1RM. Monotonic: a higher target or lower set
// weight never lowers the answer.
func RepsRequiredForTarget(target1RM, setWeight float64) int {
	if setWeight <= 0 {
		return 0
	}
	ratio := target1RM / setWeight
	if ratio <= 1 {
		return 1
	}
	return int(math.Ceil((ratio - 1) * 30))
}
