package engine

import "testing"

func TestRoundToNearestFive(t *testing.T) {
	tests := []struct {
		name   string
		weight float64
		want   float64
	}{
		{"already a multiple", 240, 240},
		{"rounds down", 141, 140},
		{"rounds up", 143, 145},
		{"midpoint rounds up", 117.5, 120},
		{"90% of 283", 283 * 0.9, 255},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoundToNearestFive(tt.weight)
			if got != tt.want {
				t.Errorf("RoundToNearestFive(%v) = %v, want %v", tt.weight, got, tt.want)
			}
		})
	}
}

func TestRoundToNearestFive_Idempotent(t *testing.T) {
	for _, weight := range []float64{0, 1, 2.4, 2.5, 117.5, 141, 283, 999.9} {
		once := RoundToNearestFive(weight)
		twice := RoundToNearestFive(once)
		if once != twice {
			t.Errorf("RoundToNearestFive not idempotent at %v: %v then %v", weight, once, twice)
		}
	}
}

func TestPlatesPerSide(t *testing.T) {
	tests := []struct {
		name   string
		weight float64
		want   string
	}{
		{"bar only", 45, ""},
		{"below bar", 40, ""},
		{"135 is one plate", 135, "45"},
		{"two plates", 225, "45, 45"},
		{"three plates", 315, "45, 45, 45"},
		{"mixed denominations", 185, "45, 25"},
		{"small plates", 100, "25, 2.5"},
		{"remainder below 2.5 dropped", 50, "2.5"},
		{"sub-plate remainder silently dropped", 48, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlatesPerSide(tt.weight)
			if got != tt.want {
				t.Errorf("PlatesPerSide(%v) = %q, want %q", tt.weight, got, tt.want)
			}
		})
	}
}

func TestEstimated1RM(t *testing.T) {
	tests := []struct {
		name   string
		weight float64
		reps   int
		want   float64
	}{
		{"single is its own max", 263, 1, 263},
		{"225 x 5", 225, 5, 263},
		{"200 x 3", 200, 3, 220},
		{"185 x 10", 185, 10, 247},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Estimated1RM(tt.weight, tt.reps)
			if got != tt.want {
				t.Errorf("Estimated1RM(%v, %d) = %v, want %v", tt.weight, tt.reps, got, tt.want)
			}
		})
	}
}

func TestRepsRequiredForTarget(t *testing.T) {
	tests := []struct {
		name   string
		target float64
		weight float64
		want   int
	}{
		{"zero weight", 250, 0, 0},
		{"weight already beats target", 200, 240, 1},
		{"weight equals target", 240, 240, 1},
		{"needs a few reps", 264, 240, 4},
		{"big gap", 300, 240, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RepsRequiredForTarget(tt.target, tt.weight)
			if got != tt.want {
				t.Errorf("RepsRequiredForTarget(%v, %v) = %d, want %d", tt.target, tt.weight, got, tt.want)
			}
		})
	}
}

func TestRepsRequiredForTarget_Monotonic(t *testing.T) {
	prev := 0
	for target := 200.0; target <= 320; target += 5 {
		got := RepsRequiredForTarget(target, 240)
		if got < prev {
			t.Fatalf("reps decreased from %d to %d at target %v", prev, got, target)
		}
		prev = got
	}
}
