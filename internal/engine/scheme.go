package engine

import "coachdash/internal/models"

// SkipAssignment marks a week a client sits out entirely.
const SkipAssignment = "N/A"

// RepScheme reduces a top-set rep string to its scheme digits: "5+" →
// "5", "3+" → "3", "1+" → "1", "5" → "5". Empty or digitless input
// yields "?".
func RepScheme(workset3 string) string {
	digits := make([]byte, 0, len(workset3))
	for i := 0; i < len(workset3); i++ {
		if workset3[i] >= '0' && workset3[i] <= '9' {
			digits = append(digits, workset3[i])
		}
	}
	if len(digits) == 0 {
		return "?"
	}
	return string(digits)
}

// WeekRepScheme returns the scheme of a week's own stored template, or
// "?" when the week does not exist.
func WeekRepScheme(settings models.CycleSettings, weekKey string) string {
	week, ok := settings[weekKey]
	if !ok {
		return "?"
	}
	return RepScheme(week.Reps.Workset3)
}

// RepsForScheme returns the canonical rep template of a scheme family.
// Unrecognized schemes fall back to the caller's template.
func RepsForScheme(scheme string, fallback models.Reps) models.Reps {
	switch scheme {
	case "5":
		return models.Reps{Workset1: 5, Workset2: 5, Workset3: "5+"}
	case "3":
		return models.Reps{Workset1: 3, Workset2: 3, Workset3: "3+"}
	case "1":
		return models.Reps{Workset1: 5, Workset2: 3, Workset3: "1+"}
	}
	return fallback
}

// PercentagesForScheme returns the canonical percentage template of a
// scheme family. Unrecognized schemes fall back to the caller's
// template.
func PercentagesForScheme(scheme string, fallback models.Percentages) models.Percentages {
	switch scheme {
	case "5":
		return models.Percentages{Warmup1: 0.5, Warmup2: 0.6, Workset1: 0.65, Workset2: 0.75, Workset3: 0.85}
	case "3":
		return models.Percentages{Warmup1: 0.5, Warmup2: 0.6, Workset1: 0.7, Workset2: 0.8, Workset3: 0.9}
	case "1":
		return models.Percentages{Warmup1: 0.5, Warmup2: 0.6, Workset1: 0.75, Workset2: 0.85, Workset3: 0.95}
	}
	return fallback
}

// ReconcileTemplateForOverride applies a client's rep-scheme override
// to a week template. When the override differs from the template's own
// scheme, the override's canonical percentage and rep templates replace
// the stored ones; one override string fully swaps the prescription.
func ReconcileTemplateForOverride(template models.WeekTemplate, overrideScheme string) models.WeekTemplate {
	if overrideScheme == "" || overrideScheme == RepScheme(template.Reps.Workset3) {
		return template
	}
	out := template
	out.Percentages = PercentagesForScheme(overrideScheme, template.Percentages)
	out.Reps = RepsForScheme(overrideScheme, template.Reps)
	return out
}
