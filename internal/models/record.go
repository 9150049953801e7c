package models

import "time"

// HistoricalRecord is one logged top-set performance. The log is
// append-only; Estimated1RM is stamped at write time and never
// recomputed.
type HistoricalRecord struct {
	ID           string    `json:"id"`
	ClientID     string    `json:"clientId"`
	Date         time.Time `json:"date"`
	Lift         Lift      `json:"lift"`
	Weight       float64   `json:"weight"`
	Reps         int       `json:"reps"`
	Estimated1RM float64   `json:"estimated1RM"`
}
