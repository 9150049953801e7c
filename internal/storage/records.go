package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"coachdash/internal/models"
)

func (s *Storage) AppendRecord(record models.HistoricalRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	_, err := s.DB.Exec(
		`INSERT INTO historical_records (id, client_id, date, lift, weight, reps, estimated_1rm)
         VALUES (?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.ClientID,
		record.Date.UTC().Format(time.RFC3339),
		string(record.Lift),
		record.Weight,
		record.Reps,
		record.Estimated1RM,
	)
	if err != nil {
		return fmt.Errorf("Failed to append record: %w", err)
	}
	return nil
}

func (s *Storage) ListRecords() ([]models.HistoricalRecord, error) {
	rows, err := s.DB.Query(
		`SELECT id, client_id, date, lift, weight, reps, estimated_1rm
         FROM historical_records
         ORDER BY date`,
	)
	if err != nil {
		return nil, fmt.Errorf("Failed to list records: %w", err)
	}
	defer rows.Close()

	var records []models.HistoricalRecord
	for rows.Next() {
		var (
			record  models.HistoricalRecord
			rawDate string
			rawLift string
		)
		if err := rows.Scan(
			&record.ID,
			&record.ClientID,
			&rawDate,
			&rawLift,
			&record.Weight,
			&record.Reps,
			&record.Estimated1RM,
		); err != nil {
			return nil, fmt.Errorf("Failed to scan record: %w", err)
		}
		date, err := time.Parse(time.RFC3339, rawDate)
		if err != nil {
			return nil, fmt.Errorf("Failed to parse record date %q: %w", rawDate, err)
		}
		record.Date = date
		record.Lift = models.Lift(rawLift)
		records = append(records, record)
	}
	return records, rows.Err()
}
