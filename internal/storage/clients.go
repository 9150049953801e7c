package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"coachdash/internal/models"
)

// marshalJSON encodes a map-shaped field for a JSON text column; nil
// stays NULL.
func marshalJSON(v any) (sql.NullString, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return sql.NullString{}, err
	}
	text := string(data)
	if text == "null" {
		return sql.NullString{}, nil
	}
	return sql.NullString{String: text, Valid: true}, nil
}

func unmarshalJSON(src sql.NullString, dst any) error {
	if !src.Valid || src.String == "" {
		return nil
	}
	return json.Unmarshal([]byte(src.String), dst)
}

func (s *Storage) CreateClient(client models.Client) (models.Client, error) {
	if client.ID == "" {
		client.ID = uuid.New().String()
	}

	oneRepMaxes, err := marshalJSON(client.OneRepMaxes)
	if err != nil {
		return models.Client{}, fmt.Errorf("Failed to encode client: %w", err)
	}
	trainingMaxes, err := marshalJSON(client.TrainingMaxes)
	if err != nil {
		return models.Client{}, fmt.Errorf("Failed to encode client: %w", err)
	}
	byCycle, err := marshalJSON(client.TrainingMaxesByCycle)
	if err != nil {
		return models.Client{}, fmt.Errorf("Failed to encode client: %w", err)
	}
	assignments, err := marshalJSON(client.WeekAssignmentsByCycle)
	if err != nil {
		return models.Client{}, fmt.Errorf("Failed to encode client: %w", err)
	}

	_, err = s.DB.Exec(
		`INSERT INTO clients
         (id, name, roster_order, notes, one_rep_maxes, training_maxes,
          training_maxes_by_cycle, current_cycle, week_assignments_by_cycle, created_at)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		client.ID,
		client.Name,
		client.RosterOrder,
		client.Notes,
		oneRepMaxes,
		trainingMaxes,
		byCycle,
		client.Cycle(),
		assignments,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return models.Client{}, fmt.Errorf("Failed to create client: %w", err)
	}
	return client, nil
}

func (s *Storage) ListClients() ([]models.Client, error) {
	rows, err := s.DB.Query(
		`SELECT id, name, roster_order, notes, one_rep_maxes, training_maxes,
                training_maxes_by_cycle, current_cycle, week_assignments_by_cycle,
                session_state_by_cycle, logged_set_inputs_by_cycle
         FROM clients
         ORDER BY roster_order, name`,
	)
	if err != nil {
		return nil, fmt.Errorf("Failed to list clients: %w", err)
	}
	defer rows.Close()

	var clients []models.Client
	for rows.Next() {
		var (
			client      models.Client
			notes       sql.NullString
			oneRepMaxes sql.NullString
			maxes       sql.NullString
			byCycle     sql.NullString
			assignments sql.NullString
			sessions    sql.NullString
			logged      sql.NullString
		)
		if err := rows.Scan(
			&client.ID,
			&client.Name,
			&client.RosterOrder,
			&notes,
			&oneRepMaxes,
			&maxes,
			&byCycle,
			&client.CurrentCycleNumber,
			&assignments,
			&sessions,
			&logged,
		); err != nil {
			return nil, fmt.Errorf("Failed to scan client: %w", err)
		}
		client.Notes = notes.String
		if err := unmarshalJSON(oneRepMaxes, &client.OneRepMaxes); err != nil {
			return nil, fmt.Errorf("Failed to decode client %s: %w", client.ID, err)
		}
		if err := unmarshalJSON(maxes, &client.TrainingMaxes); err != nil {
			return nil, fmt.Errorf("Failed to decode client %s: %w", client.ID, err)
		}
		if err := unmarshalJSON(byCycle, &client.TrainingMaxesByCycle); err != nil {
			return nil, fmt.Errorf("Failed to decode client %s: %w", client.ID, err)
		}
		if err := unmarshalJSON(assignments, &client.WeekAssignmentsByCycle); err != nil {
			return nil, fmt.Errorf("Failed to decode client %s: %w", client.ID, err)
		}
		if err := unmarshalJSON(sessions, &client.SessionStateByCycle); err != nil {
			return nil, fmt.Errorf("Failed to decode client %s: %w", client.ID, err)
		}
		if err := unmarshalJSON(logged, &client.LoggedSetInputsByCycle); err != nil {
			return nil, fmt.Errorf("Failed to decode client %s: %w", client.ID, err)
		}
		clients = append(clients, client)
	}
	return clients, rows.Err()
}

func (s *Storage) UpdateClient(client models.Client) error {
	oneRepMaxes, err := marshalJSON(client.OneRepMaxes)
	if err != nil {
		return fmt.Errorf("Failed to encode client: %w", err)
	}
	trainingMaxes, err := marshalJSON(client.TrainingMaxes)
	if err != nil {
		return fmt.Errorf("Failed to encode client: %w", err)
	}
	byCycle, err := marshalJSON(client.TrainingMaxesByCycle)
	if err != nil {
		return fmt.Errorf("Failed to encode client: %w", err)
	}
	assignments, err := marshalJSON(client.WeekAssignmentsByCycle)
	if err != nil {
		return fmt.Errorf("Failed to encode client: %w", err)
	}
	sessions, err := marshalJSON(client.SessionStateByCycle)
	if err != nil {
		return fmt.Errorf("Failed to encode client: %w", err)
	}
	logged, err := marshalJSON(client.LoggedSetInputsByCycle)
	if err != nil {
		return fmt.Errorf("Failed to encode client: %w", err)
	}

	result, err := s.DB.Exec(
		`UPDATE clients SET
            name = ?, roster_order = ?, notes = ?, one_rep_maxes = ?,
            training_maxes = ?, training_maxes_by_cycle = ?, current_cycle = ?,
            week_assignments_by_cycle = ?, session_state_by_cycle = ?,
            logged_set_inputs_by_cycle = ?
         WHERE id = ?`,
		client.Name,
		client.RosterOrder,
		client.Notes,
		oneRepMaxes,
		trainingMaxes,
		byCycle,
		client.Cycle(),
		assignments,
		sessions,
		logged,
		client.ID,
	)
	if err != nil {
		return fmt.Errorf("Failed to update client: %w", err)
	}
	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return fmt.Errorf("client %q not found", client.ID)
	}
	return nil
}

// MirrorSettings stores a copy of the shared settings on the client
// row. The authoritative copy lives in app_settings; this column only
// backs fallback reads.
func (s *Storage) MirrorSettings(clientID string, settings models.AppSettings) error {
	mirror, err := marshalJSON(settings)
	if err != nil {
		return fmt.Errorf("Failed to encode settings mirror: %w", err)
	}
	_, err = s.DB.Exec(
		`UPDATE clients SET settings_mirror = ?, settings_updated_at = ? WHERE id = ?`,
		mirror,
		settings.SettingsUpdatedAt,
		clientID,
	)
	if err != nil {
		return fmt.Errorf("Failed to mirror settings: %w", err)
	}
	return nil
}
