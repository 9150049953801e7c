package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"coachdash/internal/models"
)

// settingsRowID keys the single app-settings row.
const settingsRowID = "cycleSettings"

func (s *Storage) ReadSettings() (models.AppSettings, error) {
	var (
		settings  models.AppSettings
		byCycle   sql.NullString
		names     sql.NullString
		schedules sql.NullString
		updatedAt string
	)
	err := s.DB.QueryRow(
		`SELECT cycle_settings_by_cycle, cycle_names, cycle_schedules_by_cycle, updated_at
         FROM app_settings WHERE id = ?`,
		settingsRowID,
	).Scan(&byCycle, &names, &schedules, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		// Nothing stored yet. Callers normalize into a bare cycle 1.
		return models.AppSettings{}, nil
	}
	if err != nil {
		return models.AppSettings{}, fmt.Errorf("Failed to read settings: %w", err)
	}

	if err := unmarshalJSON(byCycle, &settings.CycleSettingsByCycle); err != nil {
		return models.AppSettings{}, fmt.Errorf("Failed to decode settings: %w", err)
	}
	if err := unmarshalJSON(names, &settings.CycleNames); err != nil {
		return models.AppSettings{}, fmt.Errorf("Failed to decode settings: %w", err)
	}
	if err := unmarshalJSON(schedules, &settings.CycleSchedulesByCycle); err != nil {
		return models.AppSettings{}, fmt.Errorf("Failed to decode settings: %w", err)
	}
	settings.SettingsUpdatedAt = updatedAt
	return settings, nil
}

func (s *Storage) WriteSettings(settings models.AppSettings) error {
	byCycle, err := marshalJSON(settings.CycleSettingsByCycle)
	if err != nil {
		return fmt.Errorf("Failed to encode settings: %w", err)
	}
	names, err := marshalJSON(settings.CycleNames)
	if err != nil {
		return fmt.Errorf("Failed to encode settings: %w", err)
	}
	schedules, err := marshalJSON(settings.CycleSchedulesByCycle)
	if err != nil {
		return fmt.Errorf("Failed to encode settings: %w", err)
	}

	_, err = s.DB.Exec(
		`INSERT INTO app_settings (id, cycle_settings_by_cycle, cycle_names, cycle_schedules_by_cycle, updated_at)
         VALUES (?, ?, ?, ?, ?)
         ON CONFLICT(id) DO UPDATE SET
            cycle_settings_by_cycle = excluded.cycle_settings_by_cycle,
            cycle_names = excluded.cycle_names,
            cycle_schedules_by_cycle = excluded.cycle_schedules_by_cycle,
            updated_at = excluded.updated_at`,
		settingsRowID,
		byCycle,
		names,
		schedules,
		settings.SettingsUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("Failed to write settings: %w", err)
	}
	return nil
}
