package coach

import (
	"fmt"
	"log"
	"sort"
	"time"

	"coachdash/internal/engine"
	"coachdash/internal/models"
)

// Editor orchestrates the effectful operations over the repositories:
// roster changes, logging, stall resets, and the structural cycle
// edits. Structural edits are not safe to interleave; run one at a
// time.
type Editor struct {
	Clients  ClientRepo
	Settings SettingsRepo
	Records  RecordRepo
	Now      func() time.Time
}

// NewEditor wires an editor over the three repositories.
func NewEditor(clients ClientRepo, settings SettingsRepo, records RecordRepo) *Editor {
	return &Editor{Clients: clients, Settings: settings, Records: records, Now: time.Now}
}

func (e *Editor) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// AddClient creates a roster member: cycle-1 training maxes derived
// from the one-rep maxes, the starter override pattern seeded, roster
// order appended at the end.
func (e *Editor) AddClient(name string, oneRepMaxes models.TrainingMaxSet) (models.Client, error) {
	if name == "" {
		return models.Client{}, fmt.Errorf("client name is required")
	}
	for _, lift := range models.Lifts {
		if oneRepMaxes[lift] <= 0 {
			return models.Client{}, fmt.Errorf("one-rep max for %s must be positive", lift)
		}
	}

	existing, err := e.Clients.ListClients()
	if err != nil {
		return models.Client{}, fmt.Errorf("Failed to list clients: %w", err)
	}

	trainingMaxes := engine.TrainingMaxes(oneRepMaxes)
	client := models.Client{
		Name:                 name,
		RosterOrder:          len(existing),
		OneRepMaxes:          oneRepMaxes.Clone(),
		TrainingMaxes:        trainingMaxes,
		TrainingMaxesByCycle: map[int]models.TrainingMaxSet{1: trainingMaxes.Clone()},
		CurrentCycleNumber:   1,
		WeekAssignmentsByCycle: map[int]map[string]string{
			1: engine.StarterAssignments(),
		},
	}

	created, err := e.Clients.CreateClient(client)
	if err != nil {
		return models.Client{}, fmt.Errorf("Failed to create client: %w", err)
	}
	return created, nil
}

// LogRecord validates and appends one performance record, stamping the
// Epley estimate at write time. Nothing is persisted on invalid input.
func (e *Editor) LogRecord(clientID string, lift models.Lift, weight float64, reps int) (models.HistoricalRecord, error) {
	if weight <= 0 {
		return models.HistoricalRecord{}, fmt.Errorf("weight must be positive")
	}
	if reps <= 0 {
		return models.HistoricalRecord{}, fmt.Errorf("reps must be positive")
	}
	record := models.HistoricalRecord{
		ClientID:     clientID,
		Date:         e.now().UTC(),
		Lift:         lift,
		Weight:       weight,
		Reps:         reps,
		Estimated1RM: engine.Estimated1RM(weight, reps),
	}
	if err := e.Records.AppendRecord(record); err != nil {
		return models.HistoricalRecord{}, fmt.Errorf("Failed to log record: %w", err)
	}
	return record, nil
}

func (e *Editor) findClient(clientID string) (models.Client, []models.Client, error) {
	clients, err := e.Clients.ListClients()
	if err != nil {
		return models.Client{}, nil, fmt.Errorf("Failed to list clients: %w", err)
	}
	for _, client := range clients {
		if client.ID == clientID {
			return client, clients, nil
		}
	}
	return models.Client{}, clients, fmt.Errorf("client %q not found", clientID)
}

// ResetTrainingMax re-derives a stalled client's training maxes from
// the best estimated max among the 8 most recent records per lift,
// never below the stored one-rep max, and overwrites both the flat
// fields and the target cycle's entry.
func (e *Editor) ResetTrainingMax(clientID string, cycleNumber int) (models.Client, error) {
	client, _, err := e.findClient(clientID)
	if err != nil {
		return models.Client{}, err
	}
	records, err := e.Records.ListRecords()
	if err != nil {
		return models.Client{}, fmt.Errorf("Failed to list records: %w", err)
	}

	out := client.Clone()
	cycleMaxes := out.TrainingMaxesByCycle[cycleNumber]
	if cycleMaxes == nil {
		cycleMaxes = out.TrainingMaxes.Clone()
	}

	for _, lift := range models.Lifts {
		var liftRecords []models.HistoricalRecord
		for _, record := range records {
			if record.ClientID == clientID && record.Lift == lift {
				liftRecords = append(liftRecords, record)
			}
		}
		sort.Slice(liftRecords, func(i, j int) bool {
			return liftRecords[i].Date.After(liftRecords[j].Date)
		})
		if len(liftRecords) > 8 {
			liftRecords = liftRecords[:8]
		}

		best := out.OneRepMaxes[lift]
		for _, record := range liftRecords {
			if record.Estimated1RM > best {
				best = record.Estimated1RM
			}
		}

		out.OneRepMaxes[lift] = best
		next := engine.TrainingMax(best)
		out.TrainingMaxes[lift] = next
		cycleMaxes[lift] = next
	}

	if out.TrainingMaxesByCycle == nil {
		out.TrainingMaxesByCycle = make(map[int]models.TrainingMaxSet)
	}
	out.TrainingMaxesByCycle[cycleNumber] = cycleMaxes

	if err := e.Clients.UpdateClient(out); err != nil {
		return models.Client{}, fmt.Errorf("Failed to update client: %w", err)
	}
	return out, nil
}

// mirrorToClients copies the shared settings onto every client row.
// Failures are logged and swallowed; the primary write already
// succeeded.
func (e *Editor) mirrorToClients(settings models.AppSettings) {
	clients, err := e.Clients.ListClients()
	if err != nil {
		log.Printf("warning: failed to list clients for settings mirror: %v", err)
		return
	}
	for _, client := range clients {
		if err := e.Clients.MirrorSettings(client.ID, settings); err != nil {
			log.Printf("warning: failed to mirror settings to client %s: %v", client.ID, err)
		}
	}
}

// SaveSettings normalizes and persists the shared settings, then
// mirrors them onto client rows best-effort.
func (e *Editor) SaveSettings(settings models.AppSettings) (models.AppSettings, error) {
	normalized := engine.NormalizeSettings(settings)
	normalized.SettingsUpdatedAt = e.now().UTC().Format(time.RFC3339)
	if err := e.Settings.WriteSettings(normalized); err != nil {
		return models.AppSettings{}, fmt.Errorf("Failed to save settings: %w", err)
	}
	e.mirrorToClients(normalized)
	return normalized, nil
}

// LoadSettings reads and repairs the shared settings.
func (e *Editor) LoadSettings() (models.AppSettings, error) {
	settings, err := e.Settings.ReadSettings()
	if err != nil {
		return models.AppSettings{}, fmt.Errorf("Failed to read settings: %w", err)
	}
	return engine.NormalizeSettings(settings), nil
}

// DuplicateWeek inserts a clone of the named week in the cycle and
// shifts every affected client's per-week artifacts forward. The
// settings write lands first; client writes follow and their failures
// are logged without failing the edit.
func (e *Editor) DuplicateWeek(cycleNumber int, weekKey string) (models.AppSettings, error) {
	return e.editWeek(cycleNumber, weekKey, true)
}

// DeleteWeek removes the named week from the cycle, refusing to delete
// the last one, and shifts every affected client's artifacts backward.
func (e *Editor) DeleteWeek(cycleNumber int, weekKey string) (models.AppSettings, error) {
	return e.editWeek(cycleNumber, weekKey, false)
}

func (e *Editor) editWeek(cycleNumber int, weekKey string, duplicate bool) (models.AppSettings, error) {
	settings, err := e.LoadSettings()
	if err != nil {
		return models.AppSettings{}, err
	}
	oldCycle, ok := settings.CycleSettingsByCycle[cycleNumber]
	if !ok {
		return models.AppSettings{}, fmt.Errorf("cycle %d does not exist", cycleNumber)
	}

	var newCycle models.CycleSettings
	if duplicate {
		newCycle, err = engine.DuplicateWeek(oldCycle, weekKey)
	} else {
		newCycle, err = engine.DeleteWeek(oldCycle, weekKey)
	}
	if err != nil {
		return models.AppSettings{}, err
	}

	clients, err := e.Clients.ListClients()
	if err != nil {
		return models.AppSettings{}, fmt.Errorf("Failed to list clients: %w", err)
	}

	next := settings.Clone()
	next.CycleSettingsByCycle[cycleNumber] = newCycle
	saved, err := e.SaveSettings(next)
	if err != nil {
		return models.AppSettings{}, err
	}

	weekNum := engine.WeekNumber(weekKey)
	for _, client := range clients {
		if client.Cycle() != cycleNumber {
			continue
		}
		var updated models.Client
		if duplicate {
			updated = engine.ApplyWeekInsertToClient(client, cycleNumber, weekNum, oldCycle, newCycle)
		} else {
			updated = engine.ApplyWeekDeleteToClient(client, cycleNumber, weekNum, oldCycle, newCycle)
		}
		if err := e.Clients.UpdateClient(updated); err != nil {
			log.Printf("warning: week edit saved but client %s not updated: %v", client.ID, err)
		}
	}

	return saved, nil
}

// DeleteCycle strips a cycle from the settings and from every client,
// reassigning clients on it to cycle 1. Deleting the last cycle reseeds
// a bare cycle 1.
func (e *Editor) DeleteCycle(cycleNumber int) (models.AppSettings, error) {
	settings, err := e.LoadSettings()
	if err != nil {
		return models.AppSettings{}, err
	}
	if _, ok := settings.CycleSettingsByCycle[cycleNumber]; !ok {
		return models.AppSettings{}, fmt.Errorf("cycle %d does not exist", cycleNumber)
	}

	clients, err := e.Clients.ListClients()
	if err != nil {
		return models.AppSettings{}, fmt.Errorf("Failed to list clients: %w", err)
	}
	for _, client := range clients {
		if err := e.Clients.UpdateClient(engine.StripClientCycle(client, cycleNumber)); err != nil {
			return models.AppSettings{}, fmt.Errorf("Failed to update client %s: %w", client.ID, err)
		}
	}

	return e.SaveSettings(engine.RemoveCycle(settings, cycleNumber))
}

// SetCycleSchedule stores a cycle's calendar configuration.
func (e *Editor) SetCycleSchedule(cycleNumber int, schedule models.ScheduleSettings) (models.AppSettings, error) {
	settings, err := e.LoadSettings()
	if err != nil {
		return models.AppSettings{}, err
	}
	if _, ok := settings.CycleSettingsByCycle[cycleNumber]; !ok {
		return models.AppSettings{}, fmt.Errorf("cycle %d does not exist", cycleNumber)
	}
	next := settings.Clone()
	if next.CycleSchedulesByCycle == nil {
		next.CycleSchedulesByCycle = make(map[int]models.ScheduleSettings)
	}
	next.CycleSchedulesByCycle[cycleNumber] = schedule
	return e.SaveSettings(next)
}

// RenameCycle updates a cycle's display name.
func (e *Editor) RenameCycle(cycleNumber int, name string) (models.AppSettings, error) {
	settings, err := e.LoadSettings()
	if err != nil {
		return models.AppSettings{}, err
	}
	if _, ok := settings.CycleSettingsByCycle[cycleNumber]; !ok {
		return models.AppSettings{}, fmt.Errorf("cycle %d does not exist", cycleNumber)
	}
	next := settings.Clone()
	next.CycleNames[cycleNumber] = name
	return e.SaveSettings(next)
}

// GraduateTeam advances every client to the next cycle number after the
// current view cycle: training maxes bump, starter overrides are
// seeded, and the new cycle's 4-week template is derived from the
// source cycle and saved. Returns the saved settings and the new cycle
// number.
func (e *Editor) GraduateTeam(currentCycleNumber int) (models.AppSettings, int, error) {
	settings, err := e.LoadSettings()
	if err != nil {
		return models.AppSettings{}, 0, err
	}
	sourceCycle, ok := settings.CycleSettingsByCycle[currentCycleNumber]
	if !ok {
		return models.AppSettings{}, 0, fmt.Errorf("cycle %d does not exist", currentCycleNumber)
	}

	clients, err := e.Clients.ListClients()
	if err != nil {
		return models.AppSettings{}, 0, fmt.Errorf("Failed to list clients: %w", err)
	}

	newCycleNumber := currentCycleNumber + 1
	for _, client := range clients {
		if err := e.Clients.UpdateClient(engine.GraduateClient(client, newCycleNumber)); err != nil {
			return models.AppSettings{}, 0, fmt.Errorf("Failed to graduate client %s: %w", client.ID, err)
		}
	}

	next := settings.Clone()
	next.CycleSettingsByCycle[newCycleNumber] = engine.BuildGraduatedCycleSettings(sourceCycle)
	next.CycleNames[newCycleNumber] = fmt.Sprintf("Cycle %d", newCycleNumber)
	if schedule, ok := next.CycleSchedulesByCycle[currentCycleNumber]; ok {
		next.CycleSchedulesByCycle[newCycleNumber] = schedule
	}

	saved, err := e.SaveSettings(next)
	if err != nil {
		return models.AppSettings{}, 0, err
	}
	return saved, newCycleNumber, nil
}

// UpdateWeekAssignment sets or clears a client's per-week rep-scheme
// override, normalizing so only true overrides persist. An empty scheme
// clears the entry.
func (e *Editor) UpdateWeekAssignment(clientID string, cycleNumber int, weekKey, scheme string) (models.Client, error) {
	settings, err := e.LoadSettings()
	if err != nil {
		return models.Client{}, err
	}
	cycleSettings, ok := settings.CycleSettingsByCycle[cycleNumber]
	if !ok {
		return models.Client{}, fmt.Errorf("cycle %d does not exist", cycleNumber)
	}
	if _, ok := cycleSettings[weekKey]; !ok {
		return models.Client{}, fmt.Errorf("week %q does not exist in cycle %d", weekKey, cycleNumber)
	}

	client, _, err := e.findClient(clientID)
	if err != nil {
		return models.Client{}, err
	}

	out := client.Clone()
	if out.WeekAssignmentsByCycle == nil {
		out.WeekAssignmentsByCycle = make(map[int]map[string]string)
	}
	assignments := make(map[string]string, len(out.WeekAssignmentsByCycle[cycleNumber])+1)
	for key, value := range out.WeekAssignmentsByCycle[cycleNumber] {
		assignments[key] = value
	}
	if scheme == "" {
		delete(assignments, weekKey)
	} else {
		assignments[weekKey] = scheme
	}
	out.WeekAssignmentsByCycle[cycleNumber] = engine.NormalizeWeekAssignments(assignments, cycleSettings)

	if err := e.Clients.UpdateClient(out); err != nil {
		return models.Client{}, fmt.Errorf("Failed to update client: %w", err)
	}
	return out, nil
}

// SetSessionMode records a client's per-week session mode and, for
// slide, the optional flow week to slide back to.
func (e *Editor) SetSessionMode(clientID string, cycleNumber int, weekKey string, mode models.SessionMode, flowWeekKey string) (models.Client, error) {
	client, _, err := e.findClient(clientID)
	if err != nil {
		return models.Client{}, err
	}

	out := client.Clone()
	if out.SessionStateByCycle == nil {
		out.SessionStateByCycle = make(map[int]models.SessionState)
	}
	state := out.SessionStateByCycle[cycleNumber]
	if state.Mode == "" {
		state.Mode = models.ModeNormal
	}
	if state.ModeByWeek == nil {
		state.ModeByWeek = make(map[string]models.SessionMode)
	}
	state.ModeByWeek[weekKey] = mode
	if flowWeekKey != "" {
		if state.FlowWeekKeyByWeek == nil {
			state.FlowWeekKeyByWeek = make(map[string]string)
		}
		state.FlowWeekKeyByWeek[weekKey] = flowWeekKey
	}
	out.SessionStateByCycle[cycleNumber] = state

	if err := e.Clients.UpdateClient(out); err != nil {
		return models.Client{}, fmt.Errorf("Failed to update client: %w", err)
	}
	return out, nil
}

// UpsertLoggedSets merges actual-performance entries into a client's
// logged-set overlay for one cycle, week and lift. Prescriptions are
// never altered; this is display-side data only.
func (e *Editor) UpsertLoggedSets(clientID string, cycleNumber int, weekKey string, lift models.Lift, entries models.LoggedSetMap) (models.Client, error) {
	client, _, err := e.findClient(clientID)
	if err != nil {
		return models.Client{}, err
	}

	out := client.Clone()
	if out.LoggedSetInputsByCycle == nil {
		out.LoggedSetInputsByCycle = make(map[int]map[string]models.LoggedWeek)
	}
	byWeek := out.LoggedSetInputsByCycle[cycleNumber]
	if byWeek == nil {
		byWeek = make(map[string]models.LoggedWeek)
		out.LoggedSetInputsByCycle[cycleNumber] = byWeek
	}
	byLift := byWeek[weekKey]
	if byLift == nil {
		byLift = make(models.LoggedWeek)
		byWeek[weekKey] = byLift
	}
	sets := byLift[lift]
	if sets == nil {
		sets = make(models.LoggedSetMap)
		byLift[lift] = sets
	}
	for idx, set := range entries {
		sets[idx] = set
	}

	if err := e.Clients.UpdateClient(out); err != nil {
		return models.Client{}, fmt.Errorf("Failed to update client: %w", err)
	}
	return out, nil
}

// Roster lists clients in display order with the read-time repairs
// applied: cycle-1 training-max correction and pruning of week
// overrides that no longer override anything.
func (e *Editor) Roster() ([]models.Client, error) {
	clients, err := e.Clients.ListClients()
	if err != nil {
		return nil, fmt.Errorf("Failed to list clients: %w", err)
	}
	settings, err := e.LoadSettings()
	if err != nil {
		return nil, err
	}
	for i, client := range clients {
		if repaired, changed := engine.RepairTrainingMaxes(client); changed {
			clients[i] = repaired
		}
		clients[i].WeekAssignmentsByCycle = engine.NormalizeAssignmentsByCycle(
			clients[i].WeekAssignmentsByCycle, settings.CycleSettingsByCycle)
	}
	sort.SliceStable(clients, func(i, j int) bool {
		if clients[i].RosterOrder != clients[j].RosterOrder {
			return clients[i].RosterOrder < clients[j].RosterOrder
		}
		return clients[i].Name < clients[j].Name
	})
	return clients, nil
}
