package coach

import "coachdash/internal/models"

// ClientRepo is the persistence surface for roster members.
type ClientRepo interface {
	ListClients() ([]models.Client, error)
	CreateClient(client models.Client) (models.Client, error)
	UpdateClient(client models.Client) error
	// MirrorSettings copies the shared settings onto a client row as a
	// fallback read path. Best-effort: callers log failures and move on.
	MirrorSettings(clientID string, settings models.AppSettings) error
}

// SettingsRepo holds the single authoritative app-settings document.
type SettingsRepo interface {
	ReadSettings() (models.AppSettings, error)
	WriteSettings(settings models.AppSettings) error
}

// RecordRepo is the append-only performance log.
type RecordRepo interface {
	ListRecords() ([]models.HistoricalRecord, error)
	AppendRecord(record models.HistoricalRecord) error
}

// InsightRequest carries the context handed to an external text-insight
// generator. The engine treats both the request and the response as
// opaque.
type InsightRequest struct {
	ClientID        string
	Lift            models.Lift
	CycleSettings   models.CycleSettings
	TrainingMaxes   models.TrainingMaxSet
	FilteredHistory []models.HistoricalRecord
}

// InsightResponse is free text with no contract on content.
type InsightResponse struct {
	Insights      string
	StrategicTips string
}

// InsightGenerator produces coaching text from training context. No
// implementation ships here; the CLI wires one in when configured.
type InsightGenerator interface {
	Generate(req InsightRequest) (InsightResponse, error)
}
