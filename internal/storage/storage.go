package storage

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/tursodatabase/libsql-client-go/libsql"

	"coachdash/internal/config"
)

type Storage struct {
	DB *sql.DB
}

// connectionString resolves the database URL: environment first (with
// .env support), then the TOML config file.
func connectionString() string {
	_ = godotenv.Load()

	if url := os.Getenv("COACHDASH_DATABASE_URL"); url != "" {
		return url
	}
	if cfg, err := config.LoadConfig(); err == nil && cfg.DB.ConnectionString != "" {
		return cfg.DB.ConnectionString
	}
	return ""
}

func NewStorage() *Storage {
	url := connectionString()
	if url == "" {
		fmt.Fprintln(os.Stderr, "No database configured: set COACHDASH_DATABASE_URL or write ~/.config/coachdash/config.toml")
		os.Exit(1)
	}

	db, err := sql.Open("libsql", url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open db %s: %s", url, err)
		os.Exit(1)
	}

	if err := initializeDB(db); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize database: %v", err)
		os.Exit(1)
	}

	return &Storage{DB: db}
}

func initializeDB(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS clients (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            roster_order INTEGER NOT NULL DEFAULT 0,
            notes TEXT,
            one_rep_maxes TEXT NOT NULL,
            training_maxes TEXT NOT NULL,
            training_maxes_by_cycle TEXT,
            current_cycle INTEGER NOT NULL DEFAULT 1,
            week_assignments_by_cycle TEXT,
            session_state_by_cycle TEXT,
            logged_set_inputs_by_cycle TEXT,
            settings_mirror TEXT,
            settings_updated_at TEXT,
            created_at TEXT NOT NULL
        );

        CREATE TABLE IF NOT EXISTS app_settings (
            id TEXT PRIMARY KEY,
            cycle_settings_by_cycle TEXT NOT NULL,
            cycle_names TEXT NOT NULL,
            cycle_schedules_by_cycle TEXT,
            updated_at TEXT NOT NULL
        );

        CREATE TABLE IF NOT EXISTS historical_records (
            id TEXT PRIMARY KEY,
            client_id TEXT NOT NULL,
            date TEXT NOT NULL,
            lift TEXT NOT NULL,
            weight REAL NOT NULL,
            reps INTEGER NOT NULL,
            estimated_1rm REAL NOT NULL,
            FOREIGN KEY (client_id) REFERENCES clients(id) ON DELETE CASCADE
        );
    `)
	if err != nil {
		return fmt.Errorf("Failed to create tables: %w", err)
	}
	return nil
}
