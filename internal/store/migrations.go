package store

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/brokerguard/dbp/internal/logger"
	"github.com/brokerguard/dbp/internal/store/schema"
)

// Migration is one step of the schema history
type Migration struct {
	Version string
	Up      func(tx *gorm.DB) error
}

// Migrations lists every schema version in application order
var Migrations = []Migration{
	{Version: "v1", Up: migrateV1},
}

const createMigrationsTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
	version TEXT PRIMARY KEY,
	applied_at DATETIME NOT NULL
)`

// Migrate applies every migration that has not been recorded yet, each in its own transaction
func Migrate(db *gorm.DB) error {
	return migrate(db, Migrations)
}

func migrate(db *gorm.DB, migrations []Migration) error {
	if err := db.Exec(createMigrationsTable).Error; err != nil {
		return wrap("create schema_migrations", err)
	}

	var applied []schema.SchemaMigration
	if err := db.Find(&applied).Error; err != nil {
		return wrap("list migrations", err)
	}
	done := make(map[string]bool, len(applied))
	for _, m := range applied {
		done[m.Version] = true
	}

	for _, m := range migrations {
		if done[m.Version] {
			continue
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := m.Up(tx); err != nil {
				return err
			}
			return tx.Create(&schema.SchemaMigration{Version: m.Version, AppliedAt: time.Now().UTC()}).Error
		})
		if err != nil {
			return wrap(fmt.Sprintf("migration %s", m.Version), err)
		}
		logger.Info("Applied database migration", zap.String("version", m.Version))
	}

	return nil
}

func migrateV1(tx *gorm.DB) error {
	statements := []string{
		`CREATE TABLE profile (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			birth_year BLOB NOT NULL
		)`,
		`CREATE TABLE name (
			first BLOB NOT NULL,
			last BLOB NOT NULL,
			middle BLOB NOT NULL DEFAULT X'',
			suffix BLOB NOT NULL DEFAULT X'',
			profile_id INTEGER NOT NULL REFERENCES profile(id) ON DELETE CASCADE,
			PRIMARY KEY (first, last, middle, suffix, profile_id)
		)`,
		`CREATE TABLE address (
			city BLOB NOT NULL,
			state BLOB NOT NULL,
			street BLOB NOT NULL DEFAULT X'',
			zip_code BLOB NOT NULL DEFAULT X'',
			profile_id INTEGER NOT NULL REFERENCES profile(id) ON DELETE CASCADE,
			PRIMARY KEY (city, state, street, zip_code, profile_id)
		)`,
		`CREATE TABLE phone (
			phone_number BLOB NOT NULL,
			profile_id INTEGER NOT NULL REFERENCES profile(id) ON DELETE CASCADE,
			PRIMARY KEY (phone_number, profile_id)
		)`,
		`CREATE TABLE broker (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			json TEXT NOT NULL,
			version TEXT NOT NULL,
			url TEXT NOT NULL
		)`,
		`CREATE TABLE profile_query (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			profile_id INTEGER NOT NULL REFERENCES profile(id) ON DELETE CASCADE,
			first BLOB NOT NULL,
			last BLOB NOT NULL,
			middle BLOB NOT NULL DEFAULT X'',
			suffix BLOB NOT NULL DEFAULT X'',
			city BLOB NOT NULL,
			state BLOB NOT NULL,
			street BLOB NOT NULL DEFAULT X'',
			zip_code BLOB NOT NULL DEFAULT X'',
			phone BLOB NOT NULL DEFAULT X'',
			birth_year BLOB NOT NULL,
			deprecated BOOLEAN NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE scan (
			broker_id INTEGER NOT NULL REFERENCES broker(id) ON DELETE CASCADE,
			profile_query_id INTEGER NOT NULL REFERENCES profile_query(id) ON DELETE CASCADE,
			last_run_date DATETIME,
			preferred_run_date DATETIME,
			PRIMARY KEY (broker_id, profile_query_id)
		)`,
		`CREATE TABLE scan_history_event (
			broker_id INTEGER NOT NULL REFERENCES broker(id) ON DELETE CASCADE,
			profile_query_id INTEGER NOT NULL REFERENCES profile_query(id) ON DELETE CASCADE,
			event BLOB NOT NULL,
			timestamp DATETIME NOT NULL,
			PRIMARY KEY (broker_id, profile_query_id, event, timestamp)
		)`,
		`CREATE TABLE extracted_profile (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			profile_query_id INTEGER NOT NULL REFERENCES profile_query(id) ON DELETE CASCADE,
			broker_id INTEGER NOT NULL REFERENCES broker(id) ON DELETE CASCADE,
			profile BLOB NOT NULL,
			removed_date DATETIME
		)`,
		`CREATE TABLE opt_out (
			broker_id INTEGER NOT NULL REFERENCES broker(id) ON DELETE CASCADE,
			profile_query_id INTEGER NOT NULL REFERENCES profile_query(id) ON DELETE CASCADE,
			extracted_profile_id INTEGER NOT NULL REFERENCES extracted_profile(id) ON DELETE CASCADE,
			last_run_date DATETIME,
			preferred_run_date DATETIME,
			created_date DATETIME NOT NULL,
			attempt_count INTEGER NOT NULL DEFAULT 0,
			submitted_successfully_date DATETIME,
			seven_days_confirmation_pixel_fired BOOLEAN NOT NULL DEFAULT 0,
			fourteen_days_confirmation_pixel_fired BOOLEAN NOT NULL DEFAULT 0,
			twenty_one_days_confirmation_pixel_fired BOOLEAN NOT NULL DEFAULT 0,
			PRIMARY KEY (broker_id, profile_query_id, extracted_profile_id)
		)`,
		`CREATE TABLE opt_out_history_event (
			broker_id INTEGER NOT NULL REFERENCES broker(id) ON DELETE CASCADE,
			profile_query_id INTEGER NOT NULL REFERENCES profile_query(id) ON DELETE CASCADE,
			extracted_profile_id INTEGER NOT NULL REFERENCES extracted_profile(id) ON DELETE CASCADE,
			event BLOB NOT NULL,
			timestamp DATETIME NOT NULL,
			PRIMARY KEY (broker_id, profile_query_id, extracted_profile_id, event, timestamp)
		)`,
		`CREATE TABLE opt_out_attempt (
			extracted_profile_id INTEGER PRIMARY KEY REFERENCES extracted_profile(id) ON DELETE CASCADE,
			data_broker TEXT NOT NULL,
			attempt_id TEXT NOT NULL,
			last_stage_date DATETIME NOT NULL,
			start_date DATETIME NOT NULL
		)`,
		`CREATE TABLE key_value_store (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE INDEX idx_scan_preferred_run_date ON scan(preferred_run_date)`,
		`CREATE INDEX idx_opt_out_preferred_run_date ON opt_out(preferred_run_date)`,
		`CREATE INDEX idx_extracted_profile_broker_query ON extracted_profile(broker_id, profile_query_id)`,
	}

	for _, stmt := range statements {
		if err := tx.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
