package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const busyTimeout = 5 * time.Second

// Open opens the database file, creating its directory, and applies pending migrations.
// The connection pool is limited to a single connection so every writer is serialized.
func Open(path string) (*gorm.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	params := url.Values{}
	params.Set("_foreign_keys", "on")
	params.Set("_journal_mode", "WAL")
	params.Set("_busy_timeout", fmt.Sprint(busyTimeout.Milliseconds()))
	params.Set("_txlock", "immediate")
	dsn := fmt.Sprintf("file:%s?%s", path, params.Encode())

	db, err := OpenDialector(sqlite.Open(dsn))
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		_ = Close(db)
		return nil, err
	}
	return db, nil
}

// OpenDialector opens gorm over an arbitrary sqlite dialector without migrating
func OpenDialector(dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 gormlogger.Discard,
		TranslateError:         true,
		SkipDefaultTransaction: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, &DatabaseError{Op: "open", Err: err}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, &DatabaseError{Op: "open", Err: err}
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	return db, nil
}

// Close closes the underlying connection pool
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// sqliteStore implements Store on gorm over SQLite
type sqliteStore struct {
	db *gorm.DB
}

// NewSQLiteStore creates a new store on an opened and migrated database
func NewSQLiteStore(db *gorm.DB) Store {
	return &sqliteStore{db: db}
}

// write runs fn inside a write transaction
func (s *sqliteStore) write(ctx context.Context, op string, fn func(tx *gorm.DB) error) error {
	return wrap(op, s.db.WithContext(ctx).Transaction(fn))
}

// read runs fn inside a read transaction
func (s *sqliteStore) read(ctx context.Context, op string, fn func(tx *gorm.DB) error) error {
	return wrap(op, s.db.WithContext(ctx).Transaction(fn, &sql.TxOptions{ReadOnly: true}))
}

// utc normalizes a timestamp so equal instants are stored as equal values
func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
