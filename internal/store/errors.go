package store

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// ErrElementNotFound is returned when an update targets a row that does not exist
var ErrElementNotFound = errors.New("element not found")

// DatabaseError wraps an error coming from the database engine
type DatabaseError struct {
	Op  string
	Err error
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("database error during %s: %v", e.Op, e.Err)
}

func (e *DatabaseError) Unwrap() error {
	return e.Err
}

// IsConstraintViolation reports whether err is a primary key, unique, foreign key or other constraint failure
func IsConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}
	return false
}

// wrap turns engine errors into DatabaseError and lets ErrElementNotFound through untouched
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrElementNotFound) {
		return err
	}
	var dbErr *DatabaseError
	if errors.As(err, &dbErr) {
		return err
	}
	return &DatabaseError{Op: op, Err: err}
}
