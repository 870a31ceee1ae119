package store

import (
	"errors"

	"gorm.io/gorm"
)

// ErrDuplicateEmail is returned when a patient insert loses the race
// against another signup with the same email; the unique index is the
// only guard once the pre-insert existence check has passed.
var ErrDuplicateEmail = errors.New("email already registered")

// Store is the data-access layer over the three tables. Every method is
// a single-row or simple-filter query; nothing spans entities except the
// bid-by-patient-email lookup.
type Store struct {
	db *gorm.DB
}

// New returns a Store over the given database handle.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}
