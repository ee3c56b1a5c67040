// README: Grievance store backed by SQLite via gorm (append-only, one insert per session).
package grievance

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

var ErrEmptyFollowUp = errors.New("follow_up_responses must not be empty")

// Migrate creates the grievances table if it does not exist. Safe to call on
// every session.
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&Record{})
}

// Persist appends one completed record and fills in its assigned id. Existing
// rows are never updated or deleted by the intake workflow.
func (s *Store) Persist(ctx context.Context, r *Record) error {
	if r.FollowUpResponses == "" {
		return ErrEmptyFollowUp
	}
	return s.db.WithContext(ctx).Create(r).Error
}

// Recent returns the newest records first. Operator convenience only; no
// intake session ever reads rows.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	var recs []Record
	err := s.db.WithContext(ctx).Order("id DESC").Limit(limit).Find(&recs).Error
	return recs, err
}
