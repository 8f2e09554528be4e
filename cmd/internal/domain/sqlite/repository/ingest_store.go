package repository

import (
	"errors"

	"accredparser/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

// DefaultIngestStore is the GORM-backed transactional sink for the ingestion
// driver. It holds at most one open transaction; the driver is single
// threaded, so there is no locking.
type DefaultIngestStore struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewIngestStore(db *gorm.DB) *DefaultIngestStore {
	return &DefaultIngestStore{db: db}
}

func (s *DefaultIngestStore) Begin() error {
	tx := s.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	s.tx = tx
	return nil
}

// Stage inserts the value inside the open transaction. GORM back-fills the
// auto-assigned primary key on the passed struct.
func (s *DefaultIngestStore) Stage(value any) error {
	if s.tx == nil {
		return gorm.ErrInvalidTransaction
	}
	return s.tx.Create(value).Error
}

// ResolveParent looks up the head organization a branch points at. The
// registry fills HeadEduOrgId with either the head's record id or its INN,
// so both columns are matched. Returns nil without error when no row
// matches; the lookup runs on the open transaction so rows staged earlier in
// the current batch are visible.
func (s *DefaultIngestStore) ResolveParent(headID string) (*int, error) {
	if s.tx == nil {
		return nil, gorm.ErrInvalidTransaction
	}
	var org entity.Organization
	err := s.tx.
		Where("id = ? OR inn = ?", headID, headID).
		First(&org).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &org.ID, nil
}

func (s *DefaultIngestStore) SetParent(orgID, parentID int) error {
	if s.tx == nil {
		return gorm.ErrInvalidTransaction
	}
	return s.tx.
		Model(&entity.Organization{}).
		Where("id = ?", orgID).
		Update("parent_id", parentID).Error
}

func (s *DefaultIngestStore) Commit() error {
	if s.tx == nil {
		return gorm.ErrInvalidTransaction
	}
	err := s.tx.Commit().Error
	s.tx = nil
	return err
}

// Rollback discards the open transaction. Rolling back a transaction that
// already ended (e.g. after a failed commit) is a no-op, not an error.
func (s *DefaultIngestStore) Rollback() error {
	if s.tx == nil {
		return nil
	}
	err := s.tx.Rollback().Error
	s.tx = nil
	if errors.Is(err, gorm.ErrInvalidTransaction) {
		return nil
	}
	return err
}
