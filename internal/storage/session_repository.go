// Package storage holds the durable client-side state: a sqlite file with the
// persisted session, so a restart restores who is signed in.
package storage

import (
	"errors"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"campusgig/internal/models"
	"campusgig/pkg/apperrors"
)

// currentSessionID keys the single row holding the active session.
const currentSessionID uint = 1

type SessionRepository struct {
	db *gorm.DB
}

// Open creates (or opens) the sqlite file at path and migrates the schema.
func Open(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeStorageError, "storage", "create session directory", 0)
		}
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeStorageError, "storage", "open session database", 0)
	}
	if err := db.AutoMigrate(&models.SessionRecord{}); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeStorageError, "storage", "migrate session schema", 0)
	}
	return db, nil
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Save upserts the current session row.
func (r *SessionRepository) Save(s models.Session) error {
	record := models.SessionRecord{
		ID:       currentSessionID,
		Token:    s.Token,
		UserID:   s.UserID,
		UserType: string(s.UserType),
	}
	if err := r.db.Save(&record).Error; err != nil {
		return apperrors.Wrap(err, apperrors.CodeStorageError, "storage", "persist session", 0)
	}
	return nil
}

// Load returns the persisted session. found is false when no row exists.
func (r *SessionRepository) Load() (s models.Session, found bool, err error) {
	var record models.SessionRecord
	result := r.db.First(&record, currentSessionID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return models.Session{}, false, nil
		}
		return models.Session{}, false, apperrors.Wrap(result.Error, apperrors.CodeStorageError, "storage", "load session", 0)
	}
	s = models.Session{
		Token:           record.Token,
		UserID:          record.UserID,
		UserType:        models.UserType(record.UserType),
		IsAuthenticated: record.Token != "" && record.UserID != "" && record.UserType != "",
	}
	return s, true, nil
}

// Clear deletes the persisted session so a later restart starts signed out.
func (r *SessionRepository) Clear() error {
	if err := r.db.Delete(&models.SessionRecord{}, currentSessionID).Error; err != nil {
		return apperrors.Wrap(err, apperrors.CodeStorageError, "storage", "clear session", 0)
	}
	return nil
}
