// Package storage is the durable key-value layer behind the dashboard.
// Reads fail open: a missing or unreadable goal collection falls back to the
// seed defaults, a bad memory value is treated as absent. Writes are
// best-effort and write-through on every mutation; failures are logged and
// never surfaced to the caller.
package storage

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/caffeinepub/my-goals-2026/internal/log"
	"github.com/caffeinepub/my-goals-2026/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const goalsKey = "goals"

func memoryKey(m models.Month) string {
	return "memory:" + string(m)
}

type Store struct {
	db     *gorm.DB
	logger *log.Logger
}

func New(db *gorm.DB, logger *log.Logger) *Store {
	return &Store{db: db, logger: logger}
}

// LoadGoals returns the persisted collection, or the seed defaults when the
// key is missing or the stored value cannot be read back.
func (s *Store) LoadGoals() models.Collection {
	var entry models.Entry
	if err := s.db.First(&entry, "key = ?", goalsKey).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("goal collection read failed, using defaults", "error", err)
		}
		return models.DefaultCollection()
	}

	var collection models.Collection
	if err := json.Unmarshal([]byte(entry.Value), &collection); err != nil {
		s.logger.Warn("goal collection unreadable, using defaults", "error", err)
		return models.DefaultCollection()
	}
	if !collection.WellFormed() {
		s.logger.Warn("goal collection malformed, using defaults")
		return models.DefaultCollection()
	}
	collection.Normalize()
	return collection
}

// SaveGoals serializes and writes the full collection.
func (s *Store) SaveGoals(collection models.Collection) {
	data, err := json.Marshal(collection)
	if err != nil {
		s.logger.Error("goal collection serialize failed", "error", err)
		return
	}
	s.upsert(goalsKey, string(data))
}

// LoadMemory returns the saved photo for a month, if any.
func (s *Store) LoadMemory(month models.Month) (string, bool) {
	var entry models.Entry
	if err := s.db.First(&entry, "key = ?", memoryKey(month)).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("memory read failed", "month", month, "error", err)
		}
		return "", false
	}
	if !strings.HasPrefix(entry.Value, "data:image/") {
		return "", false
	}
	return entry.Value, true
}

// SaveMemory writes a month's photo, overwriting any previous one.
func (s *Store) SaveMemory(month models.Month, imageData string) {
	s.upsert(memoryKey(month), imageData)
}

// ClearMemory removes a month's photo.
func (s *Store) ClearMemory(month models.Month) {
	if err := s.db.Delete(&models.Entry{}, "key = ?", memoryKey(month)).Error; err != nil {
		s.logger.Warn("memory clear failed", "month", month, "error", err)
	}
}

// Memories lists every saved photo in calendar order.
func (s *Store) Memories() []models.MonthlyMemory {
	var memories []models.MonthlyMemory
	for _, month := range models.Months {
		if data, ok := s.LoadMemory(month); ok {
			memories = append(memories, models.MonthlyMemory{Month: month, ImageData: data})
		}
	}
	return memories
}

func (s *Store) upsert(key, value string) {
	entry := models.Entry{Key: key, Value: value, UpdatedAt: time.Now()}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		s.logger.Error("write failed", "key", key, "error", err)
	}
}
